package repository

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	"github.com/google/uuid"

	models "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/model"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

var (
	testDB *bun.DB
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "expensemanager"
	dbUser := "rishabh"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*models.UserKeyRecord)(nil),
		(*models.PassphraseWrapper)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func Test_UpsertKeys(t *testing.T) {
	cleanup := func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE user_key_records CASCADE`)
		require.NoError(t, err)
	}

	repo := NewKeyRepository(testDB, logger.Logger{})

	t.Run("insert then fetch", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		rec := &models.UserKeyRecord{
			UserID:              userID,
			PublicKey:           []byte("PKA"),
			EncryptedPrivateKey: []byte("ENCA"),
		}
		require.NoError(t, repo.UpsertKeys(t.Context(), rec))

		var got models.UserKeyRecord
		err := testDB.NewSelect().
			Model(&got).
			Where("user_id = ?", userID).
			Scan(t.Context())
		require.NoError(t, err)

		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, []byte("PKA"), got.PublicKey)
		assert.Equal(t, []byte("ENCA"), got.EncryptedPrivateKey)
		assert.False(t, got.UpdatedAt.IsZero(), "updated_at should be set by DB")
	})

	t.Run("second upsert wins, no duplicate row", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		first := &models.UserKeyRecord{
			UserID:              userID,
			PublicKey:           []byte("PK1"),
			EncryptedPrivateKey: []byte("ENC1"),
		}
		require.NoError(t, repo.UpsertKeys(t.Context(), first))

		second := &models.UserKeyRecord{
			UserID:              userID,
			PublicKey:           []byte("PK2"),
			EncryptedPrivateKey: []byte("ENC2"),
		}
		require.NoError(t, repo.UpsertKeys(t.Context(), second))

		count, err := testDB.NewSelect().
			Model((*models.UserKeyRecord)(nil)).
			Where("user_id = ?", userID).
			Count(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var got models.UserKeyRecord
		err = testDB.NewSelect().
			Model(&got).
			Where("user_id = ?", userID).
			Scan(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []byte("PK2"), got.PublicKey)
		assert.Equal(t, []byte("ENC2"), got.EncryptedPrivateKey)
	})
}

func Test_UpsertPassphrase(t *testing.T) {
	cleanup := func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE passphrase_wrappers CASCADE`)
		require.NoError(t, err)
	}

	repo := NewKeyRepository(testDB, logger.Logger{})

	t.Run("upsert replaces cipher text and iv", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		require.NoError(t, repo.UpsertPassphrase(t.Context(), &models.PassphraseWrapper{
			UserID:     userID,
			CipherText: []byte("CT1"),
			IV:         []byte("IV1"),
		}))
		require.NoError(t, repo.UpsertPassphrase(t.Context(), &models.PassphraseWrapper{
			UserID:     userID,
			CipherText: []byte("CT2"),
			IV:         []byte("IV2"),
		}))

		var got models.PassphraseWrapper
		err := testDB.NewSelect().
			Model(&got).
			Where("user_id = ?", userID).
			Scan(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []byte("CT2"), got.CipherText)
		assert.Equal(t, []byte("IV2"), got.IV)
	})
}

func Test_GetKeyBundle(t *testing.T) {
	cleanup := func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE user_key_records CASCADE`)
		require.NoError(t, err)
		_, err = testDB.ExecContext(context.Background(), `TRUNCATE TABLE passphrase_wrappers CASCADE`)
		require.NoError(t, err)
	}

	repo := NewKeyRepository(testDB, logger.Logger{})

	t.Run("keys only, passphrase fields nil", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		require.NoError(t, repo.UpsertKeys(t.Context(), &models.UserKeyRecord{
			UserID:              userID,
			PublicKey:           []byte("PKA"),
			EncryptedPrivateKey: []byte("ENCA"),
		}))

		bundle, err := repo.GetKeyBundle(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, []byte("PKA"), bundle.PublicKey)
		assert.Equal(t, []byte("ENCA"), bundle.EncryptedPrivateKey)
		assert.Nil(t, bundle.CipherText)
		assert.Nil(t, bundle.IV)
	})

	t.Run("keys then passphrase, all four populated", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		require.NoError(t, repo.UpsertKeys(t.Context(), &models.UserKeyRecord{
			UserID:              userID,
			PublicKey:           []byte("PKA"),
			EncryptedPrivateKey: []byte("ENCA"),
		}))
		require.NoError(t, repo.UpsertPassphrase(t.Context(), &models.PassphraseWrapper{
			UserID:     userID,
			CipherText: []byte("CT"),
			IV:         []byte("IV"),
		}))

		bundle, err := repo.GetKeyBundle(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, []byte("PKA"), bundle.PublicKey)
		assert.Equal(t, []byte("ENCA"), bundle.EncryptedPrivateKey)
		assert.Equal(t, []byte("CT"), bundle.CipherText)
		assert.Equal(t, []byte("IV"), bundle.IV)
	})

	t.Run("no key record", func(t *testing.T) {
		defer cleanup()

		_, err := repo.GetKeyBundle(t.Context(), uuid.New())
		assert.ErrorIs(t, err, ErrKeyRecordNotFound)
	})

	t.Run("passphrase alone does not make a bundle", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		require.NoError(t, repo.UpsertPassphrase(t.Context(), &models.PassphraseWrapper{
			UserID:     userID,
			CipherText: []byte("CT"),
			IV:         []byte("IV"),
		}))

		_, err := repo.GetKeyBundle(t.Context(), userID)
		assert.ErrorIs(t, err, ErrKeyRecordNotFound)
	})
}

func Test_GetPublicKey(t *testing.T) {
	cleanup := func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE user_key_records CASCADE`)
		require.NoError(t, err)
	}

	repo := NewKeyRepository(testDB, logger.Logger{})

	t.Run("returns stored public key", func(t *testing.T) {
		defer cleanup()
		userID := uuid.New()

		require.NoError(t, repo.UpsertKeys(t.Context(), &models.UserKeyRecord{
			UserID:              userID,
			PublicKey:           []byte("PKA"),
			EncryptedPrivateKey: []byte("ENCA"),
		}))

		pub, err := repo.GetPublicKey(t.Context(), userID)
		require.NoError(t, err)
		assert.Equal(t, []byte("PKA"), pub)
	})

	t.Run("unknown user", func(t *testing.T) {
		defer cleanup()

		_, err := repo.GetPublicKey(t.Context(), uuid.New())
		assert.ErrorIs(t, err, ErrKeyRecordNotFound)
	})
}
