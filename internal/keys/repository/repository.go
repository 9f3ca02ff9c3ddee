package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/model"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

type KeyRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrKeyRecordNotFound = errors.New("key record not found")
)

func NewKeyRepository(db *bun.DB, logger logger.Logger) *KeyRepository {
	return &KeyRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *KeyRepository) UpsertKeys(ctx context.Context, rec *models.UserKeyRecord) error {
	_, err := r.db.NewInsert().
		Model(rec).
		On("CONFLICT (user_id) DO UPDATE").
		Set("public_key = EXCLUDED.public_key").
		Set("encrypted_private_key = EXCLUDED.encrypted_private_key").
		Set("updated_at = now()").
		Returning("*").
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, "keyRepo.UpsertKeys.Exec: ")
	}
	return nil
}

func (r *KeyRepository) UpsertPassphrase(ctx context.Context, pw *models.PassphraseWrapper) error {
	_, err := r.db.NewInsert().
		Model(pw).
		On("CONFLICT (user_id) DO UPDATE").
		Set("cipher_text = EXCLUDED.cipher_text").
		Set("iv = EXCLUDED.iv").
		Set("updated_at = now()").
		Returning("*").
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, "keyRepo.UpsertPassphrase.Exec: ")
	}
	return nil
}

func (r *KeyRepository) GetKeyBundle(ctx context.Context, userID uuid.UUID) (*models.KeyBundle, error) {
	bundle := new(models.KeyBundle)

	err := r.db.NewSelect().
		Model((*models.UserKeyRecord)(nil)).
		ColumnExpr("user_key_record.public_key").
		ColumnExpr("user_key_record.encrypted_private_key").
		ColumnExpr("pw.cipher_text").
		ColumnExpr("pw.iv").
		Join("LEFT JOIN passphrase_wrappers AS pw ON pw.user_id = user_key_record.user_id").
		Where("user_key_record.user_id = ?", userID).
		Scan(ctx, bundle)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyRecordNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetKeyBundle.Scan")
	}
	return bundle, nil
}

func (r *KeyRepository) GetPublicKey(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	rec := new(models.UserKeyRecord)

	err := r.db.NewSelect().
		Model(rec).
		Column("public_key").
		Where("user_id = ?", userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyRecordNotFound
		}
		return nil, errors.Wrap(err, "keyRepo.GetPublicKey.Scan")
	}
	return rec.PublicKey, nil
}
