package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/rishabhparsediya7/expensemanager-psql/config"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/keys"
	models "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/model"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/keys/repository"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/errors"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

type KeyUsecase struct {
	repo   keys.KeyRepository
	logger logger.Logger
	config config.Config
}

func NewKeyUsecase(repo keys.KeyRepository, logger logger.Logger, config config.Config) *KeyUsecase {
	return &KeyUsecase{repo: repo, logger: logger, config: config}
}

func (uc *KeyUsecase) UploadKeys(ctx context.Context, cmd keys.UploadKeysCommand) error {
	if cmd.UserID == uuid.Nil {
		return errors.ErrMissingUserID
	}
	if len(cmd.PublicKey) == 0 {
		return errors.ErrMissingPublicKey
	}
	if len(cmd.EncryptedPrivateKey) == 0 {
		return errors.ErrMissingPrivateKey
	}

	rec := &models.UserKeyRecord{
		UserID:              cmd.UserID,
		PublicKey:           cmd.PublicKey,
		EncryptedPrivateKey: cmd.EncryptedPrivateKey,
	}
	if err := uc.repo.UpsertKeys(ctx, rec); err != nil {
		uc.logger.Error("failed to upsert user keys", "user_id", cmd.UserID, "err", err)
		return errors.ErrKeyUpsertFailed(errors.Internal("database error"))
	}
	return nil
}

func (uc *KeyUsecase) UploadPassphrase(ctx context.Context, cmd keys.UploadPassphraseCommand) error {
	if cmd.UserID == uuid.Nil {
		return errors.ErrMissingUserID
	}
	if len(cmd.CipherText) == 0 {
		return errors.ErrMissingCipherText
	}
	if len(cmd.IV) == 0 {
		return errors.ErrMissingIV
	}

	pw := &models.PassphraseWrapper{
		UserID:     cmd.UserID,
		CipherText: cmd.CipherText,
		IV:         cmd.IV,
	}
	if err := uc.repo.UpsertPassphrase(ctx, pw); err != nil {
		uc.logger.Error("failed to upsert passphrase wrapper", "user_id", cmd.UserID, "err", err)
		return errors.ErrPassphraseUpsertFailed(errors.Internal("database error"))
	}
	return nil
}

func (uc *KeyUsecase) GetKeyBundle(ctx context.Context, userID uuid.UUID) (*keys.KeyBundleDTO, error) {
	if userID == uuid.Nil {
		return nil, errors.ErrMissingUserID
	}

	bundle, err := uc.repo.GetKeyBundle(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyRecordNotFound) {
			return nil, errors.ErrKeysNotFound
		}
		uc.logger.Error("failed to fetch key bundle", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to fetch key bundle")
	}

	return &keys.KeyBundleDTO{
		PublicKey:           bundle.PublicKey,
		EncryptedPrivateKey: bundle.EncryptedPrivateKey,
		CipherText:          bundle.CipherText,
		IV:                  bundle.IV,
	}, nil
}

func (uc *KeyUsecase) GetPublicKey(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if userID == uuid.Nil {
		return nil, errors.ErrMissingUserID
	}

	pub, err := uc.repo.GetPublicKey(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyRecordNotFound) {
			return nil, errors.ErrPublicKeyNotFound
		}
		uc.logger.Error("failed to fetch public key", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to fetch public key")
	}
	return pub, nil
}
