package keys

import (
	"context"

	"github.com/google/uuid"

	models "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/model"
)

type KeyRepository interface {
	// Insert-or-replace keyed by user_id; bumps updated_at on conflict.
	UpsertKeys(ctx context.Context, rec *models.UserKeyRecord) error
	UpsertPassphrase(ctx context.Context, pw *models.PassphraseWrapper) error

	// Single left-join read; passphrase fields are nil until uploaded.
	GetKeyBundle(ctx context.Context, userID uuid.UUID) (*models.KeyBundle, error)
	GetPublicKey(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
