package keys

import (
	"context"

	"github.com/google/uuid"
)

type KeyUsecase interface {
	// Upload/replace the user's public key + client-encrypted private key
	UploadKeys(ctx context.Context, cmd UploadKeysCommand) error

	// Upload/replace the passphrase wrapper (rotates independently of keys)
	UploadPassphrase(ctx context.Context, cmd UploadPassphraseCommand) error

	// Everything a client needs to restore its key material on a new device
	GetKeyBundle(ctx context.Context, userID uuid.UUID) (*KeyBundleDTO, error)

	// Used by the relay to enrich forwarded messages with sender identity
	GetPublicKey(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
