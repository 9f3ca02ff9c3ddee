package keys

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type UploadKeysCommand struct {
	UserID              uuid.UUID
	PublicKey           []byte
	EncryptedPrivateKey []byte // encrypted client-side, opaque here
}

type UploadPassphraseCommand struct {
	UserID     uuid.UUID
	CipherText []byte
	IV         []byte
}

// Output DTOs
type KeyBundleDTO struct {
	PublicKey           []byte `json:"publicKey"`
	EncryptedPrivateKey []byte `json:"encryptedPrivateKey"`
	CipherText          []byte `json:"cipherText,omitempty"`
	IV                  []byte `json:"iv,omitempty"`
}
