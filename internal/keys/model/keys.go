package models

import (
	"time"

	"github.com/google/uuid"
)

type UserKeyRecord struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	// Client-generated asymmetric pair. The private key is encrypted
	// client-side before upload and is never decryptable server-side.
	PublicKey           []byte `bun:",notnull"`
	EncryptedPrivateKey []byte `bun:",notnull"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// PassphraseWrapper is the client-encrypted wrapping of the key-derivation
// passphrase. Stored apart from UserKeyRecord so the passphrase can rotate
// without re-uploading keys.
type PassphraseWrapper struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`

	CipherText []byte `bun:",notnull"`
	IV         []byte `bun:",notnull"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// KeyBundle is the combined read: keys plus passphrase wrapper if the
// client has uploaded one (left-join, so CipherText/IV may be nil).
type KeyBundle struct {
	PublicKey           []byte `bun:"public_key"`
	EncryptedPrivateKey []byte `bun:"encrypted_private_key"`
	CipherText          []byte `bun:"cipher_text"`
	IV                  []byte `bun:"iv"`
}
