package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an append-only row. The payload is already encrypted by the
// sender for the receiver; the server never inspects it. ID is the
// tie-break for messages sharing a sent_at timestamp.
type Message struct {
	ID int64 `bun:",pk,autoincrement"`

	SenderID   uuid.UUID `bun:",notnull,type:uuid"`
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	Ciphertext []byte `bun:",notnull"`
	Nonce      []byte `bun:",notnull"`

	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
