package models

import (
	"time"

	"github.com/google/uuid"
)

// Friend and User mirror tables owned by the social-graph and profile
// services. This module only reads them for the conversation listing.
type Friend struct {
	UserID   uuid.UUID `bun:",pk,type:uuid"`
	FriendID uuid.UUID `bun:",pk,type:uuid"`
}

type User struct {
	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	FirstName      string    `bun:",notnull"`
	LastName       string    `bun:",nullzero"`
	ProfilePicture string    `bun:",nullzero"`
}

// Conversation is one row of the contact-list view: a friend plus the
// latest message in either direction, if any.
type Conversation struct {
	FriendID       uuid.UUID  `bun:"friend_id"`
	FirstName      string     `bun:"first_name"`
	LastName       string     `bun:"last_name"`
	ProfilePicture string     `bun:"profile_picture"`
	LastMessage    []byte     `bun:"last_message"`
	LastNonce      []byte     `bun:"last_nonce"`
	LastMessageAt  *time.Time `bun:"last_message_at"`
}
