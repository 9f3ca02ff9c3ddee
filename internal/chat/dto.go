package chat

import (
	"time"

	"github.com/google/uuid"
)

// Input commands
type SendMessageCommand struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Message    []byte // cipher text, opaque to the server
	Nonce      []byte
}

// Output DTOs
type MessageDTO struct {
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Message    []byte    `json:"message"`
	Nonce      []byte    `json:"nonce"`
	SentAt     time.Time `json:"sentAt"`
}

type ConversationDTO struct {
	FriendID       uuid.UUID  `json:"friendId"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	ProfilePicture string     `json:"profilePicture"`
	LastMessage    []byte     `json:"lastMessage,omitempty"`
	LastNonce      []byte     `json:"nonce,omitempty"`
	LastMessageAt  *time.Time `json:"lastMessageTime,omitempty"`
}
