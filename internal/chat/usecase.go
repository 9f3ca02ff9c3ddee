package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// Durably persist one encrypted message (request/response send path
	// and the relay's persistence step both land here)
	Send(ctx context.Context, cmd SendMessageCommand) error

	// Full conversation between two users, oldest first
	History(ctx context.Context, userID, otherUserID uuid.UUID) ([]MessageDTO, error)

	// Contact-list view: every friend, annotated with the latest message
	ListConversations(ctx context.Context, userID uuid.UUID) ([]ConversationDTO, error)
}
