package chat

import (
	"context"

	"github.com/google/uuid"

	models "github.com/rishabhparsediya7/expensemanager-psql/internal/chat/model"
)

type ChatRepository interface {
	// Single insert; sent_at and the tie-break id are server-assigned.
	Append(ctx context.Context, msg *models.Message) error

	// Both directions, ordered by sent_at then id ascending.
	History(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error)

	// One row per friend with the latest message attached (nil when the
	// pair has never messaged), latest-first, message-less friends last.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)
}
