package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/rishabhparsediya7/expensemanager-psql/internal/chat/model"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) Append(ctx context.Context, msg *models.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.Append.Insert: ")
	}
	return nil
}

func (r *ChatRepository) History(ctx context.Context, userID, otherUserID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message

	err := r.db.NewSelect().
		Model(&msgs).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Order("sent_at ASC", "id ASC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.History.Scan: ")
	}
	return msgs, nil
}

// ListConversations attaches each friend's most recent message in one pass
// (lateral join) instead of a per-friend lookup.
func (r *ChatRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	var convos []models.Conversation

	err := r.db.NewRaw(`
		SELECT
			u.id AS friend_id,
			u.first_name,
			u.last_name,
			u.profile_picture,
			m.ciphertext AS last_message,
			m.nonce AS last_nonce,
			m.sent_at AS last_message_at
		FROM friends f
		JOIN users u ON u.id = f.friend_id
		LEFT JOIN LATERAL (
			SELECT ciphertext, nonce, sent_at
			FROM messages
			WHERE (sender_id = f.user_id AND receiver_id = f.friend_id)
			   OR (sender_id = f.friend_id AND receiver_id = f.user_id)
			ORDER BY sent_at DESC, id DESC
			LIMIT 1
		) m ON TRUE
		WHERE f.user_id = ?
		ORDER BY m.sent_at DESC NULLS LAST
	`, userID).Scan(ctx, &convos)

	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListConversations.Scan: ")
	}
	return convos, nil
}
