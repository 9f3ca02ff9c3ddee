package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/rishabhparsediya7/expensemanager-psql/internal/chat"
	models "github.com/rishabhparsediya7/expensemanager-psql/internal/chat/model"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/errors"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

type ChatUsecase struct {
	repo   chat.ChatRepository
	logger logger.Logger
}

func NewChatUsecase(repo chat.ChatRepository, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, logger: logger}
}

func (uc *ChatUsecase) Send(ctx context.Context, cmd chat.SendMessageCommand) error {
	if cmd.SenderID == uuid.Nil || cmd.ReceiverID == uuid.Nil {
		return errors.ErrMissingUserID
	}
	if cmd.SenderID == cmd.ReceiverID {
		return errors.ErrSelfConversation
	}
	if len(cmd.Message) == 0 {
		return errors.ErrMissingMessage
	}
	if len(cmd.Nonce) == 0 {
		return errors.ErrMissingNonce
	}

	msg := &models.Message{
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Ciphertext: cmd.Message,
		Nonce:      cmd.Nonce,
	}
	if err := uc.repo.Append(ctx, msg); err != nil {
		uc.logger.Error("failed to persist message", "sender_id", cmd.SenderID, "receiver_id", cmd.ReceiverID, "err", err)
		return errors.ErrMessagePersistFailed(errors.Internal("database error"))
	}
	return nil
}

func (uc *ChatUsecase) History(ctx context.Context, userID, otherUserID uuid.UUID) ([]chat.MessageDTO, error) {
	if userID == uuid.Nil {
		return nil, errors.ErrMissingUserID
	}
	if otherUserID == uuid.Nil {
		return nil, errors.ErrMissingPeerID
	}

	msgs, err := uc.repo.History(ctx, userID, otherUserID)
	if err != nil {
		uc.logger.Error("failed to fetch history", "user_id", userID, "other_user_id", otherUserID, "err", err)
		return nil, errors.Internal("failed to fetch messages")
	}

	dtos := make([]chat.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		dtos = append(dtos, chat.MessageDTO{
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Message:    m.Ciphertext,
			Nonce:      m.Nonce,
			SentAt:     m.SentAt,
		})
	}
	return dtos, nil
}

func (uc *ChatUsecase) ListConversations(ctx context.Context, userID uuid.UUID) ([]chat.ConversationDTO, error) {
	if userID == uuid.Nil {
		return nil, errors.ErrMissingUserID
	}

	convos, err := uc.repo.ListConversations(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list conversations", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to fetch conversations")
	}

	dtos := make([]chat.ConversationDTO, 0, len(convos))
	for _, c := range convos {
		dtos = append(dtos, chat.ConversationDTO{
			FriendID:       c.FriendID,
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			ProfilePicture: c.ProfilePicture,
			LastMessage:    c.LastMessage,
			LastNonce:      c.LastNonce,
			LastMessageAt:  c.LastMessageAt,
		})
	}
	return dtos, nil
}
