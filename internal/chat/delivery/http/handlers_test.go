package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishabhparsediya7/expensemanager-psql/internal/chat"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/chat/mocks"
	appErrors "github.com/rishabhparsediya7/expensemanager-psql/pkg/errors"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

func newHandlers(t *testing.T) (*ChatHandlers, *mocks.MockChatUsecase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockChatUsecase(ctrl)
	return NewChatHandlers(uc, logger.Logger{}), uc
}

func TestChatHandlers_SendMessage(t *testing.T) {
	sender := uuid.New()
	receiver := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		h, uc := newHandlers(t)

		uc.EXPECT().
			Send(gomock.Any(), chat.SendMessageCommand{
				SenderID:   sender,
				ReceiverID: receiver,
				Message:    []byte("ct"),
				Nonce:      []byte("n"),
			}).
			Return(nil)

		body, _ := json.Marshal(sendMessageRequest{
			SenderID:   sender,
			ReceiverID: receiver,
			Message:    []byte("ct"),
			Nonce:      []byte("n"),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.SendMessage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	})

	t.Run("sad path - validation error propagates as 400", func(t *testing.T) {
		h, uc := newHandlers(t)

		uc.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(appErrors.ErrMissingNonce)

		body, _ := json.Marshal(sendMessageRequest{SenderID: sender, ReceiverID: receiver, Message: []byte("ct")})
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.SendMessage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sad path - persistence failure is 500", func(t *testing.T) {
		h, uc := newHandlers(t)

		uc.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(appErrors.ErrMessagePersistFailed(appErrors.Internal("database error")))

		body, _ := json.Marshal(sendMessageRequest{SenderID: sender, ReceiverID: receiver, Message: []byte("ct"), Nonce: []byte("n")})
		req := httptest.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.SendMessage(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestChatHandlers_GetHistory(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("happy path", func(t *testing.T) {
		h, uc := newHandlers(t)

		uc.EXPECT().
			History(gomock.Any(), a, b).
			Return([]chat.MessageDTO{
				{SenderID: a, ReceiverID: b, Message: []byte("one"), Nonce: []byte("n1"), SentAt: time.Now()},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/chat/history?userId="+a.String()+"&withUser="+b.String(), nil)
		rec := httptest.NewRecorder()

		h.GetHistory(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []chat.MessageDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, []byte("one"), got[0].Message)
	})

	t.Run("sad path - missing ids", func(t *testing.T) {
		h, _ := newHandlers(t)

		req := httptest.NewRequest(http.MethodGet, "/api/chat/history?withUser="+b.String(), nil)
		rec := httptest.NewRecorder()
		h.GetHistory(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/chat/history?userId="+a.String(), nil)
		rec = httptest.NewRecorder()
		h.GetHistory(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChatHandlers_GetFriends(t *testing.T) {
	me := uuid.New()
	friend := uuid.New()

	h, uc := newHandlers(t)

	lastAt := time.Now()
	uc.EXPECT().
		ListConversations(gomock.Any(), me).
		Return([]chat.ConversationDTO{
			{FriendID: friend, FirstName: "Alice", LastMessage: []byte("hey"), LastNonce: []byte("n"), LastMessageAt: &lastAt},
		}, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat/friends/{userId}", h.GetFriends)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/friends/"+me.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []chat.ConversationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, friend, got[0].FriendID)
	assert.Equal(t, "Alice", got[0].FirstName)
}
