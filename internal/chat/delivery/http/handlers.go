package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rishabhparsediya7/expensemanager-psql/internal/chat"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/errors"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

type ChatHandlers struct {
	usecase chat.ChatUsecase
	logger  logger.Logger
}

func NewChatHandlers(usecase chat.ChatUsecase, logger logger.Logger) *ChatHandlers {
	return &ChatHandlers{usecase: usecase, logger: logger}
}

type sendMessageRequest struct {
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Message    []byte    `json:"message"`
	Nonce      []byte    `json:"nonce"`
}

// SendMessage is the request/response twin of the relay's send-message
// event: same durable write, no realtime forwarding.
func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	err := h.usecase.Send(r.Context(), chat.SendMessageCommand{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
		Nonce:      req.Nonce,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w)
}

func (h *ChatHandlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, errors.ErrMissingUserID)
		return
	}
	otherID, err := uuid.Parse(r.URL.Query().Get("withUser"))
	if err != nil {
		writeError(w, errors.ErrMissingPeerID)
		return
	}

	msgs, err := h.usecase.History(r.Context(), userID, otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *ChatHandlers) GetFriends(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, errors.ErrMissingUserID)
		return
	}

	convos, err := h.usecase.ListConversations(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, convos)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), map[string]string{"error": errors.ClientMessage(err)})
}
