package relay

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rishabhparsediya7/expensemanager-psql/internal/chat"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/keys"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/presence"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

// Event types on the realtime socket.
const (
	EventRegister       = "register"
	EventSendMessage    = "send-message"
	EventReceiveMessage = "receive-message"
)

// Event is the wire envelope for all realtime traffic. Message and Nonce
// are cipher text, opaque to the server end to end.
type Event struct {
	Type            string    `json:"type"`
	UserID          uuid.UUID `json:"userId,omitempty"`
	SenderID        uuid.UUID `json:"senderId,omitempty"`
	ReceiverID      uuid.UUID `json:"receiverId,omitempty"`
	Message         []byte    `json:"message,omitempty"`
	Nonce           []byte    `json:"nonce,omitempty"`
	SenderPublicKey []byte    `json:"senderPublicKey,omitempty"`
}

// client is one live websocket connection. The mutex serializes pushes
// from other users' relay goroutines onto this socket.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

type Relay struct {
	registry *presence.Registry
	keys     keys.KeyUsecase
	chat     chat.ChatUsecase
	logger   logger.Logger
	upgrader websocket.Upgrader
}

func NewRelay(registry *presence.Registry, keyUC keys.KeyUsecase, chatUC chat.ChatUsecase, logger logger.Logger) *Relay {
	return &Relay{
		registry: registry,
		keys:     keyUC,
		chat:     chatUC,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandlerFunc adapts HandleWS for mux registration.
func (rl *Relay) HandlerFunc() http.HandlerFunc {
	return rl.HandleWS
}

// HandleWS runs one connection's lifecycle: events are read and handled
// to completion one at a time, so a sender's messages persist in the
// order they were sent.
func (rl *Relay) HandleWS(w http.ResponseWriter, req *http.Request) {
	conn, err := rl.upgrader.Upgrade(w, req, nil)
	if err != nil {
		rl.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := &client{conn: conn}
	defer func() {
		rl.registry.Unregister(c)
		conn.Close()
	}()

	for {
		var evt Event
		if err := conn.ReadJSON(&evt); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				rl.logger.Warn("websocket read failed", "err", err)
			}
			return
		}

		switch evt.Type {
		case EventRegister:
			if evt.UserID == uuid.Nil {
				rl.logger.Warn("register event without user id")
				continue
			}
			rl.registry.Register(evt.UserID, c)
			rl.logger.Info("user registered on relay", "user_id", evt.UserID)

		case EventSendMessage:
			rl.handleSend(req.Context(), evt)

		default:
			rl.logger.Warn("unknown realtime event", "type", evt.Type)
		}
	}
}

// handleSend persists first, forwards second. The two steps fail
// independently: a dead push never rolls back the durable write, and a
// failed write never produces a push the sender believes succeeded.
func (rl *Relay) handleSend(ctx context.Context, evt Event) {
	senderKey, err := rl.keys.GetPublicKey(ctx, evt.SenderID)
	if err != nil {
		rl.logger.Warn("no public key for sender, dropping message", "sender_id", evt.SenderID, "err", err)
		return
	}

	err = rl.chat.Send(ctx, chat.SendMessageCommand{
		SenderID:   evt.SenderID,
		ReceiverID: evt.ReceiverID,
		Message:    evt.Message,
		Nonce:      evt.Nonce,
	})
	if err != nil {
		rl.logger.Error("failed to persist realtime message", "sender_id", evt.SenderID, "receiver_id", evt.ReceiverID, "err", err)
		return
	}

	handle, online := rl.registry.Lookup(evt.ReceiverID)
	if !online {
		// not an error: the receiver catches up via history
		rl.logger.Debug("receiver offline, message stays in history", "receiver_id", evt.ReceiverID)
		return
	}

	push := Event{
		Type:            EventReceiveMessage,
		SenderID:        evt.SenderID,
		Message:         evt.Message,
		Nonce:           evt.Nonce,
		SenderPublicKey: senderKey,
	}
	if err := handle.WriteJSON(push); err != nil {
		rl.logger.Warn("realtime push failed, message stays in history", "receiver_id", evt.ReceiverID, "err", err)
	}
}
