package presence

import (
	"sync"

	"github.com/google/uuid"
)

// Conn is the transport handle the registry routes pushes to. The relay's
// websocket client satisfies it.
type Conn interface {
	WriteJSON(v any) error
}

// Registry maps online users to their live connection. It is derived
// state: empty at process start, rebuilt entirely from register events.
// The lock guards only the map, never a storage or network call.
type Registry struct {
	mu     sync.RWMutex
	online map[uuid.UUID]Conn
}

func NewRegistry() *Registry {
	return &Registry{
		online: make(map[uuid.UUID]Conn),
	}
}

// Register makes handle the routing target for userID, replacing any
// prior handle. Most recent registration wins across reconnects/tabs.
func (r *Registry) Register(userID uuid.UUID, handle Conn) {
	r.mu.Lock()
	r.online[userID] = handle
	r.mu.Unlock()
}

// Lookup returns the user's current handle, or false when offline.
func (r *Registry) Lookup(userID uuid.UUID) (Conn, bool) {
	r.mu.RLock()
	handle, ok := r.online[userID]
	r.mu.RUnlock()
	return handle, ok
}

// Unregister removes the entry holding exactly this handle. If the user
// already re-registered with a newer connection, the stale disconnect
// must not evict the live session, so entries are matched by handle, not
// by user id. O(online users) per disconnect; presence churn is bounded
// by concurrent connections, not message volume.
func (r *Registry) Unregister(handle Conn) {
	r.mu.Lock()
	for userID, h := range r.online {
		if h == handle {
			delete(r.online, userID)
			break
		}
	}
	r.mu.Unlock()
}

// Len reports the number of online users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.online)
}
