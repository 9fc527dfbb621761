package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

// PresenceEntry maps an online user to their live delivery channel.
type PresenceEntry struct {
	UserID  uuid.UUID
	Role    string
	Channel ports.Channel
}

// PresenceRegistry tracks which users currently hold a live connection.
// At most one entry per user: a later registration replaces the earlier one,
// so there is no multi-device fan-out. Entirely volatile; a restart clears
// all presence, and offline users fall back to the durable notification
// table.
type PresenceRegistry struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]PresenceEntry
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{byUser: make(map[uuid.UUID]PresenceEntry)}
}

// Register upserts the entry for userID. Last registration wins.
func (r *PresenceRegistry) Register(userID uuid.UUID, role string, ch ports.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = PresenceEntry{UserID: userID, Role: role, Channel: ch}
}

// Unregister removes whichever entry holds exactly this channel. Removal is
// keyed by channel handle, not by user, so a stale connection closing cannot
// evict a newer registration for the same user.
func (r *PresenceRegistry) Unregister(ch ports.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, entry := range r.byUser {
		if entry.Channel.Handle() == ch.Handle() {
			delete(r.byUser, userID)
			return
		}
	}
}

// Lookup returns the live entry for userID, if any. Read-only, non-blocking.
func (r *PresenceRegistry) Lookup(userID uuid.UUID) (PresenceEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byUser[userID]
	return entry, ok
}

// Online reports how many users currently hold a live channel.
func (r *PresenceRegistry) Online() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
