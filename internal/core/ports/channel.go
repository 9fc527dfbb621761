package ports

// Channel is one live delivery connection, as registered in the presence
// registry. Implemented by the websocket client; Send must be safe to call
// from request goroutines and must fail rather than block when the peer has
// stopped reading.
type Channel interface {
	// Handle identifies this exact connection, so that unregistering a
	// stale channel cannot evict a newer registration for the same user.
	Handle() string

	Send(event string, data any) error
}
