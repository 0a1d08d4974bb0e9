package session

// State is the session store's lifecycle state.
type State int

const (
	// Uninitialized means Start has not been called yet.
	Uninitialized State = iota
	// Loading means the bootstrap session lookup is in flight.
	Loading
	// Authenticated means an identity is present.
	Authenticated
	// Anonymous means no identity is present. The bootstrap timeout forces
	// this state for liveness; a later provider event may still flip it
	// back to Authenticated.
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}
