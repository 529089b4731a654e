package redis

// ConnectionState describes where the client is in its connection
// lifecycle.
//
// Transitions:
//
//	Uninitialized -> Connecting   first operation
//	Connecting    -> Ready        successful dial + probe
//	Connecting    -> Failed       dial or probe error, handle discarded
//	Failed        -> Connecting   next operation retries from scratch
//	Ready         -> Closed       explicit Close
//	Closed        -> Connecting   operation after Close re-initializes
type ConnectionState int

const (
	// StateUninitialized means no connection attempt has been made yet.
	StateUninitialized ConnectionState = iota

	// StateConnecting means an initialization sequence is in flight.
	StateConnecting

	// StateReady means a probed connection is live and usable.
	StateReady

	// StateFailed means the last initialization sequence failed; the
	// next operation retries from scratch rather than reusing a
	// known-bad handle.
	StateFailed

	// StateClosed means the connection was released by Close. The
	// client itself remains usable: a later operation re-initializes.
	StateClosed
)

// String returns the human-readable name of the state.
func (s ConnectionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
