package fetch

// Status is the tag of a State.
type Status int

const (
	// StatusIdle means no request has been started yet.
	StatusIdle Status = iota
	// StatusLoading means a request is in flight.
	StatusLoading
	// StatusSuccess means the latest request settled with a payload.
	StatusSuccess
	// StatusError means the latest request settled with a failure.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the tagged union a screen renders from. Payload is only meaningful
// for StatusSuccess; Message and Err only for StatusError.
type State[T any] struct {
	Status  Status
	Payload T
	Message string
	Err     error
}

// Idle returns the state of a screen that has not fetched anything.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Loading returns the state of a screen waiting on a request.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Success returns a settled state holding payload.
func Success[T any](payload T) State[T] {
	return State[T]{Status: StatusSuccess, Payload: payload}
}

// Failure returns a settled state holding err and its user-visible message.
func Failure[T any](err error) State[T] {
	return State[T]{Status: StatusError, Message: Message(err), Err: err}
}

// IsIdle reports whether no request has started.
func (s State[T]) IsIdle() bool { return s.Status == StatusIdle }

// IsLoading reports whether a request is in flight.
func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }

// IsSuccess reports whether the latest request succeeded.
func (s State[T]) IsSuccess() bool { return s.Status == StatusSuccess }

// IsError reports whether the latest request failed.
func (s State[T]) IsError() bool { return s.Status == StatusError }

// Settled reports whether the state is terminal for its request.
func (s State[T]) Settled() bool { return s.IsSuccess() || s.IsError() }
