package fetch

import (
	"context"
	"crypto/rand"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
)

// Handle is the cancellation token of one request. It is owned by the
// controller that created it and released exactly once, either by Cancel or
// by settlement.
type Handle struct {
	id     string
	cancel context.CancelFunc
	once   sync.Once

	cancelled atomic.Bool
	settled   atomic.Bool
	aborts    atomic.Int32
}

func newHandle(cancel context.CancelFunc) *Handle {
	return &Handle{
		id:     ulid.MustNew(ulid.Now(), rand.Reader).String(),
		cancel: cancel,
	}
}

// ID returns the handle's unique id, used to correlate log lines.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

// Cancel aborts the request and tears down its connection. It is idempotent
// and a no-op once the request has settled.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if !h.settled.Load() {
			h.cancelled.Store(true)
			h.aborts.Add(1)
		}
		h.cancel()
	})
}

// Cancelled reports whether Cancel aborted the request before it settled.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled.Load()
}

// Settled reports whether the request's settlement has been processed.
func (h *Handle) Settled() bool {
	return h != nil && h.settled.Load()
}

// finish marks the request settled and releases its context.
func (h *Handle) finish() {
	h.settled.Store(true)
	h.once.Do(h.cancel)
}
