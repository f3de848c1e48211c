package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds a single request when no client is supplied.
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 10 << 20
)

// Decoder turns a successful response body into a payload.
type Decoder[T any] func(body []byte) (T, error)

// Option configures a Controller.
type Option func(*options)

type options struct {
	client *http.Client
	logger zerolog.Logger
}

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

// WithTimeout uses a default client bounded by timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.client = &http.Client{Timeout: timeout}
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Controller manages the single logical request of one screen instance.
type Controller[T any] struct {
	client *http.Client
	decode Decoder[T]
	logger zerolog.Logger

	state  State[T]
	active *Handle
	closed bool
}

// New creates a controller in the Idle state.
func New[T any](decode Decoder[T], opts ...Option) *Controller[T] {
	o := options{
		client: &http.Client{Timeout: DefaultTimeout},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[T]{
		client: o.client,
		decode: decode,
		logger: o.logger,
		state:  Idle[T](),
	}
}

// State returns the current state.
func (c *Controller[T]) State() State[T] {
	return c.state
}

// Active returns the handle of the in-flight request, or nil.
func (c *Controller[T]) Active() *Handle {
	return c.active
}

// Closed reports whether the owning screen has been torn down.
func (c *Controller[T]) Closed() bool {
	return c.closed
}

// Start cancels any in-flight request, moves the state to Loading and returns
// a new request for target. The request does nothing until Do is called.
// Once the controller is closed, Start returns an already cancelled request
// and leaves the state untouched.
func (c *Controller[T]) Start(ctx context.Context, target string) *Request[T] {
	if c.active != nil {
		c.logger.Debug().Ctx(ctx).Str("handle", c.active.ID()).Msg("superseding in-flight request")
		c.active.Cancel()
		c.active = nil
	}

	reqCtx, cancel := context.WithCancel(ctx)
	handle := newHandle(cancel)
	req := &Request[T]{
		ctx:    reqCtx,
		handle: handle,
		target: target,
		client: c.client,
		decode: c.decode,
	}

	if c.closed {
		handle.Cancel()
		return req
	}

	c.active = handle
	c.state = Loading[T]()
	c.logger.Debug().Ctx(ctx).Str("handle", handle.ID()).Str("target", target).Msg("request started")
	return req
}

// Settle applies a settlement produced by Request.Do. It returns false, and
// leaves the state unchanged, when the settlement belongs to a cancelled or
// superseded request or when the controller is closed.
func (c *Controller[T]) Settle(s Settlement[T]) bool {
	handle := s.handle
	if handle == nil {
		return false
	}
	current := handle == c.active
	aborted := handle.Cancelled() || errors.Is(s.err, ErrCancelled)
	handle.finish()

	if current {
		c.active = nil
	}
	if c.closed || !current || aborted {
		c.logger.Debug().
			Str("handle", handle.ID()).
			Bool("current", current).
			Bool("aborted", aborted).
			Msg("dropping stale settlement")
		return false
	}

	if s.err != nil {
		c.state = Failure[T](s.err)
		c.logger.Warn().Err(s.err).Str("handle", handle.ID()).Msg("request failed")
		return true
	}
	c.state = Success(s.payload)
	c.logger.Debug().Str("handle", handle.ID()).Msg("request succeeded")
	return true
}

// Cancel aborts the request owned by handle. It is idempotent and safe to
// call after settlement. The state is not changed.
func (c *Controller[T]) Cancel(handle *Handle) {
	if handle == nil {
		return
	}
	handle.Cancel()
	if handle == c.active {
		c.active = nil
	}
}

// Close tears the controller down with its screen. Any in-flight request is
// cancelled and later settlements are ignored.
func (c *Controller[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.active != nil {
		c.logger.Debug().Str("handle", c.active.ID()).Msg("cancelling request on close")
		c.active.Cancel()
		c.active = nil
	}
}

// Fetch runs a whole lifecycle synchronously and returns the resulting state.
func (c *Controller[T]) Fetch(ctx context.Context, target string) State[T] {
	c.Settle(c.Start(ctx, target).Do())
	return c.state
}

// Request is one started GET. It is bound to the handle that can cancel it.
type Request[T any] struct {
	ctx    context.Context
	handle *Handle
	target string
	client *http.Client
	decode Decoder[T]
}

// Handle returns the request's cancellation handle.
func (r *Request[T]) Handle() *Handle {
	return r.handle
}

// Do performs the GET and decodes the body. It blocks and is meant to run off
// the owning flow; the result must be handed back to Controller.Settle.
func (r *Request[T]) Do() Settlement[T] {
	s := Settlement[T]{handle: r.handle}

	httpReq, err := http.NewRequestWithContext(r.ctx, http.MethodGet, r.target, nil)
	if err != nil {
		s.err = &TransportError{Err: err}
		return s
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		s.err = r.transportFailure(err)
		return s
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		s.err = &HTTPStatusError{StatusCode: resp.StatusCode}
		return s
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		s.err = r.transportFailure(err)
		return s
	}

	payload, err := r.decode(body)
	if err != nil {
		s.err = &ParseError{Err: err}
		return s
	}
	s.payload = payload
	return s
}

// transportFailure classifies a client error as a cancellation or a
// transport error. URL wrapping is stripped so the message is the cause.
func (r *Request[T]) transportFailure(err error) error {
	if r.handle.Cancelled() || errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	return &TransportError{Err: err}
}

// Settlement is the outcome of Request.Do.
type Settlement[T any] struct {
	handle  *Handle
	payload T
	err     error
}

// Handle returns the handle of the request that produced the settlement.
func (s Settlement[T]) Handle() *Handle {
	return s.handle
}

// Err returns the settlement's error, if any.
func (s Settlement[T]) Err() error {
	return s.err
}
