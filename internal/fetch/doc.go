// Package fetch implements the request lifecycle shared by every screen.
//
// A Controller owns at most one in-flight GET at a time. Starting a request
// cancels the previous one, and a settlement is only applied when it belongs
// to the request that is still active. Late settlements of superseded or
// cancelled requests are dropped without touching the state.
//
// The lifecycle is split so it fits an event loop:
//   - Start runs on the owning flow and returns a Request.
//   - Request.Do performs the blocking HTTP call and may run anywhere.
//   - Settle runs on the owning flow again and applies the result.
//
// Controller is not safe for concurrent use; only Request.Do and Handle.Cancel
// may be called from other goroutines.
package fetch
