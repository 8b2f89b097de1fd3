// Package transition serializes status-transition requests per entity. The
// backend validates and applies every transition; the invoker only prevents
// overlapping submissions and refreshes entity state after a success.
package transition

import (
	"context"
	"errors"
	"sync"
)

// ErrInFlight is returned when a transition is requested for an entity that
// already has one running. The duplicate request is dropped, not queued.
var ErrInFlight = errors.New("transition already in flight")

// RefreshFunc re-reads entity state from the server after a transition
// succeeds. Local state is never mutated optimistically.
type RefreshFunc func(ctx context.Context) error

// Invoker guards transition submissions per entity key.
type Invoker struct {
	mu       sync.Mutex
	inflight map[string]bool
}

func NewInvoker() *Invoker {
	return &Invoker{inflight: make(map[string]bool)}
}

// Busy reports whether a transition is currently running for the entity.
func (inv *Invoker) Busy(key string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.inflight[key]
}

// Invoke runs do for the entity identified by key, then refresh if do
// succeeded. While do is running, further Invoke calls for the same key fail
// fast with ErrInFlight without touching the network. On failure the entity
// keeps its prior state; refresh is skipped.
func (inv *Invoker) Invoke(ctx context.Context, key string, do func(ctx context.Context) error, refresh RefreshFunc) error {
	inv.mu.Lock()
	if inv.inflight[key] {
		inv.mu.Unlock()
		return ErrInFlight
	}
	inv.inflight[key] = true
	inv.mu.Unlock()

	defer func() {
		inv.mu.Lock()
		delete(inv.inflight, key)
		inv.mu.Unlock()
	}()

	if err := do(ctx); err != nil {
		return err
	}
	if refresh != nil {
		return refresh(ctx)
	}
	return nil
}
