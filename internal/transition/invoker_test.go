package transition

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestInvokeRefreshesAfterSuccess(t *testing.T) {
	inv := NewInvoker()

	var calls []string
	err := inv.Invoke(context.Background(), "project:1",
		func(ctx context.Context) error {
			calls = append(calls, "do")
			return nil
		},
		func(ctx context.Context) error {
			calls = append(calls, "refresh")
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(calls) != 2 || calls[0] != "do" || calls[1] != "refresh" {
		t.Errorf("calls = %v, want [do refresh]", calls)
	}
}

func TestInvokeSkipsRefreshOnFailure(t *testing.T) {
	inv := NewInvoker()
	boom := errors.New("rejected")

	refreshed := false
	err := inv.Invoke(context.Background(), "project:1",
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error {
			refreshed = true
			return nil
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if refreshed {
		t.Error("refresh ran after a failed transition")
	}
}

func TestDuplicateInvokeFailsFast(t *testing.T) {
	inv := NewInvoker()

	var requests atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- inv.Invoke(context.Background(), "asset:7",
			func(ctx context.Context) error {
				requests.Add(1)
				close(started)
				<-release
				return nil
			},
			nil,
		)
	}()

	<-started
	err := inv.Invoke(context.Background(), "asset:7",
		func(ctx context.Context) error {
			requests.Add(1)
			return nil
		},
		nil,
	)
	if !errors.Is(err, ErrInFlight) {
		t.Errorf("duplicate invoke err = %v, want ErrInFlight", err)
	}
	if !inv.Busy("asset:7") {
		t.Error("Busy = false while transition in flight")
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first invoke: %v", err)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("network requests = %d, want 1", got)
	}
}

func TestDistinctKeysDoNotBlock(t *testing.T) {
	inv := NewInvoker()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- inv.Invoke(context.Background(), "contract:1",
			func(ctx context.Context) error {
				close(started)
				<-release
				return nil
			},
			nil,
		)
	}()

	<-started
	err := inv.Invoke(context.Background(), "contract:2",
		func(ctx context.Context) error { return nil },
		nil,
	)
	if err != nil {
		t.Errorf("independent entity blocked: %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first invoke: %v", err)
	}
}

func TestKeyReleasedAfterFailure(t *testing.T) {
	inv := NewInvoker()

	err := inv.Invoke(context.Background(), "project:9",
		func(ctx context.Context) error { return errors.New("rejected") },
		nil,
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if inv.Busy("project:9") {
		t.Error("key still busy after failed transition")
	}
}
