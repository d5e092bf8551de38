package telemetry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

var errAsyncPubSendFail = errors.New("send fail")

func TestAsyncPubSendsAndInvokesOnAfter(t *testing.T) {
	var sent, after atomic.Int64
	a := newAsyncPub(context.Background(), 4, func(v int) error {
		sent.Add(1)
		return nil
	}, asyncPubHooks[int]{OnAfter: func() { after.Add(1) }})
	defer a.Close()

	for i := 0; i < 3; i++ {
		if err := a.Send(i); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) && sent.Load() < 3 {
		time.Sleep(5 * time.Millisecond)
	}
	if sent.Load() != 3 || after.Load() != 3 {
		t.Fatalf("sent=%d after=%d, want 3/3", sent.Load(), after.Load())
	}
}

func TestAsyncPubOverflowInvokesOnDrop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var drops atomic.Int64
	a := newAsyncPub(ctx, 1, func(v int) error { time.Sleep(150 * time.Millisecond); return nil },
		asyncPubHooks[int]{OnDrop: func() error { drops.Add(1); return ErrRedisBusOverflow }})
	defer a.Close()

	if err := a.Send(1); err != nil {
		t.Fatalf("unexpected error on first send: %v", err)
	}
	if err := a.Send(2); !errors.Is(err, ErrRedisBusOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if drops.Load() != 1 {
		t.Fatalf("drops = %d, want 1", drops.Load())
	}
}

func TestAsyncPubSendErrorInvokesOnError(t *testing.T) {
	var errs atomic.Int64
	a := newAsyncPub(context.Background(), 2, func(v int) error { return errAsyncPubSendFail },
		asyncPubHooks[int]{OnError: func(error) { errs.Add(1) }})
	defer a.Close()

	_ = a.Send(1)
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) && errs.Load() == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	if errs.Load() == 0 {
		t.Fatalf("expected OnError invocation")
	}
}

func TestAsyncPubSendAfterCloseReturnsErrClosed(t *testing.T) {
	a := newAsyncPub(context.Background(), 2, func(v int) error { return nil }, asyncPubHooks[int]{})
	a.Close()
	if err := a.Send(1); !errors.Is(err, ErrAsyncPubClosed) {
		t.Fatalf("expected ErrAsyncPubClosed, got %v", err)
	}
}
