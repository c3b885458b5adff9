package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sustainalink/platform/internal/core/ports"
)

type recordingNotifier struct {
	mu   sync.Mutex
	got  map[string][]string
	fail string
}

func (r *recordingNotifier) Notify(ctx context.Context, n ports.Notification) error {
	if n.Subject == r.fail {
		return errors.New("smtp down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.got == nil {
		r.got = make(map[string][]string)
	}
	r.got[n.Recipient] = append(r.got[n.Recipient], n.Subject)
	return nil
}

func runDispatcher(t *testing.T, d *Dispatcher) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	return cancel, done
}

func waitStopped(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestDispatcher_PreservesPerRecipientOrder(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDispatcher(3, notifier, zerolog.Nop())
	cancel, done := runDispatcher(t, d)

	recipients := []string{"a@b.com", "c@d.com", "e@f.com"}
	for i := 0; i < 20; i++ {
		for _, r := range recipients {
			n := ports.Notification{Kind: ports.NotificationWelcome, Recipient: r, Subject: fmt.Sprintf("%d", i)}
			if err := d.Enqueue(context.Background(), n); err != nil {
				t.Fatalf("enqueue: %v", err)
			}
		}
	}

	cancel()
	waitStopped(t, done)

	for _, r := range recipients {
		got := notifier.got[r]
		if len(got) != 20 {
			t.Fatalf("%s: expected 20 deliveries, got %d", r, len(got))
		}
		for i, subject := range got {
			if subject != fmt.Sprintf("%d", i) {
				t.Fatalf("%s: out of order delivery %v", r, got)
			}
		}
	}
}

func TestDispatcher_ContinuesAfterFailure(t *testing.T) {
	notifier := &recordingNotifier{fail: "boom"}
	d := NewDispatcher(1, notifier, zerolog.Nop())
	cancel, done := runDispatcher(t, d)

	for _, subject := range []string{"first", "boom", "last"} {
		_ = d.Enqueue(context.Background(), ports.Notification{Recipient: "a@b.com", Subject: subject})
	}

	cancel()
	waitStopped(t, done)

	if got := notifier.got["a@b.com"]; len(got) != 2 || got[1] != "last" {
		t.Fatalf("unexpected deliveries: %v", got)
	}
}

func TestDispatcher_EnqueueAfterStop(t *testing.T) {
	d := NewDispatcher(0, &recordingNotifier{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	cancel, done := runDispatcher(t, d)
	cancel()
	waitStopped(t, done)

	err := d.Enqueue(context.Background(), ports.Notification{Recipient: "a@b.com"})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingNotifier{}, zerolog.Nop())
	first := d.shardIndex("a@b.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("a@b.com") != first {
			t.Fatal("shard index changed between calls")
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
