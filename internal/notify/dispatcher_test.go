package notify

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingNotifier struct {
	sent chan Confirmation
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, conf Confirmation) error {
	r.sent <- conf
	return r.err
}

func TestDispatchDeliversAsync(t *testing.T) {
	notifier := &recordingNotifier{sent: make(chan Confirmation, 1)}
	d := NewDispatcher(notifier)

	conf := Confirmation{
		Name:        "John Doe",
		Email:       "john@example.com",
		ServiceName: "Facial Treatment",
		Timeslot:    "09:00",
		Duration:    "60 minutes",
	}
	d.Dispatch(conf)

	select {
	case got := <-notifier.sent:
		if got != conf {
			t.Errorf("Delivered %+v, want %+v", got, conf)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for delivery")
	}
}

func TestDispatchNeverBlocksOnSendFailure(t *testing.T) {
	notifier := &recordingNotifier{
		sent: make(chan Confirmation, 10),
		err:  errors.New("provider down"),
	}
	d := NewDispatcher(notifier)

	// Dispatch must return immediately regardless of the notifier
	// outcome; the failure is only logged.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Dispatch(Confirmation{Email: "john@example.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked the caller")
	}
}
