package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const sendTimeout = 5 * time.Second

type Dispatcher struct {
	notifier Notifier
	queue    chan Confirmation
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Confirmation, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for conf := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.notifier.Send(ctx, conf); err != nil {
			log.Error().
				Err(err).
				Str("email", conf.Email).
				Str("service", conf.ServiceName).
				Msg("failed to send booking confirmation")
		}
		cancel()
	}
}

// Dispatch enqueues a confirmation without blocking. A full queue drops
// the notification; the API response must never wait on email.
func (d *Dispatcher) Dispatch(conf Confirmation) {
	select {
	case d.queue <- conf:
	default:
		log.Warn().
			Str("email", conf.Email).
			Msg("notification queue full, dropping confirmation")
	}
}
