// Package notify delivers booking confirmations as a fire-and-forget
// side effect. A failed or dropped notification is logged and never
// surfaces to the caller: the booking itself already committed.
package notify

import "context"

// Confirmation is everything the notifier needs to confirm a committed
// booking to the visitor.
type Confirmation struct {
	Name        string
	Email       string
	ServiceName string
	Timeslot    string
	Duration    string
}

type Notifier interface {
	Send(ctx context.Context, conf Confirmation) error
}
