package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogNotifier stands in when no email provider is configured: it logs
// the would-be confirmation and reports success.
type LogNotifier struct {
	brand string
}

func NewLogNotifier(brand string) *LogNotifier {
	return &LogNotifier{brand: brand}
}

func (n *LogNotifier) Send(_ context.Context, conf Confirmation) error {
	log.Info().
		Str("to", conf.Email).
		Str("subject", confirmationSubject(n.brand)).
		Str("service", conf.ServiceName).
		Str("timeslot", conf.Timeslot).
		Str("duration", conf.Duration).
		Msg("email provider not configured, logging confirmation instead")
	return nil
}
