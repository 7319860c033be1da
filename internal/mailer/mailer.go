package mailer

import (
	"context"
	"log"
)

// Mailer delivers transactional mail. Implementations must return the
// transport error to the caller; whether that error is fatal is the
// caller's decision.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// DevConsole logs outgoing mail instead of delivering it. Used in dev
// and tests.
type DevConsole struct {
	enabled bool
}

func NewDevConsole(enabled bool) *DevConsole {
	return &DevConsole{enabled: enabled}
}

func (m *DevConsole) Send(_ context.Context, to, subject, html string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] to=%s subject=%q body=%q", to, subject, html)
	}
	return nil
}
