package notify

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// LogSender writes the recipient and subject of each message to the log.
// The body is never logged because it carries the code.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("module", "notify")}
}

func (s *LogSender) Send(ctx context.Context, m Message) error {
	s.logger.Info(ctx, "email queued", "to", m.To, "subject", m.Subject)
	return nil
}
