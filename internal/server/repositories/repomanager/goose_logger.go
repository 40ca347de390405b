package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// gooseLogger sends goose output to the service logger instead of stdout.
type gooseLogger struct {
	logger logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Info(context.Background(), line(format, v...))
}

// Fatalf only logs; goose calls it from its command line tool, never from
// the migration paths used here.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.logger.Error(context.Background(), line(format, v...))
}

func line(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
