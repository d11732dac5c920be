package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/memorablecontact/presales/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newCloudLogger
	}
}

type structuredLogger struct {
	componentName string
	logger        zerolog.Logger
}

// Cloud Logging parses one JSON object per line from stdout. It adds its own
// timestamp, so none is written here.
func newCloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
		logger:        zerolog.New(os.Stdout),
	}
}

func (l structuredLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	event := l.logger.Log().
		Str("severity", string(severity)).
		Str("component", l.componentName).
		Dict("labels", zerolog.Dict().Str("aggregate", traceLabel))
	if trace := traceFromContext(ctx); trace != "" {
		event = event.Str("logging.googleapis.com/trace", trace)
	}
	event.Msg(l.componentName + ":" + fmt.Sprintf(format, a...))
}

func traceFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return mycontext.TraceFromContext(ctx)
}
