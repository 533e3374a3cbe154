package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const contextKeyRequestID = "request_id"

// out is swapped for a buffer in tests.
var out io.Writer = os.Stdout

var (
	infoTag  = color.New(color.FgWhite, color.BgGreen).SprintFunc()
	warnTag  = color.New(color.FgWhite, color.BgYellow).SprintFunc()
	errorTag = color.New(color.FgRed).SprintFunc()
)

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// getRequestID retrieves request ID from context
func getRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func emit(tag func(a ...interface{}) string, label, requestID, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		msg = fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}
	fmt.Fprintf(out, "%s %s\n", tag(label), msg)
}

// Info log information
func Info(format string, a ...interface{}) {
	emit(infoTag, "[INFO] ", "", format, a...)
}

// InfoWithContext logs information with context (includes request ID if available)
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(infoTag, "[INFO] ", getRequestID(ctx), format, a...)
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	emit(warnTag, "[WARN] ", "", format, a...)
}

// WarnWithContext logs warning with context (includes request ID if available)
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(warnTag, "[WARN] ", getRequestID(ctx), format, a...)
}

// Error log error
func Error(format string, a ...interface{}) {
	emit(errorTag, "[Error]", "", format, a...)
}

// ErrorWithContext logs error with context (includes request ID if available)
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	emit(errorTag, "[Error]", getRequestID(ctx), format, a...)
}

// InfoStruct dumps the full structure of its arguments. Used on debug
// startup paths to inspect loaded configuration and wiring.
func InfoStruct(a ...interface{}) {
	fmt.Fprintf(out, "%s %s", infoTag("[INFO] "), spew.Sdump(a...))
}
