package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := out
	out = buf
	t.Cleanup(func() { out = prev })
	return buf
}

func TestWarnWithContextIncludesRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := WithRequestID(context.Background(), "req-42")
	WarnWithContext(ctx, "lookup failed for %s", "user-1")

	assert.Contains(t, buf.String(), "[req_id=req-42]")
	assert.Contains(t, buf.String(), "lookup failed for user-1")
}

func TestInfoWithoutRequestID(t *testing.T) {
	buf := captureOutput(t)

	InfoWithContext(context.Background(), "listening on %s", ":8080")

	assert.NotContains(t, buf.String(), "req_id")
	assert.Contains(t, buf.String(), "listening on :8080")
}

func TestInfoStructDumpsFields(t *testing.T) {
	buf := captureOutput(t)

	type serverSettings struct {
		Host string
		Port int
	}
	InfoStruct(serverSettings{Host: "localhost", Port: 8080})

	assert.Contains(t, buf.String(), "serverSettings")
	assert.Contains(t, buf.String(), "localhost")
}
