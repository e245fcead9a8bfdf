package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewAttachesServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Service: "iconserver", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	componentLogger := WithComponent(logger, "http")
	componentLogger.Debug().Msg("hello")

	entry := decodeLine(t, &buf)
	if entry["service"] != "iconserver" || entry["component"] != "http" {
		t.Fatalf("unexpected fields: %v", entry)
	}
	if entry["message"] != "hello" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "WARN", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	logger.Warn().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected warn entry, got %q", buf.String())
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info().Str(FieldIcon, "check").Msg("rendered")
	if !strings.Contains(buf.String(), "rendered") || !strings.Contains(buf.String(), "icon=check") {
		t.Fatalf("unexpected console output: %q", buf.String())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatal("expected invalid level error")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Fatal("expected invalid format error")
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("request id = %q", got)
	}
	scoped := WithContext(ctx, base)
	scoped.Info().Msg("scoped")
	if entry := decodeLine(t, &buf); entry["request_id"] != "req-1" {
		t.Fatalf("expected request id field, got %v", entry)
	}

	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id from nil context, got %q", got)
	}
	if l := FromContext(context.Background()); l.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger without context logger, got %v", l.GetLevel())
	}
	stored := base.WithContext(context.Background())
	if l := FromContext(stored); l.GetLevel() == zerolog.Disabled {
		t.Fatal("expected stored logger to be returned")
	}
}
