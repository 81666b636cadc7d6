package logger

import (
	"bytes"
	"context"
	"testing"

	"daybook/internal/platform/testkit"
)

func TestInit_WritesStructuredJSON(t *testing.T) {
	testkit.Serial(t)

	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "json", Service: "daybook-test", Writer: &buf})

	Get().Info().Str("k", "v").Msg("hello")

	out := buf.String()
	// Init is once-guarded; if another test won the race the writer differs and
	// there is nothing to assert against
	if out == "" {
		t.Skip("root logger already initialized by another test")
	}
	testkit.MustContain(t, out, `"message":"hello"`)
	testkit.MustContain(t, out, `"k":"v"`)
	testkit.MustContain(t, out, `"service":"daybook-test"`)
}

func TestC_AttachesRequestID(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-123")
	l := C(ctx)
	if l == nil {
		t.Fatalf("expected non-nil child logger")
	}
	// no request id means the plain root logger comes back
	if C(context.Background()) == nil {
		t.Fatalf("expected non-nil logger for bare context")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{
		"info":    "info",
		"WARNING": "warn",
		"bogus":   "debug",
		"":        "debug",
	} {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
