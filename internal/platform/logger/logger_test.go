package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "comprehend/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"DEBUG":     zerolog.DebugLevel,
		"info":      zerolog.InfoLevel,
		"warn":      zerolog.WarnLevel,
		"warning":   zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"fatal":     zerolog.FatalLevel,
		"panic":     zerolog.PanicLevel,
		"":          zerolog.DebugLevel,
		" verbose ": zerolog.DebugLevel,
		"disabled":  zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := level(in); got != want {
			t.Fatalf("level(%q) = %v, want %v", in, got, want)
		}
	}
}

// Init runs once per process, so every root-dependent assertion lives here
func TestInitAndChildren(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "comprehend-stub",
		Writer:       &buf,
		WithCaller:   true,
		SampleEvery:  2,
		StaticFields: map[string]string{"build": "test"},
	})

	always := func(l *Logger) *Logger {
		s := l.Sample(&zerolog.BasicSampler{N: 1})
		return &s
	}

	always(Get()).Info().Msg("root-msg")
	always(Named("records")).Info().Msg("named-msg")
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return the root logger")
	}

	ctx := WithRequest(context.Background(), "req-123", "DetectEntities")
	always(C(ctx)).Info().Msg("ctx-msg")
	always(C(WithOperation(context.Background(), "ListEndpoints"))).Info().Msg("op-only")
	always(C(context.Background())).Info().Msg("bare")

	out := buf.String()
	for _, want := range []string{
		"root-msg", "named-msg", "ctx-msg", "op-only",
		"component=", "records",
		"request_id=", "req-123",
		"operation=", "DetectEntities", "ListEndpoints",
		"service=", "comprehend-stub",
		"build=",
	} {
		kit.MustContain(t, out, want)
	}

	bare := out[strings.LastIndex(out, "bare"):]
	if strings.Contains(bare, "request_id") {
		t.Fatalf("background context should not carry a request id: %q", bare)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "")
	t.Setenv("LOG_COMPONENT", "client")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Component != "client" {
		t.Fatalf("FromEnv = %+v", opt)
	}
	if opt.Service != "comprehend" {
		t.Fatalf("FromEnv Service default = %q", opt.Service)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample = %+v", opt)
	}
}

func TestWithRequestSkipsEmpty(t *testing.T) {
	ctx := WithRequest(context.Background(), "", "")
	if ctx != context.Background() {
		t.Fatalf("empty values should not wrap the context")
	}
}

func TestWithRequestMerges(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-1", "")
	ctx = WithOperation(ctx, "ClassifyDocument")
	if scopeOf(ctx).requestID != "req-1" {
		t.Fatalf("operation binding dropped the request id")
	}
	if again := WithRequest(ctx, "req-1", "ClassifyDocument"); again != ctx {
		t.Fatalf("rebinding the same values should not wrap the context")
	}
	if s := scopeOf(WithRequest(ctx, "req-2", "")); s.requestID != "req-2" || s.operation != "ClassifyDocument" {
		t.Fatalf("scope = %+v", s)
	}
}
