package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDefaultLoggerRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut)

	l.Debug("hidden")
	l.Info("tones", Fields{"root": "c", "count": 8})
	l.Error(errors.New("boom"), "failed")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug line written at info level: %q", out.String())
	}
	if !strings.Contains(out.String(), "[INFO] tones count=8 root=c") {
		t.Errorf("info line = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] failed: boom") {
		t.Errorf("error line = %q", errOut.String())
	}
}

func TestWithFieldsAndContext(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, &out)
	l.SetLevel(DebugLevel)

	ctx := ContextWithFields(context.Background(), Fields{"op": "scale"})
	l.WithFields(Fields{"component": "chroma"}).WithContext(ctx).Debug("start")

	if !strings.Contains(out.String(), "[DEBUG] start component=chroma op=scale") {
		t.Errorf("line = %q", out.String())
	}
}

func TestFatalCallsExit(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, &out)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal(errors.New("bad"), "stop")
	if code != 1 {
		t.Errorf("exit code = %d", code)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{"debug": DebugLevel, "INFO": InfoLevel, "": InfoLevel, "warning": WarnLevel, "error": ErrorLevel}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) succeeded")
	}
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Errorf("global logger = %T, want *NoOpLogger", GetGlobalLogger())
	}
	Info("dropped")
}
