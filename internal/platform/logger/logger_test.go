package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"WARNING": Warn,
		"error":   Error,
		"otro":    Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestJSONLogger_IncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "finca-lechera", Output: &buf})

	l.With(map[string]any{"animal_id": int64(7)}).Info("produccion registrada", map[string]any{"cantidad": 12.5})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "produccion registrada" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["app"] != "finca-lechera" {
		t.Fatalf("expected app field, got %v", entry["app"])
	}
	if entry["animal_id"] != float64(7) || entry["cantidad"] != 12.5 {
		t.Fatalf("expected fields in entry, got %v", entry)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("no debería salir", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	l.Error("falla", map[string]any{"err": "boom"})
	if !strings.Contains(buf.String(), "err=boom") {
		t.Fatalf("expected text output with err field, got %q", buf.String())
	}
}
