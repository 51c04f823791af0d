package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestNewWriter_LevelAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter("freshmarket", &buf, hclog.Info)

	l.Debug("hidden")
	l.Named("i18n").Info("catalog loaded", "language", "es")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "freshmarket.i18n") || !strings.Contains(out, "language=es") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, closer, err := New("freshmarket", path, hclog.Debug)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Warn("disk check", "ok", true)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "disk check") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, closer, err := New("freshmarket", "", hclog.Trace)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestNew_BadPath(t *testing.T) {
	if _, _, err := New("freshmarket", filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), hclog.Info); err == nil {
		t.Error("expected error for unwritable path")
	}
}
