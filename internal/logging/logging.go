// Package logging builds the application logger.
//
// The terminal belongs to the UI, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger writing to path at level. An empty path discards
// output. The returned closer releases the file.
func New(name, path string, level hclog.Level) (hclog.Logger, io.Closer, error) {
	if path == "" {
		return hclog.NewNullLogger(), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return NewWriter(name, f, level), f, nil
}

// NewWriter returns a logger writing to w.
func NewWriter(name string, w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		Output:     w,
		Color:      hclog.ColorOff,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
