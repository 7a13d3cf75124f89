package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// LogOutput points the default logger at w and returns a func that restores
// stderr. The returned func is safe to defer.
func LogOutput(w io.Writer) func() {
	log.SetOutput(w)
	log.SetReportTimestamp(true)
	log.SetColorProfile(termenv.TrueColor)
	return func() { log.SetOutput(os.Stderr) }
}

// TeeLogFile makes the default logger write to w and also append to path,
// returning the combined writer. An empty path returns w unchanged. The
// returned func closes the file.
func TeeLogFile(w io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return w, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("error creating log folder: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	output := io.MultiWriter(w, f)
	log.SetOutput(output)
	return output, func() {
		log.SetOutput(w)
		f.Close()
	}, nil
}
