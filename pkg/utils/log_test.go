package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestTeeLogFile(t *testing.T) {
	defer LogOutput(os.Stderr)()

	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "bot.log")
	output, closeLog, err := TeeLogFile(&buf, path)
	if err != nil {
		t.Fatal(err)
	}

	log.Info("premium users loaded", "count", 3)
	closeLog()

	if output == nil {
		t.Fatal("expected a writer")
	}
	if !strings.Contains(buf.String(), "premium users loaded") {
		t.Errorf("log line missing from writer: %q", buf.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "premium users loaded") {
		t.Errorf("log line missing from file: %q", b)
	}
}

func TestTeeLogFile_Empty(t *testing.T) {
	var buf bytes.Buffer
	output, closeLog, err := TeeLogFile(&buf, "")
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	if output != &buf {
		t.Error("empty path should return the writer unchanged")
	}
}
