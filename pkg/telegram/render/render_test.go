package render

import (
	"fmt"
	"strings"
	"testing"
)

func numberedLines(t *testing.T, text string) []string {
	t.Helper()
	if !strings.HasPrefix(text, MCQHeader) {
		t.Fatalf("missing header in %q", text)
	}
	body := strings.TrimPrefix(text, MCQHeader)
	if body == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(body, "\n"), "\n")
}

func TestMCQ(t *testing.T) {
	tests := []struct {
		name      string
		questions []string
	}{
		{"none", nil},
		{"one", []string{"Powerhouse of the cell?"}},
		{"five", []string{"a", "b", "c", "d", "e"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := numberedLines(t, MCQ(tt.questions))
			if len(lines) != len(tt.questions) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.questions))
			}
			for i, line := range lines {
				want := fmt.Sprintf("%d. %s", i+1, tt.questions[i])
				if line != want {
					t.Errorf("line %d = %q, want %q", i, line, want)
				}
			}
		})
	}
}

func TestMCQ_HeaderOnly(t *testing.T) {
	if got := MCQ(nil); got != MCQHeader {
		t.Errorf("got %q, want header only", got)
	}
}

func TestNote(t *testing.T) {
	content := "  line one\n\nline two without newline"
	if got := Note(content); got != NoteHeader+content {
		t.Errorf("got %q", got)
	}
}

func TestMenuLabels(t *testing.T) {
	if len(MenuLabels) != 7 {
		t.Fatalf("expected 7 labels, got %d", len(MenuLabels))
	}
	for _, label := range MenuLabels {
		if !strings.HasPrefix(label, "/") {
			t.Errorf("label %q is not a command", label)
		}
	}
}
