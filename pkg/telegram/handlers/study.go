package handlers

import (
	"fmt"

	"gopkg.in/telebot.v4"

	"neethelper/pkg/store"
	"neethelper/pkg/telegram/render"
)

const (
	mcqSubject = "biology"
	mcqLimit   = 5
)

func (b *Bot) handleMCQ(c telebot.Context) error {
	bank, err := store.LoadQuestionBank(b.paths.Questions)
	if err != nil {
		return fmt.Errorf("error loading question bank: %w", err)
	}
	return c.Send(render.MCQ(bank.Subject(mcqSubject, mcqLimit)))
}

// handleNotes never fails on a bad note file; the user gets an apology and
// the cause only goes to the log.
func (b *Bot) handleNotes(c telebot.Context) error {
	note, err := store.ReadNote(b.paths.Note)
	if err != nil {
		kind, _ := store.KindOf(err)
		b.logger.Warn("Note unavailable", "kind", kind, "error", err)
		return c.Send(render.NotesUnavailable)
	}
	return c.Send(render.Note(note))
}
