// Package render builds the text bodies the bot sends.
package render

import (
	"fmt"
	"strings"
)

const (
	Welcome = "👋 Welcome to NEETHelper24x7Bot!\nChoose your preferred language to begin."

	PremiumCaption = "🎓 Become a Premium Member!\n\n" +
		"💠 Choose your plan:\n" +
		"🔹 ₹49 – 30 days access\n" +
		"🔸 ₹299 – Full NEET season (till exam)\n\n" +
		"💳 UPI: 9907843768@ybl\n" +
		"📸 After payment, tap ✅ Done below."

	PaymentDone = "✅ Payment step completed!\n\n" +
		"📌 Please join the approval channel to verify your payment:\n" +
		"👉 @NEETPremiumVerify"

	MCQHeader = "🧠 Today's Biology MCQs:\n\n"

	NoteHeader = "📘 Sample Note:\n\n"

	NotesUnavailable = "⚠️ Notes not available right now."

	DoneLabel = "✅ Done"
)

// MenuLabels are the welcome keyboard buttons in display order. Only some of
// them have handlers.
var MenuLabels = []string{"/english", "/bengali", "/hindi", "/mcq", "/notes", "/mocktest", "/premium"}

// MenuPerRow is how many MenuLabels share a keyboard row.
const MenuPerRow = 3

// MCQ renders questions as a 1-indexed list under MCQHeader. Every item ends
// with a newline; no questions leaves just the header.
func MCQ(questions []string) string {
	var sb strings.Builder
	sb.WriteString(MCQHeader)
	for i, question := range questions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, question)
	}
	return sb.String()
}

// Note prefixes content with NoteHeader without touching it.
func Note(content string) string {
	return NoteHeader + content
}
