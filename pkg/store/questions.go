package store

import (
	"os"

	"neethelper/pkg/utils"
)

// QuestionBank maps a subject to its questions in presentation order.
type QuestionBank map[string][]string

// Subject returns at most limit questions of subject, in stored order.
// An unknown subject yields an empty slice. A negative limit means no limit.
func (q QuestionBank) Subject(subject string, limit int) []string {
	questions := q[subject]
	if limit >= 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions
}

// LoadQuestionBank reads the JSON object at path. It is meant to be called
// on every request; nothing is cached.
func LoadQuestionBank(path string) (QuestionBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	bank, err := utils.DecodeAndClose[QuestionBank](f)
	if err != nil {
		return nil, decodeError(path, err)
	}
	return bank, nil
}
