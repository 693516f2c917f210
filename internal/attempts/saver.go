// Package attempts bridges finished quiz attempts into the history
// store. It lives apart from both so neither package depends on the
// other.
package attempts

import (
	"context"
	"fmt"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
	"github.com/Atchuta30/JEE-Prep-AI/internal/quiz"
)

// Saver persists submitted attempts. It is the store-side
// implementation of quiz.Sink.
type Saver struct {
	papers history.PaperRepo
}

// NewSaver returns a saver writing through the given repo.
func NewSaver(papers history.PaperRepo) *Saver {
	return &Saver{papers: papers}
}

// SaveAttempt converts a submitted attempt into a paper record and
// persists it. The attempt must already be graded.
func (s *Saver) SaveAttempt(ctx context.Context, a *quiz.Attempt) (string, error) {
	score, ok := a.Score()
	if !ok {
		return "", fmt.Errorf("attempt %s not yet submitted", a.ID)
	}

	answers := a.Answers()
	questions := make([]history.QuestionRecord, len(a.Questions))
	for i, q := range a.Questions {
		rec := history.QuestionRecord{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if answers[i] != quiz.Unanswered {
			selected := answers[i]
			rec.SelectedAnswer = &selected
		}
		questions[i] = rec
	}

	return s.papers.Save(ctx, &history.PaperRecord{
		ID:           a.ID,
		OwnerID:      a.OwnerID,
		Title:        a.Title,
		Subject:      string(a.Subject),
		Topics:       a.Topics,
		Difficulty:   string(a.Difficulty),
		NumQuestions: a.NumQuestions,
		Questions:    questions,
		Score:        score,
		CreatedAt:    a.CreatedAt,
	})
}
