package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Atchuta30/JEE-Prep-AI/ent"
	"github.com/Atchuta30/JEE-Prep-AI/ent/paper"
	"github.com/Atchuta30/JEE-Prep-AI/ent/schema"
)

// paperRepo implements PaperRepo using the ent client.
type paperRepo struct {
	client *ent.Client
}

func (r *paperRepo) Save(ctx context.Context, rec *PaperRecord) (string, error) {
	if rec.OwnerID == "" {
		return "", ErrNoOwner
	}
	ownerID, err := uuid.Parse(rec.OwnerID)
	if err != nil {
		return "", fmt.Errorf("parse owner ID: %w", err)
	}

	create := r.client.Paper.Create().
		SetOwnerID(ownerID).
		SetTitle(rec.Title).
		SetSubject(rec.Subject).
		SetTopics(rec.Topics).
		SetDifficulty(rec.Difficulty).
		SetNumQuestions(rec.NumQuestions).
		SetQuestions(toSchemaQuestions(rec.Questions)).
		SetScore(rec.Score)

	if rec.ID != "" {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return "", fmt.Errorf("parse paper ID: %w", err)
		}
		create = create.SetID(id)
	}
	if !rec.CreatedAt.IsZero() {
		create = create.SetCreatedAt(rec.CreatedAt.UTC())
	}

	p, err := create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save paper: %w", err)
	}
	return p.ID.String(), nil
}

func (r *paperRepo) ListByOwner(ctx context.Context, ownerID string) ([]PaperSummary, error) {
	uid, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("parse owner ID: %w", err)
	}

	papers, err := r.client.Paper.Query().
		Where(paper.OwnerID(uid)).
		Order(ent.Desc(paper.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}

	summaries := make([]PaperSummary, 0, len(papers))
	for _, p := range papers {
		summaries = append(summaries, PaperSummary{
			ID:            p.ID.String(),
			Title:         p.Title,
			Subject:       p.Subject,
			Difficulty:    p.Difficulty,
			Score:         p.Score,
			QuestionCount: len(p.Questions),
			CreatedAt:     p.CreatedAt.UTC(),
		})
	}
	return summaries, nil
}

func (r *paperRepo) GetByID(ctx context.Context, ownerID, id string) (*PaperRecord, error) {
	uid, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("parse owner ID: %w", err)
	}
	pid, err := uuid.Parse(id)
	if err != nil {
		// A malformed ID cannot name a stored paper.
		return nil, ErrNotAvailable
	}

	// The owner predicate folds "does not exist" and "belongs to
	// someone else" into the same outcome.
	p, err := r.client.Paper.Query().
		Where(paper.ID(pid), paper.OwnerID(uid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotAvailable
		}
		return nil, fmt.Errorf("get paper: %w", err)
	}

	return &PaperRecord{
		ID:           p.ID.String(),
		OwnerID:      p.OwnerID.String(),
		Title:        p.Title,
		Subject:      p.Subject,
		Topics:       p.Topics,
		Difficulty:   p.Difficulty,
		NumQuestions: p.NumQuestions,
		Questions:    fromSchemaQuestions(p.Questions),
		Score:        p.Score,
		CreatedAt:    p.CreatedAt.UTC(),
	}, nil
}

func (r *paperRepo) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	uid, err := uuid.Parse(ownerID)
	if err != nil {
		return 0, fmt.Errorf("parse owner ID: %w", err)
	}
	n, err := r.client.Paper.Delete().
		Where(paper.OwnerID(uid)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete papers: %w", err)
	}
	return n, nil
}

func toSchemaQuestions(qs []QuestionRecord) []schema.PaperQuestion {
	out := make([]schema.PaperQuestion, len(qs))
	for i, q := range qs {
		out[i] = schema.PaperQuestion{
			Text:           q.Text,
			Options:        q.Options,
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    q.Explanation,
			SelectedAnswer: q.SelectedAnswer,
		}
	}
	return out
}

func fromSchemaQuestions(qs []schema.PaperQuestion) []QuestionRecord {
	out := make([]QuestionRecord, len(qs))
	for i, q := range qs {
		out[i] = QuestionRecord{
			Text:           q.Text,
			Options:        q.Options,
			CorrectAnswer:  q.CorrectAnswer,
			Explanation:    q.Explanation,
			SelectedAnswer: q.SelectedAnswer,
		}
	}
	return out
}
