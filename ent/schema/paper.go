package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PaperQuestion is the JSON shape of one question inside a stored
// paper, including the answer the owner picked.
type PaperQuestion struct {
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	CorrectAnswer  int      `json:"correctAnswer"`
	Explanation    string   `json:"explanation,omitempty"`
	SelectedAnswer *int     `json:"selectedAnswer"`
}

// Paper is a submitted question paper with its questions, the
// owner's answers, and the graded score.
type Paper struct {
	ent.Schema
}

func (Paper) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("owner_id", uuid.UUID{}).
			Immutable().
			Comment("Profile that took this paper"),
		field.String("title").
			Default("").
			Comment("Optional display title; empty means derive from subject and difficulty"),
		field.String("subject"),
		field.JSON("topics", []string{}),
		field.String("difficulty"),
		field.Int("num_questions").
			Comment("Requested question count; may exceed len(questions)"),
		field.JSON("questions", []PaperQuestion{}),
		field.Int("score").
			Comment("Correct answers at submission time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Paper) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
	}
}
