// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Atchuta30/JEE-Prep-AI/ent/paper"
	"github.com/Atchuta30/JEE-Prep-AI/ent/predicate"
	"github.com/Atchuta30/JEE-Prep-AI/ent/schema"
)

// PaperUpdate is the builder for updating Paper entities.
type PaperUpdate struct {
	config
	hooks    []Hook
	mutation *PaperMutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdate) Where(ps ...predicate.Paper) *PaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PaperUpdate) SetTitle(v string) *PaperUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableTitle(v *string) *PaperUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PaperUpdate) SetSubject(v string) *PaperUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableSubject(v *string) *PaperUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *PaperUpdate) SetTopics(v []string) *PaperUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *PaperUpdate) AppendTopics(v []string) *PaperUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PaperUpdate) SetDifficulty(v string) *PaperUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableDifficulty(v *string) *PaperUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *PaperUpdate) SetNumQuestions(v int) *PaperUpdate {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableNumQuestions(v *int) *PaperUpdate {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *PaperUpdate) AddNumQuestions(v int) *PaperUpdate {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PaperUpdate) SetQuestions(v []schema.PaperQuestion) *PaperUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PaperUpdate) AppendQuestions(v []schema.PaperQuestion) *PaperUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *PaperUpdate) SetScore(v int) *PaperUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PaperUpdate) SetNillableScore(v *int) *PaperUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PaperUpdate) AddScore(v int) *PaperUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdate) Mutation() *PaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(paper.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(paper.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(paper.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(paper.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(paper.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(paper.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(paper.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(paper.FieldScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaperUpdateOne is the builder for updating a single Paper entity.
type PaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaperMutation
}

// SetTitle sets the "title" field.
func (_u *PaperUpdateOne) SetTitle(v string) *PaperUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableTitle(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PaperUpdateOne) SetSubject(v string) *PaperUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableSubject(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *PaperUpdateOne) SetTopics(v []string) *PaperUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *PaperUpdateOne) AppendTopics(v []string) *PaperUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PaperUpdateOne) SetDifficulty(v string) *PaperUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableDifficulty(v *string) *PaperUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetNumQuestions sets the "num_questions" field.
func (_u *PaperUpdateOne) SetNumQuestions(v int) *PaperUpdateOne {
	_u.mutation.ResetNumQuestions()
	_u.mutation.SetNumQuestions(v)
	return _u
}

// SetNillableNumQuestions sets the "num_questions" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableNumQuestions(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetNumQuestions(*v)
	}
	return _u
}

// AddNumQuestions adds value to the "num_questions" field.
func (_u *PaperUpdateOne) AddNumQuestions(v int) *PaperUpdateOne {
	_u.mutation.AddNumQuestions(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PaperUpdateOne) SetQuestions(v []schema.PaperQuestion) *PaperUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PaperUpdateOne) AppendQuestions(v []schema.PaperQuestion) *PaperUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *PaperUpdateOne) SetScore(v int) *PaperUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PaperUpdateOne) SetNillableScore(v *int) *PaperUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PaperUpdateOne) AddScore(v int) *PaperUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the PaperMutation object of the builder.
func (_u *PaperUpdateOne) Mutation() *PaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaperUpdate builder.
func (_u *PaperUpdateOne) Where(ps ...predicate.Paper) *PaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaperUpdateOne) Select(field string, fields ...string) *PaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paper entity.
func (_u *PaperUpdateOne) Save(ctx context.Context) (*Paper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaperUpdateOne) SaveX(ctx context.Context) *Paper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PaperUpdateOne) sqlSave(ctx context.Context) (_node *Paper, err error) {
	_spec := sqlgraph.NewUpdateSpec(paper.Table, paper.Columns, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paper.FieldID)
		for _, f := range fields {
			if !paper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paper.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(paper.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(paper.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(paper.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumQuestions(); ok {
		_spec.SetField(paper.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumQuestions(); ok {
		_spec.AddField(paper.FieldNumQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(paper.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paper.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(paper.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(paper.FieldScore, field.TypeInt, value)
	}
	_node = &Paper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
