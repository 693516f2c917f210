// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Atchuta30/JEE-Prep-AI/ent/paper"
	"github.com/Atchuta30/JEE-Prep-AI/ent/schema"
	"github.com/google/uuid"
)

// PaperCreate is the builder for creating a Paper entity.
type PaperCreate struct {
	config
	mutation *PaperMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *PaperCreate) SetOwnerID(v uuid.UUID) *PaperCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PaperCreate) SetTitle(v string) *PaperCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *PaperCreate) SetNillableTitle(v *string) *PaperCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PaperCreate) SetSubject(v string) *PaperCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *PaperCreate) SetTopics(v []string) *PaperCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PaperCreate) SetDifficulty(v string) *PaperCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNumQuestions sets the "num_questions" field.
func (_c *PaperCreate) SetNumQuestions(v int) *PaperCreate {
	_c.mutation.SetNumQuestions(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *PaperCreate) SetQuestions(v []schema.PaperQuestion) *PaperCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *PaperCreate) SetScore(v int) *PaperCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaperCreate) SetCreatedAt(v time.Time) *PaperCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaperCreate) SetNillableCreatedAt(v *time.Time) *PaperCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaperCreate) SetID(v uuid.UUID) *PaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaperCreate) SetNillableID(v *uuid.UUID) *PaperCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PaperMutation object of the builder.
func (_c *PaperCreate) Mutation() *PaperMutation {
	return _c.mutation
}

// Save creates the Paper in the database.
func (_c *PaperCreate) Save(ctx context.Context) (*Paper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaperCreate) SaveX(ctx context.Context) *Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaperCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := paper.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paper.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paper.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaperCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Paper.owner_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Paper.title"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Paper.subject"`)}
	}
	if _, ok := _c.mutation.Topics(); !ok {
		return &ValidationError{Name: "topics", err: errors.New(`ent: missing required field "Paper.topics"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Paper.difficulty"`)}
	}
	if _, ok := _c.mutation.NumQuestions(); !ok {
		return &ValidationError{Name: "num_questions", err: errors.New(`ent: missing required field "Paper.num_questions"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "Paper.questions"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Paper.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Paper.created_at"`)}
	}
	return nil
}

func (_c *PaperCreate) sqlSave(ctx context.Context) (*Paper, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaperCreate) createSpec() (*Paper, *sqlgraph.CreateSpec) {
	var (
		_node = &Paper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paper.Table, sqlgraph.NewFieldSpec(paper.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(paper.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(paper.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(paper.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(paper.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(paper.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.NumQuestions(); ok {
		_spec.SetField(paper.FieldNumQuestions, field.TypeInt, value)
		_node.NumQuestions = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(paper.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(paper.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paper.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PaperCreateBulk is the builder for creating many Paper entities in bulk.
type PaperCreateBulk struct {
	config
	err      error
	builders []*PaperCreate
}

// Save creates the Paper entities in the database.
func (_c *PaperCreateBulk) Save(ctx context.Context) ([]*Paper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaperMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PaperCreateBulk) SaveX(ctx context.Context) []*Paper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
