// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Paper is the predicate function for paper builders.
type Paper func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
