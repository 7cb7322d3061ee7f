package docstore

import (
	"errors"
	"time"
)

// ErrUnavailable is returned by every operation when the store handle is
// missing or its backing database could not be opened.
var ErrUnavailable = errors.New("document store unavailable")

// Document is a schemaless record. The store injects its native key under
// KeyField when returning documents; callers map it to their own id field.
type Document map[string]any

// KeyField is the reserved field carrying the store-native document key.
const KeyField = "_id"

// Config configures the store.
//
// Driver values:
//   - "sqlite": SQLite database file (the only backend currently built in)
//
// If Driver is empty or "none", the store is unavailable.
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// Filter is a single field predicate. Zero or more filters are ANDed.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Op is a filter operator.
type Op string

const (
	OpEq  Op = "eq"
	OpNeq Op = "neq"
)

// Eq matches documents whose field equals v.
func Eq(field string, v any) Filter {
	return Filter{Field: field, Op: OpEq, Value: v}
}

// Neq matches documents whose field does not equal v. Documents missing the
// field also match.
func Neq(field string, v any) Filter {
	return Filter{Field: field, Op: OpNeq, Value: v}
}
