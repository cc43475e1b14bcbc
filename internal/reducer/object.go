package reducer

import (
	"strconv"

	"github.com/funvibe/reduct/internal/ast"
)

type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	STRING_OBJ  = "STRING"
)

// Object is the typed result of a reduction. Exactly one concrete shape
// exists per value domain; the tag comes from the reduction goal, never
// from inspecting content.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer is a reduction result in the numeric domain.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

// String is a reduction result in the string domain.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

// GoalType maps a value-domain nonterminal onto the object tag a reduction
// toward that goal must produce. Only Int and String name value domains.
func GoalType(goal ast.Nonterminal) (ObjectType, bool) {
	switch goal {
	case ast.Int:
		return INTEGER_OBJ, true
	case ast.String:
		return STRING_OBJ, true
	}
	return "", false
}
