// Package calculator is the arithmetic test grammar: integer and string
// literals at the leaves, the four integer operations plus unary negation,
// and Add doubling as string concatenation. It exists to exercise the
// reducer; nothing in the engine depends on it.
package calculator

import (
	"fmt"
	"strconv"

	"github.com/funvibe/reduct/internal/ast"
	"github.com/funvibe/reduct/internal/reducer"
)

// Calculator implements reducer.Semantics. It carries no state; the driver
// still builds a fresh one per testcase so no grammar can rely on reuse.
type Calculator struct{}

func New() *Calculator {
	return &Calculator{}
}

var rules = map[ast.Nonterminal]reducer.Rule{
	ast.Int:      {MinArity: 0, MaxArity: 0},
	ast.String:   {MinArity: 0, MaxArity: 0},
	ast.Add:      {MinArity: 2, MaxArity: 2},
	ast.Subtract: {MinArity: 2, MaxArity: 2},
	ast.Multiply: {MinArity: 2, MaxArity: 2},
	ast.Divide:   {MinArity: 2, MaxArity: 2},
	ast.Negate:   {MinArity: 1, MaxArity: 1},
}

func (c *Calculator) RuleFor(kind ast.Nonterminal) (reducer.Rule, bool) {
	rule, ok := rules[kind]
	return rule, ok
}

func (c *Calculator) Leaf(kind ast.Nonterminal, literal string) (reducer.Object, error) {
	switch kind {
	case ast.Int:
		v, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer literal %q", literal)
		}
		return &reducer.Integer{Value: v}, nil
	case ast.String:
		return &reducer.String{Value: literal}, nil
	}
	return nil, fmt.Errorf("%s is not a leaf kind", kind)
}

func (c *Calculator) Combine(kind ast.Nonterminal, children []reducer.Object) (reducer.Object, error) {
	switch kind {
	case ast.Add:
		return add(children[0], children[1])
	case ast.Subtract, ast.Multiply, ast.Divide:
		return arith(kind, children[0], children[1])
	case ast.Negate:
		n, ok := children[0].(*reducer.Integer)
		if !ok {
			return nil, fmt.Errorf("Negate undefined for %s", children[0].Type())
		}
		return &reducer.Integer{Value: -n.Value}, nil
	}
	return nil, fmt.Errorf("%s is not an interior kind", kind)
}

// add is overloaded: integer addition or string concatenation, never a mix.
func add(left, right reducer.Object) (reducer.Object, error) {
	if l, ok := left.(*reducer.Integer); ok {
		if r, ok := right.(*reducer.Integer); ok {
			return &reducer.Integer{Value: l.Value + r.Value}, nil
		}
	}
	if l, ok := left.(*reducer.String); ok {
		if r, ok := right.(*reducer.String); ok {
			return &reducer.String{Value: l.Value + r.Value}, nil
		}
	}
	return nil, fmt.Errorf("Add undefined for %s and %s", left.Type(), right.Type())
}

func arith(kind ast.Nonterminal, left, right reducer.Object) (reducer.Object, error) {
	l, lok := left.(*reducer.Integer)
	r, rok := right.(*reducer.Integer)
	if !lok || !rok {
		return nil, fmt.Errorf("%s undefined for %s and %s", kind, left.Type(), right.Type())
	}

	switch kind {
	case ast.Subtract:
		return &reducer.Integer{Value: l.Value - r.Value}, nil
	case ast.Multiply:
		return &reducer.Integer{Value: l.Value * r.Value}, nil
	case ast.Divide:
		if r.Value == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return &reducer.Integer{Value: l.Value / r.Value}, nil
	}
	return nil, fmt.Errorf("%s is not an arithmetic kind", kind)
}
