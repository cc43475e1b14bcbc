package reducer

import "github.com/funvibe/reduct/internal/ast"

// Rule is what the label pass needs to know about a grammar rule: the arity
// bounds a node of that kind must satisfy. MaxArity -1 means variadic.
type Rule struct {
	MinArity int
	MaxArity int
}

// Accepts reports whether a node with n children fits the rule.
func (r Rule) Accepts(n int) bool {
	if n < r.MinArity {
		return false
	}
	return r.MaxArity < 0 || n <= r.MaxArity
}

// Semantics maps nonterminal kinds onto concrete operations. A grammar
// implements this interface to plug into the Reducer; the engine itself
// knows nothing about any particular grammar.
//
// Leaf and Combine return plain errors for conditions only the grammar can
// detect (a malformed literal, an operation undefined for the combined
// operand types); the Reducer attaches the offending node and surfaces them
// as Faults.
type Semantics interface {
	// RuleFor looks up the rule for a kind; ok is false when the grammar
	// has no rule for it.
	RuleFor(kind ast.Nonterminal) (Rule, bool)

	// Leaf produces the primitive value for a childless node.
	Leaf(kind ast.Nonterminal, literal string) (Object, error)

	// Combine folds the already-reduced children of an interior node.
	Combine(kind ast.Nonterminal, children []Object) (Object, error)
}
