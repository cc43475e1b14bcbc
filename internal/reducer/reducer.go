// Package reducer folds grammar-tagged syntax trees into single typed
// values. The engine works in two passes: Label walks the tree and checks
// every node against a pluggable Semantics, then Reduce runs a post-order
// fold using the operations that Semantics supplies. The engine is
// grammar-agnostic; calculator arithmetic and any other grammar drive the
// same code.
package reducer

import (
	"errors"
	"fmt"

	"github.com/funvibe/reduct/internal/ast"
)

// Reducer evaluates one tree at a time. Rule assignments from the label
// pass live in a side table keyed by node, so the tree itself is never
// touched. A Reducer is not safe for concurrent use; the driver builds a
// fresh one per testcase.
type Reducer struct {
	rules map[*ast.SyntaxNode]Rule
}

func New() *Reducer {
	return &Reducer{rules: make(map[*ast.SyntaxNode]Rule)}
}

// Label validates the tree against the semantics and records a rule for
// every node. Children are visited before their parent, so a shape error
// surfaces at the deepest offending node. Labeling the same tree again with
// the same semantics is a no-op as far as Reduce can observe.
func (r *Reducer) Label(sem Semantics, node *ast.SyntaxNode) error {
	for _, child := range node.Children {
		if err := r.Label(sem, child); err != nil {
			return err
		}
	}

	rule, ok := sem.RuleFor(node.Kind)
	if !ok {
		return faultf(FaultNoRule, node, "no rule for %s", node.Kind)
	}
	if !rule.Accepts(node.Arity()) {
		return faultf(FaultArity, node, "wrong arity for %s: want %s, got %d",
			node.Kind, arityBounds(rule), node.Arity())
	}

	r.rules[node] = rule
	return nil
}

// Reduce folds the labeled tree bottom-up into a single Object tagged to
// match the goal domain. Label must have run first; reducing an unlabeled
// node is a fault, as is a result whose natural type cannot satisfy the
// goal.
func (r *Reducer) Reduce(sem Semantics, node *ast.SyntaxNode, goal ast.Nonterminal) (Object, error) {
	want, ok := GoalType(goal)
	if !ok {
		return nil, faultf(FaultCoerce, node, "%s does not name a value domain", goal)
	}

	result, err := r.fold(sem, node)
	if err != nil {
		return nil, err
	}
	if result.Type() != want {
		return nil, faultf(FaultCoerce, node, "cannot coerce %s result to %s", result.Type(), want)
	}
	return result, nil
}

func (r *Reducer) fold(sem Semantics, node *ast.SyntaxNode) (Object, error) {
	if _, ok := r.rules[node]; !ok {
		return nil, faultf(FaultUnlabeled, node, "unlabeled node %s", node.Kind)
	}

	if node.Arity() == 0 {
		obj, err := sem.Leaf(node.Kind, node.Literal)
		if err != nil {
			return nil, asFault(err, node)
		}
		return obj, nil
	}

	children := make([]Object, len(node.Children))
	for i, child := range node.Children {
		obj, err := r.fold(sem, child)
		if err != nil {
			return nil, err
		}
		children[i] = obj
	}

	obj, err := sem.Combine(node.Kind, children)
	if err != nil {
		return nil, asFault(err, node)
	}
	return obj, nil
}

// asFault attaches the offending node to grammar-level errors. Errors that
// already are Faults pass through untouched.
func asFault(err error, node *ast.SyntaxNode) error {
	var f *Fault
	if errors.As(err, &f) {
		return err
	}
	return &Fault{Kind: FaultOperand, Message: err.Error(), Node: node}
}

func arityBounds(rule Rule) string {
	switch {
	case rule.MaxArity < 0:
		return fmt.Sprintf("%d or more children", rule.MinArity)
	case rule.MinArity == rule.MaxArity:
		return fmt.Sprintf("%d children", rule.MinArity)
	default:
		return fmt.Sprintf("%d to %d children", rule.MinArity, rule.MaxArity)
	}
}
