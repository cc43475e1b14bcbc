package reducer

import (
	"fmt"

	"github.com/funvibe/reduct/internal/ast"
)

// FaultKind classifies an evaluation failure.
type FaultKind int

const (
	// FaultNoRule: the semantics has no rule for a node's kind.
	FaultNoRule FaultKind = iota
	// FaultArity: a node's child count is outside its rule's bounds.
	FaultArity
	// FaultUnlabeled: Reduce reached a node the label pass never saw.
	FaultUnlabeled
	// FaultOperand: an operation is undefined for its operand types.
	FaultOperand
	// FaultCoerce: the produced value does not match the requested goal.
	FaultCoerce
)

var faultKindNames = [...]string{
	FaultNoRule:    "no rule",
	FaultArity:     "arity",
	FaultUnlabeled: "unlabeled",
	FaultOperand:   "operand",
	FaultCoerce:    "coerce",
}

func (k FaultKind) String() string {
	if k < 0 || int(k) >= len(faultKindNames) {
		return fmt.Sprintf("FaultKind(%d)", int(k))
	}
	return faultKindNames[k]
}

// Fault is a structured evaluation failure: what went wrong, where in the
// tree, and a human-readable message. It is an ordinary error value; the
// driver branches on it instead of recovering from a panic.
type Fault struct {
	Kind    FaultKind
	Message string
	Node    *ast.SyntaxNode
}

func (f *Fault) Error() string { return f.Message }

func faultf(kind FaultKind, node *ast.SyntaxNode, format string, a ...interface{}) *Fault {
	return &Fault{Kind: kind, Message: fmt.Sprintf(format, a...), Node: node}
}
