package ast

import "fmt"

// Nonterminal identifies a grammar rule kind. It tags every tree node and
// also names the value domain a reduction is asked to produce (Int or
// String).
type Nonterminal int

const (
	Int Nonterminal = iota
	String
	Add
	Subtract
	Multiply
	Divide
	Negate
)

var nonterminalNames = [...]string{
	Int:      "Int",
	String:   "String",
	Add:      "Add",
	Subtract: "Subtract",
	Multiply: "Multiply",
	Divide:   "Divide",
	Negate:   "Negate",
}

func (n Nonterminal) String() string {
	if n < 0 || int(n) >= len(nonterminalNames) {
		return fmt.Sprintf("Nonterminal(%d)", int(n))
	}
	return nonterminalNames[n]
}

// ParseNonterminal maps the textual kind names used by testcase files onto
// Nonterminal values. Names are matched lowercase.
func ParseNonterminal(name string) (Nonterminal, error) {
	switch name {
	case "int":
		return Int, nil
	case "string":
		return String, nil
	case "add":
		return Add, nil
	case "subtract":
		return Subtract, nil
	case "multiply":
		return Multiply, nil
	case "divide":
		return Divide, nil
	case "negate":
		return Negate, nil
	}
	return 0, fmt.Errorf("unknown nonterminal %q", name)
}

// SyntaxNode is one node of an input tree. A node is built once by its
// loader and never mutated afterwards; the reducer keeps its bookkeeping in
// a side table rather than on the node, so the same tree can be labeled and
// reduced any number of times.
type SyntaxNode struct {
	Kind     Nonterminal
	Literal  string // leaf payload, empty for interior nodes
	Children []*SyntaxNode
}

// NewLeaf builds a childless node carrying a literal.
func NewLeaf(kind Nonterminal, literal string) *SyntaxNode {
	return &SyntaxNode{Kind: kind, Literal: literal}
}

// NewNode builds an interior node over the given children.
func NewNode(kind Nonterminal, children ...*SyntaxNode) *SyntaxNode {
	return &SyntaxNode{Kind: kind, Children: children}
}

// Arity is the number of direct children.
func (n *SyntaxNode) Arity() int {
	return len(n.Children)
}
