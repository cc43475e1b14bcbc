package testcase

import "github.com/funvibe/reduct/internal/ast"

// Testcase pairs an input tree with the value its reduction must produce.
// The loader builds each one once; everything downstream treats it as
// read-only.
type Testcase struct {
	Name          string
	Root          *ast.SyntaxNode
	ExpectedValue string
	ValueType     ast.Nonterminal // ast.Int or ast.String
}
