package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/reduct/internal/ast"
)

// --- XML Printer (diagnostic rendering of syntax trees) ---

// XMLPrinter renders a syntax tree as indented XML. The rendering is only a
// diagnostic aid for failure output; nothing parses it back.
type XMLPrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewXMLPrinter() *XMLPrinter {
	return &XMLPrinter{}
}

func (p *XMLPrinter) Print(node *ast.SyntaxNode) string {
	p.buf.Reset()
	p.indent = 0
	p.writeNode(node)
	return p.buf.String()
}

func (p *XMLPrinter) writeNode(node *ast.SyntaxNode) {
	p.writeIndent()

	if node.Arity() == 0 {
		p.buf.WriteString("<" + node.Kind.String())
		if node.Literal != "" {
			p.buf.WriteString(` value="` + escapeAttr(node.Literal) + `"`)
		}
		p.buf.WriteString("/>\n")
		return
	}

	p.buf.WriteString("<" + node.Kind.String() + ">\n")
	p.indent++
	for _, child := range node.Children {
		p.writeNode(child)
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("</" + node.Kind.String() + ">\n")
}

func (p *XMLPrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// ToXML is the convenience entry point used by failure reporting.
func ToXML(node *ast.SyntaxNode) string {
	return NewXMLPrinter().Print(node)
}
