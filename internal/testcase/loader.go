package testcase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/reduct/internal/ast"
	"github.com/funvibe/reduct/internal/config"
)

// On-disk testcase encoding, one YAML document per file:
//
//	cases:
//	  - name: add
//	    type: int
//	    expect: "5"
//	    tree:
//	      kind: add
//	      children:
//	        - {kind: int, value: "2"}
//	        - {kind: int, value: "3"}
type caseFile struct {
	Cases []caseSpec `yaml:"cases"`
}

type caseSpec struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Expect string   `yaml:"expect"`
	Tree   nodeSpec `yaml:"tree"`
}

type nodeSpec struct {
	Kind     string     `yaml:"kind"`
	Value    string     `yaml:"value"`
	Children []nodeSpec `yaml:"children"`
}

// Load reads one testcase file. Cases come back in document order; that
// order is part of the runner's observable contract, so nothing here sorts
// or deduplicates.
func Load(path string) ([]Testcase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading testcases: %w", err)
	}

	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes a testcase document from memory.
func Parse(data []byte) ([]Testcase, error) {
	var file caseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("bad testcase document: %w", err)
	}

	cases := make([]Testcase, 0, len(file.Cases))
	for i, spec := range file.Cases {
		tc, err := buildCase(spec)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, spec.Name, err)
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

func buildCase(spec caseSpec) (Testcase, error) {
	if spec.Name == "" {
		return Testcase{}, fmt.Errorf("missing name")
	}

	valueType, err := parseValueType(spec.Type)
	if err != nil {
		return Testcase{}, err
	}

	root, err := buildNode(spec.Tree)
	if err != nil {
		return Testcase{}, err
	}

	return Testcase{
		Name:          spec.Name,
		Root:          root,
		ExpectedValue: spec.Expect,
		ValueType:     valueType,
	}, nil
}

func parseValueType(name string) (ast.Nonterminal, error) {
	switch name {
	case config.IntTypeName:
		return ast.Int, nil
	case config.StringTypeName:
		return ast.String, nil
	}
	return 0, fmt.Errorf("unknown value type %q", name)
}

func buildNode(spec nodeSpec) (*ast.SyntaxNode, error) {
	kind, err := ast.ParseNonterminal(spec.Kind)
	if err != nil {
		return nil, err
	}

	if len(spec.Children) == 0 {
		return ast.NewLeaf(kind, spec.Value), nil
	}

	children := make([]*ast.SyntaxNode, len(spec.Children))
	for i, childSpec := range spec.Children {
		child, err := buildNode(childSpec)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return ast.NewNode(kind, children...), nil
}
