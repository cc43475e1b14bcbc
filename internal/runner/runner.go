// Package runner drives testcases through the reducer and classifies each
// outcome. Every case gets a fresh Reducer and a fresh semantics instance,
// so nothing can leak between cases and the set of outcomes is independent
// of execution order.
package runner

import (
	"fmt"
	"strconv"

	"github.com/funvibe/reduct/internal/ast"
	"github.com/funvibe/reduct/internal/reducer"
	"github.com/funvibe/reduct/internal/testcase"
)

// Status classifies one testcase outcome.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
)

// Result records the outcome of one testcase. Err is non-nil only when the
// evaluator faulted; a plain value mismatch leaves Err nil and fills
// Expected/Actual instead.
type Result struct {
	Name     string
	Status   Status
	Expected string
	Actual   string
	Err      error
}

// Summary aggregates one run. Results keeps loader order.
type Summary struct {
	Total   int
	Failed  int
	Results []Result
}

// Runner is the test driver. newSemantics is called once per case so each
// evaluation is isolated.
type Runner struct {
	newSemantics func() reducer.Semantics
	reporter     *Reporter
}

func New(newSemantics func() reducer.Semantics, reporter *Reporter) *Runner {
	return &Runner{newSemantics: newSemantics, reporter: reporter}
}

// Run evaluates every case in order and reports each as it finishes. A
// fault never aborts the run; it marks that case Failed and the loop moves
// on.
func (r *Runner) Run(cases []testcase.Testcase) Summary {
	summary := Summary{Total: len(cases)}

	for _, tc := range cases {
		result := r.runCase(tc)
		if result.Status == StatusFailed {
			summary.Failed++
		}
		summary.Results = append(summary.Results, result)
		r.reporter.Report(tc, result)
	}

	r.reporter.Summarize(summary)
	return summary
}

func (r *Runner) runCase(tc testcase.Testcase) Result {
	red := reducer.New()
	sem := r.newSemantics()

	if err := red.Label(sem, tc.Root); err != nil {
		return Result{Name: tc.Name, Status: StatusFailed, Err: err}
	}

	obj, err := red.Reduce(sem, tc.Root, tc.ValueType)
	if err != nil {
		// TODO: negative testcases — a fault an input declares as expected
		// should count as Passed once the encoding grows such a flag.
		return Result{Name: tc.Name, Status: StatusFailed, Err: err}
	}

	return compare(tc, obj)
}

// compare applies the equality rules: exact integer equality in the numeric
// domain, byte-for-byte string equality in the string domain.
func compare(tc testcase.Testcase, obj reducer.Object) Result {
	result := Result{Name: tc.Name, Expected: tc.ExpectedValue, Actual: obj.Inspect()}

	switch tc.ValueType {
	case ast.String:
		str, ok := obj.(*reducer.String)
		if !ok {
			result.Status = StatusFailed
			result.Err = fmt.Errorf("reduction produced %s, want %s", obj.Type(), reducer.STRING_OBJ)
			return result
		}
		if str.Value == tc.ExpectedValue {
			result.Status = StatusPassed
		} else {
			result.Status = StatusFailed
		}

	default:
		num, ok := obj.(*reducer.Integer)
		if !ok {
			result.Status = StatusFailed
			result.Err = fmt.Errorf("reduction produced %s, want %s", obj.Type(), reducer.INTEGER_OBJ)
			return result
		}
		expected, err := strconv.ParseInt(tc.ExpectedValue, 10, 64)
		if err != nil {
			result.Status = StatusFailed
			result.Err = fmt.Errorf("bad expected value %q: %v", tc.ExpectedValue, err)
			return result
		}
		if num.Value == expected {
			result.Status = StatusPassed
		} else {
			result.Status = StatusFailed
		}
	}

	return result
}
