package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/reduct/internal/prettyprinter"
	"github.com/funvibe/reduct/internal/testcase"
)

// ANSI colors, used only when the output is a terminal. The uncolored text
// is the contract: CI parses exit codes, humans read the lines.
const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// Reporter prints one line per testcase plus a trailing tally.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter colorizes only when out is a terminal, same gating as any
// well-behaved CLI.
func NewReporter(out io.Writer) *Reporter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{out: out, color: color}
}

func (r *Reporter) Report(tc testcase.Testcase, result Result) {
	switch {
	case result.Status == StatusPassed:
		fmt.Fprintf(r.out, "%s: %s\n", r.paint("Succeeded", colorGreen), result.Name)

	case result.Err != nil:
		fmt.Fprintf(r.out, "%s: %s, exception %s\n", r.paint("FAILED", colorRed), result.Name, result.Err)
		fmt.Fprintf(r.out, "%s\n", prettyprinter.ToXML(tc.Root))

	default:
		fmt.Fprintf(r.out, "%s: %s, expected %s != actual %s\n",
			r.paint("FAILED", colorRed), result.Name, result.Expected, result.Actual)
	}
}

func (r *Reporter) Summarize(summary Summary) {
	if summary.Failed == 0 {
		fmt.Fprintf(r.out, "All %d testcases succeeded\n", summary.Total)
	} else {
		fmt.Fprintf(r.out, "%d of %d testcases failed\n", summary.Failed, summary.Total)
	}
}

func (r *Reporter) paint(s, color string) string {
	if !r.color {
		return s
	}
	return color + s + colorReset
}
