package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/funvibe/reduct/internal/calculator"
	"github.com/funvibe/reduct/internal/config"
	"github.com/funvibe/reduct/internal/history"
	"github.com/funvibe/reduct/internal/publish"
	"github.com/funvibe/reduct/internal/reducer"
	"github.com/funvibe/reduct/internal/runner"
	"github.com/funvibe/reduct/internal/testcase"
)

// options are the few switches the runner understands. Everything that is
// not a switch is a testcase file or a directory of them.
type options struct {
	historyPath   string
	publishTarget string
	paths         []string
}

// Run is the CLI entry point. The return value is the process exit code:
// the number of failed testcases, zero when every case succeeded.
func Run() int {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		printUsage()
		return 1
	}

	files, err := collectFiles(opts.paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if len(files) == 0 {
		fmt.Println("No testcase files found")
		return 0
	}

	var cases []testcase.Testcase
	for _, file := range files {
		loaded, err := testcase.Load(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return 1
		}
		cases = append(cases, loaded...)
	}

	startedAt := time.Now()
	reporter := runner.NewReporter(os.Stdout)
	driver := runner.New(func() reducer.Semantics { return calculator.New() }, reporter)
	summary := driver.Run(cases)

	// Recording and publishing are best-effort: a broken sink must not
	// change the exit code the conformance contract promises.
	runID := history.NewRunID()
	if opts.historyPath != "" {
		if err := recordRun(opts.historyPath, runID, startedAt, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history not recorded: %s\n", err)
		}
	}
	if opts.publishTarget != "" {
		if err := publishRun(opts.publishTarget, runID, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
		}
	}

	return summary.Failed
}

func parseArgs(args []string) (options, error) {
	var opts options

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-help" || arg == "--help" || arg == "help":
			printUsage()
			os.Exit(0)
		case arg == "-history":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("-history requires a database path")
			}
			opts.historyPath = args[i]
		case arg == "-publish":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("-publish requires a collector address")
			}
			opts.publishTarget = args[i]
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %s", arg)
		default:
			opts.paths = append(opts.paths, arg)
		}
	}

	if len(opts.paths) == 0 {
		return opts, fmt.Errorf("no testcase files given")
	}
	return opts, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <testcases.yaml> [more files or directories...]\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(os.Stderr, "Flags:\n")
	fmt.Fprintf(os.Stderr, "  -history <db>    record the run in a sqlite database\n")
	fmt.Fprintf(os.Stderr, "  -publish <addr>  stream case results to a collector service\n")
}

// isTestcaseFile checks if a file has a recognized testcase extension
func isTestcaseFile(path string) bool {
	for _, ext := range config.TestcaseFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// collectFiles expands directories into their testcase files. Files listed
// directly are taken as-is; directory contents come back in lexical order,
// so a run is reproducible from its arguments alone.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isTestcaseFile(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}

	return files, nil
}

func recordRun(path, runID string, startedAt time.Time, summary runner.Summary) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(runID, startedAt, summary)
}

func publishRun(target, runID string, summary runner.Summary) error {
	publisher, err := publish.Dial(target, runID)
	if err != nil {
		return err
	}
	defer publisher.Close()

	ctx := context.Background()
	for _, result := range summary.Results {
		if err := publisher.Publish(ctx, result); err != nil {
			return err
		}
	}
	return nil
}
