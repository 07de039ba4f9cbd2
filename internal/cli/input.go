package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	ExitSuccess            = 0
	ExitVerificationFailed = 1
	ExitInvalidInvocation  = 2
	ExitFileError          = 3
	ExitInternalError      = 4
)

// Default file names, resolved under the work directory.
const (
	DefaultExpressionsFile = "expressions.txt"
	DefaultAnswersFile     = "answers.txt"
	DefaultReferenceFile   = "expressions_checker.txt"
	DefaultResultsFile     = "results.txt"
)

type ErrorLogConfig struct {
	Enabled bool
	Path    string
}

// CLIInvocation is the canonical description of a run.
//
// All paths are cleaned and absolute; relative flag values are resolved
// against WorkDir.
type CLIInvocation struct {
	WorkDir         string
	ExpressionsPath string
	AnswersPath     string
	ReferencePath   string
	ResultsPath     string
	ErrorLog        ErrorLogConfig
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into a canonical CLIInvocation.
//
// Every flag is optional. defaultWorkDir is used when --workdir is absent and
// must be absolute; the caller supplies it so parsing never consults the
// process CWD itself.
func ParseInvocation(args []string, defaultWorkDir string) (CLIInvocation, error) {
	fs := flag.NewFlagSet("calculator", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var workDir string
	var expressions string
	var answers string
	var reference string
	var results string
	var errorLog string

	fs.StringVar(&workDir, "workdir", defaultWorkDir, "Absolute working directory.")
	fs.StringVar(&expressions, "expressions", DefaultExpressionsFile, "Expressions input file.")
	fs.StringVar(&answers, "answers", DefaultAnswersFile, "Computed answers output file.")
	fs.StringVar(&reference, "reference", DefaultReferenceFile, "Reference answers file.")
	fs.StringVar(&results, "results", DefaultResultsFile, "Verification report output file.")
	fs.StringVar(&errorLog, "error-log", "", "Write buffered error messages to this file (optional).")

	if err := fs.Parse(args); err != nil {
		return CLIInvocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return CLIInvocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if strings.TrimSpace(workDir) == "" {
		return CLIInvocation{}, invalidInvocationf("--workdir is required")
	}
	workDir = filepath.Clean(workDir)
	if !filepath.IsAbs(workDir) {
		return CLIInvocation{}, invalidInvocationf("--workdir must be an absolute path (got %q)", workDir)
	}

	inv := CLIInvocation{WorkDir: workDir}
	targets := []struct {
		flag string
		raw  string
		dst  *string
	}{
		{"--expressions", expressions, &inv.ExpressionsPath},
		{"--answers", answers, &inv.AnswersPath},
		{"--reference", reference, &inv.ReferencePath},
		{"--results", results, &inv.ResultsPath},
	}
	for _, tgt := range targets {
		p, err := resolveUnderWorkDir(workDir, tgt.raw)
		if err != nil {
			return CLIInvocation{}, invalidInvocationf("%s: %v", tgt.flag, err)
		}
		*tgt.dst = p
	}

	if inv.AnswersPath == inv.ResultsPath {
		return CLIInvocation{}, invalidInvocationf("--answers and --results must differ (both %q)", inv.AnswersPath)
	}

	if strings.TrimSpace(errorLog) != "" {
		p, err := resolveUnderWorkDir(workDir, errorLog)
		if err != nil {
			return CLIInvocation{}, invalidInvocationf("--error-log: %v", err)
		}
		inv.ErrorLog = ErrorLogConfig{Enabled: true, Path: p}
	}

	return inv, nil
}

func resolveUnderWorkDir(workDir, p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.New("path must not be empty")
	}
	clean := filepath.Clean(p)
	if clean == "." {
		return "", errors.New("path must not be '.'")
	}
	if filepath.IsAbs(clean) {
		return clean, nil
	}
	// WorkDir is absolute, so Join does not consult process CWD.
	return filepath.Clean(filepath.Join(workDir, clean)), nil
}

// ExitCode extracts a semantic exit code from a ParseInvocation error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	if err == nil {
		return ExitSuccess
	}
	return ExitInternalError
}
