package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseInvocation_DefaultsToFixedFileNames(t *testing.T) {
	workDir := t.TempDir()

	inv, err := ParseInvocation(nil, workDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := CLIInvocation{
		WorkDir:         filepath.Clean(workDir),
		ExpressionsPath: filepath.Join(workDir, "expressions.txt"),
		AnswersPath:     filepath.Join(workDir, "answers.txt"),
		ReferencePath:   filepath.Join(workDir, "expressions_checker.txt"),
		ResultsPath:     filepath.Join(workDir, "results.txt"),
	}
	if !reflect.DeepEqual(inv, want) {
		t.Fatalf("unexpected invocation\nwant=%#v\ngot =%#v", want, inv)
	}
}

func TestParseInvocation_DeterministicStruct(t *testing.T) {
	workDir := t.TempDir()
	args := []string{
		"--workdir", workDir,
		"--expressions", "in/../exprs.txt",
		"--answers", "./out//answers.txt",
		"--reference", "ref/./checker.txt",
		"--results", "out/results.txt",
		"--error-log", "logs/../errors.log",
	}

	inv1, err := ParseInvocation(args, "/ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv2, err := ParseInvocation(args, "/ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv1, inv2) {
		t.Fatalf("expected identical invocations, got\n%#v\n%#v", inv1, inv2)
	}

	if inv1.ExpressionsPath != filepath.Join(workDir, "exprs.txt") {
		t.Fatalf("expressions path not resolved/canonicalized: %q", inv1.ExpressionsPath)
	}
	if inv1.AnswersPath != filepath.Join(workDir, "out", "answers.txt") {
		t.Fatalf("answers path not resolved/canonicalized: %q", inv1.AnswersPath)
	}
	if inv1.ReferencePath != filepath.Join(workDir, "ref", "checker.txt") {
		t.Fatalf("reference path not resolved/canonicalized: %q", inv1.ReferencePath)
	}
	if inv1.ResultsPath != filepath.Join(workDir, "out", "results.txt") {
		t.Fatalf("results path not resolved/canonicalized: %q", inv1.ResultsPath)
	}
	if !inv1.ErrorLog.Enabled || inv1.ErrorLog.Path != filepath.Join(workDir, "errors.log") {
		t.Fatalf("error log not resolved/canonicalized: %#v", inv1.ErrorLog)
	}
}

func TestParseInvocation_ResolvesRelativePathsAgainstWorkDir_NotCwd(t *testing.T) {
	workDir := t.TempDir()
	otherCwd := t.TempDir()

	oldCwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
	if err := os.Chdir(otherCwd); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}

	inv, err := ParseInvocation([]string{"--workdir", workDir}, otherCwd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ExpressionsPath != filepath.Join(workDir, DefaultExpressionsFile) {
		t.Fatalf("expected expressions under workdir, got %q", inv.ExpressionsPath)
	}
}

func TestParseInvocation_AbsolutePathsKept(t *testing.T) {
	workDir := t.TempDir()
	other := filepath.Join(t.TempDir(), "elsewhere.txt")

	inv, err := ParseInvocation([]string{"--reference", other}, workDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.ReferencePath != other {
		t.Fatalf("expected absolute path kept, got %q", inv.ReferencePath)
	}
}

func TestParseInvocation_InvalidInvocations(t *testing.T) {
	workDir := t.TempDir()
	cases := []struct {
		name string
		args []string
		cwd  string
	}{
		{"unknown flag", []string{"--mode", "clean"}, workDir},
		{"positional args", []string{"expressions.txt"}, workDir},
		{"relative workdir", []string{"--workdir", "relative"}, workDir},
		{"missing workdir", nil, ""},
		{"empty path", []string{"--answers", " "}, workDir},
		{"dot path", []string{"--results", "."}, workDir},
		{"answers equals results", []string{"--answers", "same.txt", "--results", "./same.txt"}, workDir},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInvocation(tc.args, tc.cwd)
			if err == nil {
				t.Fatalf("expected error")
			}
			if ExitCode(err) != ExitInvalidInvocation {
				t.Fatalf("expected exit code %d, got %d (%v)", ExitInvalidInvocation, ExitCode(err), err)
			}
		})
	}
}

func TestParseInvocation_IgnoresEnvironmentVariables(t *testing.T) {
	workDir := t.TempDir()

	inv1, err := ParseInvocation(nil, workDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("EXPRESSIONS", "other.txt")
	t.Setenv("PWD", "/tmp")

	inv2, err := ParseInvocation(nil, workDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv1, inv2) {
		t.Fatalf("expected env vars to not affect parsing, got\n%#v\n%#v", inv1, inv2)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitSuccess {
		t.Fatalf("nil error should map to success")
	}
	if ExitCode(&InvocationError{}) != ExitInvalidInvocation {
		t.Fatalf("zero exit code invocation error should map to invalid invocation")
	}
	if ExitCode(os.ErrClosed) != ExitInternalError {
		t.Fatalf("unknown error should map to internal error")
	}
}
