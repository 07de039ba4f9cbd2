package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/inconshreveable/log15"

	"calculator/internal/calc"
	"calculator/internal/notify"
	"calculator/internal/textfile"
	"calculator/internal/verify"
)

type CLIResult struct {
	ExitCode   int
	Evaluation calc.Summary
	Report     *verify.Report
	// Errors holds every message delivered to the notifier, in order.
	Errors []string
}

// Execute runs both stages for inv, logging to stderr.
//
// Stages run in order and never abort each other:
//   - evaluate ExpressionsPath into AnswersPath
//   - verify AnswersPath against ReferencePath into ResultsPath
//
// Per-line and file failures are reported through the notifier (console log
// plus in-memory buffer) and processing continues. The exit code reflects the
// worst outcome seen.
func Execute(ctx context.Context, inv CLIInvocation, stderr io.Writer) (res CLIResult, execErr error) {
	res.ExitCode = ExitInternalError
	if stderr == nil {
		stderr = io.Discard
	}

	log := newLogger(stderr)
	buf := &notify.Buffer{}
	notifier := notify.New(notify.NewConsole(log), buf)

	defer func() {
		if r := recover(); r != nil {
			res.ExitCode = ExitInternalError
			execErr = fmt.Errorf("panic: %v", r)
		}
		res.Errors = buf.Messages()
	}()

	if err := ctx.Err(); err != nil {
		return res, err
	}

	calculator := calc.New(calc.DefaultOperators(), notifier)
	sum := calculator.ProcessFile(inv.ExpressionsPath, inv.AnswersPath)
	res.Evaluation = sum
	log.Info("evaluated", "lines", sum.Lines, "failed", sum.Failed, "output", inv.AnswersPath)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	exit := ExitSuccess
	if sum.ReadErr != nil || sum.WriteErr != nil {
		exit = ExitFileError
	}

	report, err := verify.New(notifier).Run(inv.AnswersPath, inv.ReferencePath, inv.ResultsPath)
	var lm *verify.LengthMismatchError
	switch {
	case errors.As(err, &lm):
		// Console only; the mismatch is not an error notification.
		log.Error("sizes do not match", "answers", lm.Answers, "reference", lm.Reference)
		exit = ExitFileError
	case errors.Is(err, verify.ErrInputUnavailable):
		res.Report = &report
		exit = ExitFileError
	case err != nil:
		log.Error("write results failed", "err", err)
		res.Report = &report
		exit = ExitFileError
	default:
		res.Report = &report
	}
	if res.Report != nil {
		log.Info("verified", "lines", len(report.Lines), "errors", report.Errors, "output", inv.ResultsPath)
		if !report.OK() && exit == ExitSuccess {
			exit = ExitVerificationFailed
		}
	}

	if inv.ErrorLog.Enabled {
		if err := textfile.WriteAtomic(inv.ErrorLog.Path, textfile.JoinLines(buf.Messages()), 0o644); err != nil {
			log.Error("write error log failed", "err", err)
			exit = ExitFileError
		}
	}

	res.ExitCode = exit
	return res, nil
}

func newLogger(w io.Writer) log15.Logger {
	log := log15.New("app", "calculator")
	log.SetHandler(log15.StreamHandler(w, log15.LogfmtFormat()))
	return log
}
