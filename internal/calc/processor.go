package calc

import (
	"calculator/internal/textfile"
)

// Summary describes one ProcessFile run.
type Summary struct {
	Lines    int
	Failed   int
	ReadErr  error
	WriteErr error
}

// ProcessLines evaluates every line and returns one output per input line,
// plus the number of lines that produced a sentinel.
func (c *Calculator) ProcessLines(lines []string) ([]string, int) {
	out := make([]string, len(lines))
	failed := 0
	for i, line := range lines {
		v, err := c.calculate(line)
		if err != nil {
			failed++
		}
		out[i] = v
	}
	return out, failed
}

// ProcessFile evaluates every line of inPath and writes the results to outPath.
//
// File errors are notified and do not stop the run: an unreadable input is
// processed as an empty file, so outPath is still (re)written.
func (c *Calculator) ProcessFile(inPath, outPath string) Summary {
	var s Summary

	lines, err := textfile.ReadLines(inPath)
	if err != nil {
		s.ReadErr = err
		c.notifier.Notify(err.Error())
		lines = nil
	}

	out, failed := c.ProcessLines(lines)
	s.Lines = len(out)
	s.Failed = failed

	if err := textfile.WriteAtomic(outPath, textfile.JoinLines(out), 0o644); err != nil {
		s.WriteErr = err
		c.notifier.Notify(err.Error())
	}
	return s
}
