// Package verify compares computed answers against reference answers line by
// line and renders an OK/Error report with a trailing error count.
package verify

import (
	"strconv"
	"strings"
)

// NaNMarker identifies a not-a-number reference line.
const NaNMarker = "NaN"

// Status is the outcome of comparing one answer line with its reference.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "Error"
)

// Report is the per-line outcome of a comparison.
type Report struct {
	Lines  []Status
	Errors int
}

// OK reports whether every line matched.
func (r Report) OK() bool { return r.Errors == 0 }

// Bytes renders one status per line followed by the error count.
// The count has no label and no trailing newline.
func (r Report) Bytes() []byte {
	var b strings.Builder
	for _, s := range r.Lines {
		b.WriteString(string(s))
		b.WriteByte('\n')
	}
	b.WriteString(strconv.Itoa(r.Errors))
	return []byte(b.String())
}

// Compare checks answers against reference. Both must have the same length,
// otherwise a *LengthMismatchError is returned and no report is produced.
func Compare(answers, reference []string) (Report, error) {
	if len(answers) != len(reference) {
		return Report{}, &LengthMismatchError{Answers: len(answers), Reference: len(reference)}
	}
	r := Report{Lines: make([]Status, len(answers))}
	for i := range answers {
		s := CompareLine(answers[i], reference[i])
		if s == StatusError {
			r.Errors++
		}
		r.Lines[i] = s
	}
	return r, nil
}

// CompareLine decides a single line.
//
// A reference containing NaNMarker matches only an answer that also contains
// it. Otherwise two parseable numbers are compared with exact float equality,
// and anything else falls back to exact string equality.
func CompareLine(answer, reference string) Status {
	if strings.Contains(reference, NaNMarker) {
		return statusOf(strings.Contains(answer, NaNMarker))
	}
	a, errA := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	r, errR := strconv.ParseFloat(strings.TrimSpace(reference), 64)
	if errA == nil && errR == nil {
		return statusOf(a == r)
	}
	return statusOf(answer == reference)
}

func statusOf(ok bool) Status {
	if ok {
		return StatusOK
	}
	return StatusError
}
