package verify

import (
	"errors"

	"calculator/internal/notify"
	"calculator/internal/textfile"
)

// Verifier runs Compare over files and reports read failures to a notifier.
type Verifier struct {
	notifier *notify.Notifier
}

// New returns a Verifier reporting read failures to n. A nil n discards them.
func New(n *notify.Notifier) *Verifier { return &Verifier{notifier: n} }

// Run compares answersPath against referencePath and writes the report to
// resultsPath.
//
// Read failures are notified and the affected file is compared as empty.
// Errors returned:
//   - *LengthMismatchError: nothing is written and nothing is notified.
//   - a write error: the report is returned but was not persisted.
//   - *InputError: the report was written but an input was unreadable.
func (v *Verifier) Run(answersPath, referencePath, resultsPath string) (Report, error) {
	var readErrs []error
	answers, err := textfile.ReadLines(answersPath)
	if err != nil {
		readErrs = append(readErrs, err)
		v.notifier.Notify(err.Error())
	}
	reference, err := textfile.ReadLines(referencePath)
	if err != nil {
		readErrs = append(readErrs, err)
		v.notifier.Notify(err.Error())
	}

	report, err := Compare(answers, reference)
	if err != nil {
		return Report{}, err
	}
	if err := textfile.WriteAtomic(resultsPath, report.Bytes(), 0o644); err != nil {
		return report, err
	}
	if len(readErrs) > 0 {
		return report, &InputError{Err: errors.Join(readErrs...)}
	}
	return report, nil
}
