package verify

import (
	"errors"
	"fmt"
)

// LengthMismatchError aborts verification when the two inputs differ in length.
type LengthMismatchError struct {
	Answers   int
	Reference int
}

func (e *LengthMismatchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("sizes do not match: answers size is %d, reference size is %d", e.Answers, e.Reference)
}

// ErrInputUnavailable marks a run where at least one input file could not be
// read and was compared as empty.
var ErrInputUnavailable = errors.New("verification input unavailable")

// InputError carries the read failures behind ErrInputUnavailable.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", ErrInputUnavailable, e.Err)
}

func (e *InputError) Is(target error) bool { return target == ErrInputUnavailable }

func (e *InputError) Unwrap() error { return e.Err }
