package calc

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidOperator     = errors.New("invalid operator")
	ErrInvalidOperand      = errors.New("invalid operand")
	ErrMalformedExpression = errors.New("malformed expression")
)

// EvalError describes why a single expression line could not be evaluated.
// Kind is one of the Err* sentinels above.
type EvalError struct {
	Kind error
	Expr string
	Msg  string
}

func (e *EvalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%s: %q", e.Kind.Error(), e.Expr)
	}
	return fmt.Sprintf("%s: %q: %s", e.Kind.Error(), e.Expr, e.Msg)
}

func (e *EvalError) Unwrap() error { return e.Kind }

func evalErrorf(kind error, expr, format string, args ...any) error {
	return &EvalError{Kind: kind, Expr: expr, Msg: fmt.Sprintf(format, args...)}
}
