// Package calc evaluates two-operand arithmetic expressions of the form
// "<number> <operator> <number>".
//
// Evaluation never aborts a batch. A line that cannot be computed yields a
// sentinel string in place of the number, and the failure is reported through
// the calculator's notify.Notifier.
//
// Check order per line: token count, both operands, operator lookup, then
// division by exactly zero.
package calc

import (
	"errors"
	"strconv"
	"strings"

	"calculator/internal/notify"
)

const (
	// DivisionByZeroSentinel carries the "NaN" marker so the verifier treats it
	// as a not-a-number result.
	DivisionByZeroSentinel  = "NaN: division by zero"
	InvalidOperatorSentinel = "invalid operator"

	// InvalidOperandSentinel is the string form of positive infinity. Returning
	// a number-shaped value for unparsable operands is a known defect kept for
	// output compatibility with existing answer files.
	InvalidOperandSentinel = "+Inf"
)

// Calculator evaluates expression lines against a fixed operator table.
type Calculator struct {
	ops      Operators
	notifier *notify.Notifier
}

// New returns a Calculator over a copy of ops. A nil notifier discards errors.
func New(ops Operators, n *notify.Notifier) *Calculator {
	return &Calculator{ops: ops.clone(), notifier: n}
}

// Evaluate computes line and returns the value formatted to 3 decimals.
// On failure it returns the matching sentinel and an *EvalError.
func (c *Calculator) Evaluate(line string) (string, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return InvalidOperandSentinel, evalErrorf(ErrMalformedExpression, line, "expected 3 tokens, got %d", len(tokens))
	}
	sym := tokens[1]

	a, errA := parseOperand(tokens[0])
	b, errB := parseOperand(tokens[2])
	switch {
	case errA != nil:
		return InvalidOperandSentinel, evalErrorf(ErrInvalidOperand, line, "left operand %q", tokens[0])
	case errB != nil:
		return InvalidOperandSentinel, evalErrorf(ErrInvalidOperand, line, "right operand %q", tokens[2])
	}

	op, ok := c.ops[sym]
	if !ok {
		return InvalidOperatorSentinel, evalErrorf(ErrInvalidOperator, line, "unknown operator %q", sym)
	}
	if sym == OpDivide && b == 0 {
		return DivisionByZeroSentinel, &EvalError{Kind: ErrDivisionByZero, Expr: line}
	}
	return Format(op(a, b)), nil
}

// Calculate is Evaluate with the error routed to the notifier.
func (c *Calculator) Calculate(line string) string {
	v, _ := c.calculate(line)
	return v
}

func (c *Calculator) calculate(line string) (string, error) {
	v, err := c.Evaluate(line)
	if err != nil {
		c.notifier.Notify(err.Error())
	}
	return v, err
}

// parseOperand accepts out-of-range literals as the ±Inf that ParseFloat
// returns alongside ErrRange, so "1e400" evaluates like any infinite operand.
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// Format renders v with exactly three decimal places.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
