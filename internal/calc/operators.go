package calc

import "math"

// Operation is a binary numeric operator.
type Operation func(a, b float64) float64

// Operators maps an operator symbol to its implementation.
type Operators map[string]Operation

const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"
	OpPower    = "^"
)

// DefaultOperators returns a fresh table with the five supported operators.
func DefaultOperators() Operators {
	return Operators{
		OpAdd:      func(a, b float64) float64 { return a + b },
		OpSubtract: func(a, b float64) float64 { return a - b },
		OpMultiply: func(a, b float64) float64 { return a * b },
		OpDivide:   func(a, b float64) float64 { return a / b },
		OpPower:    math.Pow,
	}
}

func (o Operators) clone() Operators {
	out := make(Operators, len(o))
	for sym, fn := range o {
		if fn != nil {
			out[sym] = fn
		}
	}
	return out
}
