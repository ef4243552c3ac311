package polynomial

import (
	"strconv"
	"strings"
)

// Formatting defaults reproduce the classic "y(x) = +c0 +c1x +c2x^{2}" layout.
const (
	DefaultFuncName  = "y(x)"
	DefaultVariable  = "x"
	DefaultPrecision = -1 // shortest representation that round-trips
)

const panicPrecisionInvalid = "polynomial: WithPrecision: precision must be >= -1"

// FormatOption customises Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	funcName  string
	variable  string
	precision int
}

// WithFuncName sets the left-hand side label, e.g. "f(t)".
func WithFuncName(name string) FormatOption {
	return func(o *formatOptions) { o.funcName = name }
}

// WithVariable sets the variable symbol used for powers ≥ 1.
func WithVariable(v string) FormatOption {
	return func(o *formatOptions) { o.variable = v }
}

// WithPrecision fixes the number of digits after the decimal point;
// -1 selects the shortest round-trip representation.
func WithPrecision(digits int) FormatOption {
	if digits < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = digits }
}

// Format renders p as "<func> = <term> <term> ...". Every coefficient
// carries an explicit sign; power 1 is written as the bare variable and
// power k > 1 as variable^{k}. The empty polynomial renders as "<func> = +0".
func Format(p Polynomial, opts ...FormatOption) string {
	o := formatOptions{funcName: DefaultFuncName, variable: DefaultVariable, precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString(o.funcName)
	sb.WriteString(" =")
	if len(p) == 0 {
		sb.WriteString(" +0")

		return sb.String()
	}
	for i, c := range p {
		sb.WriteByte(' ')
		sb.WriteString(signed(c, o.precision))
		switch {
		case i == 1:
			sb.WriteString(o.variable)
		case i > 1:
			sb.WriteString(o.variable)
			sb.WriteString("^{")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteByte('}')
		}
	}

	return sb.String()
}

// String implements fmt.Stringer with the default Format options.
func (p Polynomial) String() string {
	return Format(p)
}

// signed formats c with a mandatory leading sign.
func signed(c float64, precision int) string {
	var s string
	if precision < 0 {
		s = strconv.FormatFloat(c, 'g', -1, 64)
	} else {
		s = strconv.FormatFloat(c, 'f', precision, 64)
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return s
	}

	return "+" + s
}
