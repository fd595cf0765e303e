// Package value holds the two-valued result data type tag and the
// numeric container tagged by it, shared by the AST, the tokenizer's
// literal parsing, and the evaluator.
package value

// DataType selects the arithmetic mode for an expression: integer or
// IEEE-754 double. Chosen once at build time.
type DataType int

const (
	Long DataType = iota
	Double
)

func (d DataType) String() string {
	if d == Double {
		return "DOUBLE"
	}
	return "LONG"
}

// Number is a tagged numeric payload: a signed integer under Long, a
// double under Double. For VAR nodes the integer field holds the
// zero-based variable index regardless of data type.
type Number struct {
	typ DataType
	i   int64
	f   float64
}

// Int constructs an integer-valued Number.
func Int(i int64) Number { return Number{typ: Long, i: i} }

// Float constructs a double-valued Number.
func Float(f float64) Number { return Number{typ: Double, f: f} }

// Index constructs the Number held by a VAR node: a plain variable
// index, independent of the AST's declared data type.
func Index(i int) Number { return Number{i: int64(i)} }

// Type returns the payload's tag.
func (n Number) Type() DataType { return n.typ }

// Int64 returns the integer payload.
func (n Number) Int64() int64 { return n.i }

// Float64 returns the double payload.
func (n Number) Float64() float64 { return n.f }

// AsInt64 converts the payload to integer arithmetic: the stored
// integer under Long, the truncated double under Double.
func (n Number) AsInt64() int64 {
	if n.typ == Double {
		return int64(n.f)
	}
	return n.i
}

// AsFloat64 converts the payload to double arithmetic.
func (n Number) AsFloat64() float64 {
	if n.typ == Double {
		return n.f
	}
	return float64(n.i)
}
