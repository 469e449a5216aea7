// Package stackbeat implements the stack expression language: a typed
// int/float stack machine compiled once and evaluated once per output sample.
package stackbeat

// Value is a tagged int64/float64 union, the only runtime type of the
// expression machine.
type Value struct {
	f       float64
	i       int64
	isFloat bool
}

// I returns an integer Value.
func I(i int64) Value {
	return Value{i: i}
}

// F returns a float Value.
func F(f float64) Value {
	return Value{f: f, isFloat: true}
}

// B returns integer 1 for true and 0 for false.
func B(b bool) Value {
	if b {
		return I(1)
	}
	return I(0)
}

// IsFloat reports whether v holds a float.
func (v Value) IsFloat() bool {
	return v.isFloat
}

// Int returns v as an int64, truncating floats toward zero.
func (v Value) Int() int64 {
	if v.isFloat {
		return int64(v.f)
	}
	return v.i
}

// Float returns v as a float64, widening integers exactly.
func (v Value) Float() float64 {
	if v.isFloat {
		return v.f
	}
	return float64(v.i)
}

// Bool reports truthiness: false only for integer 0 and float 0.0.
func (v Value) Bool() bool {
	if v.isFloat {
		return v.f != 0.0
	}
	return v.i != 0
}

// Byte returns the low byte of the integer form.
func (v Value) Byte() byte {
	return byte(v.Int())
}

// Equal implements the mixed int/float equality rule: an int equals a float
// only when the float equals the int as a float and still equals it after
// truncating back to int. This double check is deliberately preserved from
// the original engine; program output depends on it.
func (v Value) Equal(w Value) bool {
	switch {
	case !v.isFloat && !w.isFloat:
		return v.i == w.i
	case v.isFloat && w.isFloat:
		return v.f == w.f
	case !v.isFloat: // int vs float
		return float64(v.i) == w.f && v.i == int64(w.f)
	default: // float vs int
		return v.f == float64(w.i) && int64(v.f) == w.i
	}
}

// Less orders values by promoting mixed pairs to float.
func (v Value) Less(w Value) bool {
	if !v.isFloat && !w.isFloat {
		return v.i < w.i
	}
	return v.Float() < w.Float()
}

// LessEq is Less-or-equal under the same promotion rule. Note that the
// equality half is float promotion, not Equal; <= and >= do not share the
// dual-check rule of == and !=.
func (v Value) LessEq(w Value) bool {
	if !v.isFloat && !w.isFloat {
		return v.i <= w.i
	}
	return v.Float() <= w.Float()
}
