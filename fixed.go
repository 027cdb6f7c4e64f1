// fixed.go - Q16.16 fixed-point scalar arithmetic

package raster

// Fixed is a signed Q16.16 fixed-point number: the low 16 bits of the
// underlying int32 are the fractional part. Range is roughly
// [-32768, +32768) at a resolution of 2^-16.
type Fixed int32

const (
	fixedShift = 16
	fixedScale = 1 << fixedShift
	fixedHalf  = fixedScale / 2
)

// One is the fixed-point representation of 1.0.
const One Fixed = fixedScale

// Zero is the fixed-point representation of 0.0.
const Zero Fixed = 0

// FixedFromInt converts a small integer to Q16.16.
func FixedFromInt(n int) Fixed {
	return Fixed(int32(n) << fixedShift)
}

// FixedFromFloat64 computes round(value * 65536). Intended for building
// constant tables and test fixtures at init time, never on the hot path.
func FixedFromFloat64(value float64) Fixed {
	if value >= 0 {
		return Fixed(int32(value*fixedScale + 0.5))
	}
	return Fixed(int32(value*fixedScale - 0.5))
}

// Int truncates toward negative infinity (arithmetic shift).
func (f Fixed) Int() int {
	return int(int32(f) >> fixedShift)
}

// Float64 recovers an approximate real value, for tests and diagnostics.
func (f Fixed) Float64() float64 {
	return float64(int32(f)) / fixedScale
}

// Add wraps on overflow; this is ordinary 32-bit addition.
func (f Fixed) Add(g Fixed) Fixed {
	return Fixed(int32(f) + int32(g))
}

// Sub wraps on overflow; this is ordinary 32-bit subtraction.
func (f Fixed) Sub(g Fixed) Fixed {
	return Fixed(int32(f) - int32(g))
}

// Neg negates f.
func (f Fixed) Neg() Fixed {
	return Fixed(-int32(f))
}

// Mul multiplies through a 64-bit intermediate, then shifts back down.
// Overflow of the Q16.16 range wraps rather than traps.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed((int64(f) * int64(g)) >> fixedShift)
}

// Div divides by shifting the dividend up into the 64-bit intermediate
// before the integer division. Division by zero returns 0 rather than
// trapping; the pipeline guarantees this case never arises in practice
// (see clip.go's inside/outside guard before every intersection divide).
func (f Fixed) Div(g Fixed) Fixed {
	if g == 0 {
		return 0
	}
	return Fixed((int64(f) << fixedShift) / int64(g))
}

// Abs returns the absolute value of f.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return f.Neg()
	}
	return f
}

// Less reports whether f < g using signed integer comparison.
func (f Fixed) Less(g Fixed) bool {
	return int32(f) < int32(g)
}
