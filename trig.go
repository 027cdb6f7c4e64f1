// trig.go - lookup-table sin/cos over the fixed-point scalar

package raster

import "math"

// gamdegInCircle is the number of table entries covering one full turn.
const gamdegInCircle = 256

const (
	tau = 2 * math.Pi
)

// radToGamdeg converts radians to the gamdeg index space, still in Fixed.
var radToGamdeg = FixedFromFloat64(gamdegInCircle / tau)

var sinTable [gamdegInCircle]Fixed
var cosTable [gamdegInCircle]Fixed

// taylorSin approximates sin(x) for x restricted to one quadrant, matching
// the original fixed-point source's hand-rolled polynomial rather than
// calling a library trig function at table-build time.
func taylorSin(x float64) float64 {
	x2 := x * x
	x3 := x2 * x
	x5 := x3 * x2
	x7 := x5 * x2
	x9 := x7 * x2
	return x - x3/6.0 + x5/120.0 - x7/5040.0 + x9/362880.0
}

// taylorCos approximates cos(x) for x restricted to one quadrant.
func taylorCos(x float64) float64 {
	x2 := x * x
	x4 := x2 * x2
	x6 := x4 * x2
	x8 := x4 * x4
	return 1.0 - x2/2.0 + x4/24.0 - x6/720.0 + x8/40320.0
}

func init() {
	const quadrant = gamdegInCircle / 4

	// Build one quadrant [0, quadrant] of sin via Taylor series, reflect to
	// fill the second quadrant, then negate both to fill the third/fourth.
	k := quadrant * 2
	for i := 0; i <= quadrant; i++ {
		x := (tau / gamdegInCircle) * float64(i)
		v := FixedFromFloat64(taylorSin(x))
		sinTable[i] = v
		sinTable[k] = v
		k--
	}
	k = quadrant * 2
	for i := 0; i < quadrant*2; i++ {
		sinTable[k] = sinTable[i].Neg()
		k++
	}
	sinTable[quadrant*0] = FixedFromFloat64(0)
	sinTable[quadrant*1] = One
	sinTable[quadrant*2] = FixedFromFloat64(0)
	sinTable[quadrant*3] = One.Neg()

	// Same construction for cos, with the quadrant-2 reflection negated
	// (cos is anti-symmetric about the quadrant boundary where sin is not).
	k = quadrant * 2
	for i := 0; i <= quadrant; i++ {
		x := (tau / gamdegInCircle) * float64(i)
		v := FixedFromFloat64(taylorCos(x))
		cosTable[i] = v
		cosTable[k] = v.Neg()
		k--
	}
	k = quadrant * 2
	for i := 0; i < quadrant*2; i++ {
		cosTable[k] = cosTable[i].Neg()
		k++
	}
	cosTable[quadrant*0] = One
	cosTable[quadrant*1] = FixedFromFloat64(0)
	cosTable[quadrant*2] = One.Neg()
	cosTable[quadrant*3] = FixedFromFloat64(0)
}

// clampGamdeg wraps an index into [0, gamdegInCircle) even for negative input.
func clampGamdeg(g int32) int32 {
	g %= gamdegInCircle
	if g < 0 {
		g += gamdegInCircle
	}
	return g
}

// Sin looks up sin(a) for a in radians, using the table entry nearest to a.
func Sin(a Fixed) Fixed {
	gd := a.Mul(radToGamdeg)
	idx := clampGamdeg(int32(gd.Add(fixedHalf).Int()))
	return sinTable[idx]
}

// Cos looks up cos(a) for a in radians, using the table entry nearest to a.
func Cos(a Fixed) Fixed {
	gd := a.Mul(radToGamdeg)
	idx := clampGamdeg(int32(gd.Add(fixedHalf).Int()))
	return cosTable[idx]
}

// Tan returns sin(a)/cos(a).
func Tan(a Fixed) Fixed {
	return Sin(a).Div(Cos(a))
}

// Cot returns cos(a)/sin(a).
func Cot(a Fixed) Fixed {
	return Cos(a).Div(Sin(a))
}
