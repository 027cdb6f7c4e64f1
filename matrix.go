// matrix.go - column-major 4x4 fixed-point matrix

package raster

// Mat4 is a column-major 4x4 matrix of fixed-point scalars: M[col][row].
// The zero value is NOT the identity; use IdentityMat4.
type Mat4 struct {
	M [4][4]Fixed
}

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	var m Mat4
	m.M[0][0] = One
	m.M[1][1] = One
	m.M[2][2] = One
	m.M[3][3] = One
	return m
}

// Mul computes m * o following OpenGL column-major semantics.
func (m Mat4) Mul(o Mat4) Mat4 {
	var n Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			n.M[c][r] = m.M[0][r].Mul(o.M[c][0]).
				Add(m.M[1][r].Mul(o.M[c][1])).
				Add(m.M[2][r].Mul(o.M[c][2])).
				Add(m.M[3][r].Mul(o.M[c][3]))
		}
	}
	return n
}

// MulVec4 transforms a column vector by m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.M[0][0].Mul(v.X).Add(m.M[1][0].Mul(v.Y)).Add(m.M[2][0].Mul(v.Z)).Add(m.M[3][0].Mul(v.W)),
		Y: m.M[0][1].Mul(v.X).Add(m.M[1][1].Mul(v.Y)).Add(m.M[2][1].Mul(v.Z)).Add(m.M[3][1].Mul(v.W)),
		Z: m.M[0][2].Mul(v.X).Add(m.M[1][2].Mul(v.Y)).Add(m.M[2][2].Mul(v.Z)).Add(m.M[3][2].Mul(v.W)),
		W: m.M[0][3].Mul(v.X).Add(m.M[1][3].Mul(v.Y)).Add(m.M[2][3].Mul(v.Z)).Add(m.M[3][3].Mul(v.W)),
	}
}

// TranslationVec3 builds a translation matrix from a Vec3 (w row forced to 1).
func TranslationVec3(v Vec3) Mat4 {
	m := IdentityMat4()
	m.M[3][0] = v.X
	m.M[3][1] = v.Y
	m.M[3][2] = v.Z
	m.M[3][3] = One
	return m
}

// TranslationVec4 builds a translation matrix, carrying v.W into m[3][3].
func TranslationVec4(v Vec4) Mat4 {
	m := IdentityMat4()
	m.M[3][0] = v.X
	m.M[3][1] = v.Y
	m.M[3][2] = v.Z
	m.M[3][3] = v.W
	return m
}

// RotationX builds a rotation about the X axis by radians.
func RotationX(radians Fixed) Mat4 {
	m := IdentityMat4()
	s, c := Sin(radians), Cos(radians)
	m.M[1][1] = c
	m.M[1][2] = s
	m.M[2][1] = s.Neg()
	m.M[2][2] = c
	return m
}

// RotationY builds a rotation about the Y axis by radians.
func RotationY(radians Fixed) Mat4 {
	m := IdentityMat4()
	s, c := Sin(radians), Cos(radians)
	m.M[0][0] = c
	m.M[0][2] = s.Neg()
	m.M[2][0] = s
	m.M[2][2] = c
	return m
}

// RotationZ builds a rotation about the Z axis by radians.
func RotationZ(radians Fixed) Mat4 {
	m := IdentityMat4()
	s, c := Sin(radians), Cos(radians)
	m.M[0][0] = c
	m.M[0][1] = s
	m.M[1][0] = s.Neg()
	m.M[1][1] = c
	return m
}

// degToRad is 2*pi/360 in fixed-point, matching the source's degree-input
// convention for Perspective (see DESIGN NOTES in spec.md: rotations take
// radians, Perspective takes degrees — the split is preserved deliberately).
var degToRad = FixedFromFloat64(tau / 360.0)

// Perspective builds a right-handed OpenGL perspective projection. fovyDeg
// is in DEGREES, matching the original source's convention; aspect, near
// and far are ordinary fixed-point scalars.
func Perspective(fovyDeg, aspect, near, far Fixed) Mat4 {
	var m Mat4
	fovyRad := fovyDeg.Mul(degToRad)
	f := Cot(fovyRad.Div(FixedFromInt(2)))

	m.M[0][0] = f.Div(aspect)
	m.M[1][1] = f
	m.M[2][2] = far.Add(near).Div(near.Sub(far))
	m.M[3][2] = FixedFromInt(2).Mul(far).Mul(near).Div(near.Sub(far))
	m.M[2][3] = One.Neg()
	m.M[3][3] = 0
	return m
}

// Perspective90DegSquare is the fixed-90-degree, unit-aspect shortcut.
func Perspective90DegSquare(near, far Fixed) Mat4 {
	var m Mat4
	m.M[0][0] = One
	m.M[1][1] = One
	m.M[2][2] = far.Add(near).Div(near.Sub(far))
	m.M[3][2] = FixedFromInt(2).Mul(far).Mul(near).Div(near.Sub(far))
	m.M[2][3] = One.Neg()
	m.M[3][3] = 0
	return m
}
