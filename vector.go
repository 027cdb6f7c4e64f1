// vector.go - vec2/vec3/vec4 over the fixed-point scalar

package raster

// Vec2 is a 2-component fixed-point vector.
type Vec2 struct {
	X, Y Fixed
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X.Add(o.X), v.Y.Add(o.Y)} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X.Sub(o.X), v.Y.Sub(o.Y)} }
func (v Vec2) Scale(s Fixed) Vec2 { return Vec2{v.X.Mul(s), v.Y.Mul(s)} }
func (v Vec2) Div(s Fixed) Vec2   { return Vec2{v.X.Div(s), v.Y.Div(s)} }
func (v Vec2) Dot(o Vec2) Fixed   { return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)) }

// Vec3 is a 3-component fixed-point vector.
type Vec3 struct {
	X, Y, Z Fixed
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)} }
func (v Vec3) Scale(s Fixed) Vec3 {
	return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}
func (v Vec3) Div(s Fixed) Vec3 {
	return Vec3{v.X.Div(s), v.Y.Div(s), v.Z.Div(s)}
}
func (v Vec3) Dot(o Vec3) Fixed {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Vec4 returns v promoted to a Vec4 with w=1.
func (v Vec3) Vec4() Vec4 { return Vec4{v.X, v.Y, v.Z, One} }

// Vec4 is a 4-component fixed-point vector, generally homogeneous clip
// coordinates. Promotions from Vec2/Vec3 default w to 1.
type Vec4 struct {
	X, Y, Z, W Fixed
}

// Vec4FromVec2 promotes a Vec2 with z=0, w=1.
func Vec4FromVec2(v Vec2) Vec4 { return Vec4{v.X, v.Y, 0, One} }

// Vec4FromVec3 promotes a Vec3 with w=1.
func Vec4FromVec3(v Vec3) Vec4 { return Vec4{v.X, v.Y, v.Z, One} }

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z), v.W.Add(o.W)}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z), v.W.Sub(o.W)}
}

func (v Vec4) Scale(s Fixed) Vec4 {
	return Vec4{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s), v.W.Mul(s)}
}

func (v Vec4) Div(s Fixed) Vec4 {
	return Vec4{v.X.Div(s), v.Y.Div(s), v.Z.Div(s), v.W.Div(s)}
}

// Dot is the 4-component dot product, used by the clipper for plane tests.
func (v Vec4) Dot(o Vec4) Fixed {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z)).Add(v.W.Mul(o.W))
}

// Lerp linearly interpolates all four components independently: v + (o-v)*t.
func (v Vec4) Lerp(o Vec4, t Fixed) Vec4 {
	return v.Add(o.Sub(v).Scale(t))
}
