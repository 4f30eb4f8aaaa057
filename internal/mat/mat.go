// Package mat provides the small float32 vector and matrix types used for
// color transforms and 2D view projections.
//
// Matrices are stored column-major, matching the layout WGSL expects for
// mat3x3<f32> and mat4x4<f32> uniforms:
//
//	Mat3{c0r0, c0r1, c0r2, c1r0, c1r1, c1r2, c2r0, c2r1, c2r2}
//
// Transforming a point p by A.Mul(B) applies B first, then A.
package mat

import "math"

// Vec2 is a 2-component vector.
type Vec2 struct{ X, Y float32 }

// Vec3 is a 3-component vector.
type Vec3 struct{ X, Y, Z float32 }

// Vec4 is a 4-component vector. Component order is R, G, B, A when used as a color.
type Vec4 [4]float32

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Add returns v + o component-wise.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Div returns v / s component-wise.
func (v Vec4) Div(s float32) Vec4 {
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// Clamp returns v with each component clamped to [lo, hi].
// NaN components are returned unchanged.
func (v Vec4) Clamp(lo, hi float32) Vec4 {
	for i, c := range v {
		if c < lo {
			v[i] = lo
		} else if c > hi {
			v[i] = hi
		}
	}
	return v
}

// Mat3 is a 3x3 column-major matrix for 2D homogeneous transforms.
type Mat3 [9]float32

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Scale3 returns a 2D scale.
func Scale3(sx, sy float32) Mat3 {
	return Mat3{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Translate3 returns a 2D translation.
func Translate3(tx, ty float32) Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, tx, ty, 1}
}

// ScaleTranslate3 returns translate(t) * scale(s).
func ScaleTranslate3(s, t Vec2) Mat3 {
	return Mat3{s.X, 0, 0, 0, s.Y, 0, t.X, t.Y, 1}
}

// Projection returns the matrix mapping pixel space (origin top-left,
// Y down) of a w x h area to clip space.
func Projection(w, h float32) Mat3 {
	return Mat3{
		2 / w, 0, 0,
		0, -2 / h, 0,
		-1, 1, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float32 { return m[c*3+r] }

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = m[r]*o[c*3] + m[3+r]*o[c*3+1] + m[6+r]*o[c*3+2]
		}
	}
	return out
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// TransformPoint applies m to the point p (w = 1).
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	v := m.MulVec3(Vec3{p.X, p.Y, 1})
	return Vec2{v.X, v.Y}
}

// TransformVector applies m to the direction v (w = 0).
func (m Mat3) TransformVector(v Vec2) Vec2 {
	r := m.MulVec3(Vec3{v.X, v.Y, 0})
	return Vec2{r.X, r.Y}
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float32 {
	a := m.f64()
	return float32(a[0]*(a[4]*a[8]-a[7]*a[5]) -
		a[3]*(a[1]*a[8]-a[7]*a[2]) +
		a[6]*(a[1]*a[5]-a[4]*a[2]))
}

// Inverse returns the inverse of m. The boolean is false when m is singular,
// in which case the identity is returned.
func (m Mat3) Inverse() (Mat3, bool) {
	a := m.f64()
	c00 := a[4]*a[8] - a[7]*a[5]
	c01 := a[7]*a[2] - a[1]*a[8]
	c02 := a[1]*a[5] - a[4]*a[2]
	det := a[0]*c00 + a[3]*c01 + a[6]*c02
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity3(), false
	}
	inv := 1 / det
	return Mat3{
		float32(c00 * inv),
		float32(c01 * inv),
		float32(c02 * inv),
		float32((a[6]*a[5] - a[3]*a[8]) * inv),
		float32((a[0]*a[8] - a[6]*a[2]) * inv),
		float32((a[3]*a[2] - a[0]*a[5]) * inv),
		float32((a[3]*a[7] - a[6]*a[4]) * inv),
		float32((a[6]*a[1] - a[0]*a[7]) * inv),
		float32((a[0]*a[4] - a[3]*a[1]) * inv),
	}, true
}

// Padded returns m laid out with 16-byte column stride, the uniform-buffer
// layout of a WGSL mat3x3<f32>.
func (m Mat3) Padded() [12]float32 {
	return [12]float32{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
	}
}

func (m Mat3) f64() [9]float64 {
	var a [9]float64
	for i, v := range m {
		a[i] = float64(v)
	}
	return a
}

// Mat4 is a 4x4 column-major matrix, used for color transforms.
type Mat4 [16]float32

// Identity4 returns the 4x4 identity.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rows builds a matrix from four rows, so constants can be written in
// reading order.
func Rows(r0, r1, r2, r3 [4]float32) Mat4 {
	rows := [4][4]float32{r0, r1, r2, r3}
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = rows[r][c]
		}
	}
	return m
}

// Diagonal4 returns diag(x, y, z, w).
func Diagonal4(x, y, z, w float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, w,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 { return m[c*4+r] }

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+r] * o[c*4+k]
			}
			out[c*4+r] = s
		}
	}
	return out
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[r]*v[0] + m[4+r]*v[1] + m[8+r]*v[2] + m[12+r]*v[3]
	}
	return out
}
