package mat

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func mat3Near(a, b Mat3) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestMat3Mul(t *testing.T) {
	tests := []struct {
		name string
		m    Mat3
		p    Vec2
		want Vec2
	}{
		{"identity", Identity3(), Vec2{3, 4}, Vec2{3, 4}},
		{"scale", Scale3(2, 3), Vec2{1, 1}, Vec2{2, 3}},
		{"translate", Translate3(5, -2), Vec2{1, 1}, Vec2{6, -1}},
		{"translate after scale", Translate3(5, 0).Mul(Scale3(2, 2)), Vec2{1, 1}, Vec2{7, 2}},
		{"scale after translate", Scale3(2, 2).Mul(Translate3(5, 0)), Vec2{1, 1}, Vec2{12, 2}},
		{"scale translate", ScaleTranslate3(Vec2{2, 2}, Vec2{5, 0}), Vec2{1, 1}, Vec2{7, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMat3TransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate3(10, 10).Mul(Scale3(2, 4))
	got := m.TransformVector(Vec2{1, 1})
	if !near(got.X, 2) || !near(got.Y, 4) {
		t.Errorf("TransformVector = %v, want {2 4}", got)
	}
}

func TestMat3Inverse(t *testing.T) {
	tests := []Mat3{
		Identity3(),
		Scale3(0.1, 10),
		Translate3(5, -3),
		Translate3(5, -3).Mul(Scale3(2, 0.5)),
		Projection(800, 600),
	}
	for i, m := range tests {
		inv, ok := m.Inverse()
		if !ok {
			t.Fatalf("case %d: matrix reported singular", i)
		}
		if got := m.Mul(inv); !mat3Near(got, Identity3()) {
			t.Errorf("case %d: m * inv = %v, want identity", i, got)
		}
	}
}

func TestMat3InverseSingular(t *testing.T) {
	_, ok := Scale3(0, 1).Inverse()
	if ok {
		t.Error("Inverse of singular matrix reported ok")
	}
}

func TestProjection(t *testing.T) {
	p := Projection(200, 100)
	tests := []struct {
		in, want Vec2
	}{
		{Vec2{0, 0}, Vec2{-1, 1}},
		{Vec2{200, 100}, Vec2{1, -1}},
		{Vec2{100, 50}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		got := p.TransformPoint(tt.in)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("Projection(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMat4Rows(t *testing.T) {
	m := Rows(
		[4]float32{1, 2, 3, 4},
		[4]float32{5, 6, 7, 8},
		[4]float32{9, 10, 11, 12},
		[4]float32{13, 14, 15, 16},
	)
	if m.At(0, 1) != 2 || m.At(1, 0) != 5 || m.At(3, 2) != 15 {
		t.Errorf("Rows stored wrong layout: %v", m)
	}
	got := m.MulVec4(Vec4{1, 0, 0, 0})
	if got != (Vec4{1, 5, 9, 13}) {
		t.Errorf("MulVec4 first column = %v", got)
	}
}

func TestMat4Mul(t *testing.T) {
	a := Diagonal4(2, 3, 4, 5)
	b := Rows(
		[4]float32{0, 0, 1, 0},
		[4]float32{0, 1, 0, 0},
		[4]float32{1, 0, 0, 0},
		[4]float32{0, 0, 0, 1},
	)
	v := Vec4{1, 2, 3, 4}
	want := a.MulVec4(b.MulVec4(v))
	if got := a.Mul(b).MulVec4(v); got != want {
		t.Errorf("(a*b)v = %v, want %v", got, want)
	}
	if got := Identity4().Mul(a); got != a {
		t.Errorf("I*a = %v, want %v", got, a)
	}
}

func TestVec4Clamp(t *testing.T) {
	got := Vec4{-1, 0.5, 2, 1}.Clamp(0, 1)
	if got != (Vec4{0, 0.5, 1, 1}) {
		t.Errorf("Clamp = %v", got)
	}
}
