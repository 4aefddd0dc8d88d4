package physics

import "math"

type Vec2 struct {
	Xv float64 `json:"x" yaml:"x"`
	Yv float64 `json:"y" yaml:"y"`
}

func V(x, y float64) Vec2 { return Vec2{Xv: x, Yv: y} }

func (v Vec2) X() float64 { return v.Xv }
func (v Vec2) Y() float64 { return v.Yv }

func (v Vec2) Add(o Vec2) Vec2           { return Vec2{v.Xv + o.Xv, v.Yv + o.Yv} }
func (v Vec2) Sub(o Vec2) Vec2           { return Vec2{v.Xv - o.Xv, v.Yv - o.Yv} }
func (v Vec2) Scale(s float64) Vec2      { return Vec2{v.Xv * s, v.Yv * s} }
func (v Vec2) Len() float64              { return math.Hypot(v.Xv, v.Yv) }
func (v Vec2) Position2() (x, y float64) { return v.Xv, v.Yv }

// Normalized returns the unit vector in v's direction, or the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// Distance2V computes distance from two Vector2.
func Distance2V(a, b Vector2) float64 { return math.Hypot(b.X()-a.X(), b.Y()-a.Y()) }

// DistanceT computes distance between two transforms.
func DistanceT(a, b Transform) float64 {
	x1, y1 := a.Position2()
	x2, y2 := b.Position2()
	return Distance2(x1, y1, x2, y2)
}
