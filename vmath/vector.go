package vmath

import "math"

// IVec2 is an integer 2D vector used for chunk and tile indices
type IVec2 struct {
	X, Y int
}

// Vec2 is a real 2D vector used for world positions and sizes
type Vec2 struct {
	X, Y float64
}

// Add returns a+b
func (a IVec2) Add(b IVec2) IVec2 { return IVec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b
func (a IVec2) Sub(b IVec2) IVec2 { return IVec2{a.X - b.X, a.Y - b.Y} }


// Area returns X*Y
func (a IVec2) Area() int { return a.X * a.Y }

// Vec2 converts to a real vector
func (a IVec2) Vec2() Vec2 { return Vec2{float64(a.X), float64(a.Y)} }

// Add returns a+b
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Mul returns the component-wise product
func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }

// Scale multiplies both components by s
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Abs returns the component-wise absolute value
func (a Vec2) Abs() Vec2 { return Vec2{math.Abs(a.X), math.Abs(a.Y)} }

// Dot returns the dot product
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Finite reports whether both components are neither NaN nor infinite
func (a Vec2) Finite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) && !math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

