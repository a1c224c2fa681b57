package vmath

// EnumerateRange lists the (2r+1)^2 chunk indices around center
// Rows run from center.Y+r down to center.Y-r, columns left to right
// A negative radius is treated as 0
func EnumerateRange(center IVec2, radius int) []IVec2 {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	out := make([]IVec2, 0, side*side)
	for y := center.Y + radius; y >= center.Y-radius; y-- {
		for x := center.X - radius; x <= center.X+radius; x++ {
			out = append(out, IVec2{X: x, Y: y})
		}
	}
	return out
}

// WithinRange reports whether index lies within radius of center on both axes
// Safe for any int inputs, a negative radius is treated as 0
func WithinRange(center, index IVec2, radius int) bool {
	if radius < 0 {
		radius = 0
	}
	return axisWithin(center.X, index.X, radius) && axisWithin(center.Y, index.Y, radius)
}

// axisWithin compares the distance in unsigned space, where it cannot overflow
func axisWithin(c, v, radius int) bool {
	if v >= c {
		return uint(v)-uint(c) <= uint(radius)
	}
	return uint(c)-uint(v) <= uint(radius)
}
