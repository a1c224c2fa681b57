package vmath

// PointInRect reports whether point falls inside the rectangle anchored at center
// It compares the half-extent corner against the reflected offset, so for a square
// centered at the origin it accepts a diamond through the edge midpoints, not the box
// Off the origin it drifts further from a box test
func PointInRect(center, size, point Vec2) bool {
	corner := center.Add(size.Scale(0.5))
	return corner.Dot(corner)/2 >= corner.Dot(point.Add(center).Abs())
}

// AABBContains is the plain axis-aligned box test, boundary inclusive
func AABBContains(center, size, point Vec2) bool {
	half := size.Scale(0.5)
	d := point.Sub(center).Abs()
	return d.X <= half.X && d.Y <= half.Y
}
