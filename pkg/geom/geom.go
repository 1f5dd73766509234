// Package geom provides exact rational-coordinate geometry for planar
// graph layouts.
//
// Points carry integer numerators over a shared positive denominator, so a
// layout can mix grid-aligned points (denominator 1) with points derived
// from device pixels (denominator = tile size) without loss of precision.
// The segment-intersection predicate works entirely in integer arithmetic -
// no division, no floating point - so near-degenerate configurations
// (collinear overlaps, endpoint touches) are classified exactly.
package geom

import "math"

// Point is a 2D point with rational coordinates (X/D, Y/D).
// D must be strictly positive. Two points may carry different denominators;
// they are only ever compared through the exact predicates in this package,
// never by converting to floating point.
type Point struct {
	X, Y int
	D    int
}

// Pixel projects the point onto a pixel grid with the given tile size,
// computing coord * tilesize / d for each axis.
func (p Point) Pixel(tilesize int) (x, y int) {
	return p.X * tilesize / p.D, p.Y * tilesize / p.D
}

// Mix linearly interpolates between a and b. At t=0 the result coincides
// with a, at t=1 with b. The result's denominator is a.D*b.D, so it stays
// positive whenever both inputs are valid. Intended for animation between
// two layouts; the truncation inherent in the float multiply is fine there,
// interpolated points never feed the exact predicate.
func Mix(a, b Point, t float64) Point {
	var ret Point
	ret.D = a.D * b.D
	ret.X = a.X*b.D + int(t*float64(b.X*a.D-a.X*b.D))
	ret.Y = a.Y*b.D + int(t*float64(b.Y*a.D-a.Y*b.D))
	return ret
}

// Intersects reports whether the closed segments a1-a2 and b1-b2 intersect.
// Touching at an endpoint and collinear overlap both count as intersection.
// A degenerate segment whose endpoints coincide acts as a single point, so
// Intersects(s1, s2, p, p) tests whether p lies on the segment s1-s2.
//
// The test is exact as long as the products of coordinates and denominators
// stay within the native int range, which holds comfortably for grid and
// on-screen pixel coordinates. Results are symmetric in segment order and
// in endpoint order within each segment.
func Intersects(a1, a2, b1, b2 Point) bool {
	if a1.D <= 0 || a2.D <= 0 || b1.D <= 0 || b2.D <= 0 {
		panic("geom: point with non-positive denominator")
	}

	// b1 and b2 must lie on opposite sides of the line a1-a2, and vice
	// versa. Compute the numerators of b1-a1 and b2-a1, and of a vector
	// perpendicular to a2-a1; the denominators cancel out of the sign.
	b1x := b1.X*a1.D - a1.X*b1.D
	b1y := b1.Y*a1.D - a1.Y*b1.D
	b2x := b2.X*a1.D - a1.X*b2.D
	b2y := b2.Y*a1.D - a1.Y*b2.D
	px := a1.Y*a2.D - a2.Y*a1.D
	py := a2.X*a1.D - a1.X*a2.D

	d1 := b1x*px + b1y*py
	d2 := b2x*px + b2y*py
	if (d1 > 0 && d2 > 0) || (d1 < 0 && d2 < 0) {
		return false
	}

	// Both products exactly zero means the four points are collinear; the
	// question becomes 1-D interval overlap along the direction a2-a1,
	// with inclusive bounds so that touching endpoints still intersect.
	if d1 == 0 && d2 == 0 {
		px = a2.X*a1.D - a1.X*a2.D
		py = a2.Y*a1.D - a1.Y*a2.D
		d1 = b1x*px + b1y*py
		d2 = b2x*px + b2y*py
		if d1 < 0 && d2 < 0 {
			return false
		}
		d3 := px*px + py*py
		if d1 > d3 && d2 > d3 {
			return false
		}
	}

	// Symmetric test with the roles of the segments swapped.
	b1x = a1.X*b1.D - b1.X*a1.D
	b1y = a1.Y*b1.D - b1.Y*a1.D
	b2x = a2.X*b1.D - b1.X*a2.D
	b2y = a2.Y*b1.D - b1.Y*a2.D
	px = b1.Y*b2.D - b2.Y*b1.D
	py = b2.X*b1.D - b1.X*b2.D
	d1 = b1x*px + b1y*py
	d2 = b2x*px + b2y*py
	if (d1 > 0 && d2 > 0) || (d1 < 0 && d2 < 0) {
		return false
	}

	return true
}

// Circle lays out n points evenly spaced on a circle inside the square
// (0,0)-(w,w), using tile as the shared denominator. The denominator is
// kept at a fixed moderate size to avoid overflow in later predicate
// arithmetic. Trigonometry only seeds integer-rounded positions here; the
// predicates themselves never see a float.
func Circle(n, w, tile int) []Point {
	c := tile * w / 2
	r := tile * w * 3 / 7

	pts := make([]Point, n)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(n)
		x := float64(r) * math.Sin(angle)
		y := -float64(r) * math.Cos(angle)
		pts[i] = Point{
			X: int(float64(c) + x + 0.5),
			Y: int(float64(c) + y + 0.5),
			D: tile,
		}
	}
	return pts
}

// GridSide returns the side length of the smallest square grid with at
// least n*density cells, i.e. ceil(sqrt(n*density)). Computed with integer
// arithmetic so grid sizing is deterministic across platforms.
func GridSide(n, density int) int {
	target := n * density
	s := int(math.Sqrt(float64(target)))
	for s*s < target {
		s++
	}
	for s > 0 && (s-1)*(s-1) >= target {
		s--
	}
	return s
}
