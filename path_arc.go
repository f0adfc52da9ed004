package shapeshifter

import "math"

// arcToCubics approximates the elliptical arc from start to end, as given by the SVG arc command arguments, by a
// series of cubic Béziers. It returns the control points and end point of every Bézier, at most one per eighth
// turn. Radii that are too small to span start and end are scaled up uniformly until the ellipse fits. It returns
// nil if start and end coincide, and a nil curve (ie. a straight line) if either radius is zero.
func arcToCubics(start Point, rx, ry, phi float64, large, sweep bool, end Point) ([][3]Point, bool) {
	if start.Equals(end) {
		return nil, true
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return nil, false
	}
	return ellipseToCubics(start, rx, ry, phi*math.Pi/180.0, large, sweep, end), true
}

func ellipseToCubics(start Point, rx, ry, theta float64, large, sweep bool, end Point) [][3]Point {
	sintheta, costheta := math.Sincos(theta)

	// rotate into the frame of the ellipse and scale it to the unit circle
	p0 := Point{(start.X*costheta + start.Y*sintheta) / rx, (-start.X*sintheta + start.Y*costheta) / ry}
	p1 := Point{(end.X*costheta + end.Y*sintheta) / rx, (-end.X*sintheta + end.Y*costheta) / ry}
	d := p0.Sub(p1)
	mid := p0.Add(p1).Mul(0.5)
	dsq := d.Dot(d)
	if dsq == 0.0 {
		return nil
	}
	disc := 1.0/dsq - 0.25
	if disc < 0.0 {
		// the circle is too small, the endpoints are more than a diameter apart
		adjust := math.Sqrt(dsq) / 1.99999
		return ellipseToCubics(start, rx*adjust, ry*adjust, theta, large, sweep, end)
	}

	s := math.Sqrt(disc)
	var c Point
	if large == sweep {
		c = Point{mid.X - s*d.Y, mid.Y + s*d.X}
	} else {
		c = Point{mid.X + s*d.Y, mid.Y - s*d.X}
	}
	eta0 := math.Atan2(p0.Y-c.Y, p0.X-c.X)
	eta1 := math.Atan2(p1.Y-c.Y, p1.X-c.X)
	sweepAngle := eta1 - eta0
	if sweep != (0.0 <= sweepAngle) {
		if 0.0 < sweepAngle {
			sweepAngle -= 2.0 * math.Pi
		} else {
			sweepAngle += 2.0 * math.Pi
		}
	}

	// back into the original frame
	c = Point{c.X * rx, c.Y * ry}
	c = Point{c.X*costheta - c.Y*sintheta, c.X*sintheta + c.Y*costheta}

	beziers := arcSegments(c, rx, ry, sintheta, costheta, eta0, sweepAngle)
	if 0 < len(beziers) {
		beziers[len(beziers)-1][2] = end
	}
	return beziers
}

// arcSegments splits the arc of the ellipse centered at c into segments of at most an eighth turn and
// approximates each by a cubic Bézier, see L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic or
// cubic Bézier curves", 2003
func arcSegments(c Point, rx, ry, sintheta, costheta, eta0, sweepAngle float64) [][3]Point {
	n := int(math.Ceil(math.Abs(sweepAngle)*4.0/math.Pi - Epsilon))
	if n == 0 {
		return nil
	}

	pos := func(eta float64) Point {
		sineta, coseta := math.Sincos(eta)
		return Point{
			c.X + rx*costheta*coseta - ry*sintheta*sineta,
			c.Y + rx*sintheta*coseta + ry*costheta*sineta,
		}
	}
	deriv := func(eta float64) Point {
		sineta, coseta := math.Sincos(eta)
		return Point{
			-rx*costheta*sineta - ry*sintheta*coseta,
			-rx*sintheta*sineta + ry*costheta*coseta,
		}
	}

	delta := sweepAngle / float64(n)
	tanHalf := math.Tan(delta / 2.0)
	alpha := math.Sin(delta) * (math.Sqrt(4.0+3.0*tanHalf*tanHalf) - 1.0) / 3.0

	beziers := make([][3]Point, 0, n)
	eta1 := eta0
	e1, ep1 := pos(eta1), deriv(eta1)
	for i := 0; i < n; i++ {
		eta2 := eta1 + delta
		e2, ep2 := pos(eta2), deriv(eta2)
		beziers = append(beziers, [3]Point{e1.Add(ep1.Mul(alpha)), e2.Sub(ep2.Mul(alpha)), e2})
		eta1, e1, ep1 = eta2, e2, ep2
	}
	return beziers
}
