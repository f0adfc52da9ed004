package shapeshifter

import "math"

// Bézier helpers operate on the control points of a quadratic (3 points) or cubic (4 points) Bézier.

func bezierPos(ps []Point, t float64) Point {
	if len(ps) == 3 {
		p0 := ps[0].Mul(1.0 - 2.0*t + t*t)
		p1 := ps[1].Mul(2.0 * t * (1.0 - t))
		p2 := ps[2].Mul(t * t)
		return p0.Add(p1).Add(p2)
	}
	p0 := ps[0].Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 := ps[1].Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 := ps[2].Mul(3.0*t*t - 3.0*t*t*t)
	p3 := ps[3].Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func bezierDeriv(ps []Point, t float64) Point {
	if len(ps) == 3 {
		p0 := ps[0].Mul(-2.0 + 2.0*t)
		p1 := ps[1].Mul(2.0 - 4.0*t)
		p2 := ps[2].Mul(2.0 * t)
		return p0.Add(p1).Add(p2)
	}
	p0 := ps[0].Mul(-3.0 + 6.0*t - 3.0*t*t)
	p1 := ps[1].Mul(3.0 - 12.0*t + 9.0*t*t)
	p2 := ps[2].Mul(6.0*t - 9.0*t*t)
	p3 := ps[3].Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func bezierSpeed(ps []Point) func(float64) float64 {
	return func(t float64) float64 {
		return bezierDeriv(ps, t).Length()
	}
}

// bezierLength returns the arc length between times t0 and t1
func bezierLength(ps []Point, t0, t1 float64) float64 {
	if t1 <= t0 {
		return 0.0
	}
	return integrate(bezierSpeed(ps), t0, t1, 8)
}

// splitBezier splits the curve at t using De Casteljau's algorithm and returns the control points of both halves
func splitBezier(ps []Point, t float64) ([]Point, []Point) {
	n := len(ps)
	left := make([]Point, n)
	right := make([]Point, n)
	cur := append([]Point{}, ps...)
	for k := 0; k < n; k++ {
		left[k] = cur[0]
		right[n-1-k] = cur[n-1-k]
		for i := 0; i < n-1-k; i++ {
			cur[i] = cur[i].Interpolate(cur[i+1], t)
		}
	}
	return left, right
}

// subBezier returns the control points of the curve between times t1 and t2
func subBezier(ps []Point, t1, t2 float64) []Point {
	if t2 < 1.0 {
		ps, _ = splitBezier(ps, t2)
	}
	if 0.0 < t1 {
		_, ps = splitBezier(ps, t1/t2)
	}
	return ps
}

// elevateQuad returns the cubic Bézier with the identical shape of a quadratic Bézier
func elevateQuad(p0, p1, p2 Point) []Point {
	cp1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	cp2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return []Point{p0, cp1, cp2, p2}
}

// bezierBounds returns the bounding box using the extrema of the curve along each axis
func bezierBounds(ps []Point) Rect {
	r := Rect{ps[0].X, ps[0].Y, ps[0].X, ps[0].Y}.AddPoint(ps[len(ps)-1])

	var ts []float64
	if len(ps) == 3 {
		// B'(t) = 2(1-t)(P1-P0) + 2t(P2-P1)
		for _, axis := range [][3]float64{{ps[0].X, ps[1].X, ps[2].X}, {ps[0].Y, ps[1].Y, ps[2].Y}} {
			denom := axis[0] - 2.0*axis[1] + axis[2]
			if denom != 0.0 {
				ts = append(ts, (axis[0]-axis[1])/denom)
			}
		}
	} else {
		// B'(t)/3 = a*t^2 + b*t + c
		for _, axis := range [][4]float64{{ps[0].X, ps[1].X, ps[2].X, ps[3].X}, {ps[0].Y, ps[1].Y, ps[2].Y, ps[3].Y}} {
			a := -axis[0] + 3.0*axis[1] - 3.0*axis[2] + axis[3]
			b := 2.0 * (axis[0] - 2.0*axis[1] + axis[2])
			c := axis[1] - axis[0]
			t1, t2 := solveQuadraticFormula(a, b, c)
			ts = append(ts, t1, t2)
		}
	}
	for _, t := range ts {
		if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
			r = r.AddPoint(bezierPos(ps, t))
		}
	}
	return r
}

// intersectionLineBezier returns the times on the curve where it crosses the line segment from l0 to l1
// see https://www.particleincell.com/2013/cubic-line-intersection/
func intersectionLineBezier(l0, l1 Point, ps []Point) []float64 {
	// write line as A.X = bias
	A := Point{l1.Y - l0.Y, l0.X - l1.X}
	bias := l0.Dot(A)

	var roots [3]float64
	if len(ps) == 3 {
		a := A.Dot(ps[0].Sub(ps[1].Mul(2.0)).Add(ps[2]))
		b := A.Dot(ps[1].Sub(ps[0]).Mul(2.0))
		c := A.Dot(ps[0]) - bias
		roots[0], roots[1] = solveQuadraticFormula(a, b, c)
		roots[2] = math.NaN()
	} else {
		a := A.Dot(ps[3].Sub(ps[0]).Add(ps[1].Mul(3.0)).Sub(ps[2].Mul(3.0)))
		b := A.Dot(ps[0].Mul(3.0).Sub(ps[1].Mul(6.0)).Add(ps[2].Mul(3.0)))
		c := A.Dot(ps[1].Mul(3.0).Sub(ps[0].Mul(3.0)))
		d := A.Dot(ps[0]) - bias
		roots[0], roots[1], roots[2] = solveCubicFormula(a, b, c, d)
	}

	ts := []float64{}
	horizontal := math.Abs(l1.Y-l0.Y) <= math.Abs(l1.X-l0.X)
	for _, root := range roots {
		if math.IsNaN(root) || !Interval(root, 0.0, 1.0) {
			continue
		}
		root = clamp(root, 0.0, 1.0)
		var s float64
		pos := bezierPos(ps, root)
		if horizontal {
			s = (pos.X - l0.X) / (l1.X - l0.X)
		} else {
			s = (pos.Y - l0.Y) / (l1.Y - l0.Y)
		}
		if Interval(s, 0.0, 1.0) {
			ts = append(ts, root)
		}
	}
	return ts
}

// intersectionLineLine returns the time on the first segment where it crosses the second, parallel lines never cross
func intersectionLineLine(a0, a1, b0, b1 Point) []float64 {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if Equal(div, 0.0) {
		return []float64{}
	}
	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if Interval(ta, 0.0, 1.0) && Interval(tb, 0.0, 1.0) {
		return []float64{clamp(ta, 0.0, 1.0)}
	}
	return []float64{}
}

// projectBezier returns the time of the point on the curve closest to p, using a lookup table followed by refinement
func projectBezier(ps []Point, p Point) (float64, float64) {
	const N = 100
	t, d := 0.0, math.Inf(1)
	for i := 0; i <= N; i++ {
		ti := float64(i) / N
		if di := bezierPos(ps, ti).Distance(p); di < d {
			t, d = ti, di
		}
	}
	for step := 1.0 / N; 1e-9 < step; step /= 2.0 {
		for _, ti := range []float64{t - step, t + step} {
			if ti < 0.0 || 1.0 < ti {
				continue
			}
			if di := bezierPos(ps, ti).Distance(p); di < d {
				t, d = ti, di
			}
		}
	}
	return t, d
}
