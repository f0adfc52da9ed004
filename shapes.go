package shapeshifter

import (
	"math"
)

// Rectangle returns a rectangle of width w and height h.
func Rectangle(w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}

	state := &pathState{}
	state.emit(MoveToCmd, Point{0.0, 0.0})
	state.emit(LineToCmd, Point{w, 0.0})
	state.emit(LineToCmd, Point{w, h})
	state.emit(LineToCmd, Point{0.0, h})
	state.emit(CloseCmd, Point{0.0, 0.0})
	return NewPath(state.cmds)
}

// RoundedRectangle returns a rectangle of width w and height h with rounded corners of radius r. A negative radius will cast the corners inwards (i.e. concave).
func RoundedRectangle(w, h, r float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	} else if Equal(r, 0.0) {
		return Rectangle(w, h)
	}

	sweep := true
	if r < 0.0 {
		sweep = false
		r = -r
	}
	r = math.Min(r, w/2.0)
	r = math.Min(r, h/2.0)

	state := &pathState{}
	state.emit(MoveToCmd, Point{0.0, r})
	state.arcTo(r, r, 0.0, false, sweep, Point{r, 0.0})
	state.emit(LineToCmd, Point{w - r, 0.0})
	state.arcTo(r, r, 0.0, false, sweep, Point{w, r})
	state.emit(LineToCmd, Point{w, h - r})
	state.arcTo(r, r, 0.0, false, sweep, Point{w - r, h})
	state.emit(LineToCmd, Point{r, h})
	state.arcTo(r, r, 0.0, false, sweep, Point{0.0, h - r})
	state.emit(CloseCmd, Point{0.0, r})
	return NewPath(state.cmds)
}

// Circle returns a circle of radius r.
func Circle(r float64) *Path {
	return Ellipse(r, r)
}

// Ellipse returns an ellipse of radii rx and ry, centered at the origin and made of cubic Béziers.
func Ellipse(rx, ry float64) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return &Path{}
	}

	state := &pathState{}
	state.emit(MoveToCmd, Point{rx, 0.0})
	state.arcTo(rx, ry, 0.0, false, true, Point{-rx, 0.0})
	state.arcTo(rx, ry, 0.0, false, true, Point{rx, 0.0})
	state.emit(CloseCmd, Point{rx, 0.0})
	return NewPath(state.cmds)
}

// RegularPolygon returns a regular polygon with radius r. It uses n vertices/edges, so when n approaches infinity this will return a path that approximates a circle. n must be 3 or more. The up boolean defines whether the first point will point north or not.
func RegularPolygon(n int, r float64, up bool) *Path {
	if n < 3 || Equal(r, 0.0) {
		return &Path{}
	}

	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := -0.5 * math.Pi // y-axis points down
	if !up {
		theta0 += dtheta / 2.0
	}

	state := &pathState{}
	for i := 0; i < n; i++ {
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		if i == 0 {
			state.emit(MoveToCmd, Point{r * costheta, r * sintheta})
		} else {
			state.emit(LineToCmd, Point{r * costheta, r * sintheta})
		}
	}
	state.emit(CloseCmd, state.start)
	return NewPath(state.cmds)
}

// StarPolygon returns a star polygon of n points with alternating radius R and r. The up boolean defines whether the first point (true) or second point (false) will be pointing north.
func StarPolygon(n int, R, r float64, up bool) *Path {
	if n < 3 || Equal(R, 0.0) || Equal(r, 0.0) {
		return &Path{}
	}

	n *= 2
	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := -0.5 * math.Pi
	if !up {
		theta0 += dtheta
	}

	state := &pathState{}
	for i := 0; i < n; i++ {
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		if i == 0 {
			state.emit(MoveToCmd, Point{R * costheta, R * sintheta})
		} else if i%2 == 0 {
			state.emit(LineToCmd, Point{R * costheta, R * sintheta})
		} else {
			state.emit(LineToCmd, Point{r * costheta, r * sintheta})
		}
	}
	state.emit(CloseCmd, state.start)
	return NewPath(state.cmds)
}
