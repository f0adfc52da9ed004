package shapeshifter

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

type shape int

const (
	moveShape   shape = iota // a Move, has no geometry
	pointShape               // all control points coincide
	lineShape                // straight segment
	bezierShape              // quadratic or cubic Bézier
)

func (s shape) String() string {
	switch s {
	case moveShape:
		return "move"
	case pointShape:
		return "point"
	case lineShape:
		return "line"
	case bezierShape:
		return "bezier"
	}
	return "invalid"
}

// Projection is the point on a curve closest to some point, with T the curve parameter and D the distance.
type Projection struct {
	X, Y, T, D float64
}

// Calculator answers geometric queries for one command. It keeps the kind of the command it was created for
// separately from its effective shape, so that a Cubic that was split into a straight piece remains a Cubic.
// Calculators are immutable.
type Calculator struct {
	id     string
	cmd    PathCmd
	shape  shape
	points []Point // move: start, end; point: p; line: p0, p1; bezier: control points
	length float64
}

// NewCalculator returns a calculator for the given command.
func NewCalculator(c Command) *Calculator {
	if c.cmd == MoveToCmd {
		return &Calculator{id: c.id, cmd: c.cmd, shape: moveShape, points: c.Points()}
	}
	if uniquePoints(c.points) == 1 {
		return newPointCalculator(c.id, c.cmd, c.points[0])
	}
	switch c.cmd {
	case LineToCmd, CloseCmd:
		return newLineCalculator(c.id, c.cmd, c.points[0], c.points[1])
	case QuadToCmd, CubeToCmd:
		return newBezierCalculator(c.id, c.cmd, c.Points())
	}
	panic(fmt.Sprintf("invalid path command %d", int(c.cmd)))
}

func newPointCalculator(id string, cmd PathCmd, p Point) *Calculator {
	return &Calculator{id: id, cmd: cmd, shape: pointShape, points: []Point{p}}
}

func newLineCalculator(id string, cmd PathCmd, p0, p1 Point) *Calculator {
	return &Calculator{id: id, cmd: cmd, shape: lineShape, points: []Point{p0, p1}, length: p0.Distance(p1)}
}

func newBezierCalculator(id string, cmd PathCmd, ps []Point) *Calculator {
	return &Calculator{id: id, cmd: cmd, shape: bezierShape, points: ps, length: bezierLength(ps, 0.0, 1.0)}
}

// Cmd returns the kind of command the calculator produces.
func (c *Calculator) Cmd() PathCmd {
	return c.cmd
}

// ID returns the id of the originating command.
func (c *Calculator) ID() string {
	return c.id
}

// Length returns the arc length, which is zero for moves and points.
func (c *Calculator) Length() float64 {
	return c.length
}

// PointAtDistance returns the point at arc length d along the curve.
func (c *Calculator) PointAtDistance(d float64) Point {
	switch c.shape {
	case moveShape:
		return c.points[1]
	case pointShape:
		return c.points[0]
	case lineShape:
		return c.points[0].Interpolate(c.points[1], clamp(d/c.length, 0.0, 1.0))
	case bezierShape:
		return bezierPos(c.points, c.FindTimeByDistance(d/c.length))
	}
	panic("invalid calculator")
}

// Project returns the point on the curve closest to p. Moves have no projection.
func (c *Calculator) Project(p Point) (Projection, bool) {
	switch c.shape {
	case moveShape:
		return Projection{}, false
	case pointShape:
		q := c.points[0]
		return Projection{q.X, q.Y, 0.5, q.Distance(p)}, true
	case lineShape:
		p0, p1 := c.points[0], c.points[1]
		d := p1.Sub(p0)
		t := clamp(p.Sub(p0).Dot(d)/d.Dot(d), 0.0, 1.0)
		q := p0.Interpolate(p1, t)
		return Projection{q.X, q.Y, t, q.Distance(p)}, true
	case bezierShape:
		t, dist := projectBezier(c.points, p)
		q := bezierPos(c.points, t)
		return Projection{q.X, q.Y, t, dist}, true
	}
	panic("invalid calculator")
}

// Split returns the calculator for the piece of curve between the parameters t1 and t2.
// It degenerates to a point when both parameters or the resulting end points coincide, and a split Bézier
// with only two distinct control points degenerates to a line.
func (c *Calculator) Split(t1, t2 float64) *Calculator {
	t1, t2 = clamp(t1, 0.0, 1.0), clamp(t2, 0.0, 1.0)
	if t2 < t1 {
		t1, t2 = t2, t1
	}
	switch c.shape {
	case moveShape, pointShape:
		return c
	case lineShape:
		p0, p1 := c.points[0], c.points[1]
		q0, q1 := p0.Interpolate(p1, t1), p0.Interpolate(p1, t2)
		if t1 == t2 || q0.Equals(q1) {
			return newPointCalculator(c.id, c.cmd, q0)
		}
		return newLineCalculator(c.id, c.cmd, q0, q1)
	case bezierShape:
		if t1 == t2 {
			return newPointCalculator(c.id, c.cmd, bezierPos(c.points, t1))
		}
		ps := subBezier(c.points, t1, t2)
		switch uniquePoints(ps) {
		case 1:
			return newPointCalculator(c.id, c.cmd, ps[0])
		case 2:
			if ps[0].Equals(ps[len(ps)-1]) {
				// out and back along a line
				return newPointCalculator(c.id, c.cmd, ps[0])
			}
			return newLineCalculator(c.id, c.cmd, ps[0], ps[len(ps)-1])
		}
		return newBezierCalculator(c.id, c.cmd, ps)
	}
	panic("invalid calculator")
}

// Convert returns a calculator that produces the target kind. Quadratic to Cubic is a lossless degree
// elevation, lines become Béziers with their control points on the line. Callers must check Command.CanConvertTo
// for conversions that would change the shape, converting a Move or converting to a Move panics.
func (c *Calculator) Convert(target PathCmd) *Calculator {
	target.NumPoints() // panics on invalid kind
	if target == c.cmd {
		return c
	} else if c.cmd == MoveToCmd || target == MoveToCmd {
		panic(fmt.Sprintf("cannot convert %v command to %v", c.cmd, target))
	}

	switch c.shape {
	case pointShape:
		return newPointCalculator(c.id, target, c.points[0])
	case lineShape:
		p0, p1 := c.points[0], c.points[1]
		switch target {
		case QuadToCmd:
			return newBezierCalculator(c.id, target, []Point{p0, p0.Interpolate(p1, 0.5), p1})
		case CubeToCmd:
			return newBezierCalculator(c.id, target, []Point{p0, p0.Interpolate(p1, 1.0/3.0), p0.Interpolate(p1, 2.0/3.0), p1})
		}
		return newLineCalculator(c.id, target, p0, p1)
	case bezierShape:
		ps := c.points
		switch target {
		case LineToCmd, CloseCmd:
			return newLineCalculator(c.id, target, ps[0], ps[len(ps)-1])
		case CubeToCmd:
			if len(ps) == 3 {
				return newBezierCalculator(c.id, target, elevateQuad(ps[0], ps[1], ps[2]))
			}
			return newBezierCalculator(c.id, target, ps)
		case QuadToCmd:
			if len(ps) == 3 {
				return newBezierCalculator(c.id, target, ps)
			}
		}
	}
	panic(fmt.Sprintf("cannot convert %v command to %v", c.cmd, target))
}

// FindTimeByDistance returns the curve parameter at which the arc length equals the fraction d of the total length.
// For Béziers it bisects on the curve parameter until the ratio of the lengths to the left and right of it matches.
// When no such parameter is found within the iteration budget the curve is numerically degenerate, and d is returned unrefined.
func (c *Calculator) FindTimeByDistance(d float64) float64 {
	if c.shape != bezierShape || d <= 0.0 || 1.0 <= d {
		return clamp(d, 0.0, 1.0)
	}

	const MaxDepth = 100
	const Tolerance = 1e-3
	ratio := d / (1.0 - d) // left/right length ratio we look for
	tmin, tmax := 0.0, 1.0
	for depth := 0; depth < MaxDepth; depth++ {
		t := (tmin + tmax) / 2.0
		left := bezierLength(c.points, 0.0, t)
		right := c.length - left
		diff := math.Inf(1)
		if 0.0 < right {
			diff = left/right - ratio
		}
		if math.Abs(diff) < Tolerance {
			return t
		} else if 0.0 < diff {
			tmax = t
		} else {
			tmin = t
		}
	}
	zap.L().Warn("could not find time by distance",
		zap.Stringer("cmd", c.cmd),
		zap.String("points", fmt.Sprint(c.points)),
		zap.Float64("distance", d))
	return d
}

// Command returns the command described by the calculator, keeping the id of the originating command.
func (c *Calculator) Command() Command {
	var points []Point
	switch c.shape {
	case moveShape:
		points = append([]Point{}, c.points...)
	case pointShape:
		points = make([]Point, c.cmd.NumPoints())
		for i := range points {
			points[i] = c.points[0]
		}
	case lineShape:
		p0, p1 := c.points[0], c.points[1]
		switch c.cmd {
		case LineToCmd, CloseCmd:
			points = []Point{p0, p1}
		case QuadToCmd:
			points = []Point{p0, p0.Interpolate(p1, 0.5), p1}
		case CubeToCmd:
			points = []Point{p0, p0.Interpolate(p1, 1.0/3.0), p0.Interpolate(p1, 2.0/3.0), p1}
		}
	case bezierShape:
		points = append([]Point{}, c.points...)
	}
	return newCommand(c.cmd, points, c.id, false, false)
}

// Bounds returns the bounding box of the curve. It is NaN for moves.
func (c *Calculator) Bounds() Rect {
	switch c.shape {
	case moveShape:
		return nanRect()
	case pointShape:
		p := c.points[0]
		return Rect{p.X, p.Y, p.X, p.Y}
	case lineShape:
		p0, p1 := c.points[0], c.points[1]
		return Rect{p0.X, p0.Y, p0.X, p0.Y}.AddPoint(p1)
	case bezierShape:
		return bezierBounds(c.points)
	}
	panic("invalid calculator")
}

// Intersects returns the parameters on the curve where it crosses the line segment. Moves, points,
// curves that start and end at the same point, and zero-length lines never intersect.
func (c *Calculator) Intersects(l Line) []float64 {
	if l.P0.Equals(l.P1) {
		return []float64{}
	}
	switch c.shape {
	case moveShape, pointShape:
		return []float64{}
	case lineShape:
		return intersectionLineLine(c.points[0], c.points[1], l.P0, l.P1)
	case bezierShape:
		if c.points[0].Equals(c.points[len(c.points)-1]) {
			return []float64{}
		}
		return intersectionLineBezier(l.P0, l.P1, c.points)
	}
	panic("invalid calculator")
}

func (c *Calculator) String() string {
	return fmt.Sprintf("%v(%v) %v", c.cmd, c.shape, c.points)
}
