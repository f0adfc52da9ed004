package shapeshifter

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCalculatorShape(t *testing.T) {
	var tts = []struct {
		c     Command
		shape shape
	}{
		{NewCommand(MoveToCmd, nanPoint(), Point{1, 1}), moveShape},
		{NewCommand(LineToCmd, Point{1, 1}, Point{1, 1}), pointShape},
		{NewCommand(CubeToCmd, Point{1, 1}, Point{1, 1}, Point{1, 1}, Point{1, 1}), pointShape},
		{NewCommand(LineToCmd, Point{0, 0}, Point{1, 1}), lineShape},
		{NewCommand(CloseCmd, Point{0, 0}, Point{1, 1}), lineShape},
		{NewCommand(QuadToCmd, Point{0, 0}, Point{1, 1}, Point{2, 0}), bezierShape},
		{NewCommand(CubeToCmd, Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0}), bezierShape},
	}
	for _, tt := range tts {
		t.Run(tt.c.String(), func(t *testing.T) {
			test.T(t, NewCalculator(tt.c).shape, tt.shape)
		})
	}
}

func TestCalculatorLength(t *testing.T) {
	var tts = []struct {
		c      Command
		length float64
	}{
		{NewCommand(MoveToCmd, Point{0, 0}, Point{10, 0}), 0.0},
		{NewCommand(LineToCmd, Point{3, 3}, Point{3, 3}), 0.0},
		{NewCommand(LineToCmd, Point{0, 0}, Point{3, 4}), 5.0},
		{NewCommand(QuadToCmd, Point{0, 0}, Point{5, 0}, Point{10, 0}), 10.0},
		{NewCommand(CubeToCmd, Point{0, 0}, Point{2, 0}, Point{5, 0}, Point{10, 0}), 10.0},
		{NewCommand(QuadToCmd, Point{0, 0}, Point{1, 1}, Point{2, 0}), 2.2955871493926},
	}
	for _, tt := range tts {
		t.Run(tt.c.String(), func(t *testing.T) {
			test.Float(t, NewCalculator(tt.c).Length(), tt.length)
		})
	}

	// quarter circle of radius 10 has length 5*pi within the error of the cubic approximation
	k := 10.0 * 4.0 / 3.0 * (math.Sqrt2 - 1.0)
	arc := NewCommand(CubeToCmd, Point{10, 0}, Point{10, k}, Point{k, 10}, Point{0, 10})
	test.That(t, math.Abs(NewCalculator(arc).Length()-5.0*math.Pi) < 1e-2)
}

func TestCalculatorPointAtDistance(t *testing.T) {
	defer setEpsilon(1e-3)()
	line := NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{10, 0}))
	test.T(t, line.PointAtDistance(2.5), Point{2.5, 0})
	test.T(t, line.PointAtDistance(20.0), Point{10, 0})

	// control points evenly spaced on a line parametrize by arc length
	cube := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{10.0 / 3.0, 0}, Point{20.0 / 3.0, 0}, Point{10, 0}))
	test.T(t, cube.PointAtDistance(2.5), Point{2.5, 0})
	test.T(t, cube.PointAtDistance(5.0), Point{5, 0})

	skewed := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{10, 0}))
	test.T(t, skewed.PointAtDistance(5.0), Point{5, 0})

	move := NewCalculator(NewCommand(MoveToCmd, nanPoint(), Point{4, 4}))
	test.T(t, move.PointAtDistance(1.0), Point{4, 4})
}

func TestCalculatorFindTimeByDistance(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	c := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0}))
	test.Float(t, c.FindTimeByDistance(0.0), 0.0)
	test.Float(t, c.FindTimeByDistance(1.0), 1.0)
	test.Float(t, c.FindTimeByDistance(0.5), 0.5) // symmetric curve
	for _, d := range []float64{0.1, 0.25, 0.8} {
		time := c.FindTimeByDistance(d)
		test.That(t, math.Abs(bezierLength(c.points, 0.0, time)/c.Length()-d) < 1e-3, d)
	}
	test.Float(t, NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{10, 0})).FindTimeByDistance(0.3), 0.3)
	test.T(t, logs.Len(), 0)

	// the result does not depend on the size of the curve
	small := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{0.01, 0}))
	large := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 0}, Point{0, 0}, Point{10, 0}))
	for _, calc := range []*Calculator{small, large} {
		time := calc.FindTimeByDistance(0.1)
		test.That(t, math.Abs(bezierLength(calc.points, 0.0, time)/calc.Length()-0.1) < 1e-3, calc)
	}
	test.Float(t, small.FindTimeByDistance(0.1), large.FindTimeByDistance(0.1))
	test.T(t, logs.Len(), 0)

	// degenerate curves return the distance unrefined and log a warning
	nan := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{math.NaN(), 0}, Point{0, 0}, Point{10, 0}))
	test.Float(t, nan.FindTimeByDistance(0.3), 0.3)
	test.T(t, logs.Len(), 1)
	test.String(t, logs.All()[0].Message, "could not find time by distance")
}

func TestCalculatorProject(t *testing.T) {
	defer setEpsilon(1e-6)()
	_, ok := NewCalculator(NewCommand(MoveToCmd, nanPoint(), Point{0, 0})).Project(Point{1, 1})
	test.That(t, !ok)

	proj, ok := NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{10, 0})).Project(Point{4, 3})
	test.That(t, ok)
	test.T(t, Point{proj.X, proj.Y}, Point{4, 0})
	test.Float(t, proj.T, 0.4)
	test.Float(t, proj.D, 3.0)

	proj, _ = NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{10, 0})).Project(Point{-5, 0})
	test.Float(t, proj.T, 0.0)
	test.Float(t, proj.D, 5.0)

	proj, _ = NewCalculator(NewCommand(LineToCmd, Point{2, 2}, Point{2, 2})).Project(Point{2, 5})
	test.Float(t, proj.D, 3.0)

	proj, _ = NewCalculator(NewCommand(QuadToCmd, Point{0, 0}, Point{5, 10}, Point{10, 0})).Project(Point{5, 10})
	test.Float(t, proj.T, 0.5)
	test.T(t, Point{proj.X, proj.Y}, Point{5, 5})
	test.Float(t, proj.D, 5.0)
}

func calcPos(c *Calculator, t float64) Point {
	if c.shape == lineShape {
		return c.points[0].Interpolate(c.points[1], t)
	}
	return bezierPos(c.points, t)
}

func TestCalculatorSplit(t *testing.T) {
	defer setEpsilon(1e-6)()
	var tts = []struct {
		c Command
	}{
		{NewCommand(LineToCmd, Point{0, 0}, Point{10, 5})},
		{NewCommand(CloseCmd, Point{0, 0}, Point{10, 5})},
		{NewCommand(QuadToCmd, Point{0, 0}, Point{5, 10}, Point{10, 0})},
		{NewCommand(CubeToCmd, Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0})},
	}
	for _, tt := range tts {
		t.Run(tt.c.String(), func(t *testing.T) {
			calc := NewCalculator(tt.c)
			whole := calc.Split(0.0, 1.0).Command()
			test.T(t, whole.Start(), tt.c.Start())
			test.T(t, whole.End(), tt.c.End())
			test.T(t, whole.Cmd(), tt.c.Cmd())
			test.T(t, whole.ID(), tt.c.ID())

			for _, ts := range [][2]float64{{0.0, 0.5}, {0.25, 0.75}, {0.5, 1.0}, {0.1, 0.2}} {
				piece := calc.Split(ts[0], ts[1])
				test.That(t, piece.Length() <= calc.Length()+Epsilon, ts)
				test.T(t, piece.Command().Start(), calcPos(calc, ts[0]))
				test.T(t, piece.Command().End(), calcPos(calc, ts[1]))
			}

			left, right := calc.Split(0.0, 0.3), calc.Split(0.3, 1.0)
			test.Float(t, left.Length()+right.Length(), calc.Length())
			test.T(t, calc.Split(0.6, 0.4).Command().End(), calcPos(calc, 0.6))

			point := calc.Split(0.5, 0.5)
			test.T(t, point.shape, pointShape)
			test.T(t, point.Cmd(), tt.c.Cmd())
			test.Float(t, point.Length(), 0.0)
		})
	}

	// a cubic with its control points on the line degenerates to a line when split
	flat := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 0}, Point{10, 0}, Point{10, 0}))
	test.T(t, flat.shape, bezierShape)
	piece := flat.Split(0.0, 1.0)
	test.T(t, piece.shape, lineShape)
	test.T(t, piece.Cmd(), CubeToCmd)
	test.T(t, len(piece.Command().Points()), 4)

	// splitting a zero-length curve always yields the point
	zero := NewCalculator(NewCommand(QuadToCmd, Point{3, 3}, Point{3, 3}, Point{3, 3}))
	test.T(t, zero.Split(0.2, 0.8).shape, pointShape)

	// a curve that goes out and back along a line ends where it starts
	back := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{10, 0}, Point{10, 0}, Point{0, 0}))
	piece = back.Split(0.0, 1.0)
	test.T(t, piece.shape, pointShape)
	test.T(t, piece.Cmd(), CubeToCmd)
	proj, ok := piece.Project(Point{3, 4})
	test.That(t, ok)
	test.T(t, Point{proj.X, proj.Y}, Point{0, 0})
	test.Float(t, proj.D, 5.0)
}

func TestCalculatorConvert(t *testing.T) {
	defer setEpsilon(1e-6)()
	quad := NewCommand(QuadToCmd, Point{0, 0}, Point{3, 6}, Point{9, 0})
	cube := NewCalculator(quad).Convert(CubeToCmd)
	test.T(t, cube.Cmd(), CubeToCmd)
	testPoints(t, cube.Command().Points(), []Point{{0, 0}, {2, 4}, {5, 4}, {9, 0}})
	test.Float(t, cube.Length(), NewCalculator(quad).Length())
	test.T(t, cube.Command().ID(), quad.ID())

	line := NewCommand(LineToCmd, Point{0, 0}, Point{9, 0})
	testPoints(t, NewCalculator(line).Convert(QuadToCmd).Command().Points(), []Point{{0, 0}, {4.5, 0}, {9, 0}})
	testPoints(t, NewCalculator(line).Convert(CubeToCmd).Command().Points(), []Point{{0, 0}, {3, 0}, {6, 0}, {9, 0}})
	calc := NewCalculator(line)
	test.That(t, calc.Convert(LineToCmd) == calc)

	z := NewCommand(CloseCmd, Point{0, 0}, Point{9, 0})
	test.T(t, NewCalculator(z).Convert(LineToCmd).Command().Cmd(), LineToCmd)

	flat := NewCommand(CubeToCmd, Point{0, 0}, Point{0, 0}, Point{9, 0}, Point{9, 0})
	testPoints(t, NewCalculator(flat).Convert(LineToCmd).Command().Points(), []Point{{0, 0}, {9, 0}})

	point := NewCommand(LineToCmd, Point{1, 1}, Point{1, 1})
	testPoints(t, NewCalculator(point).Convert(CubeToCmd).Command().Points(), []Point{{1, 1}, {1, 1}, {1, 1}, {1, 1}})

	defer func() {
		test.That(t, recover() != nil, "converting to a Move must panic")
	}()
	NewCalculator(line).Convert(MoveToCmd)
}

func TestCalculatorBounds(t *testing.T) {
	defer setEpsilon(1e-6)()
	test.That(t, NewCalculator(NewCommand(MoveToCmd, nanPoint(), Point{0, 0})).Bounds().IsNaN())
	test.T(t, NewCalculator(NewCommand(LineToCmd, Point{5, 0}, Point{0, 10})).Bounds(), Rect{0, 0, 5, 10})
	test.T(t, NewCalculator(NewCommand(QuadToCmd, Point{0, 0}, Point{5, 10}, Point{10, 0})).Bounds(), Rect{0, 0, 10, 5})
	test.T(t, NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0})).Bounds(), Rect{0, 0, 10, 7.5})
	test.T(t, NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{-5, 0}, Point{15, 0}, Point{10, 0})).Bounds().W() > 10.0, true)
}

func TestCalculatorIntersects(t *testing.T) {
	defer setEpsilon(1e-6)()
	vertical := Line{Point{5, -10}, Point{5, 10}}

	ts := NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{10, 0})).Intersects(vertical)
	test.T(t, len(ts), 1)
	test.Float(t, ts[0], 0.5)

	test.T(t, len(NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{4, 0})).Intersects(vertical)), 0)
	test.T(t, len(NewCalculator(NewCommand(LineToCmd, Point{5, 0}, Point{5, 5})).Intersects(vertical)), 0)

	ts = NewCalculator(NewCommand(QuadToCmd, Point{0, 0}, Point{5, 10}, Point{10, 0})).Intersects(vertical)
	test.T(t, len(ts), 1)
	test.Float(t, ts[0], 0.5)

	ts = NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{10, 0})).Intersects(Line{Point{-5, 5}, Point{15, 5}})
	test.T(t, len(ts), 2)
	test.That(t, ts[0] < 0.5 && 0.5 < ts[1])

	loop := NewCalculator(NewCommand(CubeToCmd, Point{0, 0}, Point{0, 10}, Point{10, 10}, Point{0, 0}))
	test.T(t, len(loop.Intersects(Line{Point{-5, 5}, Point{15, 5}})), 0)
	test.T(t, len(NewCalculator(NewCommand(MoveToCmd, nanPoint(), Point{5, 0})).Intersects(vertical)), 0)
	test.T(t, len(NewCalculator(NewCommand(LineToCmd, Point{0, 0}, Point{10, 0})).Intersects(Line{Point{5, 5}, Point{5, 5}})), 0)
}
