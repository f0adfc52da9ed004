package shapeshifter

import (
	"fmt"
	"math"
)

// Epsilon is the smallest number below which we assume the value to be zero. This is to avoid numerical floating point issues.
var Epsilon = 1e-10

// Precision is the number of decimals used when writing path data.
var Precision = 3

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Interval returns true if f is in closed range [lower-Epsilon,upper+Epsilon].
func Interval(f, lower, upper float64) bool {
	return lower-Epsilon <= f && f <= upper+Epsilon
}

func clamp(f, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, f))
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

func nanPoint() Point {
	return Point{math.NaN(), math.NaN()}
}

// IsNaN returns true if either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Equals returns true if P and Q are equal with tolerance Epsilon. Two NaN points are equal.
func (p Point) Equals(q Point) bool {
	if p.IsNaN() || q.IsNaN() {
		return p.IsNaN() && q.IsNaN()
	}
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between P and Q.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// uniquePoints returns the number of distinct points with tolerance Epsilon.
func uniquePoints(ps []Point) int {
	n := 0
	for i, p := range ps {
		unique := true
		for _, q := range ps[:i] {
			if p.Equals(q) {
				unique = false
				break
			}
		}
		if unique {
			n++
		}
	}
	return n
}

////////////////////////////////////////////////////////////////

// Line is a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

////////////////////////////////////////////////////////////////

// Rect is a bounding box given by its minimum and maximum coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func nanRect() Rect {
	return Rect{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
}

// IsNaN returns true for the bounding box of a Move.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// AddPoint extends the rectangle to contain p.
func (r Rect) AddPoint(p Point) Rect {
	if r.IsNaN() {
		return Rect{p.X, p.Y, p.X, p.Y}
	}
	return Rect{math.Min(r.X0, p.X), math.Min(r.Y0, p.Y), math.Max(r.X1, p.X), math.Max(r.Y1, p.Y)}
}

// Add returns the union of both rectangles. NaN rectangles are ignored.
func (r Rect) Add(q Rect) Rect {
	if q.IsNaN() {
		return r
	} else if r.IsNaN() {
		return q
	}
	return Rect{math.Min(r.X0, q.X0), math.Min(r.Y0, q.Y0), math.Max(r.X1, q.X1), math.Max(r.Y1, q.Y1)}
}

// Equals returns true if both rectangles are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	if r.IsNaN() || q.IsNaN() {
		return r.IsNaN() && q.IsNaN()
	}
	return Equal(r.X0, q.X0) && Equal(r.Y0, q.Y0) && Equal(r.X1, q.X1) && Equal(r.Y1, q.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations. Be aware that concatenating transformation function will be evaluated right-to-left! So in Identity.Rotate(30).Translate(20,0) will first translate 20 points horizontally and then rotate 30 degrees counter clockwise.
type Matrix [2][3]float64

// Identity is the identity affine transformation matrix.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul multiplies the current matrix by the given matrix, ie. combined transformations.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot returns the dot product between the matrix and the given vector, ie. applying the transformation.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Translate adds a translation in x and y.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate adds a rotation transformation with rot in degree counter clockwise.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// Scale adds a scaling transformation in sx and sy.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{sx, 0.0, 0.0},
		{0.0, sy, 0.0},
	})
}

// Det returns the matrix determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Invertible returns true if the matrix has an inverse.
func (m Matrix) Invertible() bool {
	return !Equal(m.Det(), 0.0)
}

// Inv returns the matrix inverse. It panics for singular matrices, check Invertible first.
func (m Matrix) Inv() Matrix {
	det := m.Det()
	if Equal(det, 0.0) {
		panic("determinant of affine transformation matrix is zero")
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}
}

// Equals returns true if both matrices are equal with a tolerance of Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	return Equal(m[0][0], q[0][0]) && Equal(m[0][1], q[0][1]) && Equal(m[0][2], q[0][2]) &&
		Equal(m[1][0], q[1][0]) && Equal(m[1][1], q[1][1]) && Equal(m[1][2], q[1][2])
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g; 0, 0, 1]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}

////////////////////////////////////////////////////////////////

// Numerically stable quadratic formula, lowest root is returned first
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		if b == 0.0 {
			return 0.0, math.NaN()
		}
		x1, x2 := 0.0, -b/a
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return x1, x2
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error
	// this can be the case when 4*a*c is small so that sqrt(discriminant) -> b, and the sign of b and in front of the radical are the same
	// instead we calculate x where b and the radical have different signs, and then use this result in the analytical equivalent
	// of the formula, called the Citardauq Formula.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		// apply sign of b
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// solveCubicFormula returns the real roots of a*x^3 + b*x^2 + c*x + d in ascending order, missing roots are NaN
// see https://en.wikipedia.org/wiki/Cubic_equation#Trigonometric_and_hyperbolic_solutions
func solveCubicFormula(a, b, c, d float64) (float64, float64, float64) {
	if Equal(a, 0.0) {
		x1, x2 := solveQuadraticFormula(b, c, d)
		return x1, x2, math.NaN()
	}

	// depressed cubic t^3 + p*t + q with x = t - b/(3a)
	b, c, d = b/a, c/a, d/a
	p := c - b*b/3.0
	q := 2.0*b*b*b/27.0 - b*c/3.0 + d
	shift := -b / 3.0

	if Equal(p, 0.0) {
		return math.Cbrt(-q) + shift, math.NaN(), math.NaN()
	}

	discriminant := q*q/4.0 + p*p*p/27.0
	if Equal(discriminant, 0.0) {
		// double root
		x1 := 3.0*q/p + shift
		x2 := -3.0*q/(2.0*p) + shift
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return x1, x2, math.NaN()
	} else if 0.0 < discriminant {
		// one real root
		sq := math.Sqrt(discriminant)
		return math.Cbrt(-q/2.0+sq) + math.Cbrt(-q/2.0-sq) + shift, math.NaN(), math.NaN()
	}

	// three real roots
	r := 2.0 * math.Sqrt(-p/3.0)
	phi := math.Acos(clamp(3.0*q/(p*r), -1.0, 1.0)) / 3.0
	x1 := r*math.Cos(phi) + shift
	x2 := r*math.Cos(phi-2.0*math.Pi/3.0) + shift
	x3 := r*math.Cos(phi-4.0*math.Pi/3.0) + shift
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if x3 < x2 {
		x2, x3 = x3, x2
		if x2 < x1 {
			x1, x2 = x2, x1
		}
	}
	return x1, x2, x3
}

// Gauss-Legendre quadrature integration from a to b with n=7
// see https://pomax.github.io/bezierinfo/legendre-gauss.html for more values
func gaussLegendre7(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2.0
	d := (a + b) / 2.0
	Qd1 := f(-0.949107912342759*c + d)
	Qd2 := f(-0.741531185599394*c + d)
	Qd3 := f(-0.405845151377397*c + d)
	Qd4 := f(d)
	Qd5 := f(0.405845151377397*c + d)
	Qd6 := f(0.741531185599394*c + d)
	Qd7 := f(0.949107912342759*c + d)
	return c * (0.129484966168870*(Qd1+Qd7) + 0.279705391489277*(Qd2+Qd6) + 0.381830050505119*(Qd3+Qd5) + 0.417959183673469*Qd4)
}

// integrate splits [a,b] into n intervals and sums their Gauss-Legendre quadratures
func integrate(f func(float64) float64, a, b float64, n int) float64 {
	sum := 0.0
	dx := (b - a) / float64(n)
	for i := 0; i < n; i++ {
		sum += gaussLegendre7(f, a+float64(i)*dx, a+float64(i+1)*dx)
	}
	return sum
}
