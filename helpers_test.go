package shapeshifter

import (
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func setEpsilon(eps float64) func() {
	origEpsilon := Epsilon
	Epsilon = eps
	return func() { Epsilon = origEpsilon }
}

func RandomPath(n int, closed bool) *Path {
	state := &pathState{}
	if 0 < n {
		pt := func() Point { return Point{rand.NormFloat64(), rand.NormFloat64()} }
		state.emit(MoveToCmd, pt())
		for i := 1; i < n; i++ {
			switch rand.Intn(4) {
			case 0:
				state.emit(LineToCmd, pt())
			case 1:
				state.emit(QuadToCmd, pt(), pt())
			case 2:
				state.emit(CubeToCmd, pt(), pt(), pt())
			case 3:
				large, sweep := rand.Intn(2) == 0, rand.Intn(2) == 0
				state.arcTo(rand.NormFloat64(), rand.NormFloat64(), 360.0*rand.Float64(), large, sweep, pt())
			}
		}
		if closed {
			state.emit(CloseCmd, state.start)
		}
	}
	return NewPath(state.cmds)
}

func testPoints(t *testing.T, ps, qs []Point) {
	t.Helper()
	equal := len(ps) == len(qs)
	for i := 0; equal && i < len(ps); i++ {
		equal = ps[i].Equals(qs[i])
	}
	test.That(t, equal, ps, "!=", qs)
}
