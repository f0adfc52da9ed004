package shapeshifter

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestMismatches(t *testing.T) {
	a := MustParsePath("M0 0L10 0Q15 5 20 0")
	test.T(t, a.Mismatches(MustParsePath("M5 5L10 10Q20 20 30 30")), []Mismatch{})
	test.T(t, a.Mismatches(MustParsePath("M0 0L10 0L20 0")), []Mismatch{{0, 2, QuadToCmd, LineToCmd}})
	test.T(t, a.Mismatches(MustParsePath("M0 0L10 0")), []Mismatch{{0, 2, QuadToCmd, noCmd}})
	test.T(t, a.Mismatches(MustParsePath("M0 0L10 0Q15 5 20 0M5 5")), []Mismatch{{1, 0, noCmd, MoveToCmd}})
	test.That(t, a.IsMorphableWith(a.Transform(Identity.Scale(2.0, 1.0))))
	test.That(t, !a.IsMorphableWith(NewPath(nil)))
	test.That(t, NewPath(nil).IsMorphableWith(NewPath(nil)))
}

func TestInterpolate(t *testing.T) {
	start := MustParsePath("M0 0L10 0Q10 10 20 10ZM30 30L40 40")
	end := MustParsePath("M10 10L30 10Q20 20 40 20ZM50 50L60 50")

	p, err := Interpolate(start, end, 0.0)
	test.Error(t, err)
	test.That(t, p.Equals(start))

	p, err = Interpolate(start, end, 1.0)
	test.Error(t, err)
	test.That(t, p.Equals(end))

	p, err = Interpolate(start, end, 0.5)
	test.Error(t, err)
	test.String(t, p.String(), "M 5 5 L 20 5 Q 15 15 30 15 Z M 40 40 L 50 45")
	test.T(t, p.Command(0, 3).End(), Point{5, 5})
	for i, c := range p.Commands() {
		test.T(t, c.ID(), start.Commands()[i].ID())
	}
}

func TestInterpolateError(t *testing.T) {
	_, err := Interpolate(MustParsePath("M0 0L10 0"), MustParsePath("M0 0Q5 5 10 0"), 0.5)
	test.That(t, err != nil)
	test.That(t, strings.HasPrefix(err.Error(), "paths are not morphable: 1 mismatched commands, first at 0:1 L/Q"), err.Error())

	// morphable after fixing
	res := AutoFix(MustParsePath("M0 0L10 0"), MustParsePath("M0 0Q5 5 10 0L20 0"))
	p, err := Interpolate(res.From, res.To, 0.25)
	test.Error(t, err)
	test.T(t, p.SubPath(0).Len(), 3)
}
