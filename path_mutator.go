package shapeshifter

import (
	"fmt"
	"sort"
)

// Mutator stages operations on a path. Nothing happens until Build, which replays the operations in order on a
// copy of the path and returns the result. The original path is never modified.
//
// Operations address commands by index into the path as it is after the previously staged operations. Multiple
// SplitCommand operations on the same path must therefore be staged in descending (subIdx, cmdIdx) order, so that
// inserted commands do not shift the targets of later operations.
type Mutator struct {
	p   *Path
	ops []func([][]Command) [][]Command
}

func (m *Mutator) add(op func([][]Command) [][]Command) *Mutator {
	m.ops = append(m.ops, op)
	return m
}

// Build replays the staged operations and returns the new path. Start points are re-derived after every operation.
func (m *Mutator) Build() *Path {
	p := m.p
	for _, op := range m.ops {
		p = newPathFromSubPaths(op(p.cmds()))
	}
	return p
}

func checkRef(cmds [][]Command, subIdx, cmdIdx int) {
	if subIdx < 0 || len(cmds) <= subIdx {
		panic(fmt.Sprintf("subpath index %d out of range [0,%d)", subIdx, len(cmds)))
	} else if cmdIdx < 0 || len(cmds[subIdx]) <= cmdIdx {
		panic(fmt.Sprintf("command index %d out of range [0,%d)", cmdIdx, len(cmds[subIdx])))
	}
}

func checkSubIdx(cmds [][]Command, subIdx int) {
	checkRef(cmds, subIdx, 0)
}

// Transform transforms all points by the matrix.
func (m *Mutator) Transform(mat Matrix) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		for _, s := range cmds {
			for j := range s {
				s[j] = s[j].Transform(mat)
			}
		}
		return cmds
	})
}

// Reverse reverses the direction of every subpath, keeping the order of the subpaths.
func (m *Mutator) Reverse() *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		for i := range cmds {
			cmds[i] = reverseSubPath(cmds[i])
		}
		return cmds
	})
}

// SetCommandPoints replaces the points of a command, the number of points must match its kind.
// The start point of the following command follows the new end point.
func (m *Mutator) SetCommandPoints(subIdx, cmdIdx int, points ...Point) *Mutator {
	points = append([]Point{}, points...)
	return m.add(func(cmds [][]Command) [][]Command {
		checkRef(cmds, subIdx, cmdIdx)
		cmds[subIdx][cmdIdx] = cmds[subIdx][cmdIdx].withPoints(points)
		return cmds
	})
}

// ConvertCommand converts a command to another kind, keeping its id and flags. See Calculator.Convert.
func (m *Mutator) ConvertCommand(subIdx, cmdIdx int, cmd PathCmd) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		checkRef(cmds, subIdx, cmdIdx)
		cmds[subIdx][cmdIdx] = convertCommand(cmds[subIdx][cmdIdx], cmd)
		return cmds
	})
}

func convertCommand(c Command, cmd PathCmd) Command {
	if c.cmd == cmd {
		return c
	}
	conv := NewCalculator(c).Convert(cmd).Command()
	return newCommand(cmd, conv.points, c.id, c.isSplitPoint, c.isSplitSegment)
}

// SplitCommand splits a command at the curve parameters ts, which are sorted and clamped to [0,1]. The command is
// replaced by len(ts)+1 commands. All but the last are marked as split points, the last keeps the id and flags of
// the original. Splitting a Close yields Lines followed by a Close. Moves cannot be split.
func (m *Mutator) SplitCommand(subIdx, cmdIdx int, ts ...float64) *Mutator {
	ts = append([]float64{}, ts...)
	return m.add(func(cmds [][]Command) [][]Command {
		checkRef(cmds, subIdx, cmdIdx)
		pieces := splitCommand(cmds[subIdx][cmdIdx], ts)
		cmds[subIdx] = replaceCommand(cmds[subIdx], cmdIdx, pieces)
		return cmds
	})
}

// SplitCommandInHalf splits a command at half its arc length.
func (m *Mutator) SplitCommandInHalf(subIdx, cmdIdx int) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		checkRef(cmds, subIdx, cmdIdx)
		c := cmds[subIdx][cmdIdx]
		t := NewCalculator(c).FindTimeByDistance(0.5)
		cmds[subIdx] = replaceCommand(cmds[subIdx], cmdIdx, splitCommand(c, []float64{t}))
		return cmds
	})
}

func splitCommand(c Command, ts []float64) []Command {
	if c.cmd == MoveToCmd {
		panic("cannot split a Move command")
	}
	ts = append([]float64{}, ts...)
	for i := range ts {
		ts[i] = clamp(ts[i], 0.0, 1.0)
	}
	sort.Float64s(ts)

	calc := NewCalculator(c)
	pieces := make([]Command, 0, len(ts)+1)
	t0 := 0.0
	for i, t := range append(ts, 1.0) {
		piece := calc.Split(t0, t).Command()
		if i < len(ts) {
			cmd := piece.cmd
			if cmd == CloseCmd {
				cmd = LineToCmd
			}
			piece = newCommand(cmd, piece.points, derivedID(c.id, i, piece.End()), true, false)
		} else {
			piece = newCommand(piece.cmd, piece.points, c.id, c.isSplitPoint, c.isSplitSegment)
		}
		pieces = append(pieces, piece)
		t0 = t
	}
	return pieces
}

func replaceCommand(cmds []Command, i int, with []Command) []Command {
	s := make([]Command, 0, len(cmds)-1+len(with))
	s = append(s, cmds[:i]...)
	s = append(s, with...)
	s = append(s, cmds[i+1:]...)
	return s
}

// ShiftSubPathBack moves the start point of a closed subpath k segments back, so that the subpath starts at what
// was the start of its k-th last segment. A trailing Close stays at the end. Open subpaths are left unchanged.
func (m *Mutator) ShiftSubPathBack(subIdx, k int) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		checkSubIdx(cmds, subIdx)
		cmds[subIdx] = shiftSubPath(cmds[subIdx], k)
		return cmds
	})
}

// ShiftSubPathForward moves the start point of a closed subpath k segments forward. It undoes ShiftSubPathBack.
func (m *Mutator) ShiftSubPathForward(subIdx, k int) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		checkSubIdx(cmds, subIdx)
		cmds[subIdx] = shiftSubPath(cmds[subIdx], -k)
		return cmds
	})
}

func shiftSubPath(s []Command, k int) []Command {
	if !(SubPath{s}).Closed() || len(s) < 3 {
		return s
	}
	n := len(s) - 1
	if k = ((k % n) + n) % n; k == 0 {
		return s
	}

	closed := s[len(s)-1].cmd == CloseCmd
	segs := make([]Command, 0, n)
	segs = append(segs, s[n-k+1:]...)
	segs = append(segs, s[1:n-k+1]...)
	for i, seg := range segs {
		if seg.cmd == CloseCmd {
			segs[i] = seg.withCmd(LineToCmd)
		}
	}
	if last := segs[n-1]; closed && last.cmd == LineToCmd {
		segs[n-1] = last.withCmd(CloseCmd)
	}
	return append([]Command{s[0].withEnd(segs[0].Start())}, segs...)
}

// ReverseSubPath reverses the direction of a subpath. An open subpath starts at its former end point, a closed
// subpath keeps its start point and trailing Close.
func (m *Mutator) ReverseSubPath(subIdx int) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		checkSubIdx(cmds, subIdx)
		cmds[subIdx] = reverseSubPath(cmds[subIdx])
		return cmds
	})
}

func reverseSubPath(s []Command) []Command {
	if len(s) < 2 {
		return s
	}
	closed := s[len(s)-1].cmd == CloseCmd
	n := len(s) - 1
	segs := make([]Command, n)
	for i, seg := range s[1:] {
		if seg.cmd == CloseCmd {
			seg = seg.withCmd(LineToCmd)
		}
		segs[n-1-i] = seg.Reverse()
	}
	if last := segs[n-1]; closed && last.cmd == LineToCmd {
		segs[n-1] = last.withCmd(CloseCmd)
	}
	return append([]Command{s[0].withEnd(segs[0].Start())}, segs...)
}

// SplitStroke splits an open subpath in two after the given command, by inserting a Move marked as split segment
// at its end point. The subpath must not end with a Close and cmdIdx must not be its last command.
func (m *Mutator) SplitStroke(subIdx, cmdIdx int) *Mutator {
	return m.add(func(cmds [][]Command) [][]Command {
		checkRef(cmds, subIdx, cmdIdx)
		s := cmds[subIdx]
		if s[len(s)-1].cmd == CloseCmd {
			panic("cannot split the stroke of a subpath ending with a Close command")
		} else if cmdIdx == len(s)-1 {
			panic("cannot split the stroke after the last command of a subpath")
		}
		end := s[cmdIdx].End()
		move := newCommand(MoveToCmd, []Point{end, end}, derivedID(s[cmdIdx].id, -1, end), false, true)

		split := make([][]Command, 0, len(cmds)+1)
		split = append(split, cmds[:subIdx]...)
		split = append(split, s[:cmdIdx+1], append([]Command{move}, s[cmdIdx+1:]...))
		split = append(split, cmds[subIdx+1:]...)
		return split
	})
}
