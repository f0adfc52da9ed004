package shapeshifter

import (
	"fmt"
	"math"
	"sort"
)

// noCmd is the kind reported in a Mismatch for a command index that one of the paths does not have.
const noCmd PathCmd = -1

// Mismatch is a command index at which two paths have commands of different kinds, or at which only one of the
// paths has a command. A missing command is reported with kind -1.
type Mismatch struct {
	SubIdx, CmdIdx int
	From, To       PathCmd
}

func (m Mismatch) String() string {
	kind := func(cmd PathCmd) string {
		if cmd == noCmd {
			return "-"
		}
		return cmd.String()
	}
	return fmt.Sprintf("%d:%d %s/%s", m.SubIdx, m.CmdIdx, kind(m.From), kind(m.To))
}

// Result holds the outcome of AutoFix or AutoConvert. Unresolved lists the commands that still prevent the paths
// from being morphed, which happens when neither of two aligned commands converts to the kind of the other.
type Result struct {
	From, To   *Path
	Unresolved []Mismatch
}

// Morphable returns true if the paths can be interpolated.
func (r Result) Morphable() bool {
	return len(r.Unresolved) == 0
}

func newResult(from, to *Path) Result {
	return Result{from, to, from.Mismatches(to)}
}

// alignScore scores an aligned pair of commands. Commands of the same or convertible kinds score higher the
// closer their end points are, other pairs score -1.
func alignScore(a, b Command) float64 {
	if a.cmd == b.cmd || a.CanConvertTo(b.cmd) || b.CanConvertTo(a.cmd) {
		return 1.0 / math.Max(1.0, a.End().Distance(b.End()))
	}
	return -1.0
}

const alignGap = 0.0

// AutoFix makes two paths morphable. For every pair of subpaths, the commands of the subpath with the most
// commands are aligned to those of the other subpath, trying the subpath as is, reversed, and reversed with every
// start offset if it is closed. Commands are then split to fill the gaps of the best alignment, so that both
// subpaths end up with an equal number of commands, after which AutoConvert unifies their kinds. Extra subpaths of
// either path are left untouched.
func AutoFix(from, to *Path) Result {
	for i := 0; i < min(from.NumSubPaths(), to.NumSubPaths()); i++ {
		from, to = alignSubPath(i, from, to)
		from, to = autoConvert(i, from, to)
	}
	return newResult(from, to)
}

// AutoConvert converts the commands of a subpath pair so that their kinds are equal, converting the command of
// from when possible and else the command of to. Command counts must already be equal for a morphable result.
func AutoConvert(subIdx int, from, to *Path) Result {
	from, to = autoConvert(subIdx, from, to)
	return newResult(from, to)
}

func autoConvert(subIdx int, from, to *Path) (*Path, *Path) {
	a, b := from.SubPath(subIdx), to.SubPath(subIdx)
	fromMut, toMut := from.Mutate(), to.Mutate()
	for j := 0; j < min(a.Len(), b.Len()); j++ {
		ca, cb := a.Command(j), b.Command(j)
		if ca.cmd == cb.cmd {
			continue
		} else if ca.CanConvertTo(cb.cmd) {
			fromMut.ConvertCommand(subIdx, j, cb.cmd)
		} else if cb.CanConvertTo(ca.cmd) {
			toMut.ConvertCommand(subIdx, j, ca.cmd)
		}
	}
	return fromMut.Build(), toMut.Build()
}

// alignSubPath splits commands of the subpath pair so that both have an equal number of commands.
func alignSubPath(subIdx int, from, to *Path) (*Path, *Path) {
	if to.SubPath(subIdx).Len() > from.SubPath(subIdx).Len() {
		to, from = alignSubPath(subIdx, to, from)
		return from, to
	}

	toCmds := to.SubPath(subIdx).cmds
	var best *Path
	var bestFrom, bestTo []slot[Command]
	bestScore := math.Inf(-1)
	for _, candidate := range alignCandidates(subIdx, from) {
		sa, sb, score := align(candidate.SubPath(subIdx).cmds, toCmds, alignScore, alignGap)
		if bestScore < score {
			best, bestFrom, bestTo, bestScore = candidate, sa, sb, score
		}
	}
	return fillGaps(subIdx, best, bestFrom), fillGaps(subIdx, to, bestTo)
}

// alignCandidates returns the path as is, with the subpath reversed, and for closed subpaths the reversed subpath
// shifted back by every offset.
func alignCandidates(subIdx int, p *Path) []*Path {
	candidates := []*Path{p}
	s := p.SubPath(subIdx)
	if s.Len() < 2 {
		return candidates
	}
	reversed := p.Mutate().ReverseSubPath(subIdx).Build()
	candidates = append(candidates, reversed)
	if s.Closed() {
		for k := 1; k < s.Len()-1; k++ {
			candidates = append(candidates, reversed.Mutate().ShiftSubPathBack(subIdx, k).Build())
		}
	}
	return candidates
}

// fillGaps splits a command for every gap streak in the aligned subpath, into as many extra commands as the streak
// has gaps. The command following the streak is split, or the last command for a trailing streak. The Move is never
// split, so a subpath with only a Move keeps its gaps.
func fillGaps(subIdx int, p *Path, slots []slot[Command]) *Path {
	n := p.SubPath(subIdx).Len()
	if n < 2 {
		return p
	}
	streaks := gapStreaks(slots)
	for k := range streaks {
		streaks[k].i = min(max(streaks[k].i, 1), n-1)
	}
	sort.SliceStable(streaks, func(a, b int) bool {
		return streaks[a].i > streaks[b].i
	})

	mut := p.Mutate()
	for _, streak := range streaks {
		ts := make([]float64, streak.n)
		for k := range ts {
			ts[k] = float64(k+1) / float64(streak.n+1)
		}
		mut.SplitCommand(subIdx, streak.i, ts...)
	}
	return mut.Build()
}
