package shapeshifter

import "fmt"

// Mismatches returns every command index at which the paths differ in kind, including the commands of one path
// that have no counterpart in the other. It is empty if and only if the paths are morphable.
func (p *Path) Mismatches(q *Path) []Mismatch {
	mismatches := []Mismatch{}
	for i := 0; i < max(p.NumSubPaths(), q.NumSubPaths()); i++ {
		var a, b []Command
		if i < p.NumSubPaths() {
			a = p.subPaths[i].cmds
		}
		if i < q.NumSubPaths() {
			b = q.subPaths[i].cmds
		}
		for j := 0; j < max(len(a), len(b)); j++ {
			ka, kb := noCmd, noCmd
			if j < len(a) {
				ka = a[j].cmd
			}
			if j < len(b) {
				kb = b[j].cmd
			}
			if ka != kb {
				mismatches = append(mismatches, Mismatch{i, j, ka, kb})
			}
		}
	}
	return mismatches
}

// IsMorphableWith returns true if both paths have the same number of subpaths and commands, with commands of
// equal kinds.
func (p *Path) IsMorphableWith(q *Path) bool {
	return len(p.Mismatches(q)) == 0
}

// Interpolate returns the path between start and end, linearly interpolating every point by fraction, ie. 0
// returns start and 1 returns end. The commands keep the ids of start. The paths must be morphable.
func Interpolate(start, end *Path, fraction float64) (*Path, error) {
	if mismatches := start.Mismatches(end); len(mismatches) != 0 {
		return nil, fmt.Errorf("paths are not morphable: %d mismatched commands, first at %v", len(mismatches), mismatches[0])
	}

	a, b := start.Commands(), end.Commands()
	cmds := make([]Command, len(a))
	for i := range a {
		points := make([]Point, len(a[i].points))
		for k := range points {
			points[k] = a[i].points[k].Interpolate(b[i].points[k], fraction)
		}
		cmds[i] = a[i].withPoints(points)
	}
	return NewPath(cmds), nil
}
