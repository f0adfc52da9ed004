package shapeshifter

import (
	"fmt"
	"math"
)

// CommandRef addresses a command by its subpath index and its index within the subpath.
type CommandRef struct {
	SubIdx, CmdIdx int
}

func (ref CommandRef) String() string {
	return fmt.Sprintf("%d:%d", ref.SubIdx, ref.CmdIdx)
}

// Path is an immutable list of subpaths. All transformations return a new Path.
type Path struct {
	subPaths []SubPath
}

// NewPath returns a path for the flat list of commands, which must start with a Move. Subpaths are derived from
// the Move and Close commands, a command following a Close starts a new subpath with a Move to the end of the Close.
// Start points are re-derived: every command starts where the previous command ended, the very first Move has no
// start, and a Close ends at the end point of the Move of its subpath.
func NewPath(cmds []Command) *Path {
	p := &Path{}
	if len(cmds) == 0 {
		return p
	} else if cmds[0].cmd != MoveToCmd {
		panic("path must start with a Move command")
	}

	var cur []Command
	prevEnd := nanPoint()
	moveEnd := Point{}
	for _, c := range cmds {
		if c.cmd != MoveToCmd && 0 < len(cur) && cur[len(cur)-1].cmd == CloseCmd {
			p.subPaths = append(p.subPaths, SubPath{cur})
			move := newCommand(MoveToCmd, []Point{prevEnd, moveEnd}, derivedID(c.id, -1, moveEnd), false, false)
			cur = []Command{move}
		}
		c = c.withStart(prevEnd)
		if c.cmd == MoveToCmd {
			if cur != nil {
				p.subPaths = append(p.subPaths, SubPath{cur})
			}
			cur = nil
			moveEnd = c.End()
		} else if c.cmd == CloseCmd {
			c = c.withEnd(moveEnd)
		}
		cur = append(cur, c)
		prevEnd = c.End()
	}
	p.subPaths = append(p.subPaths, SubPath{cur})
	return p
}

func newPathFromSubPaths(cmds [][]Command) *Path {
	n := 0
	for _, s := range cmds {
		n += len(s)
	}
	flat := make([]Command, 0, n)
	for _, s := range cmds {
		flat = append(flat, s...)
	}
	return NewPath(flat)
}

// Empty returns true if the path has no commands.
func (p *Path) Empty() bool {
	return len(p.subPaths) == 0
}

// Commands returns the flat list of commands.
func (p *Path) Commands() []Command {
	cmds := []Command{}
	for _, s := range p.subPaths {
		cmds = append(cmds, s.cmds...)
	}
	return cmds
}

// SubPaths returns the subpaths.
func (p *Path) SubPaths() []SubPath {
	return append([]SubPath{}, p.subPaths...)
}

// NumSubPaths returns the number of subpaths.
func (p *Path) NumSubPaths() int {
	return len(p.subPaths)
}

// SubPath returns the subpath at index i.
func (p *Path) SubPath(i int) SubPath {
	if i < 0 || len(p.subPaths) <= i {
		panic(fmt.Sprintf("subpath index %d out of range [0,%d)", i, len(p.subPaths)))
	}
	return p.subPaths[i]
}

// Command returns the command at the given subpath and command index.
func (p *Path) Command(subIdx, cmdIdx int) Command {
	return p.SubPath(subIdx).Command(cmdIdx)
}

// Length returns the arc length of the path.
func (p *Path) Length() float64 {
	length := 0.0
	for _, s := range p.subPaths {
		length += s.Length()
	}
	return length
}

// Bounds returns the bounding box of the path.
func (p *Path) Bounds() Rect {
	r := nanRect()
	for _, s := range p.subPaths {
		r = r.Add(s.Bounds())
	}
	return r
}

// Project returns the command and the point on it that are closest to q. It returns false for paths without drawing commands.
func (p *Path) Project(q Point) (CommandRef, Projection, bool) {
	ref, best, ok := CommandRef{}, Projection{D: math.Inf(1)}, false
	for i, s := range p.subPaths {
		for j, c := range s.cmds {
			if proj, has := NewCalculator(c).Project(q); has && proj.D < best.D {
				ref, best, ok = CommandRef{i, j}, proj, true
			}
		}
	}
	return ref, best, ok
}

// Equals returns true if both paths have equal commands with tolerance Epsilon. Ids are not compared.
func (p *Path) Equals(q *Path) bool {
	if len(p.subPaths) != len(q.subPaths) {
		return false
	}
	for i := range p.subPaths {
		a, b := p.subPaths[i].cmds, q.subPaths[i].cmds
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if !a[j].Equals(b[j]) {
				return false
			}
		}
	}
	return true
}

// Mutate returns a mutator that stages operations on a copy of the path.
func (p *Path) Mutate() *Mutator {
	return &Mutator{p: p}
}

// Transform returns the path with all points transformed by m.
func (p *Path) Transform(m Matrix) *Path {
	return p.Mutate().Transform(m).Build()
}

// Reverse returns the path with every subpath reversed.
func (p *Path) Reverse() *Path {
	return p.Mutate().Reverse().Build()
}

func (p *Path) String() string {
	return CommandsToString(p.Commands())
}

func (p *Path) cmds() [][]Command {
	cmds := make([][]Command, len(p.subPaths))
	for i, s := range p.subPaths {
		cmds[i] = s.Commands()
	}
	return cmds
}
