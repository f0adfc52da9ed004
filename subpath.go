package shapeshifter

import "fmt"

// SubPath is a run of commands that starts with a Move.
type SubPath struct {
	cmds []Command
}

// Commands returns a copy of the commands of the subpath.
func (s SubPath) Commands() []Command {
	return append([]Command{}, s.cmds...)
}

// Command returns the command at index i.
func (s SubPath) Command(i int) Command {
	if i < 0 || len(s.cmds) <= i {
		panic(fmt.Sprintf("command index %d out of range [0,%d)", i, len(s.cmds)))
	}
	return s.cmds[i]
}

// Len returns the number of commands.
func (s SubPath) Len() int {
	return len(s.cmds)
}

// Closed returns true if the subpath ends with a Close, or if it ends where it starts.
func (s SubPath) Closed() bool {
	if len(s.cmds) == 0 {
		return false
	} else if s.cmds[len(s.cmds)-1].cmd == CloseCmd {
		return true
	}
	return 1 < len(s.cmds) && s.cmds[0].End().Equals(s.cmds[len(s.cmds)-1].End())
}

// Length returns the sum of the arc lengths of the commands.
func (s SubPath) Length() float64 {
	length := 0.0
	for _, c := range s.cmds {
		length += NewCalculator(c).Length()
	}
	return length
}

// Bounds returns the bounding box of the drawn commands. It is NaN if nothing is drawn.
func (s SubPath) Bounds() Rect {
	r := nanRect()
	for _, c := range s.cmds {
		r = r.Add(NewCalculator(c).Bounds())
	}
	return r
}
