package shapeshifter

// PathScanner iterates over the commands of a path in drawing order.
type PathScanner struct {
	p      *Path
	subIdx int
	cmdIdx int
}

// Scanner returns a scanner positioned before the first command.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p, 0, -1}
}

// Scan advances to the next command and returns false when there are no more commands.
func (s *PathScanner) Scan() bool {
	for s.subIdx < len(s.p.subPaths) {
		if s.cmdIdx+1 < len(s.p.subPaths[s.subIdx].cmds) {
			s.cmdIdx++
			return true
		}
		s.subIdx++
		s.cmdIdx = -1
	}
	return false
}

// Ref returns the position of the current command.
func (s *PathScanner) Ref() CommandRef {
	return CommandRef{s.subIdx, s.cmdIdx}
}

// Command returns the current command.
func (s *PathScanner) Command() Command {
	return s.p.subPaths[s.subIdx].cmds[s.cmdIdx]
}

// Cmd returns the kind of the current command.
func (s *PathScanner) Cmd() PathCmd {
	return s.Command().cmd
}

// Values returns the control points and end point of the current command, without its start point.
func (s *PathScanner) Values() []Point {
	return s.Command().Points()[1:]
}

// Start returns the start point of the current command, which is NaN for the first Move.
func (s *PathScanner) Start() Point {
	return s.Command().Start()
}

// CP1 returns the first control point for quadratic and cubic Béziers.
func (s *PathScanner) CP1() Point {
	if cmd := s.Cmd(); cmd != QuadToCmd && cmd != CubeToCmd {
		panic("must be quadratic or cubic Bézier")
	}
	return s.Command().points[1]
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.Cmd() != CubeToCmd {
		panic("must be cubic Bézier")
	}
	return s.Command().points[2]
}

// End returns the end point of the current command.
func (s *PathScanner) End() Point {
	return s.Command().End()
}
