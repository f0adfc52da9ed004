package shapeshifter

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParsePath parses an SVG path data string and panics on error.
func MustParsePath(s string) *Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePath parses an SVG path data string into a path.
func ParsePath(s string) (*Path, error) {
	cmds, err := ParseCommands(s)
	if err != nil {
		return nil, err
	}
	return NewPath(cmds), nil
}

// number of arguments per command, arcs include their two flags
var numArgs = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

// pathState is the state of the parser between commands.
type pathState struct {
	cmds   []Command
	cur    Point // current point
	start  Point // start of the current subpath, the current point after a Close
	cp     Point // last control point of the previous Bézier
	prev   byte  // previous command letter
	closed bool  // previous command was a Close
}

func (state *pathState) emit(cmd PathCmd, points ...Point) {
	start := state.cur
	if cmd == MoveToCmd {
		if len(state.cmds) == 0 {
			start = nanPoint()
		}
		state.start = points[len(points)-1]
	} else if state.closed {
		// drawing after a Close starts a new subpath at the same point
		state.cmds = append(state.cmds, NewCommand(MoveToCmd, start, start))
	}
	state.cmds = append(state.cmds, NewCommand(cmd, append([]Point{start}, points...)...))
	state.cur = points[len(points)-1]
	state.closed = cmd == CloseCmd
}

// arcTo emits the cubic Béziers approximating an elliptical arc, or a line if either radius is zero.
func (state *pathState) arcTo(rx, ry, rot float64, large, sweep bool, end Point) {
	beziers, isArc := arcToCubics(state.cur, rx, ry, rot, large, sweep, end)
	if !isArc {
		state.emit(LineToCmd, end)
	}
	for _, b := range beziers {
		state.emit(CubeToCmd, b[0], b[1], b[2])
	}
}

// ParseCommands parses an SVG path data string into a flat list of commands. Relative, horizontal, vertical and
// shorthand commands are converted to their absolute counterparts, and arcs to cubic Béziers. Numbers following
// a command without a new command letter repeat it, where a Move repeats as a Line.
func ParseCommands(s string) ([]Command, error) {
	path := []byte(s)
	state := &pathState{}

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := state.prev
		if 'A' <= path[i] && path[i] <= 'z' {
			cmd = path[i]
			i++
		} else if state.prev == 0 {
			return nil, fmt.Errorf("bad path: path should start with a moveto command")
		} else if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i+1)
		}
		if state.prev == 0 && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("bad path: path should start with a moveto command")
		}

		n, err := state.command(cmd, path, i)
		if err != nil {
			return nil, err
		}
		i += n
		state.prev = cmd
	}
	return state.cmds, nil
}

// command parses the arguments of one command starting at path[i] and emits its commands. It returns the number of bytes consumed.
func (state *pathState) command(cmd byte, path []byte, i int) (int, error) {
	upper := cmd
	if 'a' <= cmd {
		upper = cmd - 'a' + 'A'
	}
	argc, ok := numArgs[upper]
	if !ok {
		return 0, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
	}

	start := i
	args := make([]float64, argc)
	for k := range args {
		if upper == 'A' && (k == 3 || k == 4) {
			f, n := parseFlag(path[i:])
			if n == 0 {
				return 0, fmt.Errorf("bad path: bad flag for command '%c' at position %d", cmd, i+1)
			}
			args[k] = f
			i += n
			continue
		}
		f, n := parseNum(path[i:])
		if n == 0 {
			return 0, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", argc, cmd, start)
		}
		args[k] = f
		i += n
	}

	// convert relative coordinates
	cur := state.cur
	if cmd != upper {
		switch upper {
		case 'H':
			args[0] += cur.X
		case 'V':
			args[0] += cur.Y
		case 'A':
			args[5] += cur.X
			args[6] += cur.Y
		default:
			for k := 0; k+1 < len(args); k += 2 {
				args[k] += cur.X
				args[k+1] += cur.Y
			}
		}
	}

	switch upper {
	case 'M':
		state.emit(MoveToCmd, Point{args[0], args[1]})
	case 'Z':
		if !state.closed {
			state.emit(CloseCmd, state.start)
		}
	case 'L':
		state.emit(LineToCmd, Point{args[0], args[1]})
	case 'H':
		state.emit(LineToCmd, Point{args[0], cur.Y})
	case 'V':
		state.emit(LineToCmd, Point{cur.X, args[0]})
	case 'C':
		cp1, cp2, end := Point{args[0], args[1]}, Point{args[2], args[3]}, Point{args[4], args[5]}
		state.emit(CubeToCmd, cp1, cp2, end)
		state.cp = cp2
	case 'S':
		cp1 := cur
		if state.prev == 'C' || state.prev == 'c' || state.prev == 'S' || state.prev == 's' {
			cp1 = cur.Mul(2.0).Sub(state.cp)
		}
		cp2, end := Point{args[0], args[1]}, Point{args[2], args[3]}
		state.emit(CubeToCmd, cp1, cp2, end)
		state.cp = cp2
	case 'Q':
		cp, end := Point{args[0], args[1]}, Point{args[2], args[3]}
		state.emit(QuadToCmd, cp, end)
		state.cp = cp
	case 'T':
		cp := cur
		if state.prev == 'Q' || state.prev == 'q' || state.prev == 'T' || state.prev == 't' {
			cp = cur.Mul(2.0).Sub(state.cp)
		}
		end := Point{args[0], args[1]}
		state.emit(QuadToCmd, cp, end)
		state.cp = cp
	case 'A':
		state.arcTo(args[0], args[1], args[2], args[3] == 1.0, args[4] == 1.0, Point{args[5], args[6]})
	}
	return i - start, nil
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// parseFlag parses an arc flag, which may be followed directly by the next number as in "A5 5 0 0110 0".
func parseFlag(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return float64(path[i] - '0'), i + 1
	}
	return 0.0, 0
}
