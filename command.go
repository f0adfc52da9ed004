package shapeshifter

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// PathCmd is the kind of a drawing command.
type PathCmd int

// Drawing command kinds.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	CloseCmd
)

// NumPoints returns the number of points a command of this kind holds, including its start point.
func (cmd PathCmd) NumPoints() int {
	switch cmd {
	case MoveToCmd, LineToCmd, CloseCmd:
		return 2
	case QuadToCmd:
		return 3
	case CubeToCmd:
		return 4
	}
	panic("invalid path command " + strconv.Itoa(int(cmd)))
}

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "M"
	case LineToCmd:
		return "L"
	case QuadToCmd:
		return "Q"
	case CubeToCmd:
		return "C"
	case CloseCmd:
		return "Z"
	}
	return "PathCmd(" + strconv.Itoa(int(cmd)) + ")"
}

////////////////////////////////////////////////////////////////

// Command is a single drawing instruction. It is immutable, all its methods return copies.
// The first point is the start point and the last point the end point. The first Move of a path has no start point, it is NaN.
type Command struct {
	cmd            PathCmd
	points         []Point
	id             string
	isSplitPoint   bool
	isSplitSegment bool
}

func newID() string {
	return uuid.NewString()
}

// derivedID returns a deterministic id for the i-th piece, ending at end, of splitting the command with the given id.
func derivedID(id string, i int, end Point) string {
	parent, err := uuid.Parse(id)
	if err != nil {
		parent = uuid.NewSHA1(uuid.NameSpaceOID, []byte(id))
	}
	return uuid.NewSHA1(parent, []byte(fmt.Sprintf("split-%d-%v", i, end))).String()
}

// NewCommand returns a new command with a fresh id. The number of points must match the kind.
func NewCommand(cmd PathCmd, points ...Point) Command {
	return newCommand(cmd, points, newID(), false, false)
}

func newCommand(cmd PathCmd, points []Point, id string, isSplitPoint, isSplitSegment bool) Command {
	if len(points) != cmd.NumPoints() {
		panic(fmt.Sprintf("%v command must have %d points, got %d", cmd, cmd.NumPoints(), len(points)))
	}
	return Command{
		cmd:            cmd,
		points:         append([]Point{}, points...),
		id:             id,
		isSplitPoint:   isSplitPoint,
		isSplitSegment: isSplitSegment,
	}
}

// Cmd returns the kind of command.
func (c Command) Cmd() PathCmd {
	return c.cmd
}

// ID returns the stable identity of the command. It survives cloning, mutating and conversion.
func (c Command) ID() string {
	return c.id
}

// IsSplitPoint is true when the command was produced by splitting another command.
func (c Command) IsSplitPoint() bool {
	return c.isSplitPoint
}

// IsSplitSegment is true when the command is a Move that was inserted by splitting a subpath.
func (c Command) IsSplitSegment() bool {
	return c.isSplitSegment
}

// Points returns a copy of the points of the command.
func (c Command) Points() []Point {
	return append([]Point{}, c.points...)
}

// Start returns the start point, which is NaN for the very first Move.
func (c Command) Start() Point {
	return c.points[0]
}

// HasStart returns false for the very first Move of a path.
func (c Command) HasStart() bool {
	return !c.points[0].IsNaN()
}

// End returns the end point.
func (c Command) End() Point {
	return c.points[len(c.points)-1]
}

// withPoints returns a copy with the points replaced, keeping id and flags.
func (c Command) withPoints(points []Point) Command {
	return newCommand(c.cmd, points, c.id, c.isSplitPoint, c.isSplitSegment)
}

// withCmd returns a copy of the command as another kind with the same number of points.
func (c Command) withCmd(cmd PathCmd) Command {
	return newCommand(cmd, c.points, c.id, c.isSplitPoint, c.isSplitSegment)
}

// withStart returns a copy with the start point replaced.
func (c Command) withStart(p Point) Command {
	if c.points[0] == p {
		return c
	}
	points := c.Points()
	points[0] = p
	return c.withPoints(points)
}

// withEnd returns a copy with the end point replaced.
func (c Command) withEnd(p Point) Command {
	if c.End() == p {
		return c
	}
	points := c.Points()
	points[len(points)-1] = p
	return c.withPoints(points)
}

// Transform returns the command with all points transformed by m.
func (c Command) Transform(m Matrix) Command {
	points := make([]Point, len(c.points))
	for i, p := range c.points {
		points[i] = m.Dot(p)
	}
	return c.withPoints(points)
}

// Reverse returns the command traversed in the opposite direction. Moves are returned unchanged.
func (c Command) Reverse() Command {
	if c.cmd == MoveToCmd {
		return c
	}
	n := len(c.points)
	points := make([]Point, n)
	for i, p := range c.points {
		points[n-1-i] = p
	}
	return c.withPoints(points)
}

// CanConvertTo returns true if the command can be converted to the other kind without changing its shape.
// Moves never convert and nothing converts to a Move. A kind never converts to itself.
func (c Command) CanConvertTo(target PathCmd) bool {
	target.NumPoints() // panics on invalid kind
	if c.cmd == MoveToCmd || target == MoveToCmd || c.cmd == target {
		return false
	}
	switch c.cmd {
	case LineToCmd:
		return target == QuadToCmd || target == CubeToCmd
	case CloseCmd:
		return target == LineToCmd || target == QuadToCmd || target == CubeToCmd
	case QuadToCmd:
		return target == CubeToCmd || target == LineToCmd && uniquePoints(c.points) <= 2
	case CubeToCmd:
		return target == LineToCmd && uniquePoints(c.points) <= 2
	}
	panic("invalid path command " + strconv.Itoa(int(c.cmd)))
}

// IsMorphableWith returns true if both commands are of the same kind.
func (c Command) IsMorphableWith(o Command) bool {
	return c.cmd == o.cmd
}

// Equals returns true if both commands have the same kind and points with tolerance Epsilon. Ids and flags are ignored.
func (c Command) Equals(o Command) bool {
	if c.cmd != o.cmd || len(c.points) != len(o.points) {
		return false
	}
	for i := range c.points {
		if !c.points[i].Equals(o.points[i]) {
			return false
		}
	}
	return true
}

func (c Command) String() string {
	return CommandsToString([]Command{c})
}
