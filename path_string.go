package shapeshifter

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
)

type dec float64

func (f dec) String() string {
	// round to Precision decimals first, minify then only trims zeros
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), 0))
	if s == "-0" {
		s = "0"
	}
	return s
}

// CommandsToString writes the commands as SVG path data with absolute coordinates, rounded to Precision decimals.
// Every command letter is followed by its control points and end point, Close commands have no arguments.
func CommandsToString(cmds []Command) string {
	sb := strings.Builder{}
	for i, c := range cmds {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.cmd.String())
		if c.cmd == CloseCmd {
			continue
		}
		for _, p := range c.points[1:] {
			fmt.Fprintf(&sb, " %v %v", dec(p.X), dec(p.Y))
		}
	}
	return sb.String()
}
