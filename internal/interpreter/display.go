package interpreter

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"spacecraft/internal/craft"
)

// Step is reported to Context.Trace after every applied command.
type Step struct {
	Pos     lexer.Position
	Index   int
	Command craft.Command
	State   craft.State
}

// NewTracer prints one line per step to w, prefixed with its script position.
func NewTracer(w io.Writer) func(Step) {
	return func(s Step) {
		fmt.Fprintf(w, "%s %3d %s %-10s -> %s facing %s\n",
			s.Pos, s.Index, s.Command.Symbol(), s.Command, s.State.Position, s.State.Facing)
	}
}
