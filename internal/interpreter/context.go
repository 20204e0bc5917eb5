package interpreter

import (
	"github.com/rs/zerolog"

	"spacecraft/internal/craft"
	"spacecraft/internal/logging"
)

// Context stores macros, the craft and run state

type Context struct {
	Env    *Environment
	Craft  *craft.Craft
	Strict bool
	Log    zerolog.Logger
	Trace  func(Step)

	// MaxSteps caps symbols plus repeat iterations. Zero disables the cap.
	MaxSteps int

	// Skipped collects unknown symbols when Strict is off.
	Skipped []craft.Skip

	depth int
	seen  int
	steps int
}

func NewContext(c *craft.Craft) *Context {
	return &Context{
		Env:      NewEnvironment(),
		Craft:    c,
		Log:      logging.NewNop(),
		MaxSteps: DefaultMaxSteps,
	}
}

// Run parses src and executes it against ctx.
func Run(ctx *Context, src string) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	return prog.Exec(ctx)
}
