package interpreter

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"spacecraft/internal/craft"
)

// MaxDepth bounds macro expansion so a self-referencing def fails instead of
// recursing forever.
const MaxDepth = 64

// DefaultMaxSteps is the step budget given to a new Context.
const DefaultMaxSteps = 1 << 20

// ErrStepLimit is returned once a run exceeds Context.MaxSteps.
var ErrStepLimit = errors.New("step limit exceeded")

// Anything that is not structural or blank is a Word, so symbols like "?",
// "-" or "F!" reach the interpreter and are skipped there.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Punct", Pattern: `[{}=,;]`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Word", Pattern: `[^\s{}=,;]+`},
})

type Program struct {
	Statements []*Statement `parser:"( ',' | ';' | @@ )*"`
}

type Statement struct {
	Pos lexer.Position

	Define *Define `parser:"  @@"`
	Repeat *Repeat `parser:"| @@"`
	Symbol *string `parser:"| @(Word | Int)"`
}

type Define struct {
	Name string   `parser:"'def' @Word '='"`
	Body *Program `parser:"'{' @@ '}'"`
}

type Repeat struct {
	Count int      `parser:"'repeat' @Int"`
	Body  *Program `parser:"'{' @@ '}'"`
}

// A bare "def" or "repeat" that does not open a block falls back to a plain
// symbol, which needs a few tokens of lookahead.
var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(4),
)

// Parse reads a command script such as "f r u b l" or
// "def spin = { r r r r }; repeat 2 { f spin }".
func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Define != nil:
		if craft.IsCommandSymbol(s.Define.Name) {
			return fmt.Errorf("%s: cannot redefine command %q", s.Pos, s.Define.Name)
		}
		ctx.Env.Set(s.Define.Name, s.Define.Body)
	case s.Repeat != nil:
		for i := 0; i < s.Repeat.Count; i++ {
			if err := ctx.tick(s.Pos); err != nil {
				return err
			}
			if err := s.Repeat.Body.Exec(ctx); err != nil {
				return err
			}
		}
	case s.Symbol != nil:
		return ctx.run(s.Pos, *s.Symbol)
	}
	return nil
}

// tick charges one step against MaxSteps. A zero MaxSteps means no limit.
func (ctx *Context) tick(pos lexer.Position) error {
	ctx.steps++
	if ctx.MaxSteps > 0 && ctx.steps > ctx.MaxSteps {
		return fmt.Errorf("%s: %w (%d)", pos, ErrStepLimit, ctx.MaxSteps)
	}
	return nil
}

func (ctx *Context) run(pos lexer.Position, symbol string) error {
	if err := ctx.tick(pos); err != nil {
		return err
	}
	if body, ok := ctx.Env.Get(symbol); ok {
		if ctx.depth >= MaxDepth {
			return fmt.Errorf("%s: %q expands deeper than %d levels", pos, symbol, MaxDepth)
		}
		ctx.depth++
		defer func() { ctx.depth-- }()
		return body.Exec(ctx)
	}

	index := ctx.seen
	ctx.seen++
	cmd, err := craft.ParseCommand(symbol)
	if err != nil {
		if ctx.Strict {
			return fmt.Errorf("%s: %w", pos, err)
		}
		ctx.Log.Debug().Str("symbol", symbol).Int("index", index).Msg("skipping unknown symbol")
		ctx.Skipped = append(ctx.Skipped, craft.Skip{Index: index, Symbol: symbol})
		return nil
	}

	ctx.Craft.Apply(cmd)
	state := ctx.Craft.State()
	ctx.Log.Debug().
		Str("command", cmd.String()).
		Stringer("position", state.Position).
		Stringer("facing", state.Facing).
		Msg("applied")
	if ctx.Trace != nil {
		ctx.Trace(Step{Pos: pos, Index: index, Command: cmd, State: state})
	}
	return nil
}
