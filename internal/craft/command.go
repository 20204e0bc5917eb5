package craft

import "fmt"

// Command is one relative instruction. The zero value matches no transition
// and is a no-op when applied.
type Command uint8

const (
	Forward Command = iota + 1
	Backward
	TurnLeft
	TurnRight
	PitchUp
	PitchDown
)

var commandSymbols = map[string]Command{
	"f": Forward,
	"b": Backward,
	"l": TurnLeft,
	"r": TurnRight,
	"u": PitchUp,
	"d": PitchDown,
}

// Symbol returns the one-letter form of c, or "" for an unknown command.
func (c Command) Symbol() string {
	switch c {
	case Forward:
		return "f"
	case Backward:
		return "b"
	case TurnLeft:
		return "l"
	case TurnRight:
		return "r"
	case PitchUp:
		return "u"
	case PitchDown:
		return "d"
	}
	return ""
}

func (c Command) String() string {
	switch c {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case PitchUp:
		return "pitch-up"
	case PitchDown:
		return "pitch-down"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// IsCommandSymbol reports whether s is one of the six command letters.
func IsCommandSymbol(s string) bool {
	_, ok := commandSymbols[s]
	return ok
}

func ParseCommand(symbol string) (Command, error) {
	c, ok := commandSymbols[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, symbol)
	}
	return c, nil
}

// Skip records a symbol that did not decode to a command.
type Skip struct {
	Index  int    `json:"index" yaml:"index"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Decoded is the result of decoding a batch of symbols. Unknown symbols are
// never fatal here; they land in Skipped so the caller decides what to do.
type Decoded struct {
	Commands []Command
	Skipped  []Skip
}

// OK reports whether every symbol decoded.
func (d Decoded) OK() bool {
	return len(d.Skipped) == 0
}

func Decode(symbols []string) Decoded {
	var d Decoded
	for i, s := range symbols {
		c, err := ParseCommand(s)
		if err != nil {
			d.Skipped = append(d.Skipped, Skip{Index: i, Symbol: s})
			continue
		}
		d.Commands = append(d.Commands, c)
	}
	return d
}
