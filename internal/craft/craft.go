package craft

import "fmt"

// Snapshot is a position and facing pair.
type Snapshot struct {
	Position Coordinate `json:"position" yaml:"position"`
	Facing   Facing     `json:"facing" yaml:"facing"`
}

// State is the mutable part of a craft. LastHorizontal is always one of
// North, East, South or West.
type State struct {
	Position       Coordinate
	Facing         Facing
	LastHorizontal Facing
}

// Craft holds the starting snapshot and the current state. It is not safe
// for concurrent use.
type Craft struct {
	initial Snapshot
	state   State
}

type Option func(*Snapshot)

func WithPosition(c Coordinate) Option {
	return func(s *Snapshot) { s.Position = c }
}

func WithFacing(f Facing) Option {
	return func(s *Snapshot) { s.Facing = f }
}

// New builds a craft at the origin facing North unless options say otherwise.
func New(opts ...Option) *Craft {
	var initial Snapshot
	for _, opt := range opts {
		opt(&initial)
	}
	c := &Craft{initial: initial}
	c.Reset()
	return c
}

// Reset puts the craft back on its starting snapshot. A vertical starting
// facing seeds LastHorizontal with North.
func (c *Craft) Reset() {
	last := c.initial.Facing
	if !last.IsHorizontal() {
		last = North
	}
	c.state = State{
		Position:       c.initial.Position,
		Facing:         c.initial.Facing,
		LastHorizontal: last,
	}
}

func (c *Craft) Initial() Snapshot {
	return c.initial
}

func (c *Craft) State() State {
	return c.state
}

func (c *Craft) Position() Coordinate {
	return c.state.Position
}

func (c *Craft) Facing() Facing {
	return c.state.Facing
}

func (c *Craft) LastHorizontal() Facing {
	return c.state.LastHorizontal
}

// Displacement is the offset of the current position from the start.
func (c *Craft) Displacement() Coordinate {
	return c.state.Position.Sub(c.initial.Position)
}

// Apply runs cmds in order. Each command is applied in full before the next.
func (c *Craft) Apply(cmds ...Command) {
	for _, cmd := range cmds {
		c.step(cmd)
	}
}

// ApplySymbols decodes symbols and applies the recognised commands. Unknown
// symbols are dropped and reported in the result.
func (c *Craft) ApplySymbols(symbols ...string) Decoded {
	d := Decode(symbols)
	c.Apply(d.Commands...)
	return d
}

func (c *Craft) step(cmd Command) {
	switch cmd {
	case Forward:
		c.move(1)
	case Backward:
		c.move(-1)
	case TurnLeft:
		c.turn(c.state.LastHorizontal.left())
	case TurnRight:
		c.turn(c.state.LastHorizontal.right())
	case PitchUp:
		c.state.Facing = Up
	case PitchDown:
		c.state.Facing = Down
	}
}

// move only looks at the current facing, never at LastHorizontal.
func (c *Craft) move(delta int) {
	c.state.Position = c.state.Position.Add(c.state.Facing.Axis().Scale(delta))
}

func (c *Craft) turn(to Facing) {
	c.state.LastHorizontal = to
	c.state.Facing = to
}

func (c *Craft) String() string {
	return fmt.Sprintf("%s facing %s", c.state.Position, c.state.Facing)
}
