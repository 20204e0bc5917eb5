package craft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbols(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		start    Coordinate
		facing   Facing
		commands string
		wantPos  Coordinate
		wantFace Facing
	}{
		{"forward north", Coordinate{}, North, "f", Coordinate{0, 1, 0}, North},
		{"forward east", Coordinate{}, East, "f", Coordinate{1, 0, 0}, East},
		{"forward up", Coordinate{}, Up, "f", Coordinate{0, 0, 1}, Up},
		{"mixed batch", Coordinate{}, North, "f,r,u,b,l", Coordinate{0, 1, -1}, North},
		{"full left cycle", Coordinate{}, North, "l,l,l,l", Coordinate{}, North},
		{"backward down then pitch up", Coordinate{3, 4, 5}, Down, "b,u", Coordinate{3, 4, 6}, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithPosition(tt.start), WithFacing(tt.facing))
			d := c.ApplySymbols(symbols(tt.commands)...)
			require.True(t, d.OK())
			assert.Equal(t, tt.wantPos, c.Position())
			assert.Equal(t, tt.wantFace, c.Facing())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, Snapshot{Position: Coordinate{}, Facing: North}, c.Initial())
	assert.Equal(t, State{Facing: North, LastHorizontal: North}, c.State())
}

func TestNewSeedsLastHorizontal(t *testing.T) {
	for _, f := range []Facing{North, East, South, West} {
		assert.Equal(t, f, New(WithFacing(f)).LastHorizontal(), f.String())
	}
	assert.Equal(t, North, New(WithFacing(Up)).LastHorizontal())
	assert.Equal(t, North, New(WithFacing(Down)).LastHorizontal())
}

func TestMoveEveryFacing(t *testing.T) {
	tests := map[Facing]Coordinate{
		North: {Y: 1},
		South: {Y: -1},
		East:  {X: 1},
		West:  {X: -1},
		Up:    {Z: 1},
		Down:  {Z: -1},
	}
	for f, want := range tests {
		c := New(WithFacing(f))
		c.Apply(Forward)
		assert.Equal(t, want, c.Position(), "forward %s", f)
		assert.Equal(t, f.Axis(), c.Position(), "axis %s", f)

		c.Reset()
		c.Apply(Backward)
		assert.Equal(t, want.Scale(-1), c.Position(), "backward %s", f)
		assert.Equal(t, f, c.Facing())
	}
}

func TestEmptyBatchIsNoop(t *testing.T) {
	start := Coordinate{-7, 2, 9}
	for _, f := range []Facing{North, East, South, West, Up, Down} {
		c := New(WithPosition(start), WithFacing(f))
		before := c.State()
		c.Apply()
		c.ApplySymbols()
		assert.Equal(t, before, c.State())
		assert.Equal(t, Snapshot{Position: start, Facing: f}, c.Initial())
	}
}

func TestForwardBackwardInverse(t *testing.T) {
	for _, f := range []Facing{North, East, South, West, Up, Down} {
		c := New(WithPosition(Coordinate{1, 2, 3}), WithFacing(f))
		c.Apply(Forward, Backward)
		assert.Equal(t, Coordinate{1, 2, 3}, c.Position())
		assert.Equal(t, f, c.Facing())

		c.Apply(Backward, Forward)
		assert.Equal(t, Coordinate{1, 2, 3}, c.Position())
	}
}

func TestTurnCycles(t *testing.T) {
	for _, f := range []Facing{North, East, South, West} {
		c := New(WithFacing(f))
		c.Apply(TurnLeft, TurnLeft, TurnLeft, TurnLeft)
		assert.Equal(t, f, c.Facing())

		c.Apply(TurnRight, TurnRight, TurnRight, TurnRight)
		assert.Equal(t, f, c.Facing())

		c.Apply(TurnLeft, TurnRight)
		assert.Equal(t, f, c.Facing())
		c.Apply(TurnRight, TurnLeft)
		assert.Equal(t, f, c.Facing())
		assert.Equal(t, Coordinate{}, c.Position())
	}
}

func TestTurnOrder(t *testing.T) {
	c := New()
	var right []Facing
	for i := 0; i < 4; i++ {
		c.Apply(TurnRight)
		right = append(right, c.Facing())
	}
	assert.Equal(t, []Facing{East, South, West, North}, right)

	var left []Facing
	for i := 0; i < 4; i++ {
		c.Apply(TurnLeft)
		left = append(left, c.Facing())
	}
	assert.Equal(t, []Facing{West, South, East, North}, left)
}

func TestTurnWhilePitchedUsesLastHorizontal(t *testing.T) {
	c := New(WithFacing(East))
	c.Apply(PitchUp)
	require.Equal(t, Up, c.Facing())
	require.Equal(t, East, c.LastHorizontal())

	c.Apply(TurnRight)
	assert.Equal(t, South, c.Facing())
	assert.Equal(t, South, c.LastHorizontal())

	c.Apply(PitchDown, TurnLeft)
	assert.Equal(t, East, c.Facing())
}

func TestVerticalStartTurnsFromNorth(t *testing.T) {
	c := New(WithFacing(Down))
	c.Apply(TurnRight)
	assert.Equal(t, East, c.Facing())

	c = New(WithFacing(Up))
	c.Apply(TurnLeft)
	assert.Equal(t, West, c.Facing())
}

// Pitch commands leave LastHorizontal alone, even when leaving a vertical
// facing for another one.
func TestPitchDoesNotRefreshLastHorizontal(t *testing.T) {
	c := New(WithPosition(Coordinate{5, 5, 5}), WithFacing(West))
	c.Apply(PitchUp, PitchDown, PitchUp)
	assert.Equal(t, Up, c.Facing())
	assert.Equal(t, West, c.LastHorizontal())
	assert.Equal(t, Coordinate{5, 5, 5}, c.Position())
}

func TestUnknownCommandIsNoop(t *testing.T) {
	c := New()
	c.Apply(Command(0), Command(42))
	assert.Equal(t, New().State(), c.State())
}

func TestApplySymbolsReportsSkipped(t *testing.T) {
	c := New()
	d := c.ApplySymbols("f", "x", "r", "", "F", "f")
	assert.False(t, d.OK())
	assert.Equal(t, []Command{Forward, TurnRight, Forward}, d.Commands)
	assert.Equal(t, []Skip{{Index: 1, Symbol: "x"}, {Index: 3, Symbol: ""}, {Index: 4, Symbol: "F"}}, d.Skipped)
	assert.Equal(t, Coordinate{1, 1, 0}, c.Position())
	assert.Equal(t, East, c.Facing())
}

func TestInitialIsNotAliased(t *testing.T) {
	c := New(WithPosition(Coordinate{1, 1, 1}), WithFacing(South))
	c.Apply(Forward, TurnRight, Forward, PitchUp)

	assert.Equal(t, Snapshot{Position: Coordinate{1, 1, 1}, Facing: South}, c.Initial())

	s := c.State()
	s.Position.X = 100
	assert.NotEqual(t, 100, c.Position().X)
}

func TestResetAndDisplacement(t *testing.T) {
	c := New(WithPosition(Coordinate{10, 0, -2}), WithFacing(Up))
	c.Apply(Forward, Forward, TurnRight, Forward)
	assert.Equal(t, Coordinate{1, 0, 2}, c.Displacement())
	assert.Equal(t, "(11,0,0) facing East", c.String())

	c.Reset()
	assert.Equal(t, State{Position: Coordinate{10, 0, -2}, Facing: Up, LastHorizontal: North}, c.State())
	assert.Equal(t, Coordinate{}, c.Displacement())
}
