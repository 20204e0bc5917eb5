package craft

import (
	"fmt"
	"strings"
)

// Facing is the orientation of the craft.
type Facing uint8

// North, East, South and West come first and in clockwise order so that a
// horizontal facing doubles as its index in the turn cycle.
const (
	North Facing = iota
	East
	South
	West
	Up
	Down
)

var facingNames = [...]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
	Up:    "Up",
	Down:  "Down",
}

func (f Facing) String() string {
	if int(f) < len(facingNames) {
		return facingNames[f]
	}
	return fmt.Sprintf("Facing(%d)", uint8(f))
}

// IsHorizontal reports whether f can take part in left/right turns.
func (f Facing) IsHorizontal() bool {
	return f <= West
}

// Axis is the unit step taken by a forward move while facing f.
func (f Facing) Axis() Coordinate {
	switch f {
	case North:
		return Coordinate{Y: 1}
	case South:
		return Coordinate{Y: -1}
	case East:
		return Coordinate{X: 1}
	case West:
		return Coordinate{X: -1}
	case Up:
		return Coordinate{Z: 1}
	case Down:
		return Coordinate{Z: -1}
	}
	return Coordinate{}
}

// right and left step through [North, East, South, West]. Both expect a
// horizontal facing.
func (f Facing) right() Facing {
	return (f + 1) % 4
}

func (f Facing) left() Facing {
	return (f + 3) % 4
}

func (f Facing) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Facing) UnmarshalText(b []byte) error {
	v, err := ParseFacing(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFacing accepts the facing names in any case, or their first letter.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownFacing, s)
}
