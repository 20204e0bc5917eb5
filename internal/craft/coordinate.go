package craft

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a point in the 3D grid: X east/west, Y north/south, Z vertical.
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

func (c Coordinate) Sub(d Coordinate) Coordinate {
	return Coordinate{X: c.X - d.X, Y: c.Y - d.Y, Z: c.Z - d.Z}
}

func (c Coordinate) Scale(k int) Coordinate {
	return Coordinate{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// ParseCoordinate reads "x,y,z", with or without surrounding parentheses.
func ParseCoordinate(s string) (Coordinate, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("%w: %q expects 3 integers", ErrBadCoordinate, s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
		}
		v[i] = n
	}
	return Coordinate{X: v[0], Y: v[1], Z: v[2]}, nil
}
