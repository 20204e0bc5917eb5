package craft

import "errors"

// ErrUnknownCommand is returned when a symbol is not one of f, b, l, r, u, d.
var ErrUnknownCommand = errors.New("unknown command")

// ErrUnknownFacing is returned when a facing name cannot be decoded.
var ErrUnknownFacing = errors.New("unknown facing")

var ErrBadCoordinate = errors.New("bad coordinate")
