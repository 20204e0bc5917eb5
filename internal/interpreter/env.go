package interpreter

import (
	"fmt"
	"sort"
)

// Environment holds macros defined with def

type Environment struct {
	defs map[string]*Program
}

func NewEnvironment() *Environment {
	return &Environment{defs: make(map[string]*Program)}
}

func (e *Environment) Get(name string) (*Program, bool) {
	p, ok := e.defs[name]
	return p, ok
}

func (e *Environment) Set(name string, body *Program) {
	e.defs[name] = body
}

func (e *Environment) String() string {
	names := make([]string, 0, len(e.defs))
	for name := range e.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprint(names)
}
