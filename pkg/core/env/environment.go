package env

import (
	"fmt"
	"sort"
)

// UndefinedVariableError is returned by Get for a name that was never set.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// Environment maps variable names to their current string value.
// It belongs to a single run and is not safe for concurrent use.
type Environment struct {
	vars map[string]string
}

// New returns an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]string)}
}

// Set binds name to value, overwriting any previous binding.
func (e *Environment) Set(name, value string) {
	e.vars[name] = value
}

// Get returns the value bound to name.
func (e *Environment) Get(name string) (string, error) {
	v, ok := e.vars[name]
	if !ok {
		return "", &UndefinedVariableError{Name: name}
	}
	return v, nil
}

// Len returns the number of bound names.
func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
