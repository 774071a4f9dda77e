package runtime

import (
	"github.com/pontaoski/bussin/errors"
)

// Environment is one lexical scope. Child scopes point at their parent; a
// scope stays alive as long as a child or a FunctionValue declared in it
// does.
type Environment struct {
	parent    *Environment
	variables map[string]Value
	constants map[string]struct{}
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		parent:    parent,
		variables: make(map[string]Value),
		constants: make(map[string]struct{}),
	}
}

// Declare binds name in this scope. Shadowing an outer binding is allowed,
// redeclaring one in the same scope is not.
func (e *Environment) Declare(name string, value Value, constant bool) (Value, error) {
	if _, ok := e.variables[name]; ok {
		return nil, errors.Redeclaration{Name: name}
	}

	e.variables[name] = value
	if constant {
		e.constants[name] = struct{}{}
	}

	return value, nil
}

// Assign overwrites name in the nearest scope that defines it.
func (e *Environment) Assign(name string, value Value) (Value, error) {
	env, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	if _, ok := env.constants[name]; ok {
		return nil, errors.ConstantAssignment{Name: name}
	}

	env.variables[name] = value
	return value, nil
}

func (e *Environment) Lookup(name string) (Value, error) {
	env, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	return env.variables[name], nil
}

// Resolve returns the nearest scope, starting with e, that defines name.
func (e *Environment) Resolve(name string) (*Environment, error) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.variables[name]; ok {
			return env, nil
		}
	}
	return nil, errors.UnresolvedSymbol{Name: name}
}

// IsConstant reports whether name is a constant of this scope.
func (e *Environment) IsConstant(name string) bool {
	_, ok := e.constants[name]
	return ok
}
