package runtime

import (
	"fmt"
	"io"
	"strings"

	"github.com/pontaoski/bussin/config"
)

// NewGlobalEnvironment returns a root scope holding the literal constants
// and the native functions. buss writes to out.
func NewGlobalEnvironment(out io.Writer) *Environment {
	env := NewEnvironment(nil)

	constants := map[string]Value{
		config.TrueName:  MakeBool(true),
		config.FalseName: MakeBool(false),
		config.NullName:  MakeNull(),
	}
	for name, value := range constants {
		mustDeclare(env, name, value)
	}

	natives := []func(io.Writer) (string, FunctionCall){
		addPrint,
	}
	for _, fn := range natives {
		name, call := fn(out)
		mustDeclare(env, name, MakeNativeFunction(name, call))
	}

	return env
}

func mustDeclare(env *Environment, name string, value Value) {
	if _, err := env.Declare(name, value, true); err != nil {
		panic(err)
	}
}

func addPrint(out io.Writer) (string, FunctionCall) {
	return config.PrintName, func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}
		if _, err := fmt.Fprintln(out, strings.Join(parts, " ")); err != nil {
			return nil, err
		}
		return MakeNull(), nil
	}
}
