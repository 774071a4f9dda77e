package runtime

import (
	"bytes"
	"testing"

	"github.com/pontaoski/bussin/config"
	"github.com/pontaoski/bussin/errors"
)

func TestDeclareAndLookup(t *testing.T) {
	env := NewEnvironment(nil)
	if _, err := env.Declare("x", MakeNumber(1), false); err != nil {
		t.Fatal(err)
	}

	got, err := env.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if got != MakeNumber(1) {
		t.Errorf("x = %v", got)
	}

	if _, err := env.Declare("x", MakeNumber(2), false); !errors.Is(err, errors.BindingError) {
		t.Errorf("redeclaration: expected a BindingError, got %v", err)
	}
}

func TestShadowing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Declare("x", MakeNumber(1), true)

	inner := NewEnvironment(outer)
	if _, err := inner.Declare("x", MakeNumber(2), false); err != nil {
		t.Fatalf("shadowing should be allowed: %v", err)
	}

	if got, _ := inner.Lookup("x"); got != MakeNumber(2) {
		t.Errorf("inner x = %v", got)
	}
	if got, _ := outer.Lookup("x"); got != MakeNumber(1) {
		t.Errorf("outer x = %v", got)
	}
}

func TestAssign(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Declare("count", MakeNumber(0), false)
	outer.Declare("limit", MakeNumber(3), true)
	inner := NewEnvironment(outer)

	if _, err := inner.Assign("count", MakeNumber(5)); err != nil {
		t.Fatal(err)
	}
	if got, _ := outer.Lookup("count"); got != MakeNumber(5) {
		t.Errorf("assignment through child scope: count = %v", got)
	}
	if _, ok := inner.variables["count"]; ok {
		t.Errorf("assignment declared count in the child scope")
	}

	if _, err := inner.Assign("limit", MakeNumber(4)); !errors.Is(err, errors.BindingError) {
		t.Errorf("constant assignment: expected a BindingError, got %v", err)
	}
	if got, _ := outer.Lookup("limit"); got != MakeNumber(3) {
		t.Errorf("constant changed to %v", got)
	}

	if _, err := inner.Assign("missing", MakeNull()); !errors.Is(err, errors.BindingError) {
		t.Errorf("undeclared assignment: expected a BindingError, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	global := NewEnvironment(nil)
	global.Declare("a", MakeNull(), false)
	middle := NewEnvironment(global)
	middle.Declare("b", MakeNull(), false)
	inner := NewEnvironment(middle)

	tests := []struct {
		name string
		want *Environment
	}{
		{"a", global},
		{"b", middle},
	}
	for _, tt := range tests {
		got, err := inner.Resolve(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s resolved to the wrong scope", tt.name)
		}
	}

	_, err := inner.Resolve("c")
	if !errors.Is(err, errors.BindingError) {
		t.Fatalf("expected a BindingError, got %v", err)
	}
	if u, ok := err.(errors.UnresolvedSymbol); !ok || u.Name != "c" {
		t.Errorf("got %#v, want UnresolvedSymbol for c", err)
	}
}

func TestGlobalEnvironment(t *testing.T) {
	var out bytes.Buffer
	env := NewGlobalEnvironment(&out)

	tests := []struct {
		name string
		want Value
	}{
		{config.TrueName, MakeBool(true)},
		{config.FalseName, MakeBool(false)},
		{config.NullName, MakeNull()},
	}
	for _, tt := range tests {
		got, err := env.Lookup(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
		if !env.IsConstant(tt.name) {
			t.Errorf("%s is not constant", tt.name)
		}
	}

	printer, err := env.Lookup(config.PrintName)
	if err != nil {
		t.Fatal(err)
	}
	native, ok := printer.(*NativeFunctionValue)
	if !ok {
		t.Fatalf("%s is a %s", config.PrintName, printer.Type())
	}

	obj := MakeObject()
	obj.Properties["b"] = MakeString("two")
	obj.Properties["a"] = MakeNumber(1)

	result, err := native.Call([]Value{MakeString("hi"), MakeNumber(2.5), MakeBool(false), MakeNull(), obj}, env)
	if err != nil {
		t.Fatal(err)
	}
	if result.Type() != NullType {
		t.Errorf("buss returned %v", result)
	}
	if want := "hi 2.5 false null { a: 1, b: \"two\" }\n"; out.String() != want {
		t.Errorf("printed %q, want %q", out.String(), want)
	}
}
