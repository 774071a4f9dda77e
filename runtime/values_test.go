package runtime

import (
	"math"
	"testing"
)

func TestValueStrings(t *testing.T) {
	nested := MakeObject()
	nested.Properties["s"] = MakeString("x")

	obj := MakeObject()
	obj.Properties["z"] = nested
	obj.Properties["f"] = &FunctionValue{Name: "add"}

	tests := []struct {
		value Value
		want  string
	}{
		{MakeNull(), "null"},
		{MakeNumber(10), "10"},
		{MakeNumber(-0.5), "-0.5"},
		{MakeNumber(1e21), "1000000000000000000000"},
		{MakeNumber(math.NaN()), "NaN"},
		{MakeNumber(math.Inf(1)), "Infinity"},
		{MakeNumber(math.Inf(-1)), "-Infinity"},
		{MakeString("raw \"text\""), "raw \"text\""},
		{MakeBool(true), "true"},
		{MakeObject(), "{}"},
		{obj, "{ f: [Function: add], z: { s: \"x\" } }"},
		{MakeNativeFunction("buss", nil), "[Function: buss]"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("%#v: got %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestObjectGet(t *testing.T) {
	obj := MakeObject()
	obj.Properties["x"] = MakeNumber(5)

	if got := obj.Get("x"); got != MakeNumber(5) {
		t.Errorf("x = %v", got)
	}
	if got := obj.Get("y"); got.Type() != NullType {
		t.Errorf("missing key = %v, want null", got)
	}
}
