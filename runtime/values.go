package runtime

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pontaoski/bussin/ast"
)

type ValueType string

const (
	NullType           ValueType = "null"
	NumberType         ValueType = "number"
	StringType         ValueType = "string"
	BooleanType        ValueType = "boolean"
	ObjectType         ValueType = "object"
	NativeFunctionType ValueType = "native-function"
	FunctionType       ValueType = "function"
)

type Value interface {
	Type() ValueType
	// String is the text buss prints for the value.
	String() string
}

type NullValue struct{}

func (NullValue) Type() ValueType { return NullType }
func (NullValue) String() string  { return "null" }

type NumberValue struct {
	Value float64
}

func (NumberValue) Type() ValueType  { return NumberType }
func (v NumberValue) String() string { return FormatNumber(v.Value) }

type StringValue struct {
	Value string
}

func (StringValue) Type() ValueType  { return StringType }
func (v StringValue) String() string { return v.Value }

type BoolValue struct {
	Value bool
}

func (BoolValue) Type() ValueType  { return BooleanType }
func (v BoolValue) String() string { return strconv.FormatBool(v.Value) }

type ObjectValue struct {
	Properties map[string]Value
}

func (*ObjectValue) Type() ValueType { return ObjectType }
func (v *ObjectValue) String() string {
	if len(v.Properties) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(v.Properties))
	for k := range v.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+inspect(v.Properties[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Get returns the property named key, or null when there is none.
func (v *ObjectValue) Get(key string) Value {
	if prop, ok := v.Properties[key]; ok {
		return prop
	}
	return MakeNull()
}

// FunctionCall is the signature of host functions. env is the scope of the
// call site.
type FunctionCall func(args []Value, env *Environment) (Value, error)

type NativeFunctionValue struct {
	Name string
	Call FunctionCall
}

func (*NativeFunctionValue) Type() ValueType { return NativeFunctionType }
func (v *NativeFunctionValue) String() string {
	return "[Function: " + v.Name + "]"
}

// FunctionValue is a user function. DeclarationEnvironment is the scope the
// declaration was evaluated in; calls resolve free variables against it.
type FunctionValue struct {
	Name                   string
	Parameters             []string
	Body                   []ast.Statement
	DeclarationEnvironment *Environment
}

func (*FunctionValue) Type() ValueType { return FunctionType }
func (v *FunctionValue) String() string {
	return "[Function: " + v.Name + "]"
}

func MakeNull() Value            { return NullValue{} }
func MakeNumber(n float64) Value { return NumberValue{Value: n} }
func MakeString(s string) Value  { return StringValue{Value: s} }
func MakeBool(b bool) Value      { return BoolValue{Value: b} }
func MakeObject() *ObjectValue   { return &ObjectValue{Properties: map[string]Value{}} }
func MakeNativeFunction(name string, call FunctionCall) Value {
	return &NativeFunctionValue{Name: name, Call: call}
}

// FormatNumber renders n the shortest way that reads back as n.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// inspect renders values nested inside objects, where strings are quoted.
func inspect(v Value) string {
	if s, ok := v.(StringValue); ok {
		return strconv.Quote(s.Value)
	}
	return v.String()
}
