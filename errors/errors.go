package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/pontaoski/bussin/types"
	"github.com/ztrue/tracerr"
)

type Category int

const (
	LexError Category = iota
	SyntaxError
	BindingError
	TypeError
	RuntimeError
)

func (c Category) String() string {
	switch c {
	case LexError:
		return "LexError"
	case SyntaxError:
		return "SyntaxError"
	case BindingError:
		return "BindingError"
	case TypeError:
		return "TypeError"
	case RuntimeError:
		return "RuntimeError"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Diagnostic is implemented by every error the lexer, parser and
// interpreter produce.
type Diagnostic interface {
	error
	Category() Category
}

// CategoryOf reports the category of err, looking through tracerr wrappers.
func CategoryOf(err error) (Category, bool) {
	var d Diagnostic
	if stderrors.As(tracerr.Unwrap(err), &d) {
		return d.Category(), true
	}
	return 0, false
}

// Is reports whether err is a diagnostic of the given category.
func Is(err error, c Category) bool {
	got, ok := CategoryOf(err)
	return ok && got == c
}

type UnknownCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnknownCharacter) Category() Category { return LexError }
func (e UnknownCharacter) Error() string {
	return fmt.Sprintf("unknown character %q. %s", e.Char, e.Location)
}

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Value    string
	Location types.Span
}

func (e ExpectedKindGotKind) Category() Category { return SyntaxError }
func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s %q, expected a %s. %s", e.Got, e.Value, e.Expected, e.Location)
}

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Value    string
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Category() Category { return SyntaxError }
func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s %q, expected one of %s. %s", e.Got, e.Value, e.Expected, e.Location)
}

// UnexpectedEOF reports whether err is a syntax error caused by running out
// of input, which the REPL treats as a request for more lines.
func UnexpectedEOF(err error) bool {
	err = tracerr.Unwrap(err)
	var one ExpectedKindGotKind
	if stderrors.As(err, &one) {
		return one.Got == types.EOF
	}
	var many ExpectedOneOfKindGotKind
	if stderrors.As(err, &many) {
		return many.Got == types.EOF
	}
	return false
}

type MissingInitializer struct {
	Name     string
	Location types.Span
}

func (e MissingInitializer) Category() Category { return SyntaxError }
func (e MissingInitializer) Error() string {
	return fmt.Sprintf("constant %s must be initialized. %s", e.Name, e.Location)
}

type InvalidParameter struct {
	Function string
	Got      string
	Location types.Span
}

func (e InvalidParameter) Category() Category { return SyntaxError }
func (e InvalidParameter) Error() string {
	return fmt.Sprintf("parameter %s of function %s is not an identifier. %s", e.Got, e.Function, e.Location)
}

type ExpectedComparison struct {
	Got      string
	Location types.Span
}

func (e ExpectedComparison) Category() Category { return SyntaxError }
func (e ExpectedComparison) Error() string {
	return fmt.Sprintf("condition %s is not a comparison. %s", e.Got, e.Location)
}

type InvalidAssignmentTarget struct {
	Target string
}

func (e InvalidAssignmentTarget) Category() Category { return SyntaxError }
func (e InvalidAssignmentTarget) Error() string {
	return fmt.Sprintf("invalid left-hand side in assignment: %s", e.Target)
}

type NestingTooDeep struct {
	Limit    int
	Location types.Span
}

func (e NestingTooDeep) Category() Category { return SyntaxError }
func (e NestingTooDeep) Error() string {
	return fmt.Sprintf("nesting deeper than %d levels. %s", e.Limit, e.Location)
}

type Redeclaration struct {
	Name string
}

func (e Redeclaration) Category() Category { return BindingError }
func (e Redeclaration) Error() string {
	return fmt.Sprintf("variable %s already exists in this scope", e.Name)
}

type ConstantAssignment struct {
	Name string
}

func (e ConstantAssignment) Category() Category { return BindingError }
func (e ConstantAssignment) Error() string {
	return fmt.Sprintf("variable %s is constant", e.Name)
}

type UnresolvedSymbol struct {
	Name string
}

func (e UnresolvedSymbol) Category() Category { return BindingError }
func (e UnresolvedSymbol) Error() string {
	return fmt.Sprintf("cannot resolve variable %s", e.Name)
}

type InvalidCompareOperator struct {
	Operator string
}

func (e InvalidCompareOperator) Category() Category { return TypeError }
func (e InvalidCompareOperator) Error() string {
	return fmt.Sprintf("invalid operator in compare expression: %s", e.Operator)
}

type InvalidCompareOperands struct {
	Left     string
	Right    string
	Operator string
}

func (e InvalidCompareOperands) Category() Category { return TypeError }
func (e InvalidCompareOperands) Error() string {
	return fmt.Sprintf("invalid types in compare expression: %s %s %s", e.Left, e.Operator, e.Right)
}

type InvalidBinaryOperands struct {
	Left     string
	Right    string
	Operator string
}

func (e InvalidBinaryOperands) Category() Category { return TypeError }
func (e InvalidBinaryOperands) Error() string {
	return fmt.Sprintf("invalid types in binary expression: %s %s %s", e.Left, e.Operator, e.Right)
}

type NotCallable struct {
	Type string
}

func (e NotCallable) Category() Category { return TypeError }
func (e NotCallable) Error() string {
	return fmt.Sprintf("cannot call a value of type %s", e.Type)
}

type InvalidMemberAccess struct {
	Type string
}

func (e InvalidMemberAccess) Category() Category { return TypeError }
func (e InvalidMemberAccess) Error() string {
	return fmt.Sprintf("cannot read a property of a value of type %s", e.Type)
}

type InvalidPropertyKey struct {
	Type string
}

func (e InvalidPropertyKey) Category() Category { return TypeError }
func (e InvalidPropertyKey) Error() string {
	return fmt.Sprintf("a value of type %s cannot be used as a property key", e.Type)
}

type UnknownNode struct {
	Kind string
}

func (e UnknownNode) Category() Category { return TypeError }
func (e UnknownNode) Error() string {
	return fmt.Sprintf("unknown node: %s", e.Kind)
}

type CallDepthExceeded struct {
	Limit    int
	Function string
}

func (e CallDepthExceeded) Category() Category { return RuntimeError }
func (e CallDepthExceeded) Error() string {
	return fmt.Sprintf("maximum call depth of %d exceeded calling %s", e.Limit, e.Function)
}

type EvalDepthExceeded struct {
	Limit int
}

func (e EvalDepthExceeded) Category() Category { return RuntimeError }
func (e EvalDepthExceeded) Error() string {
	return fmt.Sprintf("expression nesting deeper than %d levels", e.Limit)
}
