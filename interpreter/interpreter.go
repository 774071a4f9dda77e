package interpreter

import (
	"io"
	"log"
	"os"
	"reflect"

	"github.com/pontaoski/bussin/ast"
	"github.com/pontaoski/bussin/config"
	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/parser"
	"github.com/pontaoski/bussin/runtime"
	"github.com/ztrue/tracerr"
)

// maxEvalDepth bounds how deeply eval may recurse, counting nested
// expressions and the frames of user function calls alike.
const maxEvalDepth = 100000

// Interpreter walks syntax trees. It is not safe for concurrent use; give
// each goroutine its own.
type Interpreter struct {
	cfg     config.Config
	depth   int
	nesting int
	logger  *log.Logger
}

func New(cfg config.Config) *Interpreter {
	if cfg.MaxCallDepth <= 0 {
		cfg.MaxCallDepth = config.Default().MaxCallDepth
	}
	return &Interpreter{
		cfg:    cfg,
		logger: log.New(os.Stderr, "trace: ", 0),
	}
}

// SetLogger replaces the logger call traces are written to.
func (i *Interpreter) SetLogger(logger *log.Logger) {
	i.logger = logger
}

// Evaluate runs node against env. Errors are categorized diagnostics from
// the errors package, wrapped with a stack trace.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.eval(node, env)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return value, nil
}

// Run parses source and evaluates it against env, returning the value of
// the last statement.
func (i *Interpreter) Run(reader io.Reader, filename string, env *runtime.Environment) (runtime.Value, error) {
	prog, err := parser.ParseSource(reader, filename)
	if err != nil {
		return nil, err
	}
	return i.Evaluate(prog, env)
}

// isNil reports whether node is a nil interface or a nil node pointer.
func isNil(node ast.Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (i *Interpreter) eval(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	if isNil(node) {
		return nil, errors.UnknownNode{Kind: "<nil>"}
	}

	i.nesting++
	defer func() { i.nesting-- }()
	if i.nesting > maxEvalDepth {
		return nil, errors.EvalDepthExceeded{Limit: maxEvalDepth}
	}

	switch n := node.(type) {
	case *ast.NumericLiteral:
		return runtime.MakeNumber(n.Value), nil
	case *ast.StringLiteral:
		return runtime.MakeString(n.Value), nil
	case *ast.Identifier:
		return env.Lookup(n.Symbol)
	case *ast.Program:
		return i.evalBody(n.Body, env)
	case *ast.VariableDeclaration:
		return i.evalVariableDeclaration(n, env)
	case *ast.FunctionDeclaration:
		return i.evalFunctionDeclaration(n, env)
	case *ast.IfStatement:
		return i.evalIfStatement(n, env)
	case *ast.AssignmentExpression:
		return i.evalAssignment(n, env)
	case *ast.BinaryExpression:
		return i.evalBinaryExpression(n, env)
	case *ast.CompareExpression:
		res, err := i.evalCompareExpression(n, env)
		if err != nil {
			return nil, err
		}
		return runtime.MakeBool(res), nil
	case *ast.ObjectLiteral:
		return i.evalObjectExpression(n, env)
	case *ast.CallExpression:
		return i.evalCallExpression(n, env)
	case *ast.MemberExpression:
		return i.evalMemberExpression(n, env)
	}

	return nil, errors.UnknownNode{Kind: string(node.Kind())}
}

// evalBody evaluates statements in order in env and returns the last value,
// or null for an empty body.
func (i *Interpreter) evalBody(body []ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	last := runtime.MakeNull()

	for _, stmt := range body {
		value, err := i.eval(stmt, env)
		if err != nil {
			return nil, err
		}
		last = value
	}

	return last, nil
}
