package interpreter

import (
	"math"
	"strings"

	"github.com/pontaoski/bussin/ast"
	"github.com/pontaoski/bussin/config"
	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/runtime"
)

func (i *Interpreter) evalAssignment(node *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	if isNil(node.Assignee) {
		return nil, errors.UnknownNode{Kind: "<nil>"}
	}
	ident, ok := node.Assignee.(*ast.Identifier)
	if !ok {
		return nil, errors.InvalidAssignmentTarget{Target: node.Assignee.String()}
	}

	value, err := i.eval(node.Value, env)
	if err != nil {
		return nil, err
	}
	return env.Assign(ident.Symbol, value)
}

func evalNumericBinaryExpression(operator string, lhs, rhs float64) (runtime.Value, error) {
	var result float64

	switch operator {
	case "+":
		result = lhs + rhs
	case "-":
		result = lhs - rhs
	case "*":
		result = lhs * rhs
	case "/":
		result = lhs / rhs
	case "%":
		result = math.Mod(lhs, rhs)
	default:
		return nil, errors.InvalidBinaryOperands{
			Left:     string(runtime.NumberType),
			Right:    string(runtime.NumberType),
			Operator: operator,
		}
	}

	return runtime.MakeNumber(result), nil
}

// Numbers support every operator and strings support +. Other operand
// pairs are null, or an error with the error fallback.
func (i *Interpreter) evalBinaryExpression(binop *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	lhs, err := i.eval(binop.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := i.eval(binop.Right, env)
	if err != nil {
		return nil, err
	}

	switch l := lhs.(type) {
	case runtime.NumberValue:
		if r, ok := rhs.(runtime.NumberValue); ok {
			return evalNumericBinaryExpression(binop.Operator, l.Value, r.Value)
		}
	case runtime.StringValue:
		if r, ok := rhs.(runtime.StringValue); ok && binop.Operator == "+" {
			return runtime.MakeString(l.Value + r.Value), nil
		}
	}

	if i.cfg.BinaryFallback == config.FallbackError {
		return nil, errors.InvalidBinaryOperands{
			Left:     string(lhs.Type()),
			Right:    string(rhs.Type()),
			Operator: binop.Operator,
		}
	}
	return runtime.MakeNull(), nil
}

func compareOrdered(operator string, cmp int) bool {
	switch operator {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	case "==":
		return cmp == 0
	}
	return cmp != 0
}

func compareNumbers(operator string, l, r float64) bool {
	// NaN is unordered and unequal to everything, itself included
	if math.IsNaN(l) || math.IsNaN(r) {
		return operator == "!="
	}
	switch {
	case l < r:
		return compareOrdered(operator, -1)
	case l > r:
		return compareOrdered(operator, 1)
	}
	return compareOrdered(operator, 0)
}

func (i *Interpreter) compareBooleans(operator string, l, r bool) (bool, error) {
	switch operator {
	case "==":
		return l == r, nil
	case "!=":
		return l != r, nil
	}

	if i.cfg.BooleanComparison == config.Legacy {
		if strings.HasSuffix(operator, "=") {
			return l == r, nil
		}
		return l != r, nil
	}

	return false, errors.InvalidCompareOperands{
		Left:     string(runtime.BooleanType),
		Right:    string(runtime.BooleanType),
		Operator: operator,
	}
}

func (i *Interpreter) evalCompareExpression(node *ast.CompareExpression, env *runtime.Environment) (bool, error) {
	if node == nil {
		return false, errors.UnknownNode{Kind: "<nil>"}
	}
	lhs, err := i.eval(node.Left, env)
	if err != nil {
		return false, err
	}
	rhs, err := i.eval(node.Right, env)
	if err != nil {
		return false, err
	}

	switch node.Operator {
	case "<", ">", "<=", ">=", "==", "!=":
	default:
		return false, errors.InvalidCompareOperator{Operator: node.Operator}
	}

	switch l := lhs.(type) {
	case runtime.NumberValue:
		if r, ok := rhs.(runtime.NumberValue); ok {
			return compareNumbers(node.Operator, l.Value, r.Value), nil
		}
	case runtime.StringValue:
		if r, ok := rhs.(runtime.StringValue); ok {
			return compareOrdered(node.Operator, strings.Compare(l.Value, r.Value)), nil
		}
	case runtime.BoolValue:
		if r, ok := rhs.(runtime.BoolValue); ok {
			return i.compareBooleans(node.Operator, l.Value, r.Value)
		}
	}

	return false, errors.InvalidCompareOperands{
		Left:     string(lhs.Type()),
		Right:    string(rhs.Type()),
		Operator: node.Operator,
	}
}

func (i *Interpreter) evalObjectExpression(obj *ast.ObjectLiteral, env *runtime.Environment) (runtime.Value, error) {
	object := runtime.MakeObject()

	for _, prop := range obj.Properties {
		if prop == nil {
			return nil, errors.UnknownNode{Kind: "<nil>"}
		}
		var value runtime.Value
		var err error
		if prop.Value == nil {
			value, err = env.Lookup(prop.Key)
		} else {
			value, err = i.eval(prop.Value, env)
		}
		if err != nil {
			return nil, err
		}

		object.Properties[prop.Key] = value
	}

	return object, nil
}

func (i *Interpreter) propertyKey(member *ast.MemberExpression, env *runtime.Environment) (string, error) {
	if ident, ok := member.Property.(*ast.Identifier); ok && ident != nil && !member.Computed {
		return ident.Symbol, nil
	}

	key, err := i.eval(member.Property, env)
	if err != nil {
		return "", err
	}

	switch k := key.(type) {
	case runtime.StringValue:
		return k.Value, nil
	case runtime.NumberValue:
		return k.String(), nil
	}
	return "", errors.InvalidPropertyKey{Type: string(key.Type())}
}

// Reading a key an object does not have gives null.
func (i *Interpreter) evalMemberExpression(member *ast.MemberExpression, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.eval(member.Object, env)
	if err != nil {
		return nil, err
	}

	object, ok := value.(*runtime.ObjectValue)
	if !ok {
		return nil, errors.InvalidMemberAccess{Type: string(value.Type())}
	}

	key, err := i.propertyKey(member, env)
	if err != nil {
		return nil, err
	}
	return object.Get(key), nil
}

// Arguments are evaluated left to right before the callee.
func (i *Interpreter) evalCallExpression(expr *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	args := make([]runtime.Value, 0, len(expr.Arguments))
	for _, arg := range expr.Arguments {
		value, err := i.eval(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	callee, err := i.eval(expr.Caller, env)
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *runtime.NativeFunctionValue:
		return fn.Call(args, env)
	case *runtime.FunctionValue:
		return i.callFunction(fn, args)
	}

	return nil, errors.NotCallable{Type: string(callee.Type())}
}

// callFunction runs fn in a new scope whose parent is the scope fn was
// declared in. Missing arguments are null and extra ones are dropped.
func (i *Interpreter) callFunction(fn *runtime.FunctionValue, args []runtime.Value) (runtime.Value, error) {
	if i.depth >= i.cfg.MaxCallDepth {
		return nil, errors.CallDepthExceeded{Limit: i.cfg.MaxCallDepth, Function: fn.Name}
	}
	i.depth++
	defer func() { i.depth-- }()

	if i.cfg.Trace {
		i.logger.Printf("%scall %s%v", strings.Repeat("  ", i.depth-1), fn.Name, args)
	}

	scope := runtime.NewEnvironment(fn.DeclarationEnvironment)
	for idx, param := range fn.Parameters {
		arg := runtime.MakeNull()
		if idx < len(args) {
			arg = args[idx]
		}
		if _, err := scope.Declare(param, arg, false); err != nil {
			return nil, err
		}
	}

	return i.evalBody(fn.Body, scope)
}
