package interpreter

import (
	"github.com/pontaoski/bussin/ast"
	"github.com/pontaoski/bussin/runtime"
)

func (i *Interpreter) evalVariableDeclaration(decl *ast.VariableDeclaration, env *runtime.Environment) (runtime.Value, error) {
	value := runtime.MakeNull()
	if decl.Value != nil {
		var err error
		value, err = i.eval(decl.Value, env)
		if err != nil {
			return nil, err
		}
	}

	return env.Declare(decl.Identifier, value, decl.Constant)
}

// Functions are bound as constants and close over the scope they are
// declared in.
func (i *Interpreter) evalFunctionDeclaration(decl *ast.FunctionDeclaration, env *runtime.Environment) (runtime.Value, error) {
	fn := &runtime.FunctionValue{
		Name:                   decl.Name,
		Parameters:             decl.Parameters,
		Body:                   decl.Body,
		DeclarationEnvironment: env,
	}

	return env.Declare(decl.Name, fn, true)
}

// Branches run in the enclosing scope, and the statement itself is always
// null.
func (i *Interpreter) evalIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	res, err := i.evalCompareExpression(stmt.Condition, env)
	if err != nil {
		return nil, err
	}

	branch := stmt.Alternate
	if res {
		branch = stmt.Consequent
	}
	if _, err := i.evalBody(branch, env); err != nil {
		return nil, err
	}

	return runtime.MakeNull(), nil
}
