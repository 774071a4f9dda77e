package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func joinStatements(stmts []Statement, sep string) string {
	var parts []string
	for _, stmt := range stmts {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, sep)
}

func block(stmts []Statement) string {
	if len(stmts) == 0 {
		return "{}"
	}
	return "{ " + joinStatements(stmts, " ") + " }"
}

func (p *Program) String() string {
	return joinStatements(p.Body, "\n")
}

func (v *VariableDeclaration) String() string {
	keyword := "skibidi"
	if v.Constant {
		keyword = "grimace"
	}
	if v.Value == nil {
		return fmt.Sprintf("%s %s;", keyword, v.Identifier)
	}
	return fmt.Sprintf("%s %s = %s;", keyword, v.Identifier, v.Value)
}

func (f *FunctionDeclaration) String() string {
	return fmt.Sprintf("pluh %s(%s) %s", f.Name, strings.Join(f.Parameters, ", "), block(f.Body))
}

func (v *IfStatement) String() string {
	s := fmt.Sprintf("fanum (%s) %s", v.Condition, block(v.Consequent))
	if len(v.Alternate) == 0 {
		return s
	}
	if len(v.Alternate) == 1 {
		if elif, ok := v.Alternate[0].(*IfStatement); ok {
			return s + " tax " + elif.String()
		}
	}
	return s + " tax " + block(v.Alternate)
}

func (v *AssignmentExpression) String() string {
	return fmt.Sprintf("%s = %s", v.Assignee, v.Value)
}

// Binary expressions are parenthesized so the rendering shows how the
// parser grouped them.
func (v *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", v.Left, v.Operator, v.Right)
}

func (v *CompareExpression) String() string {
	return fmt.Sprintf("%s %s %s", v.Left, v.Operator, v.Right)
}

func (v *CallExpression) String() string {
	var args []string
	for _, arg := range v.Arguments {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", v.Caller, strings.Join(args, ", "))
}

func (v *MemberExpression) String() string {
	if v.Computed {
		return fmt.Sprintf("%s[%s]", v.Object, v.Property)
	}
	return fmt.Sprintf("%s.%s", v.Object, v.Property)
}

func (v *Identifier) String() string {
	return v.Symbol
}

func (v *NumericLiteral) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64)
}

func (v *StringLiteral) String() string {
	return `"` + v.Value + `"`
}

func (v *ObjectLiteral) String() string {
	if len(v.Properties) == 0 {
		return "{}"
	}
	var props []string
	for _, prop := range v.Properties {
		props = append(props, prop.String())
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

func (v *Property) String() string {
	if v.Value == nil {
		return v.Key
	}
	return fmt.Sprintf("%s: %s", v.Key, v.Value)
}
