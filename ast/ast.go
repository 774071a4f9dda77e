package ast

type NodeKind string

const (
	ProgramKind              NodeKind = "Program"
	VariableDeclarationKind  NodeKind = "VariableDeclaration"
	FunctionDeclarationKind  NodeKind = "FunctionDeclaration"
	IfStatementKind          NodeKind = "IfStatement"
	AssignmentExpressionKind NodeKind = "AssignmentExpression"
	BinaryExpressionKind     NodeKind = "BinaryExpression"
	CompareExpressionKind    NodeKind = "CompareExpression"
	CallExpressionKind       NodeKind = "CallExpression"
	MemberExpressionKind     NodeKind = "MemberExpression"
	IdentifierKind           NodeKind = "Identifier"
	NumericLiteralKind       NodeKind = "NumericLiteral"
	StringLiteralKind        NodeKind = "StringLiteral"
	ObjectLiteralKind        NodeKind = "ObjectLiteral"
	PropertyKind             NodeKind = "Property"
)

type Node interface {
	Kind() NodeKind
	String() string
}

type Statement interface {
	Node
	is_Statement()
}

// Expression nodes are valid anywhere a Statement is.
type Expression interface {
	Statement
	is_Expression()
}

type Program struct {
	Body []Statement
}

func (v *Program) Kind() NodeKind { return ProgramKind }
func (v *Program) is_Statement()  {}

// VariableDeclaration has a nil Value only when Constant is false.
type VariableDeclaration struct {
	Identifier string
	Constant   bool
	Value      Expression
}

func (v *VariableDeclaration) Kind() NodeKind { return VariableDeclarationKind }
func (v *VariableDeclaration) is_Statement()  {}

type FunctionDeclaration struct {
	Name       string
	Parameters []string
	Body       []Statement
}

func (v *FunctionDeclaration) Kind() NodeKind { return FunctionDeclarationKind }
func (v *FunctionDeclaration) is_Statement()  {}

// IfStatement has an empty Alternate when there is no else clause. An else-if
// chain is an Alternate holding a single IfStatement.
type IfStatement struct {
	Condition  *CompareExpression
	Consequent []Statement
	Alternate  []Statement
}

func (v *IfStatement) Kind() NodeKind { return IfStatementKind }
func (v *IfStatement) is_Statement()  {}

// AssignmentExpression accepts any Assignee syntactically; only identifiers
// can be assigned to when it is evaluated.
type AssignmentExpression struct {
	Assignee Expression
	Value    Expression
}

func (v *AssignmentExpression) Kind() NodeKind { return AssignmentExpressionKind }
func (v *AssignmentExpression) is_Statement()  {}
func (v *AssignmentExpression) is_Expression() {}

type BinaryExpression struct {
	Left     Expression
	Right    Expression
	Operator string
}

func (v *BinaryExpression) Kind() NodeKind { return BinaryExpressionKind }
func (v *BinaryExpression) is_Statement()  {}
func (v *BinaryExpression) is_Expression() {}

type CompareExpression struct {
	Left     Expression
	Right    Expression
	Operator string
}

func (v *CompareExpression) Kind() NodeKind { return CompareExpressionKind }
func (v *CompareExpression) is_Statement()  {}
func (v *CompareExpression) is_Expression() {}

type CallExpression struct {
	Caller    Expression
	Arguments []Expression
}

func (v *CallExpression) Kind() NodeKind { return CallExpressionKind }
func (v *CallExpression) is_Statement()  {}
func (v *CallExpression) is_Expression() {}

// MemberExpression is obj.Property when Computed is false and obj[Property]
// otherwise.
type MemberExpression struct {
	Object   Expression
	Property Expression
	Computed bool
}

func (v *MemberExpression) Kind() NodeKind { return MemberExpressionKind }
func (v *MemberExpression) is_Statement()  {}
func (v *MemberExpression) is_Expression() {}

type Identifier struct {
	Symbol string
}

func (v *Identifier) Kind() NodeKind { return IdentifierKind }
func (v *Identifier) is_Statement()  {}
func (v *Identifier) is_Expression() {}

type NumericLiteral struct {
	Value float64
}

func (v *NumericLiteral) Kind() NodeKind { return NumericLiteralKind }
func (v *NumericLiteral) is_Statement()  {}
func (v *NumericLiteral) is_Expression() {}

type StringLiteral struct {
	Value string
}

func (v *StringLiteral) Kind() NodeKind { return StringLiteralKind }
func (v *StringLiteral) is_Statement()  {}
func (v *StringLiteral) is_Expression() {}

type ObjectLiteral struct {
	Properties []*Property
}

func (v *ObjectLiteral) Kind() NodeKind { return ObjectLiteralKind }
func (v *ObjectLiteral) is_Statement()  {}
func (v *ObjectLiteral) is_Expression() {}

// Property with a nil Value is shorthand for Key: Key.
type Property struct {
	Key   string
	Value Expression
}

func (v *Property) Kind() NodeKind { return PropertyKind }
func (v *Property) is_Statement()  {}
func (v *Property) is_Expression() {}
