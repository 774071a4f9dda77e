package parser

import (
	"io"
	"strconv"

	"github.com/pontaoski/bussin/ast"
	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/lexer"
	"github.com/pontaoski/bussin/types"
	"github.com/ztrue/tracerr"
)

// MaxNestingDepth bounds how deeply blocks and expressions may nest.
const MaxNestingDepth = 1000

var (
	compareOperators = []types.TokenKind{types.LT, types.GT, types.LTEQ, types.GTEQ, types.EQ, types.NOTEQ}
	primaryKinds     = []types.TokenKind{types.IDENT, types.NUMBER, types.STRING, types.LPAREN}
)

type Parser struct {
	tokens []types.Token
	ast    *ast.Program
	depth  int
}

// New returns a parser over a complete token stream as produced by
// lexer.Tokenize.
func New(tokens []types.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != types.EOF {
		tokens = append(tokens, types.Token{Kind: types.EOF})
	}
	return &Parser{tokens: tokens}
}

// ParseSource tokenizes and parses a whole source file.
func ParseSource(reader io.Reader, filename string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(reader, filename)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// Parse consumes the token stream. It stops at the first structural error;
// no partial program is returned.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				prog = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	p.ast = &ast.Program{}
	for !p.peekIs(types.EOF) {
		p.ast.Body = append(p.ast.Body, p.parseStatement())
	}

	return p.ast, nil
}

func (p *Parser) peek() types.Token {
	return p.tokens[0]
}

func (p *Parser) peekIs(k ...types.TokenKind) bool {
	token := p.peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

// lex never moves past the EOF token.
func (p *Parser) lex() types.Token {
	tok := p.tokens[0]
	if tok.Kind != types.EOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *Parser) lexExpecting(k types.TokenKind) types.Token {
	token := p.lex()
	if token.Kind == k {
		return token
	}

	panic(errors.ExpectedKindGotKind{
		Expected: k,
		Got:      token.Kind,
		Value:    token.Value,
		Location: token.Location,
	})
}

// nest records one level of nesting and returns the func that leaves it.
func (p *Parser) nest() func() {
	p.depth++
	if p.depth > MaxNestingDepth {
		panic(errors.NestingTooDeep{
			Limit:    MaxNestingDepth,
			Location: p.peek().Location,
		})
	}
	return func() { p.depth-- }
}

func (p *Parser) parseStatement() ast.Statement {
	defer p.nest()()

	switch p.peek().Kind {
	case types.LET, types.CONST:
		return p.parseVariableDeclaration()
	case types.FN:
		return p.parseFunctionDeclaration()
	case types.IF:
		return p.parseIfStatement()
	}
	return p.parseExpression()
}

// parseBlock should be called when the parser is before the opening brace.
func (p *Parser) parseBlock() []ast.Statement {
	var statements []ast.Statement

	p.lexExpecting(types.LBRACE)
	for !p.peekIs(types.EOF, types.RBRACE) {
		statements = append(statements, p.parseStatement())
	}
	p.lexExpecting(types.RBRACE)

	return statements
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	keyword := p.lex()
	constant := keyword.Kind == types.CONST
	name := p.lexExpecting(types.IDENT)

	if p.peekIs(types.SEMICOLON) {
		p.lex()
		if constant {
			panic(errors.MissingInitializer{
				Name:     name.Value,
				Location: types.Span{From: keyword.Location.From, To: name.Location.To},
			})
		}
		return &ast.VariableDeclaration{Identifier: name.Value}
	}

	p.lexExpecting(types.EQUALS)
	decl := &ast.VariableDeclaration{
		Identifier: name.Value,
		Constant:   constant,
		Value:      p.parseExpression(),
	}
	p.lexExpecting(types.SEMICOLON)

	return decl
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	p.lex()
	name := p.lexExpecting(types.IDENT)

	open := p.peek()
	var params []string
	for _, arg := range p.parseArguments() {
		ident, ok := arg.(*ast.Identifier)
		if !ok {
			panic(errors.InvalidParameter{
				Function: name.Value,
				Got:      arg.String(),
				Location: open.Location,
			})
		}
		params = append(params, ident.Symbol)
	}

	return &ast.FunctionDeclaration{
		Name:       name.Value,
		Parameters: params,
		Body:       p.parseBlock(),
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	p.lex()
	p.lexExpecting(types.LPAREN)
	start := p.peek()
	expr := p.parseExpression()
	cond, ok := expr.(*ast.CompareExpression)
	if !ok {
		panic(errors.ExpectedComparison{
			Got:      expr.String(),
			Location: start.Location,
		})
	}
	p.lexExpecting(types.RPAREN)

	stmt := &ast.IfStatement{
		Condition:  cond,
		Consequent: p.parseBlock(),
	}

	if p.peekIs(types.ELSE) {
		p.lex()
		if p.peekIs(types.IF) {
			stmt.Alternate = []ast.Statement{p.parseIfStatement()}
		} else {
			stmt.Alternate = p.parseBlock()
		}
	}

	return stmt
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignmentExpression()
}

func (p *Parser) parseAssignmentExpression() ast.Expression {
	defer p.nest()()

	left := p.parseObjectExpression()

	if p.peekIs(types.EQUALS) {
		p.lex()
		return &ast.AssignmentExpression{
			Assignee: left,
			Value:    p.parseAssignmentExpression(),
		}
	}

	return left
}

func (p *Parser) parseObjectExpression() ast.Expression {
	if !p.peekIs(types.LBRACE) {
		return p.parseCompareExpression()
	}

	p.lex()
	obj := &ast.ObjectLiteral{}

	for !p.peekIs(types.EOF, types.RBRACE) {
		key := p.lexExpecting(types.IDENT)

		if p.peekIs(types.COMMA) {
			p.lex()
			obj.Properties = append(obj.Properties, &ast.Property{Key: key.Value})
			continue
		} else if p.peekIs(types.RBRACE) {
			obj.Properties = append(obj.Properties, &ast.Property{Key: key.Value})
			continue
		}

		p.lexExpecting(types.COLON)
		obj.Properties = append(obj.Properties, &ast.Property{
			Key:   key.Value,
			Value: p.parseExpression(),
		})

		if !p.peekIs(types.RBRACE) {
			p.lexExpecting(types.COMMA)
		}
	}
	p.lexExpecting(types.RBRACE)

	return obj
}

func (p *Parser) parseCompareExpression() ast.Expression {
	left := p.parseAdditiveExpression()

	for p.peekIs(compareOperators...) {
		operator := p.lex().Value
		left = &ast.CompareExpression{
			Left:     left,
			Right:    p.parseAdditiveExpression(),
			Operator: operator,
		}
	}

	return left
}

func (p *Parser) peekOperator(operators ...string) bool {
	tok := p.peek()
	if tok.Kind != types.BINARYOP {
		return false
	}
	for _, op := range operators {
		if tok.Value == op {
			return true
		}
	}
	return false
}

func (p *Parser) parseAdditiveExpression() ast.Expression {
	left := p.parseMultiplicativeExpression()

	for p.peekOperator("+", "-") {
		operator := p.lex().Value
		left = &ast.BinaryExpression{
			Left:     left,
			Right:    p.parseMultiplicativeExpression(),
			Operator: operator,
		}
	}

	return left
}

func (p *Parser) parseMultiplicativeExpression() ast.Expression {
	left := p.parseCallMemberExpression()

	for p.peekOperator("*", "/", "%") {
		operator := p.lex().Value
		left = &ast.BinaryExpression{
			Left:     left,
			Right:    p.parseCallMemberExpression(),
			Operator: operator,
		}
	}

	return left
}

func (p *Parser) parseCallMemberExpression() ast.Expression {
	member := p.parseMemberExpression()

	if p.peekIs(types.LPAREN) {
		return p.parseCallExpression(member)
	}

	return member
}

func (p *Parser) parseCallExpression(caller ast.Expression) ast.Expression {
	var call ast.Expression = &ast.CallExpression{
		Caller:    caller,
		Arguments: p.parseArguments(),
	}

	if p.peekIs(types.LPAREN) {
		call = p.parseCallExpression(call)
	}

	return call
}

func (p *Parser) parseArguments() []ast.Expression {
	var args []ast.Expression

	p.lexExpecting(types.LPAREN)
	if !p.peekIs(types.RPAREN) {
		args = append(args, p.parseAssignmentExpression())
		for p.peekIs(types.COMMA) {
			p.lex()
			args = append(args, p.parseAssignmentExpression())
		}
	}
	p.lexExpecting(types.RPAREN)

	return args
}

func (p *Parser) parseMemberExpression() ast.Expression {
	object := p.parsePrimaryExpression()

	for p.peekIs(types.PERIOD, types.LBRACKET) {
		if p.lex().Kind == types.PERIOD {
			name := p.lexExpecting(types.IDENT)
			object = &ast.MemberExpression{
				Object:   object,
				Property: &ast.Identifier{Symbol: name.Value},
			}
			continue
		}

		property := p.parseExpression()
		p.lexExpecting(types.RBRACKET)
		object = &ast.MemberExpression{
			Object:   object,
			Property: property,
			Computed: true,
		}
	}

	return object
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	tok := p.lex()

	switch tok.Kind {
	case types.IDENT:
		return &ast.Identifier{Symbol: tok.Value}
	case types.NUMBER:
		// the lexer only produces digits and one point, so the only possible
		// error is a range error, which saturates to ±Inf
		parsed, _ := strconv.ParseFloat(tok.Value, 64)
		return &ast.NumericLiteral{Value: parsed}
	case types.STRING:
		return &ast.StringLiteral{Value: tok.Value}
	case types.LPAREN:
		value := p.parseExpression()
		p.lexExpecting(types.RPAREN)
		return value
	}

	panic(errors.ExpectedOneOfKindGotKind{
		Expected: primaryKinds,
		Got:      tok.Kind,
		Value:    tok.Value,
		Location: tok.Location,
	})
}
