package lexer

import (
	"bufio"
	"io"
	"unicode"

	"github.com/pontaoski/bussin/errors"
	"github.com/pontaoski/bussin/types"
	"github.com/ztrue/tracerr"
)

var keywords = map[string]types.TokenKind{
	"skibidi": types.LET,
	"grimace": types.CONST,
	"pluh":    types.FN,
	"fanum":   types.IF,
	"tax":     types.ELSE,
}

var punctuation = map[rune]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'[': types.LBRACKET,
	']': types.RBRACKET,
	',': types.COMMA,
	':': types.COLON,
	';': types.SEMICOLON,
	'.': types.PERIOD,
	'+': types.BINARYOP,
	'-': types.BINARYOP,
	'*': types.BINARYOP,
	'/': types.BINARYOP,
	'%': types.BINARYOP,
}

// Keyword reports the token kind of a reserved word.
func Keyword(ident string) (types.TokenKind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}

type Lexer struct {
	pos    types.Position
	prev   types.Position
	reader *bufio.Reader
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 1, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

func (l *Lexer) read() (rune, error) {
	r, size, err := l.reader.ReadRune()
	if err != nil {
		return r, err
	}

	l.prev = l.pos
	l.pos.Offset += size
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}

	return r, nil
}

// backup undoes the last read. Only one rune can be backed up.
func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos = l.prev
}

func (l *Lexer) peekByte() (byte, bool) {
	byt, err := l.reader.Peek(1)
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}
	return byt[0], true
}

// next consumes the upcoming byte if it is want.
func (l *Lexer) next(want byte) bool {
	byt, ok := l.peekByte()
	if !ok || byt != want {
		return false
	}
	if _, err := l.read(); err != nil {
		panic(err)
	}
	return true
}

func (l *Lexer) token(kind types.TokenKind, value string, from types.Position) types.Token {
	return types.Token{
		Kind:     kind,
		Value:    value,
		Location: types.Span{From: from, To: l.pos},
	}
}

func isAlpha(r rune) bool {
	return unicode.ToUpper(r) != unicode.ToLower(r)
}

func isDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (l *Lexer) lexIdent(from types.Position) types.Token {
	var lit []rune

	for {
		r, err := l.read()
		if err != nil {
			if err == io.EOF {
				break
			}
			panic(err)
		}

		if !isAlpha(r) {
			l.backup()
			break
		}
		lit = append(lit, r)
	}

	if kind, ok := Keyword(string(lit)); ok {
		return l.token(kind, string(lit), from)
	}
	return l.token(types.IDENT, string(lit), from)
}

func (l *Lexer) digits(lit []byte) []byte {
	for {
		byt, ok := l.peekByte()
		if !ok || !isDigit(byt) {
			return lit
		}
		l.next(byt)
		lit = append(lit, byt)
	}
}

func (l *Lexer) lexNumber(first byte, from types.Position) types.Token {
	lit := l.digits([]byte{first})
	if l.next('.') {
		lit = l.digits(append(lit, '.'))
	}

	return l.token(types.NUMBER, string(lit), from)
}

// lexString is called past the opening quote. An unterminated string runs
// to the end of the input.
func (l *Lexer) lexString(from types.Position) types.Token {
	var lit []rune

	for {
		r, err := l.read()
		if err != nil {
			if err == io.EOF {
				break
			}
			panic(err)
		}

		if r == '"' {
			break
		}
		lit = append(lit, r)
	}

	return l.token(types.STRING, string(lit), from)
}

// Lex returns the next token, or panics with an errors.UnknownCharacter.
// Once the input is exhausted every call returns an EOF token.
func (l *Lexer) Lex() types.Token {
	for {
		from := l.pos
		r, err := l.read()
		if err != nil {
			if err == io.EOF {
				return types.Token{Kind: types.EOF, Location: types.Span{From: from, To: from}}
			}
			panic(err)
		}

		if isWhitespace(r) {
			continue
		}

		switch r {
		case '=':
			if l.next('=') {
				return l.token(types.EQ, "==", from)
			}
			return l.token(types.EQUALS, "=", from)
		case '<':
			if l.next('=') {
				return l.token(types.LTEQ, "<=", from)
			}
			return l.token(types.LT, "<", from)
		case '>':
			if l.next('=') {
				return l.token(types.GTEQ, ">=", from)
			}
			return l.token(types.GT, ">", from)
		case '!':
			if l.next('=') {
				return l.token(types.NOTEQ, "!=", from)
			}
		case '"':
			return l.lexString(from)
		}

		if kind, ok := punctuation[r]; ok {
			return l.token(kind, string(r), from)
		}

		switch {
		case r < unicode.MaxASCII && isDigit(byte(r)):
			return l.lexNumber(byte(r), from)
		case isAlpha(r):
			l.backup()
			return l.lexIdent(from)
		}

		panic(errors.UnknownCharacter{
			Char:     r,
			Location: types.SingleCharSpan(from, r),
		})
	}
}

// Tokenize lexes the whole input. The returned slice always ends with an
// EOF token; on error no tokens are returned.
func Tokenize(reader io.Reader, filename string) (tokens []types.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				tokens = nil
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	l := NewLexer(reader, filename)
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			return tokens, nil
		}
	}
}
