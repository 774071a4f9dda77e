package types

import (
	"fmt"
	"unicode/utf8"
)

// Position is a point in a source file. Offset is a byte offset into the
// source, Column counts runes from 1.
type Position struct {
	Line     int
	Column   int
	Offset   int
	Filename string
}

// Span covers From up to, but not including, To.
type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	STRING
	NUMBER
	IDENT

	EQUALS
	LT
	GT
	EQ
	NOTEQ
	LTEQ
	GTEQ

	COMMA
	COLON
	PERIOD
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	BINARYOP

	LET
	CONST
	FN
	IF
	ELSE
)

var kindNames = map[TokenKind]string{
	EOF:       "EOF",
	STRING:    "STRING",
	NUMBER:    "NUMBER",
	IDENT:     "IDENT",
	EQUALS:    "EQUALS",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOTEQ:     "NOTEQ",
	LTEQ:      "LTEQ",
	GTEQ:      "GTEQ",
	COMMA:     "COMMA",
	COLON:     "COLON",
	PERIOD:    "PERIOD",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	LBRACKET:  "LBRACKET",
	RBRACKET:  "RBRACKET",
	BINARYOP:  "BINARYOP",
	LET:       "LET",
	CONST:     "CONST",
	FN:        "FN",
	IF:        "IF",
	ELSE:      "ELSE",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

// SingleCharSpan is the span of the single rune r starting at p.
func SingleCharSpan(p Position, r rune) Span {
	to := p
	to.Column++
	to.Offset += utf8.RuneLen(r)
	return Span{p, to}
}

type Token struct {
	Kind     TokenKind
	Value    string
	Location Span
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}
