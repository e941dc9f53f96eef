package lex

import "fmt"

type TokenKind int

const (
	INT_KEYWORD_TOKEN    TokenKind = 0
	RETURN_KEYWORD_TOKEN TokenKind = 1
	IDENTIFIER_TOKEN     TokenKind = 2
	LPAREN_TOKEN         TokenKind = 3
	RPAREN_TOKEN         TokenKind = 4
	LBRACE_TOKEN         TokenKind = 5
	RBRACE_TOKEN         TokenKind = 6
	INT_LITERAL_TOKEN    TokenKind = 7
	SEMICOLON_TOKEN      TokenKind = 8
	UNKNOWN_TOKEN        TokenKind = 9
)

var kindNames = map[TokenKind]string{
	INT_KEYWORD_TOKEN:    "IntKeyword",
	RETURN_KEYWORD_TOKEN: "ReturnKeyword",
	IDENTIFIER_TOKEN:     "Identifier",
	LPAREN_TOKEN:         "LParen",
	RPAREN_TOKEN:         "RParen",
	LBRACE_TOKEN:         "LBrace",
	RBRACE_TOKEN:         "RBrace",
	INT_LITERAL_TOKEN:    "IntLiteral",
	SEMICOLON_TOKEN:      "Semicolon",
	UNKNOWN_TOKEN:        "Unknown",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified lexical unit. Text is the exact source text that
// produced it. A Token is never modified after the scanner emits it.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Kind, t.Text)
}

// TokenStream holds the tokens of one source in source order.
type TokenStream []Token
