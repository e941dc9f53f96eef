package lex_test

import (
	"testing"

	"github.com/ian-shakespeare/libcc/internal/lex"
	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		token  lex.Token
		expect string
	}{
		{"keyword", lex.Token{Kind: lex.INT_KEYWORD_TOKEN, Text: "int"}, "IntKeyword int"},
		{"identifier", lex.Token{Kind: lex.IDENTIFIER_TOKEN, Text: "main"}, "Identifier main"},
		{"literal", lex.Token{Kind: lex.INT_LITERAL_TOKEN, Text: "42"}, "IntLiteral 42"},
		{"punctuation", lex.Token{Kind: lex.SEMICOLON_TOKEN, Text: ";"}, "Semicolon ;"},
		{"unknown", lex.Token{Kind: lex.UNKNOWN_TOKEN, Text: "@"}, "Unknown @"},
	}

	for _, input := range tests {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, input.expect, input.token.String())
		})
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ReturnKeyword", lex.RETURN_KEYWORD_TOKEN.String())
	assert.Equal(t, "TokenKind(99)", lex.TokenKind(99).String())
}
