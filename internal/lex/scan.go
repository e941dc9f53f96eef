package lex

import (
	"errors"
	"io"
	"iter"
	"os"

	"github.com/ian-shakespeare/libcc/pkg/chars"
)

// maxTokenLen bounds a single identifier or literal run.
const maxTokenLen = 4096

type scanner struct {
	input *chars.Reader
}

func NewScanner(input io.Reader) *scanner {
	return &scanner{
		chars.NewReader(input),
	}
}

// NextToken returns the next token in the source, or io.EOF once the source
// is exhausted.
func (s *scanner) NextToken() (Token, error) {
	for {
		c, err := s.getNextCharacter()
		if err != nil {
			return Token{}, err
		}

		switch {
		case chars.IsSpace(c):
			continue
		case chars.IsAlpha(c):
			return s.scanWord(c)
		case chars.IsDigit(c):
			return s.scanNumber(c)
		}

		switch c {
		case '(':
			return Token{Kind: LPAREN_TOKEN, Text: "("}, nil
		case ')':
			return Token{Kind: RPAREN_TOKEN, Text: ")"}, nil
		case '{':
			return Token{Kind: LBRACE_TOKEN, Text: "{"}, nil
		case '}':
			return Token{Kind: RBRACE_TOKEN, Text: "}"}, nil
		case ';':
			return Token{Kind: SEMICOLON_TOKEN, Text: ";"}, nil
		default:
			return Token{Kind: UNKNOWN_TOKEN, Text: string(c)}, nil
		}
	}
}

// Tokens iterates the source token by token. Iteration ends at end of input;
// any other error is yielded alongside a zero token.
func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				break
			}
			if !yield(token, err) {
				return
			}
		}
	}
}

// Scan consumes input to completion and returns its tokens in source order.
// On failure no partial stream is returned.
func Scan(input io.Reader) (TokenStream, error) {
	tokens := TokenStream{}
	for token, err := range NewScanner(input).Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// ScanFile lexes the file at path. An unopenable or unreadable file surfaces
// as ErrSourceUnavailable.
func ScanFile(path string) (TokenStream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewSourceError(err)
	}
	defer file.Close()

	return Scan(file)
}

func (s *scanner) getNextCharacter() (byte, error) {
	c, err := s.input.ReadChar()
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, NewSourceError(err)
	}
	return c, err
}

// scanWord consumes an alphanumeric run and classifies it as a keyword or an
// identifier. The character that ends the run is pushed back so the main
// loop sees it on the next iteration.
func (s *scanner) scanWord(startingChars ...byte) (Token, error) {
	word := startingChars

	for {
		c, err := s.getNextCharacter()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Token{}, err
		}

		if !chars.IsAlnum(c) {
			if err := s.input.Unread(); err != nil {
				return Token{}, NewSourceError(err)
			}
			break
		}

		word = append(word, c)
		if len(word) > maxTokenLen {
			return Token{}, NewTokenTooLongError(len(word))
		}
	}

	switch string(word) {
	case "int":
		return Token{Kind: INT_KEYWORD_TOKEN, Text: "int"}, nil
	case "return":
		return Token{Kind: RETURN_KEYWORD_TOKEN, Text: "return"}, nil
	default:
		return Token{Kind: IDENTIFIER_TOKEN, Text: string(word)}, nil
	}
}

// scanNumber consumes a digit run, pushing back the character that ends it.
func (s *scanner) scanNumber(startingChars ...byte) (Token, error) {
	word := startingChars

	for {
		c, err := s.getNextCharacter()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Token{}, err
		}

		if !chars.IsDigit(c) {
			if err := s.input.Unread(); err != nil {
				return Token{}, NewSourceError(err)
			}
			break
		}

		word = append(word, c)
		if len(word) > maxTokenLen {
			return Token{}, NewTokenTooLongError(len(word))
		}
	}

	return Token{Kind: INT_LITERAL_TOKEN, Text: string(word)}, nil
}
