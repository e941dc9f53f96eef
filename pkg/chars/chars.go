package chars

import (
	"bufio"
	"io"

	"github.com/ian-shakespeare/libcc/pkg/array"
)

// Reader pulls single-byte characters from an input and supports one
// character of pushback, the only lookahead the scanner needs.
type Reader struct {
	input *bufio.Reader
}

func NewReader(input io.Reader) *Reader {
	return &Reader{bufio.NewReader(input)}
}

// ReadChar returns the next character, or io.EOF at end of input.
func (r *Reader) ReadChar() (byte, error) {
	return r.input.ReadByte()
}

// Unread pushes the most recently read character back onto the input so the
// next ReadChar returns it again.
func (r *Reader) Unread() error {
	return r.input.UnreadByte()
}

var whitespaceChars = []byte{' ', '\t', '\n', '\r', '\v', '\f'}

// IsSpace returns true if the character is ASCII whitespace.
func IsSpace(c byte) bool {
	return array.Contains(whitespaceChars, c)
}

// IsAlpha returns true if the character is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsDigit returns true if the character is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum returns true if the character is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}
