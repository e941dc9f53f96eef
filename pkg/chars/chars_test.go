package chars_test

import (
	"io"
	"strings"
	"testing"

	"github.com/ian-shakespeare/libcc/pkg/chars"
	"github.com/stretchr/testify/assert"
)

func TestReadChar(t *testing.T) {
	t.Parallel()

	input := "int x;"
	r := chars.NewReader(strings.NewReader(input))

	for i := 0; i < len(input); i++ {
		c, err := r.ReadChar()
		assert.NoError(t, err)
		assert.Equal(t, input[i], c)
	}

	_, err := r.ReadChar()
	assert.ErrorIs(t, err, io.EOF)
}

func TestUnread(t *testing.T) {
	t.Parallel()

	r := chars.NewReader(strings.NewReader("ab"))

	c, err := r.ReadChar()
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), c)

	assert.NoError(t, r.Unread())

	c, err = r.ReadChar()
	assert.NoError(t, err)
	assert.Equal(t, byte('a'), c)

	c, err = r.ReadChar()
	assert.NoError(t, err)
	assert.Equal(t, byte('b'), c)
}

func TestClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pred    func(byte) bool
		matches string
		misses  string
	}{
		{"isSpace", chars.IsSpace, " \t\n\r\v\f", "a0(_"},
		{"isAlpha", chars.IsAlpha, "azAZmQ", "09 ;_"},
		{"isDigit", chars.IsDigit, "0159", "azAZ _"},
		{"isAlnum", chars.IsAlnum, "azAZ09", " ;(_"},
	}

	for _, input := range tests {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			for i := 0; i < len(input.matches); i++ {
				assert.True(t, input.pred(input.matches[i]), "expected match for %q", input.matches[i])
			}
			for i := 0; i < len(input.misses); i++ {
				assert.False(t, input.pred(input.misses[i]), "expected miss for %q", input.misses[i])
			}
		})
	}
}
