package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"only spaces", "  ", 0},
		{"mixed whitespace only", " \t\n\r ", 0},
		{"runs of spaces", "a b  c", 3},
		{"leading and trailing", "  hello world  ", 2},
		{"newlines and tabs", "one\ttwo\nthree\r\nfour", 4},
		{"punctuation sticks to words", "hello, world!", 2},
		{"single word", "word", 1},
		{"unicode", "héllo wörld ☃", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.content))
		})
	}
}

func TestReplaceAll(t *testing.T) {
	got, err := ReplaceAll("aXbXc", "X", "-")
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", got)
}

func TestReplaceAllEmptyPatternIsNoOp(t *testing.T) {
	for _, replacement := range []string{"", "x", "$1"} {
		got, err := ReplaceAll("keep me", "", replacement)
		require.NoError(t, err)
		assert.Equal(t, "keep me", got)
	}
}

func TestReplaceAllUsesRegexSemantics(t *testing.T) {
	got, err := ReplaceAll("a.b.c", ".", "-")
	require.NoError(t, err)
	assert.Equal(t, "-----", got)

	got, err = ReplaceAll("2024-01-15", `(\d+)-(\d+)-(\d+)`, "$3/$2/$1")
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024", got)

	got, err = ReplaceAll("cat  dog", `\s+`, " ")
	require.NoError(t, err)
	assert.Equal(t, "cat dog", got)
}

func TestReplaceAllInvalidPattern(t *testing.T) {
	got, err := ReplaceAll("a(b", "(", "x")

	var patternErr *PatternError
	require.ErrorAs(t, err, &patternErr)
	assert.Equal(t, "(", patternErr.Pattern)
	assert.Equal(t, "a(b", got)
}

func TestReplaceAllLiteral(t *testing.T) {
	assert.Equal(t, "a-b-c", ReplaceAllLiteral("a.b.c", ".", "-"))
	assert.Equal(t, "$1 costs $1", ReplaceAllLiteral("x costs x", "x", "$1"))
	assert.Equal(t, "same", ReplaceAllLiteral("same", "", "y"))
}

func TestReplaceRequestApply(t *testing.T) {
	got, err := ReplaceRequest{Find: "a+", Replace: "_"}.Apply("caaab a+")
	require.NoError(t, err)
	assert.Equal(t, "c_b _+", got)

	got, err = ReplaceRequest{Find: "a+", Replace: "_", Literal: true}.Apply("caaab a+")
	require.NoError(t, err)
	assert.Equal(t, "caaab _", got)

	_, err = ReplaceRequest{Find: "[", Replace: "_"}.Apply("[x]")
	assert.Error(t, err)
}
