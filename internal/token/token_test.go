package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupLine(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"", BLANK},
		{"   ", BLANK},
		{"\t \r", BLANK},
		{"# comment", COMMENT},
		{"    #indented comment", COMMENT},
		{"#", COMMENT},
		{"key: value", TEXT},
		{"key: value # not a comment", TEXT},
		{"  block:", TEXT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := LookupLine(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestIsTrivia(t *testing.T) {
	require.True(t, Token{Type: COMMENT}.IsTrivia())
	require.True(t, Token{Type: BLANK}.IsTrivia())
	require.False(t, Token{Type: TEXT}.IsTrivia())
	require.False(t, Token{Type: EOF}.IsTrivia())
}
