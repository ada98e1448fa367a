package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String())
	}
}

func TestLookupIdent(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		expect := k >= kwStart && k <= kwEnd
		val := LookupIdent(kindNames[k])
		if expect {
			require.Equal(t, k, val)
		} else {
			require.Equal(t, IDENTIFIER, val)
		}
	}
}

func TestGoString(t *testing.T) {
	require.Equal(t, "';'", SEMICOLON.GoString())
	require.Equal(t, "end of file", EOF.GoString())
	require.Equal(t, "and", AND.GoString())
}

func TestTokenStringFormat(t *testing.T) {
	tok := Token{Kind: IDENTIFIER, Lexeme: "x", Line: 3}
	require.Equal(t, "x", tok.String())

	eof := Token{Kind: EOF, Line: 3}
	require.Equal(t, "end", eof.String())
}
