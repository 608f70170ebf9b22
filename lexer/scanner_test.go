package lexer

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerDiagnostics(t *testing.T) {
	var reported []Diagnostic

	s := New([]byte("1 @\n2 #\n\"open"))
	s.Error = func(d Diagnostic) {
		reported = append(reported, d)
	}

	tokens := s.Scan()

	require.Len(t, reported, 3)
	assert.Equal(t, reported, s.Diagnostics())

	assert.True(t, errors.Is(reported[0], ErrIllegalCharacter))
	assert.Equal(t, 1, reported[0].Line)
	assert.Equal(t, `illegal character '@' at line 1`, reported[0].Error())

	assert.True(t, errors.Is(reported[1], ErrIllegalCharacter))
	assert.Equal(t, 2, reported[1].Line)

	assert.True(t, errors.Is(reported[2], ErrUnterminatedString))
	assert.Equal(t, 3, reported[2].Line)

	// scanning continues past every error
	require.Len(t, tokens, 4)
	assert.Equal(t, TokenNumber, tokens[0].Type())
	assert.Equal(t, TokenNumber, tokens[1].Type())
	assert.Equal(t, TokenString, tokens[2].Type())
	assert.Equal(t, `"open`, tokens[2].Text())
	assert.Equal(t, NewStringLiteral("open"), tokens[2].Literal())
	assert.Equal(t, TokenEOF, tokens[3].Type())
}

func TestScannerUnicodeIllegal(t *testing.T) {
	s := New([]byte("1 é 2"))
	s.Error = func(Diagnostic) {}

	tokens := s.Scan()

	require.Len(t, s.Diagnostics(), 1)
	assert.Equal(t, `illegal character 'é' at line 1`, s.Diagnostics()[0].Error())
	assert.Len(t, tokens, 3)
}

func TestScannerUnterminatedComment(t *testing.T) {
	tokens, err := Tokenize([]byte("1 /* open\n/* nested */ */ 2 /* never\nclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedComment))

	types := []TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type())
	}
	assert.Equal(t, []TokenType{TokenNumber, TokenStar, TokenSlash, TokenNumber, TokenEOF}, types)
	assert.Equal(t, 3, tokens[len(tokens)-1].Line())
}

func TestScannerRescan(t *testing.T) {
	s := New([]byte("a\nb @"))
	s.Error = func(Diagnostic) {}

	first := s.Scan()
	second := s.Scan()

	assert.Equal(t, first, second)
	assert.Len(t, s.Diagnostics(), 1)
}

func TestNumberRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		var lexeme string
		switch i % 3 {
		case 0:
			lexeme = strconv.Itoa(rnd.Intn(1 << 30))
		case 1:
			lexeme = strconv.Itoa(rnd.Intn(1000)) + "." + strconv.Itoa(rnd.Intn(100000))
		default:
			lexeme = "0" + strconv.Itoa(rnd.Intn(100))
		}

		tokens, err := Tokenize([]byte(lexeme))
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		want, err := strconv.ParseFloat(lexeme, 64)
		require.NoError(t, err)

		assert.Equal(t, TokenNumber, tokens[0].Type())
		assert.Equal(t, lexeme, tokens[0].Text())
		assert.Equal(t, want, tokens[0].Literal().Value())
	}
}

func TestNumberOutOfRange(t *testing.T) {
	big := make([]byte, 400)
	for i := range big {
		big[i] = '9'
	}

	tokens, err := Tokenize(big)
	require.NoError(t, err)
	assert.Equal(t, TokenNumber, tokens[0].Type())
	assert.Equal(t, string(big), tokens[0].Text())
}

func TestStringLiteralPayload(t *testing.T) {
	testCases := []struct {
		In    string
		Value string
		Line  int
	}{
		{`"abc"`, "abc", 1},
		{"\"a\nb\"", "a\nb", 2},
		{"\"\n\n\n\"", "\n\n\n", 4},
		{`"// not a comment"`, "// not a comment", 1},
		{`"if"`, "if", 1},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize([]byte(tc.In))
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		assert.Equal(t, TokenString, tokens[0].Type())
		assert.Equal(t, tc.In, tokens[0].Text())
		assert.Equal(t, tc.Value, tokens[0].Literal().Value())
		assert.Equal(t, tc.Line, tokens[0].Line())
	}
}

func TestScanInvariants(t *testing.T) {
	alphabet := []byte("(){},.-+;*/!=<>?: \t\r\n\"abcXYZ_0123456789.@#$é")
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		in := make([]byte, rnd.Intn(64))
		for j := range in {
			in[j] = alphabet[rnd.Intn(len(alphabet))]
		}

		s := New(in)
		s.Error = func(Diagnostic) {}
		tokens := s.Scan()

		require.NotEmpty(t, tokens)
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type(), "input: %q", in)

		for j := 1; j < len(tokens); j++ {
			assert.GreaterOrEqual(t, tokens[j].Line(), tokens[j-1].Line(), "input: %q", in)
			assert.NotEqual(t, TokenEOF, tokens[j-1].Type())
		}
		assert.GreaterOrEqual(t, tokens[0].Line(), 1)
	}
}
