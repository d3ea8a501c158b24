package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/strscript/pkg/compiler/lexer"
)

func TestScannerZeroAlloc(t *testing.T) {
	src := `my_var = string("this is a string"); print(my_var);`
	s := lexer.NewScanner(src)

	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			tok := s.Next()
			if tok.Kind == lexer.KindEOF || tok.Kind == lexer.KindError {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func TestTokenizeStatements(t *testing.T) {
	tokens, err := lexer.Tokenize(`my_var = string("this is a string"); print(my_var);`)
	require.NoError(t, err)

	expected := []struct {
		kind lexer.Kind
		text string
	}{
		{lexer.KindIdentifier, "my_var"},
		{lexer.KindEquals, ""},
		{lexer.KindKeyword, "string"},
		{lexer.KindLParen, ""},
		{lexer.KindString, "this is a string"},
		{lexer.KindRParen, ""},
		{lexer.KindSemicolon, ""},
		{lexer.KindIdentifier, "print"},
		{lexer.KindLParen, ""},
		{lexer.KindIdentifier, "my_var"},
		{lexer.KindRParen, ""},
		{lexer.KindSemicolon, ""},
		{lexer.KindEOF, ""},
	}

	require.Len(t, tokens, len(expected))
	for i, exp := range expected {
		assert.Equal(t, exp.kind, tokens[i].Kind, "token %d kind", i)
		assert.Equal(t, exp.text, tokens[i].Text, "token %d text", i)
	}
}

func TestTokenizeEmptySource(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t\r\n"} {
		tokens, err := lexer.Tokenize(src)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, lexer.KindEOF, tokens[0].Kind)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := lexer.Tokenize("a = string(\"x\");\n  print(a);")
	require.NoError(t, err)

	// "print" on line 2, column 3
	tok := tokens[7]
	require.Equal(t, "print", tok.Text)
	assert.Equal(t, uint32(2), tok.Line)
	assert.Equal(t, uint32(3), tok.Column)
	assert.Equal(t, uint32(19), tok.Offset)
	assert.Equal(t, "2:3", tok.Pos())
}

func TestTokenizeKeywordBoundaries(t *testing.T) {
	tests := []struct {
		src  string
		kind lexer.Kind
	}{
		{"string", lexer.KindKeyword},
		{"strings", lexer.KindIdentifier},
		{"String", lexer.KindIdentifier},
		{"_string", lexer.KindIdentifier},
		{"print", lexer.KindIdentifier},
		{"a1_b2", lexer.KindIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.src)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.kind, tokens[0].Kind)
			assert.Equal(t, tt.src, tokens[0].Text)
		})
	}
}

func TestTokenizeStringLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"Empty", `""`, ""},
		{"Spaces", `"  padded  "`, "  padded  "},
		{"Punctuation", `"a = string(b);"`, "a = string(b);"},
		{"Backslash Is Literal", `"a\n"`, `a\n`},
		{"Multiline", "\"one\ntwo\"", "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.src)
			require.NoError(t, err)
			require.Equal(t, lexer.KindString, tokens[0].Kind)
			assert.Equal(t, tt.want, tokens[0].Text)
		})
	}
}

func TestTokenizeMultilineLiteralAdvancesLine(t *testing.T) {
	tokens, err := lexer.Tokenize("\"a\nb\" x")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tokens[0].Line)
	assert.Equal(t, uint32(2), tokens[1].Line)
	assert.Equal(t, uint32(4), tokens[1].Column)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   error
		line   uint32
		column uint32
	}{
		{"Unterminated Literal", `a = string("x);`, lexer.ErrUnterminatedString, 1, 12},
		{"Unterminated At End", `"`, lexer.ErrUnterminatedString, 1, 1},
		{"Illegal Operator", `a + b`, lexer.ErrIllegalCharacter, 1, 3},
		{"Illegal Digit Start", `1abc`, lexer.ErrIllegalCharacter, 1, 1},
		{"Illegal On Second Line", "a = string(\"x\");\n#", lexer.ErrIllegalCharacter, 2, 1},
		{"Non ASCII", `café`, lexer.ErrIllegalCharacter, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.src)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *lexer.LexError
			require.True(t, errors.As(err, &lexErr))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.line, lexErr.Line)
			assert.Equal(t, tt.column, lexErr.Column)
		})
	}
}

func TestScannerStaysFailed(t *testing.T) {
	s := lexer.NewScanner(`@ a`)
	first := s.Next()
	second := s.Next()

	assert.Equal(t, lexer.KindError, first.Kind)
	assert.Equal(t, lexer.KindError, second.Kind)
	assert.ErrorIs(t, s.Err(), lexer.ErrIllegalCharacter)
	assert.True(t, strings.Contains(s.Err().Error(), `'@'`))

	s.Reset(`a`)
	assert.NoError(t, s.Err())
	assert.Equal(t, lexer.KindIdentifier, s.Next().Kind)
}

func TestTokenizeLargeSource(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5000; i++ {
		b.WriteString(`v = string("0123456789");`)
	}

	tokens, err := lexer.Tokenize(b.String())
	require.NoError(t, err)
	assert.Len(t, tokens, 5000*7+1)
}
