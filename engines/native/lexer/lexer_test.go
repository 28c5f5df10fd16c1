package lexer

import (
	"strings"
	"testing"

	"github.com/robbyt/go-polyquad/platform/calcerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "arithmetic", input: "2+3*4", want: []string{"2", "+", "3", "*", "4"}},
		{name: "whitespace skipped", input: " 2 +\t3 ", want: []string{"2", "+", "3"}},
		{name: "decimal literal", input: "0.25*x", want: []string{"0.25", "*", "x"}},
		{name: "number then identifier", input: "2x", want: []string{"2", "*", "x"}},
		{name: "number then group", input: "2(x+1)", want: []string{"2", "*", "(", "x", "+", "1", ")"}},
		{name: "variable then group", input: "x(x+1)", want: []string{"x", "*", "(", "x", "+", "1", ")"}},
		{name: "implicit across space", input: "2 pi", want: []string{"2", "*", "pi"}},
		{name: "function call", input: "sin(x)", want: []string{"sin", "(", "x", ")"}},
		{name: "function after number", input: "3sin(x)", want: []string{"3", "*", "sin", "(", "x", ")"}},
		{name: "root", input: "root(3, -8)", want: []string{"root", "(", "3", ",", "-", "8", ")"}},
		{name: "identifier with digits", input: "x_1 + a2", want: []string{"x_1", "+", "a2"}},
		{name: "power", input: "x^2", want: []string{"x", "^", "2"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(tokens))
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	t.Parallel()

	tokens, err := Tokenize("2x+sin(x),")
	require.NoError(t, err)
	require.Len(t, tokens, 9)

	assert.Equal(t, Number, tokens[0].Kind)
	assert.Equal(t, Operator, tokens[1].Kind)
	assert.True(t, tokens[1].Implicit)
	assert.Equal(t, Identifier, tokens[2].Kind)
	assert.Equal(t, Operator, tokens[3].Kind)
	assert.False(t, tokens[3].Implicit)
	assert.Equal(t, Identifier, tokens[4].Kind)
	assert.Equal(t, Delimiter, tokens[5].Kind)
	assert.Equal(t, Delimiter, tokens[8].Kind)
	assert.Equal(t, 3, tokens[4].Pos)
}

func TestTokenize_NoImplicitAfterFunction(t *testing.T) {
	t.Parallel()

	for _, name := range FunctionNames() {
		t.Run(name, func(t *testing.T) {
			tokens, err := Tokenize(name + "(x)")
			require.NoError(t, err)
			for _, tok := range tokens {
				assert.False(t, tok.Implicit, "unexpected implicit token in %v", tokens)
			}
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		pos   int
		char  string
	}{
		{name: "hash", input: "x#2", pos: 1, char: "'#'"},
		{name: "percent", input: "5%2", pos: 1, char: "'%'"},
		{name: "non ascii", input: "π", pos: 0, char: "'π'"},
		{name: "non ascii after ascii", input: "2×x", pos: 1, char: "'×'"},
		{name: "equals", input: "x = 1", pos: 2, char: "'='"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, calcerr.ErrLex)
			assert.Contains(t, err.Error(), "unexpected character "+tt.char)

			var cerr *calcerr.Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.pos, cerr.Position)
		})
	}
}

func TestJoin_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2+3*4",
		"x^3 - 2*x^2 + 3*x - 5",
		"2x(x+1)",
		"root(3, -8) / sqrt(x)",
		"  exp( -x ^ 2 ) ",
		"3.5pi e",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize(input)
			require.NoError(t, err)
			stripped := strings.Join(strings.Fields(input), "")
			assert.Equal(t, stripped, Join(tokens))
		})
	}
}
