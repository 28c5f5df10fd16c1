// Package lexer splits a single-variable math expression into tokens.
//
// Besides the literal tokens of the source, the lexer inserts implicit
// multiplication markers so that "2x", "2(x+1)" and "x(x+1)" read as
// products. Inserted tokens carry Implicit=true and never correspond to
// source text.
package lexer

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// Kind classifies a token.
type Kind int

const (
	Number Kind = iota + 1
	Identifier
	Operator
	Delimiter
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Identifier:
		return "identifier"
	case Operator:
		return "operator"
	case Delimiter:
		return "delimiter"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a classified lexeme.
type Token struct {
	Kind     Kind
	Text     string
	Pos      int  // byte offset of the lexeme in the source
	Implicit bool // inserted multiplication, not present in the source
}

func (t Token) String() string {
	if t.Implicit {
		return "implicit(*)"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Is reports whether t is a non-number token with the given text.
func (t Token) Is(text string) bool {
	return t.Kind != Number && t.Text == text
}

// functionNames never get an implicit multiplication after them.
var functionNames = []string{"sin", "cos", "tan", "sqrt", "log", "ln", "exp", "abs", "root"}

// IsFunctionName reports whether name is a reserved function identifier.
func IsFunctionName(name string) bool {
	return slices.Contains(functionNames, name)
}

// FunctionNames returns the reserved function identifiers.
func FunctionNames() []string {
	return slices.Clone(functionNames)
}

// Tokenize scans text left to right and returns its tokens. It fails with a
// calcerr.ErrLex error on the first character that cannot start a token.
func Tokenize(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text))
	i := 0
	for i < len(text) {
		ch := text[i]
		switch {
		case isSpace(ch):
			i++

		case isDigit(ch) || ch == '.':
			start := i
			for i < len(text) && (isDigit(text[i]) || text[i] == '.') {
				i++
			}
			tokens = append(tokens, Token{Kind: Number, Text: text[start:i], Pos: start})
			tokens = appendImplicit(tokens, text, i)

		case isLetter(ch):
			start := i
			for i < len(text) && (isLetter(text[i]) || isDigit(text[i]) || text[i] == '_') {
				i++
			}
			name := text[start:i]
			tokens = append(tokens, Token{Kind: Identifier, Text: name, Pos: start})
			if !IsFunctionName(name) {
				tokens = appendImplicit(tokens, text, i)
			}

		case strings.IndexByte("+-*/^", ch) >= 0:
			tokens = append(tokens, Token{Kind: Operator, Text: string(ch), Pos: i})
			i++

		case strings.IndexByte("(),", ch) >= 0:
			tokens = append(tokens, Token{Kind: Delimiter, Text: string(ch), Pos: i})
			i++

		default:
			r, _ := utf8.DecodeRuneInString(text[i:])
			return nil, calcerr.Lex(i, fmt.Sprintf("unexpected character %q", r))
		}
	}
	return tokens, nil
}

// appendImplicit adds a multiplication marker when the next significant
// character after offset starts a literal, an identifier or a group.
func appendImplicit(tokens []Token, text string, offset int) []Token {
	j := offset
	for j < len(text) && isSpace(text[j]) {
		j++
	}
	if j == len(text) {
		return tokens
	}
	next := text[j]
	if isDigit(next) || next == '.' || isLetter(next) || next == '(' {
		return append(tokens, Token{Kind: Operator, Text: "*", Pos: j, Implicit: true})
	}
	return tokens
}

// Join concatenates the source text of tokens, skipping inserted ones.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Implicit {
			continue
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
