// Package parser compiles a token stream into an ast.Program with a
// recursive-descent grammar:
//
//	expression = term   { ("+" | "-") term }
//	term       = power  { ("*" | "/") power }
//	power      = factor { "^" factor }
//	factor     = ("+" | "-") factor
//	           | number | "x" | "pi" | "e"
//	           | "(" expression ")"
//	           | function "(" expression ")"
//	           | "root" "(" expression "," expression ")"
//
// The power loop applies "^" left to right, so 2^3^2 is (2^3)^2.
//
// Every rule takes the read position as an argument and returns the position
// after what it consumed; the parser keeps no cursor of its own.
package parser

import (
	"fmt"
	"strconv"

	"github.com/robbyt/go-polyquad/engines/native/ast"
	"github.com/robbyt/go-polyquad/engines/native/lexer"
	"github.com/robbyt/go-polyquad/platform/calcerr"
)

// Parse tokenizes and compiles source.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, len(source))
}

// ParseTokens compiles an already tokenized expression. end is the byte
// length of the source, used to position end-of-input errors.
func ParseTokens(tokens []lexer.Token, end int) (*ast.Program, error) {
	p := &parser{
		tokens:  tokens,
		end:     end,
		builder: ast.NewBuilder(len(tokens)),
	}

	if len(tokens) == 0 {
		return nil, calcerr.Parse(0, "incomplete expression")
	}

	root, pos, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if pos < len(tokens) {
		return nil, p.unexpected(pos)
	}
	return p.builder.Build(root)
}

type parser struct {
	tokens  []lexer.Token
	end     int
	builder *ast.Builder
}

func (p *parser) at(pos int, text string) bool {
	return pos < len(p.tokens) && p.tokens[pos].Is(text)
}

func (p *parser) offset(pos int) int {
	if pos < len(p.tokens) {
		return p.tokens[pos].Pos
	}
	return p.end
}

func (p *parser) unexpected(pos int) error {
	if pos >= len(p.tokens) {
		return calcerr.Parse(p.end, "incomplete expression")
	}
	return calcerr.Newf(calcerr.ErrParse, p.tokens[pos].Pos, "unexpected token %q", p.tokens[pos].Text)
}

func (p *parser) expression(pos int) (int, int, error) {
	left, pos, err := p.term(pos)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(p.tokens) {
		var op ast.Op
		switch {
		case p.at(pos, "+"):
			op = ast.OpAdd
		case p.at(pos, "-"):
			op = ast.OpSub
		default:
			return left, pos, nil
		}
		var right int
		right, pos, err = p.term(pos + 1)
		if err != nil {
			return 0, pos, err
		}
		left = p.builder.Binary(op, left, right)
	}
	return left, pos, nil
}

func (p *parser) term(pos int) (int, int, error) {
	left, pos, err := p.power(pos)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(p.tokens) {
		var op ast.Op
		switch {
		case p.at(pos, "*"):
			op = ast.OpMul
		case p.at(pos, "/"):
			op = ast.OpDiv
		default:
			return left, pos, nil
		}
		var right int
		right, pos, err = p.power(pos + 1)
		if err != nil {
			return 0, pos, err
		}
		left = p.builder.Binary(op, left, right)
	}
	return left, pos, nil
}

func (p *parser) power(pos int) (int, int, error) {
	left, pos, err := p.factor(pos)
	if err != nil {
		return 0, pos, err
	}
	for p.at(pos, "^") {
		var right int
		right, pos, err = p.factor(pos + 1)
		if err != nil {
			return 0, pos, err
		}
		left = p.builder.Binary(ast.OpPow, left, right)
	}
	return left, pos, nil
}

func (p *parser) factor(pos int) (int, int, error) {
	if pos >= len(p.tokens) {
		return 0, pos, p.unexpected(pos)
	}
	tok := p.tokens[pos]

	switch tok.Kind {
	case lexer.Number:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return 0, pos, calcerr.Newf(calcerr.ErrParse, tok.Pos, "invalid number %q", tok.Text).WithCause(err)
		}
		return p.builder.Number(v), pos + 1, nil

	case lexer.Operator:
		switch tok.Text {
		case "-":
			operand, next, err := p.factor(pos + 1)
			if err != nil {
				return 0, next, err
			}
			return p.builder.Unary(ast.OpNeg, 0, operand), next, nil
		case "+":
			return p.factor(pos + 1)
		}

	case lexer.Delimiter:
		if tok.Text == "(" {
			inner, next, err := p.expression(pos + 1)
			if err != nil {
				return 0, next, err
			}
			if !p.at(next, ")") {
				return 0, next, calcerr.Parse(tok.Pos, "unclosed parenthesis")
			}
			return inner, next + 1, nil
		}

	case lexer.Identifier:
		return p.identifier(pos)
	}

	return 0, pos, p.unexpected(pos)
}

func (p *parser) identifier(pos int) (int, int, error) {
	tok := p.tokens[pos]
	name := tok.Text

	if name == ast.Variable {
		return p.builder.Variable(), pos + 1, nil
	}
	if v, ok := ast.LookupConstant(name); ok {
		return p.builder.Constant(name, v), pos + 1, nil
	}
	if name == "root" {
		return p.root(pos)
	}

	fn, ok := ast.LookupFunc(name)
	if !ok || !p.at(pos+1, "(") {
		return 0, pos, p.unexpected(pos)
	}
	arg, next, err := p.expression(pos + 2)
	if err != nil {
		return 0, next, err
	}
	if !p.at(next, ")") {
		return 0, next, calcerr.Parse(p.tokens[pos+1].Pos, fmt.Sprintf("unclosed parenthesis in %s", name))
	}
	return p.builder.Unary(ast.OpCall, fn, arg), next + 1, nil
}

func (p *parser) root(pos int) (int, int, error) {
	if !p.at(pos+1, "(") {
		return 0, pos, p.unexpected(pos)
	}
	index, next, err := p.expression(pos + 2)
	if err != nil {
		return 0, next, err
	}
	if !p.at(next, ",") {
		return 0, next, calcerr.Parse(p.offset(next), "root requires two arguments separated by a comma")
	}
	radicand, next, err := p.expression(next + 1)
	if err != nil {
		return 0, next, err
	}
	if !p.at(next, ")") {
		return 0, next, calcerr.Parse(p.offset(next), "missing closing parenthesis in root")
	}
	return p.builder.Binary(ast.OpRoot, index, radicand), next + 1, nil
}
