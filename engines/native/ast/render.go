package ast

import (
	"strconv"
	"strings"
)

// Dialect controls how a Program is printed. The zero value of each hook
// falls back to the canonical syntax accepted by the native parser.
type Dialect struct {
	// Number formats a literal.
	Number func(v float64) string
	// Constant formats pi or e.
	Constant func(name string) string
	// Call formats a unary function application.
	Call func(fn Func, arg string) string
	// Root formats root(n, v).
	Root func(n, v string) string
	// Power formats l^r.
	Power func(l, r string) string
	// Divide formats l/r. Operands are passed without precedence
	// parentheses, so the hook must produce a self-delimiting form.
	Divide func(l, r string) string
	// Parenthesize wraps every operator node in parentheses instead of
	// relying on precedence, for targets whose precedence rules differ.
	Parenthesize bool
}

// Canonical prints programs in the native syntax with minimal parentheses.
var Canonical = Dialect{}

// String renders the program canonically. Equal renderings denote the same
// computation, so the result doubles as a normalized expression key.
func (p *Program) String() string {
	return p.Render(Canonical)
}

// Render prints the program in the given dialect.
func (p *Program) Render(d Dialect) string {
	if len(p.nodes) == 0 {
		return ""
	}
	text, _ := p.render(&d, p.Root())
	return text
}

const (
	precAdd = iota + 1
	precMul
	precPow
	precUnary
	precAtom
)

func precedence(op Op) int {
	switch op {
	case OpAdd, OpSub:
		return precAdd
	case OpMul, OpDiv:
		return precMul
	case OpPow:
		return precPow
	case OpNeg:
		return precUnary
	default:
		return precAtom
	}
}

func (p *Program) render(d *Dialect, i int) (string, int) {
	n := p.nodes[i]
	prec := precedence(n.Op)

	switch n.Op {
	case OpNumber:
		if d.Number != nil {
			return d.Number(n.Value), prec
		}
		return strconv.FormatFloat(n.Value, 'g', -1, 64), prec

	case OpVariable:
		return Variable, prec

	case OpConstant:
		if d.Constant != nil {
			return d.Constant(n.Name), prec
		}
		return n.Name, prec

	case OpCall:
		arg, _ := p.render(d, int(n.Left))
		if d.Call != nil {
			return d.Call(n.Func, arg), prec
		}
		return n.Func.String() + "(" + arg + ")", prec

	case OpRoot:
		idx, _ := p.render(d, int(n.Left))
		v, _ := p.render(d, int(n.Right))
		if d.Root != nil {
			return d.Root(idx, v), prec
		}
		return "root(" + idx + ", " + v + ")", prec

	case OpNeg:
		operand, cp := p.render(d, int(n.Left))
		text := "-" + wrap(operand, d.Parenthesize || cp < precUnary)
		if d.Parenthesize {
			text = "(" + text + ")"
		}
		return text, prec
	}

	l, lp := p.render(d, int(n.Left))
	r, rp := p.render(d, int(n.Right))
	if n.Op == OpDiv && d.Divide != nil {
		return d.Divide(l, r), precAtom
	}
	l = wrap(l, !d.Parenthesize && lp < prec)
	r = wrap(r, !d.Parenthesize && rp <= prec)

	var text string
	if n.Op == OpPow && d.Power != nil {
		text = d.Power(l, r)
	} else {
		text = l + opSymbols[n.Op] + r
	}
	if d.Parenthesize {
		text = "(" + text + ")"
	}
	return text, prec
}

func wrap(s string, paren bool) string {
	if !paren {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('(')
	b.WriteString(s)
	b.WriteByte(')')
	return b.String()
}
