// Package ast holds the compiled form of an expression: a flat arena of nodes
// in post-order, so every child precedes its parent and the root is last.
//
// A Program is immutable once built. Eval keeps all of its state on the call
// stack, which makes a single Program safe for concurrent use.
package ast

import (
	"fmt"
	"math"
)

// Op is the node operation.
type Op uint8

const (
	OpNumber Op = iota + 1
	OpVariable
	OpConstant
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpCall
	OpRoot
)

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
	OpNeg: "-",
}

func (o Op) String() string {
	switch o {
	case OpNumber:
		return "number"
	case OpVariable:
		return "variable"
	case OpConstant:
		return "constant"
	case OpCall:
		return "call"
	case OpRoot:
		return "root"
	}
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Func identifies a unary math function.
type Func uint8

const (
	FuncSin Func = iota + 1
	FuncCos
	FuncTan
	FuncSqrt
	FuncLog
	FuncExp
	FuncAbs
)

var funcNames = map[Func]string{
	FuncSin:  "sin",
	FuncCos:  "cos",
	FuncTan:  "tan",
	FuncSqrt: "sqrt",
	FuncLog:  "log",
	FuncExp:  "exp",
	FuncAbs:  "abs",
}

var funcImpls = map[Func]func(float64) float64{
	FuncSin:  math.Sin,
	FuncCos:  math.Cos,
	FuncTan:  math.Tan,
	FuncSqrt: math.Sqrt,
	FuncLog:  math.Log,
	FuncExp:  math.Exp,
	FuncAbs:  math.Abs,
}

// LookupFunc maps a source identifier to its function. "ln" is an alias of
// "log"; both are the natural logarithm.
func LookupFunc(name string) (Func, bool) {
	if name == "ln" {
		return FuncLog, true
	}
	for f, n := range funcNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

func (f Func) String() string {
	if n, ok := funcNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Func(%d)", uint8(f))
}

// Constants recognised by name.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// LookupConstant returns the value of a named constant.
func LookupConstant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// Variable is the only free variable an expression may reference.
const Variable = "x"

// Node is one arena entry. Left and Right index earlier nodes; unused
// operands are -1.
type Node struct {
	Op    Op
	Value float64 // OpNumber, OpConstant
	Name  string  // OpConstant
	Func  Func    // OpCall
	Left  int32
	Right int32
}

// Program is a compiled expression.
type Program struct {
	nodes    []Node
	depth    int
	variable bool
}

// Nodes returns a copy of the arena.
func (p *Program) Nodes() []Node {
	out := make([]Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Root returns the index of the root node.
func (p *Program) Root() int {
	return len(p.nodes) - 1
}

// UsesVariable reports whether the expression references x.
func (p *Program) UsesVariable() bool {
	return p.variable
}

// Builder appends nodes in post-order. It is owned by a single parse.
type Builder struct {
	nodes []Node
}

// NewBuilder creates a Builder with room for size nodes.
func NewBuilder(size int) *Builder {
	return &Builder{nodes: make([]Node, 0, size)}
}

// Number appends a literal.
func (b *Builder) Number(v float64) int {
	return b.push(Node{Op: OpNumber, Value: v, Left: -1, Right: -1})
}

// Variable appends a reference to x.
func (b *Builder) Variable() int {
	return b.push(Node{Op: OpVariable, Left: -1, Right: -1})
}

// Constant appends a named constant.
func (b *Builder) Constant(name string, v float64) int {
	return b.push(Node{Op: OpConstant, Name: name, Value: v, Left: -1, Right: -1})
}

// Unary appends a negation or a function call over operand.
func (b *Builder) Unary(op Op, fn Func, operand int) int {
	return b.push(Node{Op: op, Func: fn, Left: int32(operand), Right: -1})
}

// Binary appends a binary node. For OpRoot left is the index and right the
// radicand.
func (b *Builder) Binary(op Op, left, right int) int {
	return b.push(Node{Op: op, Left: int32(left), Right: int32(right)})
}

func (b *Builder) push(n Node) int {
	b.nodes = append(b.nodes, n)
	return len(b.nodes) - 1
}

// Build finalizes the arena. root must be the last node appended.
func (b *Builder) Build(root int) (*Program, error) {
	if len(b.nodes) == 0 || root != len(b.nodes)-1 {
		return nil, fmt.Errorf("root %d is not the last of %d nodes", root, len(b.nodes))
	}
	p := &Program{nodes: b.nodes}
	depth, maxDepth := 0, 0
	for _, n := range p.nodes {
		switch n.Op {
		case OpNumber, OpVariable, OpConstant:
			depth++
		case OpNeg, OpCall:
		default:
			depth--
		}
		if n.Op == OpVariable {
			p.variable = true
		}
		maxDepth = max(maxDepth, depth)
	}
	p.depth = maxDepth
	b.nodes = nil
	return p, nil
}
