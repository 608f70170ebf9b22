package ast

import (
	"github.com/fattreed/lox/lexer"
)

// Expr is a node of the expression tree. The set of expressions is closed:
// *Binary, *Grouping, *Literal, *Unary and *Ternary. Every node owns its
// children, the tree has no shared nodes.
type Expr interface {
	Type() NodeType
	exprNode()
}

// Binary is an infix operation: left operator right
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Grouping is a parenthesized expression
type Grouping struct {
	Inner Expr
}

// Literal is a constant value
type Literal struct {
	Value Value
}

// Unary is a prefix operation: operator operand
type Unary struct {
	Operator lexer.Token
	Operand  Expr
}

// Ternary is a conditional expression: condition ? then : else
type Ternary struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

// NewBinary creates a node of type "binary"
func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: op, Right: right}
}

// NewGrouping creates a node of type "grouping"
func NewGrouping(inner Expr) *Grouping {
	return &Grouping{Inner: inner}
}

// NewLiteral creates a node of type "literal"
func NewLiteral(v Value) *Literal {
	return &Literal{Value: v}
}

// NewUnary creates a node of type "unary"
func NewUnary(op lexer.Token, operand Expr) *Unary {
	return &Unary{Operator: op, Operand: operand}
}

// NewTernary creates a node of type "ternary"
func NewTernary(cond, then, els Expr) *Ternary {
	return &Ternary{Condition: cond, Then: then, Else: els}
}

func (*Binary) Type() NodeType   { return NodeTypeBinary }
func (*Grouping) Type() NodeType { return NodeTypeGrouping }
func (*Literal) Type() NodeType  { return NodeTypeLiteral }
func (*Unary) Type() NodeType    { return NodeTypeUnary }
func (*Ternary) Type() NodeType  { return NodeTypeTernary }

func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Ternary) exprNode()  {}

// Children returns the direct sub-expressions of a node, left to right
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Binary:
		return []Expr{n.Left, n.Right}
	case *Grouping:
		return []Expr{n.Inner}
	case *Literal:
		return nil
	case *Unary:
		return []Expr{n.Operand}
	case *Ternary:
		return []Expr{n.Condition, n.Then, n.Else}
	}

	panic("unknown node type")
}

// Walk visits e and its descendants in pre-order. If fn returns false the
// children of the current node are skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Walk(child, fn)
	}
}
