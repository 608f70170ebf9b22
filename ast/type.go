package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota

	NodeTypeBinary
	NodeTypeGrouping
	NodeTypeLiteral
	NodeTypeUnary
	NodeTypeTernary
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeBinary:   "binary",
	NodeTypeGrouping: "grouping",
	NodeTypeLiteral:  "literal",
	NodeTypeUnary:    "unary",
	NodeTypeTernary:  "ternary",
}
