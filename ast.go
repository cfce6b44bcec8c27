package sketchlang

import (
	"strconv"
	"strings"
)

// Node is one node of a parsed command tree. A tree is immutable once
// built; nodes are plain values and may be shared freely.
type Node interface{}

// Number is a numeric literal.
type Number struct{ Value float64 }

// Identifier is a bare name.
type Identifier struct{ Name string }

// Expression is a comma-separated sibling group with no enclosing call.
type Expression struct{ Nodes []Node }

// Function is a call; len(Args) is its arity. Curried calls like
// f(a)(b) flatten into one Function with two arguments.
type Function struct {
	Name string
	Args []Node
}

// Variable is the `{}` wildcard marker. It is legal only inside
// templates; the matcher fails hard on a Variable found in real input.
type Variable struct{}

// AST wraps the root of one parsed command.
type AST struct{ Root Node }

// NewAST parses a full command string into a tree.
func NewAST(s string) (*AST, error) {
	root, err := parseNode(s, 0)
	if err != nil {
		return nil, err
	}
	return &AST{Root: root}, nil
}

func (a *AST) Equal(b *AST) bool { return NodeEqual(a.Root, b.Root) }

func (a *AST) String() string { return FormatNode(a.Root) }

// NodeEqual reports structural equality of two trees. Numbers compare
// under EPS, names compare exactly.
func NodeEqual(a, b Node) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && floatEq(x.Value, y.Value)
	case Identifier:
		y, ok := b.(Identifier)
		return ok && x.Name == y.Name
	case Variable:
		_, ok := b.(Variable)
		return ok
	case Expression:
		y, ok := b.(Expression)
		if !ok || len(x.Nodes) != len(y.Nodes) {
			return false
		}
		for i := range x.Nodes {
			if !NodeEqual(x.Nodes[i], y.Nodes[i]) {
				return false
			}
		}
		return true
	case Function:
		y, ok := b.(Function)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !NodeEqual(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// FormatNode renders a node back into command syntax, for error
// messages and debugging.
func FormatNode(n Node) string {
	switch x := n.(type) {
	case Number:
		return formatFloat(x.Value)
	case Identifier:
		return x.Name
	case Variable:
		return "{}"
	case Expression:
		parts := make([]string, 0, len(x.Nodes))
		for _, c := range x.Nodes {
			// A nested sibling group keeps its brackets so the printed
			// form reparses to the same tree.
			if _, nested := c.(Expression); nested {
				parts = append(parts, "("+FormatNode(c)+")")
				continue
			}
			parts = append(parts, FormatNode(c))
		}
		return strings.Join(parts, ", ")
	case Function:
		var b strings.Builder
		b.WriteString(x.Name)
		for _, arg := range x.Args {
			b.WriteString("(")
			b.WriteString(FormatNode(arg))
			b.WriteString(")")
		}
		return b.String()
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
