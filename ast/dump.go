package ast

import (
	"io"
	"strconv"

	"git.sr.ht/~mango/tiny/value"
	"gopkg.in/yaml.v3"
)

// Dump writes prog to w as a YAML sequence with one mapping per statement.
// Every mapping carries a ‘kind’ key naming the node type.
func Dump(w io.Writer, prog Program) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(blockNode(prog)); err != nil {
		return err
	}
	return enc.Close()
}

func blockNode(xs []Stmt) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, x := range xs {
		n.Content = append(n.Content, stmtNode(x))
	}
	return n
}

func stmtNode(s Stmt) *yaml.Node {
	var n *yaml.Node

	switch s := s.(type) {
	case *CreateVar:
		n = mapping("declare")
		set(n, "type", str(s.Type.String()))
		set(n, "name", str(s.Name))
	case *Print:
		n = mapping("print")
		set(n, "expr", exprNode(s.Expr))
	case *Assign:
		n = mapping("assign")
		set(n, "name", str(s.Name))
		set(n, "expr", exprNode(s.Expr))
	case *If:
		n = mapping("if")
		set(n, "cond", exprNode(s.Cond))
		set(n, "body", blockNode(s.Body))
		if s.Else != nil {
			set(n, "else", blockNode(s.Else))
		}
	case *While:
		n = mapping("while")
		set(n, "cond", exprNode(s.Cond))
		set(n, "body", blockNode(s.Body))
	case *For:
		n = mapping("for")
		set(n, "var", str(s.Var))
		set(n, "start", exprNode(s.Start))
		set(n, "end", exprNode(s.End))
		set(n, "step", integer(s.Step))
		set(n, "body", blockNode(s.Body))
	default:
		panic("unreachable")
	}

	// Keep ‘kind’ first and ‘line’ second so dumps read top to bottom
	line := []*yaml.Node{str("line"), integer(int64(s.Pos()))}
	n.Content = append(n.Content[:2], append(line, n.Content[2:]...)...)
	return n
}

func exprNode(e Expr) *yaml.Node {
	var n *yaml.Node

	switch e := e.(type) {
	case *Literal:
		n = mapping("literal")
		switch v := e.Value.(type) {
		case value.Integer:
			set(n, "value", integer(int64(v)))
		case value.Text:
			set(n, "value", str(string(v)))
		case value.Empty:
			set(n, "value", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"})
		}
	case *VarRef:
		n = mapping("var")
		set(n, "name", str(e.Name))
	case *Arith:
		n = mapping("arith")
		set(n, "op", str(e.Op.String()))
		set(n, "lhs", exprNode(e.Lhs))
		set(n, "rhs", exprNode(e.Rhs))
	case *Compare:
		n = mapping("compare")
		set(n, "op", str(e.Op.String()))
		set(n, "lhs", exprNode(e.Lhs))
		set(n, "rhs", exprNode(e.Rhs))
	case *Not:
		n = mapping("not")
		set(n, "operand", exprNode(e.Operand))
	case *Logical:
		n = mapping("logical")
		set(n, "op", str(e.Op.String()))
		set(n, "lhs", exprNode(e.Lhs))
		set(n, "rhs", exprNode(e.Rhs))
	default:
		panic("unreachable")
	}

	return n
}

func mapping(kind string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	set(n, "kind", str(kind))
	return n
}

func set(n *yaml.Node, k string, v *yaml.Node) {
	n.Content = append(n.Content, str(k), v)
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func integer(i int64) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: strconv.FormatInt(i, 10),
	}
}
