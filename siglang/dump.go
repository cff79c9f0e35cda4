package siglang

import (
	"io"

	"go.yaml.in/yaml/v3"
)

type dumpPos struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

type dumpNode struct {
	Kind        string      `yaml:"kind"`
	Name        string      `yaml:"name,omitempty"`
	Type        string      `yaml:"type,omitempty"`
	Op          string      `yaml:"op,omitempty"`
	Magnitude   *float64    `yaml:"magnitude,omitempty"`
	Uncertainty *float64    `yaml:"uncertainty,omitempty"`
	Value       *dumpNode   `yaml:"value,omitempty"`
	Left        *dumpNode   `yaml:"left,omitempty"`
	Right       *dumpNode   `yaml:"right,omitempty"`
	Operand     *dumpNode   `yaml:"operand,omitempty"`
	Args        []*dumpNode `yaml:"args,omitempty"`
	Pos         dumpPos     `yaml:"pos"`
}

// DumpProgram writes the tree as YAML.
func DumpProgram(w io.Writer, program *Program) error {
	statements := make([]*dumpNode, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		statements = append(statements, dumpStatement(stmt))
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]any{
		"statements": statements,
	}); err != nil {
		return wrap(err)
	}
	if err := encoder.Close(); err != nil {
		return wrap(err)
	}
	return nil
}

func toDumpPos(pos Pos) dumpPos {
	return dumpPos{
		Line:   pos.Line,
		Column: pos.Column,
	}
}

func dumpStatement(stmt Statement) *dumpNode {
	switch stmt := stmt.(type) {
	case *VarDecl:
		return &dumpNode{
			Kind: "declaration",
			Name: stmt.Name,
			Type: stmt.Type.String(),
			Pos:  toDumpPos(stmt.Pos),
		}
	case *Assignment:
		return &dumpNode{
			Kind:  "assignment",
			Name:  stmt.Name,
			Value: dumpExpr(stmt.Value),
			Pos:   toDumpPos(stmt.Pos),
		}
	case *ExprStmt:
		return &dumpNode{
			Kind:  "expression",
			Value: dumpExpr(stmt.Expr),
			Pos:   toDumpPos(stmt.Position()),
		}
	}
	return nil
}

func dumpExpr(expr Expr) *dumpNode {
	switch expr := expr.(type) {
	case *NumberLit:
		return &dumpNode{
			Kind:        "number",
			Magnitude:   &expr.Magnitude,
			Uncertainty: &expr.Uncertainty,
			Pos:         toDumpPos(expr.Pos),
		}
	case *VarRef:
		return &dumpNode{
			Kind: "variable",
			Name: expr.Name,
			Pos:  toDumpPos(expr.Pos),
		}
	case *Binary:
		return &dumpNode{
			Kind:  "binary",
			Op:    expr.Op.String(),
			Left:  dumpExpr(expr.Left),
			Right: dumpExpr(expr.Right),
			Pos:   toDumpPos(expr.Pos),
		}
	case *Unary:
		return &dumpNode{
			Kind:    "unary",
			Op:      expr.Op.String(),
			Operand: dumpExpr(expr.Operand),
			Pos:     toDumpPos(expr.Pos),
		}
	case *Call:
		node := &dumpNode{
			Kind: "call",
			Name: expr.Name,
			Pos:  toDumpPos(expr.Pos),
		}
		for _, arg := range expr.Args {
			node.Args = append(node.Args, dumpExpr(arg))
		}
		return node
	}
	return nil
}
