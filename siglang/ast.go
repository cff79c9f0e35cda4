package siglang

type Node interface {
	Position() Pos
}

type Statement interface {
	Node
	statement()
}

type Expr interface {
	Node
	expr()
}

type Program struct {
	Statements []Statement
}

type VarType uint8

const (
	TypeReal VarType = iota + 1
	// TypeRealFunction is only held by built-in functions.
	TypeRealFunction
)

func (v VarType) String() string {
	switch v {
	case TypeReal:
		return "real"
	case TypeRealFunction:
		return "real function"
	}
	return "unknown"
}

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota + 1
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPower
	OpRoot
)

func (o BinaryOp) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPower:
		return "**"
	case OpRoot:
		return "//"
	}
	return "?"
}

type UnaryOp uint8

const (
	OpPlus UnaryOp = iota + 1
	OpNegate
)

func (o UnaryOp) String() string {
	switch o {
	case OpPlus:
		return "+"
	case OpNegate:
		return "-"
	}
	return "?"
}

// statements

type VarDecl struct {
	Name string
	Type VarType
	Pos  Pos
}

type Assignment struct {
	Name  string
	Value Expr
	Pos   Pos
}

type ExprStmt struct {
	Expr Expr
}

func (v *VarDecl) Position() Pos    { return v.Pos }
func (a *Assignment) Position() Pos { return a.Pos }
func (e *ExprStmt) Position() Pos   { return e.Expr.Position() }

func (*VarDecl) statement()    {}
func (*Assignment) statement() {}
func (*ExprStmt) statement()   {}

// expressions

type NumberLit struct {
	Magnitude   float64
	Uncertainty float64
	Pos         Pos
}

type VarRef struct {
	Name string
	Pos  Pos
}

type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
	Pos   Pos
}

type Unary struct {
	Op      UnaryOp
	Operand Expr
	Pos     Pos
}

type Call struct {
	Name string
	Args []Expr
	Pos  Pos
}

func (n *NumberLit) Position() Pos { return n.Pos }
func (v *VarRef) Position() Pos    { return v.Pos }
func (b *Binary) Position() Pos    { return b.Pos }
func (u *Unary) Position() Pos     { return u.Pos }
func (c *Call) Position() Pos      { return c.Pos }

func (*NumberLit) expr() {}
func (*VarRef) expr()    {}
func (*Binary) expr()    {}
func (*Unary) expr()     {}
func (*Call) expr()      {}
