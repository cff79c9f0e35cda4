package siglang

type Symbol struct {
	Type       VarType
	DeclaredAt Pos
	Assigned   bool
}

// Checker validates declarations, assignments and references in one forward pass.
// Its symbol table persists across calls.
type Checker struct {
	symbols     map[string]*Symbol
	diagnostics []Diagnostic
}

func NewChecker() *Checker {
	c := &Checker{
		symbols: make(map[string]*Symbol),
	}
	for _, name := range BuiltinNames() {
		c.symbols[name] = &Symbol{
			Type:     TypeRealFunction,
			Assigned: true,
		}
	}
	return c
}

func (c *Checker) Diagnostics() []Diagnostic {
	return c.diagnostics
}

func (c *Checker) ClearDiagnostics() {
	c.diagnostics = nil
}

func (c *Checker) Lookup(name string) (Symbol, bool) {
	sym, ok := c.symbols[name]
	if !ok {
		return Symbol{}, false
	}
	return *sym, true
}

func (c *Checker) report(kind DiagnosticKind, name string, pos Pos) {
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Kind: kind,
		Name: name,
		Pos:  pos,
	})
}

func (c *Checker) CheckProgram(program *Program) {
	for _, stmt := range program.Statements {
		c.CheckStatement(stmt)
	}
}

func (c *Checker) CheckStatement(stmt Statement) {
	switch stmt := stmt.(type) {

	case *VarDecl:
		if _, ok := c.symbols[stmt.Name]; ok {
			c.report(VariableAlreadyDeclared, stmt.Name, stmt.Pos)
		}
		// a redeclaration still replaces the entry
		c.symbols[stmt.Name] = &Symbol{
			Type:       stmt.Type,
			DeclaredAt: stmt.Pos,
		}

	case *Assignment:
		sym, ok := c.symbols[stmt.Name]
		if !ok {
			c.report(VariableNotDeclared, stmt.Name, stmt.Pos)
			c.checkExpr(stmt.Value)
			return
		}
		if sym.Assigned {
			c.report(VariableAlreadyAssigned, stmt.Name, stmt.Pos)
			c.checkExpr(stmt.Value)
			return
		}
		before := len(c.diagnostics)
		c.checkExpr(stmt.Value)
		if len(c.diagnostics) == before {
			sym.Assigned = true
		}

	case *ExprStmt:
		c.checkExpr(stmt.Expr)

	}
}

func (c *Checker) checkExpr(expr Expr) {
	switch expr := expr.(type) {

	case *NumberLit:

	case *VarRef:
		sym, ok := c.symbols[expr.Name]
		if !ok {
			c.report(VariableNotDeclared, expr.Name, expr.Pos)
		} else if !sym.Assigned {
			c.report(VariableNotAssigned, expr.Name, expr.Pos)
		}

	case *Binary:
		c.checkExpr(expr.Left)
		c.checkExpr(expr.Right)

	case *Unary:
		c.checkExpr(expr.Operand)

	case *Call:
		if _, ok := c.symbols[expr.Name]; !ok {
			c.report(FunctionNotDeclared, expr.Name, expr.Pos)
		}
		for _, arg := range expr.Args {
			c.checkExpr(arg)
		}

	}
}
