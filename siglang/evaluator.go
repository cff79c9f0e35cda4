package siglang

import (
	"maps"
	"slices"

	"github.com/reusee/significance/numbers"
)

// Evaluator walks statements and keeps the runtime variable store.
// Re-assignment of a variable is permitted at this layer.
type Evaluator struct {
	vars        map[string]numbers.Real
	diagnostics []Diagnostic
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		vars: make(map[string]numbers.Real),
	}
}

func (e *Evaluator) Diagnostics() []Diagnostic {
	return e.diagnostics
}

func (e *Evaluator) ClearDiagnostics() {
	e.diagnostics = nil
}

func (e *Evaluator) Get(name string) (numbers.Real, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Var is a named store entry.
type Var struct {
	Name  string
	Value numbers.Real
}

// Vars returns the store sorted by name.
func (e *Evaluator) Vars() []Var {
	ret := make([]Var, 0, len(e.vars))
	for _, name := range slices.Sorted(maps.Keys(e.vars)) {
		ret = append(ret, Var{
			Name:  name,
			Value: e.vars[name],
		})
	}
	return ret
}

func (e *Evaluator) report(kind DiagnosticKind, name string, pos Pos) {
	e.diagnostics = append(e.diagnostics, Diagnostic{
		Kind: kind,
		Name: name,
		Pos:  pos,
	})
}

// ExecProgram returns the values of expression statements in order.
func (e *Evaluator) ExecProgram(program *Program) (results []numbers.Real) {
	for _, stmt := range program.Statements {
		if value, ok := e.ExecStatement(stmt); ok {
			results = append(results, value)
		}
	}
	return
}

// ExecStatement reports ok for expression statements only.
func (e *Evaluator) ExecStatement(stmt Statement) (value numbers.Real, ok bool) {
	switch stmt := stmt.(type) {

	case *VarDecl:
		e.vars[stmt.Name] = numbers.New(0)

	case *Assignment:
		value := e.Eval(stmt.Value)
		if _, ok := e.vars[stmt.Name]; !ok {
			e.report(UndefinedVariable, stmt.Name, stmt.Pos)
			return numbers.Real{}, false
		}
		e.vars[stmt.Name] = value

	case *ExprStmt:
		return e.Eval(stmt.Expr), true

	}
	return numbers.Real{}, false
}

func (e *Evaluator) Eval(expr Expr) numbers.Real {
	switch expr := expr.(type) {

	case *NumberLit:
		return numbers.WithError(expr.Magnitude, expr.Uncertainty)

	case *VarRef:
		v, ok := e.vars[expr.Name]
		if !ok {
			// references carry no position in runtime diagnostics
			e.report(UndefinedVariable, expr.Name, Pos{})
			return numbers.New(0)
		}
		return v

	case *Binary:
		left := e.Eval(expr.Left)
		right := e.Eval(expr.Right)
		switch expr.Op {
		case OpAdd:
			return left.Add(right)
		case OpSub:
			return left.Sub(right)
		case OpMul:
			return left.Mul(right)
		case OpDiv:
			if right.IsZero() {
				e.report(DivisionByZero, "", expr.Pos)
			}
			return left.Div(right)
		case OpMod:
			return left.Mod(right)
		case OpPower:
			return left.Power(right)
		case OpRoot:
			return left.Root(right)
		}

	case *Unary:
		operand := e.Eval(expr.Operand)
		if expr.Op == OpNegate {
			return operand.Neg()
		}
		return operand.Pos()

	case *Call:
		args := make([]numbers.Real, 0, len(expr.Args))
		for _, arg := range expr.Args {
			args = append(args, e.Eval(arg))
		}
		return callBuiltin(expr.Name, args, expr.Pos)

	}

	return numbers.New(0)
}
