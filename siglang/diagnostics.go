package siglang

import "fmt"

type DiagnosticKind uint8

const (
	VariableNotDeclared DiagnosticKind = iota + 1
	VariableAlreadyDeclared
	VariableAlreadyAssigned
	VariableNotAssigned
	FunctionNotDeclared
	DivisionByZero
	UndefinedVariable
)

func (k DiagnosticKind) String() string {
	switch k {
	case VariableNotDeclared:
		return "VariableNotDeclared"
	case VariableAlreadyDeclared:
		return "VariableAlreadyDeclared"
	case VariableAlreadyAssigned:
		return "VariableAlreadyAssigned"
	case VariableNotAssigned:
		return "VariableNotAssigned"
	case FunctionNotDeclared:
		return "FunctionNotDeclared"
	case DivisionByZero:
		return "DivisionByZero"
	case UndefinedVariable:
		return "UndefinedVariable"
	}
	return "Unknown"
}

// Diagnostic is a non-fatal problem found by the checker or the evaluator.
type Diagnostic struct {
	Kind DiagnosticKind
	Name string
	Pos  Pos
}

var _ error = Diagnostic{}

func (d Diagnostic) Error() string {
	line, col := d.Pos.Line, d.Pos.Column
	switch d.Kind {
	case VariableNotDeclared:
		return fmt.Sprintf("Error at %d:%d: Variable '%s' not declared", line, col, d.Name)
	case VariableAlreadyDeclared:
		return fmt.Sprintf("Error at %d:%d: Variable '%s' already declared", line, col, d.Name)
	case VariableAlreadyAssigned:
		return fmt.Sprintf("Error at %d:%d: Variable '%s' already assigned", line, col, d.Name)
	case VariableNotAssigned:
		return fmt.Sprintf("Error at %d:%d: Variable '%s' not assigned", line, col, d.Name)
	case FunctionNotDeclared:
		return fmt.Sprintf("Error at %d:%d: Function '%s' not declared", line, col, d.Name)
	case DivisionByZero:
		return fmt.Sprintf("Division by zero error at %d:%d.", line, col)
	case UndefinedVariable:
		return fmt.Sprintf("Undefined variable '%s' at %d:%d.", d.Name, line, col)
	}
	return fmt.Sprintf("Unknown diagnostic at %d:%d", line, col)
}

func (d Diagnostic) IsSemantic() bool {
	return d.Kind >= VariableNotDeclared && d.Kind <= FunctionNotDeclared
}

func (d Diagnostic) IsRuntime() bool {
	return d.Kind == DivisionByZero || d.Kind == UndefinedVariable
}
