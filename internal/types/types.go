package types

import "regexp"

// Line is one line of a source file. Number is the 0-based index of the line.
type Line struct {
	Number int
	Text   string
}

// VariableKind is the declaring construct a candidate was matched with.
type VariableKind int

const (
	KindLet VariableKind = iota
	KindVar
	KindConst
	// KindGlobal is an assignment without a declaring keyword.
	KindGlobal
)

func (k VariableKind) String() string {
	switch k {
	case KindLet:
		return "let"
	case KindVar:
		return "var"
	case KindConst:
		return "const"
	case KindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// VariableScope is reserved for scope tracking. Every variable is ScopeUnknown for now.
type VariableScope int

const (
	ScopeUnknown VariableScope = iota
)

// ValueKind classifies the raw right-hand side of a declaration.
type ValueKind int

const (
	ValueCompound ValueKind = iota
	// ValueDynamic means the value contains a parenthesized span, like a call.
	ValueDynamic
)

func (k ValueKind) String() string {
	if k == ValueDynamic {
		return "dynamic"
	}
	return "compound"
}

// VariableValue is the captured right-hand side text and its classification.
type VariableValue struct {
	Raw  string
	Kind ValueKind
}

// Variable is one declaration candidate extracted from a line.
type Variable struct {
	Name       string
	Kind       VariableKind
	Scope      VariableScope
	Value      VariableValue
	LineNumber int
}

var dynamicValueRe = regexp.MustCompile(`\(.*\)`)

// NewVariable builds a Variable in the unknown scope and classifies its value.
func NewVariable(name string, kind VariableKind, value string, line int) Variable {
	valueKind := ValueCompound
	if dynamicValueRe.MatchString(value) {
		valueKind = ValueDynamic
	}
	return Variable{
		Name:       name,
		Kind:       kind,
		Scope:      ScopeUnknown,
		Value:      VariableValue{Raw: value, Kind: valueKind},
		LineNumber: line,
	}
}

// Equal reports whether v and other name the same variable.
// Only the name and the scope take part; kind and value are ignored.
func (v Variable) Equal(other Variable) bool {
	return v.Name == other.Name && v.Scope == other.Scope
}

// Finding is one reported naming issue. An empty Title means no issue.
type Finding struct {
	Title        string `json:"title"`
	VariableName string `json:"variable_name"`
}

// IsEmpty reports whether f is the "no issue" sentinel.
func (f Finding) IsEmpty() bool {
	return f.Title == ""
}

// FileReport groups the findings produced for one file.
type FileReport struct {
	Filename string    `json:"filename"`
	Findings []Finding `json:"findings"`
}

// Variables is an ordered set of variables under Variable.Equal.
type Variables []Variable

// Contains reports whether an equal variable is already present.
func (vs Variables) Contains(v Variable) bool {
	for _, existing := range vs {
		if existing.Equal(v) {
			return true
		}
	}
	return false
}

// Add appends v unless an equal variable is present, and reports whether it was added.
func (vs *Variables) Add(v Variable) bool {
	if vs.Contains(v) {
		return false
	}
	*vs = append(*vs, v)
	return true
}
