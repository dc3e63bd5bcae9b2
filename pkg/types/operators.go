package types

// Operator is one of the closed set of lambari operators. Par, Cast and
// Test never appear in rendered output under their own spelling; Par wraps
// an expression, Cast renders as a bracketed type, and Test only names the
// condition check in diagnostics.
type Operator int

const (
	Equal Operator = iota
	NotEqual
	GreaterThan
	LessThan
	GreaterEqual
	LessEqual
	And
	Or
	Not
	Plus
	Minus
	Times
	Divide
	UnaryMinus
	Assign
	Par
	Cast
	Test
)

var operatorSymbols = map[Operator]string{
	Equal:        "==",
	NotEqual:     "!=",
	GreaterThan:  ">",
	LessThan:     "<",
	GreaterEqual: ">=",
	LessEqual:    "<=",
	And:          "&",
	Or:           "|",
	Not:          "!",
	Plus:         "+",
	Minus:        "-",
	Times:        "*",
	Divide:       "/",
	UnaryMinus:   "-u",
	Assign:       "=",
}

var operatorNames = map[Operator]string{
	Equal:        "equal",
	NotEqual:     "different",
	GreaterThan:  "greater than",
	LessThan:     "less than",
	GreaterEqual: "greater or equal than",
	LessEqual:    "less or equal than",
	And:          "and",
	Or:           "or",
	Not:          "negation",
	Plus:         "addition",
	Minus:        "subtraction",
	Times:        "multiplication",
	Divide:       "division",
	UnaryMinus:   "unary minus",
	Assign:       "attribution",
	Test:         "test",
}

// Symbol returns the canonical spelling used in rendered target code.
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// Name returns the human-readable form used in diagnostics.
func (o Operator) Name() string {
	return operatorNames[o]
}
