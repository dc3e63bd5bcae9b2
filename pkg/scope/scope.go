// Package scope implements the lexically nested symbol table consumed by
// the semantic core: variable declarations per block level, plus a single
// program-wide registry of function signatures. Nesting is caller-driven;
// the AST layer issues Enter/Leave and Declare/Lookup calls in strict
// lexical order.
package scope

import (
	"errors"

	"github.com/hexengraf/lambari/pkg/types"
)

// ErrAlreadyDeclared signals a re-declaration at the same scope level. The
// first declaration always wins; the caller decides how to report it.
var ErrAlreadyDeclared = errors.New("already declared in this scope")

// Param is one named, typed function parameter.
type Param struct {
	Name string
	Type types.Type
}

// Signature is a function's declared interface. Defined distinguishes a
// completed definition from a forward declaration.
type Signature struct {
	Params  []Param
	Return  types.Type
	Defined bool
}

type level struct {
	symbols map[string]types.Type
	outer   *level
}

// Table is the symbol store for one compilation run.
type Table struct {
	current   *level
	functions map[string]*Signature
	funcOrder []string
}

func New() *Table {
	return &Table{
		current:   &level{symbols: make(map[string]types.Type)},
		functions: make(map[string]*Signature),
	}
}

// Enter opens a nested block scope.
func (t *Table) Enter() {
	t.current = &level{symbols: make(map[string]types.Type), outer: t.current}
}

// Leave closes the innermost block scope. Leaving the outermost scope is a
// no-op.
func (t *Table) Leave() {
	if t.current.outer != nil {
		t.current = t.current.outer
	}
}

// Declare binds name at the current scope level only. A name already
// present at this level returns ErrAlreadyDeclared and keeps the original
// binding; shadowing an outer level is allowed.
func (t *Table) Declare(name string, typ types.Type) error {
	if _, exists := t.current.symbols[name]; exists {
		return ErrAlreadyDeclared
	}
	t.current.symbols[name] = typ
	return nil
}

// Lookup resolves name from the innermost scope outwards.
func (t *Table) Lookup(name string) (types.Type, bool) {
	for l := t.current; l != nil; l = l.outer {
		if typ, ok := l.symbols[name]; ok {
			return typ, true
		}
	}
	return types.Type{}, false
}

// DeclareFunction registers a function signature. Completing a previous
// forward declaration with a matching signature is allowed and marks the
// function defined; any other collision returns ErrAlreadyDeclared.
func (t *Table) DeclareFunction(name string, sig Signature) error {
	existing, ok := t.functions[name]
	if !ok {
		copied := sig
		t.functions[name] = &copied
		t.funcOrder = append(t.funcOrder, name)
		return nil
	}
	if !existing.Defined && sig.Defined && signaturesMatch(*existing, sig) {
		existing.Defined = true
		return nil
	}
	return ErrAlreadyDeclared
}

// LookupFunction returns the declared signature for name.
func (t *Table) LookupFunction(name string) (Signature, bool) {
	sig, ok := t.functions[name]
	if !ok {
		return Signature{}, false
	}
	return *sig, true
}

// Undefined lists functions that were forward-declared but never completed,
// in declaration order.
func (t *Table) Undefined() []string {
	var names []string
	for _, name := range t.funcOrder {
		if !t.functions[name].Defined {
			names = append(names, name)
		}
	}
	return names
}

func signaturesMatch(a, b Signature) bool {
	if a.Return != b.Return || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i].Type != b.Params[i].Type {
			return false
		}
	}
	return true
}
