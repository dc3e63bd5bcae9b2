// Package diag formats and emits semantic diagnostics. Every detected
// problem is reported as one line on the configured sink, prefixed with the
// current source line; nothing in this package ever aborts a build.
package diag

import (
	"fmt"
	"io"

	"github.com/iancoleman/strcase"

	"github.com/hexengraf/lambari/pkg/types"
)

// Kind tags each diagnostic with its root cause.
type Kind int

const (
	MultipleDefinition Kind = iota
	MultipleDefinitionFn
	UndeclaredVariable
	IncompatibleOperands
	IncompatibleAssignment
	IncompatibleTest
	DeclaredButNeverDefined
	WrongParamCount
	IncompatibleParam
	IncompatibleIndex
	NonArrayIndex
)

var kindNames = map[Kind]string{
	MultipleDefinition:      "MultipleDefinition",
	MultipleDefinitionFn:    "MultipleDefinitionFn",
	UndeclaredVariable:      "UndeclaredVariable",
	IncompatibleOperands:    "IncompatibleOperands",
	IncompatibleAssignment:  "IncompatibleAssignment",
	IncompatibleTest:        "IncompatibleTest",
	DeclaredButNeverDefined: "DeclaredButNeverDefined",
	WrongParamCount:         "WrongParamCount",
	IncompatibleParam:       "IncompatibleParam",
	IncompatibleIndex:       "IncompatibleIndex",
	NonArrayIndex:           "NonArrayIndex",
}

// String returns the screaming-snake tag used in logs and test output.
func (k Kind) String() string {
	return strcase.ToScreamingSnake(kindNames[k])
}

// LineCounter tracks the current source line for diagnostic prefixes. The
// scanner advances it; it never resets during a compilation run.
type LineCounter struct {
	line int
}

// NewLineCounter starts counting at line 1.
func NewLineCounter() *LineCounter {
	return &LineCounter{line: 1}
}

// Advance moves to the next source line.
func (c *LineCounter) Advance() {
	c.line++
}

// Line returns the current source line.
func (c *LineCounter) Line() int {
	return c.line
}

// Reporter emits one formatted message per detected semantic error. The
// sink is injected so tests can assert on exact output.
type Reporter struct {
	out    io.Writer
	lines  *LineCounter
	counts map[Kind]int
	total  int
}

func NewReporter(out io.Writer, lines *LineCounter) *Reporter {
	return &Reporter{
		out:    out,
		lines:  lines,
		counts: make(map[Kind]int),
	}
}

// Total returns the number of diagnostics emitted so far.
func (r *Reporter) Total() int {
	return r.total
}

// Count returns how many diagnostics of a given kind were emitted.
func (r *Reporter) Count(k Kind) int {
	return r.counts[k]
}

func (r *Reporter) emit(k Kind, format string, args ...any) {
	r.counts[k]++
	r.total++
	fmt.Fprintf(r.out, "[Line %d] semantic error: "+format+"\n", append([]any{r.lines.Line()}, args...)...)
}

func (r *Reporter) MultipleDefinition(name string) {
	r.emit(MultipleDefinition, "re-declaration of variable %s", name)
}

func (r *Reporter) MultipleDefinitionFn(name string) {
	r.emit(MultipleDefinitionFn, "re-declaration of function %s", name)
}

func (r *Reporter) UndeclaredVariable(name string) {
	r.emit(UndeclaredVariable, "undeclared variable %s", name)
}

func (r *Reporter) IncompatibleOperands(op types.Operator, expected, actual types.Type) {
	r.emit(IncompatibleOperands, "%s operation expected %s but received %s",
		op.Name(), expected.Printable(), actual.Printable())
}

// IncompatibleAssignment is the attribution flavor of IncompatibleOperands.
func (r *Reporter) IncompatibleAssignment(expected, actual types.Type) {
	r.emit(IncompatibleAssignment, "%s operation expected %s but received %s",
		types.Assign.Name(), expected.Printable(), actual.Printable())
}

// IncompatibleTest reports a non-boolean condition; the expected side is
// always boolean.
func (r *Reporter) IncompatibleTest(actual types.Type) {
	r.emit(IncompatibleTest, "%s operation expected %s but received %s",
		types.Test.Name(), types.Of(types.Bool).Printable(), actual.Printable())
}

func (r *Reporter) DeclaredButNeverDefined(name string) {
	r.emit(DeclaredButNeverDefined, "function %s is declared but never defined", name)
}

func (r *Reporter) WrongParamCount(name string, expected, actual int) {
	r.emit(WrongParamCount, "function %s expects %d parameters but received %d",
		name, expected, actual)
}

func (r *Reporter) IncompatibleParam(name string, expected, actual types.Type) {
	r.emit(IncompatibleParam, "parameter %s expected %s but received %s",
		name, expected.Printable(), actual.Printable())
}

func (r *Reporter) IncompatibleIndex(expected, actual types.Type) {
	r.emit(IncompatibleIndex, "index operator expects %s but received %s",
		expected.Printable(), actual.Printable())
}

func (r *Reporter) NonArrayIndex() {
	r.emit(NonArrayIndex, "index operator expects an array")
}
