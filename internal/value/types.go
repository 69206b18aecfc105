package value

import (
	"strconv"
	"strings"

	"github.com/rstack-lang/rstack/internal/rational"
)

// Number wraps an exact rational.
type Number struct{ R rational.Rational }

func NewNumber(r rational.Rational) Number { return Number{R: r} }

func (Number) Kind() Kind           { return KindNumber }
func (n Number) String() string     { return n.R.String() }
func (n Number) Inspect() string    { return n.R.String() }

// String is UTF-8 text; the Go string itself never carries the
// surrounding quotes (those belong to Inspect's rendering only).
type String string

func (String) Kind() Kind        { return KindString }
func (s String) String() string  { return string(s) }
func (s String) Inspect() string { return `"` + string(s) + `"` }

// Boolean is true/false.
type Boolean bool

func (Boolean) Kind() Kind        { return KindBoolean }
func (b Boolean) String() string  { return strconv.FormatBool(bool(b)) }
func (b Boolean) Inspect() string { return b.String() }

// Symbol is an identifier captured by value rather than looked up —
// produced by a sym:NAME token (spec.md §4.3/§4.5.2). A Symbol is
// never re-resolved against the dictionary, even when the sequence
// containing it is executed as a word body.
type Symbol string

func (Symbol) Kind() Kind        { return KindSymbol }
func (s Symbol) String() string  { return string(s) }
func (s Symbol) Inspect() string { return string(s) }

// WordRef is a bare identifier captured inside a vector literal,
// "for later dispatch" (spec.md §4.5.2 item 1): when the vector that
// contains it is constructed, the identifier is not looked up yet;
// when that vector is later executed as a word body (a DEF body or
// an IF branch), each WordRef is re-resolved against the dictionary
// at that point. It serializes over the host API with the same
// "symbol" tag as Symbol (spec.md §6 names no separate wire kind for
// it) but is a distinct Go type so the evaluator and the dictionary's
// dependency extraction can tell a dispatch-pending identifier apart
// from a deliberately quoted sym: literal.
type WordRef string

func (WordRef) Kind() Kind        { return KindSymbol }
func (w WordRef) String() string  { return string(w) }
func (w WordRef) Inspect() string { return string(w) }

// Nil is the unit value.
type Nil struct{}

func (Nil) Kind() Kind        { return KindNil }
func (Nil) String() string    { return "nil" }
func (Nil) Inspect() string   { return "nil" }

// Vector is an ordered, value-semantic sequence of Values. CONS,
// APPEND, and REVERSE always return a fresh Vector (spec.md §9):
// callers must never mutate a Vector element slice they did not just
// allocate.
type Vector []Value

func (Vector) Kind() Kind { return KindVector }

func (v Vector) String() string  { return v.format(func(e Value) string { return e.String() }) }
func (v Vector) Inspect() string { return v.format(func(e Value) string { return e.Inspect() }) }

func (v Vector) format(render func(Value) string) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, e := range v {
		sb.WriteString(render(e))
		sb.WriteString(" ")
	}
	sb.WriteString("]")
	return sb.String()
}
