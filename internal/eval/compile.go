package eval

import (
	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/lexer"
	"github.com/rstack-lang/rstack/internal/rational"
	"github.com/rstack-lang/rstack/internal/value"
)

// program is the compiled, linear form of a token stream: one
// value.Value per executable item. Nested vector literals are fully
// built (recursively, but with an explicit stack here rather than Go
// recursion, per spec.md §4.3's "MUST NOT recurse" for bracket
// nesting) before being appended as a single value.Vector item —
// "the whole vector is pushed as one Value" (spec.md §4.5.2 item 1).
//
// A bare identifier compiles to a value.WordRef "for later dispatch";
// TRUE/FALSE/NIL compile directly to their literal Values, since they
// are reserved literal spellings rather than dictionary words.
//
// descriptions runs parallel to items: descriptions[i] is non-nil
// only when items[i] is the WordRef name token immediately following
// a DEF invocation with a trailing "# text" comment on the same
// source line (spec.md §4.5.2 item 2).
type program struct {
	items        []value.Value
	descriptions []*string
}

type compileFrame struct {
	items []value.Value
	descs []*string
}

// compile turns a preserved-comments token stream into a program.
func compile(toks []lexer.Token) (program, error) {
	stack := []compileFrame{{}}
	lastWasDEF := false

	push := func(v value.Value, desc *string) {
		top := &stack[len(stack)-1]
		top.items = append(top.items, v)
		top.descs = append(top.descs, desc)
	}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.Kind {
		case lexer.EOF:
			continue

		case lexer.COMMENT:
			// A comment not immediately consumed as a DEF description
			// (see the IDENT case below) is just discarded.
			continue

		case lexer.LBRACKET:
			stack = append(stack, compileFrame{})
			lastWasDEF = false

		case lexer.RBRACKET:
			if len(stack) == 1 {
				return program{}, kerrors.New(kerrors.ParseError, "unmatched ]")
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			push(value.Vector(closed.items), nil)
			lastWasDEF = false

		case lexer.NUMBER:
			r, err := rational.Parse(t.Literal)
			if err != nil {
				return program{}, err
			}
			push(value.NewNumber(r), nil)
			lastWasDEF = false

		case lexer.STRING:
			push(value.String(t.Literal), nil)
			lastWasDEF = false

		case lexer.SYMBOL:
			push(value.Symbol(lexer.Normalize(t.Literal)), nil)
			lastWasDEF = false

		case lexer.IDENT:
			name := lexer.Normalize(t.Literal)
			switch name {
			case "TRUE":
				push(value.Boolean(true), nil)
				lastWasDEF = false
				continue
			case "FALSE":
				push(value.Boolean(false), nil)
				lastWasDEF = false
				continue
			case "NIL":
				push(value.Nil{}, nil)
				lastWasDEF = false
				continue
			}

			var desc *string
			if lastWasDEF {
				if j := i + 1; j < len(toks) && toks[j].Kind == lexer.COMMENT && toks[j].Line == t.Line {
					text := toks[j].Literal
					desc = &text
					i = j // consume the comment token
				}
			}
			push(value.WordRef(name), desc)
			lastWasDEF = name == "DEF"

		case lexer.ILLEGAL:
			return program{}, kerrors.New(kerrors.ParseError, "%s", t.Literal)
		}
	}

	if len(stack) != 1 {
		return program{}, kerrors.New(kerrors.ParseError, "unmatched [")
	}
	return program{items: stack[0].items, descriptions: stack[0].descs}, nil
}
