package eval

import (
	"strings"

	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/value"
)

// registerIOBuiltins wires the primitives that append to the output
// buffer: ".", PRINT, CR, SPACE, SPACES, EMIT.
func (e *Evaluator) registerIOBuiltins() {
	e.Dict.RegisterBuiltin(".", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.write(a.String())
		return nil
	})

	e.Dict.RegisterBuiltin("PRINT", func() error {
		a, err := e.peek()
		if err != nil {
			return err
		}
		e.write(a.String())
		return nil
	})

	e.Dict.RegisterBuiltin("CR", func() error {
		e.write("\n")
		return nil
	})

	e.Dict.RegisterBuiltin("SPACE", func() error {
		e.write(" ")
		return nil
	})

	e.Dict.RegisterBuiltin("SPACES", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		n, ok := a.(value.Number)
		if !ok || n.R.Q != 1 {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "SPACES expects an integer count")
		}
		count := n.R.P
		if count < 0 {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "SPACES expects a non-negative count")
		}
		e.write(strings.Repeat(" ", int(count)))
		return nil
	})

	e.Dict.RegisterBuiltin("EMIT", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		n, ok := a.(value.Number)
		if !ok || n.R.Q != 1 {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "EMIT expects an integer character code")
		}
		code := n.R.P
		if code < 0 || code > 0x10FFFF {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "EMIT expects a valid character code")
		}
		e.write(string(rune(code)))
		return nil
	})
}
