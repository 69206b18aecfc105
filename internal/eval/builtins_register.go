package eval

import "github.com/rstack-lang/rstack/internal/kerrors"

// registerRegisterBuiltins wires >R, R>, R@. spec.md's Open Question
// #2 is resolved in favor of fail-on-occupied for >R (the safer,
// more common concatenative convention); R@/R> only ever fail on an
// empty register.
func (e *Evaluator) registerRegisterBuiltins() {
	e.Dict.RegisterBuiltin(">R", func() error {
		if e.register != nil {
			return kerrors.New(kerrors.RegisterOccupied, "register already holds a value")
		}
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.register = &a
		return nil
	})

	e.Dict.RegisterBuiltin("R>", func() error {
		if e.register == nil {
			return kerrors.New(kerrors.RegisterEmpty, "register is empty")
		}
		e.push(*e.register)
		e.register = nil
		return nil
	})

	e.Dict.RegisterBuiltin("R@", func() error {
		if e.register == nil {
			return kerrors.New(kerrors.RegisterEmpty, "register is empty")
		}
		e.push(*e.register)
		return nil
	})
}
