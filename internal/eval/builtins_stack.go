package eval

func (e *Evaluator) registerStackBuiltins() {
	e.Dict.RegisterBuiltin("DUP", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		e.push(a)
		e.push(a)
		return nil
	})

	e.Dict.RegisterBuiltin("DROP", func() error {
		_, err := e.pop()
		return err
	})

	e.Dict.RegisterBuiltin("SWAP", func() error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			e.push(b)
			return err
		}
		e.push(b)
		e.push(a)
		return nil
	})

	e.Dict.RegisterBuiltin("OVER", func() error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			e.push(b)
			return err
		}
		e.push(a)
		e.push(b)
		e.push(a)
		return nil
	})

	e.Dict.RegisterBuiltin("ROT", func() error {
		c, err := e.pop()
		if err != nil {
			return err
		}
		b, err := e.pop()
		if err != nil {
			e.push(c)
			return err
		}
		a, err := e.pop()
		if err != nil {
			e.push(b)
			e.push(c)
			return err
		}
		e.push(b)
		e.push(c)
		e.push(a)
		return nil
	})

	e.Dict.RegisterBuiltin("NIP", func() error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			e.push(b)
			return err
		}
		_ = a
		e.push(b)
		return nil
	})
}
