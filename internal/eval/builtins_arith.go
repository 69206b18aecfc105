package eval

import (
	"github.com/rstack-lang/rstack/internal/rational"
	"github.com/rstack-lang/rstack/internal/value"
)

// binary pops b then a (so the stack reads ( a b -- ... ) per spec.md
// §4.5.3), restoring both on any failure, then calls op.
func (e *Evaluator) binary(op numOp) error {
	b, err := e.pop()
	if err != nil {
		return err
	}
	a, err := e.pop()
	if err != nil {
		e.push(b)
		return err
	}
	result, err := broadcast(a, b, op)
	if err != nil {
		e.push(a)
		e.push(b)
		return err
	}
	e.push(result)
	return nil
}

func (e *Evaluator) registerArithBuiltins() {
	e.Dict.RegisterBuiltin("+", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			r, err := rational.Add(a, b)
			if err != nil {
				return nil, err
			}
			return value.NewNumber(r), nil
		})
	})
	e.Dict.RegisterBuiltin("-", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			r, err := rational.Sub(a, b)
			if err != nil {
				return nil, err
			}
			return value.NewNumber(r), nil
		})
	})
	e.Dict.RegisterBuiltin("*", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			r, err := rational.Mul(a, b)
			if err != nil {
				return nil, err
			}
			return value.NewNumber(r), nil
		})
	})
	e.Dict.RegisterBuiltin("/", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			r, err := rational.Quo(a, b)
			if err != nil {
				return nil, err
			}
			return value.NewNumber(r), nil
		})
	})
	e.Dict.RegisterBuiltin("<", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			return value.Boolean(rational.Cmp(a, b) < 0), nil
		})
	})
	e.Dict.RegisterBuiltin("<=", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			return value.Boolean(rational.Cmp(a, b) <= 0), nil
		})
	})
	e.Dict.RegisterBuiltin(">", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			return value.Boolean(rational.Cmp(a, b) > 0), nil
		})
	})
	e.Dict.RegisterBuiltin(">=", func() error {
		return e.binary(func(a, b rational.Rational) (value.Value, error) {
			return value.Boolean(rational.Cmp(a, b) >= 0), nil
		})
	})
	e.Dict.RegisterBuiltin("=", func() error {
		b, err := e.pop()
		if err != nil {
			return err
		}
		a, err := e.pop()
		if err != nil {
			e.push(b)
			return err
		}
		e.push(value.Boolean(value.Equal(a, b)))
		return nil
	})
}

func (e *Evaluator) registerNotBuiltin() {
	e.Dict.RegisterBuiltin("NOT", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		result, err := broadcastUnary(a, func(b value.Boolean) (value.Value, error) {
			return value.Boolean(!b), nil
		})
		if err != nil {
			e.push(a)
			return err
		}
		e.push(result)
		return nil
	})
}
