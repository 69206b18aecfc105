package eval

import (
	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/rational"
	"github.com/rstack-lang/rstack/internal/value"
)

// numOp combines two Number Rationals into a resulting Value (a
// Number for arithmetic, a Boolean for comparisons).
type numOp func(a, b rational.Rational) (value.Value, error)

// broadcast implements spec.md §4.5.5's implicit iteration for every
// binary arithmetic/comparison primitive: scalar op scalar applies
// op directly; scalar op vector (either side) broadcasts the scalar
// element-wise; vector op vector of equal length applies op
// element-wise; unequal lengths fail LengthMismatch. Broadcast
// recurses into nested vectors.
func broadcast(a, b value.Value, op numOp) (value.Value, error) {
	av, aIsVec := a.(value.Vector)
	bv, bIsVec := b.(value.Vector)

	switch {
	case !aIsVec && !bIsVec:
		an, ok := a.(value.Number)
		if !ok {
			return nil, kerrors.New(kerrors.TypeError, "expected a number")
		}
		bn, ok := b.(value.Number)
		if !ok {
			return nil, kerrors.New(kerrors.TypeError, "expected a number")
		}
		return op(an.R, bn.R)

	case aIsVec && !bIsVec:
		out := make(value.Vector, len(av))
		for i, e := range av {
			r, err := broadcast(e, b, op)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil

	case !aIsVec && bIsVec:
		out := make(value.Vector, len(bv))
		for i, e := range bv {
			r, err := broadcast(a, e, op)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil

	default:
		if len(av) != len(bv) {
			return nil, kerrors.New(kerrors.LengthMismatch, "vectors have different lengths (%d vs %d)", len(av), len(bv))
		}
		out := make(value.Vector, len(av))
		for i := range av {
			r, err := broadcast(av[i], bv[i], op)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}
}

// broadcastUnary implements implicit iteration for NOT: recurses into
// Vectors element-wise, applies op to a scalar Boolean leaf.
func broadcastUnary(a value.Value, op func(value.Boolean) (value.Value, error)) (value.Value, error) {
	if av, ok := a.(value.Vector); ok {
		out := make(value.Vector, len(av))
		for i, e := range av {
			r, err := broadcastUnary(e, op)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}
	b, ok := a.(value.Boolean)
	if !ok {
		return nil, kerrors.New(kerrors.TypeError, "expected a boolean")
	}
	return op(b)
}
