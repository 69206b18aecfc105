package eval

import (
	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/rational"
	"github.com/rstack-lang/rstack/internal/value"
)

func asVector(v value.Value) (value.Vector, bool) {
	vec, ok := v.(value.Vector)
	return vec, ok
}

func (e *Evaluator) registerVectorBuiltins() {
	e.Dict.RegisterBuiltin("LENGTH", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		vec, ok := asVector(a)
		if !ok {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "LENGTH expects a vector")
		}
		r, _ := rational.New(int64(len(vec)), 1)
		e.push(value.NewNumber(r))
		return nil
	})

	e.Dict.RegisterBuiltin("HEAD", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		vec, ok := asVector(a)
		if !ok {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "HEAD expects a vector")
		}
		if len(vec) == 0 {
			e.push(a)
			return kerrors.New(kerrors.EmptyVector, "HEAD of an empty vector")
		}
		e.push(vec[0])
		return nil
	})

	e.Dict.RegisterBuiltin("TAIL", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		vec, ok := asVector(a)
		if !ok {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "TAIL expects a vector")
		}
		if len(vec) == 0 {
			e.push(a)
			return kerrors.New(kerrors.EmptyVector, "TAIL of an empty vector")
		}
		out := make(value.Vector, len(vec)-1)
		copy(out, vec[1:])
		e.push(out)
		return nil
	})

	e.Dict.RegisterBuiltin("CONS", func() error {
		vecVal, err := e.pop()
		if err != nil {
			return err
		}
		elem, err := e.pop()
		if err != nil {
			e.push(vecVal)
			return err
		}
		vec, ok := asVector(vecVal)
		if !ok {
			e.push(elem)
			e.push(vecVal)
			return kerrors.New(kerrors.TypeError, "CONS expects a vector")
		}
		out := make(value.Vector, 0, len(vec)+1)
		out = append(out, elem)
		out = append(out, vec...)
		e.push(out)
		return nil
	})

	e.Dict.RegisterBuiltin("APPEND", func() error {
		elem, err := e.pop()
		if err != nil {
			return err
		}
		vecVal, err := e.pop()
		if err != nil {
			e.push(elem)
			return err
		}
		vec, ok := asVector(vecVal)
		if !ok {
			e.push(vecVal)
			e.push(elem)
			return kerrors.New(kerrors.TypeError, "APPEND expects a vector")
		}
		out := make(value.Vector, 0, len(vec)+1)
		out = append(out, vec...)
		out = append(out, elem)
		e.push(out)
		return nil
	})

	e.Dict.RegisterBuiltin("REVERSE", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		vec, ok := asVector(a)
		if !ok {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "REVERSE expects a vector")
		}
		out := make(value.Vector, len(vec))
		for i, v := range vec {
			out[len(vec)-1-i] = v
		}
		e.push(out)
		return nil
	})

	e.Dict.RegisterBuiltin("NTH", func() error {
		vecVal, err := e.pop()
		if err != nil {
			return err
		}
		nVal, err := e.pop()
		if err != nil {
			e.push(vecVal)
			return err
		}
		vec, ok := asVector(vecVal)
		if !ok {
			e.push(nVal)
			e.push(vecVal)
			return kerrors.New(kerrors.TypeError, "NTH expects a vector")
		}
		n, ok := nVal.(value.Number)
		if !ok {
			e.push(nVal)
			e.push(vecVal)
			return kerrors.New(kerrors.TypeError, "NTH expects a number index")
		}
		idx, ok := indexInto(n, len(vec))
		if !ok {
			e.push(nVal)
			e.push(vecVal)
			return kerrors.New(kerrors.IndexOutOfRange, "index %s out of range for a vector of length %d", n.R.String(), len(vec))
		}
		e.push(vec[idx])
		return nil
	})

	e.Dict.RegisterBuiltin("UNCONS", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		vec, ok := asVector(a)
		if !ok {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "UNCONS expects a vector")
		}
		if len(vec) == 0 {
			e.push(a)
			return kerrors.New(kerrors.EmptyVector, "UNCONS of an empty vector")
		}
		tail := make(value.Vector, len(vec)-1)
		copy(tail, vec[1:])
		e.push(vec[0])
		e.push(tail)
		return nil
	})

	e.Dict.RegisterBuiltin("EMPTY?", func() error {
		a, err := e.pop()
		if err != nil {
			return err
		}
		vec, ok := asVector(a)
		if !ok {
			e.push(a)
			return kerrors.New(kerrors.TypeError, "EMPTY? expects a vector")
		}
		e.push(value.Boolean(len(vec) == 0))
		return nil
	})
}

// indexInto resolves a Number index against a vector of length n,
// per spec.md's NTH row: negative indexes count from the end. n must
// have denominator 1 to be a valid index.
func indexInto(num value.Number, n int) (int, bool) {
	if num.R.Q != 1 {
		return 0, false
	}
	idx := int(num.R.P)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}
