package value

import (
	"testing"

	"github.com/rstack-lang/rstack/internal/rational"
)

func num(n int64) Number {
	r, _ := rational.New(n, 1)
	return NewNumber(r)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"true boolean", Boolean(true), true},
		{"false boolean", Boolean(false), false},
		{"zero number", num(0), false},
		{"nonzero number", num(1), true},
		{"nil", Nil{}, false},
		{"empty string", String(""), false},
		{"nonempty string", String("x"), true},
		{"empty vector", Vector{}, false},
		{"nonempty vector", Vector{num(1)}, true},
		{"symbol", Symbol("X"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal numbers different kind fraction", num(2), NewNumber(mustRat(4, 2)), true},
		{"different numbers", num(1), num(2), false},
		{"equal strings", String("a"), String("a"), true},
		{"symbol equals wordref by name", Symbol("DUP"), WordRef("DUP"), true},
		{"nil equals nil", Nil{}, Nil{}, true},
		{"vectors equal", Vector{num(1), String("x")}, Vector{num(1), String("x")}, true},
		{"vectors differ by length", Vector{num(1)}, Vector{num(1), num(2)}, false},
		{"different kinds", num(1), String("1"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func mustRat(p, q int64) rational.Rational {
	r, err := rational.New(p, q)
	if err != nil {
		panic(err)
	}
	return r
}

func TestVectorFormatting(t *testing.T) {
	v := Vector{num(1), num(2), String("hi")}
	if got, want := v.String(), "[ 1 2 hi ]"; got != want {
		t.Errorf("Vector.String() = %q, want %q", got, want)
	}
	if got, want := v.Inspect(), `[ 1 2 "hi" ]`; got != want {
		t.Errorf("Vector.Inspect() = %q, want %q", got, want)
	}
}

func TestStringFormatting(t *testing.T) {
	s := String("hi")
	if got, want := s.String(), "hi"; got != want {
		t.Errorf("String.String() = %q, want %q", got, want)
	}
	if got, want := s.Inspect(), `"hi"`; got != want {
		t.Errorf("String.Inspect() = %q, want %q", got, want)
	}
}
