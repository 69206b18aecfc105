// Package rational implements exact rational arithmetic over int64
// numerator/denominator pairs, kept in lowest terms with a positive
// denominator after every operation (spec.md §3/§4.1). There is no
// pack repo that ships a rational or bignum type to ground this on;
// it is built directly from the specification, shaped like the
// teacher's small single-purpose internal packages.
package rational

import (
	"math"

	"github.com/rstack-lang/rstack/internal/kerrors"
)

// Rational is a fraction p/q in lowest terms, q > 0.
type Rational struct {
	P int64
	Q int64
}

// Zero is the additive identity, 0/1.
var Zero = Rational{P: 0, Q: 1}

// New constructs p/q, normalizing sign to the numerator and dividing
// both components by their gcd. It fails with kerrors.DivisionByZero
// if q is 0.
func New(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, kerrors.New(kerrors.DivisionByZero, "rational denominator is zero")
	}
	if q < 0 {
		if p == minInt64 || q == minInt64 {
			return Rational{}, kerrors.New(kerrors.NumericOverflow, "rational component overflow")
		}
		p, q = -p, -q
	}
	g := gcd(abs64(p), q)
	if g == 0 {
		g = 1
	}
	return Rational{P: p / g, Q: q / g}, nil
}

const minInt64 = -1 << 63

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Parse reads an integer literal ("-?digits") or a fraction literal
// ("-?digits/digits") per spec.md §4.1.
func Parse(text string) (Rational, error) {
	for i := 0; i < len(text); i++ {
		if text[i] == '/' {
			pPart, qPart := text[:i], text[i+1:]
			p, err := parseInt(pPart)
			if err != nil {
				return Rational{}, err
			}
			q, err := parseInt(qPart)
			if err != nil {
				return Rational{}, err
			}
			return New(p, q)
		}
	}
	p, err := parseInt(text)
	if err != nil {
		return Rational{}, err
	}
	return New(p, 1)
}

func parseInt(text string) (int64, error) {
	if text == "" {
		return 0, kerrors.New(kerrors.ParseError, "malformed number %q", text)
	}
	neg := false
	i := 0
	if text[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(text) {
		return 0, kerrors.New(kerrors.ParseError, "malformed number %q", text)
	}
	var n int64
	for ; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, kerrors.New(kerrors.ParseError, "malformed number %q", text)
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, kerrors.New(kerrors.NumericOverflow, "numeric literal %q overflows", text)
		}
		n = n*10 + d
	}
	if neg {
		n = -n
	}
	return n, nil
}

// addOverflows reports whether a+b overflows int64.
func addOverflows(a, b int64) bool {
	if b > 0 {
		return a > math.MaxInt64-b
	}
	return a < math.MinInt64-b
}

// mulOverflows reports whether a*b overflows int64.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b
	return p/a != b
}

// Add returns a+b.
func Add(a, b Rational) (Rational, error) {
	if mulOverflows(a.P, b.Q) || mulOverflows(b.P, a.Q) || mulOverflows(a.Q, b.Q) {
		return Rational{}, kerrors.New(kerrors.NumericOverflow, "addition overflows")
	}
	p1, p2 := a.P*b.Q, b.P*a.Q
	if addOverflows(p1, p2) {
		return Rational{}, kerrors.New(kerrors.NumericOverflow, "addition overflows")
	}
	return New(p1+p2, a.Q*b.Q)
}

// Sub returns a-b.
func Sub(a, b Rational) (Rational, error) {
	neg, err := New(-b.P, b.Q)
	if err != nil {
		return Rational{}, err
	}
	return Add(a, neg)
}

// Mul returns a*b.
func Mul(a, b Rational) (Rational, error) {
	if mulOverflows(a.P, b.P) || mulOverflows(a.Q, b.Q) {
		return Rational{}, kerrors.New(kerrors.NumericOverflow, "multiplication overflows")
	}
	return New(a.P*b.P, a.Q*b.Q)
}

// Quo returns a/b. Fails with DivisionByZero when b's numerator is 0.
func Quo(a, b Rational) (Rational, error) {
	if b.P == 0 {
		return Rational{}, kerrors.New(kerrors.DivisionByZero, "division by zero")
	}
	if mulOverflows(a.P, b.Q) || mulOverflows(a.Q, b.P) {
		return Rational{}, kerrors.New(kerrors.NumericOverflow, "division overflows")
	}
	return New(a.P*b.Q, a.Q*b.P)
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than
// b, via cross-multiplication (a.P*b.Q vs b.P*a.Q).
func Cmp(a, b Rational) int {
	l, r := a.P*b.Q, b.P*a.Q
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b denote the same value.
func Equal(a, b Rational) bool {
	return a.P*b.Q == b.P*a.Q
}

// String renders n when Q==1, else "n/d".
func (r Rational) String() string {
	if r.Q == 1 {
		return itoa(r.P)
	}
	return itoa(r.P) + "/" + itoa(r.Q)
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
