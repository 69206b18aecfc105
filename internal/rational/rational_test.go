package rational

import "testing"

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name   string
		p, q   int64
		wantP  int64
		wantQ  int64
	}{
		{"already lowest terms", 3, 4, 3, 4},
		{"reduces", 2, 4, 1, 2},
		{"negative denominator moves sign", 3, -4, -3, 4},
		{"both negative cancel", -2, -4, 1, 2},
		{"zero numerator", 0, 5, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.p, tt.q)
			if err != nil {
				t.Fatalf("New(%d,%d) error: %v", tt.p, tt.q, err)
			}
			if got.P != tt.wantP || got.Q != tt.wantQ {
				t.Errorf("New(%d,%d) = %d/%d, want %d/%d", tt.p, tt.q, got.P, got.Q, tt.wantP, tt.wantQ)
			}
		})
	}
}

func TestNewDivisionByZero(t *testing.T) {
	if _, err := New(1, 0); err == nil {
		t.Fatal("expected error for zero denominator")
	}
}

func TestParse(t *testing.T) {
	tests := []struct{ text, want string }{
		{"5", "5"},
		{"-5", "-5"},
		{"3/4", "3/4"},
		{"6/4", "3/2"},
		{"-3/4", "-3/4"},
	}
	for _, tt := range tests {
		r, err := Parse(tt.text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.text, err)
		}
		if got := r.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, text := range []string{"", "-", "1/", "/2", "1.5", "1/2/3"} {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q) expected error, got none", text)
		}
	}
}

func TestArithmetic(t *testing.T) {
	half, _ := New(1, 2)
	third, _ := New(1, 3)

	sum, err := Add(half, third)
	if err != nil || sum.String() != "5/6" {
		t.Errorf("1/2 + 1/3 = %v (%v), want 5/6", sum, err)
	}

	diff, err := Sub(half, third)
	if err != nil || diff.String() != "1/6" {
		t.Errorf("1/2 - 1/3 = %v (%v), want 1/6", diff, err)
	}

	prod, err := Mul(half, third)
	if err != nil || prod.String() != "1/6" {
		t.Errorf("1/2 * 1/3 = %v (%v), want 1/6", prod, err)
	}

	quo, err := Quo(half, third)
	if err != nil || quo.String() != "3/2" {
		t.Errorf("1/2 / 1/3 = %v (%v), want 3/2", quo, err)
	}
}

func TestQuoByZero(t *testing.T) {
	one, _ := New(1, 1)
	zero := Zero
	if _, err := Quo(one, zero); err == nil {
		t.Fatal("expected DivisionByZero")
	}
}

func TestCmp(t *testing.T) {
	half, _ := New(1, 2)
	third, _ := New(1, 3)
	if Cmp(half, third) <= 0 {
		t.Error("expected 1/2 > 1/3")
	}
	if Cmp(half, half) != 0 {
		t.Error("expected 1/2 == 1/2")
	}
}

func TestAddOverflow(t *testing.T) {
	big, _ := New(1<<62, 1)
	if _, err := Add(big, big); err == nil {
		t.Fatal("expected NumericOverflow")
	}
}

func TestParseOverflow(t *testing.T) {
	if _, err := Parse("99999999999999999999999999"); err == nil {
		t.Fatal("expected NumericOverflow")
	}
}
