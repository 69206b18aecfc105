package lexer

import "testing"

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize(`3 4 + DUP sym:Foo "hi" [ 1 2 ]`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []Kind{NUMBER, NUMBER, IDENT, IDENT, SYMBOL, STRING, LBRACKET, NUMBER, NUMBER, RBRACKET, EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeNegativeNumber(t *testing.T) {
	toks, err := Tokenize(`-5 3/4 -1/2`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	for i, want := range []string{"-5", "3/4", "-1/2"} {
		if toks[i].Kind != NUMBER || toks[i].Literal != want {
			t.Errorf("token %d = %+v, want NUMBER %q", i, toks[i], want)
		}
	}
}

func TestTokenizeSymbolCaseInsensitivePrefix(t *testing.T) {
	toks, err := Tokenize(`Sym:Foo SYM:bar`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks[0].Kind != SYMBOL || toks[0].Literal != "Foo" {
		t.Errorf("token 0 = %+v, want SYMBOL Foo", toks[0])
	}
	if toks[1].Kind != SYMBOL || toks[1].Literal != "bar" {
		t.Errorf("token 1 = %+v, want SYMBOL bar", toks[1])
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize("DUP # this is a comment\nDROP")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []Kind{IDENT, IDENT, EOF}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestTokenizePreserveComments(t *testing.T) {
	toks, err := Tokenize("DUP # note\nDROP", WithPreserveComments(true))
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []Kind{IDENT, COMMENT, IDENT, EOF}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if toks[1].Literal != "note" {
		t.Errorf("comment literal = %q, want %q", toks[1].Literal, "note")
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	if _, err := Tokenize(`"unterminated`); err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestTokenizeUnmatchedBracketsAreOK(t *testing.T) {
	// Bracket matching is compile-level, not lex-level; the lexer
	// should happily emit unbalanced brackets.
	toks, err := Tokenize(`[ [ 1`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []Kind{LBRACKET, LBRACKET, NUMBER, EOF}
	if got := kinds(toks); !equalKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got, want := Normalize("dup"), "DUP"; got != want {
		t.Errorf("Normalize(%q) = %q, want %q", "dup", got, want)
	}
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
