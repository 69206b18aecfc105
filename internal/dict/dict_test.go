package dict

import (
	"testing"

	"github.com/rstack-lang/rstack/internal/value"
)

func body(items ...value.Value) []value.Value { return items }

func TestRegisterAndLookupBuiltin(t *testing.T) {
	d := New()
	called := false
	d.RegisterBuiltin("DUP", func() error { called = true; return nil })

	w, ok := d.Lookup("dup")
	if !ok {
		t.Fatal("expected DUP to be found case-insensitively")
	}
	b, ok := w.(Builtin)
	if !ok {
		t.Fatal("expected a Builtin")
	}
	if err := b.Fn(); err != nil || !called {
		t.Fatalf("Fn() did not run: err=%v called=%v", err, called)
	}
	if !d.IsBuiltin("Dup") {
		t.Error("IsBuiltin should be case-insensitive and true for DUP")
	}
}

func TestDefineAndRemove(t *testing.T) {
	d := New()
	d.RegisterBuiltin("+", func() error { return nil })

	if err := d.Define("DOUBLE", body(value.WordRef("DUP"), value.WordRef("+")), nil); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if d.RefCount("+") != 1 {
		t.Errorf("RefCount(+) = %d, want 1", d.RefCount("+"))
	}
	if !d.Protected("+") {
		t.Error("+ should be protected as a builtin")
	}

	if err := d.Remove("DOUBLE"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if d.RefCount("+") != 0 {
		t.Errorf("RefCount(+) after removal = %d, want 0", d.RefCount("+"))
	}
	if _, ok := d.Lookup("DOUBLE"); ok {
		t.Error("DOUBLE should no longer be looked up after Remove")
	}
}

func TestDefineCannotShadowBuiltin(t *testing.T) {
	d := New()
	d.RegisterBuiltin("DUP", func() error { return nil })

	if err := d.Define("DUP", body(), nil); err == nil {
		t.Fatal("expected error defining over a builtin")
	}
}

func TestRemoveProtectedFails(t *testing.T) {
	d := New()
	if err := d.Define("A", body(), nil); err != nil {
		t.Fatalf("Define A failed: %v", err)
	}
	if err := d.Define("B", body(value.WordRef("A")), nil); err != nil {
		t.Fatalf("Define B failed: %v", err)
	}
	if err := d.Remove("A"); err == nil {
		t.Fatal("expected Remove(A) to fail while B depends on it")
	}
	if err := d.Remove("B"); err != nil {
		t.Fatalf("Remove(B) should succeed: %v", err)
	}
	if err := d.Remove("A"); err != nil {
		t.Fatalf("Remove(A) should now succeed: %v", err)
	}
}

func TestRedefineSelfReferencingWordAllowed(t *testing.T) {
	d := New()
	if err := d.Define("A", body(value.WordRef("A")), nil); err != nil {
		t.Fatalf("initial Define A failed: %v", err)
	}
	// A is free to redefine itself even while its own old body
	// referenced itself directly.
	if err := d.Define("A", body(), nil); err != nil {
		t.Fatalf("self-redefine should succeed: %v", err)
	}
}

func TestRedefineSelfReferencingWordWithNonEmptyBodyAllowed(t *testing.T) {
	d := New()
	if err := d.Define("A", body(value.WordRef("A")), nil); err != nil {
		t.Fatalf("initial Define A failed: %v", err)
	}
	// The first Define leaves A self-referencing; redefining A again
	// with a body that still references itself must not trip
	// Protected, since self-reference never counts (only an *other*
	// word's dependency does).
	if err := d.Define("A", body(value.WordRef("A")), nil); err != nil {
		t.Fatalf("second self-referencing Define should succeed: %v", err)
	}
	if d.Protected("A") {
		t.Error("A must not be Protected on account of referencing only itself")
	}
	if err := d.Remove("A"); err != nil {
		t.Fatalf("Remove(A) should succeed, nothing else depends on it: %v", err)
	}
}

func TestQuotedSymbolsAreNotDependencies(t *testing.T) {
	d := New()
	d.RegisterBuiltin("DUP", func() error { return nil })

	if err := d.Define("X", body(value.Symbol("DUP")), nil); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if d.RefCount("DUP") != 0 {
		t.Errorf("a quoted sym:DUP must not count as a dependency, RefCount = %d", d.RefCount("DUP"))
	}
}

func TestDependenciesNestedInVector(t *testing.T) {
	d := New()
	d.RegisterBuiltin("DUP", func() error { return nil })

	nested := value.Vector{value.WordRef("DUP")}
	if err := d.Define("X", body(nested), nil); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if d.RefCount("DUP") != 1 {
		t.Errorf("identifier nested inside a vector literal should count as a dependency, RefCount = %d", d.RefCount("DUP"))
	}
}

func TestListUserSortedNaturally(t *testing.T) {
	d := New()
	for _, name := range []string{"WORD10", "word2", "Word1"} {
		if err := d.Define(name, body(), nil); err != nil {
			t.Fatalf("Define(%s) failed: %v", name, err)
		}
	}
	entries := d.ListUser()
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	want := []string{"WORD1", "WORD2", "WORD10"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ListUser()[%d] = %s, want %s (full: %v)", i, names[i], want[i], names)
		}
	}
}

func TestResetUserKeepsBuiltins(t *testing.T) {
	d := New()
	d.RegisterBuiltin("DUP", func() error { return nil })
	if err := d.Define("A", body(), nil); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	d.ResetUser()
	if _, ok := d.Lookup("A"); ok {
		t.Error("ResetUser should have removed A")
	}
	if !d.IsBuiltin("DUP") {
		t.Error("ResetUser must not remove builtins")
	}
	if d.RefCount("DUP") != 0 {
		t.Errorf("RefCount should reset to 0, got %d", d.RefCount("DUP"))
	}
}
