// Package dict implements the dictionary of spec.md §3/§4.4: a
// case-insensitive name -> Word map with a reference-counted
// dependency graph that protects built-ins and referenced user words
// from deletion or redefinition.
//
// Shaped on the teacher's internal/interp/environment.go, which wraps
// its scope map behind a small constructor pair (New / NewEnclosed);
// here there is only ever one scope (spec.md has no lexical nesting),
// so Dictionary is the map itself plus the refcount index.
package dict

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/lexer"
	"github.com/rstack-lang/rstack/internal/value"
)

// BuiltinFn is the signature every built-in primitive implements. It
// is opaque to this package: dict only needs to know a Builtin is not
// user-deletable or -redefinable.
type BuiltinFn func() error

// Word is a Builtin or a User word.
type Word interface {
	isWord()
}

// Builtin is an evaluator primitive.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (Builtin) isWord() {}

// User is a word captured from a quoted vector at DEF time.
type User struct {
	Name         string
	Body         []value.Value
	Description  *string
	Dependencies map[string]struct{}
}

func (*User) isWord() {}

// Entry is one (name, description, protected) row as returned by
// ListUser / spec.md's list_user.
type Entry struct {
	Name        string
	Description *string
	Protected   bool
}

// Dictionary maps normalized (upper-case) names to Words and tracks
// how many User words depend on each name.
type Dictionary struct {
	words    map[string]Word
	refcount map[string]int
}

// New creates an empty Dictionary with no builtins registered.
func New() *Dictionary {
	return &Dictionary{
		words:    make(map[string]Word),
		refcount: make(map[string]int),
	}
}

// Normalize upper-cases a name for dictionary comparison (spec.md §3).
func Normalize(name string) string { return lexer.Normalize(name) }

// RegisterBuiltin installs a Builtin. It is meant to be called once,
// during kernel construction, before any user DEF/DEL can run; it
// does not go through the Protected/IsBuiltin checks Define and
// Remove enforce for user mutation.
func (d *Dictionary) RegisterBuiltin(name string, fn BuiltinFn) {
	key := Normalize(name)
	d.words[key] = Builtin{Name: key, Fn: fn}
}

// Lookup returns the Word stored for name, if any.
func (d *Dictionary) Lookup(name string) (Word, bool) {
	w, ok := d.words[Normalize(name)]
	return w, ok
}

// IsBuiltin reports whether name names a Builtin.
func (d *Dictionary) IsBuiltin(name string) bool {
	w, ok := d.words[Normalize(name)]
	if !ok {
		return false
	}
	_, ok = w.(Builtin)
	return ok
}

// RefCount reports how many User words currently depend on name.
func (d *Dictionary) RefCount(name string) int {
	return d.refcount[Normalize(name)]
}

// Protected reports whether name cannot currently be removed or
// redefined: it is a Builtin, or at least one User word depends on it.
func (d *Dictionary) Protected(name string) bool {
	key := Normalize(name)
	if d.IsBuiltin(key) {
		return true
	}
	return d.refcount[key] > 0
}

// Define installs a User word bound to name with the given body and
// optional description, computing its dependency set from identifier
// tokens in body that already resolve in the dictionary (spec.md
// §4.4, Open Question #1: dependencies are computed at DEF time, not
// retroactively). Fails with kerrors.IsBuiltin or kerrors.Protected
// without mutating anything.
func (d *Dictionary) Define(name string, body []value.Value, description *string) error {
	key := Normalize(name)
	if d.IsBuiltin(key) {
		return kerrors.New(kerrors.IsBuiltin, "%s is a built-in word", key)
	}
	if existing, ok := d.words[key]; ok {
		if u, ok := existing.(*User); ok {
			// Redefining an existing User word: only protected if some
			// *other* word depends on it. A word is free to redefine
			// itself even while its own old body references it
			// directly, since a self-reference is never counted as a
			// dependency; a cycle through another word (A -> B -> A)
			// does count, so A stays protected while B references it.
			if d.refcount[key] > 0 {
				return kerrors.New(kerrors.Protected, "%s is referenced by another word", key)
			}
			d.release(u.Dependencies)
		}
	}

	deps := dependenciesOf(body, d, key)
	d.words[key] = &User{Name: key, Body: body, Description: description, Dependencies: deps}
	d.acquire(deps)
	return nil
}

// Remove deletes a User word. Fails with kerrors.IsBuiltin for
// built-ins and kerrors.Protected while any other word depends on it.
func (d *Dictionary) Remove(name string) error {
	key := Normalize(name)
	w, ok := d.words[key]
	if !ok {
		return kerrors.New(kerrors.UnknownWord, "%s is not defined", key)
	}
	if d.IsBuiltin(key) {
		return kerrors.New(kerrors.IsBuiltin, "%s is a built-in word", key)
	}
	if d.refcount[key] > 0 {
		return kerrors.New(kerrors.Protected, "%s is referenced by another word", key)
	}
	u := w.(*User)
	d.release(u.Dependencies)
	delete(d.words, key)
	return nil
}

func (d *Dictionary) acquire(deps map[string]struct{}) {
	for dep := range deps {
		d.refcount[dep]++
	}
}

func (d *Dictionary) release(deps map[string]struct{}) {
	for dep := range deps {
		d.refcount[dep]--
		if d.refcount[dep] <= 0 {
			delete(d.refcount, dep)
		}
	}
}

// dependenciesOf walks body (recursing into nested Vectors, spec.md
// §4.4 "Identifiers nested inside a [ … ] literal inside the body
// still count") collecting normalized names that already resolve in
// d at DEF time. selfKey is excluded: a word referencing itself is
// never protected on that account, since the Glossary's Protected
// word is one referenced by at least one *other* User word.
func dependenciesOf(body []value.Value, d *Dictionary, selfKey string) map[string]struct{} {
	deps := make(map[string]struct{})
	var walk func([]value.Value)
	walk = func(vals []value.Value) {
		for _, v := range vals {
			switch t := v.(type) {
			case value.Symbol:
				// Pre-quoted symbols (sym:NAME) are literal data, never
				// dispatched, so they are not dependencies.
			case value.Vector:
				walk([]value.Value(t))
			case value.WordRef:
				name := Normalize(string(t))
				if name == selfKey {
					continue
				}
				if _, ok := d.Lookup(name); ok {
					deps[name] = struct{}{}
				}
			}
		}
	}
	walk(body)
	return deps
}

// ListUser returns every User word as (name, description, protected),
// sorted case-insensitively with natural ordering for embedded digits
// (e.g. "WORD2" before "WORD10") via github.com/maruel/natural — the
// same comparator spec.md §4.4 asks for ("sorted case-insensitively").
func (d *Dictionary) ListUser() []Entry {
	entries := make([]Entry, 0, len(d.words))
	for key, w := range d.words {
		u, ok := w.(*User)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Name:        key,
			Description: u.Description,
			Protected:   d.refcount[key] > 0,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name, entries[j].Name)
	})
	return entries
}

// ResetUser removes every User word, leaving built-ins untouched
// (spec.md §5 reset semantics).
func (d *Dictionary) ResetUser() {
	for key, w := range d.words {
		if _, ok := w.(*User); ok {
			delete(d.words, key)
		}
	}
	d.refcount = make(map[string]int)
}
