package eval

import "github.com/rstack-lang/rstack/internal/value"

// frame is one level of the explicit work stack the evaluator walks
// instead of recursing on the host call stack (spec.md §9, §4.5.6).
// A frame's items are either the top-level compiled program or the
// body of a spliced IF branch / invoked User word.
type frame struct {
	items []value.Value
	descs []*string // aligned with items; nil when unavailable
	pos   int

	// atomic marks a frame spliced in for a User word invocation
	// rather than an IF branch. IF branches stay visible step by step
	// (spec.md §4.5.7); a word's body must drain fully before the
	// invocation counts as done, so Step loops internally while any
	// atomic frame remains on the stack instead of yielding early.
	atomic bool
}

func (f *frame) done() bool { return f.pos >= len(f.items) }

func (f *frame) current() value.Value { return f.items[f.pos] }

// descAt returns the description recorded for items[idx], if any.
func (f *frame) descAt(idx int) *string {
	if f.descs == nil || idx >= len(f.descs) {
		return nil
	}
	return f.descs[idx]
}
