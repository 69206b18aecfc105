// Package kernel is the embeddable Host API façade of spec.md §6: a
// handle wrapping one internal/eval.Evaluator instance, with every
// operation returning plain data (strings, slices, structs) so any
// host binding — CLI, WASM bridge, test harness — can map it without
// reaching into the evaluator's internals.
//
// Shaped on the teacher's pkg/dwscript engine façade (New(opts...),
// Eval, a result struct, functional options), adapted to spec §6's
// own shape: Execute returns its own accumulated output rather than
// writing through a caller-supplied io.Writer, since §6 defines
// output as part of the call's return value, not a side channel.
package kernel

import (
	"github.com/rstack-lang/rstack/internal/eval"
	"github.com/rstack-lang/rstack/internal/kerrors"
)

// Option configures a Kernel at construction time.
type Option func(*Kernel)

// WithTrace forwards to eval.WithTrace, so a host can watch word
// dispatch for debugging without instrumenting its own call sites.
func WithTrace(w traceWriter) Option {
	return func(k *Kernel) { k.traceOpt = eval.WithTrace(w) }
}

type traceWriter interface {
	WriteString(string) (int, error)
}

// Kernel is one interpreter instance (spec.md §5): it owns exactly
// one Stack, Register, Dictionary, OutputBuffer, and optional step
// continuation, none of which are shared with any other Kernel.
type Kernel struct {
	eval     *eval.Evaluator
	traceOpt eval.Option
}

// New starts a Kernel with an empty Stack, empty Register, empty
// OutputBuffer, and a Dictionary containing every Builtin of spec.md
// §4.5.3 (spec §6 new()).
func New(opts ...Option) *Kernel {
	k := &Kernel{}
	for _, opt := range opts {
		opt(k)
	}
	var evalOpts []eval.Option
	if k.traceOpt != nil {
		evalOpts = append(evalOpts, k.traceOpt)
	}
	k.eval = eval.New(evalOpts...)
	return k
}

// ExecuteResult is returned by Execute (spec.md §6 execute()).
type ExecuteResult struct {
	Status string
	Output string
	// Kind is the error's Kind when Status is not "OK", for hosts that
	// want to switch on it instead of parsing the status string.
	Kind kerrors.Kind
}

// Execute tokenizes, compiles, and runs source to completion in one
// call (spec §6 execute()). On error, Status carries the error's
// "Error: ..." message and Output retains whatever was written before
// the failing primitive.
func (k *Kernel) Execute(source string) ExecuteResult {
	output, err := k.eval.Execute(source)
	if err != nil {
		kind, _ := kerrors.KindOf(err)
		return ExecuteResult{Status: err.Error(), Output: output, Kind: kind}
	}
	return ExecuteResult{Status: "OK", Output: output}
}

// InitStep prepares a step continuation over source, clearing any
// previous OutputBuffer and continuation (spec §6 init_step()).
func (k *Kernel) InitStep(source string) string {
	if err := k.eval.InitStep(source); err != nil {
		return err.Error()
	}
	return "OK"
}

// StepResult is returned by Step (spec.md §4.5.7 / §6 step()).
type StepResult struct {
	Output   string
	Position int
	Total    int
	HasMore  bool
	Status   string
	Kind     kerrors.Kind
}

// Step advances the active continuation by exactly one user-visible
// action (spec §6 step()). Calling Step with no active continuation
// reports a ParseError status rather than panicking.
func (k *Kernel) Step() StepResult {
	r := k.eval.Step()
	status := "OK"
	var kind kerrors.Kind
	if r.Err != nil {
		status = r.Err.Error()
		kind, _ = kerrors.KindOf(r.Err)
	}
	return StepResult{Output: r.OutputDelta, Position: r.Position, Total: r.Total, HasMore: r.HasMore, Status: status, Kind: kind}
}

// GetStack returns the data stack, bottom to top, serialized per
// spec §6's tagged-record wire format.
func (k *Kernel) GetStack() []SerializedValue {
	stack := k.eval.Stack()
	out := make([]SerializedValue, len(stack))
	for i, v := range stack {
		out[i] = Serialize(v)
	}
	return out
}

// InspectStack renders the data stack, bottom to top, the way a
// human-facing host (the CLI, a REPL) would echo it back: each value's
// spec.md §4.2 Inspect form, not the JSON wire encoding.
func (k *Kernel) InspectStack() []string {
	stack := k.eval.Stack()
	out := make([]string, len(stack))
	for i, v := range stack {
		out[i] = v.Inspect()
	}
	return out
}

// GetRegister returns the register's serialized value, or nil if the
// register is empty (spec §6 get_register()).
func (k *Kernel) GetRegister() *SerializedValue {
	v, ok := k.eval.Register()
	if !ok {
		return nil
	}
	s := Serialize(v)
	return &s
}

// GetCustomWords returns every User word's name, sorted
// case-insensitively (spec §6 get_custom_words()).
func (k *Kernel) GetCustomWords() []string {
	entries := k.eval.Dict.ListUser()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// CustomWordInfo is one row of GetCustomWordsInfo.
type CustomWordInfo struct {
	Name        string
	Description *string
	Protected   bool
}

// GetCustomWordsInfo returns (name, description, protected) for every
// User word, sorted case-insensitively (spec §6 get_custom_words_info()).
func (k *Kernel) GetCustomWordsInfo() []CustomWordInfo {
	entries := k.eval.Dict.ListUser()
	out := make([]CustomWordInfo, len(entries))
	for i, e := range entries {
		out[i] = CustomWordInfo{Name: e.Name, Description: e.Description, Protected: e.Protected}
	}
	return out
}

// Reset atomically clears the Stack, Register, OutputBuffer, any step
// continuation, and every User word; Builtins are preserved (spec §5,
// §6 reset()).
func (k *Kernel) Reset() {
	k.eval.Reset()
}
