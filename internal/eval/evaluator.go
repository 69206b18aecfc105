// Package eval is the core of spec.md §4.5: a data stack plus a
// single register, an output buffer for print words, DEF/DEL/IF
// handling, the built-in primitive table, implicit iteration, and
// resumable single-step execution.
//
// Grounded on the teacher's internal/interp.Interpreter (a struct
// owning its stack/environment/output, with builtins split across
// builtins_*.go files by concern) and its §9 design note to splice
// word bodies onto an explicit work stack rather than recursing on
// the host call stack.
package eval

import (
	"strings"

	"github.com/rstack-lang/rstack/internal/dict"
	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/lexer"
	"github.com/rstack-lang/rstack/internal/value"
)

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithTrace makes the evaluator write one line per dispatched word to
// w, mirroring the lexer's WithTrace option.
func WithTrace(w traceWriter) Option {
	return func(e *Evaluator) { e.trace = w }
}

type traceWriter interface {
	WriteString(string) (int, error)
}

// continuation is the resumable state init_step/step drive (spec.md
// §4.5.7): the explicit frame stack plus the top-level program's
// length, used to report position/total to the host.
type continuation struct {
	frames     []frame
	topLevelN  int
}

// Evaluator owns one interpreter instance's mutable state: the data
// stack, the single register, the output buffer, and the dictionary
// of built-in and user words. None of it is shared across instances
// (spec.md §5).
type Evaluator struct {
	Dict *dict.Dictionary

	stack    []value.Value
	register *value.Value
	output   strings.Builder
	cont     *continuation
	trace    traceWriter
}

// New creates an Evaluator with every built-in of spec.md §4.5.3
// registered in a fresh Dictionary.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{Dict: dict.New()}
	for _, opt := range opts {
		opt(e)
	}
	e.registerBuiltins()
	return e
}

// Reset clears the stack, register, output, step continuation, and
// every User word, leaving built-ins untouched (spec.md §5).
func (e *Evaluator) Reset() {
	e.stack = nil
	e.register = nil
	e.output.Reset()
	e.cont = nil
	e.Dict.ResetUser()
}

// Stack returns a snapshot of the data stack, bottom to top.
func (e *Evaluator) Stack() []value.Value {
	out := make([]value.Value, len(e.stack))
	copy(out, e.stack)
	return out
}

// Register returns the register's value and whether it is occupied.
func (e *Evaluator) Register() (value.Value, bool) {
	if e.register == nil {
		return nil, false
	}
	return *e.register, true
}

func (e *Evaluator) push(v value.Value) { e.stack = append(e.stack, v) }

func (e *Evaluator) pop() (value.Value, error) {
	if len(e.stack) == 0 {
		return nil, kerrors.New(kerrors.StackUnderflow, "stack is empty")
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

func (e *Evaluator) peek() (value.Value, error) {
	if len(e.stack) == 0 {
		return nil, kerrors.New(kerrors.StackUnderflow, "stack is empty")
	}
	return e.stack[len(e.stack)-1], nil
}

func (e *Evaluator) write(s string) { e.output.WriteString(s) }

// Execute tokenizes and runs source to completion, returning its
// accumulated output (spec.md §6 execute). The output buffer is
// cleared at the start of the call.
func (e *Evaluator) Execute(source string) (string, error) {
	e.output.Reset()
	prog, err := e.tokenizeAndCompile(source)
	if err != nil {
		return "", err
	}
	if err := e.runToCompletion([]frame{{items: prog.items, descs: prog.descriptions}}); err != nil {
		return e.output.String(), err
	}
	return e.output.String(), nil
}

func (e *Evaluator) tokenizeAndCompile(source string) (program, error) {
	toks, err := lexer.Tokenize(source, lexer.WithPreserveComments(true))
	if err != nil {
		return program{}, err
	}
	return compile(toks)
}

// InitStep tokenizes source and prepares a step continuation,
// clearing the previous output buffer (spec.md §4.5.7).
func (e *Evaluator) InitStep(source string) error {
	e.output.Reset()
	prog, err := e.tokenizeAndCompile(source)
	if err != nil {
		e.cont = nil
		return err
	}
	e.cont = &continuation{
		frames:    []frame{{items: prog.items, descs: prog.descriptions}},
		topLevelN: len(prog.items),
	}
	return nil
}

// StepResult is returned by Step.
type StepResult struct {
	OutputDelta string
	Position    int
	Total       int
	HasMore     bool
	Err         error
}

// Step advances the active continuation by exactly one user-visible
// action (spec.md §4.5.7) and reports the output produced since the
// previous step/init_step call. A User word invocation splices its
// body onto the frame stack as an atomic frame (dispatch.go); Step
// keeps driving that stack here, in a plain loop rather than host
// recursion, until every atomic frame it entered has drained, so the
// invocation still surfaces as a single step. IF-spliced branches are
// not atomic and stay visible step by step, so this loop does not run
// for them.
func (e *Evaluator) Step() StepResult {
	if e.cont == nil {
		return StepResult{Err: kerrors.New(kerrors.ParseError, "no active step session")}
	}

	// dropDone pops exhausted frames so a drained word body is not
	// mistaken for a still-running one and the end of input is seen
	// as soon as the last action ran.
	dropDone := func() {
		f := e.cont.frames
		for len(f) > 0 && f[len(f)-1].done() {
			f = f[:len(f)-1]
		}
		e.cont.frames = f
	}
	before := e.output.Len()
	err := e.doAction(&e.cont.frames)
	dropDone()
	for err == nil && hasAtomicFrame(e.cont.frames) {
		err = e.doAction(&e.cont.frames)
		dropDone()
	}
	delta := e.output.String()[before:]

	pos, total := e.continuationProgress()
	hasMore := err == nil && len(e.cont.frames) > 0

	if !hasMore {
		e.cont = nil
	}
	return StepResult{OutputDelta: delta, Position: pos, Total: total, HasMore: hasMore, Err: err}
}

// hasAtomicFrame reports whether any frame on the stack belongs to an
// in-progress User word invocation.
func hasAtomicFrame(frames []frame) bool {
	for _, f := range frames {
		if f.atomic {
			return true
		}
	}
	return false
}

// continuationProgress reports (position, total) against the
// top-level compiled program: position is how far into it frame 0
// has advanced (spec.md §4.5.7 "position, index of next token"); once
// frame 0 is exhausted and popped, position reads as total. Branch
// frames spliced in by IF do not have their own position reported —
// spec.md does not name a wire shape for nested-frame progress, so
// this keeps position anchored to the user's literal top-level input,
// the one thing §4.5.7 explicitly measures it against.
func (e *Evaluator) continuationProgress() (int, int) {
	if e.cont == nil {
		return 0, 0
	}
	total := e.cont.topLevelN
	if len(e.cont.frames) == 0 {
		return total, total
	}
	return e.cont.frames[0].pos, total
}
