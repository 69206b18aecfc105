package eval

import (
	"github.com/rstack-lang/rstack/internal/dict"
	"github.com/rstack-lang/rstack/internal/kerrors"
	"github.com/rstack-lang/rstack/internal/value"
)

// runToCompletion drives frames to exhaustion, used by top-level
// Execute. It never recurses: IF-spliced branches and invoked User
// word bodies are both pushed onto the same frames slice doAction
// already walks (spec.md §9's explicit work stack), so nesting of
// either kind only grows this slice, never the host call stack.
func (e *Evaluator) runToCompletion(frames []frame) error {
	for len(frames) > 0 {
		if err := e.doAction(&frames); err != nil {
			return err
		}
	}
	return nil
}

// doAction performs exactly one work-stack transition: pushing a
// literal, invoking a Builtin (including DEF, DEL, and IF), or
// splicing an invoked User word's body onto *framesPtr as an atomic
// frame. It first pops any exhausted frames off the top of *frames;
// if nothing remains, it is a no-op. Callers that need a User word's
// invocation to count as a single user-visible step (spec.md §4.5.7)
// keep calling doAction while an atomic frame remains on the stack;
// see Step.
func (e *Evaluator) doAction(framesPtr *[]frame) error {
	frames := *framesPtr
	for len(frames) > 0 && frames[len(frames)-1].done() {
		frames = frames[:len(frames)-1]
	}
	*framesPtr = frames
	if len(frames) == 0 {
		return nil
	}

	top := &frames[len(frames)-1]
	item := top.current()

	ref, isWord := item.(value.WordRef)
	if !isWord {
		e.push(item)
		top.pos++
		return nil
	}

	name := string(ref)
	if e.trace != nil {
		e.trace.WriteString("word " + name + "\n")
	}

	switch name {
	case "IF":
		return e.doIf(top, framesPtr, frames)
	case "DEF":
		return e.doDef(top)
	case "DEL":
		return e.doDel(top)
	default:
		w, ok := e.Dict.Lookup(name)
		if !ok {
			return kerrors.New(kerrors.UnknownWord, "%s is not defined", name)
		}
		switch word := w.(type) {
		case dict.Builtin:
			if err := word.Fn(); err != nil {
				return err
			}
			top.pos++
			return nil
		case *dict.User:
			top.pos++
			*framesPtr = append(frames, frame{items: word.Body, atomic: true})
			return nil
		default:
			return kerrors.New(kerrors.UnknownWord, "%s is not defined", name)
		}
	}
}

// doIf implements spec.md §4.5.2 item 3 and §4.5.3's IF row: pop
// else-branch, then-branch, condition (top to bottom); splice the
// chosen branch's tokens into the current execution point by pushing
// them as a new frame. Any failure restores exactly what was popped,
// per the atomicity invariant (spec.md §3 invariant 5).
func (e *Evaluator) doIf(top *frame, framesPtr *[]frame, frames []frame) error {
	elseVal, err := e.pop()
	if err != nil {
		return err
	}
	thenVal, err := e.pop()
	if err != nil {
		e.push(elseVal)
		return err
	}
	condVal, err := e.pop()
	if err != nil {
		e.push(thenVal)
		e.push(elseVal)
		return err
	}

	thenVec, ok := thenVal.(value.Vector)
	if !ok {
		e.push(condVal)
		e.push(thenVal)
		e.push(elseVal)
		return kerrors.New(kerrors.TypeError, "IF then-branch must be a vector")
	}
	elseVec, ok := elseVal.(value.Vector)
	if !ok {
		e.push(condVal)
		e.push(thenVal)
		e.push(elseVal)
		return kerrors.New(kerrors.TypeError, "IF else-branch must be a vector")
	}

	chosen := elseVec
	if value.Truthy(condVal) {
		chosen = thenVec
	}

	top.pos++
	*framesPtr = append(frames, frame{items: []value.Value(chosen)})
	return nil
}

// doDef implements spec.md §4.5.2 item 2: pop a Vector body off the
// stack, read the literal identifier token immediately following DEF
// in the current frame (without resolving it), and install the word.
func (e *Evaluator) doDef(top *frame) error {
	nameIdx := top.pos + 1
	if nameIdx >= len(top.items) {
		return kerrors.New(kerrors.ParseError, "missing name after DEF")
	}
	nameRef, ok := top.items[nameIdx].(value.WordRef)
	if !ok {
		return kerrors.New(kerrors.ParseError, "name after DEF must be a bare identifier")
	}

	bodyVal, err := e.pop()
	if err != nil {
		return err
	}
	bodyVec, ok := bodyVal.(value.Vector)
	if !ok {
		e.push(bodyVal)
		return kerrors.New(kerrors.TypeError, "DEF body must be a vector")
	}

	if err := e.Dict.Define(string(nameRef), []value.Value(bodyVec), top.descAt(nameIdx)); err != nil {
		e.push(bodyVal)
		return err
	}
	top.pos += 2
	return nil
}

// doDel implements the DEL row of spec.md §4.5.3: read the literal
// name token following DEL and remove it, subject to protection.
func (e *Evaluator) doDel(top *frame) error {
	nameIdx := top.pos + 1
	if nameIdx >= len(top.items) {
		return kerrors.New(kerrors.ParseError, "missing name after DEL")
	}
	nameRef, ok := top.items[nameIdx].(value.WordRef)
	if !ok {
		return kerrors.New(kerrors.ParseError, "name after DEL must be a bare identifier")
	}
	if err := e.Dict.Remove(string(nameRef)); err != nil {
		return err
	}
	top.pos += 2
	return nil
}
