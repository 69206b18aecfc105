package eval

import "github.com/rstack-lang/rstack/internal/kerrors"

// reservedFn is installed for names dispatch.go always intercepts by
// name before ever consulting the Dictionary (DEF, DEL, IF) and for
// the literal keywords the compiler turns into values before dispatch
// ever sees them (TRUE, FALSE, NIL). None of these Fn bodies are ever
// called; registering them as Builtin entries exists only so
// Dictionary.IsBuiltin/Protected correctly refuse a user DEF or DEL
// that tries to reuse one of these names.
func reservedFn() error {
	return kerrors.New(kerrors.IsBuiltin, "reserved word")
}

// registerControlBuiltins reserves the names spec.md carves out of
// ordinary dictionary dispatch: the three control keywords and the
// three literal keywords.
func (e *Evaluator) registerControlBuiltins() {
	for _, name := range []string{"DEF", "DEL", "IF", "TRUE", "FALSE", "NIL"} {
		e.Dict.RegisterBuiltin(name, reservedFn)
	}
}

// registerBuiltins wires every built-in primitive group into a fresh
// Evaluator's Dictionary, the way the teacher's interp.New fans out
// across its registerXBuiltins methods.
func (e *Evaluator) registerBuiltins() {
	e.registerArithBuiltins()
	e.registerNotBuiltin()
	e.registerStackBuiltins()
	e.registerRegisterBuiltins()
	e.registerVectorBuiltins()
	e.registerIOBuiltins()
	e.registerControlBuiltins()
}
