//go:build js && wasm

// Package main is the WebAssembly entry point for rstack. It exports
// the Host API of spec.md §6 to JavaScript as a small syscall/js
// surface and keeps the Go runtime alive to service calls.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o rstack.wasm ./cmd/rstack-wasm
//
// Usage from JavaScript:
//
//	<script src="wasm_exec.js"></script>
//	<script>
//	  const go = new Go();
//	  WebAssembly.instantiateStreaming(fetch("rstack.wasm"), go.importObject)
//	    .then((result) => {
//	      go.run(result.instance);
//	      // rstack API is now available as window.rstack
//	    });
//	</script>
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/rstack-lang/rstack/pkg/kernel"
)

// k is the single Kernel instance this WASM module exposes, mirroring
// spec.md §5's one-handle-per-page model: a browser page that wants
// two independent interpreters loads the module twice.
var k = kernel.New()

func jsonValue(v any) js.Value {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf(map[string]any{"status": err.Error()})
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return js.ValueOf(map[string]any{"status": err.Error()})
	}
	return js.ValueOf(out)
}

func execute(_ js.Value, args []js.Value) any {
	source := args[0].String()
	return jsonValue(k.Execute(source))
}

func initStep(_ js.Value, args []js.Value) any {
	source := args[0].String()
	return js.ValueOf(k.InitStep(source))
}

func step(_ js.Value, _ []js.Value) any {
	return jsonValue(k.Step())
}

func getStack(_ js.Value, _ []js.Value) any {
	return jsonValue(k.GetStack())
}

func getRegister(_ js.Value, _ []js.Value) any {
	reg := k.GetRegister()
	if reg == nil {
		return js.Null()
	}
	return jsonValue(*reg)
}

func getCustomWords(_ js.Value, _ []js.Value) any {
	return jsonValue(k.GetCustomWords())
}

func getCustomWordsInfo(_ js.Value, _ []js.Value) any {
	return jsonValue(k.GetCustomWordsInfo())
}

func reset(_ js.Value, _ []js.Value) any {
	k.Reset()
	return js.Undefined()
}

// registerAPI installs every Host API operation under window.rstack,
// structurally identical to the teacher's wasm.RegisterAPI().
func registerAPI() {
	api := map[string]any{
		"execute":            js.FuncOf(execute),
		"initStep":           js.FuncOf(initStep),
		"step":               js.FuncOf(step),
		"getStack":           js.FuncOf(getStack),
		"getRegister":        js.FuncOf(getRegister),
		"getCustomWords":     js.FuncOf(getCustomWords),
		"getCustomWordsInfo": js.FuncOf(getCustomWordsInfo),
		"reset":              js.FuncOf(reset),
	}
	js.Global().Set("rstack", js.ValueOf(api))
}

func main() {
	done := make(chan struct{})

	registerAPI()
	js.Global().Get("console").Call("log", "rstack WASM module initialized")

	<-done
}
