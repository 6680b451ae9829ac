//go:build js && wasm

package console

import (
	"fmt"
	"syscall/js"
)

func call(method string, args ...any) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	vals := make([]any, len(args))
	for i, a := range args {
		switch a.(type) {
		case string, bool, int, int32, int64, float32, float64:
			vals[i] = a
		default:
			vals[i] = fmt.Sprint(a)
		}
	}
	console.Call(method, vals...)
}

// Log writes to console.log.
func Log(args ...any) {
	call("log", args...)
}

// Warn writes to console.warn.
func Warn(args ...any) {
	call("warn", args...)
}

// Error writes to console.error.
func Error(args ...any) {
	call("error", args...)
}
