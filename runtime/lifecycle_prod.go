//go:build js && wasm && !dev

package runtime

import "github.com/vcrobe/nojs-counter/console"

// callOnInit runs OnInit, recovering and logging a panic so one faulty
// component cannot take the page down.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnInit panic in component", key, rec)
		}
	}()
	initializer.OnInit()
}

// callOnDestroy runs OnDestroy with the same recovery as callOnInit.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnDestroy panic in component", key, rec)
		}
	}()
	cleaner.OnDestroy()
}
