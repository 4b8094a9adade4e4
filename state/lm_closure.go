package state

import (
	"fmt"

	. "github.com/lumelang/lume/api"
)

// lmClosure packages a function with its captured upvalues. Exactly one of
// proto/goFunc is set: proto for guest closures run by the installed
// Executor, goFunc for native closures. A bare GoFunction on the stack is
// the third, capture-free variant.
type lmClosure struct {
	proto  any // guest closure, opaque to this layer
	goFunc GoFunction
	upVals []any
}

func newGoClosure(f GoFunction, nUpvals int) *lmClosure {
	c := &lmClosure{goFunc: f}
	if nUpvals > 0 {
		c.upVals = make([]any, nUpvals)
	}
	return c
}

func newGuestClosure(proto any, nUpvals int) *lmClosure {
	c := &lmClosure{proto: proto}
	if nUpvals > 0 {
		c.upVals = make([]any, nUpvals)
	}
	return c
}

func (c *lmClosure) String() string {
	if c.goFunc != nil {
		return fmt.Sprintf("function: %p", c.goFunc)
	}
	return fmt.Sprintf("function: %p", c.proto)
}

// lightUserData wraps an arbitrary host value pushed onto the stack.
type lightUserData struct {
	data any
}
