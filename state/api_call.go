package state

import (
	"fmt"

	. "github.com/lumelang/lume/api"
)

// lmError is a guest runtime failure travelling up the frame chain. Only
// these are caught by the protected path; plain panics are contract
// violations and stay fatal.
type lmError struct {
	value  any
	status LmStatus
}

func (e *lmError) Error() string {
	return fmt.Sprintf("%v", e.value)
}

// throw raises a guest runtime failure. When no protected call is active on
// this thread (and the thread is not a coroutine, whose resume point is
// itself protected), the installed panic handler runs first with the error
// value on the stack.
func (self *lmState) throw(e *lmError) {
	if self.protectionDepth == 0 && self.coCaller == nil {
		if p := self.global.panicFn; p != nil {
			self.ensure(self.top + 1)
			if self.frame.ceiling < self.top+1 {
				self.frame.ceiling = self.top + 1
			}
			self.push(e.value)
			p(self)
		}
	}
	panic(e)
}

func (self *lmState) runtimeError(format string, a ...any) {
	self.throw(&lmError{value: fmt.Sprintf(format, a...), status: LM_ERRRUN})
}

// common entry checks for every call variant
func (self *lmState) checkCall(nArgs, nResults int, k Continuation) {
	if nArgs < 0 {
		panic("negative argument count")
	}
	if k != nil && self.frame.status&callStatusHooked != 0 {
		panic("cannot use continuations inside hooks")
	}
	self.checkElems(nArgs + 1)
	if self.status != LM_OK {
		panic("cannot do calls on non-normal thread")
	}
	if nResults != LM_MULTRET && self.frame.ceiling-self.top < nResults-nArgs {
		panic("results from function overflow current stack size")
	}
}

// checkMessageHandler resolves an error-handler index to an absolute slot.
// 0 means none; anything else must land inside the caller's frame.
func (self *lmState) checkMessageHandler(msgh int) int {
	fr := self.frame
	switch {
	case msgh == 0:
		return 0
	case msgh <= LM_REGISTRYINDEX:
		panic("pseudo-indexed message handler")
	case msgh > 0:
		slot := fr.funcOff + msgh
		if slot >= self.top {
			panic("invalid message handler index")
		}
		return slot
	default:
		if -msgh > self.top-(fr.funcOff+1) {
			panic("invalid message handler index")
		}
		return self.top + msgh
	}
}

// adjustResults raises the frame ceiling after a multret call so every
// result stays addressable.
func (self *lmState) adjustResults(nResults int) {
	if nResults == LM_MULTRET && self.frame.ceiling < self.top {
		self.frame.ceiling = self.top
	}
}

// [-(nargs+1), +nresults, e]
// http://www.lua.org/manual/5.3/manual.html#lua_call
func (self *lmState) Call(nArgs, nResults int) {
	self.checkCall(nArgs, nResults, nil)
	funcOff := self.top - (nArgs + 1)
	self.call(funcOff, nResults, false)
	self.adjustResults(nResults)
}

// [-(nargs+1), +nresults, e]
// http://www.lua.org/manual/5.3/manual.html#lua_callk
// A yielded native call resumes in place here, so k never replaces its
// caller; a non-nil k in a yieldable context only grants yield permission
// beneath the call. Otherwise this degrades to a plain call.
func (self *lmState) CallK(nArgs, nResults int, ctx int64, k Continuation) {
	self.checkCall(nArgs, nResults, k)
	funcOff := self.top - (nArgs + 1)
	self.call(funcOff, nResults, k != nil && self.nonYieldableDepth == 0)
	self.adjustResults(nResults)
}

// Calls a function in protected mode.
// http://www.lua.org/manual/5.3/manual.html#lua_pcall
func (self *lmState) PCall(nArgs, nResults, msgh int) LmStatus {
	return self.PCallK(nArgs, nResults, msgh, 0, nil)
}

// [-(nargs+1), +(nresults|1), –]
// http://www.lua.org/manual/5.3/manual.html#lua_pcallk
func (self *lmState) PCallK(nArgs, nResults, msgh int, ctx int64, k Continuation) (status LmStatus) {
	self.checkCall(nArgs, nResults, k)
	errFuncOff := self.checkMessageHandler(msgh)
	funcOff := self.top - (nArgs + 1)

	if k != nil && self.IsYieldable() {
		// Yieldable protected call: record recovery data on the caller's
		// frame and dispatch unprotected. A failure inside unwinds through
		// the resume machinery, which recovers at this frame and runs k
		// with the error status in place of the destroyed native code.
		fr := self.frame
		fr.k, fr.ctx = k, ctx
		fr.extra = funcOff
		fr.handler = errFuncOff
		fr.savedErrFunc = self.errFunc
		fr.status |= callStatusYieldableProtected | callStatusContinuation
		self.errFunc = errFuncOff
		self.call(funcOff, nResults, true)
		fr.status &^= callStatusYieldableProtected | callStatusContinuation
		fr.k = nil
		self.errFunc = fr.savedErrFunc
		status = LM_OK
	} else {
		status = self.protectedCall(funcOff, nResults, errFuncOff, false)
	}
	self.adjustResults(nResults)
	return
}

// call dispatches the value at funcOff. A plain call raises the
// non-yieldable depth for its duration: no yield may cross it.
func (self *lmState) call(funcOff, nResults int, allowYield bool) {
	if !allowYield {
		self.nonYieldableDepth++
		defer func() { self.nonYieldableDepth-- }()
	}

	switch f := self.slots[funcOff].(type) {
	case GoFunction:
		self.callNative(funcOff, nResults, f)
	case *lmClosure:
		if f.goFunc != nil {
			self.callNative(funcOff, nResults, f.goFunc)
		} else {
			self.callGuest(funcOff, nResults, f)
		}
	default:
		self.runtimeError("attempt to call a %s value", self.TypeName(typeOf(self.slots[funcOff])))
	}
}

func (self *lmState) callNative(funcOff, nResults int, f GoFunction) {
	fr := self.pushFrame(funcOff)
	fr.wanted = nResults
	n := f(self)
	if n < 0 || n > self.GetTop() {
		panic("invalid result count from native function")
	}
	self.finishCall(funcOff, nResults, n)
}

func (self *lmState) callGuest(funcOff, nResults int, c *lmClosure) {
	exec := self.global.executor
	if exec == nil {
		self.runtimeError("no executor installed for guest function")
	}
	fr := self.pushFrame(funcOff)
	fr.wanted = nResults
	n := exec(self, c.proto)
	if n < 0 || n > self.GetTop() {
		panic("invalid result count from executor")
	}
	self.finishCall(funcOff, nResults, n)
}

// finishCall pops the callee frame and rewrites the call region in place
// with the results, padded or truncated to the requested count.
func (self *lmState) finishCall(funcOff, wanted, got int) {
	first := self.top - got
	self.popFrame()

	keep := got
	if wanted != LM_MULTRET && wanted < got {
		keep = wanted
	}
	for i := 0; i < keep; i++ {
		self.slots[funcOff+i] = self.slots[first+i]
	}
	newTop := funcOff + keep
	if wanted != LM_MULTRET {
		self.ensure(funcOff + wanted)
		for ; keep < wanted; keep++ {
			self.slots[funcOff+keep] = nil
			newTop++
		}
	}
	for i := newTop; i < self.top; i++ {
		self.slots[i] = nil
	}
	self.top = newTop
}

// protectedCall runs the call under a recovery point. On a guest failure it
// unwinds the frame chain back to the caller, runs the error handler if one
// was given, and leaves a single error value at the function slot. The
// previous error handler is restored on every exit path.
func (self *lmState) protectedCall(funcOff, nResults, errFuncOff int, allowYield bool) (status LmStatus) {
	caller := self.frame
	savedErrFunc := self.errFunc
	self.errFunc = errFuncOff
	self.protectionDepth++

	defer func() {
		self.protectionDepth--
		self.errFunc = savedErrFunc
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(*lmError)
		if !ok {
			panic(r) // contract violation, not ours to absorb
		}
		if self.recoverYieldableProtected(caller, e) {
			// a yieldable protected call between here and the failure
			// absorbed the error
			self.errFunc = savedErrFunc
			status = LM_OK
			return
		}
		for self.frame != caller {
			self.popFrame()
		}
		msg := e.value
		status = e.status
		if status == LM_OK {
			status = LM_ERRRUN
		}
		if errFuncOff != 0 {
			msg, status = self.runErrorHandler(errFuncOff, msg, status)
		}
		for i := funcOff + 1; i < self.top; i++ {
			self.slots[i] = nil
		}
		self.slots[funcOff] = msg
		self.top = funcOff + 1
	}()

	self.call(funcOff, nResults, allowYield)
	return LM_OK
}

// recoverYieldableProtected scans the frame chain between the failure point
// and stop for a yieldable protected call. When one exists the error ends
// there: the recorded handler runs, the stack is truncated to the protected
// function slot holding the error value, and the frame's continuation takes
// over for the native code the unwind destroyed. Calls between that frame
// and stop were destroyed too; they complete with the continuation's results
// passed through.
func (self *lmState) recoverYieldableProtected(stop *frame, e *lmError) bool {
	fr := self.frame
	for fr != stop && fr.status&callStatusYieldableProtected == 0 {
		fr = fr.prev
	}
	if fr == stop {
		return false
	}
	for self.frame != fr {
		self.popFrame()
	}

	msg := e.value
	st := e.status
	if st == LM_OK {
		st = LM_ERRRUN
	}
	self.errFunc = fr.savedErrFunc
	if fr.handler != 0 {
		msg, st = self.runErrorHandler(fr.handler, msg, st)
	}
	for i := fr.extra + 1; i < self.top; i++ {
		self.slots[i] = nil
	}
	self.slots[fr.extra] = msg
	self.top = fr.extra + 1

	k := fr.k
	fr.k = nil
	fr.status &^= callStatusYieldableProtected | callStatusContinuation
	n := k(self, st, fr.ctx)
	if n < 0 || n > self.GetTop() {
		panic("invalid result count from continuation")
	}
	self.finishCall(fr.funcOff, fr.wanted, n)

	prevOff := fr.funcOff
	for self.frame != stop {
		inner := self.frame
		got := self.top - prevOff
		prevOff = inner.funcOff
		self.finishCall(inner.funcOff, inner.wanted, got)
	}
	return true
}

// runErrorHandler calls the installed handler with the failing value before
// the status is finalized. A failure inside the handler itself degrades to
// LM_ERRERR with a canned message, with the handler's dead frames unwound.
func (self *lmState) runErrorHandler(errFuncOff int, err any, st LmStatus) (res any, outSt LmStatus) {
	entry := self.frame
	res, outSt = err, st
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*lmError); !ok {
				panic(r)
			}
			for self.frame != entry {
				self.popFrame()
			}
			res = "error in error handling"
			outSt = LM_ERRERR
		}
	}()

	self.ensure(self.top + 2)
	if self.frame.ceiling < self.top+2 {
		self.frame.ceiling = self.top + 2
	}
	self.push(self.slots[errFuncOff])
	self.push(err)
	self.call(self.top-2, 1, false)
	res = self.pop()
	return
}
