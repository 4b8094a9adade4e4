package state

import . "github.com/lumelang/lume/api"

type lmState struct {
	global *globalState

	/* value stack, shared by every frame of this thread */
	slots []any
	top   int

	/* frame chain, innermost first */
	frame *frame

	status            LmStatus
	errFunc           int // absolute slot of the active error handler, 0 = none
	nonYieldableDepth int
	protectionDepth   int

	/* coroutine */
	coCaller *lmState
	coChan   chan int
}

// globalState is shared by every thread of one VM instance.
type globalState struct {
	mainThread *lmState
	registry   *lmTable
	panicFn    GoFunction
	version    float64
	executor   Executor
}

func New() LmState {
	ls := &lmState{status: LM_OK}

	registry := newLmTable(0, 4)
	registry.put(LM_RIDX_MAINTHREAD, ls)
	registry.put(LM_RIDX_GLOBALS, newLmTable(0, 20))

	ls.global = &globalState{
		mainThread: ls,
		registry:   registry,
		version:    LM_VERSION_NUM,
	}
	ls.initStack()
	// the main thread may never yield
	ls.nonYieldableDepth = 1
	return ls
}

func (self *lmState) isMainThread() bool {
	return self.global.mainThread == self
}

// initStack installs the bottom frame. Its function slot holds nil: there
// is no function running at the bottom of the chain.
func (self *lmState) initStack() {
	self.slots = make([]any, LM_MINSTACK+1)
	self.slots[0] = nil
	self.top = 1
	self.frame = &frame{funcOff: 0, ceiling: LM_MINSTACK + 1}
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_version
func (self *lmState) Version() float64 {
	return self.global.version
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_atpanic
func (self *lmState) AtPanic(f GoFunction) GoFunction {
	prev := self.global.panicFn
	self.global.panicFn = f
	return prev
}

// SetExecutor installs the dispatch primitive for guest closures. Calling a
// guest closure without one raises a runtime error.
func (self *lmState) SetExecutor(e Executor) {
	self.global.executor = e
}
