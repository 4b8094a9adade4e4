package state_test

import (
	"testing"

	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/state"
)

func TestResumeAndYield(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()

	co.PushGoFunction(func(co LmState) int {
		co.PushInteger(1)
		co.Yield(1)
		co.PushInteger(3)
		return 1
	})

	if st := co.Resume(ls, 0); st != LM_YIELD {
		t.Fatalf("first resume: %v", st)
	}
	if v := co.ToInteger(-1); v != 1 {
		t.Fatalf("yielded value: %d", v)
	}
	co.Pop(1)

	if st := co.Resume(ls, 0); st != LM_OK {
		t.Fatalf("second resume: %v", st)
	}
	if v := co.ToInteger(-1); v != 3 {
		t.Fatalf("returned value: %d", v)
	}
}

func TestYieldPassesArgumentsBack(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()

	co.PushGoFunction(func(co LmState) int {
		a := co.ToInteger(1)
		co.PushInteger(a * 2)
		n := co.Yield(1)
		// resumed: whatever the resumer pushed is on top
		_ = n
		co.PushString("done")
		return 1
	})
	co.PushInteger(21)

	if st := co.Resume(ls, 1); st != LM_YIELD {
		t.Fatalf("resume: %v", st)
	}
	if v := co.ToInteger(-1); v != 42 {
		t.Fatalf("yielded: %d", v)
	}
	co.Pop(1)

	if st := co.Resume(ls, 0); st != LM_OK {
		t.Fatalf("final resume: %v", st)
	}
	if s := co.ToString(-1); s != "done" {
		t.Fatalf("final value: %q", s)
	}
}

func TestYieldContinuation(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()
	var contCtx int64

	co.PushGoFunction(func(co LmState) int {
		co.PushInteger(7)
		return int(co.YieldK(1, 99, func(co LmState, status LmStatus, ctx int64) int {
			contCtx = ctx
			co.PushString("from continuation")
			return 1
		}))
	})

	if st := co.Resume(ls, 0); st != LM_YIELD {
		t.Fatalf("resume: %v", st)
	}
	co.Pop(1)
	if st := co.Resume(ls, 0); st != LM_OK {
		t.Fatalf("final resume: %v", st)
	}
	if contCtx != 99 {
		t.Fatalf("continuation context: %d", contCtx)
	}
	if s := co.ToString(-1); s != "from continuation" {
		t.Fatalf("continuation result: %q", s)
	}
}

func TestYieldFromMainThreadPanics(t *testing.T) {
	ls := state.New()
	defer func() {
		if recover() == nil {
			t.Fatal("yield on the main thread must panic")
		}
	}()
	ls.Yield(0)
}

func TestYieldAcrossNonYieldableBoundary(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()

	co.PushGoFunction(func(co LmState) int {
		// a plain call forbids yields beneath it
		co.PushGoFunction(func(co LmState) (n int) {
			defer func() {
				co.PushBoolean(recover() != nil)
				n = 1
			}()
			co.Yield(0)
			return 0
		})
		co.Call(0, 1)
		return 1
	})

	if st := co.Resume(ls, 0); st != LM_OK {
		t.Fatalf("resume: %v", st)
	}
	if !co.ToBoolean(-1) {
		t.Fatal("yield across a plain call boundary must panic")
	}
}

func TestIsYieldable(t *testing.T) {
	ls := state.New()
	if ls.IsYieldable() {
		t.Fatal("main thread must not be yieldable")
	}

	co := ls.NewThread()
	co.PushGoFunction(func(co LmState) int {
		co.PushBoolean(co.IsYieldable())
		return 1
	})
	// run the body through resume so the yieldable context is set up
	if st := co.Resume(ls, 0); st != LM_OK {
		t.Fatalf("resume: %v", st)
	}
	if !co.ToBoolean(-1) {
		t.Fatal("coroutine body must be yieldable")
	}
}

func TestResumeErrorStatus(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()
	co.PushGoFunction(func(co LmState) int {
		return co.Error2("inside coroutine")
	})

	if st := co.Resume(ls, 0); st != LM_ERRRUN {
		t.Fatalf("status: %v", st)
	}
	if msg := co.ToString(-1); msg != "inside coroutine" {
		t.Fatalf("message: %q", msg)
	}
}

func TestResumeNonSuspended(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()
	co.PushGoFunction(func(co LmState) int { return 0 })
	if st := co.Resume(ls, 0); st != LM_OK {
		t.Fatalf("first resume: %v", st)
	}

	if st := co.Resume(ls, 0); st != LM_ERRRUN {
		t.Fatalf("resuming a dead coroutine: %v", st)
	}
}

func TestThreadStatusTransitions(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()
	if co.Status() != LM_OK {
		t.Fatalf("fresh thread status: %v", co.Status())
	}

	co.PushGoFunction(func(co LmState) int {
		co.Yield(0)
		return 0
	})
	co.Resume(ls, 0)
	if co.Status() != LM_YIELD {
		t.Fatalf("suspended status: %v", co.Status())
	}
	co.Resume(ls, 0)
	if co.Status() != LM_OK {
		t.Fatalf("finished status: %v", co.Status())
	}
}

func TestThreadOnStack(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()
	if !ls.IsThread(-1) {
		t.Fatal("NewThread must leave the thread on the stack")
	}
	if got := ls.ToThread(-1); got != co {
		t.Fatal("ToThread identity")
	}
	if co.PushThread() {
		t.Fatal("a coroutine is not the main thread")
	}
	if !ls.PushThread() {
		t.Fatal("the creator here is the main thread")
	}
}

func TestResumeFromDifferentThreads(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()

	co.PushGoFunction(func(co LmState) int {
		co.PushInteger(1)
		co.Yield(1)
		co.PushString("finished")
		return 1
	})

	if st := co.Resume(ls, 0); st != LM_YIELD {
		t.Fatalf("first resume: %v", st)
	}
	co.Pop(1)

	// second resume comes from another thread entirely
	other := ls.NewThread()
	if st := co.Resume(other, 0); st != LM_OK {
		t.Fatalf("resume from second thread: %v", st)
	}
	if s := co.ToString(-1); s != "finished" {
		t.Fatalf("result: %q", s)
	}
}
