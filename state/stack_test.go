package state_test

import (
	"testing"

	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/state"
)

func TestIndexEquivalence(t *testing.T) {
	ls := state.New()
	ls.PushInteger(10)
	ls.PushInteger(20)
	ls.PushInteger(30)

	for i := 1; i <= 3; i++ {
		pos := ls.ToInteger(i)
		neg := ls.ToInteger(i - 4)
		if pos != neg {
			t.Fatalf("index %d: positive %d != negative %d", i, pos, neg)
		}
	}
	if ls.AbsIndex(-1) != 3 || ls.AbsIndex(-3) != 1 {
		t.Fatalf("AbsIndex: %d %d", ls.AbsIndex(-1), ls.AbsIndex(-3))
	}
	if ls.AbsIndex(2) != 2 {
		t.Fatalf("AbsIndex(2) = %d", ls.AbsIndex(2))
	}
	if ls.AbsIndex(LM_REGISTRYINDEX) != LM_REGISTRYINDEX {
		t.Fatal("pseudo index must pass through AbsIndex")
	}
}

func TestReservedSlotsReadAsNone(t *testing.T) {
	ls := state.New()
	ls.PushInteger(1)
	if ls.Type(2) != LM_TNONE {
		t.Fatalf("slot above top: %v", ls.Type(2))
	}
	if !ls.IsNone(2) || ls.ToInteger(2) != 0 {
		t.Fatal("reserved slot must read as none/zero")
	}
}

func TestSetTopGrowAndShrink(t *testing.T) {
	ls := state.New()
	ls.PushInteger(1)
	ls.PushInteger(2)

	ls.SetTop(5)
	if ls.GetTop() != 5 {
		t.Fatalf("top after grow: %d", ls.GetTop())
	}
	for i := 3; i <= 5; i++ {
		if !ls.IsNil(i) {
			t.Fatalf("slot %d not nil after grow", i)
		}
	}

	ls.SetTop(1)
	if ls.GetTop() != 1 || ls.ToInteger(1) != 1 {
		t.Fatalf("top after shrink: %d", ls.GetTop())
	}

	ls.SetTop(-1) // no-op
	if ls.GetTop() != 1 {
		t.Fatalf("SetTop(-1) changed top: %d", ls.GetTop())
	}
	ls.SetTop(0)
	if ls.GetTop() != 0 {
		t.Fatalf("SetTop(0): %d", ls.GetTop())
	}
}

func TestPopBelowFrameBasePanics(t *testing.T) {
	ls := state.New()
	ls.PushInteger(1)
	ls.PushInteger(2)
	ls.PushInteger(3)
	ls.SetTop(3)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("popping past the frame base must panic")
		}
		if ls.GetTop() != 3 {
			t.Fatalf("failed pop mutated top: %d", ls.GetTop())
		}
	}()
	ls.Pop(5)
}

func TestPushPastCeilingPanics(t *testing.T) {
	ls := state.New()
	for i := 0; i < LM_MINSTACK; i++ {
		ls.PushInteger(int64(i))
	}
	top := ls.GetTop()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("push past the ceiling must panic")
		}
		if ls.GetTop() != top {
			t.Fatalf("failed push mutated top: %d != %d", ls.GetTop(), top)
		}
	}()
	ls.PushInteger(999)
}

func TestCheckStackRaisesCeiling(t *testing.T) {
	ls := state.New()
	if !ls.CheckStack(100) {
		t.Fatal("CheckStack(100) failed")
	}
	for i := 0; i < 100; i++ {
		ls.PushInteger(int64(i))
	}
	if ls.GetTop() != 100 {
		t.Fatalf("top: %d", ls.GetTop())
	}
	if ls.CheckStack(LMI_MAXSTACK + 1) {
		t.Fatal("CheckStack past the hard bound must fail")
	}
	// a failed probe keeps the state usable
	ls.PushInteger(1)
	ls.Pop(1)
}

func TestRotateInsertRemove(t *testing.T) {
	ls := state.New()
	for i := int64(1); i <= 5; i++ {
		ls.PushInteger(i * 10)
	}

	ls.Rotate(2, 1) // 10 50 20 30 40
	want := []int64{10, 50, 20, 30, 40}
	for i, w := range want {
		if got := ls.ToInteger(i + 1); got != w {
			t.Fatalf("after rotate, slot %d = %d, want %d", i+1, got, w)
		}
	}

	ls.Remove(2) // 10 20 30 40
	if ls.GetTop() != 4 || ls.ToInteger(2) != 20 {
		t.Fatalf("after remove: top %d, slot2 %d", ls.GetTop(), ls.ToInteger(2))
	}

	ls.PushInteger(15)
	ls.Insert(2) // 10 15 20 30 40
	if ls.ToInteger(2) != 15 || ls.ToInteger(5) != 40 {
		t.Fatalf("after insert: %d %d", ls.ToInteger(2), ls.ToInteger(5))
	}
}

func TestCopyAndReplace(t *testing.T) {
	ls := state.New()
	ls.PushInteger(1)
	ls.PushInteger(2)
	ls.PushInteger(3)

	ls.Copy(3, 1)
	if ls.ToInteger(1) != 3 || ls.GetTop() != 3 {
		t.Fatalf("copy: slot1 %d top %d", ls.ToInteger(1), ls.GetTop())
	}

	ls.PushString("x")
	ls.Replace(2)
	if ls.ToString(2) != "x" || ls.GetTop() != 3 {
		t.Fatalf("replace: slot2 %q top %d", ls.ToString(2), ls.GetTop())
	}
}

func TestXMove(t *testing.T) {
	ls := state.New()
	co := ls.NewThread()
	ls.PushInteger(7)
	ls.PushString("moved")
	ls.XMove(co, 2)

	if ls.GetTop() != 1 { // the thread itself remains
		t.Fatalf("source top: %d", ls.GetTop())
	}
	if co.GetTop() != 2 || co.ToInteger(1) != 7 || co.ToString(2) != "moved" {
		t.Fatalf("dest: top %d", co.GetTop())
	}
}

func TestUnacceptableIndexPanics(t *testing.T) {
	ls := state.New()
	ls.PushInteger(1)
	defer func() {
		if recover() == nil {
			t.Fatal("negative index past the live region must panic")
		}
	}()
	ls.ToInteger(-5)
}
