package state_test

import (
	"testing"

	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/state"
)

func TestTypeTags(t *testing.T) {
	ls := state.New()
	ls.PushNil()
	ls.PushBoolean(true)
	ls.PushInteger(1)
	ls.PushNumber(1.5)
	ls.PushString("s")
	ls.NewTable()
	ls.PushGoFunction(add)
	ls.PushLightUserdata(struct{}{})

	want := []LmType{
		LM_TNIL, LM_TBOOLEAN, LM_TNUMBER, LM_TNUMBER,
		LM_TSTRING, LM_TTABLE, LM_TFUNCTION, LM_TLIGHTUSERDATA,
	}
	for i, w := range want {
		if got := ls.Type(i + 1); got != w {
			t.Fatalf("slot %d: type %v, want %v", i+1, got, w)
		}
	}
}

func TestToBooleanOnlyNilAndFalseAreFalsey(t *testing.T) {
	ls := state.New()
	ls.PushNil()
	ls.PushBoolean(false)
	ls.PushInteger(0)
	ls.PushString("")

	if ls.ToBoolean(1) || ls.ToBoolean(2) {
		t.Fatal("nil and false must be falsey")
	}
	if !ls.ToBoolean(3) || !ls.ToBoolean(4) {
		t.Fatal("zero and the empty string are truthy")
	}
}

func TestNumericCoercion(t *testing.T) {
	ls := state.New()
	ls.PushString("42")
	ls.PushString("3.5")
	ls.PushNumber(8.0)
	ls.PushNumber(8.5)

	if v, ok := ls.ToIntegerX(1); !ok || v != 42 {
		t.Fatalf("ToIntegerX(\"42\") = %d, %v", v, ok)
	}
	if v, ok := ls.ToNumberX(2); !ok || v != 3.5 {
		t.Fatalf("ToNumberX(\"3.5\") = %v, %v", v, ok)
	}
	if v, ok := ls.ToIntegerX(3); !ok || v != 8 {
		t.Fatalf("ToIntegerX(8.0) = %d, %v", v, ok)
	}
	if _, ok := ls.ToIntegerX(4); ok {
		t.Fatal("8.5 must not convert to integer")
	}
	if ls.IsInteger(3) {
		t.Fatal("a float with integral value is still a float")
	}
	if !ls.IsNumber(1) {
		t.Fatal("numeric strings count as numbers")
	}
}

func TestToStringNeverMutatesStack(t *testing.T) {
	ls := state.New()
	ls.PushInteger(42)
	if s, ok := ls.ToStringX(1); !ok || s != "42" {
		t.Fatalf("ToStringX: %q, %v", s, ok)
	}
	if ls.Type(1) != LM_TNUMBER {
		t.Fatal("ToStringX rewrote the slot")
	}
}

func TestToStringN(t *testing.T) {
	ls := state.New()
	ls.PushString("hello world")

	if s, ok := ls.ToStringN(1, 5); !ok || s != "hello" {
		t.Fatalf("truncated: %q, %v", s, ok)
	}
	if s, ok := ls.ToStringN(1, 100); !ok || s != "hello world" {
		t.Fatalf("full: %q, %v", s, ok)
	}
	if _, ok := ls.ToStringN(1, 0); !ok {
		t.Fatal("zero length is valid")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("negative length must panic before reading")
		}
	}()
	ls.ToStringN(1, -1)
}

func TestLightUserdataRoundTrip(t *testing.T) {
	ls := state.New()
	payload := &struct{ n int }{41}
	ls.PushLightUserdata(payload)

	if ls.Type(-1) != LM_TLIGHTUSERDATA {
		t.Fatalf("type: %v", ls.Type(-1))
	}
	got, ok := ls.ToPointer(-1).(*struct{ n int })
	if !ok || got != payload {
		t.Fatal("ToPointer identity")
	}
}

func TestFormatFloat(t *testing.T) {
	ls := state.New()
	ls.PushNumber(0.1)
	if s := ls.ToString(1); s != "0.1" {
		t.Fatalf("float format: %q", s)
	}
	ls.PushNumber(2.0)
	if s := ls.ToString(2); s != "2" {
		t.Fatalf("%%.14g format: %q", s)
	}
}
