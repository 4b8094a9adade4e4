package state

import . "github.com/lumelang/lume/api"

type callStatus int

const (
	callStatusHooked callStatus = 1 << iota // frame is running a debug hook
	callStatusYieldableProtected            // frame is a yieldable protected call
	callStatusContinuation                  // frame has a pending continuation
)

// frame describes one active call: the absolute slot of the function being
// run, the slot ceiling the call may grow to, and, for protected/continuable
// calls, the data needed to recover or resume.
type frame struct {
	funcOff int // absolute slot of the running function
	ceiling int // pushes must stay below this slot bound (exclusive)
	status  callStatus
	wanted  int // result count the caller asked for, LM_MULTRET for all

	/* continuation data, valid while status has the matching flag */
	k            Continuation
	ctx          int64
	handler      int // message handler slot of a yieldable protected call
	savedErrFunc int
	extra        int // recovery offset of a yieldable protected call

	prev *frame
}

func (self *lmState) pushFrame(funcOff int) *frame {
	fr := &frame{
		funcOff: funcOff,
		ceiling: self.top + LM_MINSTACK,
		prev:    self.frame,
	}
	self.ensure(fr.ceiling)
	self.frame = fr
	return fr
}

func (self *lmState) popFrame() {
	fr := self.frame
	self.frame = fr.prev
	fr.prev = nil
}

// ensure grows the backing slice so slots below n are addressable. Growth
// past the hard stack bound is a recoverable memory failure, not a contract
// violation: guest code can legitimately run into it.
func (self *lmState) ensure(n int) {
	if n > LMI_MAXSTACK {
		self.throw(&lmError{value: "stack overflow: too many slots", status: LM_ERRMEM})
	}
	for len(self.slots) < n {
		self.slots = append(self.slots, nil)
	}
}

func (self *lmState) push(val any) {
	if self.top >= self.frame.ceiling {
		panic("stack overflow!")
	}
	self.slots[self.top] = val
	self.top++
}

func (self *lmState) pop() any {
	if self.top <= self.frame.funcOff+1 {
		panic("not enough elements in the stack")
	}
	self.top--
	val := self.slots[self.top]
	self.slots[self.top] = nil
	return val
}

func (self *lmState) pushN(vals []any, n int) {
	nVals := len(vals)
	if n < 0 {
		n = nVals
	}
	for i := 0; i < n; i++ {
		if i < nVals {
			self.push(vals[i])
		} else {
			self.push(nil)
		}
	}
}

func (self *lmState) popN(n int) []any {
	vals := make([]any, n)
	for i := n - 1; i >= 0; i-- {
		vals[i] = self.pop()
	}
	return vals
}

func (self *lmState) checkElems(n int) {
	if self.top-(self.frame.funcOff+1) < n {
		panic("not enough elements in the stack")
	}
}

// absSlot turns an index into an absolute slot without resolving pseudo
// spaces. Contract failures panic.
func (self *lmState) absSlot(idx int) int {
	fr := self.frame
	switch {
	case idx > 0:
		if idx > fr.ceiling-(fr.funcOff+1) {
			panic("unacceptable index")
		}
		return fr.funcOff + idx
	case idx == 0 || idx <= LM_REGISTRYINDEX:
		panic("unacceptable index")
	default:
		if -idx > self.top-(fr.funcOff+1) {
			panic("unacceptable index")
		}
		return self.top + idx
	}
}

// indexToValue resolves one signed index across the four address spaces:
// positive frame-relative slots, negative top-relative slots, the registry
// pseudo-index, and the upvalue space below it. valid is false for the
// "acceptable but empty" region (reserved slots above top, upvalues past
// the closure's capture count).
func (self *lmState) indexToValue(idx int) (val any, valid bool) {
	switch {
	case idx == LM_REGISTRYINDEX:
		return self.global.registry, true
	case idx < LM_REGISTRYINDEX: /* upvalue space */
		uvIdx := LM_REGISTRYINDEX - idx
		if uvIdx > LM_MAXUPVAL {
			panic("upvalue index out of range")
		}
		c, ok := self.slots[self.frame.funcOff].(*lmClosure)
		if !ok {
			// light native function or bottom frame: no captured state
			return nil, false
		}
		if uvIdx > len(c.upVals) {
			return nil, false
		}
		return c.upVals[uvIdx-1], true
	default:
		slot := self.absSlot(idx)
		if slot >= self.top {
			return nil, false
		}
		return self.slots[slot], true
	}
}

// setIndex stores val at a resolved location. The upvalue space is
// read-only: closures own their captures once built.
func (self *lmState) setIndex(idx int, val any) {
	switch {
	case idx == LM_REGISTRYINDEX:
		t, ok := val.(*lmTable)
		if !ok {
			panic("registry must be a table")
		}
		self.global.registry = t
	case idx < LM_REGISTRYINDEX:
		panic("upvalue space is read-only")
	default:
		slot := self.absSlot(idx)
		if slot >= self.top {
			panic("unacceptable index")
		}
		self.slots[slot] = val
	}
}

func (self *lmState) reverse(from, to int) {
	slots := self.slots
	for from < to {
		slots[from], slots[to] = slots[to], slots[from]
		from++
		to--
	}
}
