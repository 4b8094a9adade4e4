package state

import . "github.com/lumelang/lume/api"

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_gettop
func (self *lmState) GetTop() int {
	return self.top - (self.frame.funcOff + 1)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_absindex
func (self *lmState) AbsIndex(idx int) int {
	if idx > 0 || idx <= LM_REGISTRYINDEX {
		return idx
	}
	return self.absSlot(idx) - self.frame.funcOff
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_checkstack
// Never shrinks. Raising the ceiling past the hard bound fails with false
// rather than a panic: the host is allowed to probe.
func (self *lmState) CheckStack(n int) bool {
	if n < 0 {
		panic("negative stack size")
	}
	need := self.top + n
	if need <= self.frame.ceiling {
		return true
	}
	if need > LMI_MAXSTACK {
		return false
	}
	for len(self.slots) < need {
		self.slots = append(self.slots, nil)
	}
	self.frame.ceiling = need
	return true
}

// [-n, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pop
func (self *lmState) Pop(n int) {
	self.SetTop(-n - 1)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_copy
func (self *lmState) Copy(fromIdx, toIdx int) {
	val, _ := self.indexToValue(fromIdx)
	self.setIndex(toIdx, val)
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_pushvalue
func (self *lmState) PushValue(idx int) {
	val, _ := self.indexToValue(idx)
	self.push(val)
}

// [-1, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_replace
func (self *lmState) Replace(idx int) {
	val := self.pop()
	self.setIndex(idx, val)
}

// [-1, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_insert
func (self *lmState) Insert(idx int) {
	self.Rotate(idx, 1)
}

// [-1, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_remove
func (self *lmState) Remove(idx int) {
	self.Rotate(idx, -1)
	self.Pop(1)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_rotate
func (self *lmState) Rotate(idx, n int) {
	t := self.top - 1          /* end of stack segment being rotated */
	p := self.absSlot(idx)     /* start of segment */
	if p >= self.top {
		panic("unacceptable index")
	}
	var m int /* end of prefix */
	if n >= 0 {
		m = t - n
	} else {
		m = p - n - 1
	}
	if m < p-1 || m > t {
		panic("invalid rotation")
	}
	self.reverse(p, m)   /* reverse the prefix with length 'n' */
	self.reverse(m+1, t) /* reverse the suffix */
	self.reverse(p, t)   /* reverse the entire segment */
}

// [-?, +?, –]
// http://www.lua.org/manual/5.3/manual.html#lua_settop
// A non-negative index grows the frame to exactly idx live slots, nil-filling
// the exposed region; a negative index drops -idx-1 slots from the top.
func (self *lmState) SetTop(idx int) {
	base := self.frame.funcOff + 1
	var newTop int
	if idx >= 0 {
		newTop = base + idx
		if newTop > self.frame.ceiling {
			panic("stack overflow!")
		}
	} else {
		newTop = self.top + idx + 1
		if newTop < base {
			panic("not enough elements in the stack")
		}
	}

	for self.top > newTop {
		self.top--
		self.slots[self.top] = nil
	}
	for self.top < newTop {
		self.slots[self.top] = nil
		self.top++
	}
}

// [-?, +?, –]
// http://www.lua.org/manual/5.3/manual.html#lua_xmove
func (self *lmState) XMove(to LmState, n int) {
	dst := to.(*lmState)
	if dst == self {
		return
	}
	if dst.global != self.global {
		panic("moving between threads of different VMs")
	}
	vals := self.popN(n)
	dst.ensure(dst.top + n)
	if dst.frame.ceiling < dst.top+n {
		dst.frame.ceiling = dst.top + n
	}
	dst.pushN(vals, n)
}
