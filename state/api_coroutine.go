package state

import . "github.com/lumelang/lume/api"

// [-0, +1, m]
// http://www.lua.org/manual/5.3/manual.html#lua_newthread
func (self *lmState) NewThread() LmState {
	t := &lmState{global: self.global, status: LM_OK}
	t.initStack()
	self.push(t)
	return t
}

// [-?, +?, –]
// http://www.lua.org/manual/5.3/manual.html#lua_resume
// The coroutine runs on its own goroutine; control ping-pongs over the two
// channels. The body is driven through an internal protected call that
// permits yields, so failures come back as the resume status with the error
// value on the coroutine's stack.
func (self *lmState) Resume(from LmState, nArgs int) LmStatus {
	lsFrom := from.(*lmState)
	if lsFrom.coChan == nil {
		lsFrom.coChan = make(chan int)
	}

	if self.coChan == nil {
		// first resume: start the body
		self.checkElems(nArgs + 1)
		self.coChan = make(chan int)
		self.coCaller = lsFrom
		go func() {
			funcOff := self.top - (nArgs + 1)
			self.status = self.protectedCall(funcOff, LM_MULTRET, 0, true)
			self.adjustResults(LM_MULTRET)
			self.coCaller.coChan <- 1
		}()
	} else {
		if self.status != LM_YIELD {
			self.push("cannot resume non-suspended coroutine")
			return LM_ERRRUN
		}
		self.status = LM_OK
		self.coCaller = lsFrom // hand control back to the current resumer
		self.coChan <- 1
	}

	<-lsFrom.coChan // wait for the body to finish or yield
	return self.status
}

// [-?, +?, e]
// http://www.lua.org/manual/5.3/manual.html#lua_yield
func (self *lmState) Yield(nResults int) LmStatus {
	return self.YieldK(nResults, 0, nil)
}

// [-?, +?, e]
// http://www.lua.org/manual/5.3/manual.html#lua_yieldk
// Suspends the running coroutine, leaving nResults values on top for the
// resumer. On resume, a recorded continuation runs in place of the normal
// return path.
func (self *lmState) YieldK(nResults int, ctx int64, k Continuation) LmStatus {
	if self.coCaller == nil {
		panic("attempt to yield from outside a coroutine")
	}
	if self.nonYieldableDepth > 0 {
		panic("attempt to yield across a non-yieldable call boundary")
	}
	self.checkElems(nResults)

	fr := self.frame
	if k != nil {
		fr.k, fr.ctx = k, ctx
		fr.status |= callStatusContinuation
	}

	self.status = LM_YIELD
	self.coCaller.coChan <- 1
	<-self.coChan

	if fr.status&callStatusContinuation != 0 && fr.k != nil {
		cont := fr.k
		fr.k = nil
		fr.status &^= callStatusContinuation
		return LmStatus(cont(self, LM_YIELD, fr.ctx))
	}
	return LmStatus(self.GetTop())
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isyieldable
func (self *lmState) IsYieldable() bool {
	if self.isMainThread() {
		return false
	}
	return self.nonYieldableDepth == 0
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_status
func (self *lmState) Status() LmStatus {
	return self.status
}
