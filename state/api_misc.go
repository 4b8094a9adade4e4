package state

import (
	. "github.com/lumelang/lume/api"
	"github.com/lumelang/lume/number"
)

// [-0, +1, e]
// http://www.lua.org/manual/5.3/manual.html#lua_len
func (self *lmState) Len(idx int) {
	val, _ := self.indexToValue(idx)
	switch x := val.(type) {
	case string:
		self.push(int64(len(x)))
	case *lmTable:
		self.push(int64(x.len()))
	default:
		self.runtimeError("attempt to get length of a %s value", self.TypeName(typeOf(val)))
	}
}

// [-1, +(2|0), e]
// http://www.lua.org/manual/5.3/manual.html#lua_next
func (self *lmState) Next(idx int) bool {
	val, _ := self.indexToValue(idx)
	t, ok := val.(*lmTable)
	if !ok {
		self.runtimeError("attempt to iterate a %s value", self.TypeName(typeOf(val)))
	}
	key := self.pop()
	if nextKey := t.nextKey(key); nextKey != nil {
		self.push(nextKey)
		self.push(t.get(nextKey))
		return true
	}
	return false
}

// [-1, +0, v]
// http://www.lua.org/manual/5.3/manual.html#lua_error
func (self *lmState) Error() int {
	err := self.pop()
	self.throw(&lmError{value: err, status: LM_ERRRUN})
	return 0 // unreachable
}

// [-0, +1, –]
// http://www.lua.org/manual/5.3/manual.html#lua_stringtonumber
func (self *lmState) StringToNumber(s string) bool {
	if n, ok := number.ParseInteger(s); ok {
		self.PushInteger(n)
		return true
	}
	if n, ok := number.ParseFloat(s); ok {
		self.PushNumber(n)
		return true
	}
	return false
}
