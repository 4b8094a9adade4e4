package state

import (
	. "github.com/lumelang/lume/api"
)

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_typename
func (self *lmState) TypeName(tp LmType) string {
	switch tp {
	case LM_TNONE:
		return "no value"
	case LM_TNIL:
		return "nil"
	case LM_TBOOLEAN:
		return "bool"
	case LM_TLIGHTUSERDATA:
		return "userdata"
	case LM_TNUMBER:
		return "num"
	case LM_TSTRING:
		return "str"
	case LM_TTABLE:
		return "table"
	case LM_TFUNCTION:
		return "func"
	case LM_TTHREAD:
		return "thread"
	default:
		panic("invalid type tag")
	}
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_type
func (self *lmState) Type(idx int) LmType {
	val, valid := self.indexToValue(idx)
	if !valid {
		return LM_TNONE
	}
	return typeOf(val)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isnone
func (self *lmState) IsNone(idx int) bool {
	return self.Type(idx) == LM_TNONE
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isnil
func (self *lmState) IsNil(idx int) bool {
	return self.Type(idx) == LM_TNIL
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isnoneornil
func (self *lmState) IsNoneOrNil(idx int) bool {
	return self.Type(idx) <= LM_TNIL
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isboolean
func (self *lmState) IsBoolean(idx int) bool {
	return self.Type(idx) == LM_TBOOLEAN
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_istable
func (self *lmState) IsTable(idx int) bool {
	return self.Type(idx) == LM_TTABLE
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isfunction
func (self *lmState) IsFunction(idx int) bool {
	return self.Type(idx) == LM_TFUNCTION
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isthread
func (self *lmState) IsThread(idx int) bool {
	return self.Type(idx) == LM_TTHREAD
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isstring
func (self *lmState) IsString(idx int) bool {
	t := self.Type(idx)
	return t == LM_TSTRING || t == LM_TNUMBER
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isnumber
func (self *lmState) IsNumber(idx int) bool {
	_, ok := self.ToNumberX(idx)
	return ok
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_isinteger
func (self *lmState) IsInteger(idx int) bool {
	val, _ := self.indexToValue(idx)
	_, ok := val.(int64)
	return ok
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_iscfunction
func (self *lmState) IsGoFunction(idx int) bool {
	val, _ := self.indexToValue(idx)
	switch x := val.(type) {
	case GoFunction:
		return true
	case *lmClosure:
		return x.goFunc != nil
	}
	return false
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_toboolean
func (self *lmState) ToBoolean(idx int) bool {
	val, _ := self.indexToValue(idx)
	return convertToBoolean(val)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tointeger
func (self *lmState) ToInteger(idx int) int64 {
	i, _ := self.ToIntegerX(idx)
	return i
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tointegerx
func (self *lmState) ToIntegerX(idx int) (int64, bool) {
	val, _ := self.indexToValue(idx)
	return convertToInteger(val)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tonumber
func (self *lmState) ToNumber(idx int) float64 {
	n, _ := self.ToNumberX(idx)
	return n
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tonumberx
func (self *lmState) ToNumberX(idx int) (float64, bool) {
	val, _ := self.indexToValue(idx)
	return convertToFloat(val)
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tostring
func (self *lmState) ToString(idx int) string {
	s, _ := self.ToStringX(idx)
	return s
}

// ToStringX returns the textual form of a string or numeric value. The
// stack is never rewritten: the formatted text is a copy.
func (self *lmState) ToStringX(idx int) (string, bool) {
	val, _ := self.indexToValue(idx)
	switch val.(type) {
	case string, int64, float64:
		return formatValue(val), true
	default:
		return "", false
	}
}

// ToStringN is ToStringX truncated to at most maxLen bytes. The length is
// validated before anything is read.
func (self *lmState) ToStringN(idx, maxLen int) (string, bool) {
	if maxLen < 0 {
		panic("negative string length")
	}
	s, ok := self.ToStringX(idx)
	if !ok {
		return "", false
	}
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s, true
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tocfunction
func (self *lmState) ToGoFunction(idx int) GoFunction {
	val, _ := self.indexToValue(idx)
	switch x := val.(type) {
	case GoFunction:
		return x
	case *lmClosure:
		return x.goFunc
	}
	return nil
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_tothread
func (self *lmState) ToThread(idx int) LmState {
	val, _ := self.indexToValue(idx)
	if ls, ok := val.(*lmState); ok {
		return ls
	}
	return nil
}

// [-0, +0, –]
// http://www.lua.org/manual/5.3/manual.html#lua_topointer
// Light userdata unwraps to the host value it carries.
func (self *lmState) ToPointer(idx int) any {
	val, _ := self.indexToValue(idx)
	if u, ok := val.(lightUserData); ok {
		return u.data
	}
	return val
}
