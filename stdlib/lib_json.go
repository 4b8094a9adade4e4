package stdlib

import (
	glc "git.lolli.tech/lollipopkit/go_lru_cacher"
	jsoniter "github.com/json-iterator/go"
	. "github.com/lumelang/lume/api"
	"github.com/tidwall/gjson"
)

var (
	jsonLib = map[string]GoFunction{
		"get":    jsonGet,
		"encode": jsonEncode,
		"decode": jsonDecode,
	}
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	// cache parsed documents keyed by source text
	gjsonCacher = glc.NewCacher(10)
)

func OpenJSONLib(ls LmState) int {
	ls.NewLib(jsonLib)
	return 1
}

// json.get (source, path)
// return result
func jsonGet(ls LmState) int {
	source := ls.CheckString(1)
	path := ls.CheckString(2)

	var gjsonResult gjson.Result
	gjsonCache, ok := gjsonCacher.Get(source)
	if !ok {
		gjsonResult = gjson.Parse(source)
		gjsonCacher.Set(source, gjsonResult)
	} else {
		gjsonResult, ok = gjsonCache.(gjson.Result)
		if !ok {
			ls.PushNil()
			return 1
		}
	}

	result := gjsonResult.Get(path)
	if !result.Exists() {
		ls.PushNil()
		return 1
	}
	ls.PushString(result.String())
	return 1
}

// json.encode (value)
// return string
func jsonEncode(ls LmState) int {
	ls.CheckAny(1)
	s, err := json.MarshalToString(popAny(ls, 1))
	if err != nil {
		return ls.Error2("json encode: %v", err)
	}
	ls.PushString(s)
	return 1
}

// json.decode (string)
// return value
func jsonDecode(ls LmState) int {
	src := ls.CheckString(1)
	var v any
	if err := json.UnmarshalFromString(src, &v); err != nil {
		return ls.Error2("json decode: %v", err)
	}
	pushAny(ls, v)
	return 1
}
