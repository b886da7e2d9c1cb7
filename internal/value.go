package internal

import (
	"fmt"
	"strconv"
)

// Runtime values are plain Go values: float64, string, bool or nil.
// Equality between them is Go interface equality, which never matches
// across kinds.

// truthy reports how a value reads as a condition: nil and false are
// falsy, every other value is truthy, including 0 and "".
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

// stringify renders a value the way print emits it.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	return fmt.Sprintf("%v", value)
}
