package utils

import (
	"fmt"
	"strconv"
)

// ToInt64 converts JWT claim and query values to int64 using explicit type
// switching. JSON numbers arrive as float64, snowflake-style user IDs may
// arrive as strings.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(string(v), 10, 64)
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	}
}

// ToInt32 converts values to int32, clamping nothing; callers validate range.
func ToInt32(val any) int32 {
	return int32(ToInt64(val))
}
