package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts a stored value to int.
// Unlike a bare Atoi it reports malformed input instead of returning zero.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case []byte:
		return strconv.Atoi(strings.TrimSpace(string(v)))
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToBool converts a stored value to bool.
// It handles bool, integers (1=true) and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}

// ToStringList converts a stored list value to a slice of strings.
// Strings are split on commas; blank entries are dropped.
func ToStringList(val any) []string {
	switch v := val.(type) {
	case nil:
		return nil
	case []string:
		return compact(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return compact(out)
	case string:
		return compact(strings.Split(v, ","))
	case []byte:
		return ToStringList(string(v))
	default:
		return compact([]string{fmt.Sprintf("%v", v)})
	}
}

// JoinList is the inverse of ToStringList for string storage.
func JoinList(list []string) string {
	return strings.Join(compact(list), ",")
}

func compact(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
