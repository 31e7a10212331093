package model1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fvbommel/sortorder"
)

// DateFmt is used to display time values.
const DateFmt = "2006-01-02"

// Compare orders two accessor values: nil first, then numbers, times and bools by
// their natural order, anything else by case-insensitive natural string order.
func Compare(v1, v2 any) int {
	switch {
	case v1 == nil && v2 == nil:
		return 0
	case v1 == nil:
		return -1
	case v2 == nil:
		return 1
	}

	if f1, ok := toFloat(v1); ok {
		if f2, ok := toFloat(v2); ok {
			return compareFloat(f1, f2)
		}
	}
	if t1, ok := v1.(time.Time); ok {
		if t2, ok := v2.(time.Time); ok {
			return t1.Compare(t2)
		}
	}
	if b1, ok := v1.(bool); ok {
		if b2, ok := v2.(bool); ok {
			return compareBool(b1, b2)
		}
	}

	return CompareText(Text(v1), Text(v2))
}

// CompareText orders strings naturally ignoring case, falling back to a raw
// comparison so distinct strings never compare equal.
func CompareText(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	l1, l2 := strings.ToLower(s1), strings.ToLower(s2)
	if l1 == l2 {
		l1, l2 = s1, s2
	}
	switch {
	case sortorder.NaturalLess(l1, l2):
		return -1
	case sortorder.NaturalLess(l2, l1):
		return 1
	default:
		return strings.Compare(l1, l2)
	}
}

// Text returns the display/filter text of an accessor value.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(DateFmt)
	case *time.Time:
		if t == nil {
			return ""
		}
		return Text(*t)
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(v)
	}
}

// Matches returns true if the value's text contains filter, ignoring case.
// An empty filter matches everything.
func Matches(v any, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(Text(v)), strings.ToLower(filter))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func compareFloat(f1, f2 float64) int {
	switch {
	case f1 < f2:
		return -1
	case f1 > f2:
		return 1
	default:
		return 0
	}
}

func compareBool(b1, b2 bool) int {
	switch {
	case b1 == b2:
		return 0
	case !b1:
		return -1
	default:
		return 1
	}
}
