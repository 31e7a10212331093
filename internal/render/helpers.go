package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	model1.DateFmt,
}

// ToAge converts time to human-readable duration.
func ToAge(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NAValue
	}
	return HumanDuration(time.Since(*t))
}

// HumanDuration converts duration to human readable format (e.g., "5d", "3h", "2m").
func HumanDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}

	days := int(d.Hours() / 24)
	switch {
	case days > 365:
		return fmt.Sprintf("%dy", days/365)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case int(d.Hours()) > 0:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case int(d.Minutes()) > 0:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// Missing returns MissingValue if string is empty.
func Missing(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}

// NA returns NAValue if string is empty.
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}

// AsFloat converts numbers and numeric strings to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsTime converts times and date strings to time.Time.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case string:
		for _, l := range timeLayouts {
			if tt, err := time.Parse(l, strings.TrimSpace(t)); err == nil {
				return tt, true
			}
		}
	}
	return time.Time{}, false
}

// Date formats a date value, leaving unparsable values untouched.
func Date(v any) string {
	if t, ok := AsTime(v); ok {
		return t.Format(model1.DateFmt)
	}
	return model1.Text(v)
}

// Thousands formats n with comma separated thousands.
func Thousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Money formats an amount rounded to the unit, e.g. "1,500 F".
func Money(v any) string {
	f, ok := AsFloat(v)
	if !ok {
		return NAValue
	}
	return Thousands(int64(math.Round(f))) + " " + Currency
}

// Percent returns part/total as a rounded percentage, 0 when total is not positive.
func Percent(part, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}

// YesNo renders truthy values as yes/no.
func YesNo(v any) string {
	if Truthy(v) {
		return "yes"
	}
	return "no"
}

// Truthy reports true, 1 and "1"/"true" as true.
func Truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b == 1
	case int:
		return b == 1
	case string:
		return b == "1" || strings.EqualFold(b, "true")
	default:
		return false
	}
}

// FullName joins a record's first and last names.
func FullName(r dao.Record) string {
	return strings.TrimSpace(r.Text("first_name") + " " + r.Text("last_name"))
}

// FirstOf returns the first non empty text among paths.
func FirstOf(r dao.Record, paths ...string) string {
	for _, p := range paths {
		if s := strings.TrimSpace(r.Text(p)); s != "" {
			return s
		}
	}
	return ""
}
