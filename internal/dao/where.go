package dao

import "strings"

// AnyValue disables a field match.
const AnyValue = "all"

// Predicate reports whether a record is kept.
type Predicate func(Record) bool

// FieldIs matches records whose first present path equals value, ignoring
// case. An empty or "all" value matches everything and yields nil.
func FieldIs(value string, paths ...string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, AnyValue) || len(paths) == 0 {
		return nil
	}

	return func(r Record) bool {
		for _, p := range paths {
			if v := r.Get(p); v != nil {
				return strings.EqualFold(r.Text(p), value)
			}
		}
		return false
	}
}

// Where returns a predicate matching records all non nil predicates keep.
func Where(pp ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(pp))
	for _, p := range pp {
		if p != nil {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	return func(r Record) bool {
		for _, p := range kept {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Keep returns the records p keeps. A nil predicate keeps all.
func Keep(rr []Record, p Predicate) []Record {
	if p == nil {
		return rr
	}
	out := make([]Record, 0, len(rr))
	for _, r := range rr {
		if p(r) {
			out = append(out, r)
		}
	}

	return out
}
