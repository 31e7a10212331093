package dao

import (
	"fmt"
	"reflect"
	"sort"
)

// Accessors maps source schemes to their accessor implementations.
type Accessors map[string]Accessor

var accessors = make(Accessors)

// RegisterAccessor adds an accessor for a scheme to the registry.
func RegisterAccessor(scheme string, accessor Accessor) {
	accessors[scheme] = accessor
}

// AccessorFor returns a new initialized accessor for the source.
func AccessorFor(f Factory, sid *SourceID) (Accessor, error) {
	accessor, ok := accessors[sid.Scheme]
	if !ok {
		return nil, fmt.Errorf("no accessor for: %s", sid)
	}

	accessorType := reflect.TypeOf(accessor)
	if accessorType.Kind() == reflect.Ptr {
		accessorType = accessorType.Elem()
	}
	acc, ok := reflect.New(accessorType).Interface().(Accessor)
	if !ok {
		return nil, fmt.Errorf("failed to create accessor for: %s", sid)
	}
	acc.Init(f, sid)

	return acc, nil
}

// Schemes returns the registered source schemes.
func Schemes() []string {
	ss := make([]string, 0, len(accessors))
	for k := range accessors {
		ss = append(ss, k)
	}
	sort.Strings(ss)
	return ss
}
