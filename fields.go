package recordtable

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeFor[time.Time]()
	decimalType = reflect.TypeFor[decimal.Decimal]()
)

// Fields reports the columns a table of T renders, in column order. It
// returns nil when T has no scalar fields, in which case [Write] produces no
// output.
func Fields[T any]() []Field {
	return schemaOf[T]().fields
}

// schema is the column layout of a record type. index holds the reflection
// path of each field and is nil when the type is [Described].
type schema struct {
	fields    []Field
	index     [][]int
	described bool
}

func schemaOf[T any]() schema {
	if d, ok := probe[T]().(Described); ok {
		return schema{fields: d.Fields(), described: true}
	}
	var s schema
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return s
	}
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() {
			continue
		}
		kind, ok := scalarKind(sf.Type)
		if !ok {
			continue
		}
		s.fields = append(s.fields, Field{Name: sf.Name, Kind: kind})
		s.index = append(s.index, sf.Index)
	}
	return s
}

// probe returns a usable value of T for calling type-level methods. Pointer
// types get a fresh zero element so value-receiver methods don't panic.
func probe[T any]() any {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	var zero T
	return any(zero)
}

func scalarKind(t reflect.Type) (Kind, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case timeType:
		return KindTime, true
	case decimalType:
		return KindDecimal, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint, true
	case reflect.Float32, reflect.Float64:
		return KindFloat, true
	case reflect.String:
		return KindString, true
	default:
		return 0, false
	}
}

// cells renders one record as text, one entry per field.
func (s schema) cells(item any) []string {
	out := make([]string, len(s.fields))
	if isNil(item) {
		return out
	}
	if s.described {
		values := item.(Described).Values()
		for i, f := range s.fields {
			if i < len(values) {
				out[i] = cellText(values[i], f.Kind)
			}
		}
		return out
	}
	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return out
		}
		rv = rv.Elem()
	}
	for i, f := range s.fields {
		fv, err := rv.FieldByIndexErr(s.index[i])
		if err != nil {
			// Promoted through a nil embedded pointer.
			continue
		}
		out[i] = cellText(fv.Interface(), f.Kind)
	}
	return out
}

func cellText(v any, kind Kind) string {
	if isNil(v) {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		v = rv.Elem().Interface()
	}
	if kind == KindChar {
		switch c := v.(type) {
		case rune:
			return string(c)
		case byte:
			return string(rune(c))
		}
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
