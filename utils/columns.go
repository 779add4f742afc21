package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the "db"-tagged column names of a db model struct, in
// field order, optionally prefixed with a table alias ("a" -> "a.id", ...).
// Used by dbmodels to keep SELECT column lists in sync with the scan targets.
func ColumnList[T any](prefix ...string) []string {
	var value T
	t := reflect.TypeOf(value)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList used on non-struct type %T", value))
	}

	columns := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = fmt.Sprintf("%s.%s", prefix[0], tag)
		}
		columns = append(columns, tag)
	}
	return columns
}
