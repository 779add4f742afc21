package utils

import (
	"fmt"
	"reflect"

	"github.com/go-faker/faker/v4"
	"github.com/go-faker/faker/v4/pkg/options"
)

// FakeStruct builds a faker-populated db model plus its row values in
// ColumnList order, for use with pgxmock.NewRows(...).AddRow(row...).
func FakeStruct[T any](opts ...options.OptionFunc) (T, []any) {
	var value T
	if err := faker.FakeData(&value, opts...); err != nil {
		panic(fmt.Sprintf("could not fake a %T: %v", value, err))
	}
	return value, StructRowValues(value)
}

// StructRowValues extracts the "db"-tagged field values of a db model struct,
// in the same order as ColumnList returns the column names.
func StructRowValues(value any) []any {
	v := reflect.ValueOf(value)
	t := v.Type()

	row := make([]any, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		row = append(row, v.Field(i).Interface())
	}
	return row
}
