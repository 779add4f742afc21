package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type dbSampleRow struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	Ignored   string    `db:"-"`
	NotTagged string
	CreatedAt time.Time `db:"created_at"`
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "created_at"}, ColumnList[dbSampleRow]())
	assert.Equal(t, []string{"s.id", "s.name", "s.created_at"}, ColumnList[dbSampleRow]("s"))
}

func TestStructRowValuesAlignsWithColumnList(t *testing.T) {
	now := time.Now()
	row := StructRowValues(dbSampleRow{
		Id:        "a",
		Name:      "b",
		Ignored:   "never",
		NotTagged: "never",
		CreatedAt: now,
	})

	assert.Equal(t, []any{"a", "b", now}, row)
}
