package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnList(t *testing.T) {
	type row struct {
		Id        string `db:"id"`
		Label     string `db:"label"`
		Ignored   string `db:"-"`
		Untagged  string
		CreatedAt string `db:"created_at"`
	}

	assert.Equal(t, []string{"id", "label", "created_at"}, ColumnList[row]())
	assert.Equal(t, []string{"c.id", "c.label", "c.created_at"}, ColumnList[row]("c"))
}
