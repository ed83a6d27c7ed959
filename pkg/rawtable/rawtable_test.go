package rawtable_test

import (
	"strings"
	"testing"

	"github.com/crashwx/crashwx/pkg/rawtable"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	tbl := rawtable.New(
		[]string{"a", "b", "a"},
		[][]string{
			{"1", "2", "3"},
			{"4"},
		},
	)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 0, tbl.Index("a"), "first duplicate wins")
	assert.Equal(t, 1, tbl.Index("b"))
	assert.Equal(t, -1, tbl.Index("c"))

	assert.Equal(t, "2", tbl.Cell(0, 1))
	assert.Equal(t, "", tbl.Cell(1, 1), "short row")
	assert.Equal(t, "", tbl.Cell(0, -1), "missing column")
	assert.Equal(t, "", tbl.Cell(5, 0), "missing row")
}

func TestRename(t *testing.T) {
	tbl := rawtable.New([]string{"crash date"}, [][]string{{"x"}})
	up := tbl.Rename(strings.ToUpper)

	assert.Equal(t, []string{"CRASH DATE"}, up.Columns)
	assert.Equal(t, []string{"crash date"}, tbl.Columns, "original untouched")
	assert.Equal(t, "x", up.Cell(0, 0))
}
