package utils

import (
	"reflect"
)

// ColumnList lists the "db" struct tags of T, in declaration order. It is used
// by the dbmodels package to build SELECT column lists that stay in sync with
// the scan targets.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	columnNames := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		for _, prefix := range prefixes {
			tag = prefix + "." + tag
		}
		columnNames = append(columnNames, tag)
	}
	return columnNames
}
