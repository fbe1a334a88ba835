package project

import (
	"fmt"
	"strings"
)

// Uppercase uppercases the column's string form.
func Uppercase(column string) Option {
	return Apply(column, func(v any) any {
		return strings.ToUpper(stringify(v))
	})
}

// LeftJustify pads the column's string form to the given width.
func LeftJustify(column string, width int) Option {
	return Apply(column, func(v any) any {
		return fmt.Sprintf("%-*s", width, stringify(v))
	})
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
