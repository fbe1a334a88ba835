package schema

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/gertd/go-pluralize"
)

var pluralizer = pluralize.NewClient()

// TableName derives a table name from a struct type: snake_case, pluralized.
// User -> users, OrderItem -> order_items.
func TableName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return pluralizer.Plural(SnakeCase(t.Name()))
}

// SnakeCase converts CamelCase identifiers, keeping acronym runs together:
// UserID -> user_id, HTTPServer -> http_server.
func SnakeCase(s string) string {
	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
