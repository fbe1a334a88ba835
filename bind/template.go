// Package bind parses named-placeholder query templates and validates the
// values supplied for them. Placeholders use the colon-prefixed :name syntax
// and are rewritten to vendor-specific positional parameters before execution,
// so bound values always travel to the driver as data, never as query text.
package bind

// Template is an immutable SQL text containing zero or more :name placeholders.
type Template string

// A placeholder is a colon followed by an identifier: an alpha or underscore,
// then alphanumerics or underscores. Colons inside quoted string literals,
// quoted identifiers, and SQL comments are not placeholders, and neither is
// the :: cast operator.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scan walks the template and invokes fn for every placeholder occurrence,
// in order, with the byte range covering the colon and the name.
func scan(s string, fn func(start, end int, name string)) {
	i := 0
	n := len(s)
	for i < n {
		switch c := s[i]; c {
		case '\'', '"', '`':
			// Quoted literal or identifier. Doubled quotes ('') re-enter the
			// literal on the next iteration, which is equivalent to skipping
			// the escaped quote.
			i++
			for i < n && s[i] != c {
				i++
			}
			i++
		case '-':
			if i+1 < n && s[i+1] == '-' {
				for i < n && s[i] != '\n' {
					i++
				}
			} else {
				i++
			}
		case '/':
			if i+1 < n && s[i+1] == '*' {
				i += 2
				for i+1 < n && !(s[i] == '*' && s[i+1] == '/') {
					i++
				}
				i += 2
			} else {
				i++
			}
		case ':':
			if i+1 < n && s[i+1] == ':' {
				i += 2 // cast operator
				continue
			}
			if i+1 < n && isIdentStart(s[i+1]) {
				j := i + 1
				for j < n && isIdentPart(s[j]) {
					j++
				}
				fn(i, j, s[i+1:j])
				i = j
				continue
			}
			i++
		default:
			i++
		}
	}
}

// Names returns the unique placeholder names in first-appearance order.
func (t Template) Names() []string {
	var names []string
	seen := make(map[string]bool)
	scan(string(t), func(_, _ int, name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})
	return names
}

// Fingerprint returns a stable 64-bit hash of the template text, suitable
// for keying rewrite and statement caches.
func (t Template) Fingerprint() uint64 {
	return fingerprint(string(t))
}
