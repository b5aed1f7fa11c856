package styled

import (
	"regexp"
	"strings"
)

var underscoreLetter = regexp.MustCompile(`_([a-zA-Z])`)

// Normalize converts an upper-case, underscore separated variant identifier
// into the camelCase property name that activates it: EXTRA_LARGE becomes
// extraLarge and M becomes m. Only underscores followed by a letter are
// removed, so SIZE_2 becomes size_2.
//
// The result is lower-cased again when normalized twice, so Normalize is a
// fixed point only for single-word identifiers (DEFAULT, L, XXL).
func Normalize(value string) string {
	return underscoreLetter.ReplaceAllStringFunc(strings.ToLower(value), func(m string) string {
		return strings.ToUpper(m[1:])
	})
}
