// Package strings provides the naming conventions shared by resource
// descriptors: case conversion and pluralization for default collection
// names.
package strings

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts CamelCase to snake_case.
// Handles acronyms properly (HTTPRequest -> http_request).
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				// Add underscore before uppercase letter if:
				// 1. Previous char is lowercase
				// 2. Next char is lowercase (for acronyms like HTTPRequest -> http_request)
				if unicode.IsLower(prev) {
					result.WriteRune('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					result.WriteRune('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Pluralize returns the plural form of a singular noun using the common
// English inflection rules. It is a naming-convention helper, not a full
// inflector: callers with irregular nouns register an explicit collection
// name instead.
func Pluralize(s string) string {
	if s == "" {
		return s
	}

	switch {
	case strings.HasSuffix(s, "y") && !endsInVowelThen(s, 'y'):
		return strings.TrimSuffix(s, "y") + "ies"
	case strings.HasSuffix(s, "s"),
		strings.HasSuffix(s, "x"),
		strings.HasSuffix(s, "z"),
		strings.HasSuffix(s, "ch"),
		strings.HasSuffix(s, "sh"):
		return s + "es"
	default:
		return s + "s"
	}
}

// endsInVowelThen reports whether s ends with a vowel followed by the given
// final letter ("day" -> true for 'y', "city" -> false).
func endsInVowelThen(s string, final rune) bool {
	runes := []rune(s)
	if len(runes) < 2 || runes[len(runes)-1] != final {
		return false
	}
	return strings.ContainsRune("aeiou", unicode.ToLower(runes[len(runes)-2]))
}
