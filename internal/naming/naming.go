// Package naming converts snake_case spec identifiers into C++ identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeFirst upper-cases the first rune and keeps the rest untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// PascalCase joins underscore-separated words, capitalizing each one.
// e.g. "render_pass_encoder" -> "RenderPassEncoder", "2D_array" -> "2DArray"
func PascalCase(ident string) string {
	var b strings.Builder
	for word := range strings.SplitSeq(ident, "_") {
		b.WriteString(CapitalizeFirst(word))
	}
	return b.String()
}

// CamelCase keeps the first word as-is and capitalizes the following ones.
// e.g. "get_bind_group_layout" -> "getBindGroupLayout"
func CamelCase(ident string) string {
	first, rest, found := strings.Cut(ident, "_")
	if !found {
		return first
	}
	return first + PascalCase(rest)
}

// SanitizeIdentifier prefixes an underscore to names starting with a digit and
// upper-cases the letter that follows the leading digits, so "2d" becomes "_2D".
func SanitizeIdentifier(name string) string {
	if name == "" || !unicode.IsDigit(rune(name[0])) {
		return name
	}
	i := strings.IndexFunc(name, func(r rune) bool { return !unicode.IsDigit(r) })
	if i < 0 {
		return "_" + name
	}
	return "_" + name[:i] + CapitalizeFirst(name[i:])
}
