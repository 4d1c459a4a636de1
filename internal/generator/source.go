package generator

import "strings"

// sourceBuilder accumulates emitted C++ text.
type sourceBuilder struct {
	strings.Builder
}

func (b *sourceBuilder) append(parts ...string) {
	for _, p := range parts {
		b.WriteString(p)
	}
}

// indent prefixes every non-empty line with four spaces per level.
func indent(level int, code string) string {
	if level <= 0 || code == "" {
		return code
	}
	prefix := strings.Repeat("    ", level)
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// docComment renders doc as a /** ... **/ block. A leading TODO marker is
// dropped and an empty doc renders nothing.
func docComment(doc string) string {
	doc = strings.TrimSpace(strings.TrimPrefix(doc, "TODO"))
	if doc == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for line := range strings.SplitSeq(doc, "\n") {
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" **/\n")
	return b.String()
}

// joinSections renders each item and separates them with a blank line.
func joinSections[T any](items []T, render func(*sourceBuilder, T)) string {
	var b sourceBuilder
	for i, item := range items {
		if i != 0 {
			b.append("\n")
		}
		render(&b, item)
	}
	return b.String()
}
