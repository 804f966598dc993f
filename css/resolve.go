package css

import "strings"

// ResolveSelector expands a nested child selector against its parent.
// Every "&" in the child is replaced with the parent, a child without "&"
// becomes a descendant ("parent child"). Comma lists on either side
// produce the full cartesian product, parent part outer, child part inner,
// joined with ", ". Commas inside parens, brackets or quotes do not split.
func ResolveSelector(child, parent string) string {
	child = strings.TrimSpace(child)
	parent = strings.TrimSpace(parent)

	if child == "" {
		return ""
	}
	if parent == "" {
		return child
	}

	// Single-selector fast path. Routing a nested-only comma through the
	// general path below gives the same result.
	if !strings.Contains(parent, ",") && !strings.Contains(child, ",") {
		return resolvePart(child, parent)
	}

	var out []string
	for _, parentPart := range splitTopLevel(parent) {
		for _, childPart := range splitTopLevel(child) {
			out = append(out, resolvePart(childPart, parentPart))
		}
	}
	return strings.Join(out, ", ")
}

func resolvePart(child, parent string) string {
	if strings.Contains(child, "&") {
		return strings.ReplaceAll(child, "&", parent)
	}
	return parent + " " + child
}

// splitTopLevel splits a selector list on top-level commas. A backslash
// escapes exactly the next character, an active quote suspends bracket,
// paren and comma tracking until its closer, and commas inside parens or
// brackets never split. Parts that trim to nothing are dropped.
func splitTopLevel(s string) []string {
	var (
		parts    []string
		b        strings.Builder
		quote    byte
		escaped  bool
		parens   int
		brackets int
	)

	flush := func() {
		if part := strings.TrimSpace(b.String()); part != "" {
			parts = append(parts, part)
		}
		b.Reset()
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if quote != 0 {
			b.WriteByte(c)
			if c == quote {
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
			b.WriteByte(c)
		case '(':
			parens++
			b.WriteByte(c)
		case ')':
			parens--
			b.WriteByte(c)
		case '[':
			brackets++
			b.WriteByte(c)
		case ']':
			brackets--
			b.WriteByte(c)
		case ',':
			if parens == 0 && brackets == 0 {
				flush()
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	flush()
	return parts
}
