// Package utils holds the small, stateless helpers the emitter treats as
// external collaborators: a bracket-respecting type-list
// splitter, identifier case converters, an enveloping-parentheses
// detector, and the static SourceLang→TargetLang type-name table.
package utils

// DefaultSeparators is the default separator list used by SplitTypeList.
var DefaultSeparators = []string{", "}

// SplitTypeList splits s at top-level occurrences of any separator in
// separators (DefaultSeparators if empty), never inside angle brackets,
// parentheses, or square brackets. The type rewriter calls this to pull
// apart a generic type argument list before rewriting each element.
func SplitTypeList(s string, separators ...string) []string {
	seps := separators
	if len(seps) == 0 {
		seps = DefaultSeparators
	}

	var parts []string
	depth := 0
	start := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 {
			if sep, ok := matchSeparator(s, i, seps); ok {
				parts = append(parts, s[start:i])
				i += len(sep)
				start = i
				continue
			}
		}
		i++
	}
	parts = append(parts, s[start:])
	return parts
}

func matchSeparator(s string, pos int, seps []string) (string, bool) {
	for _, sep := range seps {
		if sep == "" {
			continue
		}
		if pos+len(sep) <= len(s) && s[pos:pos+len(sep)] == sep {
			return sep, true
		}
	}
	return "", false
}
