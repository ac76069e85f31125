// Package typerewriter implements the recursive SourceLang type-string
// to TargetLang type-string rewriter.
package typerewriter

import (
	"strings"

	"github.com/gryphon-lang/gryphon-go/internal/utils"
)

const (
	arrayClassPrefix      = "ArrayClass<"
	dictionaryClassPrefix = "DictionaryClass<"
	arrowSeparator        = " -> "
)

// Rewrite recursively rewrites a SourceLang type string into its
// TargetLang form. Rules are order-significant; the first that matches
// wins.
func Rewrite(t string) string {
	// Rule 1: every literal "()" becomes "Unit" before anything else
	// is inspected.
	t = strings.ReplaceAll(t, "()", "Unit")

	// Rule 2: trailing '?' is an optional; recurse on the prefix.
	if strings.HasSuffix(t, "?") {
		return Rewrite(t[:len(t)-1]) + "?"
	}

	// Rule 3/4: leading '[' is either dictionary or array/list sugar.
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		inner := t[1 : len(t)-1]
		if idx := topLevelIndex(inner, ':'); idx >= 0 {
			key := strings.TrimSpace(inner[:idx])
			value := strings.TrimSpace(inner[idx+1:])
			return "MutableMap<" + Rewrite(key) + ", " + Rewrite(value) + ">"
		}
		return "MutableList<" + Rewrite(inner) + ">"
	}

	// Rule 5: ArrayClass<T>
	if strings.HasPrefix(t, arrayClassPrefix) && strings.HasSuffix(t, ">") {
		inner := t[len(arrayClassPrefix) : len(t)-1]
		return "MutableList<" + Rewrite(inner) + ">"
	}

	// Rule 6: DictionaryClass<K, V>
	if strings.HasPrefix(t, dictionaryClassPrefix) && strings.HasSuffix(t, ">") {
		inner := t[len(dictionaryClassPrefix) : len(t)-1]
		parts := utils.SplitTypeList(inner)
		if len(parts) == 2 {
			return "MutableMap<" + Rewrite(strings.TrimSpace(parts[0])) + ", " + Rewrite(strings.TrimSpace(parts[1])) + ">"
		}
	}

	// Rule 7: a string enveloped in parentheses is either a tuple
	// (exactly two top-level components -> Pair<A, B>) or a single
	// parenthesised component to strip and recurse on.
	if utils.IsInEnvelopingParentheses(t) {
		inner := t[1 : len(t)-1]
		parts := utils.SplitTypeList(inner)
		if len(parts) == 2 {
			return "Pair<" + Rewrite(strings.TrimSpace(parts[0])) + ", " + Rewrite(strings.TrimSpace(parts[1])) + ">"
		}
		return Rewrite(strings.TrimSpace(inner))
	}

	// Rule 8: a top-level " -> " makes this a function type.
	if idx := topLevelSubstring(t, arrowSeparator); idx >= 0 {
		components := splitArrow(t)
		rewritten := make([]string, len(components))
		for i, comp := range components {
			if i == len(components)-1 {
				rewritten[i] = Rewrite(strings.TrimSpace(comp))
				continue
			}
			comp = strings.TrimSpace(comp)
			if utils.IsInEnvelopingParentheses(comp) {
				inner := comp[1 : len(comp)-1]
				parts := utils.SplitTypeList(inner)
				for j, p := range parts {
					parts[j] = Rewrite(strings.TrimSpace(p))
				}
				rewritten[i] = "(" + strings.Join(parts, ", ") + ")"
			} else {
				rewritten[i] = Rewrite(comp)
			}
		}
		return strings.Join(rewritten, arrowSeparator)
	}

	// Rule 9: fallthrough to the static mapping table; echo unchanged
	// if nothing matches.
	if mapped, ok := utils.GetTypeMapping(t); ok {
		return mapped
	}
	return t
}

// topLevelIndex returns the index of the first top-level occurrence of
// b in s, never inside <>, (), or [] nesting, or -1 if none.
func topLevelIndex(s string, b byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 && s[i] == b {
				return i
			}
		}
	}
	return -1
}

// topLevelSubstring returns the index of the first top-level
// occurrence of sep in s, or -1 if none.
func topLevelSubstring(s, sep string) int {
	depth := 0
	for i := 0; i+len(sep) <= len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
			continue
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth == 0 && s[i:i+len(sep)] == sep {
			return i
		}
	}
	return -1
}

// splitArrow splits s at every top-level " -> ", respecting bracket
// nesting, so a curried function type keeps each parameter group
// distinct from the final return type.
func splitArrow(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i+len(arrowSeparator) <= len(s); {
		switch s[i] {
		case '<', '(', '[':
			depth++
			i++
			continue
		case '>', ')', ']':
			if depth > 0 {
				depth--
			}
			i++
			continue
		}
		if depth == 0 && s[i:i+len(arrowSeparator)] == arrowSeparator {
			parts = append(parts, s[start:i])
			i += len(arrowSeparator)
			start = i
			continue
		}
		i++
	}
	parts = append(parts, s[start:])
	return parts
}
