package utils

import (
	"reflect"
	"testing"
)

func TestCamelCapitalise(t *testing.T) {
	cases := map[string]string{
		"rgb": "Rgb",
		"":    "",
		"A":   "A",
	}
	for in, want := range cases {
		if got := CamelCapitalise(in); got != want {
			t.Errorf("CamelCapitalise(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpperSnake(t *testing.T) {
	cases := map[string]string{
		"northEast": "NORTH_EAST",
		"rgb":       "RGB",
		"already_snake": "ALREADY_SNAKE",
		"kebab-case": "KEBAB_CASE",
	}
	for in, want := range cases {
		if got := UpperSnake(in); got != want {
			t.Errorf("UpperSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModuleMemberFallbackName(t *testing.T) {
	if got := ModuleMemberFallbackName("string", "toUpper"); got != "stringToUpper" {
		t.Errorf("got %q", got)
	}
	if got := ModuleMemberFallbackName("", "toUpper"); got != "" {
		t.Errorf("expected empty moduleName to short-circuit, got %q", got)
	}
	if got := ModuleMemberFallbackName("string", ""); got != "" {
		t.Errorf("expected empty member to short-circuit, got %q", got)
	}
}

func TestIsInEnvelopingParentheses(t *testing.T) {
	cases := map[string]bool{
		"(Int, String)":      true,
		"(Int) -> (String)":  false,
		"(Int) -> String":    false,
		"()":                 true,
		"Int":                false,
		"(":                  false,
	}
	for in, want := range cases {
		if got := IsInEnvelopingParentheses(in); got != want {
			t.Errorf("IsInEnvelopingParentheses(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSplitTypeList(t *testing.T) {
	got := SplitTypeList("Int, Array<String, Int>, Bool")
	want := []string{"Int", "Array<String, Int>", "Bool"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitTypeListCustomSeparator(t *testing.T) {
	got := SplitTypeList("Int|Bool|(A|B)", "|")
	want := []string{"Int", "Bool", "(A|B)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGetTypeMapping(t *testing.T) {
	if v, ok := GetTypeMapping("Int64"); !ok || v != "Long" {
		t.Errorf("got %q, %v", v, ok)
	}
	if _, ok := GetTypeMapping("NotAType"); ok {
		t.Error("expected no mapping for an unknown type name")
	}
}
