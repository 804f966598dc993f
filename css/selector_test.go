package css_test

import (
	"testing"

	"cssc/css"
)

func TestReadSelector(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{".btn {", ".btn"},
		{"a:hover {", "a:hover"},
		{"div.x > span {", "div.x > span"},
		{":not(.a) {", ":not(.a)"},
		{"input[type=text] {", "input[type=text]"},
		{"} .next", ""}, // safety stop, nothing consumed
		{".trail   ", ".trail"},
	}
	for _, tc := range tests {
		cur := css.NewCursor(css.Tokenize(tc.input))
		if got := css.ReadSelector(cur); got != tc.want {
			t.Errorf("ReadSelector(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestReadSelector_StopsAtBraceOpen(t *testing.T) {
	cur := css.NewCursor(css.Tokenize(".btn {"))
	css.ReadSelector(cur)

	tok, ok := cur.Peek()
	if !ok || tok.Type != css.TokenBraceOpen {
		t.Fatalf("brace consumed: got %v, %v", tok, ok)
	}
}

func TestReadKeyOrSelector(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// selector followed by a block
		{".btn { }", ".btn"},
		{"a:hover { }", "a:hover"},
		// leading colon always means selector
		{":root { }", ":root"},
		{":root", ":root"},
		// declaration key: stops at the first colon
		{"color: red;", "color"},
		{"a:hover: 1;", "a"},
		// recoverable empty signals
		{"", ""},
		{"} x", ""},
		{"{ }", ""},
		{"; x", ""},
	}
	for _, tc := range tests {
		cur := css.NewCursor(css.Tokenize(tc.input))
		if got := css.ReadKeyOrSelector(cur); got != tc.want {
			t.Errorf("ReadKeyOrSelector(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestReadKeyOrSelector_AmbiguousColonRewinds(t *testing.T) {
	cur := css.NewCursor(css.Tokenize("a:hover: 1;"))

	if got := css.ReadKeyOrSelector(cur); got != "a" {
		t.Fatalf("got key %q, want %q", got, "a")
	}
	// the cursor must be left at the first colon so the declaration
	// parser can take over
	tok, ok := cur.Peek()
	if !ok || tok.Type != css.TokenColon {
		t.Fatalf("cursor not at first colon: got %v, %v", tok, ok)
	}
}

func TestReadKeyOrSelector_SelectorLeavesBrace(t *testing.T) {
	cur := css.NewCursor(css.Tokenize(".btn { }"))

	css.ReadKeyOrSelector(cur)
	tok, ok := cur.Peek()
	if !ok || tok.Type != css.TokenBraceOpen {
		t.Fatalf("brace consumed: got %v, %v", tok, ok)
	}
}
