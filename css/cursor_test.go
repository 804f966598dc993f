package css_test

import (
	"strings"
	"testing"

	"cssc/css"
)

func TestCursor_PeekNext(t *testing.T) {
	cur := css.NewCursor(css.Tokenize("a{b"))

	tok, ok := cur.Peek()
	if !ok || tok.Type != css.TokenText || tok.Value != "a" {
		t.Fatalf("Peek: got %v, %v", tok, ok)
	}
	// peek does not consume
	if tok2, _ := cur.Peek(); tok2 != tok {
		t.Fatal("Peek consumed a token")
	}

	for i := 0; i < 3; i++ {
		if _, ok := cur.Next(); !ok {
			t.Fatal("Next: unexpected EOF")
		}
	}
	if !cur.EOF() {
		t.Fatal("expected EOF after three tokens")
	}
	if _, ok := cur.Next(); ok {
		t.Fatal("Next at EOF should report no token")
	}
}

func TestCursor_MarkReset(t *testing.T) {
	cur := css.NewCursor(css.Tokenize("a:b"))

	mark := cur.Mark()
	cur.Next()
	cur.Next()
	cur.Reset(mark)

	tok, ok := cur.Peek()
	if !ok || tok.Value != "a" {
		t.Fatalf("after Reset: got %v, %v", tok, ok)
	}
}

func TestCursor_Expect(t *testing.T) {
	cur := css.NewCursor(css.Tokenize(":"))
	if _, err := cur.Expect(css.TokenColon); err != nil {
		t.Fatalf("Expect matching type: %v", err)
	}

	// EOF
	_, err := cur.Expect(css.TokenColon)
	if err == nil || !strings.Contains(err.Error(), "end of input") {
		t.Errorf("Expect at EOF: got %v", err)
	}

	// type mismatch
	cur = css.NewCursor(css.Tokenize("{"))
	_, err = cur.Expect(css.TokenColon)
	if err == nil || !strings.Contains(err.Error(), "expected colon but got brace-open") {
		t.Errorf("Expect mismatch: got %v", err)
	}
}

func TestCursor_ReadUntil(t *testing.T) {
	tests := []struct {
		input string
		stops []css.TokenType
		want  string
	}{
		// text tokens joined with a single space
		{"solid red;", []css.TokenType{css.TokenSemicolon}, "solid red"},
		// params appended verbatim, following text still spaced
		{"calc(1px + 1em) auto;", []css.TokenType{css.TokenSemicolon}, "calc(1px + 1em) auto"},
		// strings re-wrapped in double quotes
		{"'x';", []css.TokenType{css.TokenSemicolon}, `"x"`},
		// non-stop punctuation is skipped without contributing content
		{"a:b;", []css.TokenType{css.TokenSemicolon}, "a b"},
		// stop at EOF
		{"a b", []css.TokenType{css.TokenSemicolon}, "a b"},
	}
	for _, tc := range tests {
		cur := css.NewCursor(css.Tokenize(tc.input))
		if got := cur.ReadUntil(tc.stops...); got != tc.want {
			t.Errorf("ReadUntil(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCursor_ReadUntilLeavesStopToken(t *testing.T) {
	cur := css.NewCursor(css.Tokenize("red;"))
	cur.ReadUntil(css.TokenSemicolon)

	tok, ok := cur.Peek()
	if !ok || tok.Type != css.TokenSemicolon {
		t.Fatalf("stop token consumed: got %v, %v", tok, ok)
	}
}

func TestCursor_SkipUntil(t *testing.T) {
	cur := css.NewCursor(css.Tokenize("a b c } d"))
	cur.SkipUntil(css.TokenBraceClose)

	tok, ok := cur.Peek()
	if !ok || tok.Type != css.TokenBraceClose {
		t.Fatalf("got %v, %v", tok, ok)
	}

	// skipping to a type that never occurs lands on EOF
	cur.SkipUntil(css.TokenAt)
	if !cur.EOF() {
		t.Fatal("expected EOF")
	}
}
