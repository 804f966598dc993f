package css

import (
	"fmt"
	"strings"
)

// Cursor is a stateful reader over an immutable token list. The only state
// is an integer index, so Mark/Reset checkpoints are O(1) and a cursor is
// safe to use concurrently with other cursors over the same tokens.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps tokens in a cursor positioned at the first token.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// EOF reports whether all tokens have been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.tokens)
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.EOF() {
		return Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next consumes and returns the current token.
func (c *Cursor) Next() (Token, bool) {
	if c.EOF() {
		return Token{}, false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Mark returns a checkpoint of the current position for speculative reads.
func (c *Cursor) Mark() int {
	return c.pos
}

// Reset restores a position previously returned by Mark.
func (c *Cursor) Reset(pos int) {
	c.pos = pos
}

// Expect consumes the next token asserting its type. It is the single
// failure point of the whole pipeline: an error here means the caller
// invoked a parser at the wrong cursor position, not that the input CSS
// is invalid.
func (c *Cursor) Expect(t TokenType) (Token, error) {
	tok, ok := c.Next()
	if !ok {
		return Token{}, fmt.Errorf("expected %s but reached end of input", t)
	}
	if tok.Type != t {
		return Token{}, fmt.Errorf("expected %s but got %s", t, tok.Type)
	}
	return tok, nil
}

func hasType(stops []TokenType, t TokenType) bool {
	for _, s := range stops {
		if s == t {
			return true
		}
	}
	return false
}

// ReadUntil concatenates token payloads until a stop-type token or EOF is
// reached; the stop token is left unconsumed. Text tokens get a single
// space in front when something was already accumulated, string tokens are
// re-wrapped in double quotes, params groups are appended verbatim and any
// other token type is skipped without contributing content.
func (c *Cursor) ReadUntil(stops ...TokenType) string {
	var b strings.Builder
	for {
		tok, ok := c.Peek()
		if !ok || hasType(stops, tok.Type) {
			break
		}
		c.pos++

		switch tok.Type {
		case TokenText:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Value)
		case TokenString:
			b.WriteByte('"')
			b.WriteString(tok.Value)
			b.WriteByte('"')
		case TokenParams:
			b.WriteString(tok.Value)
		}
	}
	return strings.TrimSpace(b.String())
}

// SkipUntil advances to the first stop-type token (or EOF) without
// accumulating anything; the stop token is left unconsumed.
func (c *Cursor) SkipUntil(stops ...TokenType) {
	for {
		tok, ok := c.Peek()
		if !ok || hasType(stops, tok.Type) {
			return
		}
		c.pos++
	}
}
