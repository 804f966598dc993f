package css

import "strings"

// ReadSelector consumes tokens and reconstructs a selector string. It stops
// without consuming at a brace (open or close), at any token type that
// cannot occur inside a selector, or at EOF. Tokens are concatenated with
// no inserted separators: the tokenizer's trimming already fixed their
// boundaries.
func ReadSelector(cur *Cursor) string {
	var b strings.Builder
loop:
	for {
		tok, ok := cur.Peek()
		if !ok {
			break
		}
		switch tok.Type {
		case TokenColon:
			b.WriteByte(':')
		case TokenText, TokenParams:
			b.WriteString(tok.Value)
		case TokenString:
			b.WriteByte('"')
			b.WriteString(tok.Value)
			b.WriteByte('"')
		default:
			break loop
		}
		cur.Next()
	}
	return strings.TrimSpace(b.String())
}

// ReadKeyOrSelector resolves the ambiguity between "selector {" and
// "property: value" at the current cursor position.
//
// A leading colon can only start a selector (":root"), so that case goes
// straight to ReadSelector. Otherwise a selector is read speculatively: it
// is accepted when a brace-open follows (left for the caller), and rolled
// back otherwise, in which case only the declaration key up to the first
// delimiter is consumed. For "a:hover: 1;" that yields the key "a" with the
// cursor left at the first colon.
//
// An empty result means there is nothing parseable here (EOF or a token
// that can start neither form); it is a recoverable signal, not a failure.
func ReadKeyOrSelector(cur *Cursor) string {
	tok, ok := cur.Peek()
	if !ok {
		return ""
	}

	switch tok.Type {
	case TokenColon:
		return ReadSelector(cur)
	case TokenText, TokenString, TokenParams:
	default:
		return ""
	}

	mark := cur.Mark()
	selector := ReadSelector(cur)
	if next, ok := cur.Peek(); ok && next.Type == TokenBraceOpen {
		return selector
	}

	cur.Reset(mark)
	return cur.ReadUntil(TokenColon, TokenBraceOpen, TokenSemicolon, TokenBraceClose, TokenAt)
}
