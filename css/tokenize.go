package css

import "strings"

// isBoundary reports whether c terminates a text run. The set is fixed:
// every character with a dedicated token plus quote and comment openers.
func isBoundary(c byte) bool {
	switch c {
	case '{', '}', ':', ';', '@', '(', '"', '\'', '/':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Tokenize splits input into a flat token list in a single left-to-right
// pass. It never fails: malformed constructs degrade to best-effort tokens
// (an unterminated comment or string runs to end of input) and the scan
// position strictly advances on every iteration, so it always terminates.
//
// Both CSS block comments and JS-style line comments are skipped. A bare
// slash that opens no comment produces no token at all and is consumed by
// the fallback advance.
func Tokenize(input string) []Token {
	var tokens []Token

	i, n := 0, len(input)
	for i < n {
		c := input[i]

		if isSpace(c) {
			i++
			continue
		}

		if c == '/' && i+1 < n {
			switch input[i+1] {
			case '/':
				for i < n && input[i] != '\n' {
					i++
				}
				continue
			case '*':
				end := strings.Index(input[i+2:], "*/")
				if end < 0 {
					i = n
				} else {
					i += 2 + end + 2
				}
				continue
			}
		}

		switch c {
		case '{':
			tokens = append(tokens, Token{Type: TokenBraceOpen})
			i++
		case '}':
			tokens = append(tokens, Token{Type: TokenBraceClose})
			i++
		case ':':
			tokens = append(tokens, Token{Type: TokenColon})
			i++
		case ';':
			tokens = append(tokens, Token{Type: TokenSemicolon})
			i++
		case '@':
			tokens = append(tokens, Token{Type: TokenAt})
			i++
		case '(':
			j := readParenGroup(input, i)
			tokens = append(tokens, Token{Type: TokenParams, Value: input[i:j]})
			i = j
		case '"', '\'':
			value, j := readQuoted(input, i)
			tokens = append(tokens, Token{Type: TokenString, Value: value})
			i = j
		default:
			j := i
			for j < n && !isBoundary(input[j]) {
				j++
			}
			if text := strings.TrimSpace(input[i:j]); text != "" {
				tokens = append(tokens, Token{Type: TokenText, Value: text})
				i = j
			} else {
				// nothing worth emitting, force progress
				i++
			}
		}
	}
	return tokens
}

// readParenGroup returns the end index of the balanced parenthesis group
// starting at input[start]. Nesting is tracked by depth counting; if the
// group is never closed it extends to end of input.
func readParenGroup(input string, start int) int {
	depth := 0
	for j := start; j < len(input); j++ {
		switch input[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	return len(input)
}

// readQuoted reads a quoted string starting at input[start] and returns the
// unwrapped payload plus the index past the closing quote. An escape
// character and the character after it are copied verbatim, so the payload
// keeps backslashes literally. A missing closing quote truncates at EOF.
func readQuoted(input string, start int) (string, int) {
	quote := input[start]
	var b strings.Builder

	j := start + 1
	for j < len(input) {
		switch {
		case input[j] == '\\' && j+1 < len(input):
			b.WriteByte(input[j])
			b.WriteByte(input[j+1])
			j += 2
		case input[j] == quote:
			return b.String(), j + 1
		default:
			b.WriteByte(input[j])
			j++
		}
	}
	return b.String(), j
}
