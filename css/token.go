package css

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	TokenBraceOpen  TokenType = iota // {
	TokenBraceClose                  // }
	TokenColon                       // :
	TokenSemicolon                   // ;
	TokenAt                          // @
	TokenText                        // trimmed run of plain characters
	TokenParams                      // balanced parenthesized group, parens included
	TokenString                      // quoted string, quotes stripped, escapes kept verbatim
)

// String returns a human readable token type name, used in Expect errors.
func (t TokenType) String() string {
	switch t {
	case TokenBraceOpen:
		return "brace-open"
	case TokenBraceClose:
		return "brace-close"
	case TokenColon:
		return "colon"
	case TokenSemicolon:
		return "semicolon"
	case TokenAt:
		return "at"
	case TokenText:
		return "text"
	case TokenParams:
		return "params"
	case TokenString:
		return "string"
	default:
		return "unknown"
	}
}

// Token is a single lexical token. Value is empty for punctuation tokens.
type Token struct {
	Type  TokenType
	Value string
}
