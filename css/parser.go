package css

import (
	"strings"

	"go.uber.org/zap"
)

// Parser builds syntax trees out of CSS-like text. It is tolerant by
// contract: malformed constructs are skipped with forward progress and
// never produce an error. The only errors the methods can return come from
// cursor contract violations (Expect), which indicate a parser invoked at
// the wrong position, not bad input.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new parser. A nil logger disables debug logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse tokenizes input and parses it into a stylesheet. Malformed input
// degrades to a smaller tree, never to an error.
func (p *Parser) Parse(input string) (*Stylesheet, error) {
	cur := NewCursor(Tokenize(input))
	body, err := p.parseNodes(cur, false)
	if err != nil {
		return nil, err
	}
	return &Stylesheet{Body: body}, nil
}

// Parse is a convenience wrapper around a parser without logging.
func Parse(input string) (*Stylesheet, error) {
	return NewParser(nil).Parse(input)
}

// ParseDeclaration parses "prop: value;" with the cursor positioned at the
// colon; prop has already been read by the caller. A trailing semicolon is
// consumed when present, a closing brace is left for the enclosing block.
func (p *Parser) ParseDeclaration(cur *Cursor, prop string) (*Declaration, error) {
	if _, err := cur.Expect(TokenColon); err != nil {
		return nil, err
	}
	value := cur.ReadUntil(TokenSemicolon, TokenBraceClose)
	if tok, ok := cur.Peek(); ok && tok.Type == TokenSemicolon {
		cur.Next()
	}
	return &Declaration{Prop: prop, Value: value}, nil
}

// ParseRule parses "selector { body }" with the cursor positioned at the
// opening brace; the selector has already been read by the caller.
func (p *Parser) ParseRule(cur *Cursor, selector string) (*Rule, error) {
	if _, err := cur.Expect(TokenBraceOpen); err != nil {
		return nil, err
	}
	body, err := p.ParseBlock(cur)
	if err != nil {
		return nil, err
	}
	return &Rule{Selector: selector, Body: body}, nil
}

// ParseAtRule parses an at-rule with the cursor positioned at the "@"
// token. Directive and block forms are distinguished by what follows the
// header; an at-rule truncated at EOF parses as a directive.
func (p *Parser) ParseAtRule(cur *Cursor) (*AtRule, error) {
	if _, err := cur.Expect(TokenAt); err != nil {
		return nil, err
	}

	name, params := parseAtRuleHeader(cur.ReadUntil(TokenSemicolon, TokenBraceOpen))

	// A params group after the header text belongs to the params, e.g.
	// "@scope (.card)". Concatenated as-is, no separator.
	if tok, ok := cur.Peek(); ok && tok.Type == TokenParams {
		cur.Next()
		params += tok.Value
	}

	at := &AtRule{Name: name, Params: params}

	tok, ok := cur.Peek()
	switch {
	case ok && tok.Type == TokenBraceOpen:
		cur.Next()
		body, err := p.ParseBlock(cur)
		if err != nil {
			return nil, err
		}
		at.Body = body
	case ok && tok.Type == TokenSemicolon:
		cur.Next()
	}
	return at, nil
}

// parseAtRuleHeader splits an at-rule header into name and initial params.
// The name ends at the first ASCII whitespace or at the first "(", so
// functional headers like "@media(min-width:10px)" keep their group in the
// params.
func parseAtRuleHeader(header string) (name, params string) {
	header = strings.TrimSpace(header)

	end := len(header)
	for i := 0; i < len(header); i++ {
		if isSpace(header[i]) || header[i] == '(' {
			end = i
			break
		}
	}
	name = header[:end]

	rest := end
	for rest < len(header) && isSpace(header[rest]) {
		rest++
	}
	return name, header[rest:]
}

// ParseBlock parses nodes up to and including the closing brace; the
// opening brace has already been consumed. It never returns a nil slice,
// keeping an empty block distinguishable from no block at all.
func (p *Parser) ParseBlock(cur *Cursor) ([]Node, error) {
	return p.parseNodes(cur, true)
}

// parseNodes is the shared grammar loop serving both the root level and
// block bodies; a single implementation keeps the two grammars identical.
// Stray semicolons are absorbed, anything unparseable is dropped after
// consuming one token so the loop always advances.
func (p *Parser) parseNodes(cur *Cursor, stopAtBraceClose bool) ([]Node, error) {
	nodes := make([]Node, 0)

	for {
		tok, ok := cur.Peek()
		if !ok {
			break
		}
		if stopAtBraceClose && tok.Type == TokenBraceClose {
			cur.Next()
			break
		}

		switch tok.Type {
		case TokenSemicolon:
			cur.Next()
			continue
		case TokenAt:
			at, err := p.ParseAtRule(cur)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, at)
			continue
		}

		name := ReadKeyOrSelector(cur)
		if name == "" {
			skipped, _ := cur.Next()
			p.log.Debug("Skipping unparseable token", zap.Stringer("type", skipped.Type))
			continue
		}

		next, ok := cur.Peek()
		switch {
		case ok && next.Type == TokenColon:
			decl, err := p.ParseDeclaration(cur, name)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, decl)
		case ok && next.Type == TokenBraceOpen:
			rule, err := p.ParseRule(cur, name)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, rule)
		default:
			cur.Next()
			p.log.Debug("Dropping unrecognized construct", zap.String("text", name))
		}
	}
	return nodes, nil
}
