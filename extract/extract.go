// Package extract pulls stylesheet text out of HTML documents.
package extract

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StyleBlocks returns the text content of every <style> element in the
// document, in source order, surrounding whitespace trimmed. Empty blocks
// are dropped. Malformed HTML is handled as well as the tokenizer allows;
// only a real read failure is reported.
func StyleBlocks(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)

	var blocks []string
	inStyle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return blocks, err
			}
			return blocks, nil

		case html.StartTagToken:
			name, _ := z.TagName()
			inStyle = string(name) == "style"

		case html.EndTagToken, html.SelfClosingTagToken:
			inStyle = false

		case html.TextToken:
			if !inStyle {
				continue
			}
			if block := strings.TrimSpace(string(z.Text())); block != "" {
				blocks = append(blocks, block)
			}
		}
	}
}
