// Package check runs a strict CSS3 grammar over stylesheet text. The main
// pipeline is deliberately tolerant of non-standard constructs, so this is
// the place to learn whether produced output would also satisfy a
// standards-conforming consumer.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Stylesheet parses data with a strict CSS3 grammar and returns a warning
// for the first construct it rejects, or nil when the whole input is
// standard CSS. The strict parser stops at the first error, so at most one
// warning is produced per call.
func Stylesheet(data []byte) []string {
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, _ := parser.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		err := parser.Err()
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
		return []string{fmt.Sprintf("not standard CSS at offset %d: %v", input.Offset(), err)}
	}
}
