// Package enc transcodes stylesheet bytes to UTF-8 based on the @charset
// rule CSS uses to declare its own encoding.
package enc

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// The charset rule must open the stylesheet; leading whitespace is
// tolerated even though standard CSS does not allow it.
var charsetRule = regexp.MustCompile(`^\s*@charset\s+"([^"]+)"\s*;`)

// DecodeStylesheet converts stylesheet bytes to a UTF-8 string. Without a
// leading @charset rule (or with one naming UTF-8) the bytes pass through
// unchanged. Charset names are resolved through the IANA index, see
// IANA.org for the character set names.
func DecodeStylesheet(data []byte) (string, error) {
	m := charsetRule.FindSubmatch(data)
	if m == nil {
		return string(data), nil
	}

	name := string(m[1])
	if strings.EqualFold(name, "utf-8") {
		return string(data), nil
	}

	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return "", fmt.Errorf("unable to get encoding for '%s': %w", name, err)
	}
	if e == nil {
		// IANA knows the name but Go has no decoder for it
		return "", fmt.Errorf("unsupported encoding '%s'", name)
	}

	decoded, _, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("unable to decode '%s' stylesheet: %w", name, err)
	}
	return string(decoded), nil
}
