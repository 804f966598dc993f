package css

import "strings"

// Stringify serializes a stylesheet back to compact CSS text. Empty
// declarations, rules and block at-rules are pruned recursively, so the
// output never contains "{}". Directives are always kept. No whitespace is
// inserted beyond what values and params already carry.
func Stringify(sheet *Stylesheet) string {
	var b strings.Builder
	for _, n := range sheet.Body {
		b.WriteString(stringifyNode(n))
	}
	return b.String()
}

func stringifyNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(stringifyNode(n))
	}
	return b.String()
}

func stringifyNode(n Node) string {
	switch n := n.(type) {
	case *Declaration:
		value := strings.TrimSpace(n.Value)
		if value == "" {
			return ""
		}
		return n.Prop + ":" + value + ";"

	case *Rule:
		body := stringifyNodes(n.Body)
		if body == "" {
			return ""
		}
		return n.Selector + "{" + body + "}"

	case *AtRule:
		head := "@" + n.Name
		if n.Params != "" {
			head += " " + n.Params
		}
		if n.Body == nil {
			return head + ";"
		}
		body := stringifyNodes(n.Body)
		if body == "" {
			return ""
		}
		return head + "{" + body + "}"

	default:
		return ""
	}
}
