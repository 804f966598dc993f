package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a stylesheet as an indented tree for debugging. String
// fields are quoted so trailing whitespace and escapes stay visible.
func Dump(sheet *Stylesheet) string {
	tw := &treeWriter{}
	tw.line(0, "stylesheet (%d nodes)", len(sheet.Body))
	dumpNodes(tw, 1, sheet.Body)
	return tw.String()
}

func dumpNodes(tw *treeWriter, depth int, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Declaration:
			tw.line(depth, "declaration %s = %s", quoted(n.Prop), quoted(n.Value))
		case *Rule:
			tw.line(depth, "rule %s", quoted(n.Selector))
			dumpNodes(tw, depth+1, n.Body)
		case *AtRule:
			switch {
			case !n.HasBlock() && n.Params == "":
				tw.line(depth, "at-rule %s directive", quoted(n.Name))
			case !n.HasBlock():
				tw.line(depth, "at-rule %s %s directive", quoted(n.Name), quoted(n.Params))
			case n.Params == "":
				tw.line(depth, "at-rule %s", quoted(n.Name))
				dumpNodes(tw, depth+1, n.Body)
			default:
				tw.line(depth, "at-rule %s %s", quoted(n.Name), quoted(n.Params))
				dumpNodes(tw, depth+1, n.Body)
			}
		default:
			tw.line(depth, "unknown node %T", n)
		}
	}
}

type treeWriter struct {
	b strings.Builder
}

func (tw *treeWriter) String() string {
	return tw.b.String()
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for i := 0; i < depth; i++ {
		tw.b.WriteString("  ")
	}
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

func quoted(raw string) string {
	return strconv.Quote(raw)
}
