// Package flatten expands nested CSS rules into flat ones, resolving "&"
// parent references and comma lists the way preprocessors do.
package flatten

import (
	"go.uber.org/zap"

	"cssc/css"
)

// Flattener rewrites stylesheets with nested rules into flat ones.
type Flattener struct {
	log *zap.Logger
}

// NewFlattener creates a new flattener. A nil logger disables debug logging.
func NewFlattener(log *zap.Logger) *Flattener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Flattener{log: log.Named("flatten")}
}

// Flatten returns a new stylesheet with every nested rule hoisted to the
// top level (or to the top of its enclosing at-rule block), its selector
// resolved against the parents it was nested under. The input tree is not
// modified; declaration nodes are shared between the trees.
//
// Source order is preserved: declarations separated by a nested rule end
// up in separate flat rules with the same selector, matching CSS nesting
// semantics without reordering.
func (f *Flattener) Flatten(sheet *css.Stylesheet) *css.Stylesheet {
	out := &css.Stylesheet{Body: make([]css.Node, 0, len(sheet.Body))}
	f.flattenLevel(sheet.Body, "", &out.Body)
	return out
}

// Process parses input, flattens it and serializes it back to compact CSS.
func (f *Flattener) Process(input string) (string, error) {
	sheet, err := css.NewParser(f.log).Parse(input)
	if err != nil {
		return "", err
	}
	return css.Stringify(f.Flatten(sheet)), nil
}

func (f *Flattener) flattenLevel(nodes []css.Node, parent string, out *[]css.Node) {
	var pending []css.Node // declarations waiting for their selector

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if parent == "" {
			// declarations outside any rule: a fragment, keep as-is
			f.log.Debug("Keeping top-level declarations without a selector", zap.Int("count", len(pending)))
			*out = append(*out, pending...)
		} else {
			*out = append(*out, &css.Rule{Selector: parent, Body: pending})
		}
		pending = nil
	}

	for _, n := range nodes {
		switch n := n.(type) {
		case *css.Declaration:
			pending = append(pending, n)

		case *css.Rule:
			flush()
			f.flattenLevel(n.Body, css.ResolveSelector(n.Selector, parent), out)

		case *css.AtRule:
			flush()
			if !n.HasBlock() {
				*out = append(*out, n)
				continue
			}
			inner := make([]css.Node, 0, len(n.Body))
			f.flattenLevel(n.Body, parent, &inner)
			*out = append(*out, &css.AtRule{Name: n.Name, Params: n.Params, Body: inner})

		default:
			flush()
			*out = append(*out, n)
		}
	}
	flush()
}
