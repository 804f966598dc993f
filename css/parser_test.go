package css_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"cssc/css"
)

func mustParse(t *testing.T, input string) *css.Stylesheet {
	t.Helper()
	sheet, err := css.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return sheet
}

func TestParse_SimpleRule(t *testing.T) {
	sheet := mustParse(t, ".btn{color:red;}")

	want := &css.Stylesheet{Body: []css.Node{
		&css.Rule{Selector: ".btn", Body: []css.Node{
			&css.Declaration{Prop: "color", Value: "red"},
		}},
	}}
	if !reflect.DeepEqual(sheet, want) {
		t.Errorf("got %#v, want %#v", sheet, want)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	sheet := mustParse(t, "")
	if sheet.Body == nil || len(sheet.Body) != 0 {
		t.Errorf("expected empty non-nil body, got %#v", sheet.Body)
	}
}

func TestParse_MultipleDeclarations(t *testing.T) {
	sheet := mustParse(t, "a { color: red; margin: 0 auto }") // last semicolon omitted

	rule, ok := sheet.Body[0].(*css.Rule)
	if !ok || len(rule.Body) != 2 {
		t.Fatalf("got %#v", sheet.Body)
	}
	if d := rule.Body[1].(*css.Declaration); d.Prop != "margin" || d.Value != "0 auto" {
		t.Errorf("got %#v", d)
	}
}

func TestParse_NestedRules(t *testing.T) {
	sheet := mustParse(t, ".a{color:red;&:hover{color:blue;}}")

	outer := sheet.Body[0].(*css.Rule)
	if len(outer.Body) != 2 {
		t.Fatalf("outer body: %#v", outer.Body)
	}
	inner, ok := outer.Body[1].(*css.Rule)
	if !ok || inner.Selector != "&:hover" {
		t.Fatalf("inner: %#v", outer.Body[1])
	}
}

func TestParse_StraySemicolons(t *testing.T) {
	sheet := mustParse(t, ";;a{;color:red;;};;")
	if len(sheet.Body) != 1 {
		t.Fatalf("got %#v", sheet.Body)
	}
	rule := sheet.Body[0].(*css.Rule)
	if len(rule.Body) != 1 {
		t.Errorf("got %#v", rule.Body)
	}
}

func TestParse_DroppedJunkKeepsGoing(t *testing.T) {
	sheet := mustParse(t, "}} .btn{color:red;}")
	if len(sheet.Body) != 1 {
		t.Fatalf("got %#v", sheet.Body)
	}
	if r := sheet.Body[0].(*css.Rule); r.Selector != ".btn" {
		t.Errorf("got %#v", r)
	}
}

func TestParse_TruncatedBlock(t *testing.T) {
	sheet := mustParse(t, ".a{color:red") // EOF inside block
	rule := sheet.Body[0].(*css.Rule)
	if len(rule.Body) != 1 {
		t.Fatalf("got %#v", rule.Body)
	}
	if d := rule.Body[0].(*css.Declaration); d.Value != "red" {
		t.Errorf("got %#v", d)
	}
}

func TestParse_CustomProperties(t *testing.T) {
	sheet := mustParse(t, ":root{--main-color:red;}")
	rule := sheet.Body[0].(*css.Rule)
	if rule.Selector != ":root" {
		t.Fatalf("got %#v", rule)
	}
	if d := rule.Body[0].(*css.Declaration); d.Prop != "--main-color" {
		t.Errorf("got %#v", d)
	}
}

func TestParseAtRule_DirectiveVsBlock(t *testing.T) {
	// directive form: no body at all
	sheet := mustParse(t, "@charset;")
	at := sheet.Body[0].(*css.AtRule)
	if at.Name != "charset" || at.Params != "" || at.Body != nil {
		t.Errorf("directive: got %#v", at)
	}

	// block form with explicitly empty body: non-nil empty slice
	sheet = mustParse(t, "@media (max-width:100px){}")
	at = sheet.Body[0].(*css.AtRule)
	if at.Name != "media" || at.Params != "(max-width:100px)" {
		t.Errorf("block: got %#v", at)
	}
	if at.Body == nil || len(at.Body) != 0 {
		t.Errorf("block: body must be empty but present, got %#v", at.Body)
	}
	if !at.HasBlock() {
		t.Error("HasBlock on empty block")
	}
}

func TestParseAtRule_Import(t *testing.T) {
	sheet := mustParse(t, `@import url("style.css");`)
	at := sheet.Body[0].(*css.AtRule)
	if at.Name != "import" || at.Params != `url("style.css")` || at.Body != nil {
		t.Errorf("got %#v", at)
	}
}

func TestParseAtRule_FunctionalHeader(t *testing.T) {
	sheet := mustParse(t, "@media(min-width:600px){a{color:red;}}")
	at := sheet.Body[0].(*css.AtRule)
	if at.Name != "media" || at.Params != "(min-width:600px)" {
		t.Fatalf("got %#v", at)
	}
	if len(at.Body) != 1 {
		t.Errorf("body: %#v", at.Body)
	}
}

func TestParseAtRule_TruncatedAtEOF(t *testing.T) {
	sheet := mustParse(t, "@import something") // no semicolon, no block
	at := sheet.Body[0].(*css.AtRule)
	if at.Name != "import" || at.Params != "something" || at.Body != nil {
		t.Errorf("got %#v", at)
	}
}

func TestParseAtRule_CustomNested(t *testing.T) {
	sheet := mustParse(t, "@layer base{h1{font-size:2em;}@supports (display:grid){div{display:grid;}}}")
	layer := sheet.Body[0].(*css.AtRule)
	if layer.Name != "layer" || layer.Params != "base" || len(layer.Body) != 2 {
		t.Fatalf("got %#v", layer)
	}
	supports, ok := layer.Body[1].(*css.AtRule)
	if !ok || supports.Name != "supports" || supports.Params != "(display:grid)" {
		t.Errorf("got %#v", layer.Body[1])
	}
}

func TestParser_ExpectViolationPropagates(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	// cursor deliberately not positioned at a colon
	cur := css.NewCursor(css.Tokenize("red;"))
	if _, err := p.ParseDeclaration(cur, "color"); err == nil {
		t.Error("ParseDeclaration off-position: expected error")
	}

	cur = css.NewCursor(css.Tokenize("color:red;"))
	if _, err := p.ParseRule(cur, ".a"); err == nil {
		t.Error("ParseRule off-position: expected error")
	}
}

func TestParser_JSStyleComments(t *testing.T) {
	sheet := mustParse(t, `
		// heading styles
		h1 {
			font-weight: bold; /* heavy */
		}
	`)
	if len(sheet.Body) != 1 {
		t.Fatalf("got %#v", sheet.Body)
	}
	rule := sheet.Body[0].(*css.Rule)
	if rule.Selector != "h1" || len(rule.Body) != 1 {
		t.Errorf("got %#v", rule)
	}
}
