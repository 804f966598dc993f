package extract_test

import (
	"strings"
	"testing"

	"cssc/extract"
)

func TestStyleBlocks(t *testing.T) {
	doc := `<!doctype html>
<html>
<head>
<style>.a{color:red;}</style>
<style type="text/css">
.b { color: blue; }
</style>
<style></style>
</head>
<body>
<p>.not-css{}</p>
<style>.c{margin:0;}</style>
</body>
</html>`

	blocks, err := extract.StyleBlocks(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{".a{color:red;}", ".b { color: blue; }", ".c{margin:0;}"}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks %v, want %d", len(blocks), blocks, len(want))
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Errorf("block %d: got %q, want %q", i, blocks[i], want[i])
		}
	}
}

func TestStyleBlocks_NoStyles(t *testing.T) {
	blocks, err := extract.StyleBlocks(strings.NewReader("<p>plain</p>"))
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 0 {
		t.Errorf("got %v, want none", blocks)
	}
}

func TestStyleBlocks_TruncatedMarkup(t *testing.T) {
	blocks, err := extract.StyleBlocks(strings.NewReader("<style>.a{color:red"))
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0] != ".a{color:red" {
		t.Errorf("got %v", blocks)
	}
}
