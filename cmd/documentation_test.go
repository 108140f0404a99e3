package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeDocumentsEveryCommand parses the README and checks that every
// registered subcommand shows up in at least one bash example block.
func TestReadmeDocumentsEveryCommand(t *testing.T) {
	source, err := os.ReadFile("../README.md")
	if err != nil {
		t.Fatalf("could not read README.md: %v", err)
	}

	var examples strings.Builder
	root := goldmark.New().Parser().Parse(text.NewReader(source))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fcb.Language(source)) != "bash" {
			return ast.WalkContinue, nil
		}
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			examples.Write(seg.Value(source))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("could not walk README.md: %v", err)
	}

	for _, c := range Commands {
		if !strings.Contains(examples.String(), "mkt "+c.Name()) {
			t.Errorf("command %q has no bash example in README.md", c.Name())
		}
	}
}
