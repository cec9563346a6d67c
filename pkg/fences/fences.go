// Package fences finds fenced code blocks that have no language tag.
package fences

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/fixups/pkg/langdetect"
)

// Fence is an unlabeled fenced code block.
type Fence struct {
	// Line is the 1-based line of the opening fence.
	Line int

	// Body is the raw content between the fences.
	Body []byte

	// Suggestion is the fence tag langdetect proposes for Body.
	Suggestion string
}

// Unlabeled parses content as Markdown and returns every fenced code block
// without an info string, in document order.
func Unlabeled(content []byte) []Fence {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	var found []Fence
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if len(block.Language(content)) > 0 {
			return ast.WalkSkipChildren, nil
		}

		body := blockBody(block, content)
		found = append(found, Fence{
			Line:       openingLine(block, content),
			Body:       body,
			Suggestion: langdetect.Detect(body),
		})

		return ast.WalkSkipChildren, nil
	})

	return found
}

func blockBody(block *ast.FencedCodeBlock, content []byte) []byte {
	var body bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		segment := lines.At(i)
		body.Write(segment.Value(content))
	}
	return body.Bytes()
}

// openingLine returns the line of the opening fence. goldmark does not record
// fence positions, so it is derived from the first body line, or from the
// block's preceding sibling for an empty block.
func openingLine(block *ast.FencedCodeBlock, content []byte) int {
	lines := block.Lines()
	if lines.Len() > 0 {
		return lineAt(content, lines.At(0).Start) - 1
	}

	// Empty block: find the first bare fence after the previous sibling.
	start := 0
	if prev := block.PreviousSibling(); prev != nil && prev.Lines().Len() > 0 {
		start = prev.Lines().At(prev.Lines().Len() - 1).Stop
	}
	idx := bytes.Index(content[start:], []byte("```"))
	if idx < 0 {
		return lineAt(content, start)
	}
	return lineAt(content, start+idx)
}

// lineAt returns the 1-based line containing byte offset.
func lineAt(content []byte, offset int) int {
	offset = min(offset, len(content))
	return bytes.Count(content[:offset], []byte("\n")) + 1
}
