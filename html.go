package spending

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts documents with GitHub flavored tables.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts a spending document to HTML.
func RenderHTML(w io.Writer, text string) error {
	if err := markdown.Convert([]byte(text), w); err != nil {
		return fmt.Errorf("could not render document: %w", err)
	}
	return nil
}
