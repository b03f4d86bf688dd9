package utils

import (
	"github.com/alecthomas/chroma/v2/quick"
	"io"
)

// RenderSnippet writes the snippet to w with terminal syntax highlighting.
func RenderSnippet(w io.Writer, snippet string, language string, theme string) error {
	return quick.Highlight(w, snippet+"\n", language, "terminal256", theme)
}
