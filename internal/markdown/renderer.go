package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown into HTML using the goldmark engine. The renderer
// is stateless so callers can share a single instance without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// Options configures renderer behaviour.
type Options struct {
	// HardWraps renders soft line breaks as <br> elements.
	HardWraps bool
	// Unsafe permits raw HTML passthrough. Site content is editor-authored,
	// so the seed and admin paths enable this.
	Unsafe bool
}

// NewRenderer constructs a renderer with GFM extensions and auto heading ids.
func NewRenderer(opts Options) *Renderer {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return &Renderer{engine: engine}
}

// Render converts Markdown source into HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderString converts Markdown source into an HTML string, returning the
// source unchanged when rendering fails. Callers on the projection path rely
// on this lenient behaviour: a malformed block degrades, it never errors.
func (r *Renderer) RenderString(source string) string {
	out, err := r.Render([]byte(source))
	if err != nil {
		return source
	}
	return string(bytes.TrimSpace(out))
}
