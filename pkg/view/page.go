package view

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	texttemplate "text/template"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// Page is a rendered markdown page.
type Page struct {
	Metadata map[string]any
	HTML     string
	Text     string // Processed markdown before HTML conversion
}

// RenderPage renders a markdown page inside a layout.
//
// The page body is a text/template with access to the registered filters,
// executed with data wrapped in an Instance. The resulting markdown is
// converted to HTML, sanitized, and injected into the layout as .Content.
// Layouts also receive .Metadata (the page frontmatter) and .Data.
func (e *Engine) RenderPage(ctx context.Context, layout, name string, data any) (*Page, error) {
	cached, err := e.getPage(name)
	if err != nil {
		return nil, err
	}

	inst := e.instance(ctx, data)

	var markdown bytes.Buffer
	if err := cached.tmpl.Execute(&markdown, inst); err != nil {
		return nil, fmt.Errorf("%w: executing page %s: %v", ErrRenderFailed, name, err)
	}

	var converted bytes.Buffer
	if err := e.md.Convert(markdown.Bytes(), &converted); err != nil {
		return nil, fmt.Errorf("%w: converting markdown %s: %v", ErrRenderFailed, name, err)
	}
	content := e.policy.SanitizeBytes(converted.Bytes())

	layoutTmpl, err := e.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = layoutTmpl.Execute(&out, map[string]any{
		"Content":  template.HTML(content),
		"Metadata": cached.metadata,
		"Data":     data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: executing layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &Page{
		Metadata: cached.metadata,
		HTML:     out.String(),
		Text:     markdown.String(),
	}, nil
}

// getPage returns a cached page or parses and caches it.
func (e *Engine) getPage(name string) (*cachedPage, error) {
	e.mu.RLock()
	if cached, ok := e.pageCache[name]; ok {
		e.mu.RUnlock()
		return cached, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.pageCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(e.fs, path.Join(e.pageDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	metadata, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	tmpl, err := texttemplate.New(name).Funcs(e.funcs()).Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing page %s: %v", ErrRenderFailed, name, err)
	}

	cached := &cachedPage{metadata: metadata, tmpl: tmpl}
	e.pageCache[name] = cached
	return cached, nil
}

// splitFrontmatter separates YAML frontmatter delimited by "---" lines from
// the page body. Content without a leading delimiter has no metadata.
func splitFrontmatter(content []byte) (map[string]any, []byte, error) {
	metadata := make(map[string]any)

	rest, ok := bytes.CutPrefix(content, frontmatterDelimiter)
	if !ok {
		return metadata, content, nil
	}
	rest = bytes.TrimLeft(rest, "\r\n")

	front, body, found := bytes.Cut(rest, frontmatterDelimiter)
	if !found {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	// Drop the line break that ends the closing delimiter.
	body, ok = bytes.CutPrefix(body, []byte("\r\n"))
	if !ok {
		body = bytes.TrimPrefix(body, []byte("\n"))
	}

	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &metadata); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	return metadata, body, nil
}
