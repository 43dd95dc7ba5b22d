// Package preview renders a small HTML page that embeds a generated static
// map URL, so a built map can be eyeballed in a browser without any client
// code. User-provided title and notes strings are sanitized before they
// reach the template.
package preview

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mbehan/go-staticmap/pkg/mapfile"
	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
<style>body{font-family:sans-serif;margin:2rem}img{border:1px solid #ccc}</style>
</head>
<body>
<h1>{{ title }}</h1>
{% if notes %}<p>{{ notes }}</p>{% endif %}
<img src="{{ map_url }}" alt="{{ title }}">
</body>
</html>
`

// Page is the data a preview needs: a display title, optional notes, and
// the already-built map URL.
type Page struct {
	Title  string
	Notes  string
	MapURL string
}

// Renderer renders preview pages from a compiled template.
type Renderer struct {
	tpl    *pongo2.Template
	policy *bluemonday.Policy
}

// New compiles the page template and prepares the sanitizer policy.
func New() (*Renderer, error) {
	tpl, err := pongo2.FromString(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: compile template: %w", err)
	}
	return &Renderer{
		tpl:    tpl,
		policy: bluemonday.StrictPolicy(),
	}, nil
}

// Render produces the HTML page for a Page value. Title and Notes pass
// through a strict sanitizer first; markup in either is stripped, not
// escaped into visible noise.
func (r *Renderer) Render(p Page, out ...io.Writer) (string, error) {
	if r == nil || r.tpl == nil {
		return "", errors.New("preview: renderer is nil")
	}
	if strings.TrimSpace(p.MapURL) == "" {
		return "", errors.New("preview: map url is required")
	}

	title := strings.TrimSpace(r.policy.Sanitize(p.Title))
	if title == "" {
		title = "Static map preview"
	}

	rendered, err := r.tpl.Execute(pongo2.Context{
		"title":   title,
		"notes":   strings.TrimSpace(r.policy.Sanitize(p.Notes)),
		"map_url": p.MapURL,
	})
	if err != nil {
		return "", fmt.Errorf("preview: execute template: %w", err)
	}

	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("preview: write output: %w", err)
		}
	}
	return rendered, nil
}

// RenderDefinition builds the URL from a mapfile definition and renders its
// preview in one step, reusing the definition's title and notes.
func (r *Renderer) RenderDefinition(def mapfile.Definition, out ...io.Writer) (string, error) {
	b, err := def.Builder()
	if err != nil {
		return "", err
	}
	return r.RenderBuilder(b, def.Title, def.Notes, out...)
}

// RenderBuilder renders the preview for an already-configured builder.
func (r *Renderer) RenderBuilder(b *urlbuilder.Builder, title, notes string, out ...io.Writer) (string, error) {
	if b == nil {
		return "", errors.New("preview: builder is nil")
	}
	mapURL, err := b.URL()
	if err != nil {
		return "", err
	}
	return r.Render(Page{Title: title, Notes: notes, MapURL: mapURL}, out...)
}
