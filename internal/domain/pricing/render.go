package pricing

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// PageTemplate renders a full HTML document around the section.
	PageTemplate = "pricing"
	// FragmentTemplate renders only the <section> element.
	FragmentTemplate = "pricing-section"
)

// Page is the data passed to the templates
type Page struct {
	Section Section
	// BasePath is the section URL; toggle links and CTA forms are built from it.
	BasePath string
}

// Renderer holds the parsed pricing templates
type Renderer struct {
	tmpl *template.Template
}

// safeSchemes are CTA destinations exposed in markup as is. Anything else
// (javascript:, data:, ...) is left to html/template, which blanks it.
var safeSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
	"sms":    true,
}

// ctaHref marks relative links and links with a safe scheme as trusted URLs
func ctaHref(href string) any {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	if u.Scheme == "" || safeSchemes[strings.ToLower(u.Scheme)] {
		return template.URL(href)
	}
	return href
}

var funcs = template.FuncMap{
	"ctaHref": ctaHref,
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New(PageTemplate).Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustRenderer panics if the embedded templates fail to parse
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Template() *template.Template { return r.tmpl }

// Render writes the named template for page to w
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	return r.tmpl.ExecuteTemplate(w, name, page)
}
