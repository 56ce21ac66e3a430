package demo

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/wayfare-dev/wayfare/pkg/nav"
	"github.com/wayfare-dev/wayfare/pkg/route"
)

// htmlEngine is a minimal render engine for the demo: each level becomes
// a section tagged with its view name, params rendered as data attributes,
// inner content nested inside.
type htmlEngine struct{}

func (htmlEngine) Build(tag string, params route.Params, content []nav.Renderable) nav.Renderable {
	var b strings.Builder
	b.WriteString(`<section data-view="`)
	b.WriteString(html.EscapeString(tag))
	b.WriteString(`"`)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, ` data-param-%s="%s"`, html.EscapeString(name), html.EscapeString(params[name]))
	}
	b.WriteString(">")

	for _, c := range content {
		b.WriteString(renderableHTML(c))
	}
	b.WriteString("</section>")
	return b.String()
}

// renderableHTML flattens a composed tree back to markup. The engine only
// ever produces strings or slices of strings, so anything else is a bug
// worth surfacing verbatim.
func renderableHTML(tree nav.Renderable) string {
	switch t := tree.(type) {
	case nil:
		return ""
	case string:
		return t
	case []nav.Renderable:
		var b strings.Builder
		for _, c := range t {
			b.WriteString(renderableHTML(c))
		}
		return b.String()
	default:
		return fmt.Sprintf("<!-- unrenderable %T -->", tree)
	}
}

// htmlOutlet retains the most recently rendered markup for the shell page.
type htmlOutlet struct {
	mu   sync.RWMutex
	html string
}

func (o *htmlOutlet) Render(tree nav.Renderable) error {
	markup := renderableHTML(tree)
	o.mu.Lock()
	o.html = markup
	o.mu.Unlock()
	return nil
}

// HTML returns the last rendered markup.
func (o *htmlOutlet) HTML() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.html
}
