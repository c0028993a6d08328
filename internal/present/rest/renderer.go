package rest

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pkg/errors"

	"github.com/userrate/userrate/internal/domain"
	"github.com/userrate/userrate/web"
)

// Renderer turns a ProfileRenderModel into the final HTML page.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded profile template. An error here means a
// broken build, not a request-shape problem.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(web.FS, "profile.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile template")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template and, when a role banner applies, injects
// its script immediately before the closing body tag.
func (r *Renderer) Render(model domain.ProfileRenderModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, model); err != nil {
		return nil, errors.Wrap(err, "failed to render profile template")
	}

	page := buf.Bytes()
	if model.Banner != nil {
		script := fmt.Sprintf("<script>addHeader(%q, %q)</script>", model.Banner.Message, model.Banner.Severity)
		page = bytes.Replace(page, []byte("</body>"), []byte(script+"</body>"), 1)
	}

	return page, nil
}
