package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Páginas disponibles; cada una se combina con layout.html.
const (
	pageList     = "list.html"
	pageDetail   = "detail.html"
	pageForm     = "form.html"
	pageNotFound = "not_found.html"
)

var templateFuncs = template.FuncMap{
	"sexLabel":    sexLabel,
	"displayDate": displayDate,
	"pages": func(last int) []int {
		out := make([]int, last)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
}

// renderer plantillas html/template embebidas, parseadas una vez al arrancar.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{pageList, pageDetail, pageForm, pageNotFound} {
		t, err := template.New(page).Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("plantilla %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// render escribe la página con el status indicado.
func (r *renderer) render(c *fiber.Ctx, status int, page string, data interface{}) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("plantilla %s no registrada", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

var sexLabels = map[string]string{
	entity.SexMale:   "Masculino",
	entity.SexFemale: "Femenino",
	entity.SexOther:  "Otro",
}

func sexLabel(s string) string {
	if l, ok := sexLabels[s]; ok {
		return l
	}
	return s
}

// displayDate "1990-05-15" → "15/05/1990"; valores no válidos se muestran tal cual.
func displayDate(s string) string {
	t, err := time.Parse(vendedor.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
