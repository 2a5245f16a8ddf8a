// Package renderer turns inquiries and invoices into downloadable plain-text documents.
package renderer

//go:generate go run go.uber.org/mock/mockgen -source=./renderer.go -destination=../mocks/renderer_mock.go -package=mocks

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"grandplaza/internal/domains/document/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var ErrUnknownKind = errors.New("unknown document kind")

type Renderer interface {
	Render(kind model.Kind, data any) ([]byte, error)
}

type textRenderer struct {
	templates map[model.Kind]*template.Template
}

var funcs = template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"money": Money,
	"upper": strings.ToUpper,
}

func New() Renderer {
	r, err := NewText()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load document templates")
	}

	return r
}

// NewText parses the embedded templates. It fails only when a template is malformed.
func NewText() (Renderer, error) {
	r := &textRenderer{templates: make(map[model.Kind]*template.Template)}

	for _, kind := range []model.Kind{model.KindInquiry, model.KindInvoice} {
		name := string(kind) + ".tmpl"

		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}

		r.templates[kind] = tmpl
	}

	return r, nil
}

func (r *textRenderer) Render(kind model.Kind, data any) ([]byte, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s document: %w", kind, err)
	}

	return buf.Bytes(), nil
}

// Money prints an amount in dollars with thousands separators, e.g. $45,000 or $1,234.5.
func Money(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	whole, fraction, _ := strings.Cut(amount.String(), ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}

		grouped.WriteRune(digit)
	}

	if fraction != "" {
		return fmt.Sprintf("%s$%s.%s", sign, grouped.String(), fraction)
	}

	return fmt.Sprintf("%s$%s", sign, grouped.String())
}
