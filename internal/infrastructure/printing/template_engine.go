package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"maps"
	"strings"
	"time"

	"github.com/autenticco/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	TemplateChecklist = "checklist.html"
	TemplateQuote     = "quote.html"
)

var ptBR = language.BrazilianPortuguese

// TemplateEngine renders the embedded print templates.
// All templates share one set so they can use the base layout blocks.
type TemplateEngine struct {
	funcMap template.FuncMap
	set     *template.Template
}

// NewTemplateEngine parses the embedded templates
func NewTemplateEngine() (*TemplateEngine, error) {
	e := &TemplateEngine{}
	e.funcMap = template.FuncMap{
		"formatMoney":   formatMoney,
		"formatNumber":  formatNumber,
		"formatPercent": formatPercent,
		"formatDate":    formatDate,
		"upper":         strings.ToUpper,
		"title":         titleCase,
		"join":          strings.Join,
		"default":       defaultString,
		"safeURL":       safeURL,
	}

	set, err := template.New("print").Funcs(e.funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse print templates: %w", err)
	}
	e.set = set
	return e, nil
}

// Render executes the named template with data and returns the HTML
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	tmpl := e.set.Lookup(name)
	if tmpl == nil {
		return "", NewRenderError(ErrCodeTemplateNotFound, "unknown template "+name, nil)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}
	return buf.String(), nil
}

// GetFuncMap returns a copy of the template function map
func (e *TemplateEngine) GetFuncMap() template.FuncMap {
	funcMap := make(template.FuncMap, len(e.funcMap))
	maps.Copy(funcMap, e.funcMap)
	return funcMap
}

// formatMoney formats a value as Brazilian currency
// Example: 1234.5 -> "R$ 1.234,50"
func formatMoney(v any) string {
	d := toDecimal(v).Round(2)
	p := message.NewPrinter(ptBR)
	if d.IsNegative() {
		return p.Sprintf("-R$ %.2f", d.Abs().InexactFloat64())
	}
	return p.Sprintf("R$ %.2f", d.InexactFloat64())
}

// formatNumber formats an integer with thousand separators, e.g. mileage
func formatNumber(v any) string {
	return message.NewPrinter(ptBR).Sprintf("%d", toDecimal(v).Round(0).IntPart())
}

// formatPercent formats a percent value already scaled to 0-100
// Example: 1.99 -> "1,99%"
func formatPercent(v any) string {
	return message.NewPrinter(ptBR).Sprintf("%.2f%%", toDecimal(v).InexactFloat64())
}

// formatDate formats as dd/mm/yyyy
func formatDate(v any) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func titleCase(s string) string {
	return cases.Title(ptBR).String(s)
}

func defaultString(def, val string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}

// safeURL marks a string as a trusted URL.
// Only for values the server builds itself, such as QR code data URIs.
func safeURL(s string) template.URL {
	return template.URL(s)
}

func toDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case valueobject.Money:
		return val.Amount()
	default:
		return valueobject.Coerce(v)
	}
}

func toTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}
		return *val
	default:
		return time.Time{}
	}
}
