package export

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/jmylchreest/tokensmith/internal/tokens"
)

//go:embed templates/*.tmpl
var templates embed.FS

// templateExporter renders a single embedded text/template.
type templateExporter struct {
	name        string
	description string
	filename    string
	tmplName    string
}

// NewCSS creates the CSS custom properties exporter.
func NewCSS() Exporter {
	return &templateExporter{
		name:        "css",
		description: "CSS custom properties on :root",
		filename:    "tokens.css",
		tmplName:    "tokens.css.tmpl",
	}
}

// NewSCSS creates the SCSS variables exporter.
func NewSCSS() Exporter {
	return &templateExporter{
		name:        "scss",
		description: "SCSS variables partial",
		filename:    "_tokens.scss",
		tmplName:    "tokens.scss.tmpl",
	}
}

// NewTailwind creates the Tailwind CSS config exporter.
func NewTailwind() Exporter {
	return &templateExporter{
		name:        "tailwind",
		description: "Tailwind CSS theme.extend config",
		filename:    "tailwind.config.js",
		tmplName:    "tailwind.config.js.tmpl",
	}
}

func (e *templateExporter) Name() string        { return e.name }
func (e *templateExporter) Description() string { return e.description }

// Generate executes the exporter's template against set.
func (e *templateExporter) Generate(set *tokens.Set) (map[string][]byte, error) {
	if set == nil {
		return nil, fmt.Errorf("token set cannot be nil")
	}

	tmplContent, err := templates.ReadFile("templates/" + e.tmplName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", e.name, err)
	}

	tmpl, err := template.New(e.tmplName).Funcs(templateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", e.name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, set); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", e.name, err)
	}

	return map[string][]byte{e.filename: buf.Bytes()}, nil
}

// templateFuncs returns template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"rem":   rem,
		"quote": strconv.Quote,
		"fonts": fontList,
	}
}

// rem formats a rem length, dropping the unit for zero.
func rem(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

// fontList renders a CSS font stack as quoted JS array items.
func fontList(stack string) string {
	fonts := splitFonts(stack)
	quoted := make([]string, len(fonts))
	for i, f := range fonts {
		quoted[i] = strconv.Quote(f)
	}
	return strings.Join(quoted, ", ")
}
