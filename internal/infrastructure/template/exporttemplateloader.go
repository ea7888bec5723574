// Package template loads the text templates used to export calendars.
package template

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/services/markdown"
)

const FormatMarkdown = "markdown"

//go:embed default.markdown.tmpl
var defaultMarkdown string

var funcs = template.FuncMap{
	"md":   markdown.EscapeInline,
	"join": strings.Join,
}

// ExportTemplateLoader serves export templates. Files named custom.<format>.tmpl
// in the configured directory replace the built-in template for that format.
type ExportTemplateLoader struct {
	templates map[string]*template.Template
	path      string
	logger    logger.Interface
}

func NewExportTemplateLoader(path string, logger logger.Interface) *ExportTemplateLoader {
	return &ExportTemplateLoader{
		templates: map[string]*template.Template{
			FormatMarkdown: template.Must(template.New(FormatMarkdown).Funcs(funcs).Parse(defaultMarkdown)),
		},
		path:   path,
		logger: logger,
	}
}

// Load reads custom templates. A missing directory is not an error; a template
// that fails to parse is.
func (l *ExportTemplateLoader) Load() error {
	if l.path == "" {
		return nil
	}
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		l.logger.Warnw("export templates directory not found, using defaults", "path", l.path)
		return nil
	}

	for _, format := range []string{FormatMarkdown} {
		filename := fmt.Sprintf("custom.%s.tmpl", format)
		filePath := filepath.Join(l.path, filename)

		content, err := os.ReadFile(filePath)
		if err != nil {
			if !os.IsNotExist(err) {
				l.logger.Warnw("failed to read export template", "file", filePath, "error", err)
			}
			continue
		}

		tmpl, err := template.New(format).Funcs(funcs).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse export template %s: %w", filePath, err)
		}
		l.templates[format] = tmpl
		l.logger.Infow("loaded export template", "format", format, "file", filename, "size", len(content))
	}
	return nil
}

// Get returns the template for format, or false when none exists.
func (l *ExportTemplateLoader) Get(format string) (*template.Template, bool) {
	tmpl, ok := l.templates[strings.ToLower(strings.TrimSpace(format))]
	return tmpl, ok
}
