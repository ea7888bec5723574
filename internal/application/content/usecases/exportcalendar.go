package usecases

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"togetherly/internal/domain/content"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

const (
	ExportFormatMarkdown = "markdown"
	ExportFormatHTML     = "html"
	ExportFormatYAML     = "yaml"
)

const defaultExportTitle = "Content calendar"

// TemplateSource is implemented by the export template loader.
type TemplateSource interface {
	Get(format string) (*template.Template, bool)
}

// HTMLRenderer turns markdown into sanitized HTML.
type HTMLRenderer interface {
	ToHTML(src string) (string, error)
}

type ExportCalendarCommand struct {
	Format string
	Title  string
	Posts  []content.Post
}

type ExportCalendarResult struct {
	Format      string
	ContentType string
	Filename    string
	Body        []byte
}

// ExportDay groups the posts published on one calendar day.
type ExportDay struct {
	DayIndex int            `yaml:"day_index"`
	Date     string         `yaml:"date"`
	Posts    []content.Post `yaml:"posts"`
}

// ExportDocument is the value handed to export templates.
type ExportDocument struct {
	Title string      `yaml:"title"`
	Days  []ExportDay `yaml:"days"`
}

type ExportCalendarUseCase struct {
	templates TemplateSource
	renderer  HTMLRenderer
	logger    logger.Interface
}

func NewExportCalendarUseCase(templates TemplateSource, renderer HTMLRenderer, logger logger.Interface) *ExportCalendarUseCase {
	return &ExportCalendarUseCase{
		templates: templates,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *ExportCalendarUseCase) Execute(ctx context.Context, cmd ExportCalendarCommand) (*ExportCalendarResult, error) {
	format := strings.ToLower(strings.TrimSpace(cmd.Format))
	if format == "" || format == "md" {
		format = ExportFormatMarkdown
	}
	if format == "yml" {
		format = ExportFormatYAML
	}
	if len(cmd.Posts) == 0 {
		return nil, apperrors.NewValidationError("posts are required").WithDetail("field", "posts")
	}

	doc := BuildExportDocument(cmd.Title, cmd.Posts)

	switch format {
	case ExportFormatYAML:
		body, err := yaml.Marshal(doc)
		if err != nil {
			uc.logger.Errorw("failed to encode calendar as yaml", "error", err)
			return nil, apperrors.NewInternalError("failed to export calendar").WithCause(err)
		}
		return &ExportCalendarResult{
			Format:      format,
			ContentType: "application/yaml; charset=utf-8",
			Filename:    "calendar.yaml",
			Body:        body,
		}, nil

	case ExportFormatMarkdown, ExportFormatHTML:
		md, err := uc.renderMarkdown(doc)
		if err != nil {
			return nil, err
		}
		if format == ExportFormatMarkdown {
			return &ExportCalendarResult{
				Format:      format,
				ContentType: "text/markdown; charset=utf-8",
				Filename:    "calendar.md",
				Body:        []byte(md),
			}, nil
		}

		fragment, err := uc.renderer.ToHTML(md)
		if err != nil {
			uc.logger.Errorw("failed to render calendar html", "error", err)
			return nil, apperrors.NewInternalError("failed to export calendar").WithCause(err)
		}
		page := fmt.Sprintf("<!doctype html>\n<html lang=\"en\">\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s</body>\n</html>\n",
			html.EscapeString(doc.Title), fragment)
		return &ExportCalendarResult{
			Format:      format,
			ContentType: "text/html; charset=utf-8",
			Filename:    "calendar.html",
			Body:        []byte(page),
		}, nil
	}

	return nil, apperrors.NewValidationError("unsupported export format").
		WithDetail("format", cmd.Format).
		WithDetail("supported", []string{ExportFormatMarkdown, ExportFormatHTML, ExportFormatYAML})
}

func (uc *ExportCalendarUseCase) renderMarkdown(doc ExportDocument) (string, error) {
	tmpl, ok := uc.templates.Get(ExportFormatMarkdown)
	if !ok {
		return "", apperrors.NewInternalError("markdown export template missing")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		uc.logger.Errorw("failed to execute export template", "error", err)
		return "", apperrors.NewInternalError("failed to export calendar").WithCause(err)
	}
	return buf.String(), nil
}

// BuildExportDocument groups posts by day index, keeping first-seen order.
func BuildExportDocument(title string, posts []content.Post) ExportDocument {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultExportTitle
	}
	doc := ExportDocument{Title: title}
	index := map[int]int{}
	for _, p := range posts {
		i, ok := index[p.DayIndex]
		if !ok {
			i = len(doc.Days)
			index[p.DayIndex] = i
			doc.Days = append(doc.Days, ExportDay{DayIndex: p.DayIndex, Date: p.Date})
		}
		doc.Days[i].Posts = append(doc.Days[i].Posts, p)
	}
	return doc
}
