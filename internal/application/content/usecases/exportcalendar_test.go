package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"togetherly/internal/domain/content"
	exporttemplate "togetherly/internal/infrastructure/template"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
	"togetherly/internal/shared/services/markdown"
)

func samplePosts() []content.Post {
	url := "https://example.com/img?q=coffee"
	return []content.Post{
		{Date: "2025-03-01", DayIndex: 1, Platform: "instagram", Pillar: "Educational", Caption: "Brew *better* coffee\n\n#coffee", ImagePrompt: "latte art", ImageURL: &url,
			Reel: &content.ReelPlan{Style: "talking_head", Hook: "Stop!", LengthSeconds: 30, Beats: []content.Beat{{Label: "Hook", StartS: 0, EndS: 3, Line: "Stop!"}}, ShotList: []string{"close-up", "pour"}}},
		{Date: "2025-03-01", DayIndex: 1, Platform: "linkedin", Pillar: "Educational", Caption: "Three tips", ImagePrompt: "beans"},
		{Date: "2025-03-02", DayIndex: 2, Platform: "instagram", Pillar: "Promotional", Caption: "<b>Sale</b> today", ImagePrompt: "counter"},
	}
}

func newExportUseCase() *ExportCalendarUseCase {
	return NewExportCalendarUseCase(exporttemplate.NewExportTemplateLoader("", logger.NewNop()), markdown.NewRenderer(), logger.NewNop())
}

func TestExportCalendar_Markdown(t *testing.T) {
	res, err := newExportUseCase().Execute(context.Background(), ExportCalendarCommand{Posts: samplePosts()})
	require.NoError(t, err)

	body := string(res.Body)
	assert.Equal(t, "calendar.md", res.Filename)
	assert.True(t, strings.HasPrefix(body, "# Content calendar"))
	assert.Contains(t, body, "## Day 1 (2025-03-01)")
	assert.Contains(t, body, "## Day 2 (2025-03-02)")
	assert.Contains(t, body, `Brew \*better\* coffee`)
	assert.Contains(t, body, "- 0-3s Hook: Stop!")
	assert.Contains(t, body, "Shots: close-up; pour")
	assert.Contains(t, body, "![image](https://example.com/img?q=coffee)")
}

func TestExportCalendar_HTMLIsSanitized(t *testing.T) {
	res, err := newExportUseCase().Execute(context.Background(), ExportCalendarCommand{Format: "HTML", Title: "March", Posts: samplePosts()})
	require.NoError(t, err)

	body := string(res.Body)
	assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
	assert.Contains(t, body, "<title>March</title>")
	assert.Contains(t, body, "<h2")
	assert.NotContains(t, body, "<b>Sale</b>")
}

func TestExportCalendar_YAML(t *testing.T) {
	res, err := newExportUseCase().Execute(context.Background(), ExportCalendarCommand{Format: "yml", Posts: samplePosts()})
	require.NoError(t, err)
	assert.Equal(t, ExportFormatYAML, res.Format)

	var doc ExportDocument
	require.NoError(t, yaml.Unmarshal(res.Body, &doc))
	require.Len(t, doc.Days, 2)
	assert.Len(t, doc.Days[0].Posts, 2)
	assert.Equal(t, "2025-03-02", doc.Days[1].Date)
	require.NotNil(t, doc.Days[0].Posts[0].Reel)
	assert.Equal(t, "Stop!", doc.Days[0].Posts[0].Reel.Hook)
}

func TestExportCalendar_Errors(t *testing.T) {
	uc := newExportUseCase()

	_, err := uc.Execute(context.Background(), ExportCalendarCommand{Format: "markdown"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ExportCalendarCommand{Format: "pdf", Posts: samplePosts()})
	require.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, "pdf", apperrors.GetAppError(err).Details["format"])
}

type staticFlags struct {
	flags   map[string]any
	version string
}

func (s staticFlags) All() map[string]any { return s.flags }
func (s staticFlags) Version() string     { return s.version }

func TestGetContentFlags(t *testing.T) {
	res := NewGetContentFlagsUseCase(staticFlags{flags: map[string]any{"gate7DayToPaid": true}, version: "v3"}).Execute(context.Background())
	assert.Equal(t, "v3", res.Version)
	assert.Equal(t, true, res.Flags["gate7DayToPaid"])

	empty := NewGetContentFlagsUseCase(nil).Execute(context.Background())
	assert.Equal(t, "local", empty.Version)
	assert.NotNil(t, empty.Flags)
}
