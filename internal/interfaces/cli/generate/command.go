package generate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	contentUsecases "togetherly/internal/application/content/usecases"
	"togetherly/internal/domain/content"
	"togetherly/internal/domain/profile"
	"togetherly/internal/infrastructure/enhancer"
	"togetherly/internal/infrastructure/template"
	"togetherly/internal/interfaces/cli"
	"togetherly/internal/shared/services/markdown"
)

var (
	env         string
	profilePath string
	days        int
	seed        uint64
	format      string
	startDate   string
	outPath     string
)

// ProfileFile is the YAML document read by --profile.
type ProfileFile struct {
	Industry      string         `yaml:"industry"`
	Tone          string         `yaml:"tone"`
	Platforms     []string       `yaml:"platforms"`
	BrandKeywords []string       `yaml:"brand_keywords"`
	NicheKeywords []string       `yaml:"niche_keywords"`
	Goals         []string       `yaml:"goals"`
	Company       string         `yaml:"company"`
	IncludeImages bool           `yaml:"include_images"`
	Details       map[string]any `yaml:"details"`
	Days          int            `yaml:"days"`
	StartDate     string         `yaml:"start_date"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a content calendar for a profile file",
		Long: `Generate a calendar offline from a YAML profile and print it as markdown,
html or yaml. No account, quota or database is involved.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to a YAML profile (required)")
	cmd.Flags().IntVarP(&days, "days", "d", 0, "Calendar length in days (overrides the profile file)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible output (0 picks one)")
	cmd.Flags().StringVarP(&format, "format", "f", template.FormatMarkdown, "Output format: markdown, html or yaml")
	cmd.Flags().StringVar(&startDate, "start", "", "First calendar day as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

// LoadProfile reads and normalizes a profile file.
func LoadProfile(path string) (*ProfileFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var pf ProfileFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	company, err := profile.NormalizeCompany(pf.Company)
	if err != nil {
		return nil, fmt.Errorf("invalid company in %s: %w", path, err)
	}
	pf.Company = company
	return &pf, nil
}

// Request turns the file into a generation request. flagDays wins when positive.
func (pf *ProfileFile) Request(flagDays int, flagStart string, now time.Time) content.Request {
	n := pf.Days
	if flagDays > 0 {
		n = flagDays
	}
	if n <= 0 {
		n = content.DefaultDays
	}

	start := pf.StartDate
	if flagStart != "" {
		start = flagStart
	}

	return content.Request{
		Days:          n,
		StartDate:     content.ParseStartDate(start, now),
		Industry:      pf.Industry,
		Tone:          pf.Tone,
		Platforms:     pf.Platforms,
		BrandKeywords: pf.BrandKeywords,
		NicheKeywords: pf.NicheKeywords,
		Goals:         pf.Goals,
		IncludeImages: pf.IncludeImages,
		Company:       pf.Company,
		Details:       pf.Details,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := cli.Bootstrap(env)
	if err != nil {
		return err
	}

	pf, err := LoadProfile(profilePath)
	if err != nil {
		return err
	}
	req := pf.Request(days, startDate, time.Now())

	var textEnhancer content.TextEnhancer
	if c := enhancer.NewClient(cfg.Enhancer); c != nil {
		textEnhancer = c
	}

	s := seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	gen := content.NewGenerator(content.NewRand(s), textEnhancer, cfg.Enhancer.Timeout())

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()
	res := gen.Generate(ctx, req)
	log.Infow("calendar generated", "posts", len(res.Posts), "reels", res.ReelsPlanned, "enhanced", res.Enhanced, "seed", s)

	templates := template.NewExportTemplateLoader(cfg.Export.TemplatesPath, log)
	if err := templates.Load(); err != nil {
		return err
	}
	export := contentUsecases.NewExportCalendarUseCase(templates, markdown.NewRenderer(), log)
	out, err := export.Execute(ctx, contentUsecases.ExportCalendarCommand{
		Format: format,
		Title:  title(pf),
		Posts:  res.Posts,
	})
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(out.Body)
		return err
	}
	if err := os.WriteFile(outPath, out.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d posts to %s\n", len(res.Posts), outPath)
	return nil
}

func title(pf *ProfileFile) string {
	if pf.Company != "" {
		return pf.Company + " content calendar"
	}
	return "Content calendar"
}
