package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"togetherly/internal/domain/content"
	"togetherly/internal/domain/profile"
	"togetherly/internal/domain/usage"
	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/featureflag"
	"togetherly/internal/shared/biztime"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

// Flag keys read at request time.
const (
	FlagGate7DayToPaid    = featureflag.KeyGate7DayToPaid
	FlagReelsQuotaMonthly = featureflag.KeyReelsQuotaMonthly
)

// DefaultMaxDays caps the calendar length when no limit is configured.
const DefaultMaxDays = 90

// FlagSource is the read side of the feature flag store.
type FlagSource interface {
	Bool(key string, def bool) bool
	Int(key string, def int) int
}

// MetricsRecorder is implemented by *metrics.Collector.
type MetricsRecorder interface {
	RecordPost(platform string, hasReel bool)
	RecordCaptionFallback(reason string, n int)
	RecordRejection(reason string)
}

// GeneratePostsCommand is a generation request. Non-empty inline fields
// override the stored profile named by ProfileID.
type GeneratePostsCommand struct {
	UserID        uint
	ProfileID     string
	Days          *int
	StartDate     string
	Industry      string
	Tone          string
	Platforms     []string
	BrandKeywords []string
	NicheKeywords []string
	Goals         []string
	Details       map[string]any
	IncludeImages *bool
	Company       string
}

type GeneratePostsResult struct {
	Count        int            `json:"count"`
	Posts        []content.Post `json:"posts"`
	ReelsCharged int            `json:"reels_charged"`
	Enhanced     int            `json:"enhanced"`
}

type GeneratePostsUseCase struct {
	profileRepo    profile.Repository
	userRepo       user.Repository
	usageRepo      usage.Repository
	gate           *usage.Gate
	flags          FlagSource
	enhancer       content.TextEnhancer
	enhanceTimeout time.Duration
	maxDays        int
	metrics        MetricsRecorder
	newRand        func() *rand.Rand
	now            func() time.Time
	logger         logger.Interface
}

type GeneratePostsOption func(*GeneratePostsUseCase)

// WithRandSource makes generation reproducible.
func WithRandSource(fn func() *rand.Rand) GeneratePostsOption {
	return func(uc *GeneratePostsUseCase) { uc.newRand = fn }
}

func WithClock(now func() time.Time) GeneratePostsOption {
	return func(uc *GeneratePostsUseCase) { uc.now = now }
}

func WithEnhancer(e content.TextEnhancer, timeout time.Duration) GeneratePostsOption {
	return func(uc *GeneratePostsUseCase) {
		uc.enhancer = e
		uc.enhanceTimeout = timeout
	}
}

func WithMetrics(m MetricsRecorder) GeneratePostsOption {
	return func(uc *GeneratePostsUseCase) { uc.metrics = m }
}

// WithMaxDays clamps requested calendar lengths.
func WithMaxDays(n int) GeneratePostsOption {
	return func(uc *GeneratePostsUseCase) {
		if n > 0 {
			uc.maxDays = n
		}
	}
}

func NewGeneratePostsUseCase(
	profileRepo profile.Repository,
	userRepo user.Repository,
	usageRepo usage.Repository,
	gate *usage.Gate,
	flags FlagSource,
	logger logger.Interface,
	opts ...GeneratePostsOption,
) *GeneratePostsUseCase {
	uc := &GeneratePostsUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		usageRepo:   usageRepo,
		gate:        gate,
		flags:       flags,
		maxDays:     DefaultMaxDays,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		now:    biztime.NowUTC,
		logger: logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *GeneratePostsUseCase) Execute(ctx context.Context, cmd GeneratePostsCommand) (*GeneratePostsResult, error) {
	req, err := uc.buildRequest(ctx, cmd)
	if err != nil {
		return nil, err
	}

	viewer, err := uc.viewer(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	flags := usage.Flags{}
	if uc.flags != nil {
		flags.Gate7DayToPaid = uc.flags.Bool(FlagGate7DayToPaid, false)
		flags.ReelsQuota = uc.flags.Int(FlagReelsQuotaMonthly, 0)
	}

	decision, err := uc.gate.Authorize(usage.Request{Days: req.Days, Platforms: req.Platforms}, viewer, flags)
	if err != nil {
		return nil, uc.reject(err, cmd)
	}

	period := biztime.Period(uc.now())
	if decision.NeedsQuota() {
		used, err := uc.usageRepo.GetReelsGenerated(ctx, viewer.UserID, period)
		if err != nil {
			uc.logger.Errorw("failed to read reel usage", "user_id", viewer.UserID, "period", period, "error", err)
			return nil, apperrors.NewInternalError("failed to check usage").WithCause(err)
		}
		if err := decision.CheckQuota(used); err != nil {
			return nil, uc.reject(err, cmd)
		}
	}

	gen := content.NewGenerator(uc.newRand(), uc.enhancer, uc.enhanceTimeout)
	res := gen.Generate(ctx, req)

	if decision.NeedsQuota() {
		if err := uc.usageRepo.IncrementReels(ctx, viewer.UserID, period, decision.ReelsRequested); err != nil {
			uc.logger.Errorw("failed to record reel usage",
				"user_id", viewer.UserID,
				"period", period,
				"reels", decision.ReelsRequested,
				"error", err,
			)
		}
	}

	uc.record(res)
	uc.logger.Infow("calendar generated",
		"user_id", viewer.UserID,
		"days", req.Days,
		"platforms", len(req.Platforms),
		"posts", len(res.Posts),
		"reels_charged", decision.ReelsRequested,
		"enhanced", res.Enhanced,
	)

	return &GeneratePostsResult{
		Count:        len(res.Posts),
		Posts:        res.Posts,
		ReelsCharged: decision.ReelsRequested,
		Enhanced:     res.Enhanced,
	}, nil
}

func (uc *GeneratePostsUseCase) buildRequest(ctx context.Context, cmd GeneratePostsCommand) (content.Request, error) {
	var base profile.Fields
	loaded := false
	if cmd.ProfileID != "" && uc.profileRepo != nil {
		p, err := uc.profileRepo.Get(ctx, cmd.ProfileID)
		if err != nil {
			uc.logger.Errorw("failed to load profile", "profile_id", cmd.ProfileID, "error", err)
			return content.Request{}, apperrors.NewInternalError("failed to load profile").WithCause(err)
		}
		if p != nil && p.OwnedBy(cmd.UserID) {
			base = p.Fields()
			loaded = true
		}
	}

	company := base.Company
	if strings.TrimSpace(cmd.Company) != "" {
		normalized, err := profile.NormalizeCompany(cmd.Company)
		if err != nil {
			return content.Request{}, companyError(err)
		}
		company = normalized
	}

	days := content.DefaultDays
	if cmd.Days != nil {
		days = *cmd.Days
	}
	if days > uc.maxDays {
		days = uc.maxDays
	}

	includeImages := true
	if loaded {
		includeImages = base.IncludeImages
	}
	if cmd.IncludeImages != nil {
		includeImages = *cmd.IncludeImages
	}

	return content.Request{
		Days:          days,
		StartDate:     content.ParseStartDate(cmd.StartDate, uc.now()),
		Industry:      firstNonBlank(cmd.Industry, base.Industry),
		Tone:          firstNonBlank(cmd.Tone, base.Tone),
		Platforms:     content.NormalizePlatforms(firstNonEmpty(cmd.Platforms, base.Platforms)),
		BrandKeywords: firstNonEmpty(cmd.BrandKeywords, base.BrandKeywords),
		NicheKeywords: firstNonEmpty(cmd.NicheKeywords, base.NicheKeywords),
		Goals:         firstNonEmpty(cmd.Goals, base.Goals),
		IncludeImages: includeImages,
		Company:       company,
		Details:       mergeDetails(base.Details, cmd.Details),
	}, nil
}

func (uc *GeneratePostsUseCase) viewer(ctx context.Context, userID uint) (usage.Viewer, error) {
	if userID == 0 {
		return usage.Viewer{}, nil
	}
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", userID, "error", err)
		return usage.Viewer{}, apperrors.NewInternalError("failed to load user").WithCause(err)
	}
	if u == nil {
		return usage.Viewer{}, nil
	}
	return usage.Viewer{UserID: u.ID(), Authenticated: true, Paid: u.IsPaid()}, nil
}

func (uc *GeneratePostsUseCase) reject(err error, cmd GeneratePostsCommand) error {
	appErr := MapGateError(err)
	if uc.metrics != nil {
		uc.metrics.RecordRejection(string(appErr.Type))
	}
	uc.logger.Infow("generation rejected", "user_id", cmd.UserID, "reason", appErr.Type)
	return appErr
}

func (uc *GeneratePostsUseCase) record(res content.Result) {
	if uc.metrics == nil {
		return
	}
	for _, p := range res.Posts {
		uc.metrics.RecordPost(p.Platform, p.Reel != nil)
	}
	for reason, n := range res.FallbackCount {
		uc.metrics.RecordCaptionFallback(reason, n)
	}
}

// MapGateError converts usage gate rejections into client errors.
func MapGateError(err error) *apperrors.AppError {
	var quotaErr *usage.QuotaExceededError
	switch {
	case errors.Is(err, usage.ErrUnauthenticated):
		return apperrors.NewUnauthorizedError("sign in to generate reels or calendars of 7 days or more")
	case errors.Is(err, usage.ErrUpgradeRequired):
		return apperrors.NewUpgradeRequiredError("this feature requires a paid plan")
	case errors.As(err, &quotaErr):
		return apperrors.NewQuotaExceededError(
			fmt.Sprintf("monthly reel quota reached (%d of %d used)", quotaErr.Used, quotaErr.Quota),
			quotaErr.Quota, quotaErr.Used,
		).WithDetail("requested", quotaErr.Requested)
	}
	return apperrors.NewInternalError("generation failed").WithCause(err)
}

func companyError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, profile.ErrCompanyTooLong):
		return apperrors.NewValidationError("company name too long").WithDetail("field", "company")
	case errors.Is(err, profile.ErrCompanyInvalid):
		return apperrors.NewValidationError("company name contains invalid characters").WithDetail("field", "company")
	}
	return apperrors.NewValidationError(err.Error())
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func firstNonEmpty(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

func mergeDetails(base, override map[string]any) map[string]any {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
