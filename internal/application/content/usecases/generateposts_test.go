package usecases

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/domain/content"
	"togetherly/internal/domain/profile"
	"togetherly/internal/domain/usage"
	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/featureflag"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
	"togetherly/internal/testfixtures"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type generateHarness struct {
	users    *testfixtures.UserRepo
	profiles *testfixtures.ProfileRepo
	usage    *testfixtures.UsageRepo
	flags    testfixtures.Flags
}

func newGenerateHarness() *generateHarness {
	return &generateHarness{
		users:    testfixtures.NewUserRepo(),
		profiles: testfixtures.NewProfileRepo(),
		usage:    testfixtures.NewUsageRepo(),
		flags:    testfixtures.Flags{},
	}
}

func (h *generateHarness) useCase(opts ...GeneratePostsOption) *GeneratePostsUseCase {
	base := []GeneratePostsOption{
		WithClock(testfixtures.FixedClock(fixedNow)),
		WithRandSource(func() *rand.Rand { return content.NewRand(1) }),
	}
	return NewGeneratePostsUseCase(h.profiles, h.users, h.usage, usage.NewGate(usage.DefaultReelsQuota), h.flags, logger.NewNop(), append(base, opts...)...)
}

func (h *generateHarness) addUser(t *testing.T, email string, paid bool) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "hash")
	require.NoError(t, err)
	require.NoError(t, h.users.Create(context.Background(), u))
	if paid {
		require.NoError(t, h.users.SetPaid(context.Background(), u.ID(), true))
	}
	return u
}

func intPtr(n int) *int { return &n }

func requireAppError(t *testing.T, err error, want apperrors.ErrorType) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, want, appErr.Type)
	return appErr
}

type recordingMetrics struct {
	posts      int
	reels      int
	rejections []string
}

func (m *recordingMetrics) RecordPost(_ string, hasReel bool) {
	m.posts++
	if hasReel {
		m.reels++
	}
}
func (m *recordingMetrics) RecordCaptionFallback(string, int) {}
func (m *recordingMetrics) RecordRejection(reason string) {
	m.rejections = append(m.rejections, reason)
}

func TestGeneratePosts_AnonymousShortCalendar(t *testing.T) {
	h := newGenerateHarness()
	metrics := &recordingMetrics{}

	res, err := h.useCase(WithMetrics(metrics)).Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(3),
		StartDate: "2025-03-01",
		Industry:  "Coffee",
		Platforms: []string{" linkedin ", "twitter"},
	})

	require.NoError(t, err)
	assert.Equal(t, 6, res.Count)
	assert.Zero(t, res.ReelsCharged)
	assert.Equal(t, "2025-03-01", res.Posts[0].Date)
	assert.Equal(t, "linkedin", res.Posts[0].Platform)
	assert.Equal(t, "2025-03-03", res.Posts[5].Date)
	assert.Equal(t, 6, metrics.posts)
	assert.Zero(t, h.usage.Calls)
}

func TestGeneratePosts_Gate7DayToPaid(t *testing.T) {
	h := newGenerateHarness()
	h.flags[FlagGate7DayToPaid] = true
	free := h.addUser(t, "free@example.com", false)

	_, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(7),
		Platforms: []string{"linkedin"},
	})
	requireAppError(t, err, apperrors.ErrorTypeUnauthorized)

	_, err = h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    free.ID(),
		Days:      intPtr(7),
		Platforms: []string{"linkedin"},
	})
	appErr := requireAppError(t, err, apperrors.ErrorTypeUpgradeRequired)
	assert.Equal(t, 403, appErr.Code)

	res, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    free.ID(),
		Days:      intPtr(6),
		Platforms: []string{"linkedin"},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Count)
}

func TestGeneratePosts_ReadsFlagsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gate7DayToPaid":true}`), 0o644))
	store, err := featureflag.NewStore(path, logger.NewNop())
	require.NoError(t, err)

	uc := NewGeneratePostsUseCase(nil, testfixtures.NewUserRepo(), testfixtures.NewUsageRepo(),
		usage.NewGate(usage.DefaultReelsQuota), store, logger.NewNop(),
		WithClock(testfixtures.FixedClock(fixedNow)))

	_, err = uc.Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(7),
		Platforms: []string{"linkedin"},
	})
	requireAppError(t, err, apperrors.ErrorTypeUnauthorized)
}

func TestGeneratePosts_LongRangeAllowedWithoutFlag(t *testing.T) {
	h := newGenerateHarness()

	res, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(14),
		Platforms: []string{"facebook"},
	})

	require.NoError(t, err)
	assert.Equal(t, 14, res.Count)
}

func TestGeneratePosts_ReelsRequirePaidPlan(t *testing.T) {
	h := newGenerateHarness()
	free := h.addUser(t, "free@example.com", false)

	_, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(1),
		Platforms: []string{"tiktok"},
	})
	requireAppError(t, err, apperrors.ErrorTypeUnauthorized)

	metrics := &recordingMetrics{}
	_, err = h.useCase(WithMetrics(metrics)).Execute(context.Background(), GeneratePostsCommand{
		UserID:    free.ID(),
		Days:      intPtr(1),
		Platforms: []string{"tiktok"},
	})
	requireAppError(t, err, apperrors.ErrorTypeUpgradeRequired)
	assert.Equal(t, []string{string(apperrors.ErrorTypeUpgradeRequired)}, metrics.rejections)
	assert.Zero(t, h.usage.Calls)
}

func TestGeneratePosts_PaidUserConsumesQuota(t *testing.T) {
	h := newGenerateHarness()
	paid := h.addUser(t, "paid@example.com", true)
	metrics := &recordingMetrics{}

	res, err := h.useCase(WithMetrics(metrics)).Execute(context.Background(), GeneratePostsCommand{
		UserID:    paid.ID(),
		Days:      intPtr(1),
		Platforms: []string{"short_video"},
	})

	require.NoError(t, err)
	require.Len(t, res.Posts, 1)
	require.NotNil(t, res.Posts[0].Reel)
	assert.Equal(t, 1, res.ReelsCharged)
	assert.Equal(t, 1, h.usage.Get(paid.ID(), "2025-03"))
	assert.Equal(t, 1, metrics.reels)
}

func TestGeneratePosts_QuotaExceeded(t *testing.T) {
	h := newGenerateHarness()
	paid := h.addUser(t, "paid@example.com", true)
	h.usage.Set(paid.ID(), "2025-03", 30)

	_, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    paid.ID(),
		Days:      intPtr(1),
		Platforms: []string{"instagram"},
	})

	appErr := requireAppError(t, err, apperrors.ErrorTypeQuotaExceeded)
	assert.Equal(t, 30, appErr.Details["quota"])
	assert.Equal(t, 30, appErr.Details["used"])
	assert.Equal(t, 1, appErr.Details["requested"])
	assert.Zero(t, h.usage.Calls)
	assert.Equal(t, 30, h.usage.Get(paid.ID(), "2025-03"))
}

func TestGeneratePosts_QuotaFlagOverride(t *testing.T) {
	h := newGenerateHarness()
	h.flags[FlagReelsQuotaMonthly] = 5
	paid := h.addUser(t, "paid@example.com", true)

	_, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    paid.ID(),
		Days:      intPtr(3),
		Platforms: []string{"instagram", "tiktok"},
	})

	appErr := requireAppError(t, err, apperrors.ErrorTypeQuotaExceeded)
	assert.Equal(t, 5, appErr.Details["quota"])
	assert.Equal(t, 6, appErr.Details["requested"])
}

func TestGeneratePosts_IncrementFailureIsNotFatal(t *testing.T) {
	h := newGenerateHarness()
	paid := h.addUser(t, "paid@example.com", true)
	h.usage.IncrementErr = errors.New("deadlock")

	res, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    paid.ID(),
		Days:      intPtr(2),
		Platforms: []string{"tiktok"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 1, h.usage.Calls)
}

func TestGeneratePosts_UsageReadFailure(t *testing.T) {
	h := newGenerateHarness()
	paid := h.addUser(t, "paid@example.com", true)
	h.usage.Err = errors.New("connection refused")

	_, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    paid.ID(),
		Days:      intPtr(1),
		Platforms: []string{"tiktok"},
	})

	requireAppError(t, err, apperrors.ErrorTypeInternal)
}

func TestGeneratePosts_CompanyValidation(t *testing.T) {
	h := newGenerateHarness()

	tests := []struct {
		name    string
		company string
		message string
	}{
		{"too long", strings.Repeat("ab", 60), "company name too long"},
		{"invalid characters", "Acme <script>", "company name contains invalid characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
				Days:      intPtr(1),
				Platforms: []string{"linkedin"},
				Company:   tt.company,
			})
			appErr := requireAppError(t, err, apperrors.ErrorTypeValidation)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, "company", appErr.Details["field"])
		})
	}
}

func TestGeneratePosts_ProfileMerge(t *testing.T) {
	h := newGenerateHarness()
	owner := h.addUser(t, "owner@example.com", false)
	ownerID := owner.ID()

	p, err := profile.NewProfile(&ownerID, profile.Fields{
		Industry:  "Bakery",
		Tone:      "friendly",
		Platforms: []string{"facebook", "linkedin"},
	})
	require.NoError(t, err)
	require.NoError(t, h.profiles.Save(context.Background(), p))

	res, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    ownerID,
		ProfileID: p.ID(),
		Days:      intPtr(2),
		Platforms: []string{"twitter"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	for _, post := range res.Posts {
		assert.Equal(t, "twitter", post.Platform, "inline platforms override the profile")
	}

	res, err = h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    ownerID,
		ProfileID: p.ID(),
		Days:      intPtr(1),
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	assert.Equal(t, "facebook", res.Posts[0].Platform)
	assert.Equal(t, "linkedin", res.Posts[1].Platform)
}

func TestGeneratePosts_ForeignProfileIgnored(t *testing.T) {
	h := newGenerateHarness()
	owner := h.addUser(t, "owner@example.com", false)
	other := h.addUser(t, "other@example.com", false)
	ownerID := owner.ID()

	p, err := profile.NewProfile(&ownerID, profile.Fields{
		Industry:  "Bakery",
		Platforms: []string{"facebook", "linkedin", "twitter"},
	})
	require.NoError(t, err)
	require.NoError(t, h.profiles.Save(context.Background(), p))

	res, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		UserID:    other.ID(),
		ProfileID: p.ID(),
		Days:      intPtr(1),
		Platforms: []string{"linkedin"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestGeneratePosts_IncludeImagesDefault(t *testing.T) {
	h := newGenerateHarness()
	owner := h.addUser(t, "owner@example.com", false)
	ownerID := owner.ID()

	p, err := profile.NewProfile(&ownerID, profile.Fields{
		Industry:      "Bakery",
		Platforms:     []string{"twitter"},
		IncludeImages: false,
	})
	require.NoError(t, err)
	require.NoError(t, h.profiles.Save(context.Background(), p))

	off := false
	tests := []struct {
		name      string
		cmd       GeneratePostsCommand
		wantImage bool
	}{
		{
			name:      "no profile defaults to images",
			cmd:       GeneratePostsCommand{Days: intPtr(1), Industry: "Bakery", Platforms: []string{"twitter"}},
			wantImage: true,
		},
		{
			name:      "explicit opt out",
			cmd:       GeneratePostsCommand{Days: intPtr(1), Platforms: []string{"twitter"}, IncludeImages: &off},
			wantImage: false,
		},
		{
			name:      "stored profile preference",
			cmd:       GeneratePostsCommand{UserID: ownerID, ProfileID: p.ID(), Days: intPtr(1)},
			wantImage: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.useCase().Execute(context.Background(), tt.cmd)
			require.NoError(t, err)
			require.Equal(t, 1, res.Count)
			if tt.wantImage {
				assert.NotNil(t, res.Posts[0].ImageURL)
			} else {
				assert.Nil(t, res.Posts[0].ImageURL)
			}
		})
	}
}

func TestGeneratePosts_MaxDaysClamp(t *testing.T) {
	h := newGenerateHarness()

	res, err := h.useCase(WithMaxDays(10)).Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(400),
		Platforms: []string{"linkedin"},
	})

	require.NoError(t, err)
	assert.Equal(t, 10, res.Count)
}

func TestGeneratePosts_ZeroDays(t *testing.T) {
	h := newGenerateHarness()

	res, err := h.useCase().Execute(context.Background(), GeneratePostsCommand{
		Days:      intPtr(0),
		Platforms: []string{"tiktok"},
	})

	require.NoError(t, err)
	assert.Zero(t, res.Count)
	assert.Empty(t, res.Posts)
}

func TestMapGateError(t *testing.T) {
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, MapGateError(usage.ErrUnauthenticated).Type)
	assert.Equal(t, apperrors.ErrorTypeUpgradeRequired, MapGateError(usage.ErrUpgradeRequired).Type)
	quota := MapGateError(&usage.QuotaExceededError{Quota: 30, Used: 29, Requested: 2})
	assert.Equal(t, apperrors.ErrorTypeQuotaExceeded, quota.Type)
	assert.Contains(t, quota.Message, "29 of 30")
	assert.Equal(t, apperrors.ErrorTypeInternal, MapGateError(errors.New("boom")).Type)
}
