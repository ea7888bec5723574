package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/application/profile/dto"
	"togetherly/internal/application/profile/usecases"
	"togetherly/internal/domain/profile"
	"togetherly/internal/interfaces/http/handlers/testutil"
	"togetherly/internal/shared/errors"
	"togetherly/internal/shared/utils"
)

type mockSaveProfileUC struct {
	result *profile.Profile
	err    error
	cmd    usecases.SaveProfileCommand
}

func (m *mockSaveProfileUC) Execute(ctx context.Context, cmd usecases.SaveProfileCommand) (*profile.Profile, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetProfileUC struct {
	result    *profile.Profile
	err       error
	profileID string
	userID    uint
}

func (m *mockGetProfileUC) Execute(ctx context.Context, profileID string, userID uint) (*profile.Profile, error) {
	m.profileID, m.userID = profileID, userID
	return m.result, m.err
}

func createTestProfile() *profile.Profile {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return profile.ReconstructProfile(profile.ProfileState{
		ID: "prof-1",
		Fields: profile.Fields{
			Industry:      "Bakery",
			Tone:          "friendly",
			Platforms:     []string{"instagram"},
			Company:       "Sunrise Bakes",
			IncludeImages: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func TestProfileHandler_SaveProfile_SetsCookie(t *testing.T) {
	save := &mockSaveProfileUC{result: createTestProfile()}
	handler := NewProfileHandler(save, &mockGetProfileUC{}, testCookieConfig, testutil.NewMockLogger())

	includeImages := false
	c, w := testutil.NewTestContext(http.MethodPost, "/api/profile", SaveProfileRequest{
		Industry:      "Bakery",
		Platforms:     []string{"instagram"},
		Company:       "sunrise bakes",
		IncludeImages: &includeImages,
	})
	testutil.SetAuthContext(c, 4, "owner@example.com")
	handler.SaveProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), save.cmd.UserID)
	require.NotNil(t, save.cmd.IncludeImages)
	assert.False(t, *save.cmd.IncludeImages)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data SaveProfileResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.OK)
	assert.Equal(t, "prof-1", data.ProfileID)
	assert.Equal(t, "Sunrise Bakes", data.Profile.Company)

	assert.Contains(t, w.Header().Get("Set-Cookie"), utils.ProfileCookie+"=prof-1")
}

func TestProfileHandler_SaveProfile_ReusesCookieID(t *testing.T) {
	save := &mockSaveProfileUC{result: createTestProfile()}
	handler := NewProfileHandler(save, &mockGetProfileUC{}, testCookieConfig, testutil.NewMockLogger())

	c, _ := testutil.NewTestContext(http.MethodPost, "/api/profile", SaveProfileRequest{Industry: "Bakery"})
	c.Request.AddCookie(&http.Cookie{Name: utils.ProfileCookie, Value: "prof-1"})
	handler.SaveProfile(c)

	assert.Equal(t, "prof-1", save.cmd.ProfileID)
	assert.Equal(t, uint(0), save.cmd.UserID)
}

func TestProfileHandler_SaveProfile_InvalidCompany(t *testing.T) {
	save := &mockSaveProfileUC{
		err: errors.NewValidationError("company name too long").WithDetail("field", "company"),
	}
	handler := NewProfileHandler(save, &mockGetProfileUC{}, testCookieConfig, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/profile", SaveProfileRequest{Company: "x"})
	handler.SaveProfile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "company name too long", resp.Error.Message)
	assert.Equal(t, "company", resp.Error.Details["field"])
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("found via cookie", func(t *testing.T) {
		get := &mockGetProfileUC{result: createTestProfile()}
		handler := NewProfileHandler(&mockSaveProfileUC{}, get, testCookieConfig, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/profile", nil)
		c.Request.AddCookie(&http.Cookie{Name: utils.ProfileCookie, Value: "prof-1"})
		handler.GetProfile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "prof-1", get.profileID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var data dto.ProfileResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "Bakery", data.Industry)
		assert.Equal(t, []string{}, data.Goals)
	})

	t.Run("no profile yet", func(t *testing.T) {
		handler := NewProfileHandler(&mockSaveProfileUC{}, &mockGetProfileUC{}, testCookieConfig, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/profile", nil)
		handler.GetProfile(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "null", string(resp.Data))
	})
}
