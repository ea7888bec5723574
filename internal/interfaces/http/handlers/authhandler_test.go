package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"togetherly/internal/application/user/usecases"
	"togetherly/internal/domain/user"
	"togetherly/internal/interfaces/http/handlers/testutil"
	"togetherly/internal/shared/config"
	"togetherly/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *usecases.AuthResult
	err    error
	cmd    usecases.RegisterWithPasswordCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*usecases.AuthResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *usecases.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.AuthResult, error) {
	return m.result, m.err
}

type mockRequestResetUC struct {
	err   error
	email string
}

func (m *mockRequestResetUC) Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error {
	m.email = cmd.Email
	return m.err
}

type mockResetPasswordUC struct {
	err error
}

func (m *mockResetPasswordUC) Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error {
	return m.err
}

type mockGetUserUC struct {
	user *user.User
	err  error
}

func (m *mockGetUserUC) Execute(ctx context.Context, userID uint) (*user.User, error) {
	return m.user, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

var testCookieConfig = config.CookieConfig{Name: "togetherly_session", Path: "/"}

func createTestUser(paid bool) *user.User {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return user.ReconstructUser(user.UserState{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "hash",
		IsPaid:       paid,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func testAuthResult() *usecases.AuthResult {
	return &usecases.AuthResult{
		User:      createTestUser(false),
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
}

type authMocks struct {
	register *mockRegisterUC
	login    *mockLoginUC
	request  *mockRequestResetUC
	reset    *mockResetPasswordUC
	getUser  *mockGetUserUC
}

func newTestAuthHandler() (*AuthHandler, *authMocks) {
	m := &authMocks{
		register: &mockRegisterUC{},
		login:    &mockLoginUC{},
		request:  &mockRequestResetUC{},
		reset:    &mockResetPasswordUC{},
		getUser:  &mockGetUserUC{},
	}
	h := NewAuthHandler(m.register, m.login, m.request, m.reset, m.getUser, testCookieConfig, testutil.NewMockLogger())
	return h, m
}

func sessionCookie(t *testing.T, header http.Header) string {
	t.Helper()
	for _, line := range header.Values("Set-Cookie") {
		if strings.HasPrefix(line, "togetherly_session=") {
			return line
		}
	}
	return ""
}

// =====================================================================
// Signup / Login
// =====================================================================

func TestAuthHandler_Signup_Success(t *testing.T) {
	handler, m := newTestAuthHandler()
	m.register.result = testAuthResult()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/signup", SignupRequest{
		Email:    "Test@Example.com",
		Password: "password123",
	})
	handler.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Test@Example.com", m.register.cmd.Email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data SessionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "test@example.com", data.User.Email)
	assert.False(t, data.User.IsPaid)

	cookie := sessionCookie(t, w.Header())
	assert.Contains(t, cookie, "signed.jwt.token")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/signup", map[string]string{"email": "a@b.co"})
	handler.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Contains(t, resp.Error.Details, "fields")
}

func TestAuthHandler_Signup_Conflict(t *testing.T) {
	handler, m := newTestAuthHandler()
	m.register.err = errors.NewConflictError("an account with this email already exists")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/signup", SignupRequest{Email: "a@b.co", Password: "password123"})
	handler.Signup(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, sessionCookie(t, w.Header()))
}

func TestAuthHandler_Signup_MalformedJSON(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/signup", []byte("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.Signup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "bad_request", resp.Error.Type)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		result     *usecases.AuthResult
		err        error
		wantStatus int
		wantCookie bool
	}{
		{"success", testAuthResult(), nil, http.StatusOK, true},
		{"bad credentials", nil, errors.NewUnauthorizedError("invalid email or password"), http.StatusUnauthorized, false},
		{"internal", nil, errors.NewInternalError("failed to sign in"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newTestAuthHandler()
			m.login.result, m.login.err = tt.result, tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/api/login", LoginRequest{Email: "test@example.com", Password: "password123"})
			handler.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCookie, sessionCookie(t, w.Header()) != "")
		})
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	handler, _ := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/logout", nil)
	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, sessionCookie(t, w.Header()), "Max-Age=0")
}

// =====================================================================
// Current user
// =====================================================================

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		handler, _ := newTestAuthHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/current_user", nil)
		handler.GetCurrentUser(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signed in", func(t *testing.T) {
		handler, m := newTestAuthHandler()
		m.getUser.user = createTestUser(true)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/current_user", nil)
		testutil.SetAuthContext(c, 1, "test@example.com")
		handler.GetCurrentUser(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var data UserResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, uint(1), data.ID)
		assert.True(t, data.IsPaid)
	})

	t.Run("deleted account", func(t *testing.T) {
		handler, m := newTestAuthHandler()
		m.getUser.err = errors.NewNotFoundError("user not found")

		c, w := testutil.NewTestContext(http.MethodGet, "/api/current_user", nil)
		testutil.SetAuthContext(c, 9, "gone@example.com")
		handler.GetCurrentUser(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =====================================================================
// Password reset
// =====================================================================

func TestAuthHandler_RequestPasswordReset(t *testing.T) {
	handler, m := newTestAuthHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/request-password-reset", PasswordResetRequest{Email: "nobody@example.com"})
	handler.RequestPasswordReset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nobody@example.com", m.request.email)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Message, "if the email exists")
}

func TestAuthHandler_RequestPasswordReset_Throttled(t *testing.T) {
	handler, m := newTestAuthHandler()
	m.request.err = errors.NewBadRequestError("please wait before requesting another password reset")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/request-password-reset", PasswordResetRequest{Email: "a@example.com"})
	handler.RequestPasswordReset(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_ConfirmPasswordReset(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"expired link", errors.NewBadRequestError("reset link is invalid or has expired"), http.StatusBadRequest},
		{"weak password", errors.NewValidationError("password must be at least 8 characters"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newTestAuthHandler()
			m.reset.err = tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/api/confirm-password-reset", ConfirmPasswordResetRequest{
				Token:    "abc",
				Password: "new-password",
			})
			handler.ConfirmPasswordReset(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
