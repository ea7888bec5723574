package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"togetherly/internal/shared/config"
)

const (
	DefaultSessionCookie = "togetherly_session"
	CSRFTokenCookie      = "csrf_token"
	CSRFTokenHeader      = "X-CSRF-Token"
	ProfileCookie        = "profile_id"
)

func sessionCookieName(cfg config.CookieConfig) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return DefaultSessionCookie
}

// SetSessionCookie stores the session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(sessionCookieName(cfg), token, maxAge, cookiePath(cfg), cfg.Domain, cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(sessionCookieName(cfg), "", -1, cookiePath(cfg), cfg.Domain, cfg.Secure, true)
}

// GetSessionToken returns the session cookie value, or "" when absent.
func GetSessionToken(c *gin.Context, cfg config.CookieConfig) string {
	token, err := c.Cookie(sessionCookieName(cfg))
	if err != nil {
		return ""
	}
	return token
}

// SetCSRFCookie is readable by scripts: the client echoes it back in the
// X-CSRF-Token header.
func SetCSRFCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(CSRFTokenCookie, token, maxAge, cookiePath(cfg), cfg.Domain, cfg.Secure, false)
}

// SetProfileCookie remembers the caller's profile id between requests.
func SetProfileCookie(c *gin.Context, cfg config.CookieConfig, profileID string) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(ProfileCookie, profileID, 365*24*3600, cookiePath(cfg), cfg.Domain, cfg.Secure, true)
}

func GetProfileCookie(c *gin.Context) string {
	v, err := c.Cookie(ProfileCookie)
	if err != nil {
		return ""
	}
	return v
}

func cookiePath(cfg config.CookieConfig) string {
	if cfg.Path == "" {
		return "/"
	}
	return cfg.Path
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
