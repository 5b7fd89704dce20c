package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/faasr/faasr-gateway/pkg/controller/server"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func testInstallationResult() *model.InstallationResult {
	return &model.InstallationResult{
		Installation: &model.Installation{
			ID: 12345,
			Account: model.InstallationAccount{
				Login:     "octocat",
				ID:        67890,
				AvatarURL: "https://avatars.example.com/u/67890",
			},
		},
		Fork: &model.RepositoryFork{
			Owner:      "octocat",
			RepoName:   "FaaSr-workflow",
			ForkStatus: types.ForkStatusExists,
		},
	}
}

func establishCookie(t *testing.T, provider *server.CookieSessionProvider, issuedAt time.Time) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/callback", nil)
	req = req.WithContext(logging.CtxWithTime(req.Context(), func() time.Time { return issuedAt }))

	gt.NoError(t, provider.Establish(rec, req, testInstallationResult()))

	cookies := rec.Result().Cookies()
	gt.V(t, len(cookies)).Equal(1)
	return cookies[0]
}

func TestCookieSessionProvider(t *testing.T) {
	provider := gt.R1(server.NewCookieSessionProvider("test-secret", false)).NoError(t)

	t.Run("roundtrip restores the session", func(t *testing.T) {
		cookie := establishCookie(t, provider, time.Now())

		gt.V(t, cookie.Name).Equal("faasr_session_v2")
		gt.True(t, cookie.HttpOnly)

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.AddCookie(cookie)

		session := gt.R1(provider.Resolve(req)).NoError(t)
		gt.V(t, session.InstallationID).Equal(types.GitHubAppInstallID(12345))
		gt.V(t, session.UserLogin).Equal("octocat")
		gt.V(t, session.UserID).Equal(types.GitHubUserID(67890))
		gt.V(t, session.RepoName).Equal("FaaSr-workflow")
	})

	t.Run("absent cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("tampered cookie is rejected", func(t *testing.T) {
		cookie := establishCookie(t, provider, time.Now())

		tampered := []byte(cookie.Value)
		tampered[len(tampered)-1] ^= 0x01
		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: string(tampered)})

		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("cookie signed with another secret is rejected", func(t *testing.T) {
		other := gt.R1(server.NewCookieSessionProvider("other-secret", false)).NoError(t)
		cookie := establishCookie(t, other, time.Now())

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.AddCookie(cookie)

		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("expired cookie is rejected", func(t *testing.T) {
		cookie := establishCookie(t, provider, time.Now().Add(-8*24*time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.AddCookie(cookie)

		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)

		gt.NoError(t, provider.Clear(rec, req))

		cookies := rec.Result().Cookies()
		gt.V(t, len(cookies)).Equal(1)
		gt.V(t, cookies[0].MaxAge).Equal(-1)
	})

	t.Run("empty secret is a configuration error", func(t *testing.T) {
		_, err := server.NewCookieSessionProvider("", false)
		gt.True(t, errors.Is(err, types.ErrConfiguration))
	})
}
