package server

import (
	"net/http"
	"time"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SessionProvider abstracts how a request is mapped to a UserSession.
// Two variants exist: the stateless signed cookie and the platform-auth
// join against the profile store. Deployment configuration picks one.
type SessionProvider interface {
	// Resolve reconstructs the caller's session. An absent or invalid
	// credential yields types.ErrInvalidSession.
	Resolve(r *http.Request) (*model.UserSession, error)

	// Establish binds the completed installation to the caller.
	Establish(w http.ResponseWriter, r *http.Request, result *model.InstallationResult) error

	// Clear drops the caller's session binding.
	Clear(w http.ResponseWriter, r *http.Request) error
}

const (
	sessionCookieName = "faasr_session_v2"
	sessionTTL        = 7 * 24 * time.Hour
)

// sessionClaims is the JWS payload of the stateless cookie. The jti is
// a random nonce for replay tracking; there is deliberately no server
// side revocation store, so a stolen cookie stays valid until exp.
type sessionClaims struct {
	InstallationID  int64  `json:"installation_id"`
	GitHubUserLogin string `json:"gh_user_login"`
	GitHubUserID    int64  `json:"gh_user_id"`
	GitHubRepoName  string `json:"gh_repo_name"`
	GitHubAvatarURL string `json:"gh_avatar_url"`
	jwt.RegisteredClaims
}

// CookieSessionProvider implements the stateless-cookie variant: the
// whole session lives in an HS256-signed cookie and nothing is stored
// server side.
type CookieSessionProvider struct {
	secret types.SessionSecret
	secure bool
}

var _ SessionProvider = (*CookieSessionProvider)(nil)

func NewCookieSessionProvider(secret types.SessionSecret, secure bool) (*CookieSessionProvider, error) {
	if secret == "" {
		return nil, goerr.Wrap(types.ErrConfiguration, "session secret is empty")
	}
	return &CookieSessionProvider{
		secret: secret,
		secure: secure,
	}, nil
}

func (x *CookieSessionProvider) Resolve(r *http.Request) (*model.UserSession, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidSession, "session cookie is absent")
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims,
		func(t *jwt.Token) (any, error) {
			return []byte(x.secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidSession, "session cookie verification failed",
			goerr.V("cause", err.Error()),
		)
	}
	if !token.Valid {
		return nil, goerr.Wrap(types.ErrInvalidSession, "session token is invalid")
	}

	session := &model.UserSession{
		InstallationID: types.GitHubAppInstallID(claims.InstallationID),
		UserLogin:      claims.GitHubUserLogin,
		UserID:         types.GitHubUserID(claims.GitHubUserID),
		AvatarURL:      claims.GitHubAvatarURL,
		RepoName:       claims.GitHubRepoName,
	}
	if claims.IssuedAt != nil {
		session.CreatedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

func (x *CookieSessionProvider) Establish(w http.ResponseWriter, r *http.Request, result *model.InstallationResult) error {
	now := logging.CtxTime(r.Context())
	session := result.Session(now, sessionTTL)

	claims := &sessionClaims{
		InstallationID:  int64(session.InstallationID),
		GitHubUserLogin: session.UserLogin,
		GitHubUserID:    int64(session.UserID),
		GitHubRepoName:  session.RepoName,
		GitHubAvatarURL: session.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(x.secret))
	if err != nil {
		return goerr.Wrap(err, "failed to sign session cookie")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (x *CookieSessionProvider) Clear(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   x.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
