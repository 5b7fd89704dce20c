package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/repository"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/goerr/v2"
)

// PlatformSessionProvider implements the platform-auth variant: the
// caller presents a platform-issued access token (Supabase signs them
// HS256 with the project JWT secret), and the token subject is joined
// against the stored installation record.
type PlatformSessionProvider struct {
	jwtSecret types.SupabaseJWTSecret
	profiles  interfaces.ProfileRepository
}

var _ SessionProvider = (*PlatformSessionProvider)(nil)

func NewPlatformSessionProvider(jwtSecret types.SupabaseJWTSecret, profiles interfaces.ProfileRepository) (*PlatformSessionProvider, error) {
	if jwtSecret == "" {
		return nil, goerr.Wrap(types.ErrConfiguration, "platform JWT secret is empty")
	}
	if profiles == nil {
		return nil, goerr.Wrap(types.ErrConfiguration, "profile repository is not configured")
	}
	return &PlatformSessionProvider{
		jwtSecret: jwtSecret,
		profiles:  profiles,
	}, nil
}

// userID verifies the bearer token and extracts the platform user ID
// from its subject claim.
func (x *PlatformSessionProvider) userID(r *http.Request) (types.PlatformUserID, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", goerr.Wrap(types.ErrInvalidSession, "authorization header is absent")
	}
	rawToken, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", goerr.Wrap(types.ErrInvalidSession, "authorization header is not a bearer token")
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(rawToken, &claims,
		func(t *jwt.Token) (any, error) {
			return []byte(x.jwtSecret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidSession, "access token verification failed",
			goerr.V("cause", err.Error()),
		)
	}
	if !token.Valid || claims.Subject == "" {
		return "", goerr.Wrap(types.ErrInvalidSession, "access token has no subject")
	}

	return types.PlatformUserID(claims.Subject), nil
}

func (x *PlatformSessionProvider) Resolve(r *http.Request) (*model.UserSession, error) {
	userID, err := x.userID(r)
	if err != nil {
		return nil, err
	}

	record, err := x.profiles.GetInstallationByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrInvalidSession, "no installation linked to user",
				goerr.V("userID", userID),
			)
		}
		return nil, err
	}

	return record.Session(), nil
}

func (x *PlatformSessionProvider) Establish(w http.ResponseWriter, r *http.Request, result *model.InstallationResult) error {
	userID, err := x.userID(r)
	if err != nil {
		return err
	}

	now := logging.CtxTime(r.Context())
	record := &model.InstallationRecord{
		PlatformUserID: userID,
		InstallationID: result.Installation.ID,
		UserLogin:      result.Installation.Account.Login,
		UserID:         types.GitHubUserID(result.Installation.Account.ID),
		AvatarURL:      result.Installation.Account.AvatarURL,
		RepoName:       result.Fork.RepoName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return x.profiles.PutInstallation(r.Context(), record)
}

// Clear unlinks the installation record. Signing out of the platform
// itself is the frontend's concern.
func (x *PlatformSessionProvider) Clear(w http.ResponseWriter, r *http.Request) error {
	userID, err := x.userID(r)
	if err != nil {
		return err
	}
	return x.profiles.DeleteInstallation(r.Context(), userID)
}
