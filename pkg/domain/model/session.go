package model

import (
	"time"

	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// UserSession is reconstructed on every request, either from signed
// cookie claims or from a profile-store lookup. It is never persisted
// as-is.
type UserSession struct {
	InstallationID types.GitHubAppInstallID `json:"installationId"`
	UserLogin      string                   `json:"userLogin"`
	UserID         types.GitHubUserID       `json:"userId"`
	AvatarURL      string                   `json:"avatarUrl,omitempty"`
	RepoName       string                   `json:"repoName,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
	ExpiresAt      time.Time                `json:"expiresAt"`
}

func (x *UserSession) Validate() error {
	if x.InstallationID == 0 {
		return goerr.Wrap(types.ErrInvalidSession, "installation ID is empty")
	}
	if x.UserLogin == "" {
		return goerr.Wrap(types.ErrInvalidSession, "user login is empty")
	}
	return nil
}

// RequireRepo returns an error unless the session carries a repository
// name. Upload and status operations must call this before touching
// GitHub.
func (x *UserSession) RequireRepo() error {
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrRepositoryNotFound, "session has no repository name",
			goerr.V("login", x.UserLogin),
		)
	}
	return nil
}

// InstallationRecord joins a platform-authenticated user to their GitHub
// App installation. Stored by the profile repository in the platform
// variant; the stateless-cookie variant never writes one.
type InstallationRecord struct {
	PlatformUserID types.PlatformUserID
	InstallationID types.GitHubAppInstallID
	UserLogin      string
	UserID         types.GitHubUserID
	AvatarURL      string
	RepoName       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (x *InstallationRecord) Validate() error {
	if x.PlatformUserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "platform user ID is empty")
	}
	if x.InstallationID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "installation ID is empty")
	}
	if x.UserLogin == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user login is empty")
	}
	return nil
}

// Session converts the stored record into a request-scoped session.
func (x *InstallationRecord) Session() *UserSession {
	return &UserSession{
		InstallationID: x.InstallationID,
		UserLogin:      x.UserLogin,
		UserID:         x.UserID,
		AvatarURL:      x.AvatarURL,
		RepoName:       x.RepoName,
		CreatedAt:      x.CreatedAt,
	}
}

// InstallationResult is the outcome of completing an app installation:
// the validated installation plus the resolved (possibly just created)
// fork.
type InstallationResult struct {
	Installation *Installation   `json:"installation"`
	Fork         *RepositoryFork `json:"fork"`
}

// Session derives the session to establish for the installing user.
func (x *InstallationResult) Session(now time.Time, ttl time.Duration) *UserSession {
	return &UserSession{
		InstallationID: x.Installation.ID,
		UserLogin:      x.Installation.Account.Login,
		UserID:         types.GitHubUserID(x.Installation.Account.ID),
		AvatarURL:      x.Installation.Account.AvatarURL,
		RepoName:       x.Fork.RepoName,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
}
