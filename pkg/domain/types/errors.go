package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrConfiguration    = goerr.New("configuration error")

	// ErrInvalidSession covers an absent cookie, a bad signature, an
	// expired token and a missing required claim alike. Handlers map it
	// to 401 without distinguishing the cause to the caller.
	ErrInvalidSession = goerr.New("invalid session")

	ErrInvalidTokenResponse    = goerr.New("invalid token response from GitHub")
	ErrInvalidInstallationData = goerr.New("invalid installation data")
	ErrInvalidGitHubData       = goerr.New("invalid data from GitHub API")
	ErrMissingPermissions      = goerr.New("installation lacks required permissions")
	ErrRateLimited             = goerr.New("GitHub API rate limit exceeded")

	// ErrRepositoryNotFound is returned when a session has no repository
	// name. It is never silently defaulted.
	ErrRepositoryNotFound = goerr.New("repository name not found")

	ErrForkNotFound        = goerr.New("fork of source repository not found")
	ErrInvalidFile         = goerr.New("invalid workflow file")
	ErrCommitSHAMissing    = goerr.New("commit SHA missing in GitHub response")
	ErrWorkflowRunNotFound = goerr.New("workflow run not found")
)
