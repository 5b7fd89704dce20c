package model

import (
	"time"

	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// InstallationAccount is the GitHub account (user or org) that installed
// the app.
type InstallationAccount struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Installation is an immutable snapshot of a GitHub App installation as
// returned by the GitHub API. It is never persisted beyond the profile
// record derived from it.
type Installation struct {
	ID          types.GitHubAppInstallID `json:"id"`
	Account     InstallationAccount      `json:"account"`
	Permissions map[string]string        `json:"permissions"`
}

func (x *Installation) Validate() error {
	if x.ID == 0 {
		return goerr.Wrap(types.ErrInvalidInstallationData, "installation ID is empty")
	}
	if x.Account.Login == "" {
		return goerr.Wrap(types.ErrInvalidInstallationData, "installation account login is empty")
	}
	return nil
}

// PermissionCheck is the outcome of validating an installation's granted
// permissions against the required set.
type PermissionCheck struct {
	Valid              bool     `json:"valid"`
	MissingPermissions []string `json:"missingPermissions"`
}

// GitHubRepo is repository metadata as seen through the installation.
type GitHubRepo struct {
	Owner         string
	Name          string
	DefaultBranch string
	HTMLURL       string
	Fork          bool
	ParentOwner   string
	ParentName    string
	CreatedAt     time.Time
}

// RepositoryFork is the per-user fork of the source template repository.
type RepositoryFork struct {
	Owner         string           `json:"owner"`
	RepoName      string           `json:"repoName"`
	ForkURL       string           `json:"forkUrl"`
	ForkStatus    types.ForkStatus `json:"forkStatus"`
	DefaultBranch string           `json:"defaultBranch"`
	CreatedAt     time.Time        `json:"createdAt,omitempty"`
}

// UploadResult is the outcome of committing one workflow file.
type UploadResult struct {
	FileName  string          `json:"fileName"`
	CommitSHA types.CommitSHA `json:"commitSha"`
}

// WorkflowRun is a GitHub Actions run reduced to the fields the status
// service needs.
type WorkflowRun struct {
	ID         int64
	Status     string
	Conclusion string
	HTMLURL    string
	HeadSHA    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DispatchResult reports the run discovered right after a workflow
// dispatch. Both fields may be empty: the run listing lags behind the
// dispatch and "not yet visible" is not an error.
type DispatchResult struct {
	WorkflowRunID  int64  `json:"workflowRunId,omitempty"`
	WorkflowRunURL string `json:"workflowRunUrl,omitempty"`
}
