package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// PutFileInput commits one file to a repository. When SHA is set the
// commit updates the existing blob; otherwise it creates a new file.
type PutFileInput struct {
	Owner   string
	Repo    string
	Path    string
	Content []byte
	Message string
	SHA     types.CommitSHA
}

// InstallationToken is a short-lived token scoped to one installation.
type InstallationToken struct {
	Token     string
	ExpiresAt time.Time
}

// GitHubApp wraps every GitHub REST call this system makes. All methods
// authenticate with the installation transport except GetInstallation
// and CreateInstallationToken, which use the app-level JWT transport.
type GitHubApp interface {
	GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error)
	CreateInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (*InstallationToken, error)
	ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubRepo, error)

	// GetRepository returns (nil, nil) when the repository does not
	// exist (HTTP 404). Other failures return an error.
	GetRepository(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error)
	CreateFork(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error)

	// GetFileSHA returns the blob SHA of path, or "" when the file does
	// not exist.
	GetFileSHA(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, path string) (types.CommitSHA, error)
	PutFile(ctx context.Context, installID types.GitHubAppInstallID, input *PutFileInput) (types.CommitSHA, error)

	DispatchWorkflow(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile, ref string, inputs map[string]any) error
	ListWorkflowRuns(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile string) ([]*model.WorkflowRun, error)

	// GetWorkflowRun returns (nil, nil) when the run has disappeared
	// (HTTP 404), letting callers treat that distinctly from transport
	// errors.
	GetWorkflowRun(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string, runID int64) (*model.WorkflowRun, error)
}
