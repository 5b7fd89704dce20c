package ghapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

type Client struct {
	appID   types.GitHubAppID
	pem     types.GitHubAppPrivateKey
	baseURL string
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at an API endpoint other than
// api.github.com. Tests use it to stand in a local server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/") + "/"
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) newClient(tr http.RoundTripper) (*github.Client, error) {
	client := github.NewClient(&http.Client{Transport: tr})
	if x.baseURL != "" {
		endpoint, err := url.Parse(x.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("baseURL", x.baseURL))
		}
		client.BaseURL = endpoint
	}
	return client, nil
}

// buildGithubClient returns a client authenticated as the installation.
// ghinstallation signs the app JWT (RS256, 10 minute validity) and
// exchanges it for an installation token under the hood.
func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport")
	}
	if x.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(x.baseURL, "/")
	}

	return x.newClient(itr)
}

// buildAppClient returns a client authenticated with the app-level JWT
// only, for the Apps API endpoints that reject installation tokens.
func (x *Client) buildAppClient() (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	return x.newClient(itr)
}

// wrapErr translates GitHub client errors, tagging rate-limit failures
// so callers can surface a dedicated error code.
func wrapErr(err error, msg string, values ...goerr.Option) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		values = append(values, goerr.V("cause", err.Error()))
		return goerr.Wrap(types.ErrRateLimited, msg, values...)
	}
	return goerr.Wrap(err, msg, values...)
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

func (x *Client) GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	inst, _, err := client.Apps.GetInstallation(ctx, int64(installID))
	if err != nil {
		return nil, wrapErr(err, "failed to get installation", goerr.V("installID", installID))
	}

	converted := convertInstallation(inst)
	if err := converted.Validate(); err != nil {
		return nil, err
	}

	return converted, nil
}

func convertInstallation(inst *github.Installation) *model.Installation {
	converted := &model.Installation{
		ID: types.GitHubAppInstallID(inst.GetID()),
		Account: model.InstallationAccount{
			Login:     inst.GetAccount().GetLogin(),
			ID:        inst.GetAccount().GetID(),
			AvatarURL: inst.GetAccount().GetAvatarURL(),
		},
		Permissions: map[string]string{},
	}

	if p := inst.GetPermissions(); p != nil {
		for key, value := range map[string]string{
			"contents": p.GetContents(),
			"actions":  p.GetActions(),
			"metadata": p.GetMetadata(),
			"checks":   p.GetChecks(),
			"issues":   p.GetIssues(),
		} {
			if value != "" {
				converted.Permissions[key] = value
			}
		}
	}

	return converted
}

func (x *Client) CreateInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (*interfaces.InstallationToken, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	token, _, err := client.Apps.CreateInstallationToken(ctx, int64(installID), nil)
	if err != nil {
		return nil, wrapErr(err, "failed to create installation token", goerr.V("installID", installID))
	}
	if token.GetToken() == "" {
		return nil, goerr.Wrap(types.ErrInvalidTokenResponse, "token field is empty",
			goerr.V("installID", installID),
		)
	}

	return &interfaces.InstallationToken{
		Token:     token.GetToken(),
		ExpiresAt: token.GetExpiresAt().Time,
	}, nil
}

func (x *Client) ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubRepo, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	var allRepos []*model.GitHubRepo
	opts := &github.ListOptions{PerPage: 100}

	for {
		result, resp, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return nil, wrapErr(err, "failed to list installation repos", goerr.V("installID", installID))
		}
		if result == nil {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "installation repo list is missing",
				goerr.V("installID", installID),
			)
		}

		for _, repo := range result.Repositories {
			allRepos = append(allRepos, convertRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed installation repos",
		slog.Int("count", len(allRepos)),
		slog.Any("installID", installID),
	)

	return allRepos, nil
}

func convertRepository(repo *github.Repository) *model.GitHubRepo {
	converted := &model.GitHubRepo{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
		Fork:          repo.GetFork(),
		CreatedAt:     repo.GetCreatedAt().Time,
	}
	if parent := repo.GetParent(); parent != nil {
		converted.ParentOwner = parent.GetOwner().GetLogin()
		converted.ParentName = parent.GetName()
	}
	return converted
}

// GetRepository returns (nil, nil) when the repository does not exist.
func (x *Client) GetRepository(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	result, resp, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, wrapErr(err, "failed to get repository",
			goerr.V("owner", owner), goerr.V("repo", repo),
		)
	}

	return convertRepository(result), nil
}

func (x *Client) CreateFork(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	// GitHub forks asynchronously and answers 202, which go-github
	// reports as *AcceptedError with the repository body still parsed.
	result, _, err := client.Repositories.CreateFork(ctx, owner, repo, nil)
	if err != nil {
		var accepted *github.AcceptedError
		if !errors.As(err, &accepted) {
			return nil, wrapErr(err, "failed to create fork",
				goerr.V("owner", owner), goerr.V("repo", repo),
			)
		}
	}
	if result == nil {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "fork response has no repository",
			goerr.V("owner", owner), goerr.V("repo", repo),
		)
	}

	logging.From(ctx).Info("Created fork",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.String("forkFullName", result.GetFullName()),
	)

	return convertRepository(result), nil
}

// GetFileSHA returns the blob SHA of path on the default branch, or ""
// when the file does not exist yet.
func (x *Client) GetFileSHA(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, path string) (types.CommitSHA, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return "", err
	}

	content, _, resp, err := client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isNotFound(resp) {
			return "", nil
		}
		return "", wrapErr(err, "failed to get file content",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("path", path),
		)
	}
	if content == nil {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "path is not a file",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("path", path),
		)
	}

	return types.CommitSHA(content.GetSHA()), nil
}

func (x *Client) PutFile(ctx context.Context, installID types.GitHubAppInstallID, input *interfaces.PutFileInput) (types.CommitSHA, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return "", err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Content,
	}

	var result *github.RepositoryContentResponse
	if input.SHA != "" {
		opts.SHA = github.String(string(input.SHA))
		result, _, err = client.Repositories.UpdateFile(ctx, input.Owner, input.Repo, input.Path, opts)
	} else {
		result, _, err = client.Repositories.CreateFile(ctx, input.Owner, input.Repo, input.Path, opts)
	}
	if err != nil {
		return "", wrapErr(err, "failed to commit file",
			goerr.V("owner", input.Owner), goerr.V("repo", input.Repo), goerr.V("path", input.Path),
		)
	}

	sha := result.Commit.GetSHA()
	if sha == "" {
		return "", goerr.Wrap(types.ErrCommitSHAMissing, "commit response has no SHA",
			goerr.V("owner", input.Owner), goerr.V("repo", input.Repo), goerr.V("path", input.Path),
		)
	}

	return types.CommitSHA(sha), nil
}

func (x *Client) DispatchWorkflow(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile, ref string, inputs map[string]any) error {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return err
	}

	event := github.CreateWorkflowDispatchEventRequest{
		Ref:    ref,
		Inputs: inputs,
	}

	if _, err := client.Actions.CreateWorkflowDispatchEventByFileName(ctx, owner, repo, workflowFile, event); err != nil {
		return wrapErr(err, "failed to dispatch workflow",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("workflowFile", workflowFile),
		)
	}

	logging.From(ctx).Info("Dispatched workflow",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.String("workflowFile", workflowFile),
		slog.String("ref", ref),
	)

	return nil
}

// ListWorkflowRuns returns runs of the workflow file, newest first (the
// GitHub API default ordering).
func (x *Client) ListWorkflowRuns(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile string) ([]*model.WorkflowRun, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	result, _, err := client.Actions.ListWorkflowRunsByFileName(ctx, owner, repo, workflowFile, &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{PerPage: 30},
	})
	if err != nil {
		return nil, wrapErr(err, "failed to list workflow runs",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("workflowFile", workflowFile),
		)
	}

	runs := make([]*model.WorkflowRun, 0, len(result.WorkflowRuns))
	for _, run := range result.WorkflowRuns {
		runs = append(runs, convertWorkflowRun(run))
	}

	return runs, nil
}

// GetWorkflowRun returns (nil, nil) when the run has disappeared.
func (x *Client) GetWorkflowRun(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string, runID int64) (*model.WorkflowRun, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	run, resp, err := client.Actions.GetWorkflowRunByID(ctx, owner, repo, runID)
	if err != nil {
		if isNotFound(resp) {
			return nil, nil
		}
		return nil, wrapErr(err, "failed to get workflow run",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("runID", runID),
		)
	}

	return convertWorkflowRun(run), nil
}

func convertWorkflowRun(run *github.WorkflowRun) *model.WorkflowRun {
	return &model.WorkflowRun{
		ID:         run.GetID(),
		Status:     run.GetStatus(),
		Conclusion: run.GetConclusion(),
		HTMLURL:    run.GetHTMLURL(),
		HeadSHA:    run.GetHeadSHA(),
		CreatedAt:  run.GetCreatedAt().Time,
		UpdatedAt:  run.GetUpdatedAt().Time,
	}
}
