package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/mock"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/infra"
	"github.com/faasr/faasr-gateway/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func testSession() *model.UserSession {
	return &model.UserSession{
		InstallationID: 12345,
		UserLogin:      "octocat",
		UserID:         67890,
		RepoName:       "FaaSr-workflow",
	}
}

func TestValidateWorkflowFile(t *testing.T) {
	t.Run("valid file passes every check", func(t *testing.T) {
		v := usecase.ValidateWorkflowFile("payment-flow.json", []byte(`{"functions":{}}`))
		gt.True(t, v.Valid)
		gt.V(t, len(v.Errors)).Equal(0)
		gt.V(t, v.SanitizedFileName).Equal("payment-flow.json")
	})

	t.Run("empty file name", func(t *testing.T) {
		v := usecase.ValidateWorkflowFile("", []byte(`{}`))
		gt.False(t, v.Valid)
		gt.A(t, v.Errors).Have("File name is required")
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		v := usecase.ValidateWorkflowFile("../evil.json", []byte(`{}`))
		gt.False(t, v.Valid)
		gt.A(t, v.Errors).Have("File name must not contain path separators")
	})

	t.Run("wrong extension", func(t *testing.T) {
		v := usecase.ValidateWorkflowFile("flow.yaml", []byte(`{}`))
		gt.False(t, v.Valid)
		gt.A(t, v.Errors).Have("File name must have a .json extension")
	})

	t.Run("invalid JSON content", func(t *testing.T) {
		v := usecase.ValidateWorkflowFile("flow.json", []byte(`{broken`))
		gt.False(t, v.Valid)

		found := false
		for _, e := range v.Errors {
			if strings.HasPrefix(e, "Invalid JSON:") {
				found = true
			}
		}
		gt.True(t, found)
	})

	t.Run("oversized file", func(t *testing.T) {
		// Valid JSON that exceeds the 1MB limit, so the size check is the
		// only failure.
		content := []byte(`"` + strings.Repeat("a", 1<<20) + `"`)
		v := usecase.ValidateWorkflowFile("flow.json", content)
		gt.False(t, v.Valid)
		gt.V(t, len(v.Errors)).Equal(1)
		gt.A(t, v.Errors).Have("File size must be 1MB or less")
	})

	t.Run("failures accumulate", func(t *testing.T) {
		v := usecase.ValidateWorkflowFile("bad name.txt", []byte(`{broken`))
		gt.False(t, v.Valid)
		gt.True(t, len(v.Errors) >= 2)
	})
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"payment-flow.json": "payment-flow.json",
		"../evil.txt":       "evil.json",
		"..\\evil.txt":      "evil.json",
		"a/b/c.json":        "abc.json",
		"a..b.json":         "a.b.json",
		"my flow!.json":     "myflow.json",
		"...flow.json":      "flow.json",
		"flow.yaml":         "flow.json",
		"flow":              "flow.json",
		"":                  "workflow.json",
		"..":                "workflow.json",
		"!!!":               "workflow.json",
	}

	for input, want := range cases {
		got := usecase.SanitizeFileName(input)
		gt.V(t, got).Equal(want)

		// Sanitizing is idempotent
		gt.V(t, usecase.SanitizeFileName(got)).Equal(got)
	}
}

func TestUploadWorkflow(t *testing.T) {
	t.Run("creates a new file when no blob exists", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetFileSHAFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, path string) (types.CommitSHA, error) {
				gt.V(t, owner).Equal("octocat")
				gt.V(t, repo).Equal("FaaSr-workflow")
				gt.V(t, path).Equal("flow.json")
				return "", nil
			},
			PutFileFunc: func(ctx context.Context, installID types.GitHubAppInstallID, input *interfaces.PutFileInput) (types.CommitSHA, error) {
				gt.V(t, input.Message).Equal("Add workflow flow.json")
				gt.V(t, input.SHA).Equal(types.CommitSHA(""))
				return "commit-sha-1", nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		result := gt.R1(uc.UploadWorkflow(context.Background(), testSession(), "flow.json", []byte(`{}`))).NoError(t)

		gt.V(t, result.FileName).Equal("flow.json")
		gt.V(t, result.CommitSHA).Equal(types.CommitSHA("commit-sha-1"))
	})

	t.Run("updates an existing file with its blob SHA", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetFileSHAFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, path string) (types.CommitSHA, error) {
				return "blob-sha-1", nil
			},
			PutFileFunc: func(ctx context.Context, installID types.GitHubAppInstallID, input *interfaces.PutFileInput) (types.CommitSHA, error) {
				gt.V(t, input.Message).Equal("Update workflow flow.json")
				gt.V(t, input.SHA).Equal(types.CommitSHA("blob-sha-1"))
				return "commit-sha-2", nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		result := gt.R1(uc.UploadWorkflow(context.Background(), testSession(), "flow.json", []byte(`{}`))).NoError(t)

		gt.V(t, result.CommitSHA).Equal(types.CommitSHA("commit-sha-2"))
		gt.V(t, len(mockGH.PutFileCalls())).Equal(1)
	})

	t.Run("invalid file never reaches GitHub", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		_, err := uc.UploadWorkflow(context.Background(), testSession(), "../evil.txt", []byte(`{broken`))

		gt.True(t, errors.Is(err, types.ErrInvalidFile))
	})

	t.Run("session without repository name", func(t *testing.T) {
		session := testSession()
		session.RepoName = ""

		uc := usecase.New(infra.New(infra.WithGitHubApp(&mock.GitHubAppMock{})))
		_, err := uc.UploadWorkflow(context.Background(), session, "flow.json", []byte(`{}`))

		gt.True(t, errors.Is(err, types.ErrRepositoryNotFound))
	})
}

func TestTriggerRegistration(t *testing.T) {
	t.Run("dispatches with sanitized file name and default branch", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{Owner: owner, Name: repo, DefaultBranch: "dev"}, nil
			},
			DispatchWorkflowFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile, ref string, inputs map[string]any) error {
				gt.V(t, workflowFile).Equal("register-workflow.yml")
				gt.V(t, ref).Equal("dev")
				gt.V(t, inputs["workflow_file"].(string)).Equal("flow.json")
				gt.V(t, inputs["custom_container"].(string)).Equal("true")
				return nil
			},
			ListWorkflowRunsFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile string) ([]*model.WorkflowRun, error) {
				return []*model.WorkflowRun{
					{ID: 42, Status: "queued", HTMLURL: "https://github.com/octocat/FaaSr-workflow/actions/runs/42"},
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		result := gt.R1(uc.TriggerRegistration(context.Background(), testSession(), "flow.json", true)).NoError(t)

		gt.V(t, result.WorkflowRunID).Equal(int64(42))
		gt.V(t, result.WorkflowRunURL).Equal("https://github.com/octocat/FaaSr-workflow/actions/runs/42")
	})

	t.Run("dispatch failure does not fail the operation", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{Owner: owner, Name: repo, DefaultBranch: "main"}, nil
			},
			DispatchWorkflowFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile, ref string, inputs map[string]any) error {
				return errors.New("dispatch rejected")
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		result := gt.R1(uc.TriggerRegistration(context.Background(), testSession(), "flow.json", false)).NoError(t)

		gt.V(t, result.WorkflowRunID).Equal(int64(0))
		gt.V(t, result.WorkflowRunURL).Equal("")
		gt.V(t, len(mockGH.ListWorkflowRunsCalls())).Equal(0)
	})

	t.Run("run not visible yet is not an error", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{Owner: owner, Name: repo, DefaultBranch: "main"}, nil
			},
			DispatchWorkflowFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile, ref string, inputs map[string]any) error {
				return nil
			},
			ListWorkflowRunsFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, workflowFile string) ([]*model.WorkflowRun, error) {
				return nil, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		result := gt.R1(uc.TriggerRegistration(context.Background(), testSession(), "flow.json", false)).NoError(t)

		gt.V(t, result.WorkflowRunID).Equal(int64(0))
	})
}
