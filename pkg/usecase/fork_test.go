package usecase_test

import (
	"context"
	"testing"

	"github.com/faasr/faasr-gateway/pkg/domain/mock"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/infra"
	"github.com/faasr/faasr-gateway/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestIsFork(t *testing.T) {
	t.Run("missing repository is false, not an error", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return nil, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		ok := gt.R1(uc.IsFork(context.Background(), 1, "octocat", "gone")).NoError(t)
		gt.False(t, ok)
	})

	t.Run("non-fork repository is false", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{Owner: owner, Name: repo, Fork: false}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		ok := gt.R1(uc.IsFork(context.Background(), 1, "octocat", "some-repo")).NoError(t)
		gt.False(t, ok)
	})

	t.Run("fork of a different upstream is false", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{
					Owner: owner, Name: repo,
					Fork:        true,
					ParentOwner: "someone-else",
					ParentName:  "other-repo",
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		ok := gt.R1(uc.IsFork(context.Background(), 1, "octocat", "other-repo")).NoError(t)
		gt.False(t, ok)
	})

	t.Run("fork of the source repository is true", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{
					Owner: owner, Name: repo,
					Fork:        true,
					ParentOwner: "FaaSr",
					ParentName:  "FaaSr-workflow",
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		ok := gt.R1(uc.IsFork(context.Background(), 1, "octocat", "FaaSr-workflow")).NoError(t)
		gt.True(t, ok)
	})
}

func TestResolveFork(t *testing.T) {
	t.Run("conventionally named fork is found without listing", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				gt.V(t, owner).Equal("octocat")
				gt.V(t, repo).Equal("FaaSr-workflow")
				return &model.GitHubRepo{
					Owner: owner, Name: repo,
					Fork:          true,
					ParentOwner:   "FaaSr",
					ParentName:    "FaaSr-workflow",
					DefaultBranch: "main",
					HTMLURL:       "https://github.com/octocat/FaaSr-workflow",
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		fork := gt.R1(uc.ResolveFork(context.Background(), 1, "octocat")).NoError(t)

		gt.V(t, fork.RepoName).Equal("FaaSr-workflow")
		gt.V(t, fork.ForkStatus).Equal(types.ForkStatusExists)
		gt.V(t, len(mockGH.ListInstallationReposCalls())).Equal(0)
	})

	t.Run("renamed fork is found by scanning installation repos", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				switch repo {
				case "FaaSr-workflow":
					return nil, nil
				case "my-workflows":
					return &model.GitHubRepo{
						Owner: owner, Name: repo,
						Fork:          true,
						ParentOwner:   "FaaSr",
						ParentName:    "FaaSr-workflow",
						DefaultBranch: "main",
					}, nil
				default:
					return &model.GitHubRepo{Owner: owner, Name: repo}, nil
				}
			},
			ListInstallationReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubRepo, error) {
				return []*model.GitHubRepo{
					{Owner: "octocat", Name: "dotfiles"},
					{Owner: "octocat", Name: "my-workflows"},
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		fork := gt.R1(uc.ResolveFork(context.Background(), 1, "octocat")).NoError(t)

		gt.V(t, fork.RepoName).Equal("my-workflows")
		gt.V(t, fork.ForkStatus).Equal(types.ForkStatusExists)
	})

	t.Run("no fork anywhere yields nil without error", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return nil, nil
			},
			ListInstallationReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubRepo, error) {
				return nil, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		fork, err := uc.ResolveFork(context.Background(), 1, "octocat")
		gt.NoError(t, err)
		gt.V(t, fork).Nil()
	})
}

func TestEnsureFork(t *testing.T) {
	t.Run("creates a fork when none exists", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return nil, nil
			},
			ListInstallationReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubRepo, error) {
				return nil, nil
			},
			CreateForkFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				gt.V(t, owner).Equal("FaaSr")
				gt.V(t, repo).Equal("FaaSr-workflow")
				return &model.GitHubRepo{
					Owner: "octocat", Name: "FaaSr-workflow",
					DefaultBranch: "main",
					HTMLURL:       "https://github.com/octocat/FaaSr-workflow",
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		fork := gt.R1(uc.EnsureFork(context.Background(), 1, "octocat")).NoError(t)

		gt.V(t, fork.ForkStatus).Equal(types.ForkStatusCreated)
		gt.V(t, fork.Owner).Equal("octocat")
		gt.V(t, fork.RepoName).Equal("FaaSr-workflow")
	})

	t.Run("fork creation with sparse accepted response falls back to login", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return nil, nil
			},
			ListInstallationReposFunc: func(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.GitHubRepo, error) {
				return nil, nil
			},
			CreateForkFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				// GitHub answers 202 with a partial payload while forking
				// asynchronously.
				return &model.GitHubRepo{}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		fork := gt.R1(uc.EnsureFork(context.Background(), 1, "octocat")).NoError(t)

		gt.V(t, fork.Owner).Equal("octocat")
		gt.V(t, fork.RepoName).Equal("FaaSr-workflow")
		gt.V(t, fork.DefaultBranch).Equal("main")
	})

	t.Run("existing fork is returned without creating", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{
					Owner: owner, Name: repo,
					Fork:        true,
					ParentOwner: "FaaSr",
					ParentName:  "FaaSr-workflow",
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		fork := gt.R1(uc.EnsureFork(context.Background(), 1, "octocat")).NoError(t)

		gt.V(t, fork.ForkStatus).Equal(types.ForkStatusExists)
		gt.V(t, len(mockGH.CreateForkCalls())).Equal(0)
	})
}
