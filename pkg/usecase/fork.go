package usecase

import (
	"context"
	"log/slog"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// IsFork reports whether owner/name is a fork of the source template
// repository. A missing repository (HTTP 404) is false, not an error.
func (x *UseCase) IsFork(ctx context.Context, installID types.GitHubAppInstallID, owner, name string) (bool, error) {
	repo, err := x.clients.GitHubApp().GetRepository(ctx, installID, owner, name)
	if err != nil {
		return false, err
	}
	if repo == nil {
		return false, nil
	}

	return repo.Fork && repo.ParentOwner == x.sourceOwner && repo.ParentName == x.sourceRepo, nil
}

// ResolveFork locates the installing account's fork. By convention the
// fork keeps the source repository's name, so that is checked first;
// otherwise installation repos are scanned in listing order and the
// first one satisfying IsFork wins. Returns (nil, nil) when no fork
// exists.
func (x *UseCase) ResolveFork(ctx context.Context, installID types.GitHubAppInstallID, login string) (*model.RepositoryFork, error) {
	repo, err := x.clients.GitHubApp().GetRepository(ctx, installID, login, x.sourceRepo)
	if err != nil {
		return nil, err
	}
	if repo != nil && repo.Fork && repo.ParentOwner == x.sourceOwner && repo.ParentName == x.sourceRepo {
		return forkOf(repo, types.ForkStatusExists), nil
	}

	repos, err := x.clients.GitHubApp().ListInstallationRepos(ctx, installID)
	if err != nil {
		return nil, err
	}

	for _, candidate := range repos {
		ok, err := x.IsFork(ctx, installID, candidate.Owner, candidate.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			// The listing payload has no parent info, so refetch for
			// the full metadata.
			full, err := x.clients.GitHubApp().GetRepository(ctx, installID, candidate.Owner, candidate.Name)
			if err != nil {
				return nil, err
			}
			return forkOf(full, types.ForkStatusExists), nil
		}
	}

	return nil, nil
}

// EnsureFork resolves the account's fork, creating one from the source
// repository when absent.
func (x *UseCase) EnsureFork(ctx context.Context, installID types.GitHubAppInstallID, login string) (*model.RepositoryFork, error) {
	fork, err := x.ResolveFork(ctx, installID, login)
	if err != nil {
		return nil, err
	}
	if fork != nil {
		return fork, nil
	}

	logging.From(ctx).Info("No fork found, creating one",
		slog.String("login", login),
		slog.String("source", x.sourceOwner+"/"+x.sourceRepo),
	)

	created, err := x.clients.GitHubApp().CreateFork(ctx, installID, x.sourceOwner, x.sourceRepo)
	if err != nil {
		return nil, goerr.Wrap(types.ErrForkNotFound, "fork absent and creation failed",
			goerr.V("login", login),
			goerr.V("cause", err.Error()),
		)
	}

	result := forkOf(created, types.ForkStatusCreated)
	if result.Owner == "" {
		result.Owner = login
	}
	if result.RepoName == "" {
		result.RepoName = x.sourceRepo
	}
	return result, nil
}

func forkOf(repo *model.GitHubRepo, status types.ForkStatus) *model.RepositoryFork {
	branch := repo.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	return &model.RepositoryFork{
		Owner:         repo.Owner,
		RepoName:      repo.Name,
		ForkURL:       repo.HTMLURL,
		ForkStatus:    status,
		DefaultBranch: branch,
		CreatedAt:     repo.CreatedAt,
	}
}
