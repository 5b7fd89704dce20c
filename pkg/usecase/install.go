package usecase

import (
	"context"
	"log/slog"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// InstallURL returns the GitHub App installation page for new users.
func (x *UseCase) InstallURL(ctx context.Context) (string, error) {
	if x.installURL == "" {
		return "", goerr.Wrap(types.ErrConfiguration, "GitHub App install URL is not configured")
	}
	return x.installURL, nil
}

// CompleteInstallation handles the post-install redirect: fetch the
// installation, validate its permission grant, and resolve or create
// the user's fork of the source repository.
func (x *UseCase) CompleteInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationResult, error) {
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}

	inst, err := x.clients.GitHubApp().GetInstallation(ctx, installID)
	if err != nil {
		return nil, err
	}

	check := ValidatePermissions(inst)
	if !check.Valid {
		return nil, goerr.Wrap(types.ErrMissingPermissions, "installation permission grant is insufficient",
			goerr.V("installID", installID),
			goerr.V("missing", check.MissingPermissions),
		)
	}

	fork, err := x.EnsureFork(ctx, installID, inst.Account.Login)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Completed installation",
		slog.Any("installID", installID),
		slog.String("login", inst.Account.Login),
		slog.String("repoName", fork.RepoName),
		slog.Any("forkStatus", fork.ForkStatus),
	)

	x.recordEvent(ctx, &model.RegistrationEvent{
		EventType:      "installation_completed",
		InstallationID: int64(installID),
		Login:          inst.Account.Login,
		RepoName:       fork.RepoName,
	})

	return &model.InstallationResult{
		Installation: inst,
		Fork:         fork,
	}, nil
}
