package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
)

type UseCase interface {
	// InstallURL returns the GitHub App installation page to redirect
	// new users to.
	InstallURL(ctx context.Context) (string, error)

	// CompleteInstallation validates permissions and resolves (or
	// creates) the user's fork after the GitHub App install redirect.
	CompleteInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationResult, error)

	UploadWorkflow(ctx context.Context, session *model.UserSession, fileName string, content []byte) (*model.UploadResult, error)

	// TriggerRegistration dispatches the CI registration workflow. A
	// dispatch failure is swallowed (logged only); the returned
	// DispatchResult is then empty.
	TriggerRegistration(ctx context.Context, session *model.UserSession, fileName string, customContainers bool) (*model.DispatchResult, error)

	GetWorkflowStatus(ctx context.Context, session *model.UserSession, fileName string) (*model.RegistrationStatus, error)
}
