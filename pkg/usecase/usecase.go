package usecase

import (
	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/infra"
)

const (
	defaultSourceOwner  = "FaaSr"
	defaultSourceRepo   = "FaaSr-workflow"
	defaultWorkflowFile = "register-workflow.yml"
)

type UseCase struct {
	clients *infra.Clients

	sourceOwner  string
	sourceRepo   string
	workflowFile string
	installURL   string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithSourceRepo overrides the upstream template repository that user
// forks are checked against.
func WithSourceRepo(owner, repo string) Option {
	return func(x *UseCase) {
		x.sourceOwner = owner
		x.sourceRepo = repo
	}
}

// WithWorkflowFile overrides the CI workflow file dispatched for
// registration.
func WithWorkflowFile(name string) Option {
	return func(x *UseCase) {
		x.workflowFile = name
	}
}

// WithInstallURL sets the GitHub App installation page URL.
func WithInstallURL(url string) Option {
	return func(x *UseCase) {
		x.installURL = url
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		sourceOwner:  defaultSourceOwner,
		sourceRepo:   defaultSourceRepo,
		workflowFile: defaultWorkflowFile,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
