package config

import (
	"log/slog"

	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/infra/ghapp"
	"github.com/faasr/faasr-gateway/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	installURL string

	sourceOwner  string
	sourceRepo   string
	workflowFile string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("FAASR_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("FAASR_GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-install-url",
			Usage:       "GitHub App installation page URL",
			Category:    "GitHub App",
			Destination: &x.installURL,
			Sources:     cli.EnvVars("FAASR_GITHUB_APP_INSTALL_URL"),
		},
		&cli.StringFlag{
			Name:        "source-repo-owner",
			Usage:       "Owner of the upstream workflow template repository",
			Category:    "GitHub App",
			Value:       "FaaSr",
			Destination: &x.sourceOwner,
			Sources:     cli.EnvVars("FAASR_SOURCE_REPO_OWNER"),
		},
		&cli.StringFlag{
			Name:        "source-repo-name",
			Usage:       "Name of the upstream workflow template repository",
			Category:    "GitHub App",
			Value:       "FaaSr-workflow",
			Destination: &x.sourceRepo,
			Sources:     cli.EnvVars("FAASR_SOURCE_REPO_NAME"),
		},
		&cli.StringFlag{
			Name:        "register-workflow-file",
			Usage:       "CI workflow file dispatched for registration",
			Category:    "GitHub App",
			Value:       "register-workflow.yml",
			Destination: &x.workflowFile,
			Sources:     cli.EnvVars("FAASR_REGISTER_WORKFLOW_FILE"),
		},
	}
}

func (x GitHubApp) New() (*ghapp.Client, error) {
	return ghapp.New(x.id, x.privateKey)
}

func (x GitHubApp) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithSourceRepo(x.sourceOwner, x.sourceRepo),
		usecase.WithWorkflowFile(x.workflowFile),
		usecase.WithInstallURL(x.installURL),
	}
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("installURL", x.installURL),
		slog.String("sourceOwner", x.sourceOwner),
		slog.String("sourceRepo", x.sourceRepo),
		slog.String("workflowFile", x.workflowFile),
	)
}
