package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/faasr/faasr-gateway/pkg/domain/mock"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/infra"
	"github.com/faasr/faasr-gateway/pkg/usecase"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestInstallURL(t *testing.T) {
	t.Run("configured URL is returned", func(t *testing.T) {
		uc := usecase.New(infra.New(), usecase.WithInstallURL("https://github.com/apps/faasr/installations/new"))
		url := gt.R1(uc.InstallURL(context.Background())).NoError(t)
		gt.V(t, url).Equal("https://github.com/apps/faasr/installations/new")
	})

	t.Run("missing configuration is an error", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.InstallURL(context.Background())
		gt.True(t, errors.Is(err, types.ErrConfiguration))
	})
}

func TestCompleteInstallation(t *testing.T) {
	fullGrant := map[string]string{
		"contents": "write",
		"actions":  "write",
		"metadata": "read",
	}

	t.Run("validates permissions and resolves the fork", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetInstallationFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
				gt.V(t, installID).Equal(types.GitHubAppInstallID(12345))
				return &model.Installation{
					ID:          installID,
					Account:     model.InstallationAccount{Login: "octocat", ID: 67890},
					Permissions: fullGrant,
				}, nil
			},
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{
					Owner: owner, Name: repo,
					Fork:          true,
					ParentOwner:   "FaaSr",
					ParentName:    "FaaSr-workflow",
					DefaultBranch: "main",
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		result := gt.R1(uc.CompleteInstallation(context.Background(), 12345)).NoError(t)

		gt.V(t, result.Installation.Account.Login).Equal("octocat")
		gt.V(t, result.Fork.RepoName).Equal("FaaSr-workflow")
		gt.V(t, result.Fork.ForkStatus).Equal(types.ForkStatusExists)
	})

	t.Run("insufficient permission grant", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetInstallationFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
				return &model.Installation{
					ID:      installID,
					Account: model.InstallationAccount{Login: "octocat", ID: 67890},
					Permissions: map[string]string{
						"contents": "read",
						"metadata": "read",
					},
				}, nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH)))
		_, err := uc.CompleteInstallation(context.Background(), 12345)

		gt.True(t, errors.Is(err, types.ErrMissingPermissions))
	})

	t.Run("zero installation ID", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHubApp(&mock.GitHubAppMock{})))
		_, err := uc.CompleteInstallation(context.Background(), 0)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("audit event is recorded when the sink is configured", func(t *testing.T) {
		mockGH := &mock.GitHubAppMock{
			GetInstallationFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
				return &model.Installation{
					ID:          installID,
					Account:     model.InstallationAccount{Login: "octocat", ID: 67890},
					Permissions: fullGrant,
				}, nil
			},
			GetRepositoryFunc: func(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string) (*model.GitHubRepo, error) {
				return &model.GitHubRepo{
					Owner: owner, Name: repo,
					Fork:        true,
					ParentOwner: "FaaSr",
					ParentName:  "FaaSr-workflow",
				}, nil
			},
		}
		now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				record := data.(*model.RegistrationEventRawRecord)
				gt.V(t, record.Timestamp).Equal(now.UnixMicro())
				return nil
			},
		}

		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })
		uc := usecase.New(infra.New(infra.WithGitHubApp(mockGH), infra.WithBigQuery(mockBQ)))
		gt.R1(uc.CompleteInstallation(ctx, 12345)).NoError(t)

		gt.V(t, len(mockBQ.InsertCalls())).Equal(1)
	})
}
