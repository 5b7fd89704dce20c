package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/repository"
	"github.com/faasr/faasr-gateway/pkg/repository/postgres"
	"github.com/faasr/faasr-gateway/pkg/utils/testutil"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

func TestPostgresRepository(t *testing.T) {
	dsn := testutil.GetEnvOrSkip(t, "TEST_POSTGRES_DSN")

	ctx := context.Background()
	repo := gt.R1(postgres.New(ctx, dsn)).NoError(t)

	userID := types.PlatformUserID("test-" + uuid.NewString())
	record := &model.InstallationRecord{
		PlatformUserID: userID,
		InstallationID: 12345,
		UserLogin:      "octocat",
		UserID:         67890,
		AvatarURL:      "https://avatars.example.com/u/67890",
		RepoName:       "FaaSr-workflow",
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	t.Cleanup(func() {
		gt.NoError(t, repo.DeleteInstallation(ctx, userID))
	})

	gt.NoError(t, repo.PutInstallation(ctx, record))

	got := gt.R1(repo.GetInstallationByUser(ctx, userID)).NoError(t)
	gt.V(t, got.InstallationID).Equal(types.GitHubAppInstallID(12345))
	gt.V(t, got.UserLogin).Equal("octocat")
	gt.V(t, got.RepoName).Equal("FaaSr-workflow")

	// Upsert path
	record.RepoName = "my-workflows"
	gt.NoError(t, repo.PutInstallation(ctx, record))

	got = gt.R1(repo.GetInstallationByUser(ctx, userID)).NoError(t)
	gt.V(t, got.RepoName).Equal("my-workflows")

	gt.NoError(t, repo.DeleteInstallation(ctx, userID))
	_, err := repo.GetInstallationByUser(ctx, userID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
