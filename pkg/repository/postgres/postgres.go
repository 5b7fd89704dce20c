package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/repository"
	"github.com/m-mizutani/goerr/v2"

	_ "github.com/lib/pq"
)

// New opens a Postgres-backed profile repository. The DSN points at the
// platform-managed database (Supabase exposes a regular Postgres
// connection string).
func New(ctx context.Context, dsn string) (interfaces.ProfileRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	repo := &profileRepository{db: db}
	if err := repo.migrate(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

type profileRepository struct {
	db *sql.DB
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_installations (
    platform_user_id TEXT PRIMARY KEY,
    installation_id  BIGINT NOT NULL,
    user_login       TEXT NOT NULL,
    user_id          BIGINT NOT NULL,
    avatar_url       TEXT NOT NULL DEFAULT '',
    repo_name        TEXT NOT NULL DEFAULT '',
    created_at       TIMESTAMPTZ NOT NULL,
    updated_at       TIMESTAMPTZ NOT NULL
)`

func (x *profileRepository) migrate(ctx context.Context) error {
	if _, err := x.db.ExecContext(ctx, schemaDDL); err != nil {
		return goerr.Wrap(err, "failed to create user_installations table")
	}
	return nil
}

func (x *profileRepository) PutInstallation(ctx context.Context, record *model.InstallationRecord) error {
	if err := record.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid installation record", goerr.V("cause", err))
	}

	now := time.Now().UTC()
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	const query = `
INSERT INTO user_installations (
    platform_user_id, installation_id, user_login, user_id, avatar_url, repo_name, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (platform_user_id) DO UPDATE SET
    installation_id = EXCLUDED.installation_id,
    user_login      = EXCLUDED.user_login,
    user_id         = EXCLUDED.user_id,
    avatar_url      = EXCLUDED.avatar_url,
    repo_name       = EXCLUDED.repo_name,
    updated_at      = EXCLUDED.updated_at`

	if _, err := x.db.ExecContext(ctx, query,
		string(record.PlatformUserID),
		int64(record.InstallationID),
		record.UserLogin,
		int64(record.UserID),
		record.AvatarURL,
		record.RepoName,
		createdAt,
		now,
	); err != nil {
		return goerr.Wrap(err, "failed to upsert installation record",
			goerr.V("userID", record.PlatformUserID),
		)
	}

	return nil
}

func (x *profileRepository) GetInstallationByUser(ctx context.Context, userID types.PlatformUserID) (*model.InstallationRecord, error) {
	const query = `
SELECT platform_user_id, installation_id, user_login, user_id, avatar_url, repo_name, created_at, updated_at
FROM user_installations
WHERE platform_user_id = $1`

	var record model.InstallationRecord
	var platformUserID string
	var installationID, ghUserID int64

	row := x.db.QueryRowContext(ctx, query, string(userID))
	if err := row.Scan(
		&platformUserID,
		&installationID,
		&record.UserLogin,
		&ghUserID,
		&record.AvatarURL,
		&record.RepoName,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(repository.ErrNotFound, "installation record not found", goerr.V("userID", userID))
		}
		return nil, goerr.Wrap(err, "failed to query installation record", goerr.V("userID", userID))
	}

	record.PlatformUserID = types.PlatformUserID(platformUserID)
	record.InstallationID = types.GitHubAppInstallID(installationID)
	record.UserID = types.GitHubUserID(ghUserID)

	return &record, nil
}

func (x *profileRepository) DeleteInstallation(ctx context.Context, userID types.PlatformUserID) error {
	const query = `DELETE FROM user_installations WHERE platform_user_id = $1`
	if _, err := x.db.ExecContext(ctx, query, string(userID)); err != nil {
		return goerr.Wrap(err, "failed to delete installation record", goerr.V("userID", userID))
	}
	return nil
}
