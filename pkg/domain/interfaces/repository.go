package interfaces

import (
	"context"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
)

//go:generate moq -out ../mock/profile_repository_mock.go -pkg mock . ProfileRepository

// ProfileRepository stores the join between platform users and their
// GitHub App installations. Only the platform-auth session variant uses
// it; the stateless-cookie variant carries everything in the cookie.
type ProfileRepository interface {
	PutInstallation(ctx context.Context, record *model.InstallationRecord) error
	GetInstallationByUser(ctx context.Context, userID types.PlatformUserID) (*model.InstallationRecord, error)
	DeleteInstallation(ctx context.Context, userID types.PlatformUserID) error
}
