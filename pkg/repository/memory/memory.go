package memory

import (
	"context"
	"sync"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// New creates a new in-memory profile repository
func New() interfaces.ProfileRepository {
	return &profileRepository{
		records: make(map[types.PlatformUserID]*model.InstallationRecord),
	}
}

type profileRepository struct {
	mutex   sync.RWMutex
	records map[types.PlatformUserID]*model.InstallationRecord
}

func (x *profileRepository) PutInstallation(ctx context.Context, record *model.InstallationRecord) error {
	if err := record.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid installation record", goerr.V("cause", err))
	}

	x.mutex.Lock()
	defer x.mutex.Unlock()

	copied := *record
	x.records[record.PlatformUserID] = &copied

	return nil
}

func (x *profileRepository) GetInstallationByUser(ctx context.Context, userID types.PlatformUserID) (*model.InstallationRecord, error) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()

	record, ok := x.records[userID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "installation record not found", goerr.V("userID", userID))
	}

	copied := *record
	return &copied, nil
}

func (x *profileRepository) DeleteInstallation(ctx context.Context, userID types.PlatformUserID) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	delete(x.records, userID)
	return nil
}
