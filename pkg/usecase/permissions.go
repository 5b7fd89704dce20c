package usecase

import (
	"github.com/faasr/faasr-gateway/pkg/domain/model"
)

// requiredPermissions is the fixed grant this app needs: committing
// workflow files, dispatching CI runs, and reading repo metadata.
var requiredPermissions = []struct {
	key   string
	level string
}{
	{key: "contents", level: "write"},
	{key: "actions", level: "write"},
	{key: "metadata", level: "read"},
}

// ValidatePermissions checks an installation's granted permissions
// against the required set. A nil installation (upstream fetch failed)
// reports every permission missing rather than propagating the
// transport error: the check fails closed.
func ValidatePermissions(inst *model.Installation) *model.PermissionCheck {
	check := &model.PermissionCheck{
		Valid:              true,
		MissingPermissions: []string{},
	}

	for _, required := range requiredPermissions {
		var granted string
		if inst != nil {
			granted = inst.Permissions[required.key]
		}
		if granted != required.level {
			check.MissingPermissions = append(check.MissingPermissions, required.key+":"+required.level)
		}
	}

	check.Valid = len(check.MissingPermissions) == 0
	return check
}
