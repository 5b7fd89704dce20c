package usecase_test

import (
	"testing"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestValidatePermissions(t *testing.T) {
	t.Run("full grant is valid", func(t *testing.T) {
		check := usecase.ValidatePermissions(&model.Installation{
			ID: 1,
			Permissions: map[string]string{
				"contents": "write",
				"actions":  "write",
				"metadata": "read",
			},
		})
		gt.True(t, check.Valid)
		gt.V(t, len(check.MissingPermissions)).Equal(0)
	})

	t.Run("read-only contents is insufficient", func(t *testing.T) {
		check := usecase.ValidatePermissions(&model.Installation{
			ID: 1,
			Permissions: map[string]string{
				"contents": "read",
				"actions":  "write",
				"metadata": "read",
			},
		})
		gt.False(t, check.Valid)
		gt.A(t, check.MissingPermissions).Have("contents:write")
	})

	t.Run("absent permission key is reported", func(t *testing.T) {
		check := usecase.ValidatePermissions(&model.Installation{
			ID: 1,
			Permissions: map[string]string{
				"contents": "write",
				"metadata": "read",
			},
		})
		gt.False(t, check.Valid)
		gt.A(t, check.MissingPermissions).Have("actions:write")
	})

	t.Run("nil installation fails closed", func(t *testing.T) {
		check := usecase.ValidatePermissions(nil)
		gt.False(t, check.Valid)
		gt.V(t, len(check.MissingPermissions)).Equal(3)
	})
}
