package model

import (
	"time"

	"github.com/faasr/faasr-gateway/pkg/domain/types"
)

// RegistrationStatus is derived live from a GitHub Actions run lookup on
// every poll; nothing here is stored.
type RegistrationStatus struct {
	FileName       string                  `json:"fileName"`
	Status         types.RegistrationState `json:"status"`
	WorkflowRunID  int64                   `json:"workflowRunId,omitempty"`
	WorkflowRunURL string                  `json:"workflowRunUrl,omitempty"`
	ErrorMessage   string                  `json:"errorMessage,omitempty"`
	TriggeredAt    *time.Time              `json:"triggeredAt,omitempty"`
	CompletedAt    *time.Time              `json:"completedAt,omitempty"`
}
