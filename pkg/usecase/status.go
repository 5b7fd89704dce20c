package usecase

import (
	"context"
	"fmt"

	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// GetWorkflowStatus derives the registration status of fileName from
// the most recent run of the registration workflow. Nothing is stored;
// every poll recomputes from the GitHub run listing.
func (x *UseCase) GetWorkflowStatus(ctx context.Context, session *model.UserSession, fileName string) (*model.RegistrationStatus, error) {
	if err := session.RequireRepo(); err != nil {
		return nil, err
	}

	name := SanitizeFileName(fileName)
	gh := x.clients.GitHubApp()

	runs, err := gh.ListWorkflowRuns(ctx, session.InstallationID, session.UserLogin, session.RepoName, x.workflowFile)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, goerr.Wrap(types.ErrWorkflowRunNotFound, "no registration runs recorded",
			goerr.V("fileName", name),
			goerr.V("repoName", session.RepoName),
		)
	}

	// The list is newest-first per the GitHub API default. Refetch the
	// run by ID for the freshest state; a run that disappeared in
	// between (404 -> nil) falls back to the listed snapshot.
	run := runs[0]
	if fresh, err := gh.GetWorkflowRun(ctx, session.InstallationID, session.UserLogin, session.RepoName, run.ID); err != nil {
		return nil, err
	} else if fresh != nil {
		run = fresh
	}

	return buildRegistrationStatus(name, run), nil
}

func buildRegistrationStatus(fileName string, run *model.WorkflowRun) *model.RegistrationStatus {
	status := &model.RegistrationStatus{
		FileName:       fileName,
		WorkflowRunID:  run.ID,
		WorkflowRunURL: run.HTMLURL,
	}

	if !run.CreatedAt.IsZero() {
		triggeredAt := run.CreatedAt
		status.TriggeredAt = &triggeredAt
	}

	switch run.Status {
	case "completed":
		completedAt := run.UpdatedAt
		status.CompletedAt = &completedAt
		if run.Conclusion == "success" {
			status.Status = types.RegistrationSuccess
		} else {
			status.Status = types.RegistrationFailed
			status.ErrorMessage = fmt.Sprintf("workflow run concluded: %s", run.Conclusion)
		}
	case "in_progress":
		status.Status = types.RegistrationRunning
	default:
		// "queued" and the rarer waiting states all read as pending.
		status.Status = types.RegistrationPending
	}

	return status
}
