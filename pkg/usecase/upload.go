package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/errutil"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// maxWorkflowFileSize is 1 MiB; workflow definitions are small JSON
// documents and anything bigger is almost certainly a mistake.
const maxWorkflowFileSize = 1 << 20

var (
	ptnValidFileName = regexp.MustCompile(`^[A-Za-z0-9_-]+\.json$`)
	ptnDotRuns       = regexp.MustCompile(`\.{2,}`)
	ptnDisallowed    = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// ValidateWorkflowFile runs every check and accumulates failures so one
// response can report all problems at once.
func ValidateWorkflowFile(fileName string, content []byte) *model.FileValidation {
	var errs []string

	if fileName == "" {
		errs = append(errs, "File name is required")
	} else {
		if strings.ContainsAny(fileName, `/\`) || strings.Contains(fileName, "..") {
			errs = append(errs, "File name must not contain path separators")
		}
		if !strings.HasSuffix(fileName, ".json") {
			errs = append(errs, "File name must have a .json extension")
		}
		if !ptnValidFileName.MatchString(fileName) {
			errs = append(errs, "File name must contain only letters, numbers, hyphens, underscores")
		}
	}

	if len(content) > maxWorkflowFileSize {
		errs = append(errs, "File size must be 1MB or less")
	}

	var parsed any
	if err := json.Unmarshal(content, &parsed); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid JSON: %v", err))
	}

	return &model.FileValidation{
		Valid:             len(errs) == 0,
		Errors:            errs,
		SanitizedFileName: SanitizeFileName(fileName),
	}
}

// SanitizeFileName reduces an arbitrary name to a safe workflow file
// name. The function is idempotent: sanitizing an already-sanitized
// name returns it unchanged.
func SanitizeFileName(name string) string {
	// Drop ".." path segments and separators; "a..b" stays and is
	// handled by the dot-run collapse below.
	var kept []string
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if part != ".." {
			kept = append(kept, part)
		}
	}
	s := strings.Join(kept, "")
	s = ptnDisallowed.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, ".")
	s = ptnDotRuns.ReplaceAllString(s, ".")
	s = strings.TrimLeft(s, ".")

	if s == "" || s == ".json" {
		return "workflow.json"
	}

	if !strings.HasSuffix(s, ".json") {
		// Swap a foreign extension for .json rather than stacking one
		// on top of it.
		if idx := strings.LastIndex(s, "."); idx > 0 {
			s = s[:idx]
		}
		s = strings.TrimRight(s, ".")
		if s == "" {
			return "workflow.json"
		}
		s += ".json"
	}

	return s
}

// UploadWorkflow validates the uploaded definition and commits it to
// the session's fork. An existing file is updated via its blob SHA so
// the commit does not conflict with the previous content.
func (x *UseCase) UploadWorkflow(ctx context.Context, session *model.UserSession, fileName string, content []byte) (*model.UploadResult, error) {
	if err := session.RequireRepo(); err != nil {
		return nil, err
	}

	validation := ValidateWorkflowFile(fileName, content)
	if !validation.Valid {
		return nil, goerr.Wrap(types.ErrInvalidFile, "workflow file validation failed",
			goerr.V("fileName", fileName),
			goerr.V("errors", validation.Errors),
		)
	}

	path := validation.SanitizedFileName
	gh := x.clients.GitHubApp()

	sha, err := gh.GetFileSHA(ctx, session.InstallationID, session.UserLogin, session.RepoName, path)
	if err != nil {
		return nil, err
	}

	message := "Add workflow " + path
	if sha != "" {
		message = "Update workflow " + path
	}

	commitSHA, err := gh.PutFile(ctx, session.InstallationID, &interfaces.PutFileInput{
		Owner:   session.UserLogin,
		Repo:    session.RepoName,
		Path:    path,
		Content: content,
		Message: message,
		SHA:     sha,
	})
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Committed workflow file",
		slog.String("login", session.UserLogin),
		slog.String("repoName", session.RepoName),
		slog.String("fileName", path),
		slog.Any("commitSHA", commitSHA),
	)

	x.recordEvent(ctx, &model.RegistrationEvent{
		EventType:      "workflow_uploaded",
		InstallationID: int64(session.InstallationID),
		Login:          session.UserLogin,
		RepoName:       session.RepoName,
		FileName:       path,
		CommitSHA:      string(commitSHA),
	})

	return &model.UploadResult{
		FileName:  path,
		CommitSHA: commitSHA,
	}, nil
}

// TriggerRegistration dispatches the registration workflow for the
// committed file. Dispatch failure is logged and swallowed: the upload
// already succeeded and the user can re-trigger from the fork. The
// returned run ID/URL is a best-effort lookup; the freshly dispatched
// run may not be listed yet.
func (x *UseCase) TriggerRegistration(ctx context.Context, session *model.UserSession, fileName string, customContainers bool) (*model.DispatchResult, error) {
	if err := session.RequireRepo(); err != nil {
		return nil, err
	}

	name := SanitizeFileName(fileName)
	gh := x.clients.GitHubApp()

	ref := "main"
	if repo, err := gh.GetRepository(ctx, session.InstallationID, session.UserLogin, session.RepoName); err == nil && repo != nil && repo.DefaultBranch != "" {
		ref = repo.DefaultBranch
	}

	inputs := map[string]any{
		"workflow_file":    name,
		"custom_container": strconv.FormatBool(customContainers),
	}

	if err := gh.DispatchWorkflow(ctx, session.InstallationID, session.UserLogin, session.RepoName, x.workflowFile, ref, inputs); err != nil {
		errutil.HandleError(ctx, "failed to dispatch registration workflow", err)
		return &model.DispatchResult{}, nil
	}

	runs, err := gh.ListWorkflowRuns(ctx, session.InstallationID, session.UserLogin, session.RepoName, x.workflowFile)
	if err != nil || len(runs) == 0 {
		logging.From(ctx).Debug("dispatched run not visible yet",
			slog.String("fileName", name),
			slog.Any("error", err),
		)
		return &model.DispatchResult{}, nil
	}

	return &model.DispatchResult{
		WorkflowRunID:  runs[0].ID,
		WorkflowRunURL: runs[0].HTMLURL,
	}, nil
}
