package server

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/errutil"
	"github.com/faasr/faasr-gateway/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// maxUploadSize bounds the multipart body read. Slightly above the 1MB
// file limit so oversized files reach validation and get a proper
// validation error instead of a truncated read.
const maxUploadSize = 2 << 20

type handlers struct {
	uc          interfaces.UseCase
	session     SessionProvider
	frontendURL string
}

func (x *handlers) resolveSession(r *http.Request) (*model.UserSession, error) {
	if x.session == nil {
		return nil, goerr.Wrap(types.ErrInvalidSession, "no session provider is configured")
	}
	return x.session.Resolve(r)
}

func (x *handlers) install(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	redirectURL, err := x.uc.InstallURL(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"success":     true,
		"redirectUrl": redirectURL,
	})
}

// installErrorCode maps a CompleteInstallation failure to the error code
// vocabulary the frontend understands.
func installErrorCode(err error) string {
	switch {
	case errors.Is(err, types.ErrMissingPermissions):
		return "missing_permissions"
	case errors.Is(err, types.ErrRateLimited):
		return "rate_limit"
	case errors.Is(err, types.ErrInvalidInstallationData):
		return "failed_to_get_user"
	case errors.Is(err, types.ErrForkNotFound):
		return "no_fork_found"
	default:
		return "installation_failed"
	}
}

func installErrorMessage(code string) (string, int) {
	switch code {
	case "missing_installation_id":
		return "No installation ID received from GitHub", http.StatusBadRequest
	case "missing_permissions":
		return "The GitHub App is missing required permissions. Please reinstall with all requested permissions.", http.StatusForbidden
	case "no_fork_found":
		return "No fork of the workflow repository was found for your account", http.StatusNotFound
	case "rate_limit":
		return "GitHub API rate limit exceeded. Please try again later.", http.StatusTooManyRequests
	case "failed_to_get_user":
		return "Could not retrieve installation details from GitHub", http.StatusBadGateway
	default:
		return "Installation could not be completed", http.StatusInternalServerError
	}
}

func (x *handlers) installError(w http.ResponseWriter, r *http.Request, code string, cause error) {
	ctx := r.Context()
	message, status := installErrorMessage(code)

	if cause != nil {
		errutil.HandleError(ctx, "installation callback failed", cause)
	}

	if x.frontendURL != "" {
		q := url.Values{}
		q.Set("installation", "error")
		q.Set("error", code)
		q.Set("message", message)
		http.Redirect(w, r, x.frontendURL+"/?"+q.Encode(), http.StatusFound)
		return
	}

	writeJSON(ctx, w, status, map[string]any{
		"success": false,
		"error":   code,
		"message": message,
	})
}

func (x *handlers) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rawID := r.URL.Query().Get("installation_id")
	if rawID == "" {
		x.installError(w, r, "missing_installation_id", nil)
		return
	}
	installID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || installID <= 0 {
		x.installError(w, r, "missing_installation_id", err)
		return
	}

	result, err := x.uc.CompleteInstallation(ctx, types.GitHubAppInstallID(installID))
	if err != nil {
		x.installError(w, r, installErrorCode(err), err)
		return
	}

	if x.session != nil {
		if err := x.session.Establish(w, r, result); err != nil {
			x.installError(w, r, "installation_failed", err)
			return
		}
	}

	if x.frontendURL != "" {
		q := url.Values{}
		q.Set("installation", "success")
		q.Set("username", result.Installation.Account.Login)
		q.Set("repo", result.Fork.RepoName)
		http.Redirect(w, r, x.frontendURL+"/?"+q.Encode(), http.StatusFound)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"success":      true,
		"installation": result.Installation,
		"fork":         result.Fork,
	})
}

func (x *handlers) authStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := x.resolveSession(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"userLogin": session.UserLogin,
		"avatarUrl": session.AvatarURL,
		"repoName":  session.RepoName,
	})
}

// uploadResponse embeds the dispatch outcome so the run fields stay
// absent while the run listing has not caught up with the dispatch yet.
type uploadResponse struct {
	Success   bool            `json:"success"`
	FileName  string          `json:"fileName"`
	CommitSHA types.CommitSHA `json:"commitSha"`
	*model.DispatchResult
}

func (x *handlers) uploadWorkflow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := x.resolveSession(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Request must be multipart/form-data",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "A workflow file is required",
		})
		return
	}
	defer safe.Close(file)

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeError(ctx, w, goerr.Wrap(err, "failed to read uploaded file"))
		return
	}

	customContainers := r.FormValue("custom_containers") == "true"

	upload, err := x.uc.UploadWorkflow(ctx, session, header.Filename, content)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dispatch, err := x.uc.TriggerRegistration(ctx, session, upload.FileName, customContainers)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, &uploadResponse{
		Success:        true,
		FileName:       upload.FileName,
		CommitSHA:      upload.CommitSHA,
		DispatchResult: dispatch,
	})
}

func (x *handlers) workflowStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := x.resolveSession(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fileName := r.URL.Query().Get("filename")
	if fileName == "" {
		writeJSON(ctx, w, http.StatusBadRequest, map[string]any{
			"error": "filename query parameter is required",
		})
		return
	}

	status, err := x.uc.GetWorkflowStatus(ctx, session, fileName)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, status)
}

func (x *handlers) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if x.session != nil {
		if err := x.session.Clear(w, r); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"success": true,
	})
}
