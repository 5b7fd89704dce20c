package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/utils/errutil"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleError(ctx, "fail to marshal response", err)
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

// writeError maps the error taxonomy to an HTTP status. Unknown errors
// become a generic 500: the real cause is logged and sent to Sentry but
// never leaks to the caller.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidSession):
		writeJSON(ctx, w, http.StatusUnauthorized, map[string]any{
			"error": "Unauthorized",
		})

	case errors.Is(err, types.ErrInvalidFile):
		body := map[string]any{
			"success": false,
			"error":   "Invalid workflow file",
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			if errList, ok := goErr.Values()["errors"].([]string); ok {
				body["errors"] = errList
			}
		}
		writeJSON(ctx, w, http.StatusBadRequest, body)

	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, types.ErrInvalidOption):
		writeJSON(ctx, w, http.StatusBadRequest, map[string]any{
			"error": "Bad request",
		})

	case errors.Is(err, types.ErrRepositoryNotFound),
		errors.Is(err, types.ErrForkNotFound),
		errors.Is(err, types.ErrWorkflowRunNotFound):
		writeJSON(ctx, w, http.StatusNotFound, map[string]any{
			"error": err.Error(),
		})

	case errors.Is(err, types.ErrRateLimited):
		writeJSON(ctx, w, http.StatusTooManyRequests, map[string]any{
			"error": "GitHub API rate limit exceeded",
		})

	default:
		errutil.HandleError(ctx, "unhandled error in request", err)
		writeJSON(ctx, w, http.StatusInternalServerError, map[string]any{
			"error": "Internal server error",
		})
	}
}
