package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/faasr/faasr-gateway/pkg/controller/server"
	"github.com/faasr/faasr-gateway/pkg/domain/mock"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/domain/types"
	"github.com/faasr/faasr-gateway/pkg/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const testPlatformSecret = "supabase-test-secret"

func platformToken(t *testing.T, secret, subject string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := gt.R1(jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))).NoError(t)
	return token
}

func TestPlatformSessionProvider(t *testing.T) {
	t.Run("resolve joins the stored installation record", func(t *testing.T) {
		mockRepo := &mock.ProfileRepositoryMock{
			GetInstallationByUserFunc: func(ctx context.Context, userID types.PlatformUserID) (*model.InstallationRecord, error) {
				gt.V(t, userID).Equal(types.PlatformUserID("user-1"))
				return &model.InstallationRecord{
					PlatformUserID: userID,
					InstallationID: 12345,
					UserLogin:      "octocat",
					UserID:         67890,
					RepoName:       "FaaSr-workflow",
				}, nil
			},
		}
		provider := gt.R1(server.NewPlatformSessionProvider(testPlatformSecret, mockRepo)).NoError(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.Header.Set("Authorization", "Bearer "+platformToken(t, testPlatformSecret, "user-1"))

		session := gt.R1(provider.Resolve(req)).NoError(t)
		gt.V(t, session.UserLogin).Equal("octocat")
		gt.V(t, session.RepoName).Equal("FaaSr-workflow")
	})

	t.Run("token signed with the wrong secret is rejected", func(t *testing.T) {
		provider := gt.R1(server.NewPlatformSessionProvider(testPlatformSecret, &mock.ProfileRepositoryMock{})).NoError(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.Header.Set("Authorization", "Bearer "+platformToken(t, "wrong-secret", "user-1"))

		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("missing authorization header", func(t *testing.T) {
		provider := gt.R1(server.NewPlatformSessionProvider(testPlatformSecret, &mock.ProfileRepositoryMock{})).NoError(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("user without a linked installation", func(t *testing.T) {
		mockRepo := &mock.ProfileRepositoryMock{
			GetInstallationByUserFunc: func(ctx context.Context, userID types.PlatformUserID) (*model.InstallationRecord, error) {
				return nil, goerr.Wrap(repository.ErrNotFound, "installation record not found")
			},
		}
		provider := gt.R1(server.NewPlatformSessionProvider(testPlatformSecret, mockRepo)).NoError(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth-status", nil)
		req.Header.Set("Authorization", "Bearer "+platformToken(t, testPlatformSecret, "user-2"))

		_, err := provider.Resolve(req)
		gt.True(t, errors.Is(err, types.ErrInvalidSession))
	})

	t.Run("establish stores the installation record", func(t *testing.T) {
		var stored *model.InstallationRecord
		mockRepo := &mock.ProfileRepositoryMock{
			PutInstallationFunc: func(ctx context.Context, record *model.InstallationRecord) error {
				stored = record
				return nil
			},
		}
		provider := gt.R1(server.NewPlatformSessionProvider(testPlatformSecret, mockRepo)).NoError(t)

		req := httptest.NewRequest(http.MethodGet, "/api/callback", nil)
		req.Header.Set("Authorization", "Bearer "+platformToken(t, testPlatformSecret, "user-1"))
		rec := httptest.NewRecorder()

		gt.NoError(t, provider.Establish(rec, req, testInstallationResult()))

		gt.V(t, stored.PlatformUserID).Equal(types.PlatformUserID("user-1"))
		gt.V(t, stored.InstallationID).Equal(types.GitHubAppInstallID(12345))
		gt.V(t, stored.RepoName).Equal("FaaSr-workflow")
	})

	t.Run("clear unlinks the record", func(t *testing.T) {
		mockRepo := &mock.ProfileRepositoryMock{
			DeleteInstallationFunc: func(ctx context.Context, userID types.PlatformUserID) error {
				gt.V(t, userID).Equal(types.PlatformUserID("user-1"))
				return nil
			},
		}
		provider := gt.R1(server.NewPlatformSessionProvider(testPlatformSecret, mockRepo)).NoError(t)

		req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
		req.Header.Set("Authorization", "Bearer "+platformToken(t, testPlatformSecret, "user-1"))
		rec := httptest.NewRecorder()

		gt.NoError(t, provider.Clear(rec, req))
		gt.V(t, len(mockRepo.DeleteInstallationCalls())).Equal(1)
	})
}
