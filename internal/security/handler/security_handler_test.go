package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Noor881/contentforge-ai-sub001/internal/mocks"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/handler"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDevice = "canvas:ff|webgl:aa"

func newTestApp(ctrl *gomock.Controller) (*fiber.App, *mocks.MockAccountRepository, *mocks.MockActivityRepository) {
	mockAccounts := mocks.NewMockAccountRepository(ctrl)
	mockActivities := mocks.NewMockActivityRepository(ctrl)
	activityService := service.NewActivityService(mockAccounts, mockActivities)
	securityService := service.NewSecurityService(mockAccounts, activityService, nil)
	securityHandler := handler.NewSecurityHandler(securityService)

	app := fiber.New()
	app.Post("/security/check", securityHandler.Check)
	app.Post("/security/signup-check", securityHandler.SignupCheck)
	app.Post("/security/account/:id/scan", securityHandler.ScanAccount)

	return app, mockAccounts, mockActivities
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSignupCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAccounts, mockActivities := newTestApp(ctrl)
	hash := service.HashFingerprint(testDevice)

	t.Run("allowed", func(t *testing.T) {
		// app.Test requests resolve to an unspecified client IP, so the
		// per-IP ledger is exempt and only the fingerprint path runs.
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return(nil, nil).Times(2)

		resp := postJSON(t, app, "/security/signup-check", dto.SecurityCheckInput{Fingerprint: testDevice})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("device reuse denied and logged", func(t *testing.T) {
		shared := []domain.Account{
			{ID: "acc-1", SignupIP: "198.51.100.1", LastIP: "198.51.100.1"},
			{ID: "acc-2", SignupIP: "198.51.100.1", LastIP: "198.51.100.1"},
		}
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return(shared, nil).Times(2)
		mockActivities.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, activity *domain.SuspiciousActivity) error {
				assert.Equal(t, domain.ActivitySignupBlocked, activity.ActivityType)
				assert.Nil(t, activity.AccountID)
				return nil
			})

		resp := postJSON(t, app, "/security/signup-check", dto.SecurityCheckInput{Fingerprint: testDevice})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing fingerprint", func(t *testing.T) {
		resp := postJSON(t, app, "/security/signup-check", dto.SecurityCheckInput{})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/security/signup-check", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAccounts, mockActivities := newTestApp(ctrl)
	hash := service.HashFingerprint(testDevice)

	t.Run("fingerprint only allowed", func(t *testing.T) {
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return(nil, nil).Times(2)

		resp := postJSON(t, app, "/security/check", dto.SecurityCheckInput{Fingerprint: testDevice})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return(nil, nil).Times(2)
		mockAccounts.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

		resp := postJSON(t, app, "/security/check", dto.SecurityCheckInput{Fingerprint: testDevice, AccountID: "ghost"})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("behavioral auto-block returns 403", func(t *testing.T) {
		account := &domain.Account{
			ID:              "acc-1",
			FingerprintHash: hash,
			SignupIP:        "198.51.100.1",
			LastIP:          "198.51.100.1",
			Tier:            constant.TierFree,
			GenerationCount: constant.FreeTierGenerationLimit,
		}
		siblings := []domain.Account{
			*account,
			{ID: "acc-2", FingerprintHash: hash, CreatedAt: time.Now().Add(-time.Hour)},
		}

		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return(siblings, nil).Times(3)
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil).Times(2)
		mockAccounts.EXPECT().UpdateRiskStatus(gomock.Any(), "acc-1", 80, gomock.Any()).Return(nil)
		mockAccounts.EXPECT().Block(gomock.Any(), "acc-1", gomock.Any()).Return(nil)
		mockActivities.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		resp := postJSON(t, app, "/security/check", dto.SecurityCheckInput{Fingerprint: testDevice, AccountID: "acc-1"})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestScanAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAccounts, _ := newTestApp(ctrl)
	hash := service.HashFingerprint(testDevice)

	t.Run("low risk passes", func(t *testing.T) {
		account := &domain.Account{
			ID:              "acc-1",
			FingerprintHash: hash,
			SignupIP:        "198.51.100.1",
			LastIP:          "198.51.100.1",
		}
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return([]domain.Account{*account}, nil)
		mockAccounts.EXPECT().UpdateRiskStatus(gomock.Any(), "acc-1", 0, "").Return(nil)

		req := httptest.NewRequest("POST", "/security/account/acc-1/scan", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("already blocked account returns 403", func(t *testing.T) {
		reason := "manual block"
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-2").Return(&domain.Account{
			ID:          "acc-2",
			IsBlocked:   true,
			BlockReason: &reason,
		}, nil)

		req := httptest.NewRequest("POST", "/security/account/acc-2/scan", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
