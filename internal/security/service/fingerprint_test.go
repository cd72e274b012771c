package service_test

import (
	"context"
	"testing"

	apperrors "github.com/Noor881/contentforge-ai-sub001/internal/errors"
	"github.com/Noor881/contentforge-ai-sub001/internal/mocks"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecurityService(ctrl *gomock.Controller) (*service.SecurityService, *mocks.MockAccountRepository, *mocks.MockActivityRepository) {
	mockAccounts := mocks.NewMockAccountRepository(ctrl)
	mockActivities := mocks.NewMockActivityRepository(ctrl)
	activityService := service.NewActivityService(mockAccounts, mockActivities)
	securityService := service.NewSecurityService(mockAccounts, activityService, nil)

	return securityService, mockAccounts, mockActivities
}

func TestGetFingerprintHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockAccounts, _ := newSecurityService(ctrl)
	ctx := context.Background()
	hash := service.HashFingerprint("shared-device")

	t.Run("no accounts", func(t *testing.T) {
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return(nil, nil)

		history, err := s.GetFingerprintHistory(ctx, "shared-device")
		require.NoError(t, err)
		assert.False(t, history.Exists)
		assert.Zero(t, history.AccountCount)
		assert.Empty(t, history.AccountIDs)
	})

	t.Run("multiple accounts share the hash", func(t *testing.T) {
		mockAccounts.EXPECT().GetByFingerprintHash(gomock.Any(), hash).Return([]domain.Account{
			{ID: "acc-1", FingerprintHash: hash},
			{ID: "acc-2", FingerprintHash: hash},
		}, nil)

		history, err := s.GetFingerprintHistory(ctx, "shared-device")
		require.NoError(t, err)
		assert.True(t, history.Exists)
		assert.Equal(t, 2, history.AccountCount)
		assert.Equal(t, []string{"acc-1", "acc-2"}, history.AccountIDs)
	})
}

func TestStoreFingerprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockAccounts, _ := newSecurityService(ctrl)
	ctx := context.Background()
	hash := service.HashFingerprint("device-xyz")
	account := &domain.Account{ID: "acc-1"}

	t.Run("stores hash and history entry", func(t *testing.T) {
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil)
		mockAccounts.EXPECT().SaveFingerprint(gomock.Any(), "acc-1", hash).Return(nil)

		err := s.StoreFingerprint(ctx, "acc-1", "device-xyz")
		assert.NoError(t, err)
	})

	t.Run("repeated store appends again with the same hash", func(t *testing.T) {
		// History is additive: the second call writes a second entry, but
		// the current hash it sets is identical to the first.
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(account, nil).Times(2)
		mockAccounts.EXPECT().SaveFingerprint(gomock.Any(), "acc-1", hash).Return(nil).Times(2)

		require.NoError(t, s.StoreFingerprint(ctx, "acc-1", "device-xyz"))
		require.NoError(t, s.StoreFingerprint(ctx, "acc-1", "device-xyz"))
	})

	t.Run("unknown account", func(t *testing.T) {
		mockAccounts.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		err := s.StoreFingerprint(ctx, "missing", "device-xyz")
		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	})

	t.Run("blocked account takes no new captures", func(t *testing.T) {
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-blocked").Return(&domain.Account{ID: "acc-blocked", IsBlocked: true}, nil)

		err := s.StoreFingerprint(ctx, "acc-blocked", "device-xyz")
		assert.ErrorIs(t, err, apperrors.ErrAccountBlocked)
	})
}

func TestValidateFingerprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockAccounts, _ := newSecurityService(ctrl)
	ctx := context.Background()
	hash := service.HashFingerprint("device-xyz")

	t.Run("matching fingerprint", func(t *testing.T) {
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1", FingerprintHash: hash}, nil)

		ok, err := s.ValidateFingerprint(ctx, "acc-1", "device-xyz")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("different device", func(t *testing.T) {
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1", FingerprintHash: hash}, nil)

		ok, err := s.ValidateFingerprint(ctx, "acc-1", "another-device")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no stored fingerprint", func(t *testing.T) {
		mockAccounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)

		ok, err := s.ValidateFingerprint(ctx, "acc-1", "device-xyz")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
