package service_test

import (
	"context"
	"testing"

	"github.com/Noor881/contentforge-ai-sub001/internal/mocks"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepository(ctrl)
	mockActivities := mocks.NewMockActivityRepository(ctrl)
	s := service.NewActivityService(mockAccounts, mockActivities)
	ctx := context.Background()

	t.Run("resolves fingerprint from account", func(t *testing.T) {
		accountID := "acc-1"
		mockAccounts.EXPECT().GetByID(gomock.Any(), accountID).Return(&domain.Account{
			ID:              accountID,
			FingerprintHash: "deadbeef",
		}, nil)
		mockActivities.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, activity *domain.SuspiciousActivity) error {
				assert.NotEmpty(t, activity.ID)
				assert.Equal(t, &accountID, activity.AccountID)
				assert.Equal(t, "deadbeef", activity.FingerprintHash)
				assert.Equal(t, domain.ActivityAccountFlagged, activity.ActivityType)
				assert.Equal(t, 85, activity.RiskScore)
				assert.False(t, activity.CreatedAt.IsZero())
				return nil
			})

		err := s.Log(ctx, &accountID, domain.ActivityAccountFlagged, "198.51.100.1", 85, nil)
		assert.NoError(t, err)
	})

	t.Run("no account uses unknown sentinel and fallback ip", func(t *testing.T) {
		mockActivities.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, activity *domain.SuspiciousActivity) error {
				assert.Nil(t, activity.AccountID)
				assert.Equal(t, constant.UnknownFingerprint, activity.FingerprintHash)
				assert.Equal(t, constant.FallbackIP, activity.IPAddress)
				return nil
			})

		err := s.Log(ctx, nil, domain.ActivitySignupBlocked, "", 0, domain.SignupBlockedDetails{Reason: "quota"})
		assert.NoError(t, err)
	})
}

func TestActivityRecent_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepository(ctrl)
	mockActivities := mocks.NewMockActivityRepository(ctrl)
	s := service.NewActivityService(mockAccounts, mockActivities)

	mockActivities.EXPECT().List(gomock.Any(), 100).Return([]domain.SuspiciousActivity{{ID: "a-1"}}, nil)

	activities, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestActivityPurge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountRepository(ctrl)
	mockActivities := mocks.NewMockActivityRepository(ctrl)
	s := service.NewActivityService(mockAccounts, mockActivities)

	mockActivities.EXPECT().Purge(gomock.Any()).Return(int64(7), nil)

	purged, err := s.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), purged)
}
