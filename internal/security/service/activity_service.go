package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
	"github.com/google/uuid"
)

// ActivityService appends immutable suspicious-activity records. Records
// are never updated; deletion happens only through the admin purge.
type ActivityService struct {
	accounts   domain.AccountRepository
	activities domain.ActivityRepository
}

func NewActivityService(accounts domain.AccountRepository, activities domain.ActivityRepository) *ActivityService {
	return &ActivityService{
		accounts:   accounts,
		activities: activities,
	}
}

// Log appends one audit record. accountID may be nil for events that
// precede account creation; the fingerprint hash then falls back to the
// "unknown" sentinel.
func (s *ActivityService) Log(ctx context.Context, accountID *string, activityType, ip string, riskScore int, details any) error {
	hash := constant.UnknownFingerprint
	if accountID != nil {
		account, err := s.accounts.GetByID(ctx, *accountID)
		if err != nil {
			return fmt.Errorf("failed to resolve account for activity log: %w", err)
		}
		if account != nil && account.FingerprintHash != "" {
			hash = account.FingerprintHash
		}
	}

	if ip == "" {
		ip = constant.FallbackIP
	}

	return s.activities.Insert(ctx, &domain.SuspiciousActivity{
		ID:              uuid.New().String(),
		AccountID:       accountID,
		FingerprintHash: hash,
		IPAddress:       ip,
		ActivityType:    activityType,
		RiskScore:       riskScore,
		Details:         details,
		CreatedAt:       time.Now(),
	})
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.SuspiciousActivity, error) {
	if limit <= 0 {
		limit = 100
	}

	return s.activities.List(ctx, limit)
}

func (s *ActivityService) Purge(ctx context.Context) (int64, error) {
	return s.activities.Purge(ctx)
}
