package domain

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/Noor881/contentforge-ai-sub001/internal/security/domain AccountRepository
//go:generate mockgen -destination=../../mocks/mock_activity_repository.go -package=mocks github.com/Noor881/contentforge-ai-sub001/internal/security/domain ActivityRepository

import "context"

type AccountRepository interface {
	// GetByID returns nil, nil when no account matches.
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByFingerprintHash(ctx context.Context, hash string) ([]Account, error)
	CountBySignupIP(ctx context.Context, ip string) (int, error)
	// HasBlockedAccountForIP reports whether any blocked account uses the IP
	// as its signup or last-seen address.
	HasBlockedAccountForIP(ctx context.Context, ip string) (bool, error)
	// SaveFingerprint sets the account's current hash and appends a history
	// row in one transaction. The history is additive, never overwritten.
	SaveFingerprint(ctx context.Context, accountID, hash string) error
	UpdateRiskStatus(ctx context.Context, accountID string, score int, flagReason string) error
	Block(ctx context.Context, accountID, reason string) error
	Unblock(ctx context.Context, accountID string) error
	ClearFlags(ctx context.Context, accountID string) error
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity *SuspiciousActivity) error
	List(ctx context.Context, limit int) ([]SuspiciousActivity, error)
	Purge(ctx context.Context) (int64, error)
}
