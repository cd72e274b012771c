package service

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Noor881/contentforge-ai-sub001/config"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
)

// SecurityService owns the fraud/abuse evaluation pipeline: fingerprint
// directory, IP ledger, VPN-switch detection, risk scoring and the two
// decision gates. It is constructed once with its dependencies and holds no
// mutable state between requests.
type SecurityService struct {
	accounts        domain.AccountRepository
	activity        *ActivityService
	maxSignupsPerIP int
}

func NewSecurityService(accounts domain.AccountRepository, activity *ActivityService, cfg *config.Config) *SecurityService {
	maxSignups := constant.DefaultMaxSignupsPerIP
	if cfg != nil && cfg.MaxAccountsPerIP > 0 {
		maxSignups = cfg.MaxAccountsPerIP
	}

	return &SecurityService{
		accounts:        accounts,
		activity:        activity,
		maxSignupsPerIP: maxSignups,
	}
}

// HashFingerprint derives the one-way lookup key for a raw client
// fingerprint. Deterministic, unkeyed; empty input hashes like any other
// string.
func HashFingerprint(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
