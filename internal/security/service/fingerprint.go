package service

import (
	"context"
	"fmt"

	apperrors "github.com/Noor881/contentforge-ai-sub001/internal/errors"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
)

// GetFingerprintHistory hashes the raw fingerprint and returns every
// account currently associated with that hash.
func (s *SecurityService) GetFingerprintHistory(ctx context.Context, rawFingerprint string) (*dto.FingerprintHistory, error) {
	hash := HashFingerprint(rawFingerprint)

	accounts, err := s.accounts.GetByFingerprintHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to look up fingerprint history: %w", err)
	}

	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	return &dto.FingerprintHistory{
		Exists:       len(accounts) > 0,
		AccountIDs:   ids,
		AccountCount: len(accounts),
	}, nil
}

// StoreFingerprint sets the account's current fingerprint hash and appends
// to its history log. The log is additive; repeated stores of the same
// fingerprint append repeated entries while the current hash stays put.
func (s *SecurityService) StoreFingerprint(ctx context.Context, accountID, rawFingerprint string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.ErrAccountNotFound
	}
	if account.IsBlocked {
		return apperrors.ErrAccountBlocked
	}

	return s.accounts.SaveFingerprint(ctx, accountID, HashFingerprint(rawFingerprint))
}

// ValidateFingerprint recomputes the hash and compares it against the
// account's stored current hash; used to confirm device continuity on
// sensitive actions.
func (s *SecurityService) ValidateFingerprint(ctx context.Context, accountID, rawFingerprint string) (bool, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, apperrors.ErrAccountNotFound
	}
	if account.FingerprintHash == "" {
		return false, nil
	}

	return account.FingerprintHash == HashFingerprint(rawFingerprint), nil
}
