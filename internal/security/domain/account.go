package domain

import "time"

// Account is the subsystem's view of a user identity. Only the fields the
// risk engine reads or writes are modeled; profile/billing attributes live
// with their own services.
//
// Invariants maintained by the service layer:
//   - RiskScore stays within [0,100]
//   - IsBlocked implies a non-nil BlockReason
//   - IsFlagged implies a non-nil FlagReason
type Account struct {
	ID              string
	Email           string
	FingerprintHash string // current hash; empty when never captured
	SignupIP        string
	LastIP          string
	GenerationCount int // lifetime generations, never reset
	PeriodUsage     int
	Tier            string
	RiskScore       int
	IsFlagged       bool
	FlagReason      *string
	IsBlocked       bool
	BlockReason     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FingerprintRecord is one entry of an account's append-only fingerprint
// history. The history is never pruned; it preserves the full
// device-association trail for forensic review.
type FingerprintRecord struct {
	ID              string
	AccountID       string
	FingerprintHash string
	CreatedAt       time.Time
}
