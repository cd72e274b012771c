package constant

import "time"

// Risk signal weights. The scorer is additive: every triggered signal
// contributes its weight, and the sum is clamped to MaxRiskScore. A sibling
// account created inside the rapid-resignup window contributes to both the
// rapid and duplicate signals; recency stacks on top of raw duplication.
const (
	ScoreQuotaExhausted  = 25
	ScoreRapidResignup   = 25
	ScoreIPDivergence    = 20
	ScoreDuplicateDevice = 30
	ScoreVPNSwitching    = 25

	MaxRiskScore = 100
)

// Decision thresholds. The admission gate runs against the fingerprint-only
// evaluation; the auto-block gate runs against the full behavioral score.
// They are intentionally separate computations.
const (
	AdmissionRiskThreshold = 60
	AutoBlockRiskThreshold = 70
)

const (
	// VPNSwitchIPThreshold is the number of distinct IPs across a
	// fingerprint's account history (current IP included) at which the
	// device is treated as rotating through proxies/VPNs.
	VPNSwitchIPThreshold = 3

	// DefaultMaxSignupsPerIP caps all-time registrations from a single
	// public IP. Overridable via config.
	DefaultMaxSignupsPerIP = 50

	// FreeTierGenerationLimit is the lifetime generation cap for free
	// accounts; reaching it contributes the quota-exhaustion signal.
	FreeTierGenerationLimit = 5

	// RapidResignupWindow bounds the trailing window for the
	// rapid-resignup signal.
	RapidResignupWindow = 24 * time.Hour
)

// Risk flag names. These appear verbatim in activity records and operator
// tooling; renaming them breaks audit queries.
const (
	FlagQuotaExhausted  = "QUOTA_EXHAUSTED"
	FlagRapidResignup   = "RAPID_RESIGNUP"
	FlagIPDivergence    = "IP_DIVERGENCE"
	FlagDuplicateDevice = "DUPLICATE_DEVICE"
	FlagVPNSwitching    = "VPN_SWITCHING"
)

const (
	// UnknownFingerprint is the sentinel stored on activity records when
	// no account or fingerprint is available (e.g. a blocked signup).
	UnknownFingerprint = "unknown"

	// FallbackIP is recorded when the request layer cannot resolve a
	// client address.
	FallbackIP = "0.0.0.0"
)

const (
	TierFree = "free"
	TierPro  = "pro"
)
