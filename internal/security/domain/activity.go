package domain

import "time"

// Activity types recorded by the suspicious-activity log. The literals are
// part of the audit data contract; operator tooling filters on them.
const (
	ActivitySignupBlocked  = "SIGNUP_BLOCKED"
	ActivityVPNSwitching   = "VPN_SWITCHING"
	ActivityAccountFlagged = "ACCOUNT_FLAGGED"
)

// SuspiciousActivity is an immutable audit entry. AccountID is nil for
// events that precede account creation, e.g. a blocked signup.
type SuspiciousActivity struct {
	ID              string
	AccountID       *string
	FingerprintHash string
	IPAddress       string
	ActivityType    string
	RiskScore       int
	Details         any // one of the *Details payloads below
	CreatedAt       time.Time
}

// SignupBlockedDetails is attached to SIGNUP_BLOCKED records.
type SignupBlockedDetails struct {
	Reason       string `json:"reason"`
	AccountCount int    `json:"accountCount,omitempty"`
	IPCount      int    `json:"ipCount,omitempty"`
}

// VPNSwitchingDetails is attached to VPN_SWITCHING records.
type VPNSwitchingDetails struct {
	IPCount int      `json:"ipCount"`
	IPs     []string `json:"ips,omitempty"`
	Details string   `json:"details"`
}

// AccountFlaggedDetails is attached to ACCOUNT_FLAGGED records.
type AccountFlaggedDetails struct {
	Flags  []string `json:"flags"`
	Score  int      `json:"score"`
	Reason string   `json:"reason"`
}
