package dto

// FingerprintHistory summarizes how many existing accounts share a
// fingerprint hash.
type FingerprintHistory struct {
	Exists       bool     `json:"exists"`
	AccountIDs   []string `json:"account_ids"`
	AccountCount int      `json:"account_count"`
}

// FingerprintEvaluation is the admission-gate result computed from
// fingerprint-only signals, before or at account creation.
type FingerprintEvaluation struct {
	RiskScore    int             `json:"risk_score"`
	Allowed      bool            `json:"allowed"`
	Reason       string          `json:"reason,omitempty"`
	AccountCount int             `json:"account_count"`
	VPN          *VPNCheckResult `json:"vpn,omitempty"`
}

// VPNCheckResult reports device/IP fan-out for a fingerprint.
type VPNCheckResult struct {
	IsSuspicious bool     `json:"is_suspicious"`
	IPCount      int      `json:"ip_count"`
	IPs          []string `json:"ips,omitempty"`
	Details      string   `json:"details"`
}
