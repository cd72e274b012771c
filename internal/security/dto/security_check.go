package dto

type SecurityCheckInput struct {
	Fingerprint string `json:"fingerprint"`
	AccountID   string `json:"account_id"`
	IPAddress   string `json:"-"`
}

type SecurityCheckOutput struct {
	Allowed     bool                   `json:"allowed"`
	Reason      string                 `json:"reason,omitempty"`
	RiskScore   int                    `json:"risk_score"`
	Fingerprint *FingerprintEvaluation `json:"fingerprint,omitempty"`
	Behavioral  *RiskAssessment        `json:"behavioral,omitempty"`
}
