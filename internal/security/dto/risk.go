package dto

// RiskAssessment is the full behavioral score for an existing account.
// Score is clamped to [0,100]; Details keeps the raw values behind each
// contributing signal so nothing is lost in the aggregate number.
type RiskAssessment struct {
	Score   int         `json:"score"`
	Flags   []string    `json:"flags"`
	Details RiskDetails `json:"details"`
}

type RiskDetails struct {
	GenerationCount   int    `json:"generationCount,omitempty"`
	GenerationLimit   int    `json:"generationLimit,omitempty"`
	RecentSignups     int    `json:"recentSignups,omitempty"`
	SignupIP          string `json:"signupIp,omitempty"`
	LastIP            string `json:"lastIp,omitempty"`
	DuplicateAccounts int    `json:"duplicateAccounts,omitempty"`
}

// AutoBlockVerdict is the auto-block gate output.
type AutoBlockVerdict struct {
	ShouldBlock bool   `json:"should_block"`
	Reason      string `json:"reason,omitempty"`
}
