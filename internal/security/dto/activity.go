package dto

import "time"

type ActivityOutput struct {
	ID              string    `json:"id"`
	AccountID       *string   `json:"account_id"`
	FingerprintHash string    `json:"fingerprint_hash"`
	IPAddress       string    `json:"ip_address"`
	ActivityType    string    `json:"activity_type"`
	RiskScore       int       `json:"risk_score"`
	Details         any       `json:"details"`
	CreatedAt       time.Time `json:"created_at"`
}
