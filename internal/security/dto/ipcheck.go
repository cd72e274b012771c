package dto

// IPCheckResult is the per-IP signup-limit verdict. A deny is a successful
// evaluation, not an error; Reason is always set when Allowed is false.
type IPCheckResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
