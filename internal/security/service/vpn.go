package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
)

// DetectVPNSwitching collects the distinct IPs (signup and last-seen)
// across every account sharing the fingerprint's hash, adds the current IP,
// and flags the device once the union reaches the switching threshold.
// One device changing networks occasionally is normal; three or more
// distinct addresses over its account history indicates proxy/VPN rotation
// used to defeat per-IP limits.
func (s *SecurityService) DetectVPNSwitching(ctx context.Context, rawFingerprint, currentIP string) (*dto.VPNCheckResult, error) {
	hash := HashFingerprint(rawFingerprint)

	accounts, err := s.accounts.GetByFingerprintHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to collect ip history for fingerprint: %w", err)
	}

	seen := make(map[string]struct{})
	for _, account := range accounts {
		if account.SignupIP != "" {
			seen[account.SignupIP] = struct{}{}
		}
		if account.LastIP != "" {
			seen[account.LastIP] = struct{}{}
		}
	}
	if currentIP != "" {
		seen[currentIP] = struct{}{}
	}

	ips := make([]string, 0, len(seen))
	for ip := range seen {
		ips = append(ips, ip)
	}
	sort.Strings(ips)

	result := &dto.VPNCheckResult{
		IsSuspicious: len(ips) >= constant.VPNSwitchIPThreshold,
		IPCount:      len(ips),
		IPs:          ips,
		Details:      fmt.Sprintf("device observed across %d distinct IP addresses", len(ips)),
	}

	return result, nil
}
