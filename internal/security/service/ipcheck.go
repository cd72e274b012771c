package service

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
)

// IsIPBlocked reports whether any blocked account used this IP as its
// signup or last-seen address. A block on one account taints the network it
// came from, making re-registration from the same address harder.
func (s *SecurityService) IsIPBlocked(ctx context.Context, ip string) (bool, error) {
	return s.accounts.HasBlockedAccountForIP(ctx, ip)
}

// CheckSignupLimit enforces the all-time per-IP registration cap. Private,
// loopback and unspecified addresses are exempt unconditionally; they carry
// no abuse signal.
func (s *SecurityService) CheckSignupLimit(ctx context.Context, ip string) (*dto.IPCheckResult, error) {
	if isExemptIP(ip) {
		return &dto.IPCheckResult{Allowed: true}, nil
	}

	blocked, err := s.IsIPBlocked(ctx, ip)
	if err != nil {
		return nil, fmt.Errorf("failed to check ip block status: %w", err)
	}
	if blocked {
		return &dto.IPCheckResult{
			Allowed: false,
			Reason:  "signups from this network are not permitted due to a previous policy violation",
		}, nil
	}

	count, err := s.accounts.CountBySignupIP(ctx, ip)
	if err != nil {
		return nil, fmt.Errorf("failed to count signups for ip: %w", err)
	}
	if count >= s.maxSignupsPerIP {
		return &dto.IPCheckResult{
			Allowed: false,
			Reason:  fmt.Sprintf("registration limit reached for this network (max %d accounts)", s.maxSignupsPerIP),
		}, nil
	}

	return &dto.IPCheckResult{Allowed: true}, nil
}

func isExemptIP(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		// Unresolvable addresses carry no usable signal.
		return true
	}

	return addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() || addr.IsLinkLocalUnicast()
}
