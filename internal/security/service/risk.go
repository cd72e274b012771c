package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	apperrors "github.com/Noor881/contentforge-ai-sub001/internal/errors"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
)

// GenericBlockMessage is what end users see when the auto-block gate fires.
// The triggering signal is deliberately withheld so abusers are not coached
// on how to evade it; the full detail stays in the activity log.
const GenericBlockMessage = "your account has been flagged for review, please contact support"

// ScoreAccount computes the full behavioral risk score for an existing
// account: four additive signals, summed and clamped to 100. Each signal's
// raw inputs are preserved in Details.
func (s *SecurityService) ScoreAccount(ctx context.Context, accountID string) (*dto.RiskAssessment, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}

	return s.scoreAccount(ctx, account)
}

func (s *SecurityService) scoreAccount(ctx context.Context, account *domain.Account) (*dto.RiskAssessment, error) {
	assessment := &dto.RiskAssessment{Flags: []string{}}
	score := 0

	// Quota exhaustion: a free account that burned through its lifetime
	// generation cap looks like a disposable trial instance.
	if account.Tier == constant.TierFree && account.GenerationCount >= constant.FreeTierGenerationLimit {
		score += constant.ScoreQuotaExhausted
		assessment.Flags = append(assessment.Flags, constant.FlagQuotaExhausted)
		assessment.Details.GenerationCount = account.GenerationCount
		assessment.Details.GenerationLimit = constant.FreeTierGenerationLimit
	}

	if account.FingerprintHash != "" {
		shared, err := s.accounts.GetByFingerprintHash(ctx, account.FingerprintHash)
		if err != nil {
			return nil, fmt.Errorf("failed to load sibling accounts: %w", err)
		}

		siblings := 0
		recent := 0
		cutoff := time.Now().Add(-constant.RapidResignupWindow)
		for _, other := range shared {
			if other.ID == account.ID {
				continue
			}
			siblings++
			if other.CreatedAt.After(cutoff) {
				recent++
			}
		}

		// A sibling created inside the window contributes to both signals;
		// recency stacks on top of raw duplication.
		if recent > 0 {
			score += constant.ScoreRapidResignup * recent
			assessment.Flags = append(assessment.Flags, constant.FlagRapidResignup)
			assessment.Details.RecentSignups = recent
		}
		if siblings > 0 {
			score += constant.ScoreDuplicateDevice * siblings
			assessment.Flags = append(assessment.Flags, constant.FlagDuplicateDevice)
			assessment.Details.DuplicateAccounts = siblings
		}
	}

	// IP divergence: a coarse single-bit version of the VPN-switch signal,
	// computable without cross-account queries.
	if account.SignupIP != "" && account.LastIP != "" && account.SignupIP != account.LastIP {
		score += constant.ScoreIPDivergence
		assessment.Flags = append(assessment.Flags, constant.FlagIPDivergence)
		assessment.Details.SignupIP = account.SignupIP
		assessment.Details.LastIP = account.LastIP
	}

	if score > constant.MaxRiskScore {
		score = constant.MaxRiskScore
	}
	assessment.Score = score

	return assessment, nil
}

// EvaluateFingerprint is the admission gate: fingerprint-only signals,
// usable before an account exists. Risk accrues from device fan-out and
// VPN switching; denial reasons prefer the duplicate-device explanation
// when both apply.
func (s *SecurityService) EvaluateFingerprint(ctx context.Context, rawFingerprint, currentIP string) (*dto.FingerprintEvaluation, error) {
	if rawFingerprint == "" {
		return nil, apperrors.ErrFingerprintRequired
	}

	history, err := s.GetFingerprintHistory(ctx, rawFingerprint)
	if err != nil {
		return nil, err
	}

	vpn, err := s.DetectVPNSwitching(ctx, rawFingerprint, currentIP)
	if err != nil {
		return nil, err
	}

	risk := history.AccountCount * constant.ScoreDuplicateDevice
	if vpn.IsSuspicious {
		risk += constant.ScoreVPNSwitching

		// Best-effort audit trail; a log failure must not turn an
		// evaluation into an error here.
		logErr := s.activity.Log(ctx, nil, domain.ActivityVPNSwitching, currentIP, risk, domain.VPNSwitchingDetails{
			IPCount: vpn.IPCount,
			IPs:     vpn.IPs,
			Details: vpn.Details,
		})
		if logErr != nil {
			log.Printf("WARN: failed to record VPN_SWITCHING activity: %v", logErr)
		}
	}

	eval := &dto.FingerprintEvaluation{
		RiskScore:    risk,
		Allowed:      risk < constant.AdmissionRiskThreshold,
		AccountCount: history.AccountCount,
		VPN:          vpn,
	}

	if !eval.Allowed {
		switch {
		case history.AccountCount >= 2:
			eval.Reason = fmt.Sprintf("this device is already associated with %d existing accounts", history.AccountCount)
		case vpn.IsSuspicious:
			eval.Reason = "suspicious network switching detected for this device"
		default:
			eval.Reason = "device failed the registration security check"
		}
	}

	return eval, nil
}

// ShouldAutoBlock is the post-signup gate over the full behavioral score.
// The reason string names every triggered flag for operator review.
func (s *SecurityService) ShouldAutoBlock(assessment *dto.RiskAssessment) dto.AutoBlockVerdict {
	if assessment == nil || assessment.Score < constant.AutoBlockRiskThreshold {
		return dto.AutoBlockVerdict{}
	}

	return dto.AutoBlockVerdict{
		ShouldBlock: true,
		Reason: fmt.Sprintf("automatic block at risk score %d (flags: %s)",
			assessment.Score, strings.Join(assessment.Flags, ", ")),
	}
}

// ApplyAutoBlock sets the account's blocked state and writes the
// ACCOUNT_FLAGGED record as one logical unit. If the audit write fails
// after the block took effect, the failure is surfaced as
// ErrActivityLogFailed rather than silently dropped; the block itself is
// never rolled back.
func (s *SecurityService) ApplyAutoBlock(ctx context.Context, accountID, ip string, assessment *dto.RiskAssessment, reason string) error {
	if err := s.accounts.Block(ctx, accountID, reason); err != nil {
		return fmt.Errorf("failed to block account %s: %w", accountID, err)
	}

	logErr := s.activity.Log(ctx, &accountID, domain.ActivityAccountFlagged, ip, assessment.Score, domain.AccountFlaggedDetails{
		Flags:  assessment.Flags,
		Score:  assessment.Score,
		Reason: reason,
	})
	if logErr != nil {
		log.Printf("ALERT: account %s blocked but ACCOUNT_FLAGGED record not written: %v", accountID, logErr)
		return fmt.Errorf("%w: %v", apperrors.ErrActivityLogFailed, logErr)
	}

	return nil
}

// ScanAccount runs the post-signup abuse scan: score the account, persist
// the risk status (flagging at the admission threshold), and apply the
// auto-block gate.
func (s *SecurityService) ScanAccount(ctx context.Context, accountID, ip string) (*dto.RiskAssessment, dto.AutoBlockVerdict, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, dto.AutoBlockVerdict{}, err
	}
	if account == nil {
		return nil, dto.AutoBlockVerdict{}, apperrors.ErrAccountNotFound
	}

	assessment, err := s.scoreAccount(ctx, account)
	if err != nil {
		return nil, dto.AutoBlockVerdict{}, err
	}

	if account.IsBlocked {
		reason := GenericBlockMessage
		if account.BlockReason != nil {
			reason = *account.BlockReason
		}
		return assessment, dto.AutoBlockVerdict{ShouldBlock: true, Reason: reason}, nil
	}

	// Flags only come off through the admin surface; a low re-score
	// carries an existing flag forward instead of clearing it.
	flagReason := ""
	switch {
	case assessment.Score >= constant.AdmissionRiskThreshold:
		flagReason = fmt.Sprintf("risk flags: %s", strings.Join(assessment.Flags, ", "))
	case account.IsFlagged && account.FlagReason != nil:
		flagReason = *account.FlagReason
	}
	if err := s.accounts.UpdateRiskStatus(ctx, accountID, assessment.Score, flagReason); err != nil {
		return nil, dto.AutoBlockVerdict{}, err
	}

	verdict := s.ShouldAutoBlock(assessment)
	if verdict.ShouldBlock {
		if err := s.ApplyAutoBlock(ctx, accountID, ip, assessment, verdict.Reason); err != nil {
			return assessment, verdict, err
		}
	}

	return assessment, verdict, nil
}

// Check is the combined security evaluation: fingerprint admission always,
// plus the behavioral scan when an account is identified. The more
// restrictive of the two outcomes wins.
func (s *SecurityService) Check(ctx context.Context, input dto.SecurityCheckInput) (*dto.SecurityCheckOutput, error) {
	eval, err := s.EvaluateFingerprint(ctx, input.Fingerprint, input.IPAddress)
	if err != nil {
		return nil, err
	}

	out := &dto.SecurityCheckOutput{
		Allowed:     eval.Allowed,
		Reason:      eval.Reason,
		RiskScore:   eval.RiskScore,
		Fingerprint: eval,
	}

	if input.AccountID == "" {
		return out, nil
	}

	// A failed audit write does not undo an applied block; the denial
	// still goes out to the caller.
	assessment, verdict, err := s.ScanAccount(ctx, input.AccountID, input.IPAddress)
	if err != nil && !errors.Is(err, apperrors.ErrActivityLogFailed) {
		return nil, err
	}

	out.Behavioral = assessment
	if assessment.Score > out.RiskScore {
		out.RiskScore = assessment.Score
	}
	if verdict.ShouldBlock {
		out.Allowed = false
		out.Reason = GenericBlockMessage
	}

	return out, nil
}

// CheckSignup is the signup-time security check, invoked before account
// creation. Denials emit a SIGNUP_BLOCKED record with no account ID.
func (s *SecurityService) CheckSignup(ctx context.Context, rawFingerprint, ip string) (*dto.SecurityCheckOutput, error) {
	if rawFingerprint == "" {
		return nil, apperrors.ErrFingerprintRequired
	}

	ipResult, err := s.CheckSignupLimit(ctx, ip)
	if err != nil {
		return nil, err
	}
	if !ipResult.Allowed {
		s.logSignupBlocked(ctx, ip, 0, domain.SignupBlockedDetails{Reason: ipResult.Reason})
		return &dto.SecurityCheckOutput{Allowed: false, Reason: ipResult.Reason}, nil
	}

	eval, err := s.EvaluateFingerprint(ctx, rawFingerprint, ip)
	if err != nil {
		return nil, err
	}

	out := &dto.SecurityCheckOutput{
		Allowed:     eval.Allowed,
		Reason:      eval.Reason,
		RiskScore:   eval.RiskScore,
		Fingerprint: eval,
	}
	if !eval.Allowed {
		s.logSignupBlocked(ctx, ip, eval.RiskScore, domain.SignupBlockedDetails{
			Reason:       eval.Reason,
			AccountCount: eval.AccountCount,
			IPCount:      eval.VPN.IPCount,
		})
	}

	return out, nil
}

func (s *SecurityService) logSignupBlocked(ctx context.Context, ip string, score int, details domain.SignupBlockedDetails) {
	if err := s.activity.Log(ctx, nil, domain.ActivitySignupBlocked, ip, score, details); err != nil {
		log.Printf("WARN: failed to record SIGNUP_BLOCKED activity: %v", err)
	}
}

// UnblockAccount is the admin-only downgrade path; it clears the block and
// resets the risk score. There is no automatic equivalent.
func (s *SecurityService) UnblockAccount(ctx context.Context, accountID string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.ErrAccountNotFound
	}

	return s.accounts.Unblock(ctx, accountID)
}

// ClearAccountFlags removes manual or automatic flags and resets the risk
// score. Admin-only.
func (s *SecurityService) ClearAccountFlags(ctx context.Context, accountID string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.ErrAccountNotFound
	}

	return s.accounts.ClearFlags(ctx, accountID)
}
