package handler

import (
	"errors"

	apperrors "github.com/Noor881/contentforge-ai-sub001/internal/errors"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/Noor881/contentforge-ai-sub001/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type SecurityHandler struct {
	securityService *service.SecurityService
}

func NewSecurityHandler(securityService *service.SecurityService) *SecurityHandler {
	return &SecurityHandler{securityService: securityService}
}

// clientIP resolves the caller's address, trusting fiber's proxy handling,
// with the 0.0.0.0 sentinel when nothing is available.
func clientIP(c *fiber.Ctx) string {
	if ip := c.IP(); ip != "" {
		return ip
	}
	return constant.FallbackIP
}

// Check handles the combined security evaluation: fingerprint admission,
// plus the behavioral scan when an account id is supplied.
func (h *SecurityHandler) Check(c *fiber.Ctx) error {
	var input dto.SecurityCheckInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	input.IPAddress = clientIP(c)

	result, err := h.securityService.Check(c.Context(), input)
	if err != nil {
		return securityErrorResponse(c, err)
	}

	if !result.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(result)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// SignupCheck runs the pre-registration security check. Denials are logged
// as SIGNUP_BLOCKED and returned with the specific reason so the signup
// flow can render an actionable message.
func (h *SecurityHandler) SignupCheck(c *fiber.Ctx) error {
	var input dto.SecurityCheckInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	result, err := h.securityService.CheckSignup(c.Context(), input.Fingerprint, clientIP(c))
	if err != nil {
		return securityErrorResponse(c, err)
	}

	if !result.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(result)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ScanAccount runs the post-signup abuse scan for a freshly created
// account. An auto-block is applied and logged before the response goes
// out; the caller only sees the generic review message.
func (h *SecurityHandler) ScanAccount(c *fiber.Ctx) error {
	accountID := c.Params("id")

	assessment, verdict, err := h.securityService.ScanAccount(c.Context(), accountID, clientIP(c))
	if err != nil && !errors.Is(err, apperrors.ErrActivityLogFailed) {
		return securityErrorResponse(c, err)
	}

	if verdict.ShouldBlock {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"allowed":    false,
			"reason":     service.GenericBlockMessage,
			"risk_score": assessment.Score,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"allowed":    true,
		"risk_score": assessment.Score,
		"flags":      assessment.Flags,
	})
}

func securityErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrFingerprintRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "security check failed"})
	}
}
