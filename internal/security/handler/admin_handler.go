package handler

import (
	"errors"
	"strings"

	apperrors "github.com/Noor881/contentforge-ai-sub001/internal/errors"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/dto"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the operator surface: audit trail review/purge and
// the manual trust-state downgrades (unblock, unflag). All downgrades go
// through here; the engine never unflags on its own.
type AdminHandler struct {
	securityService *service.SecurityService
	activityService *service.ActivityService
	tokenVerifier   service.TokenVerifier
}

func NewAdminHandler(securityService *service.SecurityService, activityService *service.ActivityService, tokenVerifier service.TokenVerifier) *AdminHandler {
	return &AdminHandler{
		securityService: securityService,
		activityService: activityService,
		tokenVerifier:   tokenVerifier,
	}
}

// RequireRole guards admin routes with a bearer token role check.
func (h *AdminHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		claims, err := h.tokenVerifier.VerifyAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
		}

		return c.Next()
	}
}

func (h *AdminHandler) ListActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	activities, err := h.activityService.Recent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load activity"})
	}

	out := make([]dto.ActivityOutput, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ActivityOutput{
			ID:              a.ID,
			AccountID:       a.AccountID,
			FingerprintHash: a.FingerprintHash,
			IPAddress:       a.IPAddress,
			ActivityType:    a.ActivityType,
			RiskScore:       a.RiskScore,
			Details:         a.Details,
			CreatedAt:       a.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"activities": out})
}

func (h *AdminHandler) PurgeActivity(c *fiber.Ctx) error {
	purged, err := h.activityService.Purge(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to purge activity"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"purged": purged})
}

func (h *AdminHandler) UnblockAccount(c *fiber.Ctx) error {
	if err := h.securityService.UnblockAccount(c.Context(), c.Params("id")); err != nil {
		return adminErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unblocked": true})
}

func (h *AdminHandler) ClearFlags(c *fiber.Ctx) error {
	if err := h.securityService.ClearAccountFlags(c.Context(), c.Params("id")); err != nil {
		return adminErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"cleared": true})
}

func adminErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "admin operation failed"})
}
