package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *SecurityHandler, adminHandler *AdminHandler) {
	app.Post("/api/v1/security/check", h.Check)
	app.Post("/api/v1/security/signup-check", h.SignupCheck)
	app.Post("/api/v1/security/account/:id/scan", h.ScanAccount)

	// Admin-only endpoints
	admin := app.Group("/api/v1/admin", adminHandler.RequireRole("admin"))
	admin.Get("/activity", adminHandler.ListActivity)
	admin.Delete("/activity", adminHandler.PurgeActivity)
	admin.Post("/account/:id/unblock", adminHandler.UnblockAccount)
	admin.Post("/account/:id/unflag", adminHandler.ClearFlags)
}
