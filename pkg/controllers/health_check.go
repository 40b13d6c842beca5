package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meetsync/meetsync-server/pkg/config"
)

type HealthCheckController struct {
	app *config.AppConfig
}

func NewHealthCheckController(app *config.AppConfig) *HealthCheckController {
	return &HealthCheckController{
		app: app,
	}
}

func (h *HealthCheckController) HandleHealthCheck(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}
