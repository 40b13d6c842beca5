package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the fixed shape of every error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(&ErrorResponse{
		Error: msg,
	})
}
