package handler

import "github.com/gofiber/fiber/v3"

// Health is the liveness probe.
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
