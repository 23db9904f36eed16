package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/luas/pkg/config"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": config.Version,
	})
}
