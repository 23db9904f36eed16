package routes

import (
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
)

func errorStatus(err error) int {
	var locationNotFound *ctdf.LocationNotFoundError
	var netErr net.Error

	switch {
	case ctdf.IsNotFound(err), errors.As(err, &locationNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ctdf.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, ctdf.ErrUpstreamFormat), errors.As(err, &netErr):
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("Lookup failed")
	}

	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sendReduced(c *fiber.Ctx, data interface{}) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, data)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce response",
		})
	}

	return c.JSON(reduced)
}
