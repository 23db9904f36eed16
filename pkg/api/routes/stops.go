package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/luas/pkg/ctdf"
	"github.com/travigo/luas/pkg/dataaggregator"
)

type stopResponse struct {
	ctdf.Stop

	Line   string `json:"line" groups:"basic"`
	MapURL string `json:"map_url" groups:"basic"`
}

func StopsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/:stop", func(c *fiber.Ctx) error {
		stop, line, err := aggregator.Stop(c.Params("stop"))
		if err != nil {
			return sendError(c, err)
		}

		return sendReduced(c, stopResponse{
			Stop:   *stop,
			Line:   line,
			MapURL: stop.MapURL(),
		})
	})

	router.Get("/:stop/status", func(c *fiber.Ctx) error {
		message, err := aggregator.Status(c.Params("stop"))
		if err != nil {
			return sendError(c, err)
		}

		return c.JSON(fiber.Map{
			"message": message,
		})
	})

	router.Get("/:stop/timetable", func(c *fiber.Ctx) error {
		timetable, err := aggregator.Timetable(c.Params("stop"))
		if err != nil {
			return sendError(c, err)
		}

		return sendReduced(c, timetable)
	})

	router.Get("/:stop/address", func(c *fiber.Ctx) error {
		address, err := aggregator.AddressOf(c.Params("stop"))
		if err != nil {
			return sendError(c, err)
		}

		return sendReduced(c, address)
	})
}
