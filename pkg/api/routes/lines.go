package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/luas/pkg/dataaggregator"
)

func LinesRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		return sendReduced(c, aggregator.Lines())
	})

	router.Get("/:line/stops", func(c *fiber.Ctx) error {
		line := c.Params("line")

		if _, err := aggregator.LineName(line); err != nil {
			return sendError(c, err)
		}

		stops, err := aggregator.Stops(line)
		if err != nil {
			return sendError(c, err)
		}

		return sendReduced(c, stops)
	})
}
