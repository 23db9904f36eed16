package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/luas/pkg/dataaggregator"
)

func FareRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", func(c *fiber.Ctx) error {
		from := c.Query("from")
		to := c.Query("to")

		if from == "" || to == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameters from and to must be provided",
			})
		}

		adults, err := strconv.Atoi(c.Query("adults", "0"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter adults should be an integer",
			})
		}

		children, err := strconv.Atoi(c.Query("children", "0"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter children should be an integer",
			})
		}

		quote, err := aggregator.CalculateFare(from, to, adults, children)
		if err != nil {
			return sendError(c, err)
		}

		return sendReduced(c, quote)
	})
}
