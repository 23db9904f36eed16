package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/luas/pkg/api/routes"
	"github.com/travigo/luas/pkg/dataaggregator"
)

func NewApp(aggregator *dataaggregator.Aggregator) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.LinesRouter(group.Group("/lines"), aggregator)
	routes.StopsRouter(group.Group("/stops"), aggregator)
	routes.FareRouter(group.Group("/fare"), aggregator)

	return webApp
}

func SetupServer(listen string, aggregator *dataaggregator.Aggregator) error {
	return NewApp(aggregator).Listen(listen)
}
