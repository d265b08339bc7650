package server

import (
	"github.com/bagdasarian/course-teams/internal/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Post("/teams", h.CreateTeam)
	app.Get("/teams", h.ListTeams)
	app.Get("/teams/:team_id", h.GetTeam)
	app.Get("/teams/:team_id/members", h.ListMembers)
	app.Post("/teams/:team_id/members", h.AddMember)

	app.Post("/users", h.CreateUser)
	app.Get("/users/:user_id", h.GetUser)
	app.Get("/users/:user_id/teams", h.GetUserTeams)

	app.Get("/stats", h.GetStats)
	app.Get("/milestones/namespace", h.GetMilestoneNamespace)
}
