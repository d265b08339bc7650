package handler

import (
	"net/http"

	"github.com/bagdasarian/course-teams/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.userService.CreateUser(c.UserContext(), service.CreateUserParams{Username: req.Username})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(domainUserToHTTP(user))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return badRequest(c, "user_id must be an integer")
	}

	user, err := h.userService.GetUser(c.UserContext(), int64(userID))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainUserToHTTP(user))
}

func (h *Handler) GetUserTeams(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil {
		return badRequest(c, "user_id must be an integer")
	}

	teams, err := h.teamService.ListUserTeams(c.UserContext(), int64(userID))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(TeamsResponse{
		Teams: domainTeamsToHTTP(teams),
	})
}
