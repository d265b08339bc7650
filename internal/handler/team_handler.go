package handler

import (
	"net/http"

	"github.com/bagdasarian/course-teams/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	team, err := h.teamService.CreateTeam(c.UserContext(), service.CreateTeamParams{
		Name:        req.Name,
		CourseID:    req.CourseID,
		Description: req.Description,
		TopicID:     req.TopicID,
		Country:     req.Country,
		Language:    req.Language,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.teamService.GetTeam(c.UserContext(), c.Params("team_id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.teamService.ListTeams(c.UserContext(), service.ListTeamsParams{
		CourseID: c.Query("course_id"),
		TopicID:  c.Query("topic_id"),
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(TeamsResponse{
		Teams: domainTeamsToHTTP(teams),
	})
}

// AddMember отвечает 201, если членство создано, и 200, если оно уже было.
func (h *Handler) AddMember(c *fiber.Ctx) error {
	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	membership, created, err := h.teamService.AddUser(c.UserContext(), c.Params("team_id"), req.UserID)
	if err != nil {
		return h.handleError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(AddMemberResponse{
		Membership: domainMembershipToHTTP(membership),
	})
}

func (h *Handler) ListMembers(c *fiber.Ctx) error {
	memberships, err := h.teamService.ListMembers(c.UserContext(), c.Params("team_id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(MembershipsResponse{
		Memberships: domainMembershipsToHTTP(memberships),
	})
}
