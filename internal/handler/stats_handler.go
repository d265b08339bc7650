package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetStats(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	if courseID == "" {
		return badRequest(c, "course_id parameter is required")
	}

	stats, err := h.statsService.GetCourseTeamStats(c.UserContext(), courseID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(StatsResponse{
		CourseID: courseID,
		Teams:    domainStatsToHTTP(stats),
	})
}
