package handler

import (
	"net/http"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/bagdasarian/course-teams/internal/milestone"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMilestoneNamespace(c *fiber.Ctx) error {
	courseID := c.Query("course_id")
	if courseID == "" {
		return badRequest(c, "course_id parameter is required")
	}

	key, err := domain.ParseCourseKey(courseID)
	if err != nil {
		return h.handleError(c, err)
	}

	namespace, ok := milestone.GenerateNamespace(c.Query("namespace"), key)
	if !ok {
		return h.handleError(c, domain.NewNotFoundError("milestone namespace"))
	}

	return c.Status(http.StatusOK).JSON(NamespaceResponse{Namespace: namespace})
}
