package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/course-teams/internal/domain"
	"github.com/gofiber/fiber/v2"
)

const (
	codeBadRequest    = "BAD_REQUEST"
	codeInternalError = "INTERNAL_ERROR"
)

func (h *Handler) handleError(c *fiber.Ctx, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return c.Status(getStatusCode(domainErr.Code)).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
	}

	h.log.Errorw("request failed", "path", c.Path(), "error", err)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: ErrorDetail{
			Code:    codeInternalError,
			Message: "internal server error",
		},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error: ErrorDetail{
			Code:    codeBadRequest,
			Message: message,
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeInvalidArgument:
		return http.StatusBadRequest
	case domain.CodeTeamExists, domain.CodeUserExists:
		return http.StatusConflict
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
