package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeTeamExists      = "TEAM_EXISTS"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeUserExists      = "USER_EXISTS"
)

var (
	// ErrTeamExists - не удалось подобрать свободный team_id
	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "team_id already exists",
	}

	// ErrUserExists - имя пользователя занято
	ErrUserExists = &DomainError{
		Code:    CodeUserExists,
		Message: "username already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrInvalidArgument - некорректные входные данные
	ErrInvalidArgument = &DomainError{
		Code:    CodeInvalidArgument,
		Message: "invalid argument",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidArgumentError создает ошибку INVALID_ARGUMENT с описанием поля
func NewInvalidArgumentError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}
