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

var (
	// ErrUnauthenticated - запрос без установленного принципала
	ErrUnauthenticated = &DomainError{
		Code:    "UNAUTHENTICATED",
		Message: "principal is not authenticated",
	}

	// ErrNotAMember - принципал не состоит в команде и не является её владельцем
	ErrNotAMember = &DomainError{
		Code:    "NOT_A_MEMBER",
		Message: "principal is not a member of this team",
	}

	// ErrForbidden - роль не даёт требуемую возможность
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "role does not grant the required capability",
	}

	// ErrInvalidRole - неизвестная роль в данных, признак повреждения хранилища
	ErrInvalidRole = &DomainError{
		Code:    "INVALID_ROLE",
		Message: "unknown role value",
	}

	// ErrMemberExists - участник уже добавлен в команду
	ErrMemberExists = &DomainError{
		Code:    "MEMBER_EXISTS",
		Message: "user is already a member of this team",
	}

	// ErrStoreUnavailable - хранилище недоступно целиком
	ErrStoreUnavailable = &DomainError{
		Code:    "STORE_UNAVAILABLE",
		Message: "store is unavailable",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION с текстом нарушений
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}
