package apperrors

import (
	"net/http"

	"github.com/pkg/errors"
)

type Code string

const (
	CodeValidation           Code = "VALIDATION_ERROR"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeForbidden            Code = "FORBIDDEN"
	CodeNotFound             Code = "NOT_FOUND"
	CodeDuplicateApplication Code = "DUPLICATE_APPLICATION"
	CodeConflict             Code = "CONFLICT"
	CodeInternal             Code = "INTERNAL_ERROR"
)

var codeStatus = map[Code]int{
	CodeValidation:           http.StatusBadRequest,
	CodeUnauthorized:         http.StatusUnauthorized,
	CodeForbidden:            http.StatusForbidden,
	CodeNotFound:             http.StatusNotFound,
	CodeDuplicateApplication: http.StatusConflict,
	CodeConflict:             http.StatusConflict,
	CodeInternal:             http.StatusInternalServerError,
}

func (c Code) HTTPStatus() int {
	if status, ok := codeStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error ошибка, сообщение которой можно отдавать клиенту
type Error struct {
	Code    Code
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

func Validation(message string, details map[string]string) error {
	return &Error{Code: CodeValidation, Message: message, Details: details}
}

func NotFound(message string) error {
	return New(CodeNotFound, message)
}

func Forbidden(message string) error {
	return New(CodeForbidden, message)
}

func Unauthorized(message string) error {
	return New(CodeUnauthorized, message)
}

func Conflict(message string) error {
	return New(CodeConflict, message)
}

func DuplicateApplication() error {
	return New(CodeDuplicateApplication, "you have already applied for this job")
}

// As достает Error из цепочки обернутых ошибок
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsCode(err error, code Code) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
