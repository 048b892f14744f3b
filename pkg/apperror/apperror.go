package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/infinitivesi/lab-8/pkg/database"
)

type ErrorType string

const (
	JsonAppError       ErrorType = "json"
	ValidationAppError ErrorType = "validation"
	NotFoundAppError   ErrorType = "not_found"
	StorageAppError    ErrorType = "storage"
	ServerAppError     ErrorType = "server"
)

type AppError struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func NewError(errType ErrorType, message string, code int, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Respond writes err as a JSON error body. Storage failures become 503 so
// clients can retry; anything else that is not an *AppError is reported as
// an internal error without leaking its text.
func Respond(c *gin.Context, log *logrus.Entry, err error) {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
	case database.IsStorageError(err):
		appErr = NewError(StorageAppError, "storage unavailable", http.StatusServiceUnavailable, err)
	default:
		appErr = NewError(ServerAppError, "internal error", http.StatusInternalServerError, err)
	}

	if appErr.Code >= http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), appErr)
	} else {
		log.Debugf("%s %s: %v", c.Request.Method, c.FullPath(), appErr)
	}

	c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
}
