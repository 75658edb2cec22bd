package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/api/middleware"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/validation"
)

const (
	msgInternal       = "Internal server error"
	msgFieldsRequired = "All fields must be filled"
	msgInvalidTypes   = "Invalid input types"
	msgEmailInvalid   = "Email is not valid"
	msgEmailInUse     = "Email already in use"
	msgPhoneInvalid   = "Phone number is not valid"
	msgWeakPassword   = "Password not strong enough. Must contain uppercase, lowercase, numbers and more than eight characters"
	msgPasswordMatch  = "New password and confirm password mismatch"
)

// errorMessages names the 404 and duplicate-key messages of one resource.
type errorMessages struct {
	notFound  string
	duplicate string
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func loggerFor(c *gin.Context, log *zap.Logger) *zap.Logger {
	return middleware.LoggerFrom(c, log)
}

func internalError(c *gin.Context, log *zap.Logger, err error) {
	loggerFor(c, log).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
}

// respondError maps repository sentinels to 404/400 and everything else to 500.
func respondError(c *gin.Context, log *zap.Logger, err error, msgs errorMessages) {
	switch {
	case isNotFound(err):
		notFound(c, msgs.notFound)
	case errors.Is(err, repository.ErrDuplicateKey) && msgs.duplicate != "":
		badRequest(c, msgs.duplicate)
	default:
		internalError(c, log, err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func parseHex(s string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}

// objectID parses a path parameter. A malformed id is reported as not found.
func objectID(c *gin.Context, param, notFoundMsg string) (primitive.ObjectID, bool) {
	id, err := parseHex(c.Param(param))
	if err != nil {
		notFound(c, notFoundMsg)
		return primitive.NilObjectID, false
	}
	return id, true
}

// bindJSON decodes the body and runs binding tags, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			badRequest(c, msgFieldsRequired)
		case validation.IsValidationError(err):
			badRequest(c, validation.Message(err))
		default:
			badRequest(c, msgInvalidTypes)
		}
		return false
	}
	return true
}

type clock func() time.Time

func (f clock) now() time.Time {
	if f == nil {
		return time.Now()
	}
	return f()
}
