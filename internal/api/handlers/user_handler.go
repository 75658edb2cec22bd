// server/internal/api/handlers/user_handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/cache"
	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/notify"
	"jiffy-backoffice-api-server/internal/report"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/socket"
	"jiffy-backoffice-api-server/internal/validation"
)

var userErrors = errorMessages{notFound: "User does not exist", duplicate: msgEmailInUse}

// UserHandler serves customer accounts and the account reports.
type UserHandler struct {
	Users    repository.UserRepository
	Tokens   *auth.TokenManager
	Notifier *notify.Notifier
	Hub      *socket.Hub
	Cache    *cache.Client
	Log      *zap.Logger
	Now      clock
}

type createUserRequest struct {
	profileFields
	Password string `json:"password"`
}

type signupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := objectID(c, "id", userErrors.notFound)
	if !ok {
		return
	}
	user, err := h.Users.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !bindJSON(c, &req) {
		return
	}
	req.sanitize()
	ctx := c.Request.Context()

	if msg, pos := req.check(req.Password); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "errorPosition": pos})
		return
	}
	if taken, err := h.emailTaken(c, req.Email); err != nil || taken {
		return
	}
	if !validation.IsStrongPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgWeakPassword, "errorPosition": "5"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Phone:    req.Phone,
		Password: hash,
	}
	if err := h.Users.Create(ctx, user); err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}

	h.Notifier.Notify(notify.AccountCreated(user.Email))
	h.Hub.Broadcast(socket.EventAccountCreated, user.Contact())
	c.JSON(http.StatusOK, user)
}

// emailTaken answers the request itself when the email is in use or the lookup fails.
func (h *UserHandler) emailTaken(c *gin.Context, email string) (bool, error) {
	_, err := h.Users.FindByEmail(c.Request.Context(), email)
	switch {
	case err == nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailInUse, "errorPosition": "3"})
		return true, nil
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	default:
		internalError(c, h.Log, err)
		return false, err
	}
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req profileFields
	if !bindJSON(c, &req) {
		return
	}
	req.sanitize()

	if msg, _ := req.check(); msg != "" {
		badRequest(c, msg)
		return
	}
	id, ok := objectID(c, "id", userErrors.notFound)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	owner, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		internalError(c, h.Log, err)
		return
	}
	if owner != nil && owner.ID != id {
		badRequest(c, msgEmailInUse)
		return
	}

	user, err := h.Users.UpdateProfile(ctx, id, repository.ProfileUpdate(req))
	if err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}

	h.Notifier.Notify(notify.AccountUpdated(user.Email))
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := objectID(c, "id", userErrors.notFound)
	if !ok {
		return
	}
	user, err := h.Users.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}

	h.Notifier.Notify(notify.AccountDeleted(user.Email))
	h.Hub.Broadcast(socket.EventAccountDeleted, gin.H{"_id": user.ID.Hex()})
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.check(); msg != "" {
		badRequest(c, msg)
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			badRequest(c, msgIncorrectEmail)
			return
		}
		internalError(c, h.Log, err)
		return
	}
	if !auth.CheckPasswordHash(req.Password, user.Password) {
		badRequest(c, msgIncorrectPassword)
		return
	}

	if err := h.Users.TouchLastLogin(ctx, user.ID, h.Now.now()); err != nil {
		internalError(c, h.Log, err)
		return
	}
	h.respondToken(c, user)
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req) {
		return
	}
	sanitize.Fields(&req.Name, &req.Email)

	switch {
	case req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "":
		badRequest(c, msgFieldsRequired)
		return
	case !validation.IsEmail(req.Email):
		badRequest(c, msgEmailInvalid)
		return
	case req.Password != req.ConfirmPassword:
		badRequest(c, "Password and confirm password mismatch")
		return
	case !validation.IsStrongPassword(req.Password):
		badRequest(c, msgWeakPassword)
		return
	}
	if taken, err := h.emailTaken(c, req.Email); err != nil || taken {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	now := h.Now.now()
	user := &models.User{Name: req.Name, Email: req.Email, Password: hash, LastLogin: &now}
	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}

	h.Notifier.Notify(notify.AccountCreated(user.Email))
	h.respondToken(c, user)
}

func (h *UserHandler) respondToken(c *gin.Context, user *models.User) {
	token, err := h.Tokens.Generate(user.ID.Hex(), user.Email, models.RoleCustomer)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{ID: user.ID.Hex(), Email: user.Email, Token: token})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	h.resetPassword(c, true)
}

// AdminResetPassword sets a new password without knowing the current one.
func (h *UserHandler) AdminResetPassword(c *gin.Context) {
	h.resetPassword(c, false)
}

func (h *UserHandler) resetPassword(c *gin.Context, requireCurrent bool) {
	var req resetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.check(requireCurrent); msg != "" {
		badRequest(c, msg)
		return
	}
	id, ok := objectID(c, "id", userErrors.notFound)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}
	if requireCurrent && !auth.CheckPasswordHash(req.CurrentPassword, user.Password) {
		badRequest(c, "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	user, err = h.Users.UpdatePassword(ctx, id, hash)
	if err != nil {
		respondError(c, h.Log, err, userErrors)
		return
	}

	h.Notifier.Notify(notify.PasswordReset(user.Email))
	if err := h.Hub.Send(user.ID.Hex(), socket.EventPasswordReset, gin.H{"_id": user.ID.Hex()}); err != nil {
		loggerFor(c, h.Log).Warn("password reset event not sent", zap.Error(err))
	}
	c.JSON(http.StatusOK, user)
}

// GetAccountUsage reports logins per month for last year and this year.
func (h *UserHandler) GetAccountUsage(c *gin.Context) {
	now := h.Now.now()
	key := cache.AccountUsageKey + ":" + report.MonthKey(now)

	usage, err := cache.Remember(c.Request.Context(), h.Cache, key, func(ctx context.Context) ([]models.MonthlyUsage, error) {
		from, to := report.UsageWindow(now)
		counts, err := h.Users.LoginCountsByMonth(ctx, from, to)
		if err != nil {
			return nil, err
		}
		return report.AccountUsage(now, counts), nil
	})
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, usage)
}

// GetInactiveUsers lists customers who have not logged in for two calendar years.
func (h *UserHandler) GetInactiveUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, report.InactiveUsers(h.Now.now(), users))
}
