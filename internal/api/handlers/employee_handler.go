package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/notify"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/validation"
)

var employeeErrors = errorMessages{notFound: "User does not exist", duplicate: msgEmailInUse}

// EmployeeHandler serves staff accounts. Admins manage them; staff sign in here.
type EmployeeHandler struct {
	Employees repository.EmployeeRepository
	Tokens    *auth.TokenManager
	Notifier  *notify.Notifier
	Log       *zap.Logger
	Now       clock
}

type employeeRequest struct {
	profileFields
	DOB      string `json:"dob"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (r *employeeRequest) sanitize() {
	r.profileFields.sanitize()
	sanitize.Fields(&r.DOB, &r.Role)
}

func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.Employees.List(c.Request.Context())
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := objectID(c, "id", employeeErrors.notFound)
	if !ok {
		return
	}
	employee, err := h.Employees.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, employeeErrors)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// create validates and stores a new employee; it writes the error response itself.
func (h *EmployeeHandler) create(c *gin.Context) (*models.Employee, bool) {
	var req employeeRequest
	if !bindJSON(c, &req) {
		return nil, false
	}
	req.sanitize()

	if msg, _ := req.check(req.DOB, req.Role, req.Password); msg != "" {
		badRequest(c, msg)
		return nil, false
	}
	ctx := c.Request.Context()
	if _, err := h.Employees.FindByEmail(ctx, req.Email); err == nil {
		badRequest(c, msgEmailInUse)
		return nil, false
	} else if !errors.Is(err, repository.ErrNotFound) {
		internalError(c, h.Log, err)
		return nil, false
	}
	if !validation.IsStrongPassword(req.Password) {
		badRequest(c, msgWeakPassword)
		return nil, false
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		internalError(c, h.Log, err)
		return nil, false
	}
	employee := &models.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		DOB:      req.DOB,
		Role:     req.Role,
		Address:  req.Address,
		Phone:    req.Phone,
	}
	if err := h.Employees.Create(ctx, employee); err != nil {
		respondError(c, h.Log, err, employeeErrors)
		return nil, false
	}

	h.Notifier.Notify(notify.AccountCreated(employee.Email))
	return employee, true
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	if employee, ok := h.create(c); ok {
		c.JSON(http.StatusOK, employee)
	}
}

func (h *EmployeeHandler) Signup(c *gin.Context) {
	if employee, ok := h.create(c); ok {
		h.respondToken(c, employee)
	}
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req employeeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.sanitize()

	if msg, _ := req.check(req.DOB, req.Role); msg != "" {
		badRequest(c, msg)
		return
	}
	id, ok := objectID(c, "id", employeeErrors.notFound)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	owner, err := h.Employees.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		internalError(c, h.Log, err)
		return
	}
	if owner != nil && owner.ID != id {
		badRequest(c, msgEmailInUse)
		return
	}

	employee, err := h.Employees.Update(ctx, id, repository.EmployeeUpdate{
		ProfileUpdate: repository.ProfileUpdate(req.profileFields),
		DOB:           req.DOB,
		Role:          req.Role,
	})
	if err != nil {
		respondError(c, h.Log, err, employeeErrors)
		return
	}

	h.Notifier.Notify(notify.AccountUpdated(employee.Email))
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := objectID(c, "id", employeeErrors.notFound)
	if !ok {
		return
	}
	employee, err := h.Employees.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, employeeErrors)
		return
	}

	h.Notifier.Notify(notify.AccountDeleted(employee.Email))
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.check(); msg != "" {
		badRequest(c, msg)
		return
	}

	ctx := c.Request.Context()
	employee, err := h.Employees.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			badRequest(c, msgIncorrectEmail)
			return
		}
		internalError(c, h.Log, err)
		return
	}
	if !auth.CheckPasswordHash(req.Password, employee.Password) {
		badRequest(c, msgIncorrectPassword)
		return
	}

	if err := h.Employees.TouchLastLogin(ctx, employee.ID, h.Now.now()); err != nil {
		internalError(c, h.Log, err)
		return
	}
	h.respondToken(c, employee)
}

func (h *EmployeeHandler) respondToken(c *gin.Context, e *models.Employee) {
	token, err := h.Tokens.Generate(e.ID.Hex(), e.Email, e.Role)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{ID: e.ID.Hex(), Email: e.Email, Role: e.Role, Token: token})
}
