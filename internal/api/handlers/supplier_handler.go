package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
)

var supplierErrors = errorMessages{notFound: "Supplier not found"}

type SupplierHandler struct {
	Suppliers repository.SupplierRepository
	Log       *zap.Logger
}

type supplierRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone" binding:"required,phone"`
	Address   string   `json:"address"`
	Materials []string `json:"materials"`
}

func (r *supplierRequest) model() (*models.Supplier, string) {
	sanitize.Fields(&r.Name, &r.Address)
	if r.Name == "" {
		return nil, msgFieldsRequired
	}
	return &models.Supplier{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Materials: sanitize.Strings(r.Materials),
	}, ""
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req supplierRequest
	if !bindJSON(c, &req) {
		return
	}
	supplier, msg := req.model()
	if msg != "" {
		badRequest(c, msg)
		return
	}
	if err := h.Suppliers.Create(c.Request.Context(), supplier); err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.Suppliers.List(c.Request.Context())
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := objectID(c, "id", supplierErrors.notFound)
	if !ok {
		return
	}
	supplier, err := h.Suppliers.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, supplierErrors)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var req supplierRequest
	if !bindJSON(c, &req) {
		return
	}
	next, msg := req.model()
	if msg != "" {
		badRequest(c, msg)
		return
	}
	id, ok := objectID(c, "id", supplierErrors.notFound)
	if !ok {
		return
	}
	supplier, err := h.Suppliers.Update(c.Request.Context(), id, next)
	if err != nil {
		respondError(c, h.Log, err, supplierErrors)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := objectID(c, "id", supplierErrors.notFound)
	if !ok {
		return
	}
	supplier, err := h.Suppliers.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, supplierErrors)
		return
	}
	c.JSON(http.StatusOK, supplier)
}
