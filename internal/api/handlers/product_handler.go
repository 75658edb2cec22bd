// server/internal/api/handlers/product_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
)

var productErrors = errorMessages{notFound: "Product not found"}

// ProductHandler manages the inventory products that carts and e-bills price against.
type ProductHandler struct {
	Products repository.ProductRepository
	Log      *zap.Logger
}

type productRequest struct {
	Name        string   `json:"product_name" binding:"required"`
	UnitPrice   *float64 `json:"unit_price" binding:"required,gte=0"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
	Description string   `json:"description"`
}

func (r *productRequest) model() (*models.Product, string) {
	sanitize.Fields(&r.Name, &r.Description)
	if r.Name == "" {
		return nil, msgFieldsRequired
	}
	return &models.Product{
		Name:        r.Name,
		UnitPrice:   *r.UnitPrice,
		Quantity:    *r.Quantity,
		Description: r.Description,
	}, ""
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req) {
		return
	}
	product, msg := req.model()
	if msg != "" {
		badRequest(c, msg)
		return
	}
	if err := h.Products.Create(c.Request.Context(), product); err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := objectID(c, "id", productErrors.notFound)
	if !ok {
		return
	}
	product, err := h.Products.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, productErrors)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req) {
		return
	}
	next, msg := req.model()
	if msg != "" {
		badRequest(c, msg)
		return
	}
	id, ok := objectID(c, "id", productErrors.notFound)
	if !ok {
		return
	}
	product, err := h.Products.Update(c.Request.Context(), id, next)
	if err != nil {
		respondError(c, h.Log, err, productErrors)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := objectID(c, "id", productErrors.notFound)
	if !ok {
		return
	}
	product, err := h.Products.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, productErrors)
		return
	}
	c.JSON(http.StatusOK, product)
}
