package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
)

// EBillHandler prices a cart or a single product. Its errors use the
// {"message": ...} envelope the checkout page expects.
type EBillHandler struct {
	Carts    repository.CartRepository
	Products repository.ProductRepository
	Log      *zap.Logger
}

func billLine(p models.Product, quantity int) models.BillLine {
	total := p.UnitPrice * float64(quantity)
	return models.BillLine{
		ProductID:    p.ID.Hex(),
		ProductName:  p.Name,
		Quantity:     quantity,
		ProductPrice: total,
		TotalAmount:  total,
	}
}

func (h *EBillHandler) GetCartTotal(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.Carts.ListByCustomer(ctx, sanitize.String(c.Param("cusID")))
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
		return
	}

	entries, err := joinCart(ctx, h.Products, loggerFor(c, h.Log), items)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(entries, func(e cartEntry, _ int) models.BillLine {
		return billLine(e.product, e.item.Quantity)
	}))
}

// GetBuyNowTotal bills qty units of one product.
func (h *EBillHandler) GetBuyNowTotal(c *gin.Context) {
	productNotFound := gin.H{"message": "Product not found"}

	id, err := parseHex(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusNotFound, productNotFound)
		return
	}
	product, err := h.Products.FindByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, productNotFound)
			return
		}
		internalError(c, h.Log, err)
		return
	}

	quantity, err := strconv.Atoi(c.Param("qty"))
	if err != nil || quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quantity"})
		return
	}

	c.JSON(http.StatusOK, []models.BillLine{billLine(*product, quantity)})
}
