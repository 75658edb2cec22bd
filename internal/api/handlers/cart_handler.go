package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
)

var cartErrors = errorMessages{notFound: "Cart item not found"}

type CartHandler struct {
	Carts    repository.CartRepository
	Products repository.ProductRepository
	Log      *zap.Logger
}

type cartItemRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	ProductID  string `json:"Item_number" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// cartEntry pairs a cart item with the product it references.
type cartEntry struct {
	item    models.CartItem
	product models.Product
}

// joinCart loads the products behind items in one query. Items whose product
// no longer exists are skipped and logged.
func joinCart(ctx context.Context, products repository.ProductRepository, log *zap.Logger, items []models.CartItem) ([]cartEntry, error) {
	ids := lo.Uniq(lo.FilterMap(items, func(it models.CartItem, _ int) (primitive.ObjectID, bool) {
		id, err := primitive.ObjectIDFromHex(it.ProductID)
		return id, err == nil
	}))

	found, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(found, func(p models.Product) primitive.ObjectID { return p.ID })

	entries := make([]cartEntry, 0, len(items))
	for _, it := range items {
		id, err := primitive.ObjectIDFromHex(it.ProductID)
		product, ok := byID[id]
		if err != nil || !ok {
			log.Warn("cart item references a missing product",
				zap.String("customer_id", it.CustomerID),
				zap.String("product_id", it.ProductID))
			continue
		}
		entries = append(entries, cartEntry{item: it, product: product})
	}
	return entries, nil
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	var req cartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	sanitize.Fields(&req.CustomerID, &req.ProductID)
	if req.CustomerID == "" || req.ProductID == "" {
		badRequest(c, msgFieldsRequired)
		return
	}

	item := &models.CartItem{CustomerID: req.CustomerID, ProductID: req.ProductID, Quantity: req.Quantity}
	if err := h.Carts.Add(c.Request.Context(), item); err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetAllCart returns the customer's cart joined with product names and prices.
func (h *CartHandler) GetAllCart(c *gin.Context) {
	ctx := c.Request.Context()
	log := loggerFor(c, h.Log)

	items, err := h.Carts.ListByCustomer(ctx, sanitize.String(c.Param("customerID")))
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	if len(items) == 0 {
		notFound(c, "No items in the cart")
		return
	}

	entries, err := joinCart(ctx, h.Products, log, items)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(entries, func(e cartEntry, _ int) models.CartLine {
		return models.CartLine{
			ProductID:   e.product.ID.Hex(),
			ProductName: e.product.Name,
			UnitPrice:   e.product.UnitPrice,
			Quantity:    e.item.Quantity,
		}
	}))
}

func (h *CartHandler) GetCart(c *gin.Context) {
	item, err := h.Carts.FindItem(c.Request.Context(),
		sanitize.String(c.Param("customerID")), sanitize.String(c.Param("productID")))
	if err != nil {
		respondError(c, h.Log, err, cartErrors)
		return
	}
	c.JSON(http.StatusOK, []models.CartItem{*item})
}

func (h *CartHandler) UpdateCart(c *gin.Context) {
	var req cartQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.Carts.UpdateQuantity(c.Request.Context(),
		sanitize.String(c.Param("customerID")), sanitize.String(c.Param("productID")), req.Quantity)
	if err != nil {
		respondError(c, h.Log, err, cartErrors)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) DeleteCart(c *gin.Context) {
	item, err := h.Carts.DeleteItem(c.Request.Context(),
		sanitize.String(c.Param("customerID")), sanitize.String(c.Param("productID")))
	if err != nil {
		respondError(c, h.Log, err, cartErrors)
		return
	}
	c.JSON(http.StatusOK, item)
}
