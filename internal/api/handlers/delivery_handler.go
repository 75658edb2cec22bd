package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/socket"
)

type DeliveryHandler struct {
	Deliveries repository.DeliveryRepository
	Hub        *socket.Hub
	Log        *zap.Logger
}

type deliveryRequest struct {
	ReceiverName string `json:"recieverName" binding:"required"`
	OrderID      string `json:"orderID" binding:"required"`
	Address      string `json:"address" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required,phone"`
}

func (h *DeliveryHandler) CreateDelivery(c *gin.Context) {
	var req deliveryRequest
	if !bindJSON(c, &req) {
		return
	}
	sanitize.Fields(&req.ReceiverName, &req.OrderID, &req.Address)
	if req.ReceiverName == "" || req.OrderID == "" || req.Address == "" {
		badRequest(c, msgFieldsRequired)
		return
	}

	delivery := &models.Delivery{
		ReceiverName: req.ReceiverName,
		OrderID:      req.OrderID,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := h.Deliveries.Create(c.Request.Context(), delivery); err != nil {
		internalError(c, h.Log, err)
		return
	}

	h.Hub.Broadcast(socket.EventDeliveryCreated, delivery)
	c.JSON(http.StatusOK, delivery)
}
