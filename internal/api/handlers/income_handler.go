package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/cache"
	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/report"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/socket"
)

type IncomeHandler struct {
	Income repository.IncomeRepository
	Cache  *cache.Client
	Hub    *socket.Hub
	Log    *zap.Logger
	Now    clock
}

type incomeRequest struct {
	OrderID string `json:"order_ID"`
	Total   number `json:"total"`
}

func overviewKey(now time.Time) string {
	return cache.IncomeOverviewKey + ":" + report.MonthKey(now)
}

// Insert records a completed order's total, invalidates the cached overview
// and notifies dashboards.
func (h *IncomeHandler) Insert(c *gin.Context) {
	var req incomeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.OrderID = sanitize.String(req.OrderID)
	if req.OrderID == "" || !req.Total.set {
		badRequest(c, msgFieldsRequired)
		return
	}

	now := h.Now.now().UTC()
	record := &models.IncomeRecord{OrderID: req.OrderID, TotalAmount: req.Total.Float(), Date: now}

	ctx := c.Request.Context()
	if err := h.Income.Create(ctx, record); err != nil {
		internalError(c, h.Log, err)
		return
	}

	h.Cache.Delete(ctx, overviewKey(now))
	h.Hub.Broadcast(socket.EventIncomeRecorded, record)
	c.JSON(http.StatusOK, record)
}

// GetIncomeOverview returns income per month, current month first, 24 months back.
func (h *IncomeHandler) GetIncomeOverview(c *gin.Context) {
	now := h.Now.now().UTC()

	overview, err := cache.Remember(c.Request.Context(), h.Cache, overviewKey(now), func(ctx context.Context) ([]models.MonthlyIncome, error) {
		records, err := h.Income.ListSince(ctx, report.OverviewWindowStart(now))
		if err != nil {
			return nil, err
		}
		return report.IncomeOverview(now, records), nil
	})
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
