package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/report"
	"jiffy-backoffice-api-server/internal/repository/repomock"
)

func TestIncomeInsert(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	repo := new(repomock.IncomeRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.IncomeRecord) bool {
		return r.OrderID == "ORD-1001" && r.TotalAmount == 99.5 && r.Date.Equal(now)
	})).Return(nil)
	h := &IncomeHandler{Income: repo, Log: zap.NewNop(), Now: fixedClock(now)}

	w := perform(h.Insert, http.MethodPost, "/income", "/income", gin.H{"order_ID": "ORD-1001", "total": "99.5"})

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestIncomeInsert_MissingTotal(t *testing.T) {
	repo := new(repomock.IncomeRepository)
	h := &IncomeHandler{Income: repo, Log: zap.NewNop()}

	w := perform(h.Insert, http.MethodPost, "/income", "/income", gin.H{"order_ID": "ORD-1001"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetIncomeOverview(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	records := []models.IncomeRecord{
		{OrderID: "a", TotalAmount: 100, Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{OrderID: "b", TotalAmount: 50, Date: time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)},
		{OrderID: "c", TotalAmount: 30, Date: time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)},
	}
	repo := new(repomock.IncomeRepository)
	repo.On("ListSince", mock.Anything, report.OverviewWindowStart(now)).Return(records, nil)
	h := &IncomeHandler{Income: repo, Log: zap.NewNop(), Now: fixedClock(now)}

	w := perform(h.GetIncomeOverview, http.MethodGet, "/overview", "/overview", nil)

	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[[]models.MonthlyIncome](t, w)
	require.Len(t, overview, report.OverviewMonths)
	assert.Equal(t, models.MonthlyIncome{Date: "2026-3", Income: 150}, overview[0])
	assert.Equal(t, models.MonthlyIncome{Date: "2025-12", Income: 30}, overview[3])
	assert.Equal(t, "2024-4", overview[23].Date)
}

func TestGetIncomeOverview_StoreError(t *testing.T) {
	repo := new(repomock.IncomeRepository)
	repo.On("ListSince", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	h := &IncomeHandler{Income: repo, Log: zap.NewNop()}

	w := perform(h.GetIncomeOverview, http.MethodGet, "/overview", "/overview", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
