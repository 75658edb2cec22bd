package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/repository/repomock"
)

const buyNowRoute = "/buynow/:pid/:qty"

func TestGetCartTotal(t *testing.T) {
	ham := models.Product{ID: primitive.NewObjectID(), Name: "Ham", UnitPrice: 12.5}
	bacon := models.Product{ID: primitive.NewObjectID(), Name: "Bacon", UnitPrice: 8}

	carts := new(repomock.CartRepository)
	carts.On("ListByCustomer", mock.Anything, "cus-1").Return([]models.CartItem{
		{ProductID: ham.ID.Hex(), Quantity: 2},
		{ProductID: bacon.ID.Hex(), Quantity: 3},
	}, nil)
	products := new(repomock.ProductRepository)
	products.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Product{bacon, ham}, nil)
	h := &EBillHandler{Carts: carts, Products: products, Log: zap.NewNop()}

	w := perform(h.GetCartTotal, http.MethodGet, "/cart/:cusID", "/cart/cus-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	lines := decode[[]models.BillLine](t, w)
	require.Len(t, lines, 2)
	assert.Equal(t, models.BillLine{
		ProductID: ham.ID.Hex(), ProductName: "Ham", Quantity: 2, ProductPrice: 25, TotalAmount: 25,
	}, lines[0])
	assert.Equal(t, 24.0, lines[1].TotalAmount)
}

func TestGetCartTotal_EmptyCart(t *testing.T) {
	carts := new(repomock.CartRepository)
	carts.On("ListByCustomer", mock.Anything, "cus-1").Return(nil, nil)
	h := &EBillHandler{Carts: carts, Products: new(repomock.ProductRepository), Log: zap.NewNop()}

	w := perform(h.GetCartTotal, http.MethodGet, "/cart/:cusID", "/cart/cus-1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Cart not found"}`, w.Body.String())
}

func TestGetBuyNowTotal(t *testing.T) {
	ham := &models.Product{ID: primitive.NewObjectID(), Name: "Ham", UnitPrice: 12.5}

	tests := []struct {
		name   string
		pid    string
		qty    string
		found  bool
		status int
		body   string
	}{
		{name: "priced", pid: ham.ID.Hex(), qty: "4", found: true, status: http.StatusOK},
		{name: "zero quantity", pid: ham.ID.Hex(), qty: "0", found: true, status: http.StatusBadRequest, body: `{"message":"Invalid quantity"}`},
		{name: "fractional quantity", pid: ham.ID.Hex(), qty: "1.5", found: true, status: http.StatusBadRequest, body: `{"message":"Invalid quantity"}`},
		{name: "unknown product", pid: primitive.NewObjectID().Hex(), qty: "1", status: http.StatusNotFound, body: `{"message":"Product not found"}`},
		{name: "malformed product id", pid: "xyz", qty: "1", status: http.StatusNotFound, body: `{"message":"Product not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := new(repomock.ProductRepository)
			if tt.found {
				products.On("FindByID", mock.Anything, ham.ID).Return(ham, nil)
			} else {
				products.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound).Maybe()
			}
			h := &EBillHandler{Products: products, Log: zap.NewNop()}

			w := perform(h.GetBuyNowTotal, http.MethodGet, buyNowRoute, "/buynow/"+tt.pid+"/"+tt.qty, nil)

			require.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
				return
			}
			lines := decode[[]models.BillLine](t, w)
			require.Len(t, lines, 1)
			assert.Equal(t, 50.0, lines[0].TotalAmount)
			assert.Equal(t, 50.0, lines[0].ProductPrice)
			assert.Equal(t, 4, lines[0].Quantity)
		})
	}
}
