package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/repository/repomock"
)

func factoryBody() gin.H {
	return gin.H{
		"fId":            "FAC001",
		"fName":          "North Plant",
		"fLocation":      "Kandy",
		"numOfEmployees": "25",
		"numOfMachines":  4,
		"numOfVehicles":  2,
		"createdDate":    "2024-01-05",
	}
}

func TestCreateFactory(t *testing.T) {
	repo := new(repomock.FactoryRepository)
	repo.On("FindByFID", mock.Anything, "FAC001").Return(nil, repository.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(f *models.Factory) bool {
		return f.FID == "FAC001" && f.NumOfEmployees == 25 && f.NumOfMachines == 4
	})).Return(nil)

	h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}
	w := perform(h.CreateFactory, http.MethodPost, "/factory", "/factory", factoryBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	got := decode[models.Factory](t, w)
	assert.Equal(t, "North Plant", got.Name)
	repo.AssertExpectations(t)
}

func TestCreateFactory_DuplicateFID(t *testing.T) {
	repo := new(repomock.FactoryRepository)
	repo.On("FindByFID", mock.Anything, "FAC001").
		Return(&models.Factory{ID: primitive.NewObjectID(), FID: "FAC001"}, nil)

	h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}
	w := perform(h.CreateFactory, http.MethodPost, "/factory", "/factory", factoryBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Factory ID already exists."}`, w.Body.String())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateFactory_Validation(t *testing.T) {
	tests := []struct {
		name  string
		patch gin.H
		want  string
	}{
		{"missing name", gin.H{"fName": ""}, "All fields must be filled."},
		{"markup only name", gin.H{"fName": "<script></script>"}, "All fields must be filled."},
		{"missing count", gin.H{"numOfVehicles": nil}, "All fields must be filled."},
		{"short id", gin.H{"fId": "F1"}, "Factory ID must include at least 6 characters. Eg: XXX000"},
		{"negative employees", gin.H{"numOfEmployees": -1}, "Number of Employees cannot be less than 0."},
		{"negative machines", gin.H{"numOfMachines": "-3"}, "Number of Machines cannot be less than 0."},
		{"negative vehicles", gin.H{"numOfVehicles": -2}, "Number of Vehicles cannot be less than 0."},
		{"negative fraction", gin.H{"numOfEmployees": -0.5}, "Number of Employees cannot be less than 0."},
		{"fractional count", gin.H{"numOfMachines": 2.5}, "Number of Machines must be a whole number."},
		{"fractional count as text", gin.H{"numOfVehicles": "3.7"}, "Number of Vehicles must be a whole number."},
		{"non numeric", gin.H{"numOfMachines": "four"}, msgInvalidTypes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := factoryBody()
			for k, v := range tt.patch {
				body[k] = v
			}
			repo := new(repomock.FactoryRepository)
			h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}

			w := perform(h.CreateFactory, http.MethodPost, "/factory", "/factory", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, decode[gin.H](t, w)["error"])
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateFactory_EmptyBody(t *testing.T) {
	h := &FactoryHandler{Factories: new(repomock.FactoryRepository), Log: zap.NewNop()}
	w := perform(h.CreateFactory, http.MethodPost, "/factory", "/factory", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgFieldsRequired, decode[gin.H](t, w)["error"])
}

func TestUpdateFactory(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("fId owned by another factory", func(t *testing.T) {
		repo := new(repomock.FactoryRepository)
		repo.On("FindByFID", mock.Anything, "FAC001").
			Return(&models.Factory{ID: primitive.NewObjectID(), FID: "FAC001"}, nil)
		h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}

		w := perform(h.UpdateFactory, http.MethodPut, "/factory/:id", "/factory/"+id.Hex(), factoryBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("keeps its own fId", func(t *testing.T) {
		repo := new(repomock.FactoryRepository)
		repo.On("FindByFID", mock.Anything, "FAC001").Return(&models.Factory{ID: id, FID: "FAC001"}, nil)
		repo.On("Update", mock.Anything, id, mock.AnythingOfType("*models.Factory")).
			Return(&models.Factory{ID: id, FID: "FAC001", Name: "North Plant"}, nil)
		h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}

		w := perform(h.UpdateFactory, http.MethodPut, "/factory/:id", "/factory/"+id.Hex(), factoryBody())

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("unknown factory", func(t *testing.T) {
		repo := new(repomock.FactoryRepository)
		repo.On("FindByFID", mock.Anything, "FAC001").Return(nil, repository.ErrNotFound)
		repo.On("Update", mock.Anything, id, mock.Anything).Return(nil, repository.ErrNotFound)
		h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}

		w := perform(h.UpdateFactory, http.MethodPut, "/factory/:id", "/factory/"+id.Hex(), factoryBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Factory does not exist."}`, w.Body.String())
	})
}

func TestDeleteFactory(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(repomock.FactoryRepository)
	repo.On("Delete", mock.Anything, id).Return(&models.Factory{ID: id, FID: "FAC001"}, nil)
	h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}

	w := perform(h.DeleteFactory, http.MethodDelete, "/factory/:id", "/factory/"+id.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Factory deleted successfully.", decode[gin.H](t, w)["message"])
}

func TestGetFactory_InternalError(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(repomock.FactoryRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, assert.AnError)
	h := &FactoryHandler{Factories: repo, Log: zap.NewNop()}

	w := perform(h.GetFactory, http.MethodGet, "/factory/:id", "/factory/"+id.Hex(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
