// server/internal/api/handlers/factory_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/socket"
	"jiffy-backoffice-api-server/internal/validation"
)

const msgFactoryIDExists = "Factory ID already exists."

var factoryErrors = errorMessages{notFound: "Factory not found.", duplicate: msgFactoryIDExists}

type FactoryHandler struct {
	Factories repository.FactoryRepository
	Hub       *socket.Hub
	Log       *zap.Logger
}

type factoryRequest struct {
	FID            string `json:"fId"`
	Name           string `json:"fName"`
	Location       string `json:"fLocation"`
	NumOfEmployees number `json:"numOfEmployees"`
	NumOfMachines  number `json:"numOfMachines"`
	NumOfVehicles  number `json:"numOfVehicles"`
	CreatedDate    string `json:"createdDate"`
}

// validate sanitizes the request and returns the first rule it breaks.
func (r *factoryRequest) validate() string {
	sanitize.Fields(&r.FID, &r.Name, &r.Location, &r.CreatedDate)

	if r.FID == "" || r.Name == "" || r.Location == "" || r.CreatedDate == "" ||
		!r.NumOfEmployees.set || !r.NumOfMachines.set || !r.NumOfVehicles.set {
		return "All fields must be filled."
	}
	if !validation.IsBusinessID(r.FID) {
		return "Factory ID must include at least 6 characters. Eg: XXX000"
	}
	counts := []struct {
		label string
		value number
	}{
		{"Employees", r.NumOfEmployees},
		{"Machines", r.NumOfMachines},
		{"Vehicles", r.NumOfVehicles},
	}
	for _, n := range counts {
		if !validation.IsNonNegative(n.value.Float()) {
			return "Number of " + n.label + " cannot be less than 0."
		}
		if !validation.IsWholeNumber(n.value.Float()) {
			return "Number of " + n.label + " must be a whole number."
		}
	}
	return ""
}

func (r *factoryRequest) model() *models.Factory {
	return &models.Factory{
		FID:            r.FID,
		Name:           r.Name,
		Location:       r.Location,
		NumOfEmployees: r.NumOfEmployees.Int(),
		NumOfMachines:  r.NumOfMachines.Int(),
		NumOfVehicles:  r.NumOfVehicles.Int(),
		CreatedDate:    r.CreatedDate,
	}
}

// fIDOwnedByOther reports whether fID belongs to a factory other than self.
// On lookup failure it has already answered with 500.
func (h *FactoryHandler) fIDOwnedByOther(c *gin.Context, fID string, self primitive.ObjectID) (bool, bool) {
	existing, err := h.Factories.FindByFID(c.Request.Context(), fID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return false, true
	case err != nil:
		internalError(c, h.Log, err)
		return false, false
	default:
		return existing.ID != self, true
	}
}

func (h *FactoryHandler) CreateFactory(c *gin.Context) {
	var req factoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(c, msg)
		return
	}

	taken, ok := h.fIDOwnedByOther(c, req.FID, primitive.NilObjectID)
	if !ok {
		return
	}
	if taken {
		badRequest(c, msgFactoryIDExists)
		return
	}

	factory := req.model()
	if err := h.Factories.Create(c.Request.Context(), factory); err != nil {
		respondError(c, h.Log, err, factoryErrors)
		return
	}

	h.Hub.Broadcast(socket.EventFactoryChanged, factory)
	c.JSON(http.StatusCreated, factory)
}

func (h *FactoryHandler) GetAllFactories(c *gin.Context) {
	factories, err := h.Factories.List(c.Request.Context())
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, factories)
}

func (h *FactoryHandler) GetFactory(c *gin.Context) {
	id, ok := objectID(c, "id", factoryErrors.notFound)
	if !ok {
		return
	}
	factory, err := h.Factories.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, factoryErrors)
		return
	}
	c.JSON(http.StatusOK, factory)
}

func (h *FactoryHandler) UpdateFactory(c *gin.Context) {
	var req factoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(c, msg)
		return
	}

	msgs := errorMessages{notFound: "Factory does not exist.", duplicate: msgFactoryIDExists}
	id, ok := objectID(c, "id", msgs.notFound)
	if !ok {
		return
	}
	taken, ok := h.fIDOwnedByOther(c, req.FID, id)
	if !ok {
		return
	}
	if taken {
		badRequest(c, msgFactoryIDExists)
		return
	}

	factory, err := h.Factories.Update(c.Request.Context(), id, req.model())
	if err != nil {
		respondError(c, h.Log, err, msgs)
		return
	}

	h.Hub.Broadcast(socket.EventFactoryChanged, factory)
	c.JSON(http.StatusOK, factory)
}

// DeleteFactory removes the factory only; its machines are left in place.
func (h *FactoryHandler) DeleteFactory(c *gin.Context) {
	id, ok := objectID(c, "id", factoryErrors.notFound)
	if !ok {
		return
	}
	factory, err := h.Factories.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, factoryErrors)
		return
	}

	h.Hub.Broadcast(socket.EventFactoryChanged, gin.H{"_id": factory.ID.Hex(), "deleted": true})
	c.JSON(http.StatusOK, gin.H{"message": "Factory deleted successfully.", "factory": factory})
}
