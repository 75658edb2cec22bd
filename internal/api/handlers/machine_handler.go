package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/sanitize"
	"jiffy-backoffice-api-server/internal/socket"
	"jiffy-backoffice-api-server/internal/validation"
)

const msgMachineIDExists = "Machine ID already exists."

var machineErrors = errorMessages{notFound: "Machine not found", duplicate: msgMachineIDExists}

type MachineHandler struct {
	Machines repository.MachineRepository
	Hub      *socket.Hub
	Log      *zap.Logger
}

type machineRequest struct {
	MID              string `json:"mId"`
	MaxRunningHrs    number `json:"maxRunningHrs"`
	Product          string `json:"product"`
	Factory          string `json:"mFactory"`
	InstalledDate    string `json:"installedDate"`
	TotalProductions number `json:"totalProductions"`
	TotalRunningHrs  number `json:"totalRunningHrs"`
}

func (r *machineRequest) validate() string {
	sanitize.Fields(&r.MID, &r.Product, &r.Factory, &r.InstalledDate)

	if r.MID == "" || !r.MaxRunningHrs.set || r.Product == "" || r.Factory == "" || r.InstalledDate == "" {
		return "All fields must be filled."
	}
	if !validation.IsBusinessID(r.MID) {
		return "Machine ID must include at least 6 characters. Eg: XXX000"
	}
	if !validation.IsValidMaxRunningHrs(r.MaxRunningHrs.Float()) {
		return "Maximum running hours cannot be less than 50."
	}
	return ""
}

func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var req machineRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(c, msg)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Machines.FindByMID(ctx, req.MID); err == nil {
		badRequest(c, msgMachineIDExists)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		internalError(c, h.Log, err)
		return
	}

	machine := &models.Machine{
		MID:              req.MID,
		Factory:          req.Factory,
		Product:          req.Product,
		MaxRunningHrs:    req.MaxRunningHrs.Float(),
		InstalledDate:    req.InstalledDate,
		TotalProductions: req.TotalProductions.Float(),
		TotalRunningHrs:  req.TotalRunningHrs.Float(),
	}
	if err := h.Machines.Create(ctx, machine); err != nil {
		respondError(c, h.Log, err, machineErrors)
		return
	}

	h.Hub.Broadcast(socket.EventMachineChanged, machine)
	c.JSON(http.StatusOK, machine)
}

// GetAllMachines lists machines, narrowed to one factory by ?factory=.
func (h *MachineHandler) GetAllMachines(c *gin.Context) {
	h.list(c, sanitize.String(c.Query("factory")))
}

func (h *MachineHandler) GetMachinesByFactory(c *gin.Context) {
	h.list(c, sanitize.String(c.Param("mFactory")))
}

func (h *MachineHandler) list(c *gin.Context, factory string) {
	machines, err := h.Machines.List(c.Request.Context(), factory)
	if err != nil {
		internalError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

func (h *MachineHandler) GetMachine(c *gin.Context) {
	id, ok := objectID(c, "id", machineErrors.notFound)
	if !ok {
		return
	}
	machine, err := h.Machines.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, machineErrors)
		return
	}
	c.JSON(http.StatusOK, machine)
}

// UpdateMachine replaces the machine's fields. Counters left out of the body keep their stored values.
func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	var req machineRequest
	if !bindJSON(c, &req) {
		return
	}
	if msg := req.validate(); msg != "" {
		badRequest(c, msg)
		return
	}

	msgs := errorMessages{notFound: "Machine does not exist", duplicate: msgMachineIDExists}
	id, ok := objectID(c, "id", msgs.notFound)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	current, err := h.Machines.FindByID(ctx, id)
	if err != nil {
		respondError(c, h.Log, err, msgs)
		return
	}
	if current.MID != req.MID {
		if _, err := h.Machines.FindByMID(ctx, req.MID); err == nil {
			badRequest(c, msgMachineIDExists)
			return
		} else if !errors.Is(err, repository.ErrNotFound) {
			internalError(c, h.Log, err)
			return
		}
	}

	next := &models.Machine{
		MID:              req.MID,
		Factory:          req.Factory,
		Product:          req.Product,
		MaxRunningHrs:    req.MaxRunningHrs.Float(),
		InstalledDate:    req.InstalledDate,
		TotalProductions: current.TotalProductions,
		TotalRunningHrs:  current.TotalRunningHrs,
	}
	if req.TotalProductions.set {
		next.TotalProductions = req.TotalProductions.Float()
	}
	if req.TotalRunningHrs.set {
		next.TotalRunningHrs = req.TotalRunningHrs.Float()
	}

	machine, err := h.Machines.Update(ctx, id, next)
	if err != nil {
		respondError(c, h.Log, err, msgs)
		return
	}

	h.Hub.Broadcast(socket.EventMachineChanged, machine)
	c.JSON(http.StatusOK, machine)
}

func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	id, ok := objectID(c, "id", machineErrors.notFound)
	if !ok {
		return
	}
	machine, err := h.Machines.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Log, err, machineErrors)
		return
	}

	h.Hub.Broadcast(socket.EventMachineChanged, gin.H{"_id": machine.ID.Hex(), "deleted": true})
	c.JSON(http.StatusOK, machine)
}
