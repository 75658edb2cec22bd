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

func machineBody() gin.H {
	return gin.H{
		"mId":           "MCH001",
		"maxRunningHrs": 60,
		"product":       "Sausages",
		"mFactory":      "FAC001",
		"installedDate": "2023-06-01",
	}
}

func TestCreateMachine(t *testing.T) {
	repo := new(repomock.MachineRepository)
	repo.On("FindByMID", mock.Anything, "MCH001").Return(nil, repository.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Machine) bool {
		return m.MID == "MCH001" && m.MaxRunningHrs == 60 && m.TotalProductions == 0
	})).Return(nil)
	h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

	w := perform(h.CreateMachine, http.MethodPost, "/machine", "/machine", machineBody())

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestCreateMachine_Validation(t *testing.T) {
	tests := []struct {
		name  string
		patch gin.H
		want  string
	}{
		{"missing product", gin.H{"product": ""}, "All fields must be filled."},
		{"missing hours", gin.H{"maxRunningHrs": nil}, "All fields must be filled."},
		{"short id", gin.H{"mId": "M1"}, "Machine ID must include at least 6 characters. Eg: XXX000"},
		{"too few hours", gin.H{"maxRunningHrs": "49"}, "Maximum running hours cannot be less than 50."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := machineBody()
			for k, v := range tt.patch {
				body[k] = v
			}
			repo := new(repomock.MachineRepository)
			h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

			w := perform(h.CreateMachine, http.MethodPost, "/machine", "/machine", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, decode[gin.H](t, w)["error"])
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateMachine_DuplicateMID(t *testing.T) {
	repo := new(repomock.MachineRepository)
	repo.On("FindByMID", mock.Anything, "MCH001").Return(&models.Machine{MID: "MCH001"}, nil)
	h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

	w := perform(h.CreateMachine, http.MethodPost, "/machine", "/machine", machineBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgMachineIDExists, decode[gin.H](t, w)["error"])
}

func TestUpdateMachine_KeepsStoredTotals(t *testing.T) {
	id := primitive.NewObjectID()
	current := &models.Machine{ID: id, MID: "MCH001", TotalProductions: 120, TotalRunningHrs: 40}

	repo := new(repomock.MachineRepository)
	repo.On("FindByID", mock.Anything, id).Return(current, nil)
	repo.On("Update", mock.Anything, id, mock.MatchedBy(func(m *models.Machine) bool {
		return m.TotalProductions == 120 && m.TotalRunningHrs == 40 && m.MaxRunningHrs == 60
	})).Return(current, nil)
	h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

	w := perform(h.UpdateMachine, http.MethodPut, "/machine/:id", "/machine/"+id.Hex(), machineBody())

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "FindByMID", mock.Anything, mock.Anything)
}

func TestUpdateMachine_MIDTakenByAnother(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(repomock.MachineRepository)
	repo.On("FindByID", mock.Anything, id).Return(&models.Machine{ID: id, MID: "MCH999"}, nil)
	repo.On("FindByMID", mock.Anything, "MCH001").Return(&models.Machine{ID: primitive.NewObjectID(), MID: "MCH001"}, nil)
	h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

	w := perform(h.UpdateMachine, http.MethodPut, "/machine/:id", "/machine/"+id.Hex(), machineBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteMachine_NotFound(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		repo := new(repomock.MachineRepository)
		h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

		w := perform(h.DeleteMachine, http.MethodDelete, "/machine/:id", "/machine/not-an-id", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Machine not found"}`, w.Body.String())
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := new(repomock.MachineRepository)
		repo.On("Delete", mock.Anything, id).Return(nil, repository.ErrNotFound)
		h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

		w := perform(h.DeleteMachine, http.MethodDelete, "/machine/:id", "/machine/"+id.Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Machine not found"}`, w.Body.String())
	})
}

func TestGetAllMachines_FilterByFactory(t *testing.T) {
	repo := new(repomock.MachineRepository)
	repo.On("List", mock.Anything, "FAC001").Return([]models.Machine{{MID: "MCH001", Factory: "FAC001"}}, nil)
	h := &MachineHandler{Machines: repo, Log: zap.NewNop()}

	w := perform(h.GetAllMachines, http.MethodGet, "/machine", "/machine?factory=FAC001", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Machine](t, w), 1)
}
