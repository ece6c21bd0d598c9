package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/middleware"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

func operationRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	handler := NewOperationHandler(db, noopLogger())

	router := gin.New()
	protected := router.Group("/api")
	protected.Use(middleware.SessionRequired(testSecret))
	protected.GET("/operations", handler.List)
	protected.POST("/operations", handler.Create)
	protected.PUT("/operations/:id", handler.UpdateStatus)
	return router, db
}

func seedOperation(t *testing.T, db *gorm.DB, amount float64) models.Operation {
	t.Helper()
	op := models.Operation{VehicleNumber: "MH12AB1234", OperationType: "Brake service", Status: "pending", Amount: amount}
	require.NoError(t, db.Create(&op).Error)
	return op
}

func listOperations(t *testing.T, router *gin.Engine, identifier string) []models.Operation {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/operations", nil)
	req.AddCookie(sessionCookie(t, identifier))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var ops []models.Operation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ops))
	return ops
}

func TestOperationListWindowsByRole(t *testing.T) {
	router, db := operationRouter(t)
	seedUser(t, db, "user@example.com", "", "user")
	seedUser(t, db, "admin@example.com", "", "admin")
	seedUser(t, db, "super@example.com", "", "superadmin")

	seedOperation(t, db, 100)
	seedOperation(t, db, 2000)
	seedOperation(t, db, 3500)
	seedOperation(t, db, 5000)
	seedOperation(t, db, 12000)

	amounts := func(ops []models.Operation) []float64 {
		out := make([]float64, 0, len(ops))
		for _, op := range ops {
			out = append(out, op.Amount)
		}
		return out
	}

	assert.ElementsMatch(t, []float64{100, 2000}, amounts(listOperations(t, router, "user@example.com")))
	assert.ElementsMatch(t, []float64{3500, 5000}, amounts(listOperations(t, router, "admin@example.com")))
	assert.ElementsMatch(t, []float64{12000}, amounts(listOperations(t, router, "super@example.com")))
}

func TestOperationListRequiresSession(t *testing.T) {
	router, _ := operationRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/operations", nil)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, req).Code)
}

func TestOperationCreateComputesBillingSnapshot(t *testing.T) {
	router, db := operationRouter(t)
	seedUser(t, db, "user@example.com", "", "user")

	// Numeric fields arrive as strings from the form; they must still parse.
	body, err := json.Marshal(gin.H{
		"vehicleNumber":   "MH12AB1234",
		"formType":        "vehicle",
		"operationType":   "General service",
		"operationDate":   "2026-08-01",
		"amount":          "250",
		"spareWithoutTax": "1000",
		"labour":          500,
		"outsideLabour":   "not-a-number",
		"discountLabour":  "10",
		"discountOnParts": "18%",
		"gstOnParts":      "5%",
		"gstOnLabour":     "18%",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/operations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, "user@example.com"))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var op models.Operation
	require.NoError(t, db.First(&op, "vehicle_number = ?", "MH12AB1234").Error)

	assert.Equal(t, "pending", op.Status)
	assert.Equal(t, 250.0, op.Amount)
	assert.Equal(t, 0.0, op.OutsideLabour)
	assert.Equal(t, 180.0, op.SpareDiscountAmount)
	assert.Equal(t, 861.0, op.SpareWithGST)
	assert.Equal(t, 531.0, op.LabourWithGST)
	assert.Equal(t, 1642.0, op.TotalInvAmountPayable)
	assert.Equal(t, 1270.0, op.TotalAmountWithDiscountButWithoutTax)
}

func TestOperationCreateResolvesVehicleID(t *testing.T) {
	router, db := operationRouter(t)
	seedUser(t, db, "user@example.com", "", "user")

	vehicle := models.Vehicle{VehicleNumber: "KA01CD5678"}
	require.NoError(t, db.Create(&vehicle).Error)

	body, err := json.Marshal(gin.H{"vehicleId": vehicle.ID.String(), "operationType": "Tyre change"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/operations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, "user@example.com"))
	rec := doRequest(router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var op models.Operation
	require.NoError(t, db.First(&op, "vehicle_number = ?", "KA01CD5678").Error)
	assert.Equal(t, "Tyre change", op.OperationType)
}

func updateStatus(t *testing.T, router *gin.Engine, identifier string, opID string, status string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"status": status})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/operations/"+opID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, identifier))
	return doRequest(router, req)
}

func TestOperationUpdateStatusEnforcesAmountAccess(t *testing.T) {
	router, db := operationRouter(t)
	seedUser(t, db, "user@example.com", "", "user")
	seedUser(t, db, "admin@example.com", "", "admin")
	seedUser(t, db, "super@example.com", "", "superadmin")

	op := seedOperation(t, db, 3500)

	assert.Equal(t, http.StatusForbidden, updateStatus(t, router, "user@example.com", op.ID.String(), "approved").Code)
	assert.Equal(t, http.StatusOK, updateStatus(t, router, "admin@example.com", op.ID.String(), "approved").Code)

	var updated models.Operation
	require.NoError(t, db.First(&updated, "id = ?", op.ID).Error)
	assert.Equal(t, "approved", updated.Status)

	big := seedOperation(t, db, 9000)
	assert.Equal(t, http.StatusForbidden, updateStatus(t, router, "admin@example.com", big.ID.String(), "approved").Code)
	assert.Equal(t, http.StatusOK, updateStatus(t, router, "super@example.com", big.ID.String(), "rejected").Code)
}

func TestOperationUpdateStatusValidation(t *testing.T) {
	router, db := operationRouter(t)
	seedUser(t, db, "user@example.com", "", "user")
	op := seedOperation(t, db, 100)

	assert.Equal(t, http.StatusBadRequest, updateStatus(t, router, "user@example.com", op.ID.String(), "done").Code)
	assert.Equal(t, http.StatusBadRequest, updateStatus(t, router, "user@example.com", "not-a-uuid", "approved").Code)
}
