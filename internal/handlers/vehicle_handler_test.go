package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

func vehicleRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	handler := NewVehicleHandler(db)

	router := gin.New()
	router.GET("/api/vehicles", handler.List)
	router.POST("/api/vehicles", handler.Create)
	router.GET("/api/vehicles/:id", handler.Get)
	router.PUT("/api/vehicles/:id", handler.Update)
	router.DELETE("/api/vehicles/:id", handler.Delete)
	router.PUT("/api/vehicles/:id/documents", handler.UpdateDocuments)
	return router, db
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestVehicleCreateParsesExpiryDates(t *testing.T) {
	router, db := vehicleRouter(t)

	req := jsonRequest(t, http.MethodPost, "/api/vehicles", gin.H{
		"vehicleNumber": "MH12AB1234",
		"model":         "Tata 407",
		"insurance":     "2027-03-15",
		"puc":           "not-a-date",
	})
	rec := doRequest(router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var vehicle models.Vehicle
	require.NoError(t, db.First(&vehicle, "vehicle_number = ?", "MH12AB1234").Error)
	assert.Equal(t, "active", vehicle.Status)
	require.NotNil(t, vehicle.Insurance)
	assert.Equal(t, "2027-03-15", vehicle.Insurance.Format("2006-01-02"))
	assert.Nil(t, vehicle.PUC)
}

func TestVehicleCreateValidation(t *testing.T) {
	router, _ := vehicleRouter(t)
	rec := doRequest(router, jsonRequest(t, http.MethodPost, "/api/vehicles", gin.H{"model": "Tata 407"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVehicleGetAndDelete(t *testing.T) {
	router, db := vehicleRouter(t)
	vehicle := models.Vehicle{VehicleNumber: "KA01CD5678", Model: "Eicher Pro"}
	require.NoError(t, db.Create(&vehicle).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicle.ID.String(), nil)
	assert.Equal(t, http.StatusOK, doRequest(router, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/vehicles/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, doRequest(router, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/vehicles/"+vehicle.ID.String(), nil)
	assert.Equal(t, http.StatusOK, doRequest(router, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/vehicles/"+vehicle.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, doRequest(router, req).Code)
}

func TestVehicleUpdateDocuments(t *testing.T) {
	router, db := vehicleRouter(t)
	vehicle := models.Vehicle{VehicleNumber: "KA01CD5678", Model: "Eicher Pro"}
	require.NoError(t, db.Create(&vehicle).Error)

	req := jsonRequest(t, http.MethodPut, "/api/vehicles/"+vehicle.ID.String()+"/documents", []gin.H{
		{"documentType": "puc", "url": "https://storage.example.com/puc.pdf"},
		{"documentType": "insurance", "url": "https://storage.example.com/ins.pdf"},
	})
	require.Equal(t, http.StatusOK, doRequest(router, req).Code)

	var docs []models.VehicleDocument
	require.NoError(t, db.Where("vehicle_id = ?", vehicle.ID).Find(&docs).Error)
	assert.Len(t, docs, 2)

	req = jsonRequest(t, http.MethodPut, "/api/vehicles/"+vehicle.ID.String()+"/documents", []gin.H{})
	assert.Equal(t, http.StatusBadRequest, doRequest(router, req).Code)
}
