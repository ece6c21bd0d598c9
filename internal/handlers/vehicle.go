package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
)

type VehicleHandler struct {
	DB *gorm.DB
}

type vehicleRequest struct {
	VehicleNumber   string  `json:"vehicleNumber" binding:"required"`
	Model           string  `json:"model" binding:"required"`
	Make            string  `json:"make"`
	CompanyName     string  `json:"companyName"`
	Branch          string  `json:"branch"`
	Status          string  `json:"status"`
	Year            int     `json:"year"`
	Color           string  `json:"color"`
	FuelType        string  `json:"fuelType"`
	SeatingCapacity int     `json:"seatingCapacity"`
	CargoLength     float64 `json:"cargoLength"`
	EngineNumber    string  `json:"engineNumber"`
	ChassisNumber   string  `json:"chassisNumber"`
	VehicleDetails  string  `json:"vehicleDetails"`
	ACModel         string  `json:"acModel"`
	RC              string  `json:"rc"`
	Remark          string  `json:"remark"`

	RegistrationDate string `json:"registrationDate"`
	Insurance        string `json:"insurance"`
	RoadTax          string `json:"roadtax"`
	PUC              string `json:"puc"`
	Fitness          string `json:"fitness"`
	GoodsPermit      string `json:"goodsPermit"`
	NationalPermit   string `json:"nationalPermit"`
}

type vehicleDocumentInput struct {
	DocumentType string `json:"documentType" binding:"required"`
	URL          string `json:"url" binding:"required"`
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{DB: db}
}

func (h *VehicleHandler) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := h.DB.Preload("Documents").Order("created_at desc").Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch vehicles"})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle id"})
		return
	}

	var vehicle models.Vehicle
	if err := h.DB.Preload("Documents").First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber and model are required"})
		return
	}

	vehicle := vehicleFromRequest(req)
	if err := h.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle id"})
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "vehicleNumber and model are required"})
		return
	}

	var vehicle models.Vehicle
	if err := h.DB.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}

	updated := vehicleFromRequest(req)
	updated.ID = vehicle.ID
	updated.CreatedAt = vehicle.CreatedAt
	if err := h.DB.Save(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update vehicle"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle id"})
		return
	}

	result := h.DB.Delete(&models.Vehicle{}, "id = ?", vehicleID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete vehicle"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted successfully"})
}

// UpdateDocuments attaches uploaded document URLs to a vehicle.
func (h *VehicleHandler) UpdateDocuments(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle id"})
		return
	}

	var docs []vehicleDocumentInput
	if err := c.ShouldBindJSON(&docs); err != nil || len(docs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "documentType and url are required"})
		return
	}

	var vehicle models.Vehicle
	if err := h.DB.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}

	now := time.Now()
	records := make([]models.VehicleDocument, 0, len(docs))
	for _, doc := range docs {
		records = append(records, models.VehicleDocument{
			VehicleID:  vehicle.ID,
			Kind:       doc.DocumentType,
			URL:        doc.URL,
			UploadedAt: now,
		})
	}

	if err := h.DB.Create(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update documents"})
		return
	}

	h.DB.Model(&vehicle).Update("updated_at", now)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Documents updated successfully"})
}

func vehicleFromRequest(req vehicleRequest) models.Vehicle {
	status := req.Status
	if status == "" {
		status = "active"
	}
	return models.Vehicle{
		VehicleNumber:    req.VehicleNumber,
		Model:            req.Model,
		Make:             req.Make,
		CompanyName:      req.CompanyName,
		Branch:           req.Branch,
		Status:           status,
		Year:             req.Year,
		Color:            req.Color,
		FuelType:         req.FuelType,
		SeatingCapacity:  req.SeatingCapacity,
		CargoLength:      req.CargoLength,
		EngineNumber:     req.EngineNumber,
		ChassisNumber:    req.ChassisNumber,
		VehicleDetails:   req.VehicleDetails,
		ACModel:          req.ACModel,
		RC:               req.RC,
		Remark:           req.Remark,
		RegistrationDate: parseDate(req.RegistrationDate),
		Insurance:        parseDate(req.Insurance),
		RoadTax:          parseDate(req.RoadTax),
		PUC:              parseDate(req.PUC),
		Fitness:          parseDate(req.Fitness),
		GoodsPermit:      parseDate(req.GoodsPermit),
		NationalPermit:   parseDate(req.NationalPermit),
	}
}
