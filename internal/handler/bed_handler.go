package handler

import (
	"net/http"

	"hospital-bed-management/internal/service"
	"hospital-bed-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	bedService        *service.BedService
	assignmentService *service.AssignmentService
}

func NewBedHandler(bedService *service.BedService, assignmentService *service.AssignmentService) *BedHandler {
	return &BedHandler{
		bedService:        bedService,
		assignmentService: assignmentService,
	}
}

// CreateBedRequest is the payload for creating a bed
type CreateBedRequest struct {
	Room string `json:"room" binding:"required"`
}

// AssignRequest is the payload for assigning a patient to a bed
type AssignRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
}

// ReleaseRequest is the payload for an administrative bed release
type ReleaseRequest struct {
	EndDate string `json:"end_date"`
}

// CreateBed creates a new bed, always available
func (h *BedHandler) CreateBed(c *gin.Context) {
	var req CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bed, err := h.bedService.CreateBed(req.Room)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, bed)
}

// GetBed retrieves a bed by ID
func (h *BedHandler) GetBed(c *gin.Context) {
	bed, err := h.bedService.GetBed(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// ListBeds retrieves all beds, optionally filtered by status
func (h *BedHandler) ListBeds(c *gin.Context) {
	status := c.Query("status")

	var beds interface{}
	var err error
	if status != "" {
		beds, err = h.bedService.ListBedsByStatus(status)
	} else {
		beds, err = h.bedService.ListBeds()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"beds": beds})
}

// ListAvailableBeds retrieves all beds ready for assignment
func (h *BedHandler) ListAvailableBeds(c *gin.Context) {
	beds, err := h.bedService.ListAvailableBeds()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"beds":  beds,
		"count": len(beds),
	})
}

// AssignPatient admits a patient onto the bed
func (h *BedHandler) AssignPatient(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bed, err := h.assignmentService.AssignPatientToBed(c.Param("id"), req.PatientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// ReleaseBed frees a bed directly, bypassing the discharge flow
func (h *BedHandler) ReleaseBed(c *gin.Context) {
	var req ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bed, err := h.bedService.ReleaseBed(c.Param("id"), req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// DeleteBed removes a bed by ID
func (h *BedHandler) DeleteBed(c *gin.Context) {
	if err := h.bedService.DeleteBed(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Bed deleted successfully")
}
