package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelcheck/internal/service"
)

// ComplaintHandler handles consumer complaint endpoints.
type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// File handles POST /api/v1/complaints
// @Summary File a complaint
// @Description File a consumer complaint against a purchased product
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body service.FileComplaintInput true "Complaint details"
// @Success 201 {object} Response{data=domain.Complaint} "Complaint filed"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /complaints [post]
func (h *ComplaintHandler) File(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	var input service.FileComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	complaint, err := h.complaintService.File(c.Request.Context(), claims, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, complaint)
}

// List handles GET /api/v1/complaints
// @Summary List complaints
// @Description List complaints. Officers see all complaints, users see their own.
// @Tags complaints
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Complaint,meta=PagMeta} "Complaints"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	complaints, total, err := h.complaintService.List(c.Request.Context(), claims, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, complaints, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/complaints/:id
// @Summary Get a complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Success 200 {object} Response{data=domain.Complaint} "Complaint"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Complaint not found"
// @Security BearerAuth
// @Router /complaints/{id} [get]
func (h *ComplaintHandler) GetByID(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	complaint, err := h.complaintService.GetByID(c.Request.Context(), claims, complaintID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, complaint)
}

// UpdateStatus handles PATCH /api/v1/complaints/:id/status
// @Summary Update complaint status
// @Description Mark a complaint RESOLVED or REJECTED (officers only)
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID (UUID)"
// @Param request body service.UpdateComplaintStatusInput true "New status"
// @Success 200 {object} Response{data=domain.Complaint} "Complaint updated"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Failure 403 {object} ErrorResponseBody "Forbidden - officers only"
// @Failure 404 {object} ErrorResponseBody "Complaint not found"
// @Security BearerAuth
// @Router /complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid complaint ID")
		return
	}

	var input service.UpdateComplaintStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), claims, complaintID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, complaint)
}
