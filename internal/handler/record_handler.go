package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelcheck/internal/domain"
	"labelcheck/internal/export"
	"labelcheck/internal/port"
	"labelcheck/internal/service"
)

// RecordHandler handles persisted check record endpoints.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

func recordFilterFromQuery(c *gin.Context) port.RecordFilter {
	var filter port.RecordFilter
	if st := c.Query("source_type"); st != "" {
		filter.SourceType = domain.SourceType(st)
	}
	if v := c.Query("compliant"); v == "true" || v == "false" {
		compliant := v == "true"
		filter.Compliant = &compliant
	}
	if id, err := uuid.Parse(c.Query("user_id")); err == nil {
		filter.UserID = id
	}
	return filter
}

// List handles GET /api/v1/records
// @Summary List check records
// @Description List compliance checks. Officers see all records, users see their own.
// @Tags records
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param source_type query string false "Filter by check source"
// @Param compliant query bool false "Filter by compliance outcome"
// @Param user_id query string false "Filter by user (officers only)"
// @Success 200 {object} Response{data=[]domain.CheckRecord,meta=PagMeta} "Records"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	records, total, err := h.recordService.List(c.Request.Context(), claims, recordFilterFromQuery(c), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/records/:id
// @Summary Get a check record
// @Tags records
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=domain.CheckRecord} "Record"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /records/{id} [get]
func (h *RecordHandler) GetByID(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), claims, recordID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// ExportCSV handles GET /api/v1/records/export/csv
// @Summary Export check records as CSV
// @Description Stream the filtered records as a UTF-8 CSV download
// @Tags records
// @Produce text/csv
// @Param source_type query string false "Filter by check source"
// @Param compliant query bool false "Filter by compliance outcome"
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /records/export/csv [get]
func (h *RecordHandler) ExportCSV(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	filename := export.BuildFilename("compliance_records", "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.recordService.ExportCSV(c.Request.Context(), claims, recordFilterFromQuery(c), c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}

// ExportXLSX handles GET /api/v1/records/export/xlsx
// @Summary Export check records as XLSX
// @Description Stream the filtered records as an Excel workbook download
// @Tags records
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param source_type query string false "Filter by check source"
// @Param compliant query bool false "Filter by compliance outcome"
// @Success 200 {string} string "XLSX file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /records/export/xlsx [get]
func (h *RecordHandler) ExportXLSX(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	filename := export.BuildFilename("compliance_records", "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.recordService.ExportXLSX(c.Request.Context(), claims, recordFilterFromQuery(c), c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}

// GetImageURL handles GET /api/v1/records/:id/image
// @Summary Get a presigned URL for the archived label image
// @Tags records
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=object} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "No archived image"
// @Security BearerAuth
// @Router /records/{id}/image [get]
func (h *RecordHandler) GetImageURL(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	url, err := h.recordService.GetImageURL(c.Request.Context(), claims, recordID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
