package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labelcheck/internal/domain"
	"labelcheck/internal/service"
)

// CheckHandler handles label compliance check endpoints.
type CheckHandler struct {
	checkService service.CheckService
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(checkService service.CheckService) *CheckHandler {
	return &CheckHandler{checkService: checkService}
}

// TextCheckRequest is the payload for raw-text checks.
type TextCheckRequest struct {
	RawText    string            `json:"raw_text" binding:"required"`
	SourceType domain.SourceType `json:"source_type"`
}

// URLCheckRequest is the payload for storefront URL checks.
type URLCheckRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// BarcodeCheckRequest is the payload for barcode number checks.
type BarcodeCheckRequest struct {
	Barcode    string            `json:"barcode" binding:"required"`
	SourceType domain.SourceType `json:"source_type"`
}

// CheckText handles POST /api/v1/checks/text
// @Summary Check label text
// @Description Extract mandatory label declarations from raw text and evaluate compliance
// @Tags checks
// @Accept json
// @Produce json
// @Param request body TextCheckRequest true "Label text"
// @Success 201 {object} Response{data=domain.CheckRecord} "Check result"
// @Failure 400 {object} ErrorResponseBody "Empty text"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /checks/text [post]
func (h *CheckHandler) CheckText(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	var req TextCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.checkService.CheckText(c.Request.Context(), service.TextCheckInput{
		UserID:     claims.UserID,
		Username:   claims.Username,
		SourceType: req.SourceType,
		RawText:    req.RawText,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// CheckImage handles POST /api/v1/checks/image
// @Summary Check a label photo
// @Description Run OCR on an uploaded label image and evaluate compliance
// @Tags checks
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Label image (jpg or png)"
// @Param source_type formData string false "Check source" Enums(Camera OCR, Uploaded Image OCR)
// @Success 201 {object} Response{data=domain.CheckRecord} "Check result"
// @Failure 400 {object} ErrorResponseBody "Unsupported file type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "No text recognized"
// @Failure 503 {object} ErrorResponseBody "OCR unavailable"
// @Security BearerAuth
// @Router /checks/image [post]
func (h *CheckHandler) CheckImage(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "image file is required")
		return
	}
	defer func() { _ = file.Close() }()

	record, err := h.checkService.CheckImage(c.Request.Context(), service.ImageCheckInput{
		UserID:     claims.UserID,
		Username:   claims.Username,
		SourceType: domain.SourceType(c.PostForm("source_type")),
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// CheckURL handles POST /api/v1/checks/url
// @Summary Check a storefront product page
// @Description Scrape an Amazon or Flipkart product page and evaluate the listed declarations
// @Tags checks
// @Accept json
// @Produce json
// @Param request body URLCheckRequest true "Product page URL"
// @Success 201 {object} Response{data=domain.CheckRecord} "Check result"
// @Failure 400 {object} ErrorResponseBody "Unsupported storefront"
// @Failure 502 {object} ErrorResponseBody "Page fetch failed"
// @Security BearerAuth
// @Router /checks/url [post]
func (h *CheckHandler) CheckURL(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	var req URLCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.checkService.CheckURL(c.Request.Context(), service.URLCheckInput{
		UserID:   claims.UserID,
		Username: claims.Username,
		URL:      req.URL,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// CheckBarcode handles POST /api/v1/checks/barcode
// @Summary Check a barcode number
// @Description Look up a barcode in the product databases and evaluate the known declarations
// @Tags checks
// @Accept json
// @Produce json
// @Param request body BarcodeCheckRequest true "Barcode number"
// @Success 201 {object} Response{data=domain.CheckRecord} "Check result"
// @Failure 400 {object} ErrorResponseBody "Invalid barcode"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Failure 503 {object} ErrorResponseBody "Lookup unavailable"
// @Security BearerAuth
// @Router /checks/barcode [post]
func (h *CheckHandler) CheckBarcode(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	var req BarcodeCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.checkService.CheckBarcode(c.Request.Context(), service.BarcodeCheckInput{
		UserID:     claims.UserID,
		Username:   claims.Username,
		SourceType: req.SourceType,
		Barcode:    req.Barcode,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// CheckBarcodeImage handles POST /api/v1/checks/barcode-image
// @Summary Check a barcode photo
// @Description Decode the barcode in an uploaded image, then look it up and evaluate compliance
// @Tags checks
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Barcode image (jpg or png)"
// @Success 201 {object} Response{data=domain.CheckRecord} "Check result"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Failure 422 {object} ErrorResponseBody "No barcode found"
// @Failure 503 {object} ErrorResponseBody "Decoder unavailable"
// @Security BearerAuth
// @Router /checks/barcode-image [post]
func (h *CheckHandler) CheckBarcodeImage(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "image file is required")
		return
	}
	defer func() { _ = file.Close() }()

	record, err := h.checkService.CheckBarcodeImage(c.Request.Context(), service.ImageCheckInput{
		UserID:   claims.UserID,
		Username: claims.Username,
		File:     file,
		Header:   header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}
