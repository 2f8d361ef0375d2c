package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"labelcheck/internal/domain"
	"labelcheck/internal/handler"
	"labelcheck/internal/middleware"
	"labelcheck/internal/service"
	"labelcheck/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(w *httptest.ResponseRecorder, claims *service.Claims) (*gin.Context, *gin.Engine) {
	c, r := gin.CreateTestContext(w)
	if claims != nil {
		c.Set(middleware.ContextKeyClaims, claims)
	}
	return c, r
}

func testClaims() *service.Claims {
	return &service.Claims{
		UserID:   uuid.New(),
		Username: "consumer1",
		Role:     domain.RoleUser,
	}
}

func TestCheckHandler_CheckText_Success(t *testing.T) {
	mockCheck := new(mocks.MockCheckService)
	h := handler.NewCheckHandler(mockCheck)

	claims := testClaims()
	record := &domain.CheckRecord{
		ID:               uuid.New(),
		UserID:           claims.UserID,
		ComplianceStatus: "COMPLIANT",
	}
	mockCheck.On("CheckText", mock.Anything, service.TextCheckInput{
		UserID:     claims.UserID,
		Username:   claims.Username,
		SourceType: domain.SourceCameraOCR,
		RawText:    "MRP: 45.00",
	}).Return(record, nil)

	body, _ := json.Marshal(map[string]string{
		"raw_text":    "MRP: 45.00",
		"source_type": "Camera OCR",
	})

	w := httptest.NewRecorder()
	c, _ := testContext(w, claims)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/checks/text", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckText(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockCheck.AssertExpectations(t)
}

func TestCheckHandler_CheckText_MissingBody(t *testing.T) {
	mockCheck := new(mocks.MockCheckService)
	h := handler.NewCheckHandler(mockCheck)

	w := httptest.NewRecorder()
	c, _ := testContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/checks/text", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckText(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCheck.AssertNotCalled(t, "CheckText", mock.Anything, mock.Anything)
}

func TestCheckHandler_CheckText_NoAuthContext(t *testing.T) {
	mockCheck := new(mocks.MockCheckService)
	h := handler.NewCheckHandler(mockCheck)

	w := httptest.NewRecorder()
	c, _ := testContext(w, nil)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/checks/text", bytes.NewReader([]byte(`{"raw_text":"x"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckText(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckHandler_CheckText_EmptyTextMapped(t *testing.T) {
	mockCheck := new(mocks.MockCheckService)
	h := handler.NewCheckHandler(mockCheck)

	mockCheck.On("CheckText", mock.Anything, mock.AnythingOfType("service.TextCheckInput")).
		Return(nil, domain.ErrEmptyText)

	body, _ := json.Marshal(map[string]string{"raw_text": "   "})

	w := httptest.NewRecorder()
	c, _ := testContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/checks/text", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckText(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "EMPTY_TEXT", resp.Error.Code)
}

func TestCheckHandler_CheckURL_UnsupportedStorefront(t *testing.T) {
	mockCheck := new(mocks.MockCheckService)
	h := handler.NewCheckHandler(mockCheck)

	mockCheck.On("CheckURL", mock.Anything, mock.AnythingOfType("service.URLCheckInput")).
		Return(nil, domain.ErrUnsupportedStorefront)

	body, _ := json.Marshal(map[string]string{"url": "https://example.com/p/1"})

	w := httptest.NewRecorder()
	c, _ := testContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/checks/url", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckURL(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckHandler_CheckBarcode_NotFound(t *testing.T) {
	mockCheck := new(mocks.MockCheckService)
	h := handler.NewCheckHandler(mockCheck)

	mockCheck.On("CheckBarcode", mock.Anything, mock.AnythingOfType("service.BarcodeCheckInput")).
		Return(nil, domain.ErrProductNotFound)

	body, _ := json.Marshal(map[string]string{"barcode": "0000000000000"})

	w := httptest.NewRecorder()
	c, _ := testContext(w, testClaims())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/checks/barcode", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CheckBarcode(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
