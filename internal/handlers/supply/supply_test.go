package supply

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SupplyHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCirculatingHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Supply returned as plain 7-decimal text", func(t *testing.T) {
		service.EXPECT().CirculatingSupply(gomock.Any()).Return(75.8, nil)

		req := httptest.NewRequest("GET", "/api/supply/circulating", nil)
		rr := httptest.NewRecorder()

		handler.Circulating(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Equal(t, "75.8000000", rr.Body.String())
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().CirculatingSupply(gomock.Any()).Return(0.0, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/supply/circulating", nil)
		rr := httptest.NewRecorder()

		handler.Circulating(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTotalHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().TotalSupply(gomock.Any()).Return(100500.0, nil)

	req := httptest.NewRequest("GET", "/api/supply/total", nil)
	rr := httptest.NewRecorder()

	handler.Total(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "100500.0000000", rr.Body.String())
}
