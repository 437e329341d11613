package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant_tabs/internal/adapter/http/handlers/mocks"
	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/tables/:table_id/tab/payment", h.CreatePaymentLink)
	return r
}

func TestPaymentHandler_CreatePaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/t1/tab/payment", bytes.NewBufferString(`{"return_url":"https://ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pending items map to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().RequestPayment(gomock.Any(), "t1", "https://ok", "https://cancel").Return(entities.PaymentLink{}, usecase.ErrPendingItemsExist)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/t1/tab/payment", bytes.NewBufferString(`{"return_url":"https://ok","cancel_url":"https://cancel"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		link := entities.PaymentLink{OrderID: "ord-1", Amount: 24, CheckoutURL: "https://checkout/x"}
		uc.EXPECT().RequestPayment(gomock.Any(), "t1", "https://ok", "https://cancel").Return(link, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/tables/t1/tab/payment", bytes.NewBufferString(`{"return_url":"https://ok","cancel_url":"https://cancel"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPaymentRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json body: %v", err)
		}
		if body["checkout_url"] != "https://checkout/x" || body["amount"] != 24.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
