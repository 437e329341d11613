package handlers

import (
	"errors"
	"log"
	"net/http"

	request "restaurant_tabs/internal/adapter/http/dto/request"
	response "restaurant_tabs/internal/adapter/http/dto/response"
	"restaurant_tabs/internal/usecase"
	"restaurant_tabs/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout link requests for a table's active order.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentLink creates a checkout link for the active order's confirmed
// total. Refused while unsent items remain in the pending queue.
func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	tableID := c.Param("table_id")

	var req request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payload table_id=%s err=%v", tableID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start table_id=%s", tableID)

	returnURL, cancelURL := req.Resolve()
	link, err := h.usecase.RequestPayment(c.Request.Context(), tableID, returnURL, cancelURL)
	if err != nil {
		log.Printf("[payment][handler] create failed table_id=%s err=%v", tableID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success table_id=%s order_id=%s amount=%.2f", tableID, link.OrderID, link.Amount)

	c.JSON(http.StatusOK, response.FromPaymentLink(link))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTableID),
		errors.Is(err, usecase.ErrInvalidReturnURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPendingItemsExist),
		errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("CONFLICT", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
