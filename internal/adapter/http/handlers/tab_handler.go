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

// TabHandler handles HTTP requests for the table dining tab.

type TabHandler struct {
	view     usecase.ITabViewUseCase
	selector usecase.ITabSelectorUseCase
	transfer usecase.ICartTransferUseCase
	submit   usecase.ISubmissionUseCase
}

func NewTabHandler(view usecase.ITabViewUseCase, selector usecase.ITabSelectorUseCase, transfer usecase.ICartTransferUseCase, submit usecase.ISubmissionUseCase) *TabHandler {
	return &TabHandler{view: view, selector: selector, transfer: transfer, submit: submit}
}

// GetTab returns the reconciled tab for a table: confirmed rows merged with
// queued pending edits.
func (h *TabHandler) GetTab(c *gin.Context) {
	tableID := c.Param("table_id")
	log.Printf("[tab][handler] get start table_id=%s", tableID)

	view, err := h.view.LoadTab(c.Request.Context(), tableID)
	if err != nil {
		log.Printf("[tab][handler] get failed table_id=%s err=%v", tableID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTabView(view))
}

// SelectOrder repoints the table's active-order pointer at another order on
// the same table.
func (h *TabHandler) SelectOrder(c *gin.Context) {
	tableID := c.Param("table_id")

	var req request.SelectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[tab][handler] select invalid payload table_id=%s err=%v", tableID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tab][handler] select start table_id=%s order_id=%s", tableID, req.OrderID)

	if _, err := h.selector.SelectOrder(c.Request.Context(), tableID, req.OrderID); err != nil {
		log.Printf("[tab][handler] select failed table_id=%s order_id=%s err=%v", tableID, req.OrderID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.view.LoadTab(c.Request.Context(), tableID)
	if err != nil {
		log.Printf("[tab][handler] select reload failed table_id=%s err=%v", tableID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTabView(view))
}

// ArmHandoff stores the order the next cart transfer should target. The
// stored id is consumed on first use.
func (h *TabHandler) ArmHandoff(c *gin.Context) {
	tableID := c.Param("table_id")

	var req request.HandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[tab][handler] handoff invalid payload table_id=%s err=%v", tableID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tab][handler] handoff start table_id=%s order_id=%s", tableID, req.OrderID)

	if err := h.selector.ArmHandoff(c.Request.Context(), tableID, req.OrderID); err != nil {
		log.Printf("[tab][handler] handoff failed table_id=%s order_id=%s err=%v", tableID, req.OrderID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// TransferCart folds the table's menu browsing cart into the pending queue of
// the resolved target order.
func (h *TabHandler) TransferCart(c *gin.Context) {
	tableID := c.Param("table_id")
	log.Printf("[tab][handler] transfer start table_id=%s", tableID)

	moved, err := h.transfer.Transfer(c.Request.Context(), tableID)
	if err != nil {
		log.Printf("[tab][handler] transfer failed table_id=%s err=%v", tableID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tab][handler] transfer success table_id=%s moved=%d", tableID, moved)

	c.JSON(http.StatusOK, response.TransferResponse{TransferredItems: moved})
}

// SetItemQuantity sets the requested total quantity for one menu item on the
// active order's tab.
func (h *TabHandler) SetItemQuantity(c *gin.Context) {
	tableID := c.Param("table_id")
	menuItemID := c.Param("menu_item_id")

	var req request.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[tab][handler] quantity invalid payload table_id=%s menu_item_id=%s err=%v", tableID, menuItemID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tab][handler] quantity start table_id=%s menu_item_id=%s quantity=%d", tableID, menuItemID, *req.Quantity)

	edit := usecase.QuantityEdit{
		MenuItemID: menuItemID,
		Quantity:   *req.Quantity,
		Name:       req.Name,
		UnitPrice:  req.UnitPrice,
	}
	view, err := h.view.SetQuantity(c.Request.Context(), tableID, edit)
	if err != nil {
		log.Printf("[tab][handler] quantity failed table_id=%s menu_item_id=%s err=%v", tableID, menuItemID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTabView(view))
}

// SetItemNote sets or clears the note on one menu item.
func (h *TabHandler) SetItemNote(c *gin.Context) {
	tableID := c.Param("table_id")
	menuItemID := c.Param("menu_item_id")

	var req request.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[tab][handler] note invalid payload table_id=%s menu_item_id=%s err=%v", tableID, menuItemID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tab][handler] note start table_id=%s menu_item_id=%s", tableID, menuItemID)

	view, err := h.view.SetNote(c.Request.Context(), tableID, menuItemID, req.Note)
	if err != nil {
		log.Printf("[tab][handler] note failed table_id=%s menu_item_id=%s err=%v", tableID, menuItemID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTabView(view))
}

// SubmitPending flushes the whole pending queue to the order service as one
// batch and returns the refreshed tab.
func (h *TabHandler) SubmitPending(c *gin.Context) {
	tableID := c.Param("table_id")
	log.Printf("[tab][handler] submit start table_id=%s", tableID)

	view, err := h.submit.Submit(c.Request.Context(), tableID)
	if err != nil {
		log.Printf("[tab][handler] submit failed table_id=%s err=%v", tableID, err)
		appErr := mapTabError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tab][handler] submit success table_id=%s order_id=%s", tableID, view.OrderID)

	c.JSON(http.StatusOK, response.FromTabView(view))
}

func mapTabError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTableID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidMenuItemID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrUnknownMenuItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotOnTable),
		errors.Is(err, usecase.ErrTransferTargetNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuantityBelowConfirmed),
		errors.Is(err, usecase.ErrTransferInProgress),
		errors.Is(err, usecase.ErrNothingToSubmit):
		return pkg.NewDomainErrorSimple("CONFLICT", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
