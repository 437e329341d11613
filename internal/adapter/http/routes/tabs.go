package routes

import (
	"restaurant_tabs/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTables = "/tables"
)

func addTabRoutes(rg *gin.RouterGroup, tabHandler *handlers.TabHandler, paymentHandler *handlers.PaymentHandler) {
	tab := rg.Group(PathTables + "/:table_id/tab")
	{
		tab.GET("", tabHandler.GetTab)
		tab.POST("/select", tabHandler.SelectOrder)
		tab.POST("/handoff", tabHandler.ArmHandoff)
		tab.POST("/transfer", tabHandler.TransferCart)
		tab.PATCH("/items/:menu_item_id", tabHandler.SetItemQuantity)
		tab.PUT("/items/:menu_item_id/note", tabHandler.SetItemNote)
		tab.POST("/submit", tabHandler.SubmitPending)
		tab.POST("/payment", paymentHandler.CreatePaymentLink)
	}
}
