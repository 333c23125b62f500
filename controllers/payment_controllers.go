package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// GetPaymentMethods -> GET /payment
func (pc *PaymentController) GetPaymentMethods(c *gin.Context) {
	methods, err := pc.payments.ListPaymentMethods(c.Request.Context())
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payment methods", gin.H{"payment_methods": methods})
}
