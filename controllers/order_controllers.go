package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type itemQuantityRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity" binding:"gte=1"`
	Price    int    `json:"price" binding:"gte=0"`
}

type saveOrderRequest struct {
	CouponID       string                `json:"coupon_id"`
	PaymentID      string                `json:"payment_id"`
	AddressID      string                `json:"address_id"`
	RestaurantID   string                `json:"restaurant_id"`
	Bill           float64               `json:"bill" binding:"gte=0"`
	Discount       float64               `json:"discount" binding:"gte=0"`
	ItemQuantities []itemQuantityRequest `json:"item_quantities" binding:"dive"`
}

// GetCouponByName -> GET /order/coupon/:coupon_name
func (oc *OrderController) GetCouponByName(c *gin.Context) {
	coupon, err := oc.orders.GetCouponByName(c.Request.Context(), c.Param("coupon_name"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Coupon detail", coupon)
}

// GetCustomerOrders -> GET /order, pesanan terbaru lebih dulu
func (oc *OrderController) GetCustomerOrders(c *gin.Context) {
	orders, err := oc.orders.ListOrders(c.Request.Context(), middlewares.CurrentCustomer(c).UUID)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{"orders": orders})
}

// SaveOrder -> POST /order
func (oc *OrderController) SaveOrder(c *gin.Context) {
	var req saveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	input := services.PlaceOrderInput{
		CouponUUID:     req.CouponID,
		PaymentUUID:    req.PaymentID,
		AddressUUID:    req.AddressID,
		RestaurantUUID: req.RestaurantID,
		Bill:           req.Bill,
		Discount:       req.Discount,
	}
	for _, iq := range req.ItemQuantities {
		input.Items = append(input.Items, services.ItemQuantity{
			ItemUUID: iq.ItemID,
			Quantity: iq.Quantity,
			Price:    iq.Price,
		})
	}

	order, err := oc.orders.PlaceOrder(c.Request.Context(), middlewares.CurrentCustomer(c), input)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "ORDER SUCCESSFULLY PLACED", gin.H{"id": order.UUID})
}
