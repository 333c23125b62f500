package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type ItemController struct {
	items       *services.ItemService
	restaurants *services.RestaurantService
}

func NewItemController(items *services.ItemService, restaurants *services.RestaurantService) *ItemController {
	return &ItemController{items: items, restaurants: restaurants}
}

type itemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	Price    int    `json:"price"`
	ItemType string `json:"item_type"`
}

func toItemResponses(items []models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemResponse{
			ID:       item.UUID,
			ItemName: item.ItemName,
			Price:    item.Price,
			ItemType: item.TypeName(),
		})
	}
	return out
}

// GetPopularItems -> GET /item/restaurant/:restaurant_id (5 item paling sering dipesan)
func (ic *ItemController) GetPopularItems(c *gin.Context) {
	ctx := c.Request.Context()

	restaurant, err := ic.restaurants.RestaurantByUUID(ctx, c.Param("restaurant_id"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	items, err := ic.items.PopularItems(ctx, restaurant)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Popular items", gin.H{"item_list": toItemResponses(items)})
}
