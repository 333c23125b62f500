package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type RestaurantController struct {
	restaurants *services.RestaurantService
}

func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurants: restaurants}
}

// GetAllRestaurants -> GET /restaurant, rating tertinggi lebih dulu
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.restaurants.RestaurantsByRating(c.Request.Context())
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", gin.H{"restaurants": restaurants})
}

// GetRestaurantsByName -> GET /restaurant/name/:restaurant_name
func (rc *RestaurantController) GetRestaurantsByName(c *gin.Context) {
	restaurants, err := rc.restaurants.RestaurantsByName(c.Request.Context(), c.Param("restaurant_name"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", gin.H{"restaurants": restaurants})
}

// GetRestaurantsByCategory -> GET /restaurant/category/:category_id
func (rc *RestaurantController) GetRestaurantsByCategory(c *gin.Context) {
	restaurants, err := rc.restaurants.RestaurantsByCategory(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", gin.H{"restaurants": restaurants})
}

// GetRestaurantByID -> GET /restaurant/:restaurant_id lengkap dengan kategori dan item
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	details, err := rc.restaurants.RestaurantDetails(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", details)
}

// UpdateRating -> PUT /restaurant/:restaurant_id?customer_rating=4.5
func (rc *RestaurantController) UpdateRating(c *gin.Context) {
	ctx := c.Request.Context()

	restaurant, err := rc.restaurants.RestaurantByUUID(ctx, c.Param("restaurant_id"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	rating, err := strconv.ParseFloat(c.Query("customer_rating"), 64)
	if err != nil {
		middlewares.AbortWithError(c, services.ErrInvalidRating)
		return
	}

	updated, err := rc.restaurants.UpdateRating(ctx, restaurant, rating)
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "RESTAURANT RATING UPDATED SUCCESSFULLY", gin.H{"id": updated.UUID})
}
