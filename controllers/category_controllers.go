package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

// GetAllCategories -> GET /category, diurutkan berdasarkan nama
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.categories.ListCategories(c.Request.Context())
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of categories", gin.H{"categories": categories})
}

// GetCategoryByID -> GET /category/:category_id
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	menu, err := cc.categories.GetCategoryByUUID(c.Request.Context(), c.Param("category_id"))
	if err != nil {
		middlewares.AbortWithError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category detail", menu)
}
