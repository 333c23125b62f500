package repository

import (
	"context"
	"strings"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type restaurantRepository struct {
	db *gorm.DB
}

func (r *restaurantRepository) withAddress(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Address").Preload("Address.State")
}

func (r *restaurantRepository) FindByUUID(ctx context.Context, uuid string) (*models.Restaurant, error) {
	return first[models.Restaurant](r.withAddress(ctx).Where("uuid = ?", uuid))
}

func (r *restaurantRepository) ListByRating(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.withAddress(ctx).Order("customer_rating desc").Order("id asc").Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) SearchByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.withAddress(ctx).
		Where("LOWER(restaurant_name) LIKE ?", pattern).
		Order("restaurant_name asc").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := r.withAddress(ctx).
		Joins("JOIN restaurant_category ON restaurant_category.restaurant_id = restaurant.id").
		Where("restaurant_category.category_id = ?", categoryID).
		Order("restaurant.restaurant_name asc").
		Find(&restaurants).Error
	return restaurants, err
}

func (r *restaurantRepository) UpdateRating(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]interface{}{
			"customer_rating":           restaurant.CustomerRating,
			"number_of_customers_rated": restaurant.NumberCustomersRated,
		}).Error
}

type categoryRepository struct {
	db *gorm.DB
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("category_name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByUUID(ctx context.Context, uuid string) (*models.Category, error) {
	return first[models.Category](r.db.WithContext(ctx).Where("uuid = ?", uuid))
}

func (r *categoryRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Joins("JOIN restaurant_category ON restaurant_category.category_id = category.id").
		Where("restaurant_category.restaurant_id = ?", restaurantID).
		Order("category.category_name asc").
		Find(&categories).Error
	return categories, err
}

type itemRepository struct {
	db *gorm.DB
}

func (r *itemRepository) FindByUUID(ctx context.Context, uuid string) (*models.Item, error) {
	return first[models.Item](r.db.WithContext(ctx).Where("uuid = ?", uuid))
}

func (r *itemRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Joins("JOIN category_item ON category_item.item_id = item.id").
		Where("category_item.category_id = ?", categoryID).
		Order("item.item_name asc").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) ListByRestaurantAndCategory(ctx context.Context, restaurantID, categoryID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Joins("JOIN category_item ON category_item.item_id = item.id").
		Joins("JOIN restaurant_item ON restaurant_item.item_id = item.id").
		Where("category_item.category_id = ? AND restaurant_item.restaurant_id = ?", categoryID, restaurantID).
		Order("item.item_name asc").
		Find(&items).Error
	return items, err
}

func (r *itemRepository) TopByOrderCount(ctx context.Context, restaurantID uint, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Select("item.*").
		Joins("JOIN order_item ON order_item.item_id = item.id").
		Joins("JOIN orders ON orders.id = order_item.order_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Group("item.id").
		Order("COUNT(order_item.id) desc").
		Order("item.id asc").
		Limit(limit).
		Find(&items).Error
	return items, err
}
