package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
	"github.com/yeremiapane/food-ordering-app/utils"
)

// CategoryMenu is one category of a restaurant with the items it serves there.
type CategoryMenu struct {
	Category models.Category `json:"category"`
	Items    []models.Item   `json:"item_list"`
}

type RestaurantDetails struct {
	Restaurant models.Restaurant `json:"restaurant"`
	Categories []CategoryMenu    `json:"categories"`
}

type RestaurantService struct {
	restaurants repository.RestaurantRepository
	categories  repository.CategoryRepository
	items       *ItemService
	log         *logrus.Logger
}

func NewRestaurantService(repos *repository.Repositories, items *ItemService, log *logrus.Logger) *RestaurantService {
	return &RestaurantService{
		restaurants: repos.Restaurants,
		categories:  repos.Categories,
		items:       items,
		log:         log,
	}
}

func (s *RestaurantService) RestaurantByUUID(ctx context.Context, restaurantUUID string) (*models.Restaurant, error) {
	if strings.TrimSpace(restaurantUUID) == "" {
		return nil, ErrRestaurantIDEmpty
	}

	restaurant, err := s.restaurants.FindByUUID(ctx, restaurantUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("lookup restaurant: %w", err)
	}
	return restaurant, nil
}

// RestaurantsByRating lists every restaurant, best rated first.
func (s *RestaurantService) RestaurantsByRating(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.restaurants.ListByRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

// RestaurantsByName matches name case-insensitively anywhere in the restaurant name.
func (s *RestaurantService) RestaurantsByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrRestaurantNameEmpty
	}

	restaurants, err := s.restaurants.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *RestaurantService) RestaurantsByCategory(ctx context.Context, categoryUUID string) ([]models.Restaurant, error) {
	if strings.TrimSpace(categoryUUID) == "" {
		return nil, ErrCategoryIDEmpty
	}

	category, err := s.categories.FindByUUID(ctx, categoryUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("lookup category: %w", err)
	}

	restaurants, err := s.restaurants.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants by category: %w", err)
	}
	return restaurants, nil
}

// RestaurantDetails loads the restaurant with its menu grouped by category.
func (s *RestaurantService) RestaurantDetails(ctx context.Context, restaurantUUID string) (*RestaurantDetails, error) {
	restaurant, err := s.RestaurantByUUID(ctx, restaurantUUID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("list restaurant categories: %w", err)
	}

	details := &RestaurantDetails{Restaurant: *restaurant}
	for _, category := range categories {
		items, err := s.items.ItemsByCategoryAndRestaurant(ctx, restaurant, &category)
		if err != nil {
			return nil, fmt.Errorf("list category items: %w", err)
		}
		details.Categories = append(details.Categories, CategoryMenu{Category: category, Items: items})
	}
	return details, nil
}

// UpdateRating folds one more customer rating into the running average.
func (s *RestaurantService) UpdateRating(ctx context.Context, restaurant *models.Restaurant, rating float64) (*models.Restaurant, error) {
	if !utils.IsValidRating(rating) {
		return nil, ErrInvalidRating
	}

	updated := *restaurant
	count := float64(restaurant.NumberCustomersRated)
	updated.CustomerRating = (restaurant.CustomerRating*count + rating) / (count + 1)
	updated.NumberCustomersRated = restaurant.NumberCustomersRated + 1

	if err := s.restaurants.UpdateRating(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"restaurant_id": updated.UUID,
		"rating":        updated.CustomerRating,
		"rated_by":      updated.NumberCustomersRated,
	}).Info("Restaurant rating updated")
	return &updated, nil
}
