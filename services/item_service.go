package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
)

// popularItemLimit is how many items the "most ordered" list returns.
const popularItemLimit = 5

type ItemService struct {
	items repository.ItemRepository
}

func NewItemService(repos *repository.Repositories) *ItemService {
	return &ItemService{items: repos.Items}
}

func (s *ItemService) GetItemByUUID(ctx context.Context, itemUUID string) (*models.Item, error) {
	item, err := s.items.FindByUUID(ctx, itemUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("lookup item: %w", err)
	}
	return item, nil
}

func (s *ItemService) ItemsByCategoryAndRestaurant(ctx context.Context, restaurant *models.Restaurant, category *models.Category) ([]models.Item, error) {
	items, err := s.items.ListByRestaurantAndCategory(ctx, restaurant.ID, category.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// PopularItems returns the restaurant's most ordered items.
func (s *ItemService) PopularItems(ctx context.Context, restaurant *models.Restaurant) ([]models.Item, error) {
	items, err := s.items.TopByOrderCount(ctx, restaurant.ID, popularItemLimit)
	if err != nil {
		return nil, fmt.Errorf("list popular items: %w", err)
	}
	return items, nil
}
