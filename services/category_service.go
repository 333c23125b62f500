package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

func NewCategoryService(repos *repository.Repositories) *CategoryService {
	return &CategoryService{
		categories: repos.Categories,
		items:      repos.Items,
	}
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByUUID returns the category and every item filed under it.
func (s *CategoryService) GetCategoryByUUID(ctx context.Context, categoryUUID string) (*CategoryMenu, error) {
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

	items, err := s.items.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("list category items: %w", err)
	}
	return &CategoryMenu{Category: *category, Items: items}, nil
}

func (s *CategoryService) CategoriesByRestaurant(ctx context.Context, restaurant *models.Restaurant) ([]models.Category, error) {
	categories, err := s.categories.ListByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("list restaurant categories: %w", err)
	}
	return categories, nil
}
