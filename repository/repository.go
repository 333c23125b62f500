package repository

import (
	"context"
	"errors"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id uint) (*models.Customer, error)
	FindByUUID(ctx context.Context, uuid string) (*models.Customer, error)
	FindByContactNumber(ctx context.Context, contact string) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.CustomerAuth) error
	Update(ctx context.Context, session *models.CustomerAuth) error
	FindByAccessToken(ctx context.Context, token string) (*models.CustomerAuth, error)
}

type AddressRepository interface {
	// CreateForCustomer saves the address and its customer link atomically.
	CreateForCustomer(ctx context.Context, address *models.Address, customerID uint) error
	FindByUUID(ctx context.Context, uuid string) (*models.Address, error)
	FindOwnerID(ctx context.Context, addressID uint) (uint, error)
	ListActiveByCustomer(ctx context.Context, customerID uint) ([]models.Address, error)
	CountOrders(ctx context.Context, addressID uint) (int64, error)
	Deactivate(ctx context.Context, address *models.Address) error
	// Delete removes the address and its customer link atomically.
	Delete(ctx context.Context, address *models.Address) error
}

type StateRepository interface {
	List(ctx context.Context) ([]models.State, error)
	FindByUUID(ctx context.Context, uuid string) (*models.State, error)
}

type PaymentRepository interface {
	List(ctx context.Context) ([]models.Payment, error)
	FindByUUID(ctx context.Context, uuid string) (*models.Payment, error)
}

type CouponRepository interface {
	FindByName(ctx context.Context, name string) (*models.Coupon, error)
	FindByUUID(ctx context.Context, uuid string) (*models.Coupon, error)
}

type RestaurantRepository interface {
	FindByUUID(ctx context.Context, uuid string) (*models.Restaurant, error)
	ListByRating(ctx context.Context) ([]models.Restaurant, error)
	SearchByName(ctx context.Context, name string) ([]models.Restaurant, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Restaurant, error)
	UpdateRating(ctx context.Context, restaurant *models.Restaurant) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByUUID(ctx context.Context, uuid string) (*models.Category, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.Category, error)
}

type ItemRepository interface {
	FindByUUID(ctx context.Context, uuid string) (*models.Item, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Item, error)
	ListByRestaurantAndCategory(ctx context.Context, restaurantID, categoryID uint) ([]models.Item, error)
	// TopByOrderCount returns the restaurant's items ranked by how many orders include them.
	TopByOrderCount(ctx context.Context, restaurantID uint, limit int) ([]models.Item, error)
}

type OrderRepository interface {
	// CreateWithItems persists the order and every line item in one transaction.
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	ListByCustomer(ctx context.Context, customerID uint) ([]models.Order, error)
}

// Repositories bundles the gorm-backed stores handed to the services.
type Repositories struct {
	Customers   CustomerRepository
	Sessions    SessionRepository
	Addresses   AddressRepository
	States      StateRepository
	Payments    PaymentRepository
	Coupons     CouponRepository
	Restaurants RestaurantRepository
	Categories  CategoryRepository
	Items       ItemRepository
	Orders      OrderRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Customers:   &customerRepository{db: db},
		Sessions:    &sessionRepository{db: db},
		Addresses:   &addressRepository{db: db},
		States:      &stateRepository{db: db},
		Payments:    &paymentRepository{db: db},
		Coupons:     &couponRepository{db: db},
		Restaurants: &restaurantRepository{db: db},
		Categories:  &categoryRepository{db: db},
		Items:       &itemRepository{db: db},
		Orders:      &orderRepository{db: db},
	}
}

// first runs query.First and maps a missing row to ErrNotFound.
func first[T any](query *gorm.DB) (*T, error) {
	var out T
	if err := query.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
