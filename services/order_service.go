package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/metrics"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
)

type ItemQuantity struct {
	ItemUUID string
	Quantity int
	Price    int
}

type PlaceOrderInput struct {
	CouponUUID     string
	PaymentUUID    string
	AddressUUID    string
	RestaurantUUID string
	Bill           float64
	Discount       float64
	Items          []ItemQuantity
}

// OrderPublisher is told about every committed order.
type OrderPublisher interface {
	PublishOrderPlaced(customerUUID string, order *models.Order)
}

type OrderService struct {
	customers   repository.CustomerRepository
	orders      repository.OrderRepository
	coupons     repository.CouponRepository
	restaurants repository.RestaurantRepository
	items       *ItemService
	payments    *PaymentService
	addresses   *AddressService
	publisher   OrderPublisher
	log         *logrus.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewOrderService(repos *repository.Repositories, payments *PaymentService, addresses *AddressService, items *ItemService, publisher OrderPublisher, log *logrus.Logger, m *metrics.Metrics) *OrderService {
	return &OrderService{
		customers:   repos.Customers,
		orders:      repos.Orders,
		coupons:     repos.Coupons,
		restaurants: repos.Restaurants,
		items:       items,
		payments:    payments,
		addresses:   addresses,
		publisher:   publisher,
		log:         log,
		metrics:     m,
		now:         time.Now,
	}
}

func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// GetCouponByName looks coupons up by their upper-case name.
func (s *OrderService) GetCouponByName(ctx context.Context, name string) (*models.Coupon, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCouponNameEmpty
	}

	coupon, err := s.coupons.FindByName(ctx, strings.ToUpper(name))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}
	return coupon, nil
}

func (s *OrderService) GetCouponByID(ctx context.Context, couponUUID string) (*models.Coupon, error) {
	coupon, err := s.coupons.FindByUUID(ctx, couponUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCouponNotFoundByID
		}
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}
	return coupon, nil
}

// PlaceOrder validates every reference and stores the order together with its
// line items. Either all of it is saved or none of it is.
func (s *OrderService) PlaceOrder(ctx context.Context, customer *models.Customer, in PlaceOrderInput) (*models.Order, error) {
	order, err := s.placeOrder(ctx, customer, in)
	if err != nil {
		if appErr, ok := AsAppError(err); ok {
			s.metrics.RecordOrderRejected(appErr.Code)
			s.log.WithFields(logrus.Fields{
				"customer_id": customer.UUID,
				"code":        appErr.Code,
			}).Info("Order rejected")
		}
		return nil, err
	}

	s.metrics.RecordOrderPlaced()
	s.log.WithFields(logrus.Fields{
		"customer_id": customer.UUID,
		"order_id":    order.UUID,
		"items":       len(order.Items),
	}).Info("Order placed")

	if s.publisher != nil {
		s.publisher.PublishOrderPlaced(customer.UUID, order)
	}
	return order, nil
}

func (s *OrderService) placeOrder(ctx context.Context, customer *models.Customer, in PlaceOrderInput) (*models.Order, error) {
	var coupon *models.Coupon
	if in.CouponUUID != "" {
		c, err := s.GetCouponByID(ctx, in.CouponUUID)
		if err != nil {
			return nil, err
		}
		coupon = c
	}

	payment, err := s.payments.GetPaymentByUUID(ctx, in.PaymentUUID)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.GetAddressByUUID(ctx, in.AddressUUID, customer)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.FindByUUID(ctx, in.RestaurantUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("lookup restaurant: %w", err)
	}

	lines := make([]models.OrderItem, 0, len(in.Items))
	for _, iq := range in.Items {
		if iq.Quantity < 1 || iq.Price < 0 {
			return nil, ErrInvalidOrderLine
		}
		item, err := s.items.GetItemByUUID(ctx, iq.ItemUUID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, models.OrderItem{
			ItemID:   item.ID,
			Item:     *item,
			Quantity: iq.Quantity,
			Price:    iq.Price,
		})
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &models.Order{
		UUID:         uuid.NewString(),
		Bill:         in.Bill,
		Discount:     in.Discount,
		Date:         s.now(),
		PaymentID:    payment.ID,
		CustomerID:   customer.ID,
		AddressID:    address.ID,
		RestaurantID: restaurant.ID,
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
	}

	if err := s.orders.CreateWithItems(ctx, order, lines); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	order.Coupon = coupon
	order.Payment = *payment
	order.Address = *address
	order.Restaurant = *restaurant
	return order, nil
}

// ListOrders returns the customer's orders, most recent first. An unknown
// customer simply has no orders.
func (s *OrderService) ListOrders(ctx context.Context, customerUUID string) ([]models.Order, error) {
	customer, err := s.customers.FindByUUID(ctx, customerUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("lookup customer: %w", err)
	}

	orders, err := s.orders.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
