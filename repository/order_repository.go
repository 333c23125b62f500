package repository

import (
	"context"
	"fmt"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return fmt.Errorf("save order: %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Omit(clause.Associations).Create(&items[i]).Error; err != nil {
				return fmt.Errorf("save order item %d: %w", items[i].ItemID, err)
			}
		}

		order.Items = items
		return nil
	})
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Coupon").
		Preload("Payment").
		Preload("Address").
		Preload("Address.State").
		Preload("Restaurant").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_item.id asc") }).
		Preload("Items.Item").
		Where("customer_id = ?", customerID).
		Order("date desc").
		Order("id desc").
		Find(&orders).Error
	return orders, err
}

type couponRepository struct {
	db *gorm.DB
}

func (r *couponRepository) FindByName(ctx context.Context, name string) (*models.Coupon, error) {
	return first[models.Coupon](r.db.WithContext(ctx).Where("coupon_name = ?", name))
}

func (r *couponRepository) FindByUUID(ctx context.Context, uuid string) (*models.Coupon, error) {
	return first[models.Coupon](r.db.WithContext(ctx).Where("uuid = ?", uuid))
}

type paymentRepository struct {
	db *gorm.DB
}

func (r *paymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).Order("payment_name asc").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) FindByUUID(ctx context.Context, uuid string) (*models.Payment, error) {
	return first[models.Payment](r.db.WithContext(ctx).Where("uuid = ?", uuid))
}
