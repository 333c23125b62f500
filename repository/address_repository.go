package repository

import (
	"context"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type addressRepository struct {
	db *gorm.DB
}

func (r *addressRepository) CreateForCustomer(ctx context.Context, address *models.Address, customerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("State").Create(address).Error; err != nil {
			return err
		}
		return tx.Create(&models.CustomerAddress{CustomerID: customerID, AddressID: address.ID}).Error
	})
}

func (r *addressRepository) FindByUUID(ctx context.Context, uuid string) (*models.Address, error) {
	return first[models.Address](r.db.WithContext(ctx).Preload("State").Where("uuid = ?", uuid))
}

func (r *addressRepository) FindOwnerID(ctx context.Context, addressID uint) (uint, error) {
	link, err := first[models.CustomerAddress](r.db.WithContext(ctx).Where("address_id = ?", addressID))
	if err != nil {
		return 0, err
	}
	return link.CustomerID, nil
}

func (r *addressRepository) ListActiveByCustomer(ctx context.Context, customerID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).
		Preload("State").
		Joins("JOIN customer_address ON customer_address.address_id = address.id").
		Where("customer_address.customer_id = ? AND address.active = ?", customerID, models.AddressActive).
		Order("address.id desc").
		Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) CountOrders(ctx context.Context, addressID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("address_id = ?", addressID).Count(&count).Error
	return count, err
}

func (r *addressRepository) Deactivate(ctx context.Context, address *models.Address) error {
	res := r.db.WithContext(ctx).Model(&models.Address{}).
		Where("id = ?", address.ID).
		Update("active", models.AddressInactive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	address.Active = models.AddressInactive
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("address_id = ?", address.ID).Delete(&models.CustomerAddress{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Address{}, address.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

type stateRepository struct {
	db *gorm.DB
}

func (r *stateRepository) List(ctx context.Context) ([]models.State, error) {
	var states []models.State
	err := r.db.WithContext(ctx).Order("state_name asc").Find(&states).Error
	return states, err
}

func (r *stateRepository) FindByUUID(ctx context.Context, uuid string) (*models.State, error) {
	return first[models.State](r.db.WithContext(ctx).Where("uuid = ?", uuid))
}
