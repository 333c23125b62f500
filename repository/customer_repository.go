package repository

import (
	"context"
	"strings"

	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*models.Customer, error) {
	return first[models.Customer](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *customerRepository) FindByUUID(ctx context.Context, uuid string) (*models.Customer, error) {
	return first[models.Customer](r.db.WithContext(ctx).Where("uuid = ?", uuid))
}

func (r *customerRepository) FindByContactNumber(ctx context.Context, contact string) (*models.Customer, error) {
	return first[models.Customer](r.db.WithContext(ctx).Where("contact_number = ?", contact))
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	// Emails are stored lower-cased; LOWER() also matches rows written before that.
	return first[models.Customer](r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)))
}

type sessionRepository struct {
	db *gorm.DB
}

func (r *sessionRepository) Create(ctx context.Context, session *models.CustomerAuth) error {
	return r.db.WithContext(ctx).Omit("Customer").Create(session).Error
}

func (r *sessionRepository) Update(ctx context.Context, session *models.CustomerAuth) error {
	return r.db.WithContext(ctx).Omit("Customer").Save(session).Error
}

func (r *sessionRepository) FindByAccessToken(ctx context.Context, token string) (*models.CustomerAuth, error) {
	return first[models.CustomerAuth](r.db.WithContext(ctx).Where("access_token = ?", token))
}
