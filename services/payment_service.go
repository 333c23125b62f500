package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
)

// PaymentService menangani daftar metode pembayaran
type PaymentService struct {
	payments repository.PaymentRepository
}

func NewPaymentService(repos *repository.Repositories) *PaymentService {
	return &PaymentService{payments: repos.Payments}
}

func (s *PaymentService) ListPaymentMethods(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) GetPaymentByUUID(ctx context.Context, paymentUUID string) (*models.Payment, error) {
	payment, err := s.payments.FindByUUID(ctx, paymentUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("lookup payment method: %w", err)
	}
	return payment, nil
}
