package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
	"github.com/yeremiapane/food-ordering-app/utils"
)

type AddressInput struct {
	FlatBuildingName string
	Locality         string
	City             string
	Pincode          string
	StateUUID        string
}

// AddressService manages a customer's saved delivery addresses.
type AddressService struct {
	addresses repository.AddressRepository
	states    repository.StateRepository
	log       *logrus.Logger
}

func NewAddressService(repos *repository.Repositories, log *logrus.Logger) *AddressService {
	return &AddressService{
		addresses: repos.Addresses,
		states:    repos.States,
		log:       log,
	}
}

func (s *AddressService) SaveAddress(ctx context.Context, customer *models.Customer, in AddressInput) (*models.Address, error) {
	if utils.IsBlank(in.FlatBuildingName, in.Locality, in.City, in.Pincode, in.StateUUID) {
		return nil, ErrSaveAddressEmpty
	}

	state, err := s.GetStateByUUID(ctx, in.StateUUID)
	if err != nil {
		return nil, err
	}

	if !utils.IsValidPincode(in.Pincode) {
		return nil, ErrInvalidPincode
	}

	address := &models.Address{
		UUID:       uuid.NewString(),
		FlatBuilNo: in.FlatBuildingName,
		Locality:   in.Locality,
		City:       in.City,
		Pincode:    in.Pincode,
		StateID:    state.ID,
		Active:     models.AddressActive,
	}
	if err := s.addresses.CreateForCustomer(ctx, address, customer.ID); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	address.State = *state

	s.log.WithFields(logrus.Fields{
		"customer_id": customer.UUID,
		"address_id":  address.UUID,
	}).Info("Address saved")
	return address, nil
}

// ListAddresses returns the customer's active addresses, newest first.
func (s *AddressService) ListAddresses(ctx context.Context, customer *models.Customer) ([]models.Address, error) {
	addresses, err := s.addresses.ListActiveByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

// GetAddressByUUID returns the address only when it belongs to customer.
func (s *AddressService) GetAddressByUUID(ctx context.Context, addressUUID string, customer *models.Customer) (*models.Address, error) {
	if addressUUID == "" {
		return nil, ErrAddressIDEmpty
	}

	address, err := s.addresses.FindByUUID(ctx, addressUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("lookup address: %w", err)
	}

	ownerID, err := s.addresses.FindOwnerID(ctx, address.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup address owner: %w", err)
	}
	// Addresses without an owner link (restaurant addresses) are nobody's to use.
	if err != nil || ownerID != customer.ID {
		return nil, ErrAddressNotAuthorized
	}
	return address, nil
}

// DeleteAddress removes the address, or only deactivates it when past orders
// still point at it.
func (s *AddressService) DeleteAddress(ctx context.Context, address *models.Address) (*models.Address, error) {
	orders, err := s.addresses.CountOrders(ctx, address.ID)
	if err != nil {
		return nil, fmt.Errorf("count address orders: %w", err)
	}

	if orders > 0 {
		if err := s.addresses.Deactivate(ctx, address); err != nil {
			return nil, fmt.Errorf("deactivate address: %w", err)
		}
		s.log.WithField("address_id", address.UUID).Info("Address deactivated")
		return address, nil
	}

	if err := s.addresses.Delete(ctx, address); err != nil {
		return nil, fmt.Errorf("delete address: %w", err)
	}
	s.log.WithField("address_id", address.UUID).Info("Address deleted")
	return address, nil
}

func (s *AddressService) ListStates(ctx context.Context) ([]models.State, error) {
	states, err := s.states.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return states, nil
}

func (s *AddressService) GetStateByUUID(ctx context.Context, stateUUID string) (*models.State, error) {
	state, err := s.states.FindByUUID(ctx, stateUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("lookup state: %w", err)
	}
	return state, nil
}
