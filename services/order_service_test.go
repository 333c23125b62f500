package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-ordering-app/models"
)

type orderFixture struct {
	env      *testEnv
	cat      catalog
	customer *models.Customer
	address  *models.Address
}

func newOrderFixture(t *testing.T) orderFixture {
	env := newTestEnv(t)
	cat := env.seedCatalog(t)
	customer := env.signup(t, "9876543210", "asha@example.com")
	return orderFixture{
		env:      env,
		cat:      cat,
		customer: customer,
		address:  env.saveAddress(t, customer, cat.state),
	}
}

func (f orderFixture) input() PlaceOrderInput {
	return PlaceOrderInput{
		CouponUUID:     f.cat.coupon.UUID,
		PaymentUUID:    f.cat.payment.UUID,
		AddressUUID:    f.address.UUID,
		RestaurantUUID: f.cat.restaurant.UUID,
		Bill:           207,
		Discount:       23,
		Items: []ItemQuantity{
			{ItemUUID: f.cat.items[0].UUID, Quantity: 2, Price: 85},
			{ItemUUID: f.cat.items[1].UUID, Quantity: 1, Price: 60},
		},
	}
}

func TestPlaceOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.env.orders.PlaceOrder(ctx, f.customer, f.input())
	require.NoError(t, err)
	assert.NotEmpty(t, order.UUID)
	require.NotNil(t, order.CouponID)
	assert.Equal(t, f.cat.coupon.ID, *order.CouponID)
	assert.Len(t, order.Items, 2)

	orders, err := f.env.orders.ListOrders(ctx, f.customer.UUID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.UUID, orders[0].UUID)
	require.Len(t, orders[0].Items, 2)
	// Line price is what the customer was quoted, not the catalog price.
	assert.Equal(t, 85, orders[0].Items[0].Price)
	assert.Equal(t, 90, orders[0].Items[0].Item.Price)
	assert.Equal(t, "FLAT10", orders[0].Coupon.CouponName)

	assert.Equal(t, []string{f.customer.UUID + ":" + order.UUID}, f.env.publisher.events)
	assert.Equal(t, 1.0, f.env.counter(t, "food_ordering_orders_placed_total", nil))
}

func TestPlaceOrderWithoutCoupon(t *testing.T) {
	f := newOrderFixture(t)
	in := f.input()
	in.CouponUUID = ""

	order, err := f.env.orders.PlaceOrder(context.Background(), f.customer, in)
	require.NoError(t, err)
	assert.Nil(t, order.CouponID)
}

func TestPlaceOrderUnknownItemPersistsNothing(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	in := f.input()
	in.Items = append(in.Items, ItemQuantity{ItemUUID: uuid.NewString(), Quantity: 1, Price: 10})

	_, err := f.env.orders.PlaceOrder(ctx, f.customer, in)
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Zero(t, f.env.count(t, &models.Order{}))
	assert.Zero(t, f.env.count(t, &models.OrderItem{}))
	orders, err := f.env.orders.ListOrders(ctx, f.customer.UUID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, f.env.publisher.events)
}

func TestPlaceOrderWithSomeoneElsesAddress(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	other := f.env.signup(t, "9123456780", "ravi@example.com")
	otherAddress := f.env.saveAddress(t, other, f.cat.state)

	in := f.input()
	in.AddressUUID = otherAddress.UUID

	_, err := f.env.orders.PlaceOrder(ctx, f.customer, in)
	assert.ErrorIs(t, err, ErrAddressNotAuthorized)
	assert.Zero(t, f.env.count(t, &models.Order{}))
}

func TestPlaceOrderRejectionOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *PlaceOrderInput)
		want   error
	}{
		{"unknown coupon beats unknown payment", func(in *PlaceOrderInput) {
			in.CouponUUID = uuid.NewString()
			in.PaymentUUID = uuid.NewString()
		}, ErrCouponNotFoundByID},
		{"unknown payment beats unknown address", func(in *PlaceOrderInput) {
			in.PaymentUUID = uuid.NewString()
			in.AddressUUID = uuid.NewString()
		}, ErrPaymentMethodNotFound},
		{"unknown address beats unknown restaurant", func(in *PlaceOrderInput) {
			in.AddressUUID = uuid.NewString()
			in.RestaurantUUID = uuid.NewString()
		}, ErrAddressNotFound},
		{"empty address id", func(in *PlaceOrderInput) { in.AddressUUID = "" }, ErrAddressIDEmpty},
		{"unknown restaurant beats unknown item", func(in *PlaceOrderInput) {
			in.RestaurantUUID = uuid.NewString()
			in.Items[0].ItemUUID = uuid.NewString()
		}, ErrRestaurantNotFound},
		{"no items", func(in *PlaceOrderInput) { in.Items = nil }, ErrEmptyOrder},
		{"zero quantity", func(in *PlaceOrderInput) { in.Items[0].Quantity = 0 }, ErrInvalidOrderLine},
		{"negative quantity", func(in *PlaceOrderInput) { in.Items[0].Quantity = -2 }, ErrInvalidOrderLine},
		{"negative price on a later line", func(in *PlaceOrderInput) { in.Items[len(in.Items)-1].Price = -1 }, ErrInvalidOrderLine},
		{"bad line beats unknown item", func(in *PlaceOrderInput) {
			in.Items[0].ItemUUID = uuid.NewString()
			in.Items[0].Quantity = 0
		}, ErrInvalidOrderLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			in := f.input()
			tt.mutate(&in)

			_, err := f.env.orders.PlaceOrder(context.Background(), f.customer, in)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.env.count(t, &models.Order{}))

			appErr, ok := AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 1.0, f.env.counter(t, "food_ordering_orders_rejected_total", map[string]string{"code": appErr.Code}))
		})
	}
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.env.orders.WithClock(func() time.Time { return now })

	first, err := f.env.orders.PlaceOrder(ctx, f.customer, f.input())
	require.NoError(t, err)

	now = now.Add(time.Hour)
	second, err := f.env.orders.PlaceOrder(ctx, f.customer, f.input())
	require.NoError(t, err)

	orders, err := f.env.orders.ListOrders(ctx, f.customer.UUID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.UUID, orders[0].UUID)
	assert.Equal(t, first.UUID, orders[1].UUID)

	none, err := f.env.orders.ListOrders(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCouponByName(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	coupon, err := f.env.orders.GetCouponByName(ctx, "flat10")
	require.NoError(t, err)
	assert.Equal(t, 10, coupon.Percent)

	_, err = f.env.orders.GetCouponByName(ctx, "")
	assert.ErrorIs(t, err, ErrCouponNameEmpty)

	_, err = f.env.orders.GetCouponByName(ctx, "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}
