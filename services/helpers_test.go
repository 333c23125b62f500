package services

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-ordering-app/metrics"
	"github.com/yeremiapane/food-ordering-app/models"
	"github.com/yeremiapane/food-ordering-app/repository"
	"github.com/yeremiapane/food-ordering-app/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Password1!"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishOrderPlaced(customerUUID string, order *models.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, customerUUID+":"+order.UUID)
}

type testEnv struct {
	db          *gorm.DB
	repos       *repository.Repositories
	registry    *prometheus.Registry
	metrics     *metrics.Metrics
	customers   *CustomerService
	addresses   *AddressService
	payments    *PaymentService
	restaurants *RestaurantService
	categories  *CategoryService
	items       *ItemService
	orders      *OrderService
	publisher   *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	repos := repository.New(db)
	log := quietLogger()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, reg)
	pub := &recordingPublisher{}

	payments := NewPaymentService(repos)
	addresses := NewAddressService(repos, log)
	items := NewItemService(repos)

	return &testEnv{
		db:          db,
		repos:       repos,
		registry:    reg,
		metrics:     m,
		customers:   NewCustomerService(repos, utils.NewPasswordHasher(), utils.NewTokenIssuer("test-secret", "test"), log, m),
		addresses:   addresses,
		payments:    payments,
		restaurants: NewRestaurantService(repos, items, log),
		categories:  NewCategoryService(repos),
		items:       items,
		orders:      NewOrderService(repos, payments, addresses, items, pub, log, m),
		publisher:   pub,
	}
}

// counter reads a counter from the registry; labels select one series of a vec.
func (e *testEnv) counter(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := e.registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	series:
		for _, m := range family.GetMetric() {
			for _, pair := range m.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue series
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func (e *testEnv) signup(t *testing.T, contact, email string) *models.Customer {
	t.Helper()
	c, err := e.customers.Signup(context.Background(), SignupInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Email:         email,
		ContactNumber: contact,
		Password:      testPassword,
	})
	require.NoError(t, err)
	return c
}

// catalog is a small restaurant with a menu, coupon, payment method and state.
type catalog struct {
	state      models.State
	payment    models.Payment
	coupon     models.Coupon
	category   models.Category
	restaurant models.Restaurant
	items      []models.Item
}

func (e *testEnv) seedCatalog(t *testing.T) catalog {
	t.Helper()
	db := e.db
	c := catalog{}

	c.state = models.State{UUID: uuid.NewString(), StateName: "Karnataka"}
	require.NoError(t, db.Create(&c.state).Error)

	c.payment = models.Payment{UUID: uuid.NewString(), PaymentName: "UPI"}
	require.NoError(t, db.Create(&c.payment).Error)

	c.coupon = models.Coupon{UUID: uuid.NewString(), CouponName: "FLAT10", Percent: 10}
	require.NoError(t, db.Create(&c.coupon).Error)

	addr := models.Address{UUID: uuid.NewString(), FlatBuilNo: "1", Locality: "Indiranagar", City: "Bengaluru", Pincode: "560038", StateID: c.state.ID, Active: models.AddressActive}
	require.NoError(t, db.Omit("State").Create(&addr).Error)

	c.restaurant = models.Restaurant{UUID: uuid.NewString(), RestaurantName: "Dosa Corner", CustomerRating: 4.0, AveragePriceForTwo: 300, NumberCustomersRated: 1, AddressID: addr.ID}
	require.NoError(t, db.Omit("Address").Create(&c.restaurant).Error)

	c.category = models.Category{UUID: uuid.NewString(), CategoryName: "South Indian"}
	require.NoError(t, db.Create(&c.category).Error)
	require.NoError(t, db.Create(&models.RestaurantCategory{RestaurantID: c.restaurant.ID, CategoryID: c.category.ID}).Error)

	for _, it := range []struct {
		name  string
		price int
	}{{"Masala Dosa", 90}, {"Idli", 60}, {"Vada", 50}} {
		item := models.Item{UUID: uuid.NewString(), ItemName: it.name, Price: it.price, Type: models.ItemTypeVeg}
		require.NoError(t, db.Create(&item).Error)
		require.NoError(t, db.Create(&models.RestaurantItem{RestaurantID: c.restaurant.ID, ItemID: item.ID}).Error)
		require.NoError(t, db.Create(&models.CategoryItem{CategoryID: c.category.ID, ItemID: item.ID}).Error)
		c.items = append(c.items, item)
	}
	return c
}

func (e *testEnv) saveAddress(t *testing.T, customer *models.Customer, state models.State) *models.Address {
	t.Helper()
	a, err := e.addresses.SaveAddress(context.Background(), customer, AddressInput{
		FlatBuildingName: "12",
		Locality:         "MG Road",
		City:             "Bengaluru",
		Pincode:          "560001",
		StateUUID:        state.UUID,
	})
	require.NoError(t, err)
	return a
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
