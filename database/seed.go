package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

type seedItem struct {
	Name     string
	Price    int
	Type     string
	Category string
}

type seedRestaurant struct {
	Name       string
	PhotoURL   string
	Rating     float64
	AvgForTwo  int
	RatedCount int
	City       string
	Locality   string
	Pincode    string
	State      string
	Items      []seedItem
}

var (
	seedStates   = []string{"Andhra Pradesh", "Delhi", "Karnataka", "Maharashtra", "Tamil Nadu", "West Bengal"}
	seedPayments = []string{"Cash on Delivery", "Net Banking", "Credit Card", "Debit Card", "UPI", "Wallet"}
	seedCoupons  = map[string]int{"FLAT10": 10, "FESTIVE20": 20, "WEEKEND30": 30}

	seedRestaurants = []seedRestaurant{
		{
			Name: "Dosa Corner", PhotoURL: "https://images.example.com/dosa-corner.jpg",
			Rating: 4.4, AvgForTwo: 350, RatedCount: 120,
			City: "Bengaluru", Locality: "Indiranagar", Pincode: "560038", State: "Karnataka",
			Items: []seedItem{
				{"Masala Dosa", 90, models.ItemTypeVeg, "South Indian"},
				{"Idli Vada", 70, models.ItemTypeVeg, "South Indian"},
				{"Filter Coffee", 40, models.ItemTypeVeg, "Drinks"},
			},
		},
		{
			Name: "Tandoor Nights", PhotoURL: "https://images.example.com/tandoor-nights.jpg",
			Rating: 4.1, AvgForTwo: 800, RatedCount: 64,
			City: "New Delhi", Locality: "Connaught Place", Pincode: "110001", State: "Delhi",
			Items: []seedItem{
				{"Butter Chicken", 320, models.ItemTypeNonVeg, "North Indian"},
				{"Paneer Tikka", 260, models.ItemTypeVeg, "North Indian"},
				{"Sweet Lassi", 80, models.ItemTypeVeg, "Drinks"},
			},
		},
	}
)

// Seed inserts reference data for local development. Rows are matched by name,
// so running it twice does not duplicate anything.
func Seed(db *gorm.DB, log *logrus.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		states := map[string]models.State{}
		for _, name := range seedStates {
			s := models.State{StateName: name}
			if err := tx.Where(models.State{StateName: name}).
				Attrs(models.State{UUID: uuid.NewString()}).
				FirstOrCreate(&s).Error; err != nil {
				return err
			}
			states[name] = s
		}

		for _, name := range seedPayments {
			p := models.Payment{}
			if err := tx.Where(models.Payment{PaymentName: name}).
				Attrs(models.Payment{UUID: uuid.NewString()}).
				FirstOrCreate(&p).Error; err != nil {
				return err
			}
		}

		for name, percent := range seedCoupons {
			c := models.Coupon{}
			if err := tx.Where(models.Coupon{CouponName: name}).
				Attrs(models.Coupon{UUID: uuid.NewString(), Percent: percent}).
				FirstOrCreate(&c).Error; err != nil {
				return err
			}
		}

		categories := map[string]models.Category{}
		for _, r := range seedRestaurants {
			var restaurant models.Restaurant
			err := tx.Where(models.Restaurant{RestaurantName: r.Name}).First(&restaurant).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			addr := models.Address{
				UUID:       uuid.NewString(),
				FlatBuilNo: "1",
				Locality:   r.Locality,
				City:       r.City,
				Pincode:    r.Pincode,
				StateID:    states[r.State].ID,
				Active:     models.AddressActive,
			}
			if err := tx.Omit("State").Create(&addr).Error; err != nil {
				return err
			}

			restaurant = models.Restaurant{
				UUID:                 uuid.NewString(),
				RestaurantName:       r.Name,
				PhotoURL:             r.PhotoURL,
				CustomerRating:       r.Rating,
				AveragePriceForTwo:   r.AvgForTwo,
				NumberCustomersRated: r.RatedCount,
				AddressID:            addr.ID,
			}
			if err := tx.Omit("Address").Create(&restaurant).Error; err != nil {
				return err
			}

			linked := map[uint]bool{}
			for _, it := range r.Items {
				cat, ok := categories[it.Category]
				if !ok {
					cat = models.Category{}
					if err := tx.Where(models.Category{CategoryName: it.Category}).
						Attrs(models.Category{UUID: uuid.NewString()}).
						FirstOrCreate(&cat).Error; err != nil {
						return err
					}
					categories[it.Category] = cat
				}

				item := models.Item{UUID: uuid.NewString(), ItemName: it.Name, Price: it.Price, Type: it.Type}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.RestaurantItem{RestaurantID: restaurant.ID, ItemID: item.ID}).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.CategoryItem{CategoryID: cat.ID, ItemID: item.ID}).Error; err != nil {
					return err
				}
				if !linked[cat.ID] {
					if err := tx.Create(&models.RestaurantCategory{RestaurantID: restaurant.ID, CategoryID: cat.ID}).Error; err != nil {
						return err
					}
					linked[cat.ID] = true
				}
			}
			log.Infof("Seeded restaurant %s", r.Name)
		}

		log.Info("Seed data ready.")
		return nil
	})
}
