package database

import (
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/models"
	"gorm.io/gorm"
)

// uniqueIndexes are the constraints the services rely on to reject
// duplicates under concurrent writes.
var uniqueIndexes = []struct {
	Model interface{}
	Field string
}{
	{&models.Customer{}, "ContactNumber"},
	{&models.Customer{}, "Email"},
	{&models.CustomerAuth{}, "AccessToken"},
	{&models.Coupon{}, "CouponName"},
}

// Migrate creates or updates every table, then checks the unique indexes exist.
func Migrate(db *gorm.DB, log *logrus.Logger) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	log.Info("AutoMigrate completed.")

	// Verifikasi index unik
	migrator := db.Migrator()
	for _, idx := range uniqueIndexes {
		if !migrator.HasIndex(idx.Model, idx.Field) {
			log.Warnf("Unique index missing for %T.%s", idx.Model, idx.Field)
			continue
		}
		log.Debugf("Unique index verified: %T.%s", idx.Model, idx.Field)
	}

	return nil
}
