package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables behind the repositories.
// The column-mapped models live here, so migration does too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&partnerModel{},
		&propertyModel{},
	)
}
