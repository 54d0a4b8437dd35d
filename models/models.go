package models

import "github.com/jinzhu/gorm"

// AutoMigrate cria/atualiza as tabelas do site.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SiteSetting{},
		&FeaturedCategory{},
		&FeaturedItem{},
		&QuoteRequest{},
		&Location{},
		&LegalPage{},
		&FaqItem{},
		&ContactMessage{},
	).Error
}
