package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

const (
	LEGAL_PAGE_PRIVACY = "privacy"
	LEGAL_PAGE_TERMS   = "terms"
)

// LegalPage é uma página legal editável no admin ("privacy" ou "terms").
type LegalPage struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Key       string     `gorm:"not null;unique_index" json:"key"`
	Title     string     `gorm:"not null" json:"title" form:"title"`
	HTML      string     `gorm:"column:html;type:text;not null" json:"html" form:"html"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// GetOrCreateLegalPage busca a página pela chave, criando vazia se não existir.
func GetOrCreateLegalPage(db *gorm.DB, key, title string) (LegalPage, error) {
	var page LegalPage
	err := db.Where("key = ?", key).First(&page).Error
	if err == nil {
		return page, nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return LegalPage{}, err
	}

	page = LegalPage{Key: key, Title: title, HTML: ""}
	if err := db.Create(&page).Error; err != nil {
		return LegalPage{}, err
	}
	return page, nil
}
