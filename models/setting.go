package models

import (
	"strings"

	"github.com/jinzhu/gorm"
)

// SiteSetting guarda configurações simples do site (ex: whatsapp_number).
// Uma linha por chave.
type SiteSetting struct {
	ID    int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Key   string `gorm:"not null;unique_index" json:"key" form:"key"`
	Value string `gorm:"type:text" json:"value" form:"value"`
}

// GetSettingValue devolve o valor da chave, ou def quando ausente.
func GetSettingValue(db *gorm.DB, key, def string) string {
	var s SiteSetting
	if err := db.Where("key = ?", key).First(&s).Error; err != nil {
		return def
	}
	if s.Value == "" {
		return def
	}
	return s.Value
}

// SetSettingValue cria ou atualiza a chave.
func SetSettingValue(db *gorm.DB, key, value string) error {
	key = strings.TrimSpace(key)

	var s SiteSetting
	err := db.Where("key = ?", key).First(&s).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return db.Create(&SiteSetting{Key: key, Value: value}).Error
		}
		return err
	}

	s.Value = value
	return db.Save(&s).Error
}

// AllSettings devolve todas as chaves/valores em um mapa.
func AllSettings(db *gorm.DB) (map[string]string, error) {
	var rows []SiteSetting
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}
