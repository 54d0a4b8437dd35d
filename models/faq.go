package models

import "time"

// FaqItem é uma pergunta/resposta da página de FAQ.
type FaqItem struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Question  string     `gorm:"not null" json:"question" form:"question"`
	Answer    string     `gorm:"type:text;not null" json:"answer" form:"answer"`
	Position  int        `gorm:"not null;default:0" json:"position" form:"position"`
	Active    bool       `gorm:"not null" json:"active" form:"active"`
	CreatedAt *time.Time `json:"created_at"`
}
