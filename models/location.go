package models

// Location é um ponto de retirada/devolução mostrado no formulário público.
type Location struct {
	ID       int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name     string `gorm:"not null;unique_index" json:"name" form:"name"`
	Active   bool   `gorm:"not null" json:"active" form:"active"`
	Position int    `gorm:"not null;default:0" json:"position" form:"position"`
}
