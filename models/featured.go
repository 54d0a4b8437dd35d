package models

import "time"

// FeaturedCategory é um card da grade "Frota Destaque" da home.
// O slug é comparado de forma normalizada com os slots fixos da home.
type FeaturedCategory struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Slug      string     `gorm:"not null;unique_index" json:"slug" form:"slug"`
	ImageURL  string     `gorm:"column:image_url" json:"image_url"`
	Active    bool       `gorm:"not null" json:"active" form:"active"`
	Position  int        `gorm:"not null;default:0" json:"position" form:"position"`
	CreatedAt *time.Time `json:"created_at"`

	Items []FeaturedItem `gorm:"foreignkey:CategoryID" json:"items,omitempty"`
}

// FeaturedItem é um veículo dentro de uma categoria destaque.
// Excluir a categoria exclui os itens (cascade feito no controller).
type FeaturedItem struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CategoryID int64      `gorm:"not null;index" json:"category_id"`
	Title      string     `gorm:"not null" json:"title" form:"title"`
	Subtitle   string     `json:"subtitle" form:"subtitle"`
	ImagePath  string     `gorm:"column:image_path" json:"image_path" form:"image_path"`
	Active     bool       `gorm:"not null" json:"active" form:"active"`
	Position   int        `gorm:"not null;default:0" json:"position" form:"position"`
	CreatedAt  *time.Time `json:"created_at"`
}
