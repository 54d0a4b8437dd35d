package models

import "time"

const (
	QUOTE_STATUS_NEW       = "novo"
	QUOTE_STATUS_CONTACTED = "em_contato"
	QUOTE_STATUS_DONE      = "concluido"
)

// QuoteRequest é um pedido de cotação vindo do formulário público.
// Imutável depois de criado, exceto o status (mexido pelo operador).
type QuoteRequest struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt *time.Time `json:"created_at"`

	PickupPlace string `gorm:"column:pickup_place;not null" json:"pickup_place"`
	PickupDate  string `gorm:"column:pickup_date;not null" json:"pickup_date"` // ISO (yyyy-mm-dd) do input date
	DropPlace   string `gorm:"column:drop_place;not null" json:"drop_place"`
	DropDate    string `gorm:"column:drop_date;not null" json:"drop_date"`

	Name     string `gorm:"not null" json:"name"`
	Phone    string `gorm:"not null" json:"phone"`
	Category string `gorm:"not null" json:"category"`

	// metadados úteis
	Source    string `json:"source"` // ex: 'hero', 'home'
	UserAgent string `gorm:"column:user_agent;type:text" json:"user_agent"`
	IPAddr    string `gorm:"column:ip_addr" json:"ip_addr"`
	Status    string `gorm:"not null;default:'novo'" json:"status"`
}

// ValidQuoteStatus diz se o status é um dos três aceitos.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QUOTE_STATUS_NEW, QUOTE_STATUS_CONTACTED, QUOTE_STATUS_DONE:
		return true
	}
	return false
}
