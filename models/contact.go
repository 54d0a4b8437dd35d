package models

import "time"

// ContactMessage é uma mensagem enviada pelo formulário de contato.
type ContactMessage struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null" json:"email"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	UserAgent string     `gorm:"column:user_agent;type:text" json:"user_agent"`
	IPAddr    string     `gorm:"column:ip_addr" json:"ip_addr"`
	CreatedAt *time.Time `json:"created_at"`
}
