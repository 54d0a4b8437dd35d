package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"

	"github.com/gin-gonic/gin"
)

type quoteInput struct {
	PickupPlace string `json:"pickup_place"`
	PickupDate  string `json:"pickup_date"`
	DropPlace   string `json:"drop_place"`
	DropDate    string `json:"drop_date"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Source      string `json:"source"`
}

// missingQuoteFields devolve, na ordem do formulário, os campos
// obrigatórios ausentes ou em branco.
func missingQuoteFields(in quoteInput) []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("pickup_place", in.PickupPlace)
	check("pickup_date", in.PickupDate)
	check("drop_place", in.DropPlace)
	check("drop_date", in.DropDate)
	check("name", in.Name)
	check("phone", in.Phone)
	check("category", in.Category)
	return missing
}

// POST /api/quote
func CreateQuote(c *gin.Context) {
	var in quoteInput
	_ = c.ShouldBindJSON(&in) // body ausente/ruim cai na validação de campos

	if missing := missingQuoteFields(in); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"error":   "Campos obrigatórios ausentes: " + strings.Join(missing, ", "),
			"missing": missing,
		})
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "home"
	}

	q := models.QuoteRequest{
		PickupPlace: strings.TrimSpace(in.PickupPlace),
		PickupDate:  strings.TrimSpace(in.PickupDate),
		DropPlace:   strings.TrimSpace(in.DropPlace),
		DropDate:    strings.TrimSpace(in.DropDate),
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		Category:    strings.TrimSpace(in.Category),
		Source:      source,
		UserAgent:   userAgent(c),
		IPAddr:      clientIP(c),
		Status:      models.QUOTE_STATUS_NEW,
	}

	if err := db.Create(&q).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": q.ID})
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/contact
func CreateContact(c *gin.Context) {
	var in contactInput
	_ = c.ShouldBindJSON(&in)

	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"error":   "Campos obrigatórios ausentes: " + strings.Join(missing, ", "),
			"missing": missing,
		})
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	m := models.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Message:   strings.TrimSpace(in.Message),
		UserAgent: userAgent(c),
		IPAddr:    clientIP(c),
	}

	if err := db.Create(&m).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": m.ID})
}

// GET /api/locations
func ListLocations(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var rows []models.Location
	if err := db.Where("active = ?", true).Order("position asc, id asc").Find(&rows).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{"id": r.ID, "name": r.Name})
	}
	RespondSuccess(c, out)
}
