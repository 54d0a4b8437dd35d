package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"
	"mdyrent/tools"

	"github.com/gin-gonic/gin"
)

const quotesPath = "/admin/quotes"

// GET /admin/quotes
func QuotesList(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var quotes []models.QuoteRequest
	if err := db.Order("created_at desc, id desc").Find(&quotes).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	level, msg := TakeFlash(c)
	c.HTML(http.StatusOK, "admin_quotes.html", gin.H{
		"quotes":       quotes,
		"flashLevel":   level,
		"flashMessage": msg,
	})
}

// POST /admin/quotes/:id/status
// Única mutação permitida em cotações: a transição de status.
func QuotesSetStatus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var q models.QuoteRequest
	if err := db.First(&q, id).Error; err != nil {
		RespondError(c, "cotação não encontrada", http.StatusNotFound)
		return
	}

	status := strings.TrimSpace(c.PostForm("status"))
	if !models.ValidQuoteStatus(status) {
		SetFlash(c, "danger", "Status inválido.")
		c.Redirect(http.StatusFound, quotesPath)
		return
	}

	if err := db.Model(&q).Update("status", status).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, quotesPath)
		return
	}

	SetFlash(c, "success", "Status atualizado.")
	c.Redirect(http.StatusFound, quotesPath)
}

// GET /admin/quotes/:id/whatsapp
// Abre a conversa com o cliente da cotação, mensagem já preenchida.
func QuotesWhatsAppLink(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var q models.QuoteRequest
	if err := db.First(&q, id).Error; err != nil {
		RespondError(c, "cotação não encontrada", http.StatusNotFound)
		return
	}

	link, err := tools.QuoteDeepLink(q)
	if err != nil {
		SetFlash(c, "danger", "Telefone da cotação inválido: "+err.Error())
		c.Redirect(http.StatusFound, quotesPath)
		return
	}

	c.Redirect(http.StatusFound, link)
}
