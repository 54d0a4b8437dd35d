package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"

	"github.com/gin-gonic/gin"
)

const faqPath = "/admin/faq"

// GET /admin/faq
func FaqAdminList(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var items []models.FaqItem
	if err := db.Order("position asc, id asc").Find(&items).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	level, msg := TakeFlash(c)
	c.HTML(http.StatusOK, "admin_faq.html", gin.H{
		"items":        items,
		"flashLevel":   level,
		"flashMessage": msg,
	})
}

// POST /admin/faq/new
func FaqNew(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	question := strings.TrimSpace(c.PostForm("question"))
	if question == "" {
		SetFlash(c, "danger", "Pergunta é obrigatória.")
		c.Redirect(http.StatusFound, faqPath)
		return
	}

	item := models.FaqItem{
		Question: question,
		Answer:   strings.TrimSpace(c.PostForm("answer")),
		Position: atoiDefault(c.PostForm("position"), 0),
		Active:   c.PostForm("active") != "",
	}

	if err := db.Create(&item).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, faqPath)
		return
	}

	SetFlash(c, "success", "Pergunta adicionada.")
	c.Redirect(http.StatusFound, faqPath)
}

// POST /admin/faq/:id/update
func FaqUpdate(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.FaqItem
	if err := db.First(&item, id).Error; err != nil {
		RespondError(c, "pergunta não encontrada", http.StatusNotFound)
		return
	}

	if v := strings.TrimSpace(c.PostForm("question")); v != "" {
		item.Question = v
	}
	if v, present := c.GetPostForm("answer"); present {
		item.Answer = strings.TrimSpace(v)
	}
	if v, present := c.GetPostForm("position"); present {
		item.Position = atoiDefault(v, item.Position)
	}
	if _, present := c.GetPostForm("active"); present {
		item.Active = c.PostForm("active") != ""
	}

	if err := db.Save(&item).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, faqPath)
		return
	}

	SetFlash(c, "success", "Pergunta atualizada.")
	c.Redirect(http.StatusFound, faqPath)
}

// POST /admin/faq/:id/toggle
func FaqToggle(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.FaqItem
	if err := db.First(&item, id).Error; err != nil {
		RespondError(c, "pergunta não encontrada", http.StatusNotFound)
		return
	}

	if err := db.Model(&item).Update("active", !item.Active).Error; err != nil {
		SetFlash(c, "danger", err.Error())
	}
	c.Redirect(http.StatusFound, faqPath)
}

// POST /admin/faq/:id/delete
func FaqDelete(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&models.FaqItem{}, "id = ?", id).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, faqPath)
		return
	}

	SetFlash(c, "warning", "Pergunta excluída.")
	c.Redirect(http.StatusFound, faqPath)
}
