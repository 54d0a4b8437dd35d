package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"

	"github.com/gin-gonic/gin"
)

const legalPath = "/admin/legal"

// GET /admin/legal
func LegalAdminList(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	privacy, err := models.GetOrCreateLegalPage(db, models.LEGAL_PAGE_PRIVACY, "Política de Privacidade")
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	terms, err := models.GetOrCreateLegalPage(db, models.LEGAL_PAGE_TERMS, "Termos de Uso")
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	level, msg := TakeFlash(c)
	c.HTML(http.StatusOK, "admin_legal.html", gin.H{
		"privacy":      privacy,
		"terms":        terms,
		"flashLevel":   level,
		"flashMessage": msg,
	})
}

// POST /admin/legal/:key/update
func LegalUpdate(c *gin.Context) {
	key := c.Param("key")
	if key != models.LEGAL_PAGE_PRIVACY && key != models.LEGAL_PAGE_TERMS {
		RespondError(c, "página não encontrada", http.StatusNotFound)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	page, err := models.GetOrCreateLegalPage(db, key, key)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if v := strings.TrimSpace(c.PostForm("title")); v != "" {
		page.Title = v
	}
	if v, present := c.GetPostForm("html"); present {
		page.HTML = v
	}

	if err := db.Save(&page).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, legalPath)
		return
	}

	SetFlash(c, "success", "Página atualizada.")
	c.Redirect(http.StatusFound, legalPath)
}
