package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"
	"mdyrent/tools"

	"github.com/gin-gonic/gin"
)

const settingsPath = "/admin/settings"

const whatsappSettingKey = "whatsapp_number"

// GET /admin/settings
func SettingsForm(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	level, msg := TakeFlash(c)
	c.HTML(http.StatusOK, "admin_settings.html", gin.H{
		"whatsapp":     models.GetSettingValue(db, whatsappSettingKey, ""),
		"flashLevel":   level,
		"flashMessage": msg,
	})
}

// POST /admin/settings
func SettingsSave(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	whatsapp := strings.TrimSpace(c.PostForm("whatsapp"))
	if err := models.SetSettingValue(db, whatsappSettingKey, whatsapp); err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, settingsPath)
		return
	}

	SetFlash(c, "success", "Configurações salvas.")
	c.Redirect(http.StatusFound, settingsPath)
}

// GET /admin/settings.json
// Exposição simples para o front (sem auth, igual o /admin/whatsapp).
func SettingsJSON(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"whatsapp": tools.DigitsOnly(models.GetSettingValue(db, whatsappSettingKey, "")),
	})
}

// GET /admin/whatsapp
func SettingsWhatsAppPlain(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	c.String(http.StatusOK, tools.DigitsOnly(models.GetSettingValue(db, whatsappSettingKey, "")))
}
