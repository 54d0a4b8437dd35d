package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"

	"github.com/gin-gonic/gin"
)

const locationsPath = "/admin/locations"

// GET /admin/locations
func LocationsList(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var rows []models.Location
	if err := db.Order("position asc, id asc").Find(&rows).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	level, msg := TakeFlash(c)
	c.HTML(http.StatusOK, "admin_locations.html", gin.H{
		"locations":    rows,
		"flashLevel":   level,
		"flashMessage": msg,
	})
}

// POST /admin/locations/new
func LocationsNew(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		SetFlash(c, "danger", "Nome é obrigatório.")
		c.Redirect(http.StatusFound, locationsPath)
		return
	}

	loc := models.Location{
		Name:     name,
		Position: atoiDefault(c.PostForm("position"), 0),
		Active:   c.PostForm("active") != "",
	}

	if err := db.Create(&loc).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, locationsPath)
		return
	}

	SetFlash(c, "success", "Local adicionado.")
	c.Redirect(http.StatusFound, locationsPath)
}

// POST /admin/locations/:id/update
func LocationsUpdate(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var loc models.Location
	if err := db.First(&loc, id).Error; err != nil {
		RespondError(c, "local não encontrado", http.StatusNotFound)
		return
	}

	if v := strings.TrimSpace(c.PostForm("name")); v != "" {
		loc.Name = v
	}
	if v, present := c.GetPostForm("position"); present {
		loc.Position = atoiDefault(v, loc.Position)
	}
	if _, present := c.GetPostForm("active"); present {
		loc.Active = c.PostForm("active") != ""
	}

	if err := db.Save(&loc).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, locationsPath)
		return
	}

	SetFlash(c, "success", "Local atualizado.")
	c.Redirect(http.StatusFound, locationsPath)
}

// POST /admin/locations/:id/toggle
func LocationsToggle(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var loc models.Location
	if err := db.First(&loc, id).Error; err != nil {
		RespondError(c, "local não encontrado", http.StatusNotFound)
		return
	}

	if err := db.Model(&loc).Update("active", !loc.Active).Error; err != nil {
		SetFlash(c, "danger", err.Error())
	}
	c.Redirect(http.StatusFound, locationsPath)
}

// POST /admin/locations/:id/delete
func LocationsDelete(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Delete(&models.Location{}, "id = ?", id).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, locationsPath)
		return
	}

	SetFlash(c, "warning", "Local excluído.")
	c.Redirect(http.StatusFound, locationsPath)
}
