package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"

	"github.com/gin-gonic/gin"
)

// POST /admin/categories/:cid/items/new
func ItemsNew(c *gin.Context) {
	cid, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.First(&models.FeaturedCategory{}, cid).Error; err != nil {
		RespondError(c, "categoria não encontrada", http.StatusNotFound)
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		SetFlash(c, "danger", "Título é obrigatório.")
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}

	item := models.FeaturedItem{
		CategoryID: cid,
		Title:      title,
		Subtitle:   strings.TrimSpace(c.PostForm("subtitle")),
		ImagePath:  strings.TrimSpace(c.PostForm("image_path")),
		Position:   atoiDefault(c.PostForm("position"), 0),
		Active:     c.PostForm("active") != "",
	}

	if err := db.Create(&item).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}

	SetFlash(c, "success", "Veículo adicionado.")
	c.Redirect(http.StatusFound, categoriesPath)
}

// POST /admin/categories/:cid/items/:iid/update
func ItemsUpdate(c *gin.Context) {
	cid, ok := ParamID(c, "cid")
	if !ok {
		return
	}
	iid, ok := ParamID(c, "iid")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.FeaturedItem
	if err := db.Where("category_id = ?", cid).First(&item, iid).Error; err != nil {
		RespondError(c, "veículo não encontrado", http.StatusNotFound)
		return
	}

	if v := strings.TrimSpace(c.PostForm("title")); v != "" {
		item.Title = v
	}
	if v, present := c.GetPostForm("subtitle"); present {
		item.Subtitle = strings.TrimSpace(v)
	}
	if v, present := c.GetPostForm("image_path"); present {
		item.ImagePath = strings.TrimSpace(v)
	}
	if v, present := c.GetPostForm("position"); present {
		item.Position = atoiDefault(v, item.Position)
	}
	if _, present := c.GetPostForm("active"); present {
		item.Active = c.PostForm("active") != ""
	}

	if err := db.Save(&item).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}

	SetFlash(c, "success", "Veículo atualizado.")
	c.Redirect(http.StatusFound, categoriesPath)
}

// POST /admin/categories/:cid/items/:iid/toggle
func ItemsToggle(c *gin.Context) {
	cid, ok := ParamID(c, "cid")
	if !ok {
		return
	}
	iid, ok := ParamID(c, "iid")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var item models.FeaturedItem
	if err := db.Where("category_id = ?", cid).First(&item, iid).Error; err != nil {
		RespondError(c, "veículo não encontrado", http.StatusNotFound)
		return
	}

	if err := db.Model(&item).Update("active", !item.Active).Error; err != nil {
		SetFlash(c, "danger", err.Error())
	}
	c.Redirect(http.StatusFound, categoriesPath)
}

// POST /admin/categories/:cid/items/:iid/delete
func ItemsDelete(c *gin.Context) {
	cid, ok := ParamID(c, "cid")
	if !ok {
		return
	}
	iid, ok := ParamID(c, "iid")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if err := db.Where("category_id = ?", cid).Delete(&models.FeaturedItem{}, "id = ?", iid).Error; err != nil {
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}

	SetFlash(c, "warning", "Veículo excluído.")
	c.Redirect(http.StatusFound, categoriesPath)
}
