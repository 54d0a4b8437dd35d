package controllers

import (
	"net/http"
	"strings"

	dbpkg "mdyrent/db"
	"mdyrent/models"
	"mdyrent/storage"

	"github.com/gin-gonic/gin"
)

const categoriesPath = "/admin/categories"

// GET /admin
func AdminHome(c *gin.Context) {
	c.Redirect(http.StatusFound, categoriesPath)
}

// GET /admin/categories
func CategoriesList(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var cats []models.FeaturedCategory
	if err := db.Order("position asc, id asc").Find(&cats).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	for i := range cats {
		db.Where("category_id = ?", cats[i].ID).Order("position asc, id asc").Find(&cats[i].Items)
	}

	level, msg := TakeFlash(c)
	c.HTML(http.StatusOK, "admin_categories.html", gin.H{
		"categories":   cats,
		"flashLevel":   level,
		"flashMessage": msg,
	})
}

// POST /admin/categories/new
func CategoriesNew(up storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			return
		}

		name := strings.TrimSpace(c.PostForm("name"))
		slug := strings.ToLower(strings.TrimSpace(c.PostForm("slug")))
		if name == "" || slug == "" {
			SetFlash(c, "danger", "Nome e slug são obrigatórios.")
			c.Redirect(http.StatusFound, categoriesPath)
			return
		}

		cat := models.FeaturedCategory{
			Name:     name,
			Slug:     slug,
			Position: atoiDefault(c.PostForm("position"), 0),
			Active:   c.PostForm("active") != "",
		}

		if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
			if ref := up.SaveImage(c.Request.Context(), storage.MultipartImage{Header: fh}); ref != "" {
				cat.ImageURL = ref
			}
		}

		if err := db.Create(&cat).Error; err != nil {
			SetFlash(c, "danger", err.Error())
			c.Redirect(http.StatusFound, categoriesPath)
			return
		}

		SetFlash(c, "success", "Categoria adicionada.")
		c.Redirect(http.StatusFound, categoriesPath)
	}
}

// POST /admin/categories/:cid/update
// Sobrescrita parcial: só os campos presentes no form trocam o valor atual.
func CategoriesUpdate(up storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		cid, ok := ParamID(c, "cid")
		if !ok {
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			return
		}

		var cat models.FeaturedCategory
		if err := db.First(&cat, cid).Error; err != nil {
			RespondError(c, "categoria não encontrada", http.StatusNotFound)
			return
		}

		if v := strings.TrimSpace(c.PostForm("name")); v != "" {
			cat.Name = v
		}
		if v := strings.ToLower(strings.TrimSpace(c.PostForm("slug"))); v != "" {
			cat.Slug = v
		}
		if v, present := c.GetPostForm("position"); present {
			cat.Position = atoiDefault(v, cat.Position)
		}
		if _, present := c.GetPostForm("active"); present {
			cat.Active = c.PostForm("active") != ""
		}

		if fh, err := c.FormFile("image_file"); err == nil && fh != nil {
			if ref := up.SaveImage(c.Request.Context(), storage.MultipartImage{Header: fh}); ref != "" {
				cat.ImageURL = ref
			}
		}

		if err := db.Save(&cat).Error; err != nil {
			SetFlash(c, "danger", err.Error())
			c.Redirect(http.StatusFound, categoriesPath)
			return
		}

		SetFlash(c, "success", "Categoria atualizada.")
		c.Redirect(http.StatusFound, categoriesPath)
	}
}

// POST /admin/categories/:cid/toggle
func CategoriesToggle(c *gin.Context) {
	cid, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var cat models.FeaturedCategory
	if err := db.First(&cat, cid).Error; err != nil {
		RespondError(c, "categoria não encontrada", http.StatusNotFound)
		return
	}

	if err := db.Model(&cat).Update("active", !cat.Active).Error; err != nil {
		SetFlash(c, "danger", err.Error())
	}
	c.Redirect(http.StatusFound, categoriesPath)
}

// POST /admin/categories/:cid/delete
// Exclusão definitiva; os itens filhos vão junto.
func CategoriesDelete(c *gin.Context) {
	cid, ok := ParamID(c, "cid")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var cat models.FeaturedCategory
	if err := db.First(&cat, cid).Error; err != nil {
		RespondError(c, "categoria não encontrada", http.StatusNotFound)
		return
	}

	tx := db.Begin()
	if err := tx.Where("category_id = ?", cat.ID).Delete(&models.FeaturedItem{}).Error; err != nil {
		tx.Rollback()
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}
	if err := tx.Delete(&cat).Error; err != nil {
		tx.Rollback()
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		SetFlash(c, "danger", err.Error())
		c.Redirect(http.StatusFound, categoriesPath)
		return
	}

	SetFlash(c, "warning", "Categoria excluída.")
	c.Redirect(http.StatusFound, categoriesPath)
}
