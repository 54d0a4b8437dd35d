package controllers

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"mdyrent/config"
	dbpkg "mdyrent/db"
	"mdyrent/models"
	"mdyrent/storage"
	"mdyrent/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// GridSlot é um dos seis cards fixos da grade da home.
type GridSlot struct {
	Name   string
	Slug   string
	Active bool
	Image  string
}

// Slots fixos exibidos na home, na ordem. Para cada um, o slug desejado
// e as variantes comuns digitadas no admin.
var desiredSlots = []struct {
	Name     string
	Slug     string
	Variants []string
}{
	{"Compacto", "compacto", nil},
	{"Sedan", "sedan", []string{"sedans", "sedã"}},
	{"SUVs", "suvs", []string{"suv"}},
	{"Minivans", "minivans", nil},
	{"Luxo", "luxo", nil},
	{"Especial", "especial", []string{"special"}},
}

// buildGridSlots indexa as categorias pelo slug normalizado e preenche
// os seis slots. Slot sem categoria vira placeholder inativo.
func buildGridSlots(db *gorm.DB) []GridSlot {
	var cats []models.FeaturedCategory
	db.Find(&cats)

	bySlug := make(map[string]models.FeaturedCategory, len(cats))
	for _, cat := range cats {
		if k := tools.SlugKey(cat.Slug); k != "" {
			bySlug[k] = cat
		}
	}

	slots := make([]GridSlot, 0, len(desiredSlots))
	for _, want := range desiredSlots {
		cat, found := bySlug[tools.SlugKey(want.Slug)]
		if !found {
			for _, v := range want.Variants {
				if cat, found = bySlug[tools.SlugKey(v)]; found {
					break
				}
			}
		}

		if found {
			name := cat.Name
			if name == "" {
				name = want.Name
			}
			slots = append(slots, GridSlot{
				Name:   name,
				Slug:   tools.SlugKey(cat.Slug),
				Active: cat.Active,
				Image:  storage.ResolveImageURL(cat.ImageURL),
			})
			continue
		}

		slots = append(slots, GridSlot{
			Name:   want.Name + " (configurar no admin)",
			Slug:   want.Slug,
			Active: false,
			Image:  "",
		})
	}
	return slots
}

// GET /
func Home(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	whatsapp := tools.DigitsOnly(models.GetSettingValue(db, "whatsapp_number", ""))

	c.HTML(http.StatusOK, "index.html", gin.H{
		"whatsapp":  whatsapp,
		"gridSlots": buildGridSlots(db),
	})
}

// GET /faq
func FaqPage(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	whatsapp := tools.DigitsOnly(models.GetSettingValue(db, "whatsapp_number", ""))

	var items []models.FaqItem
	db.Where("active = ?", true).Order("position asc, id asc").Find(&items)

	c.HTML(http.StatusOK, "faq.html", gin.H{
		"items":    items,
		"whatsapp": whatsapp,
	})
}

// GET /privacy
func PrivacyPage(c *gin.Context) {
	renderLegalPage(c, models.LEGAL_PAGE_PRIVACY, "Política de Privacidade")
}

// GET /terms
func TermsPage(c *gin.Context) {
	renderLegalPage(c, models.LEGAL_PAGE_TERMS, "Termos de Uso")
}

func renderLegalPage(c *gin.Context, key, title string) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	page, err := models.GetOrCreateLegalPage(db, key, title)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "legal_public.html", gin.H{
		"page": page,
		// HTML editado no admin (confiável): renderiza sem escapar
		"content": template.HTML(page.HTML),
	})
}

// GET /uploads/:filename
// Serve os arquivos salvos pelo fallback local do uploader.
func ServeUpload(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := filepath.Base(c.Param("filename"))
		if filename == "" || filename == "." || filename == "/" {
			c.Status(http.StatusNotFound)
			return
		}

		path := filepath.Join(cfg.UploadDir, filename)
		if _, err := os.Stat(path); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(path)
	}
}

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /health/storage
// Diagnóstico rápido: diz se o storage remoto está configurado (sem expor valores).
func StorageHealth(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"remote_storage": cfg.Supabase.URL != "" && cfg.Supabase.ServiceKey != "",
			"envs": gin.H{
				"SUPABASE_URL":              cfg.Supabase.URL != "",
				"SUPABASE_SERVICE_ROLE_KEY": cfg.Supabase.ServiceKey != "",
				"SUPABASE_BUCKET":           cfg.Supabase.Bucket != "",
			},
		})
	}
}
