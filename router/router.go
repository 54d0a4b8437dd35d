package router

import (
	"log"

	"mdyrent/config"
	"mdyrent/controllers"
	"mdyrent/middleware"
	"mdyrent/storage"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public pages, public API
// and the Basic-auth protected admin area.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	uploader := storage.NewUploader(cfg)

	// Público
	r.GET("/health", controllers.Health)
	r.GET("/health/storage", controllers.StorageHealth(cfg))
	r.GET("/", Logger(), controllers.Home)
	r.GET("/faq", Logger(), controllers.FaqPage)
	r.GET("/privacy", Logger(), controllers.PrivacyPage)
	r.GET("/terms", Logger(), controllers.TermsPage)
	r.GET("/uploads/:filename", controllers.ServeUpload(cfg))

	api := r.Group("/api")
	api.GET("/locations", Logger(), controllers.ListLocations)
	api.POST("/quote", Logger(), controllers.CreateQuote)
	api.POST("/contact", Logger(), controllers.CreateContact)

	// Exposições simples para o front (sem auth, como sempre foram)
	r.GET("/admin/settings.json", Logger(), controllers.SettingsJSON)
	r.GET("/admin/whatsapp", Logger(), controllers.SettingsWhatsAppPlain)

	// Admin (credencial única compartilhada)
	admin := r.Group("/admin")
	admin.Use(controllers.BasicAuthRequired(cfg))

	admin.GET("", Logger(), controllers.AdminHome)

	admin.GET("/categories", Logger(), controllers.CategoriesList)
	admin.POST("/categories/new", Logger(), controllers.CategoriesNew(uploader))
	admin.POST("/categories/:cid/update", Logger(), controllers.CategoriesUpdate(uploader))
	admin.POST("/categories/:cid/toggle", Logger(), controllers.CategoriesToggle)
	admin.POST("/categories/:cid/delete", Logger(), controllers.CategoriesDelete)

	admin.POST("/categories/:cid/items/new", Logger(), controllers.ItemsNew)
	admin.POST("/categories/:cid/items/:iid/update", Logger(), controllers.ItemsUpdate)
	admin.POST("/categories/:cid/items/:iid/toggle", Logger(), controllers.ItemsToggle)
	admin.POST("/categories/:cid/items/:iid/delete", Logger(), controllers.ItemsDelete)

	admin.GET("/locations", Logger(), controllers.LocationsList)
	admin.POST("/locations/new", Logger(), controllers.LocationsNew)
	admin.POST("/locations/:id/update", Logger(), controllers.LocationsUpdate)
	admin.POST("/locations/:id/toggle", Logger(), controllers.LocationsToggle)
	admin.POST("/locations/:id/delete", Logger(), controllers.LocationsDelete)

	admin.GET("/legal", Logger(), controllers.LegalAdminList)
	admin.POST("/legal/:key/update", Logger(), controllers.LegalUpdate)

	admin.GET("/faq", Logger(), controllers.FaqAdminList)
	admin.POST("/faq/new", Logger(), controllers.FaqNew)
	admin.POST("/faq/:id/update", Logger(), controllers.FaqUpdate)
	admin.POST("/faq/:id/toggle", Logger(), controllers.FaqToggle)
	admin.POST("/faq/:id/delete", Logger(), controllers.FaqDelete)

	admin.GET("/settings", Logger(), controllers.SettingsForm)
	admin.POST("/settings", Logger(), controllers.SettingsSave)

	admin.GET("/quotes", Logger(), controllers.QuotesList)
	admin.POST("/quotes/:id/status", Logger(), controllers.QuotesSetStatus)
	admin.GET("/quotes/:id/whatsapp", Logger(), controllers.QuotesWhatsAppLink)

	log.Printf("Routes initialized")
}
