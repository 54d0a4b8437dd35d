package main

import (
	"log"

	"mdyrent/config"
	dbpkg "mdyrent/db"
	"mdyrent/models"
	"mdyrent/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// carrega .env (opcional em produção)
	_ = godotenv.Load()

	cfg := config.Get()

	r := gin.New()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	database, err := dbpkg.Connect(cfg)
	if err != nil {
		// banco fora do ar não derruba a subida; handlers respondem 500
		log.Printf("banco indisponível na subida, seguindo sem conexão: %v", err)
	} else {
		defer database.Close()
		if err := models.AutoMigrate(database); err != nil {
			log.Printf("automigrate falhou na inicialização (seguindo sem criar tabelas): %v", err)
		}
		r.Use(dbpkg.SetDBtoContext(database))
	}

	router.Initialize(r, cfg)

	log.Printf("MDY locadora listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
