package db

import (
	"log"
	"os"
	"path/filepath"

	"mdyrent/config"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Connect abre conexão com o banco: postgres quando DATABASE_URL está
// configurada, senão sqlite3 local (dev).
func Connect(cfg config.Configuration) (*gorm.DB, error) {
	var (
		database *gorm.DB
		err      error
	)

	if cfg.DatabaseURL != "" {
		log.Println("Utilizando conexão com o postgresql...")
		database, err = gorm.Open("postgres", cfg.DatabaseURL)
	} else {
		log.Println("Utilizando conexão com o sqlite3...")
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		database, err = gorm.Open("sqlite3", cfg.SQLitePath)
	}

	if err != nil {
		log.Println("Got error when connect database, the error is: " + err.Error())
		return nil, err
	}

	// Log em dev
	database.LogMode(getenv("DB_LOG", "0") == "1")

	return database, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
