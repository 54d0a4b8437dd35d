package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Configuration struct {
	Port string

	// DatabaseURL vazio -> sqlite3 local (dev)
	DatabaseURL string
	SQLitePath  string

	AdminUsername string
	AdminPassword string

	// Diretório de fallback para uploads quando o storage remoto falha.
	// Em serverless normalmente só /tmp é gravável.
	UploadDir string

	Supabase struct {
		URL        string
		ServiceKey string
		Bucket     string
	}
}

// Get monta a configuração a partir das ENVs, com defaults de desenvolvimento.
func Get() Configuration {
	var c Configuration

	c.Port = getenv("PORT", "8080")
	c.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	c.SQLitePath = getenv("SQLITE_PATH", "db/local.db")

	c.AdminUsername = getenv("ADMIN_USERNAME", "admin")
	c.AdminPassword = getenv("ADMIN_PASSWORD", "admin")

	tmpRoot := getenv("TMPDIR", "/tmp")
	c.UploadDir = getenv("UPLOAD_DIR", filepath.Join(tmpRoot, "uploads"))

	c.Supabase.URL = strings.TrimSpace(os.Getenv("SUPABASE_URL"))
	c.Supabase.ServiceKey = strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_ROLE_KEY"))
	c.Supabase.Bucket = getenv("SUPABASE_BUCKET", "mdy-uploads")

	return c
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
