package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"mdyrent/config"
)

// Extensões de imagem aceitas. Controle de segurança contra upload de
// arquivo executável/confusão de tipo.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ImageFile é o que o uploader precisa de um arquivo enviado.
type ImageFile interface {
	Filename() string
	ContentType() string
	Bytes() ([]byte, error)
}

// MultipartImage adapta o *multipart.FileHeader do gin para ImageFile.
type MultipartImage struct {
	Header *multipart.FileHeader
}

func (m MultipartImage) Filename() string {
	if m.Header == nil {
		return ""
	}
	return m.Header.Filename
}

func (m MultipartImage) ContentType() string {
	if m.Header == nil {
		return ""
	}
	return m.Header.Header.Get("Content-Type")
}

func (m MultipartImage) Bytes() ([]byte, error) {
	f, err := m.Header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Uploader salva imagens de categoria: tenta o storage remoto e, se
// falhar ou não estiver configurado, cai para o disco local.
type Uploader struct {
	Remote   SupabaseClient
	LocalDir string
}

// NewUploader monta o uploader a partir da configuração.
func NewUploader(cfg config.Configuration) Uploader {
	return Uploader{
		Remote: SupabaseClient{
			BaseURL:    cfg.Supabase.URL,
			ServiceKey: cfg.Supabase.ServiceKey,
			Bucket:     cfg.Supabase.Bucket,
		},
		LocalDir: cfg.UploadDir,
	}
}

// SaveImage persiste a imagem e devolve a referência a guardar no modelo:
// URL pública (remoto), só o nome do arquivo (fallback local) ou ""
// quando não há arquivo / extensão proibida / tudo falhou. Nunca
// propaga erro: "" significa "ficou sem imagem", não falha fatal.
func (u Uploader) SaveImage(ctx context.Context, file ImageFile) string {
	if file == nil || strings.TrimSpace(file.Filename()) == "" {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(file.Filename()))
	if !allowedImageExts[ext] {
		log.Printf("upload: extensão não permitida: %q", ext)
		return ""
	}

	unique := randomHex(16) + ext

	data, err := file.Bytes()
	if err != nil {
		log.Printf("upload: falha lendo arquivo: %v", err)
		return ""
	}

	// 1) storage remoto (persistente)
	if u.Remote.Configured() {
		path := "categories/" + sanitizeFilename(unique)
		if err := u.Remote.Upload(ctx, path, data, file.ContentType()); err != nil {
			log.Printf("upload: falha no storage remoto, caindo para disco local: %v", err)
		} else {
			return u.Remote.PublicURL(path)
		}
	}

	// 2) fallback local
	if err := os.MkdirAll(u.LocalDir, 0o755); err != nil {
		log.Printf("upload: falha criando diretório local: %v", err)
		return ""
	}
	dest := filepath.Join(u.LocalDir, sanitizeFilename(unique))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		log.Printf("upload: fallback local falhou: %v", err)
		return ""
	}
	return unique
}

// randomHex devolve n bytes aleatórios em hex (nome único de arquivo).
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// rand.Read não falha em plataformas suportadas
		panic(err)
	}
	return hex.EncodeToString(b)
}

func sanitizeFilename(s string) string {
	s = strings.TrimSpace(filepath.Base(s))
	if s == "" || s == "." || s == string(filepath.Separator) {
		return "file"
	}
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
