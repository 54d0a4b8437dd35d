package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseClient é um cliente fino para o Storage do Supabase
// (upload de objetos e URL pública). Em produção o ServiceKey deve ser
// a service role key, usada apenas no backend.
type SupabaseClient struct {
	BaseURL    string // ex: https://xyz.supabase.co
	ServiceKey string
	Bucket     string
}

// Configured diz se o cliente tem tudo que precisa para o caminho remoto.
func (c SupabaseClient) Configured() bool {
	return strings.TrimSpace(c.BaseURL) != "" &&
		strings.TrimSpace(c.ServiceKey) != "" &&
		strings.TrimSpace(c.Bucket) != ""
}

// Upload sobe o objeto em {bucket}/{path} com upsert (sobrescreve se existir).
func (c SupabaseClient) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if !c.Configured() {
		return fmt.Errorf("supabase storage não configurado")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		strings.TrimRight(c.BaseURL, "/"), c.Bucket, strings.TrimPrefix(path, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(c.ServiceKey))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "public, max-age=31536000")
	req.Header.Set("x-upsert", "true")

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase storage error: status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}

// PublicURL devolve a URL pública do objeto em {bucket}/{path}.
func (c SupabaseClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		strings.TrimRight(c.BaseURL, "/"), c.Bucket, strings.TrimPrefix(path, "/"))
}
