package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

type fakeImage struct {
	name        string
	contentType string
	data        []byte
	reads       int
}

func (f *fakeImage) Filename() string    { return f.name }
func (f *fakeImage) ContentType() string { return f.contentType }
func (f *fakeImage) Bytes() ([]byte, error) {
	f.reads++
	return f.data, nil
}

var localRefPattern = regexp.MustCompile(`^[0-9a-f]{32}\.[a-z]+$`)

func TestSaveImageNoFile(t *testing.T) {
	u := Uploader{LocalDir: t.TempDir()}
	if got := u.SaveImage(context.Background(), nil); got != "" {
		t.Errorf("sem arquivo deveria devolver vazio, veio %q", got)
	}
	if got := u.SaveImage(context.Background(), &fakeImage{name: "  "}); got != "" {
		t.Errorf("nome vazio deveria devolver vazio, veio %q", got)
	}
}

func TestSaveImageRejectsExtension(t *testing.T) {
	dir := t.TempDir()
	u := Uploader{LocalDir: dir}

	for _, name := range []string{"shell.php", "run.exe", "noext", "arquivo.PDF"} {
		img := &fakeImage{name: name, data: []byte("x")}
		if got := u.SaveImage(context.Background(), img); got != "" {
			t.Errorf("extensão de %q deveria ser rejeitada, veio %q", name, got)
		}
		if img.reads != 0 {
			t.Errorf("%q: não deveria ler o arquivo de extensão proibida", name)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("extensão proibida não pode gerar escrita em disco, achou %d arquivos", len(entries))
	}
}

func TestSaveImageLocalFallback(t *testing.T) {
	dir := t.TempDir()
	u := Uploader{LocalDir: dir} // remoto não configurado

	img := &fakeImage{name: "Foto Carro.PNG", contentType: "image/png", data: []byte("png-bytes")}
	ref := u.SaveImage(context.Background(), img)

	if !localRefPattern.MatchString(ref) {
		t.Fatalf("fallback local deveria devolver só o nome do arquivo, veio %q", ref)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Errorf("extensão original (minúscula) deveria ser mantida: %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, ref))
	if err != nil {
		t.Fatalf("arquivo não foi escrito: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("conteúdo gravado difere do enviado")
	}

	if got := ResolveImageURL(ref); got == "" {
		t.Errorf("referência válida deveria resolver para URL não vazia")
	}
}

func TestSaveImageRemote(t *testing.T) {
	var gotPath, gotContentType, gotUpsert string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u := Uploader{
		Remote:   SupabaseClient{BaseURL: srv.URL, ServiceKey: "key", Bucket: "mdy-uploads"},
		LocalDir: t.TempDir(),
	}

	img := &fakeImage{name: "carro.jpg", contentType: "image/jpeg", data: []byte("jpg")}
	ref := u.SaveImage(context.Background(), img)

	if !strings.HasPrefix(ref, srv.URL+"/storage/v1/object/public/mdy-uploads/categories/") {
		t.Fatalf("upload remoto deveria devolver URL pública, veio %q", ref)
	}
	if !strings.HasPrefix(gotPath, "/storage/v1/object/mdy-uploads/categories/") {
		t.Errorf("caminho de upload inesperado: %q", gotPath)
	}
	if gotContentType != "image/jpeg" {
		t.Errorf("content-type não propagado: %q", gotContentType)
	}
	if gotUpsert != "true" {
		t.Errorf("upload deveria ser upsert")
	}

	if got := ResolveImageURL(ref); got != ref {
		t.Errorf("URL completa deveria passar direto pelo resolver: %q -> %q", ref, got)
	}
}

func TestSaveImageRemoteFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	u := Uploader{
		Remote:   SupabaseClient{BaseURL: srv.URL, ServiceKey: "key", Bucket: "mdy-uploads"},
		LocalDir: dir,
	}

	img := &fakeImage{name: "carro.webp", data: []byte("webp")}
	ref := u.SaveImage(context.Background(), img)

	if !localRefPattern.MatchString(ref) {
		t.Fatalf("falha remota deveria cair para disco local, veio %q", ref)
	}
	if _, err := os.Stat(filepath.Join(dir, ref)); err != nil {
		t.Errorf("fallback não escreveu o arquivo: %v", err)
	}
}

func TestSaveImageBothPathsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	// diretório local inválido (é um arquivo)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	u := Uploader{
		Remote:   SupabaseClient{BaseURL: srv.URL, ServiceKey: "key", Bucket: "mdy-uploads"},
		LocalDir: file,
	}

	img := &fakeImage{name: "carro.gif", data: []byte("gif")}
	if ref := u.SaveImage(context.Background(), img); ref != "" {
		t.Errorf("com remoto e local falhando deveria devolver vazio, veio %q", ref)
	}
}
