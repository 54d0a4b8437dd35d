package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mdyrent/models"

	"github.com/gin-gonic/gin"
)

func postForm(r *gin.Engine, path string, form url.Values, withAuth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if withAuth {
		req.SetBasicAuth("admin", "secret")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequiresAuth(t *testing.T) {
	r, db, _ := setupServer(t)

	form := url.Values{"name": {"Sedan"}, "slug": {"sedan"}}

	// sem credencial
	w := postForm(r, "/admin/categories/new", form, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("sem credencial: status = %d", w.Code)
	}
	if got := w.Header().Get("WWW-Authenticate"); !strings.HasPrefix(got, "Basic") {
		t.Errorf("challenge ausente: %q", got)
	}

	// credencial errada
	req := httptest.NewRequest(http.MethodPost, "/admin/categories/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("admin", "errada")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("credencial errada: status = %d", w.Code)
	}

	var count int
	db.Model(&models.FeaturedCategory{}).Count(&count)
	if count != 0 {
		t.Errorf("request sem auth não pode mutar, achou %d categorias", count)
	}
}

func TestCategoriesCreateAndValidate(t *testing.T) {
	r, db, _ := setupServer(t)

	// sem slug -> volta com aviso, nada gravado
	w := postForm(r, "/admin/categories/new", url.Values{"name": {"Sedan"}}, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	var count int
	db.Model(&models.FeaturedCategory{}).Count(&count)
	if count != 0 {
		t.Fatalf("criação inválida gravou %d categorias", count)
	}

	form := url.Values{
		"name":     {"Sedan"},
		"slug":     {"SEDAN"},
		"position": {"2"},
		"active":   {"1"},
	}
	w = postForm(r, "/admin/categories/new", form, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}

	var cat models.FeaturedCategory
	if err := db.First(&cat, "slug = ?", "sedan").Error; err != nil {
		t.Fatalf("slug deveria ser minúsculo: %v", err)
	}
	if !cat.Active || cat.Position != 2 {
		t.Errorf("categoria gravada errada: %+v", cat)
	}
}

func TestCategoriesToggleTwice(t *testing.T) {
	r, db, _ := setupServer(t)

	cat := models.FeaturedCategory{Name: "Luxo", Slug: "luxo", Active: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}

	toggle := func() {
		w := postForm(r, "/admin/categories/1/toggle", url.Values{}, true)
		if w.Code != http.StatusFound {
			t.Fatalf("toggle: status = %d", w.Code)
		}
	}

	toggle()
	var got models.FeaturedCategory
	db.First(&got, cat.ID)
	if got.Active {
		t.Fatal("primeiro toggle deveria desativar")
	}

	toggle()
	db.First(&got, cat.ID)
	if !got.Active {
		t.Fatal("segundo toggle deveria voltar ao original")
	}
}

func TestCategoriesDeleteCascades(t *testing.T) {
	r, db, _ := setupServer(t)

	cat := models.FeaturedCategory{Name: "SUVs", Slug: "suvs", Active: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	other := models.FeaturedCategory{Name: "Luxo", Slug: "luxo", Active: true}
	if err := db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}

	db.Create(&models.FeaturedItem{CategoryID: cat.ID, Title: "Corolla Cross", Active: true})
	db.Create(&models.FeaturedItem{CategoryID: cat.ID, Title: "Compass", Active: true})
	db.Create(&models.FeaturedItem{CategoryID: other.ID, Title: "BMW 320i", Active: true})

	w := postForm(r, "/admin/categories/1/delete", url.Values{}, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}

	var count int
	db.Model(&models.FeaturedItem{}).Where("category_id = ?", cat.ID).Count(&count)
	if count != 0 {
		t.Errorf("itens da categoria excluída deveriam sumir, sobraram %d", count)
	}

	db.Model(&models.FeaturedItem{}).Where("category_id = ?", other.ID).Count(&count)
	if count != 1 {
		t.Errorf("itens de outra categoria não podem ser afetados, sobraram %d", count)
	}

	db.Model(&models.FeaturedCategory{}).Count(&count)
	if count != 1 {
		t.Errorf("só a outra categoria deveria sobrar, achou %d", count)
	}
}

func TestQuoteStatusTransition(t *testing.T) {
	r, db, _ := setupServer(t)

	q := models.QuoteRequest{
		PickupPlace: "A", PickupDate: "2026-09-01",
		DropPlace: "B", DropDate: "2026-09-05",
		Name: "Maria", Phone: "11912345678", Category: "Sedan",
		Status: models.QUOTE_STATUS_NEW,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatal(err)
	}

	w := postForm(r, "/admin/quotes/1/status", url.Values{"status": {"em_contato"}}, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}

	var got models.QuoteRequest
	db.First(&got, q.ID)
	if got.Status != models.QUOTE_STATUS_CONTACTED {
		t.Errorf("status = %q", got.Status)
	}

	// status fora do conjunto não muda nada
	w = postForm(r, "/admin/quotes/1/status", url.Values{"status": {"cancelado"}}, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	db.First(&got, q.ID)
	if got.Status != models.QUOTE_STATUS_CONTACTED {
		t.Errorf("status inválido não pode gravar, veio %q", got.Status)
	}
}

func TestQuoteWhatsAppRedirect(t *testing.T) {
	r, db, _ := setupServer(t)

	q := models.QuoteRequest{
		PickupPlace: "Aeroporto GRU", PickupDate: "2026-09-01",
		DropPlace: "Centro SP", DropDate: "2026-09-05",
		Name: "Maria Souza", Phone: "(11) 91234-5678", Category: "SUVs",
		Status: models.QUOTE_STATUS_NEW,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/quotes/1/whatsapp", nil)
	req.SetBasicAuth("admin", "secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://wa.me/5511912345678?text=") {
		t.Errorf("redirect inesperado: %q", loc)
	}
}

func TestSettingsPublicEndpoints(t *testing.T) {
	r, db, _ := setupServer(t)

	if err := models.SetSettingValue(db, "whatsapp_number", "(11) 91234-5678"); err != nil {
		t.Fatal(err)
	}

	// sem auth: exposição simples para o front
	req := httptest.NewRequest(http.MethodGet, "/admin/whatsapp", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != "11912345678" {
		t.Errorf("corpo = %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/settings.json", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "11912345678") {
		t.Errorf("settings.json: status = %d, corpo = %q", w.Code, w.Body.String())
	}
}

func TestFaqToggleAndDelete(t *testing.T) {
	r, db, _ := setupServer(t)

	item := models.FaqItem{Question: "Precisa de cartão?", Answer: "Sim.", Active: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatal(err)
	}

	w := postForm(r, "/admin/faq/1/toggle", url.Values{}, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	var got models.FaqItem
	db.First(&got, item.ID)
	if got.Active {
		t.Error("toggle deveria desativar")
	}

	w = postForm(r, "/admin/faq/1/delete", url.Values{}, true)
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	var count int
	db.Model(&models.FaqItem{}).Count(&count)
	if count != 0 {
		t.Errorf("esperava 0 perguntas, achou %d", count)
	}
}
