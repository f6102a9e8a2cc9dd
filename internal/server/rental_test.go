package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogdomain "github.com/sureshullagaddi/movie-rental-app/internal/catalog/domain"
	catalogrepo "github.com/sureshullagaddi/movie-rental-app/internal/catalog/repository"
	"github.com/sureshullagaddi/movie-rental-app/internal/clock"
	"github.com/sureshullagaddi/movie-rental-app/internal/config"
	invoicedomain "github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/render"
	invoicesvc "github.com/sureshullagaddi/movie-rental-app/internal/invoice/service"
)

const wantJohnDoeInvoice = "Rental Record for John Doe\n" +
	"\tMovie 1\t2.00\n" +
	"\tMovie 2\t9.00\n" +
	"Amount owed is 11.00\n" +
	"You earned 3 frequent points\n"

func TestGenerateInvoiceEndpoint(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice", `{"customer_name":"John Doe"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != wantJohnDoeInvoice {
		t.Fatalf("invoice mismatch:\ngot:  %q\nwant: %q", w.Body.String(), wantJohnDoeInvoice)
	}
}

func TestGenerateInvoiceWithInlineRentals(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice", `{"customer_name":"John Doe","rentals":[{"movie_id":"F002","days":1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	want := "Rental Record for John Doe\n\tMovie 2\t3.00\nAmount owed is 3.00\nYou earned 1 frequent points\n"
	if w.Body.String() != want {
		t.Fatalf("invoice mismatch:\ngot:  %q\nwant: %q", w.Body.String(), want)
	}
}

func TestGenerateInvoiceUnknownCustomer(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice", `{"customer_name":"Nobody"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, "customer_not_found")
}

func TestGenerateInvoiceNoRentals(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice", `{"customer_name":"Jane Roe"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, "no_rentals")
}

func TestGenerateInvoiceInvalidBody(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice", `{"rentals":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, "invalid_request")
}

func TestGenerateInvoiceByIDEndpoint(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice/id", `{"customer_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Body.String(), "Rental Record for customer ID: 1\n") {
		t.Fatalf("unexpected header: %q", w.Body.String())
	}
}

func TestGenerateInvoiceByIDUnknownCustomer(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice/id", `{"customer_id":99}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, "customer_not_found")
}

func TestStructuredInvoiceEndpoint(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice/structured", `{"customer_name":"John Doe"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data invoicedomain.Invoice `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Customer != "John Doe" {
		t.Fatalf("expected customer John Doe, got %q", resp.Data.Customer)
	}
	if len(resp.Data.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Data.Items))
	}
	if !resp.Data.Total.Equal(decimal.NewFromInt(11)) {
		t.Fatalf("expected total 11, got %s", resp.Data.Total)
	}
	if resp.Data.FrequentPoints != 3 {
		t.Fatalf("expected 3 points, got %d", resp.Data.FrequentPoints)
	}
}

func TestInvoicePDFEndpoint(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/invoice/pdf", `{"customer_name":"John Doe"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatal("response is not a PDF document")
	}
}

func TestParseInvoiceEndpoint(t *testing.T) {
	srv := setupServer(t)

	body, err := json.Marshal(map[string]string{"invoice_text": wantJohnDoeInvoice})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w := doJSON(t, srv, "/api/rentals/parse", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data invoicedomain.Invoice `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Customer != "John Doe" {
		t.Fatalf("expected customer John Doe, got %q", resp.Data.Customer)
	}
	if resp.Data.FrequentPoints != 3 {
		t.Fatalf("expected 3 points, got %d", resp.Data.FrequentPoints)
	}
}

func TestParseInvoiceMalformed(t *testing.T) {
	srv := setupServer(t)

	w := doJSON(t, srv, "/api/rentals/parse", `{"invoice_text":"not an invoice"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	assertErrorCode(t, w, "malformed_invoice")
}

func TestHealthz(t *testing.T) {
	srv := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func doJSON(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	return w
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error != want {
		t.Fatalf("expected error code %q, got %q", want, resp.Error)
	}
}

func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&catalogdomain.Customer{},
		&catalogdomain.Movie{},
		&catalogdomain.MoviePricing{},
		&catalogdomain.Rental{},
		&invoicedomain.Record{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	stmts := []string{
		`INSERT INTO customers (id, name) VALUES (1, 'John Doe')`,
		`INSERT INTO customers (id, name) VALUES (2, 'Jane Roe')`,
		`INSERT INTO movies (id, title, movie_type) VALUES ('F001', 'Movie 1', 'regular')`,
		`INSERT INTO movies (id, title, movie_type) VALUES ('F002', 'Movie 2', 'new')`,
		`INSERT INTO movie_pricings (code, base_days, base_price, extra_price_per_day) VALUES ('regular', 2, 2, 1.5)`,
		`INSERT INTO movie_pricings (code, base_days, base_price, extra_price_per_day) VALUES ('children', 3, 1.5, 1.5)`,
		`INSERT INTO movie_pricings (code, base_days, base_price, extra_price_per_day) VALUES ('new', 0, 0, 3)`,
		`INSERT INTO movie_rentals (customer_id, movie_id, days) VALUES (1, 'F001', 2)`,
		`INSERT INTO movie_rentals (customer_id, movie_id, days) VALUES (1, 'F002', 3)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	svc := invoicesvc.NewService(invoicesvc.ServiceParam{
		DB:      db,
		Log:     zap.NewNop(),
		GenID:   node,
		Clock:   clock.SystemClock{},
		Catalog: catalogrepo.Provide(db),
		Cfg:     config.Config{},
	})

	engine := gin.New()
	srv := NewServer(ServerParam{
		Cfg:        config.Config{Port: "8080"},
		Log:        zap.NewNop(),
		Engine:     engine,
		InvoiceSvc: svc,
		Renderer:   render.NewRenderer(),
	})
	srv.RegisterAPIRoutes()
	return srv
}
