package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"telefono-http-service/internal/domain/services"
	"telefono-http-service/internal/infrastructure/config"
	"telefono-http-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func newTestHandler(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg.DBDriver = config.DriverSQLite
	cfg.DBDSN = filepath.Join(t.TempDir(), "routes.sqlite")
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://phones.test"
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := database.Migrate(pool.GetDB(), database.MigrationAuto); err != nil {
		t.Fatalf("%+v", err)
	}

	return NewHandler(SetupRouter(pool.GetDB(), cfg, nil), cfg)
}

func send(t *testing.T, h http.Handler, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterServesPhones(t *testing.T) {
	h := newTestHandler(t, &config.Config{CacheTTL: time.Minute})

	w := send(t, h, http.MethodPost, "/usuarios", gin.H{"nombre": "Ana"}, nil)
	if e, g := http.StatusCreated, w.Code; e != g {
		t.Fatalf("create usuario: expected '%v', got '%v' (%s)", e, g, w.Body.String())
	}

	w = send(t, h, http.MethodGet, "/telefonos", nil, nil)
	if e, g := http.StatusOK, w.Code; e != g {
		t.Fatalf("list: expected '%v', got '%v'", e, g)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}

	w = send(t, h, http.MethodPost, "/telefonos", gin.H{"numero": "600123456", "usuario": gin.H{"id": 1}}, nil)
	if e, g := http.StatusCreated, w.Code; e != g {
		t.Fatalf("create telefono: expected '%v', got '%v' (%s)", e, g, w.Body.String())
	}

	// The write purged the cached empty list.
	w = send(t, h, http.MethodGet, "/telefonos", nil, nil)
	var env struct {
		Data struct {
			Body []json.RawMessage `json:"body"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	if e, g := 1, len(env.Data.Body); e != g {
		t.Errorf("len(body): expected '%v', got '%v'", e, g)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	h := newTestHandler(t, &config.Config{})

	w := send(t, h, http.MethodGet, "/nowhere", nil, nil)
	if e, g := http.StatusNotFound, w.Code; e != g {
		t.Errorf("status: expected '%v', got '%v'", e, g)
	}
}

func TestRouterRequiresTokenForWrites(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "secret"}
	h := newTestHandler(t, cfg)

	if e, g := http.StatusOK, send(t, h, http.MethodGet, "/telefonos", nil, nil).Code; e != g {
		t.Errorf("read: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusUnauthorized, send(t, h, http.MethodPost, "/usuarios", gin.H{"nombre": "Ana"}, nil).Code; e != g {
		t.Errorf("write without token: expected '%v', got '%v'", e, g)
	}

	token, err := services.NewJWTService(cfg).GenerateToken("operator", time.Hour)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	header := http.Header{"Authorization": []string{"Bearer " + token}}
	if e, g := http.StatusCreated, send(t, h, http.MethodPost, "/usuarios", gin.H{"nombre": "Ana"}, header).Code; e != g {
		t.Errorf("write with token: expected '%v', got '%v'", e, g)
	}
}

func TestRouterCORS(t *testing.T) {
	h := newTestHandler(t, &config.Config{CORSAllowedOrigins: []string{"http://app.test"}})

	w := send(t, h, http.MethodGet, "/ping", nil, http.Header{"Origin": []string{"http://app.test"}})
	if e, g := "http://app.test", w.Header().Get("Access-Control-Allow-Origin"); e != g {
		t.Errorf("Access-Control-Allow-Origin: expected '%v', got '%v'", e, g)
	}
}
