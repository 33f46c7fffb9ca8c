package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/s/elearning/internal/database"
	"github.com/s/elearning/internal/handlers"
	"github.com/s/elearning/internal/router"
)

// newTestEnv spins up the full HTTP surface on an in-memory sqlite DB.
// A single connection keeps every query on the same :memory: database.
func newTestEnv(t *testing.T) (*handlers.Handler, *mux.Router) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := sessions.NewCookieStore([]byte("test-session-key"))
	h := handlers.NewHandler(db, store, nil, zap.NewNop().Sugar())

	return h, router.New(h)
}

// authCookie builds a session cookie for the given principal the same
// way the login callback would.
func authCookie(t *testing.T, h *handlers.Handler, userID, name string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	session, _ := h.Store.Get(req, "session")
	session.Values["user_id"] = userID
	session.Values["name"] = name
	if err := session.Save(req, rec); err != nil {
		t.Fatalf("save session: %v", err)
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatalf("session cookie was not issued")
	return nil
}

func doRequest(t *testing.T, r *mux.Router, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeJSON(t, rec, &body)
	return body["error"]
}

func mustCreate(t *testing.T, h *handlers.Handler, v interface{}) {
	t.Helper()
	if err := h.DB.Create(v).Error; err != nil {
		t.Fatalf("create fixture %T: %v", v, err)
	}
}

func countRows(t *testing.T, h *handlers.Handler, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := h.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}
