package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/s/elearning/internal/models"
	"github.com/s/elearning/internal/storage"

	"gorm.io/gorm"
)

// Principal — личность текущего запроса, если пользователь вошел.
// Передается в операции явно, а не читается из глобального состояния.
type Principal struct {
	ID   string
	Name string
}

type Handler struct {
	DB     *gorm.DB
	Store  *sessions.CookieStore
	Config *oauth2.Config
	Log    *zap.SugaredLogger
}

func NewHandler(db *gorm.DB, store *sessions.CookieStore, config *oauth2.Config, log *zap.SugaredLogger) *Handler {
	return &Handler{
		DB:     db,
		Store:  store,
		Config: config,
		Log:    log,
	}
}

// CurrentPrincipal достает личность из cookie-сессии.
// Второе значение false, если пользователь не аутентифицирован.
func (h *Handler) CurrentPrincipal(r *http.Request) (Principal, bool) {
	session, _ := h.Store.Get(r, "session")

	id, _ := session.Values["user_id"].(string)
	name, _ := session.Values["name"].(string)

	return Principal{ID: id, Name: name}, id != ""
}

func jsonError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// GET /
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "elearning-api",
		"status":  "ok",
	})
}

// GET /api/courses/GetUserName
func (h *Handler) HandleGetUserName(w http.ResponseWriter, r *http.Request) {
	p, ok := h.CurrentPrincipal(r)
	if !ok {
		jsonError(w, "User is not authenticated", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"userName": p.Name})
}

func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	// Одноразовый state вместо константы: проверяем его в callback
	state := uuid.NewString()

	session, _ := h.Store.Get(r, "session")
	session.Values["oauth_state"] = state
	if err := session.Save(r, w); err != nil {
		h.Log.Errorw("save oauth state", "err", err)
		jsonError(w, "Session error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.Config.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, "session")

	expectedState, _ := session.Values["oauth_state"].(string)
	if expectedState == "" || r.URL.Query().Get("state") != expectedState {
		jsonError(w, "Invalid state", http.StatusUnauthorized)
		return
	}
	delete(session.Values, "oauth_state")

	code := r.URL.Query().Get("code")
	token, err := h.Config.Exchange(context.Background(), code)
	if err != nil {
		jsonError(w, "Token exchange error", http.StatusBadRequest)
		return
	}

	client := h.Config.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		jsonError(w, "Google API error", http.StatusBadRequest)
		return
	}
	defer resp.Body.Close()

	var userInfo models.User
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		jsonError(w, "JSON decode error", http.StatusInternalServerError)
		return
	}

	userID, err := storage.SaveUser(h.DB, userInfo)
	if err != nil {
		h.Log.Errorw("save user", "err", err)
		jsonError(w, "DB save error", http.StatusInternalServerError)
		return
	}

	if err := storage.RecordActivity(h.DB, userID, "login", map[string]interface{}{"via": "google"}); err != nil {
		h.Log.Warnw("record login activity", "err", err)
	}

	session.Values["user_id"] = userID
	session.Values["email"] = userInfo.Email
	session.Values["name"] = userInfo.Name
	session.Values["picture_url"] = userInfo.Picture
	session.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400 * 7,
	}
	session.Save(r, w)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, "session")
	session.Options.MaxAge = -1
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
