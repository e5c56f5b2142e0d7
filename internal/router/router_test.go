package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sniptaste/internal/archive"
	"sniptaste/internal/auth"
	"sniptaste/internal/catalog"
	"sniptaste/internal/chat"
	"sniptaste/internal/engine"
	"sniptaste/internal/session"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	eng := engine.New(catalog.Default(), "212661234567")
	handler := chat.NewHandler(eng, session.NewStore(), archive.NewInMemoryRepository(), "212661234567")
	return NewRouter(handler, auth.NewService("admin", "s3cret"), []string{"*"})
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestChatTurn(t *testing.T) {
	r := newTestRouter()

	body := strings.NewReader(`{"message": "pizza"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		ConversationID string `json:"conversation_id"`
		Reply          string `json:"reply"`
		Intent         string `json:"intent"`
		Phase          string `json:"phase"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.ConversationID == "" {
		t.Fatal("expected a minted conversation id")
	}
	if res.Intent != "category:pizza" || res.Phase != "browsing" {
		t.Fatalf("unexpected turn: %+v", res)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAdminLoginAndOrders(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	body := strings.NewReader(`{"username": "admin", "password": "s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	var res struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Token == "" {
		t.Fatalf("expected a token: %v %s", err, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMenuEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Pizza") {
		t.Fatalf("menu body missing sections: %s", w.Body.String())
	}
}
