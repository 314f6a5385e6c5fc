package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"technews/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, testOptions(), nil)
	r.Use(h.sessionMiddleware)
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := currentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authed": ok, "userId": id.UserID})
	})
	r.GET("/secure", h.requireAuthenticated, func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		token      string
		wantAuthed bool
	}{
		{"no cookie", "", false},
		{"unknown token", "forged", false},
		{"valid token", aliceToken, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := newMockAuth()
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := do(r, http.MethodGet, "/whoami", tc.token, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d", w.Code)
			}
			want := `{"authed":false,"userId":0}`
			if tc.wantAuthed {
				want = `{"authed":true,"userId":1}`
			}
			if w.Body.String() != want {
				t.Fatalf("body=%s want %s", w.Body.String(), want)
			}
			if tc.token != "" && auth.lastParseToken != tc.token {
				t.Fatalf("ParseToken got %q", auth.lastParseToken)
			}
		})
	}
}

func TestRequireAuthenticated(t *testing.T) {
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: newMockAuth()})

	w := do(r, http.MethodGet, "/secure", "", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("anonymous: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	w = do(r, http.MethodGet, "/secure", "expired", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("bad cookie: expected redirect, got %d", w.Code)
	}

	w = do(r, http.MethodGet, "/secure", bobToken, nil)
	if w.Code != http.StatusOK || w.Body.String() != "secret" {
		t.Fatalf("authed: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: newMockAuth(), Posts: &mockPosts{}})

	w := do(r, http.MethodGet, "/health", "", nil)
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
	if w.Body.String() != `{"status":"ok"}` {
		t.Fatalf("health body=%s", w.Body.String())
	}
}
