package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"technews/internal/models"
	"technews/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken   string
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	identities    map[string]service.Identity

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	if id, ok := m.identities[token]; ok {
		return id, nil
	}
	return service.Identity{}, service.ErrInvalidToken
}

type mockPosts struct {
	list    []models.Post
	listErr error
	view    *models.PostWithAuthor
	viewErr error
	owned   *models.Post
	err     error // returned by GetOwned, Update and Delete
	newID   int
	created []service.PostInput
	updated []service.PostInput
	deleted []int
	whos    []service.Identity
}

func (m *mockPosts) ListByAuthor(_ context.Context, authorID int) ([]models.Post, error) {
	m.whos = append(m.whos, service.Identity{UserID: authorID})
	return m.list, m.listErr
}

func (m *mockPosts) View(_ context.Context, id int) (*models.PostWithAuthor, error) {
	if m.viewErr != nil {
		return nil, m.viewErr
	}
	return m.view, nil
}

func (m *mockPosts) Create(_ context.Context, who service.Identity, in service.PostInput) (int, error) {
	m.whos = append(m.whos, who)
	m.created = append(m.created, in)
	return m.newID, m.err
}

func (m *mockPosts) GetOwned(_ context.Context, who service.Identity, id int) (*models.Post, error) {
	m.whos = append(m.whos, who)
	return m.owned, m.err
}

func (m *mockPosts) Update(_ context.Context, who service.Identity, id int, in service.PostInput) error {
	m.whos = append(m.whos, who)
	m.updated = append(m.updated, in)
	return m.err
}

func (m *mockPosts) Delete(_ context.Context, who service.Identity, id int) error {
	m.whos = append(m.whos, who)
	m.deleted = append(m.deleted, id)
	return m.err
}

// ---- Shared Test Helpers ----

const (
	aliceToken = "alice-token"
	bobToken   = "bob-token"
)

var (
	aliceID = service.Identity{UserID: 1, Username: "alice"}
	bobID   = service.Identity{UserID: 2, Username: "bob"}
)

func newMockAuth() *mockAuth {
	return &mockAuth{identities: map[string]service.Identity{
		aliceToken: aliceID,
		bobToken:   bobID,
	}}
}

func testOptions() Options {
	return Options{CookieName: defaultCookieName, SecureCookie: true}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, testOptions(), nil)
	return h.InitRoutes()
}

// do sends a request through r, with the session cookie when token is set.
func do(r http.Handler, method, target, token string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: defaultCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == defaultCookieName {
			return c
		}
	}
	return nil
}
