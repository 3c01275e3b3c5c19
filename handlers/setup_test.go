package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"saaarchi/auth"
	"saaarchi/cache"
	"saaarchi/database"
	"saaarchi/models"
	"saaarchi/services"
	"saaarchi/web"
)

const (
	adminEmail    = "admin@saa-archi.com.tn"
	adminPassword = "s3cret"
)

type fakeNotifier struct {
	sent []models.ContactRequest
	err  error
}

func (f *fakeNotifier) Notify(ctx context.Context, req models.ContactRequest) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, req)
	return nil
}

type testApp struct {
	router   *gin.Engine
	store    *database.MemoryStore
	projects *services.ProjectService
	notifier *fakeNotifier
	auth     *auth.Service
	cache    *cache.MemoryCache
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithStore(t, func(s database.ProjectStore) database.ProjectStore { return s })
}

// newTestAppWithStore lets a test wrap the memory store the service writes to.
func newTestAppWithStore(t *testing.T, wrap func(database.ProjectStore) database.ProjectStore) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	store := database.NewMemoryStore()
	pageCache := cache.NewMemoryCache(cache.DefaultTTL)
	projects := services.NewProjectService(wrap(store), pageCache)
	notifier := &fakeNotifier{}
	authSvc := auth.NewService("test-secret", false, func() (string, string, error) {
		return adminEmail, adminPassword, nil
	})

	r := gin.New()
	RegisterRoutes(r, Deps{
		Projects: projects,
		Contact:  notifier,
		Auth:     authSvc,
		Store:    store,
		Cache:    pageCache,
		Renderer: renderer,
	})

	return &testApp{
		router:   r,
		store:    store,
		projects: projects,
		notifier: notifier,
		auth:     authSvc,
		cache:    pageCache,
	}
}

// sessionCookie returns a valid admin session cookie.
func (a *testApp) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token, _, err := a.auth.IssueToken(models.Identity{ID: "1", Email: adminEmail, Name: "Administrateur"})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (a *testApp) postForm(path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookies...)
}

func (a *testApp) sendJSON(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, cookies...)
}

func (a *testApp) seed(t *testing.T, title string, tags ...string) *models.Project {
	t.Helper()

	if len(tags) == 0 {
		tags = []string{"résidentiel"}
	}
	p, err := a.projects.Create(context.Background(), models.ProjectInput{
		Title:       title,
		Description: "Ten characters minimum",
		Thumbnail:   "https://x/t.jpg",
		Images:      []string{"https://x/1.jpg"},
		Tags:        tags,
	})
	require.NoError(t, err)
	return p
}
