package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePage_FiltersByTag(t *testing.T) {
	app := newTestApp(t)
	villa := app.seed(t, "Villa A", "villa")
	office := app.seed(t, "Bureaux B", "commercial")

	w := app.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/projets/"+villa.ID)
	assert.Contains(t, w.Body.String(), "/projets/"+office.ID)

	w = app.get("/?categorie=villa")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/projets/"+villa.ID)
	assert.NotContains(t, w.Body.String(), "/projets/"+office.ID)

	w = app.get("/?categorie=tous")
	assert.Contains(t, w.Body.String(), "/projets/"+office.ID)
}

func TestProjectDetailPage(t *testing.T) {
	app := newTestApp(t)
	p := app.seed(t, "Villa A")

	w := app.get("/projets/" + p.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Villa A</h1>")

	w = app.get("/projets/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Projet non trouvé")
}

func TestPageCache_RevalidatedOnWrite(t *testing.T) {
	app := newTestApp(t)
	app.seed(t, "Villa A")

	w := app.get("/projets")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = app.get("/projets")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.NotContains(t, w.Body.String(), "Villa B")

	app.seed(t, "Villa B")

	w = app.get("/projets")
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Contains(t, w.Body.String(), "Villa B")
}

func TestPageCache_DetailNotCached(t *testing.T) {
	app := newTestApp(t)
	p := app.seed(t, "Villa A")

	app.get("/projets/" + p.ID)
	w := app.get("/projets/" + p.ID)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestDashboard_RequiresSession(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/admin/dashboard")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login?callbackUrl=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
}

func TestDashboard_Edit(t *testing.T) {
	app := newTestApp(t)
	session := app.sessionCookie(t)
	p := app.seed(t, "Villa A", "résidentiel", "villa")

	w := app.get("/admin/dashboard?edit="+p.ID, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/admin/projects/`+p.ID+`"`)
	assert.Contains(t, w.Body.String(), `value="résidentiel, villa"`)

	w = app.get("/admin/dashboard?edit=missing", session)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Projet non trouvé")
}

func TestDashboard_CreateFromForm(t *testing.T) {
	app := newTestApp(t)
	session := app.sessionCookie(t)

	w := app.postForm("/admin/projects", url.Values{
		"title":       {"Villa A"},
		"description": {"Ten characters minimum"},
		"thumbnail":   {"https://x/t.jpg"},
		"images":      {"https://x/1.jpg\r\nhttps://x/2.jpg\n"},
		"tags":        {"résidentiel, villa,"},
		"status":      {"Proposé"},
	}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	projects, err := app.store.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"résidentiel", "villa"}, projects[0].Tags)
	assert.Equal(t, []string{"https://x/1.jpg", "https://x/2.jpg"}, projects[0].Images)
	assert.Equal(t, "Proposé", string(projects[0].Status))
}

func TestDashboard_CreateValidationError(t *testing.T) {
	app := newTestApp(t)
	session := app.sessionCookie(t)

	w := app.postForm("/admin/projects", url.Values{
		"title":       {"Villa A"},
		"description": {"Ten characters minimum"},
		"thumbnail":   {"https://x/t.jpg"},
		"images":      {"https://x/1.jpg"},
		"tags":        {" , "},
	}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tags required")
	assert.Contains(t, w.Body.String(), `value="Villa A"`)
}

func TestDashboard_UpdateAndDelete(t *testing.T) {
	app := newTestApp(t)
	session := app.sessionCookie(t)
	p := app.seed(t, "Villa A")

	w := app.postForm("/admin/projects/"+p.ID, url.Values{
		"title":       {"Villa A bis"},
		"description": {"Ten characters minimum"},
		"thumbnail":   {"https://x/t.jpg"},
		"images":      {"https://x/1.jpg"},
		"tags":        {"villa"},
		"status":      {"Complété"},
	}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, err := app.projects.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Villa A bis", got.Title)

	w = app.postForm("/admin/projects/missing", url.Values{
		"title":       {"Villa"},
		"description": {"Ten characters minimum"},
		"thumbnail":   {"https://x/t.jpg"},
		"images":      {"https://x/1.jpg"},
		"tags":        {"villa"},
	}, session)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.postForm("/admin/projects/"+p.ID+"/delete", url.Values{}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = app.postForm("/admin/projects/"+p.ID+"/delete", url.Values{}, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Projet non trouvé")
}

func TestDashboard_CacheDroppedAfterFormWrite(t *testing.T) {
	app := newTestApp(t)
	session := app.sessionCookie(t)
	p := app.seed(t, "Villa A")

	app.get("/admin/dashboard", session)
	w := app.get("/admin/dashboard", session)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))

	w = app.postForm("/admin/projects/"+p.ID+"/delete", url.Values{}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = app.get("/admin/dashboard", session)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Contains(t, w.Body.String(), "Aucun projet trouvé")
}
