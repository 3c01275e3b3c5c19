package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"saaarchi/auth"
	"saaarchi/cache"
	"saaarchi/middleware"
	"saaarchi/web"
)

type Deps struct {
	Projects    ProjectService
	Contact     ContactNotifier
	Auth        *auth.Service
	Store       Pinger
	Cache       cache.PageCache
	Renderer    *web.Renderer
	CORSOrigins []string
}

// RegisterRoutes mounts the site, the admin panel and the JSON API on r.
func RegisterRoutes(r *gin.Engine, dep Deps) {
	// CORS runs first so preflight requests are answered before the guard.
	if len(dep.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.RouteGuard(dep.Auth, middleware.ProtectedPrefixes))

	r.GET("/health", HealthCheck(dep.Store))

	pageCache := CachePage(dep.Cache)
	r.GET("/", pageCache, HomePage(dep.Projects, dep.Renderer))
	r.GET("/projets", pageCache, ProjectsPage(dep.Projects, dep.Renderer))
	r.GET("/projets/:id", ProjectDetailPage(dep.Projects, dep.Renderer))
	r.POST("/contact", SubmitContact(dep.Projects, dep.Contact, dep.Renderer))

	admin := r.Group("/admin")
	{
		admin.GET("/login", LoginPage(dep.Renderer))
		admin.POST("/login", Login(dep.Auth, dep.Renderer))
		admin.POST("/logout", Logout(dep.Auth))
		admin.GET("/dashboard", pageCache, DashboardPage(dep.Projects, dep.Renderer))
		admin.POST("/projects", CreateProjectForm(dep.Projects, dep.Renderer))
		admin.POST("/projects/:id", UpdateProjectForm(dep.Projects, dep.Renderer))
		admin.POST("/projects/:id/delete", DeleteProjectForm(dep.Projects, dep.Renderer))
	}

	api := r.Group("/api")
	{
		api.GET("/projects", ListProjects(dep.Projects))
		api.GET("/projects/:id", GetProject(dep.Projects))
		api.POST("/contact", SendContact(dep.Contact))

		api.POST("/auth/login", APILogin(dep.Auth))
		api.POST("/auth/logout", APILogout(dep.Auth))
		api.GET("/auth/session", Session(dep.Auth))

		api.POST("/admin/projects", CreateProject(dep.Projects))
		api.PUT("/admin/projects/:id", UpdateProject(dep.Projects))
		api.DELETE("/admin/projects/:id", DeleteProject(dep.Projects))
	}
}
