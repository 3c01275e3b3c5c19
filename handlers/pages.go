package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"saaarchi/mailer"
	"saaarchi/middleware"
	"saaarchi/models"
	"saaarchi/web"
)

const (
	// ContactSentValue is the ?contact= value shown after a delivered message.
	ContactSentValue = "envoye"

	dashboardPath = "/admin/dashboard"

	msgProjectNotFound = "Projet non trouvé"
	msgLoadFailed      = "Le chargement a échoué"
	msgGenericFailure  = "Une erreur est survenue. Veuillez réessayer."
)

func renderPage(c *gin.Context, r *web.Renderer, status int, name string, data any) {
	body, err := r.Render(name, data)
	if err != nil {
		log.Printf("Render error: %v", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, htmlContentType, body)
}

// galleryPage loads every project and filters by the ?categorie= tag.
func galleryPage(c *gin.Context, svc ProjectService, title string) (web.GalleryPage, int) {
	projects, err := svc.List(c.Request.Context())
	if err != nil {
		return web.GalleryPage{Title: title, LoadFailed: true}, http.StatusInternalServerError
	}
	return web.NewGalleryPage(title, projects, c.Query("categorie")), http.StatusOK
}

func HomePage(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, status := galleryPage(c, svc, "")
		if c.Query("contact") == ContactSentValue {
			page.Contact.Success = mailer.SuccessMessage
		}
		renderPage(c, r, status, "home", page)
	}
}

func ProjectsPage(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, status := galleryPage(c, svc, "Projets")
		renderPage(c, r, status, "projects", page)
	}
}

func ProjectDetailPage(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				renderPage(c, r, http.StatusNotFound, "error", web.ErrorPage{
					Title:   msgProjectNotFound,
					Message: "Le projet demandé n'existe pas ou a été supprimé.",
				})
				return
			}
			renderPage(c, r, http.StatusInternalServerError, "error", web.ErrorPage{
				Title:   msgLoadFailed,
				Message: msgGenericFailure,
			})
			return
		}

		renderPage(c, r, http.StatusOK, "detail", web.NewDetailPage(*project))
	}
}

// SubmitContact handles the contact form of the home page. Success redirects
// back to the form; failures re-render the page with the submitted values.
func SubmitContact(svc ProjectService, n ContactNotifier, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactRequest
		err := c.ShouldBind(&req)
		if err != nil {
			err = bindingError(err, mailer.MissingFieldsMessage)
		} else {
			err = n.Notify(c.Request.Context(), req)
		}

		if err == nil {
			c.Redirect(http.StatusSeeOther, "/?contact="+ContactSentValue+"#contact")
			return
		}

		status, msg := contactError(err)
		page, _ := galleryPage(c, svc, "")
		page.Contact = web.ContactForm{Values: req, Error: msg}
		renderPage(c, r, status, "home", page)
	}
}

// dashboard renders the admin dashboard with form, answering status.
func dashboard(c *gin.Context, svc ProjectService, r *web.Renderer, status int, form web.ProjectForm) {
	page := web.DashboardPage{Form: form}
	if session, ok := middleware.CurrentSession(c); ok {
		page.User = session.User
	}

	projects, err := svc.List(c.Request.Context())
	if err != nil {
		page.LoadFailed = true
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
	}
	page.Projects = projects

	renderPage(c, r, status, "dashboard", page)
}

// formError maps a failed write to a status and the message shown above the form.
func formError(err error) (int, string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, msgProjectNotFound
	default:
		return http.StatusInternalServerError, msgGenericFailure
	}
}

// DashboardPage shows the project table; ?edit=<id> prefills the form.
func DashboardPage(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := web.ProjectForm{Status: string(models.StatusInProgress)}
		status := http.StatusOK

		if id := c.Query("edit"); id != "" {
			project, err := svc.Get(c.Request.Context(), id)
			if err != nil {
				status, form.Error = formError(err)
			} else {
				form = web.EditForm(*project)
			}
		}

		dashboard(c, svc, r, status, form)
	}
}

func CreateProjectForm(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form web.ProjectForm
		if err := c.ShouldBind(&form); err != nil {
			log.Printf("Bind error: %v", err)
		}

		if _, err := svc.Create(c.Request.Context(), form.Input()); err != nil {
			status, msg := formError(err)
			form.Error = msg
			dashboard(c, svc, r, status, form)
			return
		}

		c.Redirect(http.StatusSeeOther, dashboardPath)
	}
}

func UpdateProjectForm(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form web.ProjectForm
		if err := c.ShouldBind(&form); err != nil {
			log.Printf("Bind error: %v", err)
		}
		form.ID = c.Param("id")

		if _, err := svc.Update(c.Request.Context(), form.ID, form.Input()); err != nil {
			status, msg := formError(err)
			form.Error = msg
			dashboard(c, svc, r, status, form)
			return
		}

		c.Redirect(http.StatusSeeOther, dashboardPath)
	}
}

func DeleteProjectForm(svc ProjectService, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			status, msg := formError(err)
			dashboard(c, svc, r, status, web.ProjectForm{Error: msg})
			return
		}

		c.Redirect(http.StatusSeeOther, dashboardPath)
	}
}
