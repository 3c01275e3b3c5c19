package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"saaarchi/models"
)

// ProjectService is the project CRUD surface the handlers depend on.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

func ListProjects(svc ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

func GetProject(svc ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func CreateProject(svc ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProjectInput
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Bind error: %v", err)
			respondError(c, bindingError(err, "invalid request body"))
			return
		}

		project, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		log.Printf("Project created: %s", project.ID)
		c.JSON(http.StatusCreated, project)
	}
}

func UpdateProject(svc ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProjectInput
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Bind error: %v", err)
			respondError(c, bindingError(err, "invalid request body"))
			return
		}

		project, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, err)
			return
		}

		log.Printf("Project updated: %s", project.ID)
		c.JSON(http.StatusOK, project)
	}
}

func DeleteProject(svc ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		log.Printf("Project deleted: %s", id)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "project deleted"})
	}
}
