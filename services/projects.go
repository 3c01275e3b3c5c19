package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"saaarchi/database"
	"saaarchi/models"
)

// Rendered pages that show project data. Every write drops them.
const (
	PathAdminDashboard = "/admin/dashboard"
	PathProjects       = "/projets"
	PathHome           = "/"
)

// RevalidatedPaths is the set of pages invalidated after each write.
var RevalidatedPaths = []string{PathAdminDashboard, PathProjects, PathHome}

// Revalidator discards previously rendered output for the given paths.
type Revalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

// ProjectService validates project writes, persists them and revalidates the
// pages that display projects.
type ProjectService struct {
	store       database.ProjectStore
	revalidator Revalidator
}

func NewProjectService(store database.ProjectStore, revalidator Revalidator) *ProjectService {
	return &ProjectService{
		store:       store,
		revalidator: revalidator,
	}
}

// List returns every project, newest first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		log.Printf("ListProjects error: %v", err)
		return nil, fmt.Errorf("could not load projects: %w", models.ErrDataAccess)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, storeError("GetProject", id, "could not load project", err)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	if err := models.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}

	project, err := s.store.CreateProject(ctx, in.Normalize())
	if err != nil {
		log.Printf("CreateProject error: %v", err)
		return nil, fmt.Errorf("could not create project: %w", models.ErrDataAccess)
	}

	s.revalidate(ctx)
	return project, nil
}

// Update replaces every mutable field of the project. Validation runs before
// the store is touched, so an invalid payload never writes.
func (s *ProjectService) Update(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	if err := models.NewValidationError(in.Validate()); err != nil {
		return nil, err
	}

	project, err := s.store.UpdateProject(ctx, id, in.Normalize())
	if err != nil {
		return nil, storeError("UpdateProject", id, "could not update project", err)
	}

	s.revalidate(ctx)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return storeError("DeleteProject", id, "could not delete project", err)
	}

	s.revalidate(ctx)
	return nil
}

// revalidate runs after a committed write; a failure is logged, not returned.
func (s *ProjectService) revalidate(ctx context.Context) {
	if s.revalidator == nil {
		return
	}
	if err := s.revalidator.Invalidate(ctx, RevalidatedPaths...); err != nil {
		log.Printf("Revalidate error: paths=%v err=%v", RevalidatedPaths, err)
	}
}

func storeError(op, id, msg string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return models.ErrNotFound
	}
	log.Printf("%s error: id=%s err=%v", op, id, err)
	return fmt.Errorf("%s: %w", msg, models.ErrDataAccess)
}
