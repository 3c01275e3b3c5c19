package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"saaarchi/models"
)

const projectColumns = `id::text, title, date, tags, description, thumbnail, images,
		location, area_label, program, status, created_at, updated_at`

func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (db *DB) GetProject(ctx context.Context, id string) (*models.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1::uuid
	`

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

func (db *DB) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	query := `
		INSERT INTO projects (id, title, date, tags, description, thumbnail, images,
			location, area_label, program, status)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + projectColumns

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		uuid.New().String(), p.Title, p.Date, p.Tags, p.Description, p.Thumbnail, p.Images,
		p.Location, p.AreaLabel, p.Program, string(p.Status),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %s (ID: %s)", project.Title, project.ID)
	return project, nil
}

// UpdateProject replaces every mutable field; id and created_at are kept.
func (db *DB) UpdateProject(ctx context.Context, id string, p models.Project) (*models.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	query := `
		UPDATE projects
		SET title = $2, date = $3, tags = $4, description = $5, thumbnail = $6, images = $7,
			location = $8, area_label = $9, program = $10, status = $11, updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING ` + projectColumns

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		projectID.String(), p.Title, p.Date, p.Tags, p.Description, p.Thumbnail, p.Images,
		p.Location, p.AreaLabel, p.Program, string(p.Status),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	log.Printf("Updated project: %s", project.ID)
	return project, nil
}

func (db *DB) DeleteProject(ctx context.Context, id string) error {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return models.ErrNotFound
	}

	query := `DELETE FROM projects WHERE id = $1::uuid`

	result, err := db.Pool.Exec(ctx, query, projectID.String())
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	log.Printf("Deleted project: %s", projectID)
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var status string
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Date,
		&project.Tags,
		&project.Description,
		&project.Thumbnail,
		&project.Images,
		&project.Location,
		&project.AreaLabel,
		&project.Program,
		&status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Status = models.Status(status)
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
