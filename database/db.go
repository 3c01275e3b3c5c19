package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"saaarchi/models"
)

// ProjectStore persists projects. Implementations return models.ErrNotFound
// (possibly wrapped) when an id matches nothing, malformed ids included.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, p models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close()
}

// DB is the Postgres-backed ProjectStore.
type DB struct {
	Pool *pgxpool.Pool
}

// Open picks the backend from the URL scheme: mongodb:// and mongodb+srv://
// select MongoDB, postgres:// and postgresql:// select Postgres, memory://
// selects a process-local store for development.
func Open(ctx context.Context, databaseURL, mongoDatabase string) (ProjectStore, error) {
	switch {
	case strings.HasPrefix(databaseURL, "mongodb://"), strings.HasPrefix(databaseURL, "mongodb+srv://"):
		store, err := ConnectMongo(ctx, databaseURL, mongoDatabase)
		if err != nil {
			return nil, err
		}
		return store, nil
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		db, err := Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	case strings.HasPrefix(databaseURL, "memory://"):
		log.Println("Using in-memory project store")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported database URL scheme (expected postgres://, mongodb:// or memory://)")
	}
}

func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established")
	return &DB{Pool: pool}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

func (db *DB) Close() {
	db.Pool.Close()
	log.Println("Database connection closed")
}
