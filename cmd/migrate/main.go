package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"saaarchi/database"
)

func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if !strings.HasPrefix(databaseURL, "postgres://") && !strings.HasPrefix(databaseURL, "postgresql://") {
		log.Println("DATABASE_URL is not a Postgres URL, nothing to migrate")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer db.Close()

	migrationsDir := "./database/migrations"
	if len(os.Args) > 1 {
		migrationsDir = os.Args[1]
	}

	if err := database.RunMigrations(ctx, db, migrationsDir); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nAll migrations completed!")
}
