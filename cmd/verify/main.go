package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"saaarchi/config"
)

func main() {
	godotenv.Load()

	missing := config.MissingKeys(os.Getenv)
	if len(missing) > 0 {
		fmt.Println("Missing environment variables:")
		for _, key := range missing {
			fmt.Printf("  ✗ %s\n", key)
		}
		os.Exit(1)
	}

	fmt.Println("✓ All required environment variables are set")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. go run ./cmd/migrate (Postgres only)")
	fmt.Println("  2. go run .")
	fmt.Println("  3. sign in at /admin/login")
}
