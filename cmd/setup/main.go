// Command setup provisions a local development database: it creates the
// database if it does not exist, applies migrations, and loads seed data.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/caseforge/caseforge/internal/config"
	"github.com/caseforge/caseforge/internal/database"
)

//go:embed seed.sql
var seedSQL string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Connect to the default 'postgres' database to create the target one.
	adminConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	fmt.Println("Running migrations...")
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	fmt.Println("Loading seed data...")
	target, err := pgx.Connect(ctx, cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer target.Close(ctx)

	if _, err := target.Exec(ctx, seedSQL); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	fmt.Println("Setup completed successfully.")
	fmt.Println("\nTest accounts: testuser (balance 10000.00), admin (balance 100000.00)")
}
