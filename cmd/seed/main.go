// Command seed creates the bootstrap administrator account. Running it
// against a database that already has the account is a no-op.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hbnb/hbnb-auth/internal/auth"
	"github.com/hbnb/hbnb-auth/internal/bootstrap"
	"github.com/hbnb/hbnb-auth/internal/config"
	"github.com/hbnb/hbnb-auth/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := postgres.NewUserStore(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	created, err := bootstrap.EnsureAdmin(ctx, store, auth.NewHasher(cfg.BcryptCost), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed admin: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Printf("admin %s created\n", cfg.AdminEmail)
	} else {
		fmt.Printf("admin %s already exists\n", cfg.AdminEmail)
	}
}
