// Command seed creates the demo accounts used for local development:
// an OFFICER account (officer/officerpass) and a USER account (user/userpass).
// Existing accounts are left untouched.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"labelcheck/internal/config"
	"labelcheck/internal/domain"
	"labelcheck/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	userRepo := postgres.NewUserRepo(db)
	ctx := context.Background()

	accounts := []struct {
		username string
		password string
		fullName string
		role     domain.UserRole
	}{
		{"officer", "officerpass", "Compliance Officer", domain.RoleOfficer},
		{"user", "userpass", "Demo Consumer", domain.RoleUser},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", a.username, err)
		}

		err = userRepo.Create(ctx, &domain.User{
			Username:     a.username,
			PasswordHash: string(hash),
			FullName:     a.fullName,
			Role:         a.role,
			IsActive:     true,
		})
		if errors.Is(err, domain.ErrDuplicateUsername) {
			log.Printf("account %s already exists, skipping", a.username)
			continue
		}
		if err != nil {
			return fmt.Errorf("creating account %s: %w", a.username, err)
		}
		log.Printf("created %s account %s", a.role, a.username)
	}

	return nil
}
