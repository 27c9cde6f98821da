// Command seed-db loads user accounts from a JSON file into the database so
// the admin listing has data in local and demo environments.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/monish-s03/grokart-api/internal/storage/postgres"
)

type userJSON struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash"`
}

func main() {
	var (
		databaseURL string
		usersFile   string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&usersFile, "users-file", "db/seed/users.json", "path to users JSON file")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, databaseURL, usersFile); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed complete")
}

func run(ctx context.Context, databaseURL, usersFile string) error {
	raw, err := os.ReadFile(usersFile)
	if err != nil {
		return errors.Wrap(err, "read users file")
	}

	var users []userJSON
	if err := json.Unmarshal(raw, &users); err != nil {
		return errors.Wrap(err, "parse users file")
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	const stmt = `
INSERT INTO users (id, name, email, role, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (email) DO UPDATE
SET name = EXCLUDED.name, role = EXCLUDED.role`

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	now := time.Now().UTC()
	for _, u := range users {
		g.Go(func() error {
			role := u.Role
			if role == "" {
				role = "customer"
			}
			_, err := pool.Exec(gCtx, stmt,
				uuid.New().String(), u.Name, u.Email, role, u.PasswordHash, now,
			)
			return errors.Wrapf(err, "insert user %q", u.Email)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("users seeded", "count", len(users))
	return nil
}
