// Command cleanup-otps deletes expired login codes once and exits. The server
// runs the same sweep on a schedule; this is for deployments that disable it
// or want to run it from an external scheduler.
//
// Usage:
//
//	cleanup-otps
//
// Requires DATABASE_DSN (or a config file) to be set.
package main

import (
	"context"
	"log"
	"time"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/otp"
	"github.com/heartmarshall/coursereg-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	deleted, err := otp.New(pool).DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Fatalf("cleanup otps: %v", err)
	}

	log.Printf("deleted %d expired login codes", deleted)
}
