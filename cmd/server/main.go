// Command server runs the course registration HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment; a .env file in the working directory is loaded first when
// present.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/coursereg-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
