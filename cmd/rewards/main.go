package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/bennett-mcdowell/F25-Team03/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
