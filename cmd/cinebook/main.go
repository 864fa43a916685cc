package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/iliyamo/cinebook/internal/cli"
	"github.com/iliyamo/cinebook/internal/config"
	"github.com/iliyamo/cinebook/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	store, closeStore, err := repository.OpenStateStore(ctx, config.LoadState())
	if err != nil {
		return err
	}
	defer closeStore()

	app := cli.NewApp(store, os.Stdout, config.PricePerSeat())
	return app.RootCmd().ExecuteContext(ctx)
}
