package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"bookfinder/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.SetFlags(0)
		log.Fatalf("bookfinder: %v", err)
	}
}
