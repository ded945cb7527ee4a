package main

import (
	"context"
	"log"

	"github.com/avolkovs/benfordapp/internal/server/config"
	"github.com/avolkovs/benfordapp/internal/worker"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := worker.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
