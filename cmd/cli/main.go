package main

import (
	"context"
	"log"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/cli"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/config"
	"github.com/a1br4h33m/IMDB-Redesign/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.Setup(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
