package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ejcdigital/internal/client/cli"
	"github.com/dmitrijs2005/ejcdigital/internal/client/config"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, "text")
	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
