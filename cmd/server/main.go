package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/ejcdigital/internal/server"
	"github.com/dmitrijs2005/ejcdigital/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg, os.Stdout)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
