package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stosento/stephenruns/internal/app"
	"github.com/stosento/stephenruns/internal/config"
)

func main() {
	// Local development convenience; the file is absent in deployments.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
