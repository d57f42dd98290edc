package main

import (
	"log"

	"github.com/UniStayTeam/resident-service/internal/app"
	"github.com/UniStayTeam/resident-service/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}
