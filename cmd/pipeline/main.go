package main

import (
	"log"
	"net/http"

	"property-data-pipeline/internal/api"
	"property-data-pipeline/internal/api/handler"
	"property-data-pipeline/internal/config"
	"property-data-pipeline/internal/store"

	_ "property-data-pipeline/docs"
)

// @title Property Data Pipeline API
// @version 1.0
// @description Nine-step batch transformation pipeline for property-record CSV data.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to open run store: %v", err)
	}

	r := api.NewRouter(handler.New(cfg.OutputDir))

	log.Printf("🚀 Server started on http://localhost%s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
