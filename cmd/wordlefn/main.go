package main

import (
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/httpfn"
	"crosswarped.com/wordle/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("WORDLE_CONFIG"))
	if err != nil {
		log.Fatalf("config.Load: %v\n", err)
	}
	if project := os.Getenv("BIGQUERY_PROJECT"); project != "" {
		cfg.BigQuery.Project = project
	}
	if table := os.Getenv("BIGQUERY_TABLE"); table != "" {
		cfg.BigQuery.Table = table
	}

	fn := httpfn.New(cfg, logging.New(os.Stderr, cfg.LogLevel))
	funcframework.RegisterHTTPFunction("/filter-candidates", fn.ServeHTTP)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
