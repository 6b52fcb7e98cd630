package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiListing "aire/pkg/api/listing"
	apiUnderwrite "aire/pkg/api/underwrite"
	"aire/pkg/core/listing"
	"aire/pkg/core/store"
	"aire/pkg/core/underwrite"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Build the evaluator, overlaying profile weights from config when the
	// file exists.
	evaluator := underwrite.NewEvaluator()
	if data, err := os.ReadFile("config/profiles.yaml"); err == nil {
		if err := evaluator.Profiles.MergeYAML(data); err != nil {
			fmt.Printf("[WARNING] Ignoring bad profile config: %v\n", err)
		} else {
			fmt.Printf("[CONFIG] Loaded scoring profiles from config/profiles.yaml\n")
		}
	}

	// Database is optional: without it the API is compute-only.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable, running compute-only: %v\n", err)
		} else {
			fmt.Println("[STORE] Connected to Postgres")
			defer store.Close()
		}
	}

	importer := listing.NewImporter(listing.RESOClientFromEnv())

	apiUnderwrite.InitHandler(evaluator)
	apiListing.InitHandler(importer)

	http.HandleFunc("/api/underwrite/evaluate", apiUnderwrite.HandleEvaluate)
	http.HandleFunc("/api/underwrite/sensitivity", apiUnderwrite.HandleSensitivity)
	http.HandleFunc("/api/listing/import", apiListing.HandleImport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/underwrite/evaluate")
	fmt.Println("  - POST /api/underwrite/sensitivity")
	fmt.Println("  - POST /api/listing/import")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server stopped: %v\n", err)
		os.Exit(1)
	}
}
