package listing

import (
	"encoding/json"
	"fmt"
	"net/http"

	coreListing "aire/pkg/core/listing"
	"aire/pkg/core/metrics"
)

var importer *coreListing.Importer

// InitHandler wires the handler to a listing importer.
func InitHandler(im *coreListing.Importer) {
	importer = im
}

// ImportRequest carries the link or address to resolve.
type ImportRequest struct {
	Query string `json:"query"`
}

// ImportResponse returns the resolved deal; Source reports whether it came
// from the live feed or the demo generator.
type ImportResponse struct {
	Deal   metrics.Deal `json:"deal"`
	Source string       `json:"source"`
}

// HandleImport resolves a listing query into a deal. Never returns a feed
// failure to the client; the demo generator is the floor.
func HandleImport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	deal := importer.Import(req.Query)
	fmt.Printf("[LISTING] Imported %q via %s\n", req.Query, deal.Source)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResponse{Deal: deal, Source: deal.Source})
}
