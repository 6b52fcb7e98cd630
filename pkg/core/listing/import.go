// Package listing supplies Deal records from external sources: a RESO Web
// API feed when configured, scraped listing pages, and a deterministic
// synthetic generator as the fallback of last resort. Import never fails;
// a broken feed degrades to a demo deal instead of aborting the workflow.
package listing

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aire/pkg/core/metrics"
)

// Importer resolves a link or address into a Deal.
type Importer struct {
	reso   *RESOClient
	client *http.Client
}

// NewImporter wires an importer with an optional RESO source. A nil client
// means page-scrape and demo only.
func NewImporter(reso *RESOClient) *Importer {
	return &Importer{
		reso:   reso,
		client: &http.Client{Timeout: 12 * time.Second},
	}
}

// Import resolves the query against the RESO feed first, scrapes the page
// when the query is a link, and falls back to the demo generator. The
// returned deal's Source field records which path produced it.
func (im *Importer) Import(linkOrAddress string) metrics.Deal {
	if im.reso != nil && im.reso.Configured() {
		deal, err := im.reso.Lookup(linkOrAddress)
		if err == nil {
			return *deal
		}
		fmt.Printf("[LISTING] RESO lookup failed, trying other sources: %v\n", err)
	}
	if isLink(linkOrAddress) {
		deal, err := im.scrapePage(linkOrAddress)
		if err == nil {
			return *deal
		}
		fmt.Printf("[LISTING] Page scrape failed, using demo listing: %v\n", err)
	}
	return Demo(linkOrAddress)
}

func isLink(query string) bool {
	return strings.HasPrefix(query, "http://") || strings.HasPrefix(query, "https://")
}

// scrapePage fetches a listing detail page and extracts deal facts from it.
// A page that parses but exposes nothing usable is treated as a failure so
// the caller can fall through to the demo generator.
func (im *Importer) scrapePage(link string) (*metrics.Deal, error) {
	resp, err := im.client.Get(link)
	if err != nil {
		return nil, fmt.Errorf("listing page fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing page: %w", err)
	}

	page, err := FromPage(string(body))
	if err != nil {
		return nil, err
	}
	if page.Price == 0 && page.Units == 0 && page.Address == "" {
		return nil, fmt.Errorf("listing page exposed no usable facts")
	}

	deal := mapPageListing(*page, link)
	return &deal, nil
}
