package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"aire/pkg/core/metrics"
)

// PageListing holds the facts scraped from a listing detail page. Zero
// fields mean the page did not expose the value; downstream defaults apply.
type PageListing struct {
	Address string
	Price   float64
	Units   int
	Rent    float64
	City    string
	State   string
}

// FromPage extracts listing facts from an HTML detail page. It reads
// OpenGraph meta tags first, then labeled definition rows
// (dt/dd or .label/.value pairs) for price, units, and rent. Missing fields
// stay zero; only an unparseable document is an error.
func FromPage(html string) (*PageListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	out := &PageListing{}

	if v, ok := doc.Find(`meta[property="og:street-address"]`).Attr("content"); ok {
		out.Address = strings.TrimSpace(v)
	}
	if out.Address == "" {
		if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
			out.Address = strings.TrimSpace(v)
		}
	}
	if v, ok := doc.Find(`meta[property="og:locality"]`).Attr("content"); ok {
		out.City = strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[property="og:region"]`).Attr("content"); ok {
		out.State = strings.TrimSpace(v)
	}
	if v, ok := doc.Find(`meta[property="og:price:amount"]`).Attr("content"); ok {
		out.Price = parseMoney(v)
	}

	// Labeled fact rows: <dt>Price</dt><dd>$1,500,000</dd> and variants.
	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(dt.Text()))
		value := strings.TrimSpace(dt.Next().Text())
		applyLabeled(out, label, value)
	})
	doc.Find(".listing-fact").Each(func(_ int, row *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(row.Find(".label").Text()))
		value := strings.TrimSpace(row.Find(".value").Text())
		applyLabeled(out, label, value)
	})

	return out, nil
}

func applyLabeled(out *PageListing, label, value string) {
	switch {
	case strings.Contains(label, "price") && out.Price == 0:
		out.Price = parseMoney(value)
	case strings.Contains(label, "unit") && out.Units == 0:
		if fields := strings.Fields(value); len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil {
				out.Units = n
			}
		}
	case strings.Contains(label, "rent") && out.Rent == 0:
		out.Rent = parseMoney(value)
	case strings.Contains(label, "address") && out.Address == "":
		out.Address = value
	}
}

// mapPageListing converts scraped page facts into a deal with the standard
// assumption defaults, mirroring the RESO mapping.
func mapPageListing(p PageListing, link string) metrics.Deal {
	address := p.Address
	if address == "" {
		address = link
	}

	propertyType := "Unknown"
	if p.Units >= 2 {
		propertyType = "Multifamily"
	}

	return metrics.Deal{
		Source:         "page",
		Address:        address,
		PropertyType:   propertyType,
		Price:          p.Price,
		Units:          p.Units,
		AvgRent:        p.Rent,
		Vacancy:        0.07,
		ManagementPct:  0.08,
		RepairsPct:     0.06,
		CapexPct:       0.04,
		UtilitiesParty: "Unknown",
		City:           p.City,
		State:          p.State,
	}
}

// parseMoney strips currency formatting ("$1,500,000", "1500000.00") and
// returns 0 when nothing numeric remains.
func parseMoney(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}
