package listing

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"aire/pkg/core/metrics"
)

// stableHash gives a deterministic 32-bit seed for a query string, so the
// same link or address always generates the same synthetic listing.
func stableHash(s string) uint32 {
	sum := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint32(sum[:4])
}

// Demo synthesizes a plausible listing from any link or address. It is the
// universal fallback deal source: deterministic, never fails, and shaped
// like real inventory (rent-to-price implies a 5.5-8% cap, HOA only on
// small properties, other income only above 10 units, single-family rent
// premium).
func Demo(linkOrAddress string) metrics.Deal {
	seed := int(stableHash(strings.ToLower(strings.TrimSpace(linkOrAddress))))

	units := 1 + seed%64
	avgRent := float64(1100 + seed%2200)
	price := float64(int(float64(max(1, units)) * avgRent * 12 / (0.055 + float64(seed%25)/1000)))
	vacancy := 0.05 + float64(seed%70)/1000
	taxes := float64(int(price * (0.010 + float64(seed%30)/10000)))
	insurance := float64(int(max(1800, price*(0.002+float64(seed%20)/10000))))

	utilitiesParty := "Tenant Paid"
	if seed%2 != 0 {
		utilitiesParty = "Landlord Paid"
	}

	propertyType := "Single Family"
	if units >= 10 {
		propertyType = "Multifamily"
	}

	// A single dwelling rents at a premium to the per-unit multifamily rate.
	rent := avgRent
	if units < 2 {
		units = 1
		rent = avgRent * 1.6
	}

	otherIncomeMo := 0.0
	if units > 10 {
		otherIncomeMo = float64(seed % 250)
	}
	hoaMo := 0.0
	if units <= 8 {
		hoaMo = float64(seed % 250)
	}
	utilitiesMo := 0.0
	if utilitiesParty == "Landlord Paid" {
		utilitiesMo = float64(seed % 600)
	}

	return metrics.Deal{
		Source:         "demo",
		Address:        fmt.Sprintf("%d Market St, Phoenix, AZ", 100+seed%900),
		PropertyType:   propertyType,
		Price:          price,
		Units:          units,
		Sqft:           float64(900 * max(1, units)),
		AvgRent:        rent,
		Vacancy:        round3(vacancy),
		OtherIncomeMo:  otherIncomeMo,
		Taxes:          taxes,
		Insurance:      insurance,
		HOAMo:          hoaMo,
		UtilitiesMo:    utilitiesMo,
		ManagementPct:  0.08,
		RepairsPct:     0.06,
		CapexPct:       0.04,
		UtilitiesParty: utilitiesParty,
		YearBuilt:      1950 + seed%70,
		City:           "Phoenix",
		State:          "AZ",
	}
}

func round3(f float64) float64 {
	return float64(int(f*1000+0.5)) / 1000
}
