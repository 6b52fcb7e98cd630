package listing

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"aire/pkg/core/metrics"
	"aire/pkg/core/utils"
)

// RESOClient pulls property records from a RESO Web API endpoint. It is an
// optional deal source: without credentials it reports itself unconfigured
// and the importer falls through to the demo generator.
type RESOClient struct {
	BaseURL string
	Token   string
	client  *http.Client
}

// NewRESOClient builds a client from explicit credentials.
func NewRESOClient(baseURL, token string) *RESOClient {
	return &RESOClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		client:  &http.Client{Timeout: 12 * time.Second},
	}
}

// RESOClientFromEnv reads RESO_BASE_URL and RESO_BEARER_TOKEN.
func RESOClientFromEnv() *RESOClient {
	return NewRESOClient(os.Getenv("RESO_BASE_URL"), os.Getenv("RESO_BEARER_TOKEN"))
}

// Configured reports whether the client has both an endpoint and a token.
func (c *RESOClient) Configured() bool {
	return c.BaseURL != "" && c.Token != ""
}

// resoProperty is the subset of RESO Property resource fields we map onto a
// deal. Feeds disagree on which of the aliased fields they populate.
type resoProperty struct {
	UnparsedAddress    string  `json:"UnparsedAddress"`
	PropertyType       string  `json:"PropertyType"`
	PropertySubType    string  `json:"PropertySubType"`
	ListPrice          float64 `json:"ListPrice"`
	NumberOfUnitsTotal int     `json:"NumberOfUnitsTotal"`
	LivingArea         float64 `json:"LivingArea"`
	BuildingAreaTotal  float64 `json:"BuildingAreaTotal"`
	YearBuilt          int     `json:"YearBuilt"`
	City               string  `json:"City"`
	StateOrProvince    string  `json:"StateOrProvince"`
}

type resoEnvelope struct {
	Value []resoProperty `json:"value"`
}

// Lookup fetches the first property whose unparsed address contains the
// query. Payloads are decoded leniently since vendor gateways are not
// always strict JSON.
func (c *RESOClient) Lookup(query string) (*metrics.Deal, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("reso client not configured")
	}

	q := strings.ReplaceAll(strings.TrimSpace(query), "'", "''")
	endpoint := fmt.Sprintf("%s/Property?$top=1&$filter=%s", c.BaseURL,
		url.QueryEscape(fmt.Sprintf("contains(UnparsedAddress,'%s')", q)))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reso request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reso fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reso fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read reso response: %w", err)
	}

	var envelope resoEnvelope
	if err := utils.SmartDecode(string(body), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode reso response: %w", err)
	}
	if len(envelope.Value) == 0 {
		return nil, fmt.Errorf("no reso match for %q", query)
	}

	deal := mapRESOProperty(envelope.Value[0], strings.TrimSpace(query))
	return &deal, nil
}

// mapRESOProperty converts a RESO record into a deal with the standard
// assumption defaults for everything the feed does not carry.
func mapRESOProperty(p resoProperty, fallbackAddress string) metrics.Deal {
	address := p.UnparsedAddress
	if address == "" {
		address = fallbackAddress
	}

	propertyType := p.PropertySubType
	if propertyType == "" {
		propertyType = p.PropertyType
	}
	if propertyType == "" {
		propertyType = "Unknown"
	}

	sqft := p.LivingArea
	if sqft == 0 {
		sqft = p.BuildingAreaTotal
	}

	return metrics.Deal{
		Source:         "reso",
		Address:        address,
		PropertyType:   propertyType,
		Price:          p.ListPrice,
		Units:          p.NumberOfUnitsTotal,
		Sqft:           sqft,
		YearBuilt:      p.YearBuilt,
		Vacancy:        0.07,
		ManagementPct:  0.08,
		RepairsPct:     0.06,
		CapexPct:       0.04,
		UtilitiesParty: "Unknown",
		City:           p.City,
		State:          p.StateOrProvince,
	}
}
