package metrics

// Deal carries the raw facts of a property as supplied by a listing feed,
// the demo generator, or user edits. Fields may be missing or zero; Compute
// applies documented defaults instead of rejecting the record.
type Deal struct {
	Source         string  `json:"source,omitempty"`
	Address        string  `json:"address,omitempty"`
	PropertyType   string  `json:"property_type,omitempty"`
	Price          float64 `json:"price"`
	Units          int     `json:"units"`
	Sqft           float64 `json:"sqft,omitempty"`
	AvgRent        float64 `json:"avg_rent"`
	Vacancy        float64 `json:"vacancy"`
	OtherIncomeMo  float64 `json:"other_income_mo"`
	Taxes          float64 `json:"taxes"`
	Insurance      float64 `json:"insurance"`
	HOAMo          float64 `json:"hoa_mo"`
	UtilitiesMo    float64 `json:"utilities_mo"`
	ManagementPct  float64 `json:"management_pct"`
	RepairsPct     float64 `json:"repairs_pct"`
	CapexPct       float64 `json:"capex_pct"`
	UtilitiesParty string  `json:"utilities_party,omitempty"`
	YearBuilt      int     `json:"year_built,omitempty"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state,omitempty"`
}

// Calibration is the per-workspace correction nudging model assumptions
// toward historical feedback. Persisted externally; read-only to the engine.
type Calibration struct {
	VacancyBias float64 `json:"vacancy_bias"`
	OERBias     float64 `json:"oer_bias"`
	IRRBias     float64 `json:"irr_bias"`
}

// Metrics holds the derived operating picture of a deal. Immutable once
// computed; every evaluation request recomputes it from scratch.
type Metrics struct {
	Units       int     `json:"units"`
	AvgRent     float64 `json:"avg_rent"`
	GPR         float64 `json:"gpr"`
	OtherIncome float64 `json:"other_income"`
	Vacancy     float64 `json:"vacancy"`
	EGI         float64 `json:"egi"`
	Taxes       float64 `json:"taxes"`
	Insurance   float64 `json:"insurance"`
	HOA         float64 `json:"hoa"`
	Utilities   float64 `json:"utilities"`
	Mgmt        float64 `json:"mgmt"`
	Repairs     float64 `json:"repairs"`
	Capex       float64 `json:"capex"`
	Opex        float64 `json:"opex"`
	OER         float64 `json:"oer"`
	NOI         float64 `json:"noi"`
	CapRate     float64 `json:"cap_rate"`
}
