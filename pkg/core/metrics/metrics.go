// Package metrics turns raw deal facts plus workspace calibration into the
// operating picture of a property: gross and effective income, expense load,
// NOI and cap rate. Compute is a pure, total function; missing inputs fall
// back to documented defaults rather than producing errors.
package metrics

// Assumption defaults applied when a deal record omits a field.
const (
	defaultVacancy       = 0.07
	defaultManagementPct = 0.08
	defaultRepairsPct    = 0.06
	defaultCapexPct      = 0.04

	// Fallback monthly rents when the listing carries none. Smaller
	// residential product rents higher per unit than multifamily.
	defaultRentSmallResidential = 1600
	defaultRentMultifamily      = 1400

	vacancyCeiling = 0.25
)

// smallResidential reports whether a property type rents as a single
// dwelling rather than a multifamily building.
func smallResidential(propertyType string) bool {
	switch propertyType {
	case "Single Family", "Condo", "Townhouse":
		return true
	}
	return false
}

// Compute derives operating metrics from a deal and workspace calibration.
//
// Management, repairs and capex reserves are taken as shares of EGI, not of
// other expenses. The calibration's vacancy bias shifts the vacancy
// assumption before clamping to [0, 0.25]; the OER bias scales total opex,
// floored at zero. Division guards: OER is 0 when EGI <= 0 and cap rate is 0
// when price <= 0.
func Compute(deal Deal, calib Calibration) Metrics {
	units := deal.Units
	if units < 1 {
		units = 1
	}

	avgRent := deal.AvgRent
	if avgRent == 0 {
		if smallResidential(deal.PropertyType) {
			avgRent = defaultRentSmallResidential
		} else {
			avgRent = defaultRentMultifamily
		}
	}

	gpr := float64(units) * avgRent * 12
	otherIncome := deal.OtherIncomeMo * 12

	vacancy := deal.Vacancy
	if vacancy == 0 {
		vacancy = defaultVacancy
	}
	vacancy += calib.VacancyBias
	if vacancy < 0 {
		vacancy = 0
	}
	if vacancy > vacancyCeiling {
		vacancy = vacancyCeiling
	}

	egi := (gpr + otherIncome) * (1 - vacancy)

	hoa := deal.HOAMo * 12
	utilities := deal.UtilitiesMo * 12

	mgmtPct := deal.ManagementPct
	if mgmtPct == 0 {
		mgmtPct = defaultManagementPct
	}
	repairsPct := deal.RepairsPct
	if repairsPct == 0 {
		repairsPct = defaultRepairsPct
	}
	capexPct := deal.CapexPct
	if capexPct == 0 {
		capexPct = defaultCapexPct
	}

	mgmt := egi * mgmtPct
	repairs := egi * repairsPct
	capex := egi * capexPct

	opex := deal.Taxes + deal.Insurance + hoa + utilities + mgmt + repairs + capex
	opex = opex * (1 + calib.OERBias)
	if opex < 0 {
		opex = 0
	}

	oer := 0.0
	if egi > 0 {
		oer = opex / egi
	}
	noi := egi - opex

	capRate := 0.0
	if deal.Price > 0 {
		capRate = noi / deal.Price
	}

	return Metrics{
		Units:       units,
		AvgRent:     avgRent,
		GPR:         gpr,
		OtherIncome: otherIncome,
		Vacancy:     vacancy,
		EGI:         egi,
		Taxes:       deal.Taxes,
		Insurance:   deal.Insurance,
		HOA:         hoa,
		Utilities:   utilities,
		Mgmt:        mgmt,
		Repairs:     repairs,
		Capex:       capex,
		Opex:        opex,
		OER:         oer,
		NOI:         noi,
		CapRate:     capRate,
	}
}
