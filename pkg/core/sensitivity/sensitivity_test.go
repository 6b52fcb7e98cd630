package sensitivity

import (
	"testing"

	"aire/pkg/core/metrics"
	"aire/pkg/core/projection"
)

func TestQuick(t *testing.T) {
	deal := metrics.Deal{
		PropertyType:  "Multifamily",
		Price:         1500000,
		Units:         10,
		AvgRent:       1200,
		Vacancy:       0.07,
		Taxes:         18000,
		Insurance:     6000,
		ManagementPct: 0.08,
		RepairsPct:    0.06,
		CapexPct:      0.04,
	}
	m := metrics.Compute(deal, metrics.Calibration{})
	in := projection.ModelInputs{
		HoldYears:      5,
		RentGrowth:     0.03,
		ExpenseGrowth:  0.025,
		ExitCap:        0.065,
		SaleCostPct:    0.05,
		DownPaymentPct: 0.25,
		InterestRate:   0.065,
		AmortYears:     30,
	}

	probes := Quick(deal, m, in)

	for _, key := range []string{KeyBase, KeyExitCapUp, KeyRateUp, KeyRentGrowthDn} {
		if _, ok := probes[key]; !ok {
			t.Fatalf("Missing probe %q", key)
		}
	}

	// A wider exit cap lowers the sale price, a higher rate raises debt
	// service, slower rent growth shrinks income: every stress gives up IRR
	// on a conventional leveraged deal.
	if probes[KeyExitCapUp] <= 0 {
		t.Errorf("Expected exit-cap stress to give up IRR, delta %f", probes[KeyExitCapUp])
	}
	if probes[KeyRateUp] <= 0 {
		t.Errorf("Expected rate stress to give up IRR, delta %f", probes[KeyRateUp])
	}
	if probes[KeyRentGrowthDn] <= 0 {
		t.Errorf("Expected rent-growth stress to give up IRR, delta %f", probes[KeyRentGrowthDn])
	}

	// The probe must leave the caller's inputs untouched.
	if in.ExitCap != 0.065 || in.InterestRate != 0.065 || in.RentGrowth != 0.03 {
		t.Errorf("Quick mutated caller inputs: %+v", in)
	}
}

func TestQuickZeroGrowthFloor(t *testing.T) {
	deal := metrics.Deal{Units: 4, AvgRent: 900, Price: 400000, Vacancy: 0.07}
	m := metrics.Compute(deal, metrics.Calibration{})
	in := projection.ModelInputs{
		HoldYears:      3,
		RentGrowth:     0.005,
		ExpenseGrowth:  0.02,
		ExitCap:        0.06,
		SaleCostPct:    0.05,
		DownPaymentPct: 0.3,
		InterestRate:   0.06,
		AmortYears:     30,
	}
	// RentGrowth 0.005 - 0.01 floors at 0 instead of going negative; the
	// probe still returns all keys.
	probes := Quick(deal, m, in)
	if len(probes) != 4 {
		t.Errorf("Expected 4 probes, got %d", len(probes))
	}
}
