// Package projection builds the month-by-month leveraged cash-flow schedule
// for a deal: equity out at acquisition, amortizing debt service against
// growing income, and a terminal sale folded into the final month. The
// resulting vector feeds the IRR solver.
package projection

import (
	"math"

	"aire/pkg/core/calc"
	"aire/pkg/core/metrics"
)

// ModelInputs are the user-tunable projection assumptions. Owned by the
// caller; Project only reads them.
type ModelInputs struct {
	HoldYears      int     `json:"hold_years"`
	RentGrowth     float64 `json:"rent_growth"`
	ExpenseGrowth  float64 `json:"expense_growth"`
	ExitCap        float64 `json:"exit_cap"`
	SaleCostPct    float64 `json:"sale_cost_pct"`
	DownPaymentPct float64 `json:"down_payment_pct"`
	InterestRate   float64 `json:"interest_rate"`
	AmortYears     int     `json:"amort_years"`
}

// CashflowModel is the projected schedule plus its return summary.
// Cashflows[0] is the negative equity outflow at acquisition; the final
// month carries the net sale proceeds in addition to its operating flow.
type CashflowModel struct {
	Cashflows      []float64 `json:"cashflows"`
	IRRMonthly     float64   `json:"irr_monthly"`
	IRRAnnual      float64   `json:"irr_annual"`
	EquityMultiple float64   `json:"equity_multiple"`
	SalePrice      float64   `json:"sale_price"`
	NetSale        float64   `json:"net_sale"`
	EndLoanBalance float64   `json:"end_loan_balance"`
}

const (
	// Floors keeping the price imputation and terminal capitalization away
	// from division blowups at near-zero cap rates.
	imputedCapFloor   = 0.05
	imputedCapDefault = 0.06
	exitCapFloor      = 0.01

	// Monthly IRR at or below this is treated as total loss when
	// annualizing, since (1+irr)^12 is undefined territory past -1.
	totalLossMonthly = -0.999
)

// Project builds the leveraged monthly cash-flow schedule for a deal and
// solves its IRR. HoldYears and AmortYears are floored at 1. A missing or
// zero price is imputed from NOI at max(0.05, cap rate or 0.06).
func Project(deal metrics.Deal, m metrics.Metrics, in ModelInputs) CashflowModel {
	holdYears := in.HoldYears
	if holdYears < 1 {
		holdYears = 1
	}
	amortYears := in.AmortYears
	if amortYears < 1 {
		amortYears = 1
	}
	months := holdYears * 12

	price := deal.Price
	if price == 0 {
		cap := m.CapRate
		if cap == 0 {
			cap = imputedCapDefault
		}
		price = m.NOI / math.Max(imputedCapFloor, cap)
	}

	equity0 := -price * in.DownPaymentPct
	loan0 := price * (1 - in.DownPaymentPct)

	monthlyRate := in.InterestRate / 12.0
	pay := calc.Payment(monthlyRate, amortYears*12, loan0)

	cashflows := make([]float64, 0, months+1)
	cashflows = append(cashflows, equity0)
	loanBalance := loan0

	egiM0 := m.EGI / 12.0
	opexM0 := m.Opex / 12.0

	for month := 1; month <= months; month++ {
		y := (month - 1) / 12
		egiM := egiM0 * math.Pow(1+in.RentGrowth, float64(y))
		opexM := opexM0 * math.Pow(1+in.ExpenseGrowth, float64(y))
		noiM := egiM - opexM

		interest := loanBalance * monthlyRate
		principal := math.Max(0, pay-interest)
		loanBalance = math.Max(0, loanBalance-principal)

		cashflows = append(cashflows, noiM-pay)
	}

	// Terminal sale: capitalize the final hold year's annualized NOI at the
	// exit cap, net out selling costs and the remaining balance, and fold
	// the proceeds into the last month rather than appending a period.
	lastYear := float64(holdYears - 1)
	lastNOIAnnual := (egiM0*math.Pow(1+in.RentGrowth, lastYear) -
		opexM0*math.Pow(1+in.ExpenseGrowth, lastYear)) * 12.0
	salePrice := lastNOIAnnual / math.Max(exitCapFloor, in.ExitCap)
	saleCost := salePrice * in.SaleCostPct
	netSale := salePrice - saleCost - loanBalance
	cashflows[len(cashflows)-1] += netSale

	irrM := calc.IRR(cashflows)
	irrA := -1.0
	if irrM > totalLossMonthly {
		irrA = math.Pow(1+irrM, 12) - 1
	}

	eqMult := 0.0
	if equity0 != 0 {
		positive := 0.0
		for _, cf := range cashflows[1:] {
			if cf > 0 {
				positive += cf
			}
		}
		eqMult = positive / math.Abs(equity0)
	}

	return CashflowModel{
		Cashflows:      cashflows,
		IRRMonthly:     irrM,
		IRRAnnual:      irrA,
		EquityMultiple: eqMult,
		SalePrice:      salePrice,
		NetSale:        netSale,
		EndLoanBalance: loanBalance,
	}
}
