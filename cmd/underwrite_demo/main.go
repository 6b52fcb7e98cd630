package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"aire/pkg/core/grading"
	"aire/pkg/core/listing"
	"aire/pkg/core/metrics"
	"aire/pkg/core/projection"
	"aire/pkg/core/sensitivity"
	"aire/pkg/core/underwrite"
)

// Logger helper
func logStep(step string, details string) {
	fmt.Printf("\n[STEP] %s\n", step)
	fmt.Println("---------------------------------------------------------")
	fmt.Println(details)
	fmt.Println("---------------------------------------------------------")
}

func main() {
	query := "742 Saguaro Blvd, Phoenix, AZ"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	logStep("1. Listing Import", fmt.Sprintf("Resolving %q (demo fallback when no feed is configured)", query))
	deal := listing.NewImporter(listing.RESOClientFromEnv()).Import(query)
	fmt.Printf("  %s | %s | %d units | $%.0f | avg rent $%.0f\n",
		deal.Address, deal.PropertyType, deal.Units, deal.Price, deal.AvgRent)

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
	calib := metrics.Calibration{}

	logStep("2. Full Evaluation", "Metrics -> Cashflow Projection -> Grade")
	memo := underwrite.NewEvaluator().Evaluate(deal, in, calib, grading.DefaultProfile)

	m := memo.Metrics
	fmt.Printf("  GPR $%.0f | EGI $%.0f | OpEx $%.0f (OER %.1f%%)\n", m.GPR, m.EGI, m.Opex, m.OER*100)
	fmt.Printf("  NOI $%.0f | Cap rate %.2f%%\n", m.NOI, m.CapRate*100)

	cf := memo.Cashflows
	fmt.Printf("  Hold %dy | Sale $%.0f | Net sale $%.0f | End balance $%.0f\n",
		in.HoldYears, cf.SalePrice, cf.NetSale, cf.EndLoanBalance)
	fmt.Printf("  IRR %.2f%%/yr (%.4f%%/mo) | Equity multiple %.2fx\n",
		cf.IRRAnnual*100, cf.IRRMonthly*100, cf.EquityMultiple)

	g := memo.Grade
	fmt.Printf("  Grade %s (%.0f/100, confidence %.2f)\n", g.Letter, g.Score, g.Confidence)
	for _, flag := range g.Flags {
		fmt.Printf("    - %s\n", flag)
	}

	logStep("3. Sensitivity", "IRR give-up per stress (bigger = more exposed)")
	printProbes(memo.Sensitivity)
}

func printProbes(probes map[string]float64) {
	keys := make([]string, 0, len(probes))
	for k := range probes {
		if k != sensitivity.KeyBase {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return probes[keys[i]] > probes[keys[j]] })

	fmt.Printf("  base IRR: %.2f%%\n", probes[sensitivity.KeyBase]*100)
	for _, k := range keys {
		fmt.Printf("  %-18s -%.2f%%\n", k, probes[k]*100)
	}
}
