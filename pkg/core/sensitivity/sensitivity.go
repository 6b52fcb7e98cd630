// Package sensitivity runs quick what-if probes around a base projection to
// rank which assumption the deal's return is most exposed to. Each probe is
// an independent full re-projection; probes never share state and may run
// in parallel with other evaluations.
package sensitivity

import (
	"aire/pkg/core/metrics"
	"aire/pkg/core/projection"
)

// Probe keys in the result map. Values are IRR give-ups: base annual IRR
// minus the stressed annual IRR, so bigger means more exposed.
const (
	KeyBase         = "base"
	KeyExitCapUp    = "exit_cap_+50bps"
	KeyRateUp       = "rate_+50bps"
	KeyRentGrowthDn = "rent_growth_-1pt"
)

// Quick stresses the three assumptions a deal's IRR is usually most
// sensitive to: exit cap +50 bps, interest rate +50 bps, rent growth -1 pt
// (floored at zero growth). The base annual IRR rides along under KeyBase.
func Quick(deal metrics.Deal, m metrics.Metrics, in projection.ModelInputs) map[string]float64 {
	base := projection.Project(deal, m, in).IRRAnnual

	stressed := func(mutate func(*projection.ModelInputs)) float64 {
		probe := in
		mutate(&probe)
		return projection.Project(deal, m, probe).IRRAnnual
	}

	exitUp := stressed(func(p *projection.ModelInputs) { p.ExitCap += 0.005 })
	rateUp := stressed(func(p *projection.ModelInputs) { p.InterestRate += 0.005 })
	rentDn := stressed(func(p *projection.ModelInputs) {
		p.RentGrowth -= 0.01
		if p.RentGrowth < 0 {
			p.RentGrowth = 0
		}
	})

	return map[string]float64{
		KeyBase:         base,
		KeyExitCapUp:    base - exitUp,
		KeyRateUp:       base - rateUp,
		KeyRentGrowthDn: base - rentDn,
	}
}
