// Package grading maps operating metrics and adjusted IRR into a 0-100
// score, letter grade, and explanatory risk flags via an ordered set of
// independent rules with profile-selected weights.
package grading

import (
	"aire/pkg/core/metrics"
)

// Grade is the deterministic scoring verdict for one evaluation.
type Grade struct {
	Score      float64  `json:"score"`
	Letter     string   `json:"letter"`
	Confidence float64  `json:"confidence"`
	Flags      []string `json:"flags"`
	IRRAdj     float64  `json:"irr_adj"`
	Profile    string   `json:"profile"`
}

// Grade confidence is fixed in this version; a computed confidence model is
// future work.
const fixedConfidence = 0.78

// GradeDeal scores a deal against the built-in profile table.
func GradeDeal(m metrics.Metrics, irrAnnual float64, calib metrics.Calibration, profile string) Grade {
	return GradeDealWith(DefaultTable(), m, irrAnnual, calib, profile)
}

// GradeDealWith scores a deal against a caller-supplied profile table
// (e.g. one extended from YAML config). Score starts at 100, every
// triggered rule adds its delta independently, and the result is clamped
// to [0, 100] before the letter cut.
func GradeDealWith(table Table, m metrics.Metrics, irrAnnual float64, calib metrics.Calibration, profile string) Grade {
	w := table.Lookup(profile)

	in := ruleInput{
		OER:     m.OER,
		CapRate: m.CapRate,
		Vacancy: m.Vacancy,
		IRRAdj:  irrAnnual + calib.IRRBias,
	}

	score := 100.0
	// Non-nil so a clean deal serializes as "flags": [] rather than null.
	flags := []string{}
	for _, r := range rules {
		if r.when(in) {
			score += r.delta(w)
			flags = append(flags, r.flag)
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Grade{
		Score:      score,
		Letter:     letterFor(score),
		Confidence: fixedConfidence,
		Flags:      flags,
		IRRAdj:     in.IRRAdj,
		Profile:    profile,
	}
}

func letterFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
