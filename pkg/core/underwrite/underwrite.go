// Package underwrite sequences the full evaluation of a deal: operating
// metrics, leveraged cash-flow projection, grading, and sensitivity probes,
// assembled into a read-only memo payload for persistence and presentation
// layers. The pipeline is a pure function of its inputs; every call builds
// fresh result structures, so independent evaluations are safe to run
// concurrently.
package underwrite

import (
	"time"

	"aire/pkg/core/grading"
	"aire/pkg/core/metrics"
	"aire/pkg/core/projection"
	"aire/pkg/core/sensitivity"
)

// Memo is the complete evaluation result. External layers serialize it,
// snapshot it, or render it; the engine itself owns no format beyond this
// struct.
type Memo struct {
	Deal        metrics.Deal             `json:"deal"`
	ModelInputs projection.ModelInputs   `json:"model_inputs"`
	Calibration metrics.Calibration      `json:"calibration"`
	Metrics     metrics.Metrics          `json:"metrics"`
	Cashflows   projection.CashflowModel `json:"cashflows"`
	Grade       grading.Grade            `json:"grade"`
	Sensitivity map[string]float64       `json:"sensitivity"`
	EvaluatedAt time.Time                `json:"evaluated_at"`
}

// Evaluator runs evaluations against a profile table, normally the default
// one plus any YAML overrides loaded at startup.
type Evaluator struct {
	Profiles grading.Table
}

// NewEvaluator builds an evaluator with the built-in profile table.
func NewEvaluator() *Evaluator {
	return &Evaluator{Profiles: grading.DefaultTable()}
}

// Evaluate runs the full pipeline in its required order: metrics before
// projection, projection before grading.
func (e *Evaluator) Evaluate(deal metrics.Deal, in projection.ModelInputs, calib metrics.Calibration, profile string) Memo {
	m := metrics.Compute(deal, calib)
	cf := projection.Project(deal, m, in)
	g := grading.GradeDealWith(e.Profiles, m, cf.IRRAnnual, calib, profile)
	sens := sensitivity.Quick(deal, m, in)

	return Memo{
		Deal:        deal,
		ModelInputs: in,
		Calibration: calib,
		Metrics:     m,
		Cashflows:   cf,
		Grade:       g,
		Sensitivity: sens,
		EvaluatedAt: time.Now().UTC(),
	}
}
