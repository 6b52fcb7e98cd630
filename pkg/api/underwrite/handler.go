package underwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"aire/pkg/core/metrics"
	"aire/pkg/core/projection"
	"aire/pkg/core/sensitivity"
	"aire/pkg/core/store"
	coreUnderwrite "aire/pkg/core/underwrite"
	"aire/pkg/core/utils"
)

var evaluator *coreUnderwrite.Evaluator

// InitHandler wires the handlers to a shared evaluator (profile table
// already loaded by main).
func InitHandler(ev *coreUnderwrite.Evaluator) {
	evaluator = ev
}

// EvaluateRequest is the full evaluation input. Calibration may be omitted
// when a workspace id is given and a database is configured; it is then
// loaded from the workspace record.
type EvaluateRequest struct {
	Deal        metrics.Deal           `json:"deal"`
	ModelInputs projection.ModelInputs `json:"model_inputs"`
	Calibration *metrics.Calibration   `json:"calibration,omitempty"`
	Profile     string                 `json:"profile"`
	WorkspaceID int64                  `json:"workspace_id,omitempty"`
	Persist     bool                   `json:"persist,omitempty"`
}

// EvaluateResponse wraps the memo with the snapshot reference when the
// evaluation was persisted.
type EvaluateResponse struct {
	Memo     coreUnderwrite.Memo `json:"memo"`
	Slug     string              `json:"slug"`
	Snapshot string              `json:"snapshot_id,omitempty"`
	Version  int                 `json:"version,omitempty"`
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// HandleEvaluate runs the full pipeline on the posted deal.
func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	calib := resolveCalibration(r.Context(), &req)
	memo := evaluator.Evaluate(req.Deal, req.ModelInputs, calib, req.Profile)
	slug := utils.Slugify(req.Deal.Address)
	fmt.Printf("[UNDERWRITE] Evaluated %q: score %.0f (%s), IRR %.4f\n",
		slug, memo.Grade.Score, memo.Grade.Letter, memo.Cashflows.IRRAnnual)

	resp := EvaluateResponse{Memo: memo, Slug: slug}

	// Snapshot persistence is best-effort: a missing database degrades the
	// request to compute-only rather than failing it.
	if req.Persist && req.WorkspaceID != 0 && store.GetPool() != nil {
		snap, err := store.NewMemoRepo().Save(r.Context(), req.WorkspaceID, slug, &memo)
		if err != nil {
			fmt.Printf("[UNDERWRITE] Snapshot save failed: %v\n", err)
		} else {
			resp.Snapshot = snap.ID
			resp.Version = snap.Version
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleSensitivity returns the quick what-if probe map for the posted deal.
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	calib := resolveCalibration(r.Context(), &req)
	m := metrics.Compute(req.Deal, calib)
	probes := sensitivity.Quick(req.Deal, m, req.ModelInputs)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(probes)
}

// resolveCalibration prefers explicit calibration, then the workspace
// record, then zero bias.
func resolveCalibration(ctx context.Context, req *EvaluateRequest) metrics.Calibration {
	if req.Calibration != nil {
		return *req.Calibration
	}
	if req.WorkspaceID != 0 && store.GetPool() != nil {
		calib, err := store.NewCalibrationRepo().Load(ctx, req.WorkspaceID)
		if err != nil {
			fmt.Printf("[UNDERWRITE] Calibration load failed, using zero bias: %v\n", err)
			return metrics.Calibration{}
		}
		return calib
	}
	return metrics.Calibration{}
}
