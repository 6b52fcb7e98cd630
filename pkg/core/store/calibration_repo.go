package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"aire/pkg/core/metrics"
)

// CalibrationRepo persists per-workspace calibration bias.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS workspace_calibration (
//	  workspace_id BIGINT PRIMARY KEY,
//	  vacancy_bias DOUBLE PRECISION NOT NULL DEFAULT 0,
//	  oer_bias     DOUBLE PRECISION NOT NULL DEFAULT 0,
//	  irr_bias     DOUBLE PRECISION NOT NULL DEFAULT 0,
//	  updated_at   TIMESTAMPTZ
//	);
type CalibrationRepo struct{}

// NewCalibrationRepo creates a new repository instance.
func NewCalibrationRepo() *CalibrationRepo {
	return &CalibrationRepo{}
}

// Save upserts the workspace's calibration.
func (r *CalibrationRepo) Save(ctx context.Context, workspaceID int64, calib metrics.Calibration) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	query := `
		INSERT INTO workspace_calibration (workspace_id, vacancy_bias, oer_bias, irr_bias, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workspace_id)
		DO UPDATE SET
			vacancy_bias = EXCLUDED.vacancy_bias,
			oer_bias = EXCLUDED.oer_bias,
			irr_bias = EXCLUDED.irr_bias,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := pool.Exec(ctx, query, workspaceID, calib.VacancyBias, calib.OERBias, calib.IRRBias, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save calibration: %w", err)
	}
	return nil
}

// Load returns the workspace's calibration. A workspace that has never been
// calibrated reads back as the zero bias, not an error.
func (r *CalibrationRepo) Load(ctx context.Context, workspaceID int64) (metrics.Calibration, error) {
	var calib metrics.Calibration

	pool := GetPool()
	if pool == nil {
		return calib, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT vacancy_bias, oer_bias, irr_bias FROM workspace_calibration WHERE workspace_id = $1`
	err := pool.QueryRow(ctx, query, workspaceID).Scan(&calib.VacancyBias, &calib.OERBias, &calib.IRRBias)
	if err != nil {
		if err == pgx.ErrNoRows {
			return metrics.Calibration{}, nil
		}
		return calib, fmt.Errorf("failed to load calibration: %w", err)
	}
	return calib, nil
}
