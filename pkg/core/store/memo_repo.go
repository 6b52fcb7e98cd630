package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"aire/pkg/core/underwrite"
)

// MemoRepo stores evaluation memos as versioned snapshots. Memos are
// write-once per version: re-evaluating a deal appends the next version
// rather than overwriting history.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS memo_snapshots (
//	  id           UUID PRIMARY KEY,
//	  workspace_id BIGINT NOT NULL,
//	  slug         TEXT NOT NULL,
//	  version_num  INT NOT NULL,
//	  memo_json    JSONB NOT NULL,
//	  created_at   TIMESTAMPTZ NOT NULL,
//	  UNIQUE (workspace_id, slug, version_num)
//	);
type MemoRepo struct{}

// NewMemoRepo creates a new repository instance.
func NewMemoRepo() *MemoRepo {
	return &MemoRepo{}
}

// MemoSnapshot is one persisted evaluation version.
type MemoSnapshot struct {
	ID          string           `json:"id"`
	WorkspaceID int64            `json:"workspace_id"`
	Slug        string           `json:"slug"`
	Version     int              `json:"version_num"`
	Memo        *underwrite.Memo `json:"memo"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Save appends the memo as the next version under (workspace, slug) and
// returns the stored snapshot.
func (r *MemoRepo) Save(ctx context.Context, workspaceID int64, slug string, memo *underwrite.Memo) (*MemoSnapshot, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	memoJSON, err := json.Marshal(memo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal memo: %w", err)
	}

	var version int
	err = pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version_num), 0) + 1 FROM memo_snapshots WHERE workspace_id = $1 AND slug = $2`,
		workspaceID, slug).Scan(&version)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve next memo version: %w", err)
	}

	snap := &MemoSnapshot{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Slug:        slug,
		Version:     version,
		Memo:        memo,
		CreatedAt:   time.Now(),
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO memo_snapshots (id, workspace_id, slug, version_num, memo_json, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		snap.ID, snap.WorkspaceID, snap.Slug, snap.Version, memoJSON, snap.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save memo snapshot: %w", err)
	}
	return snap, nil
}

// LoadLatest returns the newest snapshot under (workspace, slug).
func (r *MemoRepo) LoadLatest(ctx context.Context, workspaceID int64, slug string) (*MemoSnapshot, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	snap := &MemoSnapshot{WorkspaceID: workspaceID, Slug: slug}
	var memoJSON []byte
	err := pool.QueryRow(ctx,
		`SELECT id, version_num, memo_json, created_at
		 FROM memo_snapshots
		 WHERE workspace_id = $1 AND slug = $2
		 ORDER BY version_num DESC LIMIT 1`,
		workspaceID, slug).Scan(&snap.ID, &snap.Version, &memoJSON, &snap.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no memo found for slug %q", slug)
		}
		return nil, fmt.Errorf("failed to load memo: %w", err)
	}

	if err := json.Unmarshal(memoJSON, &snap.Memo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memo: %w", err)
	}
	return snap, nil
}

// ListRecent returns up to limit newest snapshots in the workspace, without
// their full payloads.
func (r *MemoRepo) ListRecent(ctx context.Context, workspaceID int64, limit int) ([]MemoSnapshot, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 200
	}

	rows, err := pool.Query(ctx,
		`SELECT id, slug, version_num, created_at
		 FROM memo_snapshots
		 WHERE workspace_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	defer rows.Close()

	var out []MemoSnapshot
	for rows.Next() {
		snap := MemoSnapshot{WorkspaceID: workspaceID}
		if err := rows.Scan(&snap.ID, &snap.Slug, &snap.Version, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memo row: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}
