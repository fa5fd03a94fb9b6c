package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	qb "github.com/pitchmetrics/pitchmetrics/internal/platform/querybuilder"
)

// documentModel is the row shape shared by all entity document tables.
// The canonical record lives in the doc JSONB column; the remaining
// columns exist for indexing and clear filters.
type documentModel struct {
	ID           int64     `db:"id"`
	TournamentID int64     `db:"tournament_id"`
	Season       string    `db:"season"`
	Doc          []byte    `db:"doc"`
	LastSynced   time.Time `db:"last_synced"`
	SyncVersion  int64     `db:"sync_version"`
}

const documentUpsertSuffix = `ON CONFLICT (id)
DO UPDATE SET
    tournament_id = EXCLUDED.tournament_id,
    season = EXCLUDED.season,
    doc = EXCLUDED.doc,
    last_synced = EXCLUDED.last_synced,
    sync_version = EXCLUDED.sync_version`

func encodeDoc(v any) ([]byte, error) {
	out, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return out, nil
}

func decodeDoc(data []byte, out any) error {
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// documentDeleteConditions translates the shared clear filter fields into
// WHERE predicates. No predicates means the whole table.
func documentDeleteConditions(tournamentID int64, ids, excludeIDs []int64, before, after *time.Time) []qb.Condition {
	var conds []qb.Condition
	if tournamentID > 0 {
		conds = append(conds, qb.Eq("tournament_id", tournamentID))
	}
	if len(ids) > 0 {
		conds = append(conds, qb.In("id", int64Args(ids)))
	}
	if len(excludeIDs) > 0 {
		conds = append(conds, qb.NotIn("id", int64Args(excludeIDs)))
	}
	if before != nil {
		conds = append(conds, qb.Expr("last_synced < ?", *before))
	}
	if after != nil {
		conds = append(conds, qb.Expr("last_synced > ?", *after))
	}
	return conds
}

func int64Args(ids []int64) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}
