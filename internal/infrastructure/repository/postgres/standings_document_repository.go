package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
	qb "github.com/pitchmetrics/pitchmetrics/internal/platform/querybuilder"
)

// standingsDocumentModel is keyed by tournament alone: each tournament
// carries one current table, replaced wholesale on every sync.
type standingsDocumentModel struct {
	TournamentID int64     `db:"tournament_id"`
	Season       string    `db:"season"`
	Doc          []byte    `db:"doc"`
	LastSynced   time.Time `db:"last_synced"`
	SyncVersion  int64     `db:"sync_version"`
}

const standingsUpsertSuffix = `ON CONFLICT (tournament_id)
DO UPDATE SET
    season = EXCLUDED.season,
    doc = EXCLUDED.doc,
    last_synced = EXCLUDED.last_synced,
    sync_version = EXCLUDED.sync_version`

type StandingsDocumentRepository struct {
	db *sqlx.DB
}

func NewStandingsDocumentRepository(db *sqlx.DB) *StandingsDocumentRepository {
	return &StandingsDocumentRepository{db: db}
}

func (r *StandingsDocumentRepository) Upsert(ctx context.Context, record standings.Record) error {
	doc, err := encodeDoc(record)
	if err != nil {
		return fmt.Errorf("encode standings %d: %w", record.TournamentID, err)
	}

	model := standingsDocumentModel{
		TournamentID: record.TournamentID,
		Season:       record.Season,
		Doc:          doc,
		LastSynced:   record.LastSynced,
		SyncVersion:  record.SyncVersion,
	}
	query, args, err := qb.InsertModel("standings_documents", model, standingsUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert standings query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert standings %d: %w", record.TournamentID, err)
	}

	return nil
}

func (r *StandingsDocumentRepository) GetByTournament(ctx context.Context, tournamentID int64, season string) (standings.Record, bool, error) {
	conds := []qb.Condition{qb.Eq("tournament_id", tournamentID)}
	if season != "" {
		conds = append(conds, qb.Eq("season", season))
	}

	query, args, err := qb.Select("doc").From("standings_documents").
		Where(conds...).
		ToSQL()
	if err != nil {
		return standings.Record{}, false, fmt.Errorf("build select standings query: %w", err)
	}

	var doc []byte
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		if isNotFound(err) {
			return standings.Record{}, false, nil
		}
		return standings.Record{}, false, fmt.Errorf("select standings %d: %w", tournamentID, err)
	}

	var record standings.Record
	if err := decodeDoc(doc, &record); err != nil {
		return standings.Record{}, false, fmt.Errorf("standings %d: %w", tournamentID, err)
	}

	return record, true, nil
}

func (r *StandingsDocumentRepository) DeleteMatching(ctx context.Context, filter standings.DeleteFilter) (int64, error) {
	var conds []qb.Condition
	if filter.TournamentID > 0 {
		conds = append(conds, qb.Eq("tournament_id", filter.TournamentID))
	}
	if filter.SyncedBefore != nil {
		conds = append(conds, qb.Expr("last_synced < ?", *filter.SyncedBefore))
	}
	if filter.SyncedAfter != nil {
		conds = append(conds, qb.Expr("last_synced > ?", *filter.SyncedAfter))
	}

	query, args, err := qb.DeleteFrom("standings_documents").Where(conds...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete standings query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete standings: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted standings: %w", err)
	}

	return removed, nil
}
