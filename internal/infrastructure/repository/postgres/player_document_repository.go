package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
	qb "github.com/pitchmetrics/pitchmetrics/internal/platform/querybuilder"
)

type PlayerDocumentRepository struct {
	db *sqlx.DB
}

func NewPlayerDocumentRepository(db *sqlx.DB) *PlayerDocumentRepository {
	return &PlayerDocumentRepository{db: db}
}

func (r *PlayerDocumentRepository) Upsert(ctx context.Context, record player.Record) error {
	doc, err := encodeDoc(record)
	if err != nil {
		return fmt.Errorf("encode player %d: %w", record.ID, err)
	}

	model := documentModel{
		ID:           record.ID,
		TournamentID: record.TournamentID,
		Season:       record.Season,
		Doc:          doc,
		LastSynced:   record.LastSynced,
		SyncVersion:  record.SyncVersion,
	}
	query, args, err := qb.InsertModel("player_documents", model, documentUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player %d: %w", record.ID, err)
	}

	return nil
}

func (r *PlayerDocumentRepository) GetByID(ctx context.Context, id int64) (player.Record, bool, error) {
	query, args, err := qb.Select("doc").From("player_documents").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Record{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var doc []byte
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		if isNotFound(err) {
			return player.Record{}, false, nil
		}
		return player.Record{}, false, fmt.Errorf("select player %d: %w", id, err)
	}

	var record player.Record
	if err := decodeDoc(doc, &record); err != nil {
		return player.Record{}, false, fmt.Errorf("player %d: %w", id, err)
	}

	return record, true, nil
}

func (r *PlayerDocumentRepository) ListByTournament(ctx context.Context, tournamentID int64, season string) ([]player.Record, error) {
	conds := []qb.Condition{qb.Eq("tournament_id", tournamentID)}
	if season != "" {
		conds = append(conds, qb.Eq("season", season))
	}

	query, args, err := qb.Select("doc").From("player_documents").
		Where(conds...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var docs [][]byte
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("list players tournament %d: %w", tournamentID, err)
	}

	out := make([]player.Record, 0, len(docs))
	for _, doc := range docs {
		var record player.Record
		if err := decodeDoc(doc, &record); err != nil {
			return nil, fmt.Errorf("tournament %d: %w", tournamentID, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func (r *PlayerDocumentRepository) DeleteMatching(ctx context.Context, filter player.DeleteFilter) (int64, error) {
	conds := documentDeleteConditions(filter.TournamentID, filter.IDs, filter.ExcludeIDs, filter.SyncedBefore, filter.SyncedAfter)

	query, args, err := qb.DeleteFrom("player_documents").Where(conds...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete players query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete players: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted players: %w", err)
	}

	return removed, nil
}
