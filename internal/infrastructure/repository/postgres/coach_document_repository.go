package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
	qb "github.com/pitchmetrics/pitchmetrics/internal/platform/querybuilder"
)

type CoachDocumentRepository struct {
	db *sqlx.DB
}

func NewCoachDocumentRepository(db *sqlx.DB) *CoachDocumentRepository {
	return &CoachDocumentRepository{db: db}
}

func (r *CoachDocumentRepository) Upsert(ctx context.Context, record coach.Record) error {
	doc, err := encodeDoc(record)
	if err != nil {
		return fmt.Errorf("encode coach %d: %w", record.ID, err)
	}

	model := documentModel{
		ID:           record.ID,
		TournamentID: record.TournamentID,
		Doc:          doc,
		LastSynced:   record.LastSynced,
		SyncVersion:  record.SyncVersion,
	}
	query, args, err := qb.InsertModel("coach_documents", model, documentUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert coach query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert coach %d: %w", record.ID, err)
	}

	return nil
}

func (r *CoachDocumentRepository) GetByID(ctx context.Context, id int64) (coach.Record, bool, error) {
	query, args, err := qb.Select("doc").From("coach_documents").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return coach.Record{}, false, fmt.Errorf("build select coach query: %w", err)
	}

	var doc []byte
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		if isNotFound(err) {
			return coach.Record{}, false, nil
		}
		return coach.Record{}, false, fmt.Errorf("select coach %d: %w", id, err)
	}

	var record coach.Record
	if err := decodeDoc(doc, &record); err != nil {
		return coach.Record{}, false, fmt.Errorf("coach %d: %w", id, err)
	}

	return record, true, nil
}

func (r *CoachDocumentRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]coach.Record, error) {
	query, args, err := qb.Select("doc").From("coach_documents").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list coaches query: %w", err)
	}

	var docs [][]byte
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("list coaches tournament %d: %w", tournamentID, err)
	}

	out := make([]coach.Record, 0, len(docs))
	for _, doc := range docs {
		var record coach.Record
		if err := decodeDoc(doc, &record); err != nil {
			return nil, fmt.Errorf("tournament %d: %w", tournamentID, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func (r *CoachDocumentRepository) DeleteMatching(ctx context.Context, filter coach.DeleteFilter) (int64, error) {
	conds := documentDeleteConditions(filter.TournamentID, filter.IDs, filter.ExcludeIDs, filter.SyncedBefore, filter.SyncedAfter)

	query, args, err := qb.DeleteFrom("coach_documents").Where(conds...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete coaches query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete coaches: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted coaches: %w", err)
	}

	return removed, nil
}
