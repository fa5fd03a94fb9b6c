package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
	qb "github.com/pitchmetrics/pitchmetrics/internal/platform/querybuilder"
)

type RefereeDocumentRepository struct {
	db *sqlx.DB
}

func NewRefereeDocumentRepository(db *sqlx.DB) *RefereeDocumentRepository {
	return &RefereeDocumentRepository{db: db}
}

func (r *RefereeDocumentRepository) Upsert(ctx context.Context, record referee.Record) error {
	doc, err := encodeDoc(record)
	if err != nil {
		return fmt.Errorf("encode referee %d: %w", record.ID, err)
	}

	model := documentModel{
		ID:           record.ID,
		TournamentID: record.TournamentID,
		Doc:          doc,
		LastSynced:   record.LastSynced,
		SyncVersion:  record.SyncVersion,
	}
	query, args, err := qb.InsertModel("referee_documents", model, documentUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert referee query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert referee %d: %w", record.ID, err)
	}

	return nil
}

func (r *RefereeDocumentRepository) GetByID(ctx context.Context, id int64) (referee.Record, bool, error) {
	query, args, err := qb.Select("doc").From("referee_documents").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return referee.Record{}, false, fmt.Errorf("build select referee query: %w", err)
	}

	var doc []byte
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		if isNotFound(err) {
			return referee.Record{}, false, nil
		}
		return referee.Record{}, false, fmt.Errorf("select referee %d: %w", id, err)
	}

	var record referee.Record
	if err := decodeDoc(doc, &record); err != nil {
		return referee.Record{}, false, fmt.Errorf("referee %d: %w", id, err)
	}

	return record, true, nil
}

func (r *RefereeDocumentRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]referee.Record, error) {
	query, args, err := qb.Select("doc").From("referee_documents").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list referees query: %w", err)
	}

	var docs [][]byte
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("list referees tournament %d: %w", tournamentID, err)
	}

	out := make([]referee.Record, 0, len(docs))
	for _, doc := range docs {
		var record referee.Record
		if err := decodeDoc(doc, &record); err != nil {
			return nil, fmt.Errorf("tournament %d: %w", tournamentID, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func (r *RefereeDocumentRepository) DeleteMatching(ctx context.Context, filter referee.DeleteFilter) (int64, error) {
	conds := documentDeleteConditions(filter.TournamentID, filter.IDs, filter.ExcludeIDs, filter.SyncedBefore, filter.SyncedAfter)

	query, args, err := qb.DeleteFrom("referee_documents").Where(conds...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete referees query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete referees: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted referees: %w", err)
	}

	return removed, nil
}
