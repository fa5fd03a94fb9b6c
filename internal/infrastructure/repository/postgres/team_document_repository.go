package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
	qb "github.com/pitchmetrics/pitchmetrics/internal/platform/querybuilder"
)

type TeamDocumentRepository struct {
	db *sqlx.DB
}

func NewTeamDocumentRepository(db *sqlx.DB) *TeamDocumentRepository {
	return &TeamDocumentRepository{db: db}
}

func (r *TeamDocumentRepository) Upsert(ctx context.Context, record team.Record) error {
	doc, err := encodeDoc(record)
	if err != nil {
		return fmt.Errorf("encode team %d: %w", record.ID, err)
	}

	model := documentModel{
		ID:           record.ID,
		TournamentID: record.TournamentID,
		Season:       record.Season,
		Doc:          doc,
		LastSynced:   record.LastSynced,
		SyncVersion:  record.SyncVersion,
	}
	query, args, err := qb.InsertModel("team_documents", model, documentUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team %d: %w", record.ID, err)
	}

	return nil
}

func (r *TeamDocumentRepository) GetByID(ctx context.Context, id int64) (team.Record, bool, error) {
	query, args, err := qb.Select("doc").From("team_documents").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Record{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var doc []byte
	if err := r.db.GetContext(ctx, &doc, query, args...); err != nil {
		if isNotFound(err) {
			return team.Record{}, false, nil
		}
		return team.Record{}, false, fmt.Errorf("select team %d: %w", id, err)
	}

	var record team.Record
	if err := decodeDoc(doc, &record); err != nil {
		return team.Record{}, false, fmt.Errorf("team %d: %w", id, err)
	}

	return record, true, nil
}

func (r *TeamDocumentRepository) ListByTournament(ctx context.Context, tournamentID int64, season string) ([]team.Record, error) {
	conds := []qb.Condition{qb.Eq("tournament_id", tournamentID)}
	if season != "" {
		conds = append(conds, qb.Eq("season", season))
	}

	query, args, err := qb.Select("doc").From("team_documents").
		Where(conds...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var docs [][]byte
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("list teams tournament %d: %w", tournamentID, err)
	}

	out := make([]team.Record, 0, len(docs))
	for _, doc := range docs {
		var record team.Record
		if err := decodeDoc(doc, &record); err != nil {
			return nil, fmt.Errorf("tournament %d: %w", tournamentID, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func (r *TeamDocumentRepository) DeleteMatching(ctx context.Context, filter team.DeleteFilter) (int64, error) {
	conds := documentDeleteConditions(filter.TournamentID, filter.IDs, filter.ExcludeIDs, filter.SyncedBefore, filter.SyncedAfter)

	query, args, err := qb.DeleteFrom("team_documents").Where(conds...).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete teams query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete teams: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted teams: %w", err)
	}

	return removed, nil
}
