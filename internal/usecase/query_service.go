package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/cache"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
)

// Cache TTLs by payload class. The cache itself is TTL-agnostic; the
// read path owns these policies.
const (
	ttlList      = 15 * time.Minute
	ttlProfile   = 30 * time.Minute
	ttlAggregate = 60 * time.Minute
)

const (
	teamListCachePrefix   = "teams:"
	playerListCachePrefix = "players:"
	standingsCachePrefix  = "standings:"
)

func teamCacheKey(id int64) string    { return "team:" + strconv.FormatInt(id, 10) }
func playerCacheKey(id int64) string  { return "player:" + strconv.FormatInt(id, 10) }
func coachCacheKey(id int64) string   { return "coach:" + strconv.FormatInt(id, 10) }
func refereeCacheKey(id int64) string { return "referee:" + strconv.FormatInt(id, 10) }

func teamListCacheKey(tournamentID int64, season string) string {
	return teamListCachePrefix + "t:" + strconv.FormatInt(tournamentID, 10) + ":" + season
}

func playerListCacheKey(tournamentID int64, season string) string {
	return playerListCachePrefix + "t:" + strconv.FormatInt(tournamentID, 10) + ":" + season
}

func standingsCacheKey(tournamentID int64, season string) string {
	return standingsCachePrefix + strconv.FormatInt(tournamentID, 10) + ":" + season
}

// EntitySyncer is the on-demand refresh hook the read path pulls when the
// durable store has no document yet.
type EntitySyncer interface {
	SyncEntity(ctx context.Context, kind string, id int64) error
}

// QueryService serves canonical records read-aside through the cache.
// The serving path never writes documents itself; a store miss triggers
// at most one on-demand sync before falling back to an empty shape.
type QueryService struct {
	teams     team.Repository
	players   player.Repository
	coaches   coach.Repository
	referees  referee.Repository
	standings standings.Repository
	cache     *cache.Store
	syncer    EntitySyncer
	logger    *logging.Logger
}

func NewQueryService(
	teams team.Repository,
	players player.Repository,
	coaches coach.Repository,
	referees referee.Repository,
	standingsRepo standings.Repository,
	cacheStore *cache.Store,
	syncer EntitySyncer,
	logger *logging.Logger,
) *QueryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QueryService{
		teams:     teams,
		players:   players,
		coaches:   coaches,
		referees:  referees,
		standings: standingsRepo,
		cache:     cacheStore,
		syncer:    syncer,
		logger:    logger,
	}
}

func (s *QueryService) GetTeam(ctx context.Context, id int64) (team.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetTeam")
	defer span.End()

	if id <= 0 {
		return team.Record{}, fmt.Errorf("%w: team %d", ErrNotFound, id)
	}

	key := teamCacheKey(id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		if record, ok := cached.(team.Record); ok {
			return record, nil
		}
	}

	lookup := func() (team.Record, bool, error) {
		return s.teams.GetByID(ctx, id)
	}

	record, found, err := lookup()
	if err != nil {
		return team.Record{}, fmt.Errorf("read team %d: %w", id, err)
	}
	if !found {
		if refreshed, refreshErr := s.refresh(ctx, "team", id); refreshErr != nil {
			return team.Record{}, refreshErr
		} else if refreshed {
			record, found, err = lookup()
			if err != nil {
				return team.Record{}, fmt.Errorf("read team %d: %w", id, err)
			}
		}
	}
	if !found {
		// Never-synced entities serve the documented empty shape.
		return team.Record{ID: id, Name: unknownTeamName}, nil
	}

	s.cache.Set(ctx, key, record, ttlProfile)
	return record, nil
}

func (s *QueryService) GetPlayer(ctx context.Context, id int64) (player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetPlayer")
	defer span.End()

	if id <= 0 {
		return player.Record{}, fmt.Errorf("%w: player %d", ErrNotFound, id)
	}

	key := playerCacheKey(id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		if record, ok := cached.(player.Record); ok {
			return record, nil
		}
	}

	lookup := func() (player.Record, bool, error) {
		return s.players.GetByID(ctx, id)
	}

	record, found, err := lookup()
	if err != nil {
		return player.Record{}, fmt.Errorf("read player %d: %w", id, err)
	}
	if !found {
		if refreshed, refreshErr := s.refresh(ctx, "player", id); refreshErr != nil {
			return player.Record{}, refreshErr
		} else if refreshed {
			record, found, err = lookup()
			if err != nil {
				return player.Record{}, fmt.Errorf("read player %d: %w", id, err)
			}
		}
	}
	if !found {
		return player.Record{ID: id, Name: unknownPlayerName, Position: player.PositionMidfielder}, nil
	}

	s.cache.Set(ctx, key, record, ttlProfile)
	return record, nil
}

func (s *QueryService) GetCoach(ctx context.Context, id int64) (coach.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetCoach")
	defer span.End()

	if id <= 0 {
		return coach.Record{}, fmt.Errorf("%w: coach %d", ErrNotFound, id)
	}

	key := coachCacheKey(id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		if record, ok := cached.(coach.Record); ok {
			return record, nil
		}
	}

	lookup := func() (coach.Record, bool, error) {
		return s.coaches.GetByID(ctx, id)
	}

	record, found, err := lookup()
	if err != nil {
		return coach.Record{}, fmt.Errorf("read coach %d: %w", id, err)
	}
	if !found {
		if refreshed, refreshErr := s.refresh(ctx, "coach", id); refreshErr != nil {
			return coach.Record{}, refreshErr
		} else if refreshed {
			record, found, err = lookup()
			if err != nil {
				return coach.Record{}, fmt.Errorf("read coach %d: %w", id, err)
			}
		}
	}
	if !found {
		return coach.Record{ID: id, Name: "Unknown Coach", PreferredFormation: inferFormation(0, 0, 0)}, nil
	}

	s.cache.Set(ctx, key, record, ttlProfile)
	return record, nil
}

func (s *QueryService) GetReferee(ctx context.Context, id int64) (referee.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetReferee")
	defer span.End()

	if id <= 0 {
		return referee.Record{}, fmt.Errorf("%w: referee %d", ErrNotFound, id)
	}

	key := refereeCacheKey(id)
	if cached, ok := s.cache.Get(ctx, key); ok {
		if record, ok := cached.(referee.Record); ok {
			return record, nil
		}
	}

	lookup := func() (referee.Record, bool, error) {
		return s.referees.GetByID(ctx, id)
	}

	record, found, err := lookup()
	if err != nil {
		return referee.Record{}, fmt.Errorf("read referee %d: %w", id, err)
	}
	if !found {
		if refreshed, refreshErr := s.refresh(ctx, "referee", id); refreshErr != nil {
			return referee.Record{}, refreshErr
		} else if refreshed {
			record, found, err = lookup()
			if err != nil {
				return referee.Record{}, fmt.Errorf("read referee %d: %w", id, err)
			}
		}
	}
	if !found {
		return referee.Record{ID: id, Name: "Unknown Referee"}, nil
	}

	s.cache.Set(ctx, key, record, ttlProfile)
	return record, nil
}

// ListTeams serves the tournament's team list with the short list TTL.
func (s *QueryService) ListTeams(ctx context.Context, tournamentID int64, season string) ([]team.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.ListTeams")
	defer span.End()

	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	value, err := s.cache.GetOrLoad(ctx, teamListCacheKey(tournamentID, season), ttlList, func(ctx context.Context) (any, error) {
		return s.teams.ListByTournament(ctx, tournamentID, season)
	})
	if err != nil {
		return nil, fmt.Errorf("list teams tournament %d: %w", tournamentID, err)
	}

	records, _ := value.([]team.Record)
	return records, nil
}

func (s *QueryService) ListPlayers(ctx context.Context, tournamentID int64, season string) ([]player.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.ListPlayers")
	defer span.End()

	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	value, err := s.cache.GetOrLoad(ctx, playerListCacheKey(tournamentID, season), ttlList, func(ctx context.Context) (any, error) {
		return s.players.ListByTournament(ctx, tournamentID, season)
	})
	if err != nil {
		return nil, fmt.Errorf("list players tournament %d: %w", tournamentID, err)
	}

	records, _ := value.([]player.Record)
	return records, nil
}

// GetStandings serves the tournament table with the heavy-aggregate TTL.
func (s *QueryService) GetStandings(ctx context.Context, tournamentID int64, season string) (standings.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetStandings")
	defer span.End()

	if tournamentID <= 0 {
		return standings.Record{}, fmt.Errorf("%w: standings tournament %d", ErrNotFound, tournamentID)
	}

	key := standingsCacheKey(tournamentID, season)
	if cached, ok := s.cache.Get(ctx, key); ok {
		if record, ok := cached.(standings.Record); ok {
			return record, nil
		}
	}

	lookup := func() (standings.Record, bool, error) {
		return s.standings.GetByTournament(ctx, tournamentID, season)
	}

	record, found, err := lookup()
	if err != nil {
		return standings.Record{}, fmt.Errorf("read standings %d: %w", tournamentID, err)
	}
	if !found {
		if refreshed, refreshErr := s.refresh(ctx, "standings", tournamentID); refreshErr != nil {
			return standings.Record{}, refreshErr
		} else if refreshed {
			record, found, err = lookup()
			if err != nil {
				return standings.Record{}, fmt.Errorf("read standings %d: %w", tournamentID, err)
			}
		}
	}
	if !found {
		return standings.Record{TournamentID: tournamentID, Season: season, Rows: []standings.Row{}}, nil
	}

	s.cache.Set(ctx, key, record, ttlAggregate)
	return record, nil
}

// refresh runs the single on-demand sync a store miss is allowed. An
// unknown entity propagates ErrNotFound; transient sync trouble degrades
// to the empty-shape fallback instead of failing the read.
func (s *QueryService) refresh(ctx context.Context, kind string, id int64) (bool, error) {
	if s.syncer == nil {
		return false, nil
	}

	err := s.syncer.SyncEntity(ctx, kind, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
	}

	s.logger.WarnContext(ctx, "on-demand sync failed, serving default shape",
		"kind", kind,
		"id", id,
		"error", err,
	)
	return false, nil
}
