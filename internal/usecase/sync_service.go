package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/cache"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
)

// Source is the provider contract the pipeline consumes. The bool result
// mirrors the envelope: false means the provider had nothing, not that
// the call failed.
type Source interface {
	TournamentList(ctx context.Context) ([]sourceapi.Tournament, bool, error)
	TeamList(ctx context.Context, tournamentID int64) ([]sourceapi.TeamSummary, bool, error)
	TeamStats(ctx context.Context, teamID, tournamentID int64) (sourceapi.TeamStats, bool, error)
	PlayerStats(ctx context.Context, playerID, tournamentID int64) (sourceapi.PlayerStats, bool, error)
	CoachStats(ctx context.Context, coachID, tournamentID int64) (sourceapi.CoachStats, bool, error)
	RefereeList(ctx context.Context, tournamentID int64) ([]sourceapi.RefereeSummary, bool, error)
	RefereeStats(ctx context.Context, refereeID, tournamentID int64) (sourceapi.RefereeStats, bool, error)
	GroupStandings(ctx context.Context, tournamentID int64) (sourceapi.GroupStandings, bool, error)
}

// Phase names the coarse stages a sync run moves through.
type Phase string

const (
	PhaseFetching Phase = "fetching"
	PhaseMapping  Phase = "mapping"
	PhaseStoring  Phase = "storing"
)

// ProgressObserver receives fire-and-forget phase updates. Observer
// behavior must never alter the run; panics are swallowed.
type ProgressObserver interface {
	Progress(phase Phase, current, total int)
}

type noopObserver struct{}

func (noopObserver) Progress(Phase, int, int) {}

// NoopObserver is the default when a caller passes none.
func NoopObserver() ProgressObserver { return noopObserver{} }

// SyncInput narrows a run. Before and After compare against the stored
// document's last_synced; entities with no stored document are always in
// scope because there is no timestamp to compare.
type SyncInput struct {
	TournamentID int64
	IncludeIDs   []int64
	ExcludeIDs   []int64
	Before       *time.Time
	After        *time.Time
	Observer     ProgressObserver
}

// errSkipped marks an entity the provider has no data for. Skips count
// neither as processed nor as errors.
var errSkipped = errors.New("skipped")

// SyncReport summarizes a run. A run with entity errors is still a
// completed run; there is no run-level failure state.
type SyncReport struct {
	Processed int
	Errors    []string
}

type ClearInput struct {
	TournamentID int64
	IDs          []int64
	ExcludeIDs   []int64
	Before       *time.Time
	After        *time.Time
}

// SyncService orchestrates provider fetches, canonical mapping and
// durable upserts. Entities are processed sequentially to respect the
// provider's implicit rate limits.
type SyncService struct {
	source    Source
	mapper    *Mapper
	teams     team.Repository
	players   player.Repository
	coaches   coach.Repository
	referees  referee.Repository
	standings standings.Repository
	cache     *cache.Store
	logger    *logging.Logger
	now       func() time.Time
}

func NewSyncService(
	source Source,
	mapper *Mapper,
	teams team.Repository,
	players player.Repository,
	coaches coach.Repository,
	referees referee.Repository,
	standingsRepo standings.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		source:    source,
		mapper:    mapper,
		teams:     teams,
		players:   players,
		coaches:   coaches,
		referees:  referees,
		standings: standingsRepo,
		cache:     cacheStore,
		logger:    logger,
		now:       time.Now,
	}
}

type teamWork struct {
	summary      sourceapi.TeamSummary
	tournamentID int64
}

type playerWork struct {
	ref          sourceapi.PlayerRef
	tournamentID int64
	season       string
}

type coachWork struct {
	id           int64
	tournamentID int64
}

type refereeWork struct {
	summary      sourceapi.RefereeSummary
	tournamentID int64
}

// workSet is the deduplicated union of entity IDs referenced across the
// tournaments in scope. Each entity is processed exactly once even when
// several tournaments reference it.
type workSet struct {
	tournaments []sourceapi.Tournament
	teams       map[int64]teamWork
	players     map[int64]playerWork
	coaches     map[int64]coachWork
	referees    map[int64]refereeWork
}

func (w *workSet) total() int {
	return len(w.teams) + len(w.players) + len(w.coaches) + len(w.referees) + len(w.tournaments)
}

// Sync runs a full pass. A missing tournament filter means every
// tournament the provider lists. Per-entity failures are recorded and the
// run continues; only an unreachable provider aborts.
func (s *SyncService) Sync(ctx context.Context, input SyncInput) (SyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.Sync")
	defer span.End()

	observer := input.Observer
	if observer == nil {
		observer = NoopObserver()
	}

	report := SyncReport{}
	runAt := s.now()
	runVersion := runAt.Unix()

	work, err := s.collect(ctx, input, observer, &report)
	if err != nil {
		return report, err
	}

	total := work.total()
	current := 0

	process := func(kind string, id int64, season string, fn func() error) {
		current++
		s.progress(observer, PhaseMapping, current, total)
		if !s.withinSyncWindow(ctx, input, kind, id, season) {
			return
		}
		if err := fn(); err != nil {
			if errors.Is(err, errSkipped) {
				return
			}
			report.Errors = append(report.Errors, fmt.Sprintf("%s %d: %v", kind, id, err))
			s.logger.WarnContext(ctx, "entity sync failed", "kind", kind, "id", id, "error", err)
			return
		}
		report.Processed++
	}

	for _, id := range sortedKeys(work.teams) {
		w := work.teams[id]
		process("team", id, "", func() error {
			return s.syncTeam(ctx, w, runAt, runVersion, observer, current, total)
		})
	}
	for _, id := range sortedKeys(work.players) {
		w := work.players[id]
		process("player", id, "", func() error {
			return s.syncPlayer(ctx, w, runAt, runVersion, observer, current, total)
		})
	}
	for _, id := range sortedKeys(work.coaches) {
		w := work.coaches[id]
		process("coach", id, "", func() error {
			return s.syncCoach(ctx, w, runAt, runVersion, observer, current, total)
		})
	}
	for _, id := range sortedKeys(work.referees) {
		w := work.referees[id]
		process("referee", id, "", func() error {
			return s.syncReferee(ctx, w, runAt, runVersion, observer, current, total)
		})
	}
	for _, tournament := range work.tournaments {
		t := tournament
		process("standings", t.ID, t.Season, func() error {
			return s.syncStandings(ctx, t, runAt, runVersion, observer, current, total)
		})
	}

	s.logger.InfoContext(ctx, "sync run complete",
		"processed", report.Processed,
		"errors", len(report.Errors),
	)

	return report, nil
}

// collect fetches tournament, team and referee lists and builds the
// deduplicated work set, applying include/exclude filters.
func (s *SyncService) collect(ctx context.Context, input SyncInput, observer ProgressObserver, report *SyncReport) (*workSet, error) {
	work := &workSet{
		teams:    make(map[int64]teamWork),
		players:  make(map[int64]playerWork),
		coaches:  make(map[int64]coachWork),
		referees: make(map[int64]refereeWork),
	}

	var tournaments []sourceapi.Tournament
	if input.TournamentID > 0 {
		tournaments = []sourceapi.Tournament{{ID: input.TournamentID}}
	} else {
		list, ok, err := s.source.TournamentList(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch tournament list: %v", ErrDependencyUnavailable, err)
		}
		if !ok {
			return work, nil
		}
		tournaments = list
	}
	work.tournaments = tournaments

	include := toIDSet(input.IncludeIDs)
	exclude := toIDSet(input.ExcludeIDs)
	selected := func(id int64) bool {
		if _, skip := exclude[id]; skip {
			return false
		}
		if len(include) == 0 {
			return true
		}
		_, keep := include[id]
		return keep
	}

	for i, tournament := range tournaments {
		s.progress(observer, PhaseFetching, i+1, len(tournaments))

		teams, ok, err := s.source.TeamList(ctx, tournament.ID)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("tournament %d: fetch team list: %v", tournament.ID, err))
		} else if ok {
			for _, summary := range teams {
				if summary.ID > 0 && selected(summary.ID) {
					work.teams[summary.ID] = teamWork{summary: summary, tournamentID: tournament.ID}
				}
				for _, ref := range summary.Players {
					if ref.ID > 0 && selected(ref.ID) {
						work.players[ref.ID] = playerWork{ref: ref, tournamentID: tournament.ID, season: tournament.Season}
					}
				}
				if summary.CoachID > 0 && selected(summary.CoachID) {
					work.coaches[summary.CoachID] = coachWork{id: summary.CoachID, tournamentID: tournament.ID}
				}
			}
		}

		referees, ok, err := s.source.RefereeList(ctx, tournament.ID)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("tournament %d: fetch referee list: %v", tournament.ID, err))
			continue
		}
		if ok {
			for _, summary := range referees {
				if summary.ID > 0 && selected(summary.ID) {
					work.referees[summary.ID] = refereeWork{summary: summary, tournamentID: tournament.ID}
				}
			}
		}
	}

	return work, nil
}

// withinSyncWindow applies the date-range narrowing. The bounds are
// strict, matching the clear filter: Before keeps documents last synced
// strictly before the cutoff, After strictly after.
func (s *SyncService) withinSyncWindow(ctx context.Context, input SyncInput, kind string, id int64, season string) bool {
	if input.Before == nil && input.After == nil {
		return true
	}
	lastSynced, found := s.storedSyncTime(ctx, kind, id, season)
	if !found {
		return true
	}
	if input.Before != nil && !lastSynced.Before(*input.Before) {
		return false
	}
	if input.After != nil && !lastSynced.After(*input.After) {
		return false
	}
	return true
}

func (s *SyncService) storedSyncTime(ctx context.Context, kind string, id int64, season string) (time.Time, bool) {
	switch kind {
	case "team":
		record, found, err := s.teams.GetByID(ctx, id)
		if err != nil || !found {
			return time.Time{}, false
		}
		return record.LastSynced, true
	case "player":
		record, found, err := s.players.GetByID(ctx, id)
		if err != nil || !found {
			return time.Time{}, false
		}
		return record.LastSynced, true
	case "coach":
		record, found, err := s.coaches.GetByID(ctx, id)
		if err != nil || !found {
			return time.Time{}, false
		}
		return record.LastSynced, true
	case "referee":
		record, found, err := s.referees.GetByID(ctx, id)
		if err != nil || !found {
			return time.Time{}, false
		}
		return record.LastSynced, true
	case "standings":
		record, found, err := s.standings.GetByTournament(ctx, id, season)
		if err != nil || !found {
			return time.Time{}, false
		}
		return record.LastSynced, true
	}
	return time.Time{}, false
}

func (s *SyncService) syncTeam(ctx context.Context, w teamWork, runAt time.Time, version int64, observer ProgressObserver, current, total int) error {
	stats, _, err := s.source.TeamStats(ctx, w.summary.ID, w.tournamentID)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	record, err := s.mapper.MapTeam(w.summary, stats, w.tournamentID)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	record.LastSynced = runAt
	record.SyncVersion = version

	s.progress(observer, PhaseStoring, current, total)
	if err := s.teams.Upsert(ctx, record); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	s.invalidate(ctx, teamCacheKey(record.ID), teamListCachePrefix)
	return nil
}

func (s *SyncService) syncPlayer(ctx context.Context, w playerWork, runAt time.Time, version int64, observer ProgressObserver, current, total int) error {
	stats, _, err := s.source.PlayerStats(ctx, w.ref.ID, w.tournamentID)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	record, err := s.mapper.MapPlayer(w.ref, stats, w.tournamentID, w.season)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	record.LastSynced = runAt
	record.SyncVersion = version

	s.progress(observer, PhaseStoring, current, total)
	if err := s.players.Upsert(ctx, record); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	s.invalidate(ctx, playerCacheKey(record.ID), playerListCachePrefix)
	return nil
}

func (s *SyncService) syncCoach(ctx context.Context, w coachWork, runAt time.Time, version int64, observer ProgressObserver, current, total int) error {
	stats, _, err := s.source.CoachStats(ctx, w.id, w.tournamentID)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}
	if stats.CoachID <= 0 {
		stats.CoachID = w.id
	}

	record, err := s.mapper.MapCoach(stats, w.tournamentID)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	record.LastSynced = runAt
	record.SyncVersion = version

	s.progress(observer, PhaseStoring, current, total)
	if err := s.coaches.Upsert(ctx, record); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	s.invalidate(ctx, coachCacheKey(record.ID), "")
	return nil
}

func (s *SyncService) syncReferee(ctx context.Context, w refereeWork, runAt time.Time, version int64, observer ProgressObserver, current, total int) error {
	stats, _, err := s.source.RefereeStats(ctx, w.summary.ID, w.tournamentID)
	if err != nil {
		return fmt.Errorf("fetch stats: %w", err)
	}

	record, err := s.mapper.MapReferee(w.summary, stats, w.tournamentID)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	record.LastSynced = runAt
	record.SyncVersion = version

	s.progress(observer, PhaseStoring, current, total)
	if err := s.referees.Upsert(ctx, record); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	s.invalidate(ctx, refereeCacheKey(record.ID), "")
	return nil
}

func (s *SyncService) syncStandings(ctx context.Context, tournament sourceapi.Tournament, runAt time.Time, version int64, observer ProgressObserver, current, total int) error {
	raw, ok, err := s.source.GroupStandings(ctx, tournament.ID)
	if err != nil {
		return fmt.Errorf("fetch standings: %w", err)
	}
	if !ok {
		// Provider covers no standings for this tournament; nothing to store.
		return errSkipped
	}

	record, err := s.mapper.MapStandings(tournament, raw)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	record.LastSynced = runAt
	record.SyncVersion = version

	s.progress(observer, PhaseStoring, current, total)
	if err := s.standings.Upsert(ctx, record); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	s.invalidate(ctx, standingsCacheKey(record.TournamentID, record.Season), standingsCachePrefix)
	return nil
}

// SyncEntity refreshes one entity on demand for the read path. The
// tournament scope is discovered by scanning the provider's lists.
func (s *SyncService) SyncEntity(ctx context.Context, kind string, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "SyncService.SyncEntity")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: entity id is required", ErrInvalidInput)
	}

	runAt := s.now()
	version := runAt.Unix()
	observer := NoopObserver()

	if kind == "standings" {
		return s.syncStandings(ctx, sourceapi.Tournament{ID: id}, runAt, version, observer, 1, 1)
	}

	tournaments, ok, err := s.source.TournamentList(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetch tournament list: %v", ErrDependencyUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: entity %s/%d", ErrNotFound, kind, id)
	}

	for _, tournament := range tournaments {
		switch kind {
		case "team", "player", "coach":
			teams, ok, err := s.source.TeamList(ctx, tournament.ID)
			if err != nil || !ok {
				continue
			}
			for _, summary := range teams {
				switch {
				case kind == "team" && summary.ID == id:
					return s.syncTeam(ctx, teamWork{summary: summary, tournamentID: tournament.ID}, runAt, version, observer, 1, 1)
				case kind == "coach" && summary.CoachID == id:
					return s.syncCoach(ctx, coachWork{id: id, tournamentID: tournament.ID}, runAt, version, observer, 1, 1)
				case kind == "player":
					for _, ref := range summary.Players {
						if ref.ID == id {
							return s.syncPlayer(ctx, playerWork{ref: ref, tournamentID: tournament.ID, season: tournament.Season}, runAt, version, observer, 1, 1)
						}
					}
				}
			}
		case "referee":
			referees, ok, err := s.source.RefereeList(ctx, tournament.ID)
			if err != nil || !ok {
				continue
			}
			for _, summary := range referees {
				if summary.ID == id {
					return s.syncReferee(ctx, refereeWork{summary: summary, tournamentID: tournament.ID}, runAt, version, observer, 1, 1)
				}
			}
		default:
			return fmt.Errorf("%w: unknown entity kind %q", ErrInvalidInput, kind)
		}
	}

	return fmt.Errorf("%w: entity %s/%d", ErrNotFound, kind, id)
}

// Clear removes filtered documents from all five collections in parallel
// and drops the matching cache namespaces.
func (s *SyncService) Clear(ctx context.Context, input ClearInput) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "SyncService.Clear")
	defer span.End()

	var (
		mu       sync.Mutex
		total    int64
		firstErr error
	)
	record := func(n int64, err error) {
		mu.Lock()
		defer mu.Unlock()
		total += n
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		n, err := s.teams.DeleteMatching(ctx, team.DeleteFilter{
			TournamentID: input.TournamentID,
			IDs:          input.IDs,
			ExcludeIDs:   input.ExcludeIDs,
			SyncedBefore: input.Before,
			SyncedAfter:  input.After,
		})
		record(n, err)
	})
	wg.Go(func() {
		n, err := s.players.DeleteMatching(ctx, player.DeleteFilter{
			TournamentID: input.TournamentID,
			IDs:          input.IDs,
			ExcludeIDs:   input.ExcludeIDs,
			SyncedBefore: input.Before,
			SyncedAfter:  input.After,
		})
		record(n, err)
	})
	wg.Go(func() {
		n, err := s.coaches.DeleteMatching(ctx, coach.DeleteFilter{
			TournamentID: input.TournamentID,
			IDs:          input.IDs,
			ExcludeIDs:   input.ExcludeIDs,
			SyncedBefore: input.Before,
			SyncedAfter:  input.After,
		})
		record(n, err)
	})
	wg.Go(func() {
		n, err := s.referees.DeleteMatching(ctx, referee.DeleteFilter{
			TournamentID: input.TournamentID,
			IDs:          input.IDs,
			ExcludeIDs:   input.ExcludeIDs,
			SyncedBefore: input.Before,
			SyncedAfter:  input.After,
		})
		record(n, err)
	})
	wg.Go(func() {
		n, err := s.standings.DeleteMatching(ctx, standings.DeleteFilter{
			TournamentID: input.TournamentID,
			SyncedBefore: input.Before,
			SyncedAfter:  input.After,
		})
		record(n, err)
	})
	wg.Wait()

	if s.cache != nil {
		for _, prefix := range []string{"team:", "teams:", "player:", "players:", "coach:", "referee:", "standings:"} {
			s.cache.DeletePrefix(ctx, prefix)
		}
	}

	return total, firstErr
}

// progress notifies the observer without letting it affect the run.
func (s *SyncService) progress(observer ProgressObserver, phase Phase, current, total int) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("progress observer panicked", "phase", string(phase), "panic", r)
		}
	}()
	observer.Progress(phase, current, total)
}

func (s *SyncService) invalidate(ctx context.Context, key, prefix string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, key)
	if prefix != "" {
		s.cache.DeletePrefix(ctx, prefix)
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func toIDSet(ids []int64) map[int64]struct{} {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
