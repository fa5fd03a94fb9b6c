package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pitchmetrics/pitchmetrics/external/sourceapi"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/coach"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/player"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/referee"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/standings"
	"github.com/pitchmetrics/pitchmetrics/internal/domain/team"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/cache"
)

type stubSource struct {
	tournaments    func(ctx context.Context) ([]sourceapi.Tournament, bool, error)
	teamList       func(ctx context.Context, tournamentID int64) ([]sourceapi.TeamSummary, bool, error)
	teamStats      func(ctx context.Context, teamID, tournamentID int64) (sourceapi.TeamStats, bool, error)
	playerStats    func(ctx context.Context, playerID, tournamentID int64) (sourceapi.PlayerStats, bool, error)
	coachStats     func(ctx context.Context, coachID, tournamentID int64) (sourceapi.CoachStats, bool, error)
	refereeList    func(ctx context.Context, tournamentID int64) ([]sourceapi.RefereeSummary, bool, error)
	refereeStats   func(ctx context.Context, refereeID, tournamentID int64) (sourceapi.RefereeStats, bool, error)
	groupStandings func(ctx context.Context, tournamentID int64) (sourceapi.GroupStandings, bool, error)
}

func (s *stubSource) TournamentList(ctx context.Context) ([]sourceapi.Tournament, bool, error) {
	if s.tournaments == nil {
		return nil, false, nil
	}
	return s.tournaments(ctx)
}

func (s *stubSource) TeamList(ctx context.Context, tournamentID int64) ([]sourceapi.TeamSummary, bool, error) {
	if s.teamList == nil {
		return nil, false, nil
	}
	return s.teamList(ctx, tournamentID)
}

func (s *stubSource) TeamStats(ctx context.Context, teamID, tournamentID int64) (sourceapi.TeamStats, bool, error) {
	if s.teamStats == nil {
		return sourceapi.TeamStats{}, false, nil
	}
	return s.teamStats(ctx, teamID, tournamentID)
}

func (s *stubSource) PlayerStats(ctx context.Context, playerID, tournamentID int64) (sourceapi.PlayerStats, bool, error) {
	if s.playerStats == nil {
		return sourceapi.PlayerStats{}, false, nil
	}
	return s.playerStats(ctx, playerID, tournamentID)
}

func (s *stubSource) CoachStats(ctx context.Context, coachID, tournamentID int64) (sourceapi.CoachStats, bool, error) {
	if s.coachStats == nil {
		return sourceapi.CoachStats{}, false, nil
	}
	return s.coachStats(ctx, coachID, tournamentID)
}

func (s *stubSource) RefereeList(ctx context.Context, tournamentID int64) ([]sourceapi.RefereeSummary, bool, error) {
	if s.refereeList == nil {
		return nil, false, nil
	}
	return s.refereeList(ctx, tournamentID)
}

func (s *stubSource) RefereeStats(ctx context.Context, refereeID, tournamentID int64) (sourceapi.RefereeStats, bool, error) {
	if s.refereeStats == nil {
		return sourceapi.RefereeStats{}, false, nil
	}
	return s.refereeStats(ctx, refereeID, tournamentID)
}

func (s *stubSource) GroupStandings(ctx context.Context, tournamentID int64) (sourceapi.GroupStandings, bool, error) {
	if s.groupStandings == nil {
		return sourceapi.GroupStandings{}, false, nil
	}
	return s.groupStandings(ctx, tournamentID)
}

type teamRepoStub struct {
	mu      sync.Mutex
	records map[int64]team.Record
	upserts int
}

func newTeamRepoStub() *teamRepoStub {
	return &teamRepoStub{records: map[int64]team.Record{}}
}

func (r *teamRepoStub) Upsert(_ context.Context, record team.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	r.upserts++
	return nil
}

func (r *teamRepoStub) GetByID(_ context.Context, id int64) (team.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	return record, ok, nil
}

func (r *teamRepoStub) ListByTournament(_ context.Context, tournamentID int64, season string) ([]team.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []team.Record
	for _, record := range r.records {
		if record.TournamentID == tournamentID && (season == "" || record.Season == season) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *teamRepoStub) DeleteMatching(_ context.Context, filter team.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id := range r.records {
		if matchesIDFilter(id, filter.IDs, filter.ExcludeIDs) {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}

type playerRepoStub struct {
	mu      sync.Mutex
	records map[int64]player.Record
}

func newPlayerRepoStub() *playerRepoStub {
	return &playerRepoStub{records: map[int64]player.Record{}}
}

func (r *playerRepoStub) Upsert(_ context.Context, record player.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *playerRepoStub) GetByID(_ context.Context, id int64) (player.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	return record, ok, nil
}

func (r *playerRepoStub) ListByTournament(_ context.Context, tournamentID int64, season string) ([]player.Record, error) {
	return nil, nil
}

func (r *playerRepoStub) DeleteMatching(_ context.Context, filter player.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id := range r.records {
		if matchesIDFilter(id, filter.IDs, filter.ExcludeIDs) {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}

type coachRepoStub struct {
	mu      sync.Mutex
	records map[int64]coach.Record
}

func newCoachRepoStub() *coachRepoStub {
	return &coachRepoStub{records: map[int64]coach.Record{}}
}

func (r *coachRepoStub) Upsert(_ context.Context, record coach.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *coachRepoStub) GetByID(_ context.Context, id int64) (coach.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	return record, ok, nil
}

func (r *coachRepoStub) ListByTournament(_ context.Context, tournamentID int64) ([]coach.Record, error) {
	return nil, nil
}

func (r *coachRepoStub) DeleteMatching(_ context.Context, filter coach.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id := range r.records {
		if matchesIDFilter(id, filter.IDs, filter.ExcludeIDs) {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}

type refereeRepoStub struct {
	mu      sync.Mutex
	records map[int64]referee.Record
}

func newRefereeRepoStub() *refereeRepoStub {
	return &refereeRepoStub{records: map[int64]referee.Record{}}
}

func (r *refereeRepoStub) Upsert(_ context.Context, record referee.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *refereeRepoStub) GetByID(_ context.Context, id int64) (referee.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	return record, ok, nil
}

func (r *refereeRepoStub) ListByTournament(_ context.Context, tournamentID int64) ([]referee.Record, error) {
	return nil, nil
}

func (r *refereeRepoStub) DeleteMatching(_ context.Context, filter referee.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id := range r.records {
		if matchesIDFilter(id, filter.IDs, filter.ExcludeIDs) {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}

type standingsRepoStub struct {
	mu      sync.Mutex
	records map[int64]standings.Record
}

func newStandingsRepoStub() *standingsRepoStub {
	return &standingsRepoStub{records: map[int64]standings.Record{}}
}

func (r *standingsRepoStub) Upsert(_ context.Context, record standings.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.TournamentID] = record
	return nil
}

func (r *standingsRepoStub) GetByTournament(_ context.Context, tournamentID int64, season string) (standings.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[tournamentID]
	return record, ok, nil
}

func (r *standingsRepoStub) DeleteMatching(_ context.Context, filter standings.DeleteFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id := range r.records {
		if filter.TournamentID == 0 || filter.TournamentID == id {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}

func matchesIDFilter(id int64, ids, excludeIDs []int64) bool {
	for _, excluded := range excludeIDs {
		if id == excluded {
			return false
		}
	}
	if len(ids) == 0 {
		return true
	}
	for _, wanted := range ids {
		if id == wanted {
			return true
		}
	}
	return false
}

type syncFixture struct {
	source    *stubSource
	teams     *teamRepoStub
	players   *playerRepoStub
	coaches   *coachRepoStub
	referees  *refereeRepoStub
	standings *standingsRepoStub
	cache     *cache.Store
	service   *SyncService
}

func newSyncFixture(source *stubSource) *syncFixture {
	f := &syncFixture{
		source:    source,
		teams:     newTeamRepoStub(),
		players:   newPlayerRepoStub(),
		coaches:   newCoachRepoStub(),
		referees:  newRefereeRepoStub(),
		standings: newStandingsRepoStub(),
		cache:     cache.NewStore(),
	}
	f.service = NewSyncService(
		source,
		NewMapper(nil, nil, nil),
		f.teams, f.players, f.coaches, f.referees, f.standings,
		f.cache,
		nil,
	)
	return f
}

func threeTeamSource(failingTeamID int64) *stubSource {
	return &stubSource{
		teamList: func(_ context.Context, tournamentID int64) ([]sourceapi.TeamSummary, bool, error) {
			return []sourceapi.TeamSummary{
				{ID: 1, Name: "One"},
				{ID: 2, Name: "Two"},
				{ID: 3, Name: "Three"},
			}, true, nil
		},
		teamStats: func(_ context.Context, teamID, _ int64) (sourceapi.TeamStats, bool, error) {
			if teamID == failingTeamID {
				return sourceapi.TeamStats{}, false, fmt.Errorf("stats endpoint exploded")
			}
			return sourceapi.TeamStats{TeamID: teamID, Matches: 10}, true, nil
		},
	}
}

func TestSync_PartialFailureStillCompletes(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(threeTeamSource(2))

	report, err := f.service.Sync(context.Background(), SyncInput{TournamentID: 17})
	require.NoError(t, err, "a partial run is a normal outcome")
	require.Equal(t, 2, report.Processed)
	require.Len(t, report.Errors, 1)
	require.Contains(t, report.Errors[0], "team 2")

	_, ok, _ := f.teams.GetByID(context.Background(), 1)
	require.True(t, ok)
	_, ok, _ = f.teams.GetByID(context.Background(), 2)
	require.False(t, ok, "failed entity must not be stored")
}

func TestSync_FatalWhenTournamentListUnreachable(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(&stubSource{
		tournaments: func(context.Context) ([]sourceapi.Tournament, bool, error) {
			return nil, false, fmt.Errorf("connection refused")
		},
	})

	_, err := f.service.Sync(context.Background(), SyncInput{})
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestSync_UnionsEntitiesAcrossTournaments(t *testing.T) {
	t.Parallel()

	var statsCalls sync.Map
	source := &stubSource{
		tournaments: func(context.Context) ([]sourceapi.Tournament, bool, error) {
			return []sourceapi.Tournament{{ID: 17, Season: "2025/2026"}, {ID: 7, Season: "2025/2026"}}, true, nil
		},
		teamList: func(_ context.Context, tournamentID int64) ([]sourceapi.TeamSummary, bool, error) {
			// Team 44 plays in both tournaments.
			return []sourceapi.TeamSummary{{ID: 44, Name: "Liverpool"}}, true, nil
		},
		teamStats: func(_ context.Context, teamID, tournamentID int64) (sourceapi.TeamStats, bool, error) {
			statsCalls.Store(fmt.Sprintf("%d-%d", teamID, tournamentID), true)
			return sourceapi.TeamStats{TeamID: teamID}, true, nil
		},
	}
	f := newSyncFixture(source)

	report, err := f.service.Sync(context.Background(), SyncInput{})
	require.NoError(t, err)
	require.Equal(t, 1, report.Processed, "shared team must be processed exactly once")

	calls := 0
	statsCalls.Range(func(any, any) bool { calls++; return true })
	require.Equal(t, 1, calls)
}

func TestSync_IncludeExcludeFilters(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(threeTeamSource(0))

	report, err := f.service.Sync(context.Background(), SyncInput{
		TournamentID: 17,
		IncludeIDs:   []int64{1, 3},
		ExcludeIDs:   []int64{3},
	})
	require.NoError(t, err)
	require.Equal(t, 1, report.Processed)

	_, ok, _ := f.teams.GetByID(context.Background(), 1)
	require.True(t, ok)
	_, ok, _ = f.teams.GetByID(context.Background(), 3)
	require.False(t, ok)
}

func TestSync_BeforeCutoffRefreshesOnlyStaleDocuments(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(threeTeamSource(0))
	ctx := context.Background()

	stale := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.teams.Upsert(ctx, team.Record{ID: 1, Name: "One", LastSynced: stale}))
	require.NoError(t, f.teams.Upsert(ctx, team.Record{ID: 2, Name: "Two", LastSynced: fresh}))
	// Team 3 has never been stored and must stay in scope.

	runAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return runAt }

	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	report, err := f.service.Sync(ctx, SyncInput{TournamentID: 17, Before: &cutoff})
	require.NoError(t, err)
	require.Empty(t, report.Errors)
	require.Equal(t, 2, report.Processed, "stale and never-stored teams only")

	one, _, _ := f.teams.GetByID(ctx, 1)
	require.Equal(t, runAt, one.LastSynced, "stale document must be refreshed")
	two, _, _ := f.teams.GetByID(ctx, 2)
	require.Equal(t, fresh, two.LastSynced, "fresh document must be untouched")
	_, ok, _ := f.teams.GetByID(ctx, 3)
	require.True(t, ok, "never-stored team must still sync")
}

func TestSync_AfterCutoffRefreshesOnlyRecentDocuments(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(threeTeamSource(0))
	ctx := context.Background()

	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.teams.Upsert(ctx, team.Record{ID: 1, Name: "One", LastSynced: old}))
	require.NoError(t, f.teams.Upsert(ctx, team.Record{ID: 2, Name: "Two", LastSynced: recent}))

	runAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return runAt }

	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	report, err := f.service.Sync(ctx, SyncInput{TournamentID: 17, After: &cutoff})
	require.NoError(t, err)
	require.Equal(t, 2, report.Processed, "recent and never-stored teams only")

	one, _, _ := f.teams.GetByID(ctx, 1)
	require.Equal(t, old, one.LastSynced, "document synced before the cutoff must be untouched")
	two, _, _ := f.teams.GetByID(ctx, 2)
	require.Equal(t, runAt, two.LastSynced)
}

type recordingObserver struct {
	mu     sync.Mutex
	phases []Phase
}

func (o *recordingObserver) Progress(phase Phase, current, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phases = append(o.phases, phase)
}

type panickyObserver struct{}

func (panickyObserver) Progress(Phase, int, int) { panic("observer bug") }

func TestSync_ObserverSeesPhasesAndCannotBreakTheRun(t *testing.T) {
	t.Parallel()

	observer := &recordingObserver{}
	f := newSyncFixture(threeTeamSource(0))

	report, err := f.service.Sync(context.Background(), SyncInput{TournamentID: 17, Observer: observer})
	require.NoError(t, err)
	require.Equal(t, 3, report.Processed)

	observer.mu.Lock()
	defer observer.mu.Unlock()
	seen := map[Phase]bool{}
	for _, phase := range observer.phases {
		seen[phase] = true
	}
	require.True(t, seen[PhaseFetching] && seen[PhaseMapping] && seen[PhaseStoring], "phases seen: %v", observer.phases)

	// A panicking observer must not affect the outcome.
	f2 := newSyncFixture(threeTeamSource(0))
	report2, err := f2.service.Sync(context.Background(), SyncInput{TournamentID: 17, Observer: panickyObserver{}})
	require.NoError(t, err)
	require.Equal(t, report.Processed, report2.Processed)
}

func TestSync_IsIdempotentForUnchangedInput(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(threeTeamSource(0))
	fixed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return fixed }

	_, err := f.service.Sync(context.Background(), SyncInput{TournamentID: 17})
	require.NoError(t, err)
	first, ok, _ := f.teams.GetByID(context.Background(), 1)
	require.True(t, ok)

	_, err = f.service.Sync(context.Background(), SyncInput{TournamentID: 17})
	require.NoError(t, err)
	second, ok, _ := f.teams.GetByID(context.Background(), 1)
	require.True(t, ok)

	require.Equal(t, first, second, "re-sync with unchanged raw input must overwrite byte-identically")
	require.Len(t, f.teams.records, 3, "no duplication across runs")
}

func TestSync_SyncsPlayersCoachesRefereesAndStandings(t *testing.T) {
	t.Parallel()

	source := &stubSource{
		teamList: func(_ context.Context, tournamentID int64) ([]sourceapi.TeamSummary, bool, error) {
			return []sourceapi.TeamSummary{{
				ID: 44, Name: "Liverpool", CoachID: 301,
				Players: []sourceapi.PlayerRef{{ID: 900, Name: "M. Salah", Position: "RW"}},
			}}, true, nil
		},
		teamStats: func(_ context.Context, teamID, _ int64) (sourceapi.TeamStats, bool, error) {
			return sourceapi.TeamStats{TeamID: teamID}, true, nil
		},
		playerStats: func(_ context.Context, playerID, _ int64) (sourceapi.PlayerStats, bool, error) {
			return sourceapi.PlayerStats{PlayerID: playerID, Matches: 10}, true, nil
		},
		coachStats: func(_ context.Context, coachID, _ int64) (sourceapi.CoachStats, bool, error) {
			return sourceapi.CoachStats{CoachID: coachID, Name: "A. Slot"}, true, nil
		},
		refereeList: func(_ context.Context, tournamentID int64) ([]sourceapi.RefereeSummary, bool, error) {
			return []sourceapi.RefereeSummary{{ID: 88, Name: "M. Oliver"}}, true, nil
		},
		refereeStats: func(_ context.Context, refereeID, _ int64) (sourceapi.RefereeStats, bool, error) {
			return sourceapi.RefereeStats{RefereeID: refereeID}, true, nil
		},
		groupStandings: func(_ context.Context, tournamentID int64) (sourceapi.GroupStandings, bool, error) {
			return sourceapi.GroupStandings{
				TournamentID: tournamentID,
				Stages: []sourceapi.StandingsStage{{Groups: []sourceapi.StandingsGroup{{Rows: []sourceapi.StandingRow{
					{Rank: 1, TeamID: 44, GoalsFor: 5, GoalsAgainst: 2},
				}}}}},
			}, true, nil
		},
	}
	f := newSyncFixture(source)

	report, err := f.service.Sync(context.Background(), SyncInput{TournamentID: 17})
	require.NoError(t, err)
	require.Empty(t, report.Errors)
	// team + player + coach + referee + standings.
	require.Equal(t, 5, report.Processed)

	p, ok, _ := f.players.GetByID(context.Background(), 900)
	require.True(t, ok)
	require.Equal(t, player.PositionForward, p.Position)

	st, ok, _ := f.standings.GetByTournament(context.Background(), 17, "")
	require.True(t, ok)
	require.Equal(t, 3, st.Rows[0].GoalsDiff)
}

func TestSyncEntity_UnknownEntityIsNotFound(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(&stubSource{
		tournaments: func(context.Context) ([]sourceapi.Tournament, bool, error) {
			return []sourceapi.Tournament{{ID: 17}}, true, nil
		},
		teamList: func(context.Context, int64) ([]sourceapi.TeamSummary, bool, error) {
			return []sourceapi.TeamSummary{{ID: 1, Name: "One"}}, true, nil
		},
	})

	err := f.service.SyncEntity(context.Background(), "team", 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSyncEntity_RefreshesSingleTeam(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(&stubSource{
		tournaments: func(context.Context) ([]sourceapi.Tournament, bool, error) {
			return []sourceapi.Tournament{{ID: 17}}, true, nil
		},
		teamList: func(context.Context, int64) ([]sourceapi.TeamSummary, bool, error) {
			return []sourceapi.TeamSummary{{ID: 44, Name: "Liverpool"}}, true, nil
		},
		teamStats: func(_ context.Context, teamID, _ int64) (sourceapi.TeamStats, bool, error) {
			return sourceapi.TeamStats{TeamID: teamID}, true, nil
		},
	})

	require.NoError(t, f.service.SyncEntity(context.Background(), "team", 44))

	record, ok, _ := f.teams.GetByID(context.Background(), 44)
	require.True(t, ok)
	require.Equal(t, "Liverpool", record.Name)
}

func TestClear_RemovesAcrossCollectionsAndFlushesCache(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(&stubSource{})
	ctx := context.Background()

	require.NoError(t, f.teams.Upsert(ctx, team.Record{ID: 1, Name: "One"}))
	require.NoError(t, f.teams.Upsert(ctx, team.Record{ID: 2, Name: "Two"}))
	require.NoError(t, f.players.Upsert(ctx, player.Record{ID: 1, Name: "P"}))
	require.NoError(t, f.coaches.Upsert(ctx, coach.Record{ID: 1, Name: "C"}))
	f.cache.Set(ctx, teamCacheKey(1), team.Record{ID: 1}, time.Minute)

	removed, err := f.service.Clear(ctx, ClearInput{IDs: []int64{1}})
	require.NoError(t, err)
	require.EqualValues(t, 3, removed)

	_, ok, _ := f.teams.GetByID(ctx, 2)
	require.True(t, ok, "unmatched rows survive")
	_, cached := f.cache.Get(ctx, teamCacheKey(1))
	require.False(t, cached, "cache must be flushed")
}
