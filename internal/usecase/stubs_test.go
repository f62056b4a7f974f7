package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/nba-projection/internal/domain/injury"
	"github.com/riskibarqy/nba-projection/internal/domain/player"
	"github.com/riskibarqy/nba-projection/internal/domain/stattable"
)

func advancedTable(teamID int64, lastN int, off, def, pace float64) stattable.Table {
	return stattable.Table{
		TeamID:     teamID,
		LastNGames: lastN,
		Categories: map[stattable.Category]stattable.Record{
			stattable.CategoryAdvanced: {"OFF_RATING": off, "DEF_RATING": def, "PACE": pace},
		},
	}
}

type dashboardKey struct {
	teamID int64
	lastN  int
}

type stubDashboards struct {
	mu     sync.Mutex
	tables map[dashboardKey]stattable.Table
	errs   map[dashboardKey]error
	calls  []dashboardKey
}

func newStubDashboards() *stubDashboards {
	return &stubDashboards{
		tables: map[dashboardKey]stattable.Table{},
		errs:   map[dashboardKey]error{},
	}
}

func (s *stubDashboards) set(table stattable.Table) {
	s.tables[dashboardKey{teamID: table.TeamID, lastN: table.LastNGames}] = table
}

func (s *stubDashboards) FetchTeamDashboard(_ context.Context, teamID int64, lastN int) (stattable.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dashboardKey{teamID: teamID, lastN: lastN}
	s.calls = append(s.calls, key)
	if err := s.errs[key]; err != nil {
		return stattable.Table{}, err
	}
	table, ok := s.tables[key]
	if !ok {
		return stattable.Table{TeamID: teamID, LastNGames: lastN}, nil
	}
	return table, nil
}

type stubPlayers struct {
	rosters   map[int64][]player.RosterEntry
	rosterErr error
	stats     map[string]player.Stats
	statErrs  map[string]error
}

func (s *stubPlayers) ListRoster(_ context.Context, teamID int64, _ string) ([]player.RosterEntry, error) {
	if s.rosterErr != nil {
		return nil, s.rosterErr
	}
	return s.rosters[teamID], nil
}

func (s *stubPlayers) FetchSeasonStats(_ context.Context, entry player.RosterEntry, _ string) (player.Stats, bool, error) {
	if err := s.statErrs[entry.Name]; err != nil {
		return player.Stats{}, false, err
	}
	stats, ok := s.stats[entry.Name]
	return stats, ok, nil
}

type stubInjuries struct {
	entries map[int64][]injury.RawEntry
	err     error
	calls   int
}

func (s *stubInjuries) FetchTeamInjuries(_ context.Context, espnTeamID int64) ([]injury.RawEntry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[espnTeamID], nil
}
