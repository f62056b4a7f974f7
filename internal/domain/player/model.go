package player

import (
	"fmt"
	"strings"
)

// Position is the roster position string as published by the stats provider
// (G, F, C and hybrids such as G-F or C-F).
type Position string

type DefensiveRole string

const (
	RoleRimProtector  DefensiveRole = "rim_protector"
	RolePointOfAttack DefensiveRole = "point_of_attack"
	RoleNone          DefensiveRole = "none"
)

// DefensiveRole infers a player's defensive assignment from the roster position.
func (p Position) DefensiveRole() DefensiveRole {
	switch strings.ToUpper(strings.TrimSpace(string(p))) {
	case "C", "C-F":
		return RoleRimProtector
	case "G", "PG":
		// commonteamroster only reports G. PG covers feeds using five-slot positions.
		return RolePointOfAttack
	default:
		return RoleNone
	}
}

type RosterEntry struct {
	ID       int64
	Name     string
	Position Position
}

// Stats is one player's season-to-date line used by the eligibility filters.
type Stats struct {
	PlayerID       int64
	Name           string
	Team           string
	Position       Position
	GamesPlayed    int
	Minutes        float64
	MinutesPerGame float64
	UsageRate      float64
	UsageLast10    float64
	NetRating      float64
	OffRating      float64
	DefRating      float64
	// StarterOverlap is the share of minutes shared with the starting unit, when known.
	StarterOverlap *float64
}

func (s Stats) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if s.GamesPlayed < 0 {
		return fmt.Errorf("games played must be >= 0")
	}
	if s.Minutes < 0 {
		return fmt.Errorf("minutes must be >= 0")
	}
	return nil
}

// MPG is season minutes per game, 0 when no games were played.
func (s Stats) MPG() float64 {
	if s.GamesPlayed <= 0 {
		return 0
	}
	return s.Minutes / float64(s.GamesPlayed)
}
