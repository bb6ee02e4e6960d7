package domain

import (
	"time"

	"github.com/google/uuid"
)

type LeagueFormat string

const (
	FormatRoundRobin       LeagueFormat = "round_robin"
	FormatDoubleRoundRobin LeagueFormat = "double_round_robin"
)

type LeagueStatus string

const (
	LeagueUpcoming   LeagueStatus = "upcoming"
	LeagueInProgress LeagueStatus = "in_progress"
	LeagueCompleted  LeagueStatus = "completed"
)

type League struct {
	ID      uuid.UUID
	Name    string
	Format  LeagueFormat
	TeamIDs []uuid.UUID
	Status  LeagueStatus
	GroupID uuid.UUID

	ChampionTeamID     *uuid.UUID
	ChampionName       string
	RunnerUpTeamID     *uuid.UUID
	RunnerUpName       string
	RequiresTiebreaker bool
	FinalMatchID       *uuid.UUID

	CreatedAt time.Time
}

// Standing is derived from the league's matches on every read, never stored
// as source of truth.
type Standing struct {
	TeamID         uuid.UUID
	TeamName       string
	Jersey         string
	Position       int
	MatchesPlayed  int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}
