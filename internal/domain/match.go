package domain

import (
	"time"

	"github.com/google/uuid"
)

type MatchType string

const (
	MatchCasual             MatchType = "casual"
	MatchManual             MatchType = "manual"
	MatchCollaborative      MatchType = "collaborative"
	MatchByTeams            MatchType = "by_teams"
	MatchLeague             MatchType = "league"
	MatchCup                MatchType = "cup"
	MatchLeagueFinal        MatchType = "league_final"
	MatchIntergroupFriendly MatchType = "intergroup_friendly"
)

type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchActive    MatchStatus = "active"
	MatchCompleted MatchStatus = "completed"
	MatchEvaluated MatchStatus = "evaluated"
)

// FinalRound marks a league final in LeagueInfo.Round, never a regular round.
const FinalRound = 999

// RosterPlayer is the player snapshot embedded in a match at team-assignment
// time. Standings and stats read these snapshots, not the live documents.
type RosterPlayer struct {
	ID          uuid.UUID
	DisplayName string
	OVR         int
	Position    Position
	Photo       string
}

type TeamSnapshot struct {
	TeamID  uuid.UUID
	Name    string
	Jersey  string
	Players []RosterPlayer
	TeamOVR int
	// FinalScore is set once the match reaches completed.
	FinalScore *int
}

type CardType string

const (
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

type Card struct {
	PlayerID uuid.UUID
	TeamID   uuid.UUID
	Type     CardType
}

type GoalScorer struct {
	PlayerID uuid.UUID
	TeamID   uuid.UUID
	Count    int
}

type LeagueInfo struct {
	LeagueID uuid.UUID
	Round    int
}

type Match struct {
	ID                 uuid.UUID
	Date               time.Time
	Location           string
	Type               MatchType
	Status             MatchStatus
	Teams              []TeamSnapshot
	ParticipantTeamIDs []uuid.UUID
	GoalScorers        []GoalScorer
	Cards              []Card
	LeagueInfo         *LeagueInfo
	MatchSize          int
	CreatedBy          uuid.UUID
	CreatedAt          time.Time
}

// IsFinished reports whether the result of the match is final.
func (m Match) IsFinished() bool {
	return m.Status == MatchCompleted || m.Status == MatchEvaluated
}

// Score returns the final score of side i, counting a missing score as 0.
func (m Match) Score(i int) int {
	if i >= len(m.Teams) || m.Teams[i].FinalScore == nil {
		return 0
	}
	return *m.Teams[i].FinalScore
}
