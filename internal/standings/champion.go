package standings

import (
	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

type ChampionResult struct {
	ChampionID         uuid.UUID
	ChampionName       string
	RunnerUpID         uuid.UUID
	RunnerUpName       string
	RequiresTiebreaker bool
}

// DetermineChampion picks the champion from a ranked table. The tie-break
// cascade between the top two is: points, head-to-head wins, head-to-head
// goal difference; a full tie requires a decisive match. Returns nil when the
// table has fewer than two teams.
func DetermineChampion(table []domain.Standing, matches []domain.Match) *ChampionResult {
	if len(table) < 2 {
		return nil
	}
	first, second := table[0], table[1]
	if first.Points != second.Points {
		return decided(first, second)
	}

	h2hWinsFirst, h2hWinsSecond, h2hDiff := headToHead(first.TeamID, second.TeamID, matches)
	if h2hWinsFirst > h2hWinsSecond {
		return decided(first, second)
	}
	if h2hWinsSecond > h2hWinsFirst {
		return decided(second, first)
	}
	if h2hDiff > 0 {
		return decided(first, second)
	}
	if h2hDiff < 0 {
		return decided(second, first)
	}

	return &ChampionResult{
		ChampionID:         first.TeamID,
		ChampionName:       first.TeamName,
		RunnerUpID:         second.TeamID,
		RunnerUpName:       second.TeamName,
		RequiresTiebreaker: true,
	}
}

func decided(champion, runnerUp domain.Standing) *ChampionResult {
	return &ChampionResult{
		ChampionID:   champion.TeamID,
		ChampionName: champion.TeamName,
		RunnerUpID:   runnerUp.TeamID,
		RunnerUpName: runnerUp.TeamName,
	}
}

// headToHead aggregates the finished matches played between exactly a and b.
// The returned diff is a's goals minus b's goals across those matches.
func headToHead(a, b uuid.UUID, matches []domain.Match) (winsA int, winsB int, diff int) {
	for _, match := range matches {
		if !countable(match) || !between(match, a, b) {
			continue
		}
		goalsHome := match.Score(0)
		goalsAway := match.Score(1)
		goalsA, goalsB := goalsHome, goalsAway
		if match.Teams[0].TeamID == b {
			goalsA, goalsB = goalsAway, goalsHome
		}
		diff += goalsA - goalsB
		if goalsA > goalsB {
			winsA++
		} else if goalsB > goalsA {
			winsB++
		}
	}
	return winsA, winsB, diff
}

func between(m domain.Match, a, b uuid.UUID) bool {
	x, y := m.ParticipantTeamIDs[0], m.ParticipantTeamIDs[1]
	return (x == a && y == b) || (x == b && y == a)
}
