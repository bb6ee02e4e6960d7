package standings

import (
	"sort"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Calculate folds every finished match into one standing per team and ranks
// the result. Matches that are not finished, or that don't carry exactly two
// team snapshots and two participant ids, are skipped so that incomplete data
// never corrupts the table. A missing final score counts as 0.
func Calculate(matches []domain.Match, teams []domain.Team) []domain.Standing {
	byTeam := make(map[uuid.UUID]*domain.Standing, len(teams))
	for _, team := range teams {
		byTeam[team.ID] = &domain.Standing{
			TeamID:   team.ID,
			TeamName: team.Name,
			Jersey:   team.Jersey,
		}
	}
	for _, match := range matches {
		if !countable(match) {
			continue
		}
		home := byTeam[match.Teams[0].TeamID]
		away := byTeam[match.Teams[1].TeamID]
		if home == nil || away == nil {
			continue
		}
		homeGoals := match.Score(0)
		awayGoals := match.Score(1)

		home.MatchesPlayed++
		away.MatchesPlayed++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals
		switch {
		case homeGoals > awayGoals:
			home.Wins++
			home.Points += pointsWin
			away.Losses++
		case awayGoals > homeGoals:
			away.Wins++
			away.Points += pointsWin
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points += pointsDraw
			away.Points += pointsDraw
		}
		home.GoalDifference = home.GoalsFor - home.GoalsAgainst
		away.GoalDifference = away.GoalsFor - away.GoalsAgainst
	}

	table := make([]domain.Standing, 0, len(teams))
	for _, team := range teams {
		table = append(table, *byTeam[team.ID])
	}
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamName < b.TeamName
	})
	for i := range table {
		table[i].Position = i + 1
	}
	return table
}

func countable(m domain.Match) bool {
	return m.IsFinished() &&
		len(m.Teams) == 2 &&
		len(m.ParticipantTeamIDs) == 2
}
