package cup

import (
	"sort"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
	glicko2 "github.com/zelenin/go-glicko2"
)

const (
	seedRating    = 1500
	seedDeviation = 350
	seedSigma     = 0.06
)

// SeedTeams orders the entrants strongest first, rating each team with
// Glicko-2 over their finished head-to-head history. Teams without history
// keep the initial rating and fall back to name order.
func SeedTeams(teams []domain.Team, matches []domain.Match) []domain.Team {
	players := make(map[uuid.UUID]*glicko2.Player, len(teams))
	for _, team := range teams {
		players[team.ID] = glicko2.NewPlayer(glicko2.NewRating(seedRating, seedDeviation, seedSigma))
	}

	period := glicko2.NewRatingPeriod()
	for _, match := range matches {
		if !match.IsFinished() || len(match.Teams) != 2 {
			continue
		}
		home := players[match.Teams[0].TeamID]
		away := players[match.Teams[1].TeamID]
		if home == nil || away == nil {
			continue
		}
		homeGoals, awayGoals := match.Score(0), match.Score(1)
		switch {
		case homeGoals > awayGoals:
			period.AddMatch(home, away, glicko2.MATCH_RESULT_WIN)
		case awayGoals > homeGoals:
			period.AddMatch(home, away, glicko2.MATCH_RESULT_LOSS)
		default:
			period.AddMatch(home, away, glicko2.MATCH_RESULT_DRAW)
		}
	}
	period.Calculate()

	seeded := make([]domain.Team, len(teams))
	copy(seeded, teams)
	sort.SliceStable(seeded, func(i, j int) bool {
		ri := players[seeded[i].ID].Rating().R()
		rj := players[seeded[j].ID].Rating().R()
		if ri != rj {
			return ri > rj
		}
		return seeded[i].Name < seeded[j].Name
	})
	return seeded
}
