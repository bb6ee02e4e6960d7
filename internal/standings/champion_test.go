package standings

import (
	"testing"

	"github.com/Poio-911/pateadores/internal/domain"
)

func TestDetermineChampion(t *testing.T) {
	teamA := team("Atlético Birra")
	teamB := team("Borrachos FC")
	teamC := team("Cebollitas")
	teamD := team("Deportivo Asado")
	all := []domain.Team{teamA, teamB, teamC, teamD}

	t.Run("nil when fewer than two standings", func(t *testing.T) {
		if got := DetermineChampion([]domain.Standing{{TeamName: "solo"}}, nil); got != nil {
			t.Errorf("want nil, got %+v", got)
		}
	})

	t.Run("points decide", func(t *testing.T) {
		matches := []domain.Match{
			played(teamA, teamB, 2, 0),
		}
		table := Calculate(matches, []domain.Team{teamA, teamB})
		res := DetermineChampion(table, matches)
		if res == nil || res.RequiresTiebreaker || res.ChampionID != teamA.ID || res.RunnerUpID != teamB.ID {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("head-to-head wins decide", func(t *testing.T) {
		// A and B level on points; A won the direct clash.
		matches := []domain.Match{
			played(teamA, teamB, 1, 0),
			played(teamB, teamC, 5, 0),
			played(teamA, teamD, 1, 0),
			played(teamB, teamD, 1, 0),
			played(teamA, teamC, 0, 1),
		}
		table := Calculate(matches, all)
		if table[0].Points != table[1].Points {
			t.Fatalf("setup broken: top two not level on points: %+v", table[:2])
		}
		res := DetermineChampion(table, matches)
		if res == nil || res.RequiresTiebreaker || res.ChampionID != teamA.ID {
			t.Fatalf("head-to-head wins ignored: %+v", res)
		}
	})

	t.Run("head-to-head goal difference decides", func(t *testing.T) {
		// The two direct clashes split 2-0 / 1-0, so H2H wins are level but A
		// is +1 on the direct goal difference.
		matches := []domain.Match{
			played(teamA, teamB, 2, 0),
			played(teamB, teamA, 1, 0),
			played(teamA, teamC, 1, 0),
			played(teamB, teamC, 1, 0),
		}
		table := Calculate(matches, []domain.Team{teamA, teamB, teamC})
		res := DetermineChampion(table, matches)
		if res == nil || res.RequiresTiebreaker || res.ChampionID != teamA.ID {
			t.Fatalf("head-to-head goal difference ignored: %+v", res)
		}
	})

	t.Run("complete tie requires tiebreaker", func(t *testing.T) {
		matches := []domain.Match{
			played(teamA, teamB, 1, 1),
			played(teamA, teamC, 2, 0),
			played(teamB, teamC, 2, 0),
		}
		table := Calculate(matches, []domain.Team{teamA, teamB, teamC})
		res := DetermineChampion(table, matches)
		if res == nil || !res.RequiresTiebreaker {
			t.Fatalf("want tiebreaker, got %+v", res)
		}
		gotA := res.ChampionID == teamA.ID || res.RunnerUpID == teamA.ID
		gotB := res.ChampionID == teamB.ID || res.RunnerUpID == teamB.ID
		if !gotA || !gotB {
			t.Errorf("tiebreaker does not identify the tied pair: %+v", res)
		}
	})

	t.Run("full round robin with decisive head-to-head", func(t *testing.T) {
		// A and B finish level on 6 points over the full round robin. B tops
		// the raw table on goal difference, but A won the direct clash, so A
		// is champion.
		matches := []domain.Match{
			played(teamA, teamB, 1, 0),
			played(teamA, teamC, 0, 1),
			played(teamA, teamD, 2, 0),
			played(teamB, teamC, 2, 0),
			played(teamB, teamD, 2, 0),
			played(teamC, teamD, 0, 1),
		}
		table := Calculate(matches, all)
		if table[0].TeamID != teamB.ID || table[0].Points != 6 || table[1].Points != 6 {
			t.Fatalf("setup broken: %+v", table)
		}
		res := DetermineChampion(table, matches)
		if res == nil || res.RequiresTiebreaker {
			t.Fatalf("want decisive champion, got %+v", res)
		}
		if res.ChampionID != teamA.ID || res.RunnerUpID != teamB.ID {
			t.Errorf("head-to-head should give it to A over B: %+v", res)
		}
	})
}
