package standings

import (
	"reflect"
	"testing"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

func team(name string) domain.Team {
	return domain.Team{ID: uuid.New(), Name: name}
}

func played(a, b domain.Team, goalsA, goalsB int) domain.Match {
	return domain.Match{
		ID:     uuid.New(),
		Status: domain.MatchCompleted,
		Type:   domain.MatchLeague,
		Teams: []domain.TeamSnapshot{
			{TeamID: a.ID, Name: a.Name, FinalScore: &goalsA},
			{TeamID: b.ID, Name: b.Name, FinalScore: &goalsB},
		},
		ParticipantTeamIDs: []uuid.UUID{a.ID, b.ID},
	}
}

func TestCalculate(t *testing.T) {
	teamA := team("Atlético Birra")
	teamB := team("Borrachos FC")
	teamC := team("Cebollitas")

	t.Run("points and goal difference", func(t *testing.T) {
		matches := []domain.Match{
			played(teamA, teamB, 3, 1),
			played(teamB, teamC, 2, 2),
			played(teamA, teamC, 0, 1),
		}
		table := Calculate(matches, []domain.Team{teamA, teamB, teamC})
		if len(table) != 3 {
			t.Fatalf("want 3 standings, got %d", len(table))
		}
		for _, st := range table {
			if st.GoalDifference != st.GoalsFor-st.GoalsAgainst {
				t.Errorf("%s: goal difference %d != %d-%d", st.TeamName, st.GoalDifference, st.GoalsFor, st.GoalsAgainst)
			}
			if st.Points != 3*st.Wins+st.Draws {
				t.Errorf("%s: points %d != 3*%d+%d", st.TeamName, st.Points, st.Wins, st.Draws)
			}
		}
		totalPoints := 0
		for _, st := range table {
			totalPoints += st.Points
		}
		// 2 decisive matches and 1 draw.
		if want := 3*2 + 2*1; totalPoints != want {
			t.Errorf("total points = %d, want %d", totalPoints, want)
		}
	})

	t.Run("positions are 1-indexed ranks", func(t *testing.T) {
		matches := []domain.Match{
			played(teamA, teamB, 2, 0),
			played(teamA, teamC, 2, 0),
			played(teamB, teamC, 1, 0),
		}
		table := Calculate(matches, []domain.Team{teamA, teamB, teamC})
		for i, st := range table {
			if st.Position != i+1 {
				t.Errorf("position[%d] = %d", i, st.Position)
			}
		}
		if table[0].TeamID != teamA.ID || table[1].TeamID != teamB.ID || table[2].TeamID != teamC.ID {
			t.Errorf("unexpected order: %v %v %v", table[0].TeamName, table[1].TeamName, table[2].TeamName)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		matches := []domain.Match{
			played(teamA, teamB, 1, 1),
			played(teamB, teamC, 0, 0),
			played(teamA, teamC, 2, 2),
		}
		teams := []domain.Team{teamA, teamB, teamC}
		first := Calculate(matches, teams)
		second := Calculate(matches, teams)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("two runs differ:\n%v\n%v", first, second)
		}
	})

	t.Run("full tie breaks on name", func(t *testing.T) {
		matches := []domain.Match{
			played(teamA, teamB, 1, 1),
		}
		table := Calculate(matches, []domain.Team{teamB, teamA})
		if table[0].TeamName != "Atlético Birra" {
			t.Errorf("lexicographic tie-break broken, got %s first", table[0].TeamName)
		}
	})

	t.Run("missing final score counts as zero", func(t *testing.T) {
		one := 1
		m := domain.Match{
			ID:     uuid.New(),
			Status: domain.MatchEvaluated,
			Teams: []domain.TeamSnapshot{
				{TeamID: teamA.ID, FinalScore: &one},
				{TeamID: teamB.ID}, // no score recorded
			},
			ParticipantTeamIDs: []uuid.UUID{teamA.ID, teamB.ID},
		}
		table := Calculate([]domain.Match{m}, []domain.Team{teamA, teamB})
		if table[0].TeamID != teamA.ID || table[0].Wins != 1 || table[1].Losses != 1 {
			t.Errorf("default-0 score not applied: %+v", table)
		}
	})

	t.Run("malformed matches are skipped", func(t *testing.T) {
		two := 2
		malformed := []domain.Match{
			// not finished yet
			{
				Status:             domain.MatchUpcoming,
				Teams:              played(teamA, teamB, 1, 0).Teams,
				ParticipantTeamIDs: []uuid.UUID{teamA.ID, teamB.ID},
			},
			// only one team snapshot
			{
				Status:             domain.MatchCompleted,
				Teams:              []domain.TeamSnapshot{{TeamID: teamA.ID, FinalScore: &two}},
				ParticipantTeamIDs: []uuid.UUID{teamA.ID, teamB.ID},
			},
			// missing participant ids
			{
				Status: domain.MatchCompleted,
				Teams:  played(teamA, teamB, 1, 0).Teams,
			},
		}
		table := Calculate(malformed, []domain.Team{teamA, teamB})
		for _, st := range table {
			if st.MatchesPlayed != 0 || st.Points != 0 {
				t.Errorf("malformed match leaked into %s: %+v", st.TeamName, st)
			}
		}
	})
}
