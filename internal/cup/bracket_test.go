package cup

import (
	"testing"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeams(names ...string) []domain.Team {
	teams := make([]domain.Team, 0, len(names))
	for _, name := range names {
		teams = append(teams, domain.Team{ID: uuid.New(), Name: name})
	}
	return teams
}

func beat(winner, loser domain.Team, goalsW, goalsL int) domain.Match {
	return domain.Match{
		ID:     uuid.New(),
		Status: domain.MatchCompleted,
		Teams: []domain.TeamSnapshot{
			{TeamID: winner.ID, Name: winner.Name, FinalScore: &goalsW},
			{TeamID: loser.ID, Name: loser.Name, FinalScore: &goalsL},
		},
		ParticipantTeamIDs: []uuid.UUID{winner.ID, loser.ID},
	}
}

func TestGenerateBracket(t *testing.T) {
	t.Run("rejects odd sizes", func(t *testing.T) {
		_, err := GenerateBracket(newTeams("a", "b", "c"), nil)
		assert.ErrorIs(t, err, ErrBadSize)
	})

	t.Run("four teams make semis plus an empty final", func(t *testing.T) {
		teams := newTeams("a", "b", "c", "d")
		bracket, err := GenerateBracket(teams, nil)
		require.NoError(t, err)
		require.Len(t, bracket, 3)

		assert.Equal(t, domain.SemiFinal, bracket[0].Round)
		assert.Equal(t, domain.SemiFinal, bracket[1].Round)
		assert.Equal(t, domain.Final, bracket[2].Round)
		assert.Nil(t, bracket[2].Home)
		assert.Nil(t, bracket[2].Away)
		for _, m := range bracket[:2] {
			require.NotNil(t, m.Home)
			require.NotNil(t, m.Away)
		}
	})

	t.Run("stronger teams are kept apart", func(t *testing.T) {
		teams := newTeams("fuerte", "medio", "flojo", "peor")
		history := []domain.Match{
			beat(teams[0], teams[1], 3, 0),
			beat(teams[0], teams[2], 3, 0),
			beat(teams[0], teams[3], 5, 0),
			beat(teams[1], teams[2], 2, 1),
			beat(teams[1], teams[3], 2, 0),
			beat(teams[2], teams[3], 1, 0),
		}
		bracket, err := GenerateBracket(teams, history)
		require.NoError(t, err)

		// Top seed opens against the bottom seed.
		first := bracket[0]
		require.NotNil(t, first.Home)
		require.NotNil(t, first.Away)
		assert.Equal(t, "fuerte", first.Home.Name)
		assert.Equal(t, "peor", first.Away.Name)
	})

	t.Run("sixteen teams pre-create every round", func(t *testing.T) {
		names := make([]string, 16)
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		bracket, err := GenerateBracket(newTeams(names...), nil)
		require.NoError(t, err)
		counts := make(map[domain.BracketRound]int)
		for _, m := range bracket {
			counts[m.Round]++
		}
		assert.Equal(t, 8, counts[domain.RoundOf16])
		assert.Equal(t, 4, counts[domain.QuarterFinal])
		assert.Equal(t, 2, counts[domain.SemiFinal])
		assert.Equal(t, 1, counts[domain.Final])
	})
}

func TestAdvance(t *testing.T) {
	teams := newTeams("a", "b", "c", "d")
	bracket, err := GenerateBracket(teams, nil)
	require.NoError(t, err)

	winner1 := bracket[0].Home.TeamID
	require.NoError(t, Advance(bracket, domain.SemiFinal, 1, winner1))
	require.NotNil(t, bracket[0].WinnerID)
	assert.Equal(t, winner1, *bracket[0].WinnerID)
	require.NotNil(t, bracket[2].Home)
	assert.Equal(t, winner1, bracket[2].Home.TeamID)
	assert.Nil(t, bracket[2].Away)

	winner2 := bracket[1].Away.TeamID
	require.NoError(t, Advance(bracket, domain.SemiFinal, 2, winner2))
	require.NotNil(t, bracket[2].Away)
	assert.Equal(t, winner2, bracket[2].Away.TeamID)

	t.Run("final has no next round", func(t *testing.T) {
		require.NoError(t, Advance(bracket, domain.Final, 1, winner1))
		require.NotNil(t, bracket[2].WinnerID)
		assert.Equal(t, winner1, *bracket[2].WinnerID)
	})

	t.Run("winner must play the match", func(t *testing.T) {
		fresh, err := GenerateBracket(teams, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, Advance(fresh, domain.SemiFinal, 1, uuid.New()), ErrBadWinner)
	})

	t.Run("unknown match", func(t *testing.T) {
		assert.ErrorIs(t, Advance(bracket, domain.RoundOf32, 1, winner1), ErrMatchNotFound)
	})
}
