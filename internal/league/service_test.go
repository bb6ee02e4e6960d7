package league

import (
	"context"
	"testing"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/logger"
	"github.com/Poio-911/pateadores/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory.Storage
	service *Service
	league  domain.League
	teams   []domain.Team
}

func newFixture(t *testing.T, teamNames ...string) *fixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	teams := make([]domain.Team, 0, len(teamNames))
	teamIDs := make([]uuid.UUID, 0, len(teamNames))
	for _, name := range teamNames {
		playerID := uuid.New()
		player := domain.Player{ID: playerID, OwnerID: playerID, Name: name + " capitán", OVR: 70}
		_, err := store.CreatePlayer(ctx, player)
		require.NoError(t, err)
		team := domain.Team{
			ID:      uuid.New(),
			Name:    name,
			Members: []domain.TeamMember{{PlayerID: playerID, ShirtNumber: 10}},
		}
		_, err = store.CreateTeam(ctx, team)
		require.NoError(t, err)
		teams = append(teams, team)
		teamIDs = append(teamIDs, team.ID)
	}

	lg := domain.League{
		ID:      uuid.New(),
		Name:    "Liga de los Lunes",
		Format:  domain.FormatRoundRobin,
		TeamIDs: teamIDs,
		Status:  domain.LeagueInProgress,
	}
	_, err := store.CreateLeague(ctx, lg)
	require.NoError(t, err)

	return &fixture{
		store:   store,
		service: New(store, store, store, store, logger.New()),
		league:  lg,
		teams:   teams,
	}
}

func (f *fixture) addMatch(t *testing.T, a, b int, goalsA, goalsB int, status domain.MatchStatus) domain.Match {
	t.Helper()
	match := domain.Match{
		ID:     uuid.New(),
		Type:   domain.MatchLeague,
		Status: status,
		Teams: []domain.TeamSnapshot{
			{TeamID: f.teams[a].ID, Name: f.teams[a].Name, FinalScore: &goalsA},
			{TeamID: f.teams[b].ID, Name: f.teams[b].Name, FinalScore: &goalsB},
		},
		ParticipantTeamIDs: []uuid.UUID{f.teams[a].ID, f.teams[b].ID},
		LeagueInfo:         &domain.LeagueInfo{LeagueID: f.league.ID, Round: 1},
	}
	_, err := f.store.CreateMatch(context.Background(), match)
	require.NoError(t, err)
	return match
}

func TestCheckAndComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("league not found", func(t *testing.T) {
		f := newFixture(t, "A", "B")
		res := f.service.CheckAndComplete(ctx, uuid.New())
		assert.False(t, res.Success)
		assert.Equal(t, "liga no encontrada", res.Message)
	})

	t.Run("pending matches are a no-op", func(t *testing.T) {
		f := newFixture(t, "A", "B")
		f.addMatch(t, 0, 1, 0, 0, domain.MatchUpcoming)
		res := f.service.CheckAndComplete(ctx, f.league.ID)
		assert.False(t, res.Success)
		assert.Equal(t, "la liga aún tiene partidos pendientes", res.Message)

		lg, err := f.store.GetLeague(ctx, f.league.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LeagueInProgress, lg.Status)
	})

	t.Run("decisive champion completes the league", func(t *testing.T) {
		f := newFixture(t, "Atlético Birra", "Borrachos FC")
		f.addMatch(t, 0, 1, 3, 1, domain.MatchCompleted)
		res := f.service.CheckAndComplete(ctx, f.league.ID)
		require.True(t, res.Success, res.Message)
		assert.False(t, res.RequiresTiebreaker)

		lg, err := f.store.GetLeague(ctx, f.league.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LeagueCompleted, lg.Status)
		require.NotNil(t, lg.ChampionTeamID)
		assert.Equal(t, f.teams[0].ID, *lg.ChampionTeamID)
		assert.Equal(t, "Atlético Birra", lg.ChampionName)
		assert.Equal(t, "Borrachos FC", lg.RunnerUpName)
		assert.False(t, lg.RequiresTiebreaker)
	})

	t.Run("complete tie creates exactly one final", func(t *testing.T) {
		f := newFixture(t, "A", "B", "C", "D")
		// A and B tie on points, head-to-head wins and head-to-head goal
		// difference.
		f.addMatch(t, 0, 1, 1, 1, domain.MatchCompleted)
		f.addMatch(t, 0, 2, 2, 0, domain.MatchCompleted)
		f.addMatch(t, 0, 3, 2, 0, domain.MatchCompleted)
		f.addMatch(t, 1, 2, 2, 0, domain.MatchCompleted)
		f.addMatch(t, 1, 3, 2, 0, domain.MatchCompleted)
		f.addMatch(t, 2, 3, 1, 1, domain.MatchEvaluated)

		res := f.service.CheckAndComplete(ctx, f.league.ID)
		require.True(t, res.Success, res.Message)
		assert.True(t, res.RequiresTiebreaker)
		require.NotNil(t, res.FinalMatchID)

		lg, err := f.store.GetLeague(ctx, f.league.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LeagueInProgress, lg.Status)
		assert.True(t, lg.RequiresTiebreaker)
		require.NotNil(t, lg.FinalMatchID)

		final, err := f.store.GetMatch(ctx, *lg.FinalMatchID)
		require.NoError(t, err)
		assert.Equal(t, domain.MatchLeagueFinal, final.Type)
		assert.Equal(t, domain.MatchUpcoming, final.Status)
		require.NotNil(t, final.LeagueInfo)
		assert.Equal(t, domain.FinalRound, final.LeagueInfo.Round)
		assert.Equal(t, 2, final.MatchSize)
		assert.Len(t, final.Teams, 2)

		// A second check must not create a second final.
		again := f.service.CheckAndComplete(ctx, f.league.ID)
		assert.False(t, again.Success)
		assert.True(t, again.RequiresTiebreaker)
		require.NotNil(t, again.FinalMatchID)
		assert.Equal(t, *lg.FinalMatchID, *again.FinalMatchID)
	})

	t.Run("already completed league is rejected", func(t *testing.T) {
		f := newFixture(t, "A", "B")
		f.addMatch(t, 0, 1, 2, 0, domain.MatchCompleted)
		require.True(t, f.service.CheckAndComplete(ctx, f.league.ID).Success)
		res := f.service.CheckAndComplete(ctx, f.league.ID)
		assert.False(t, res.Success)
		assert.Equal(t, "la liga ya está completada", res.Message)
	})
}

func TestResolveFinal(t *testing.T) {
	ctx := context.Background()

	setupFinal := func(t *testing.T, goalsA, goalsB int, status domain.MatchStatus) (*fixture, domain.Match) {
		f := newFixture(t, "A", "B")
		final := domain.Match{
			ID:     uuid.New(),
			Type:   domain.MatchLeagueFinal,
			Status: status,
			Teams: []domain.TeamSnapshot{
				{TeamID: f.teams[0].ID, Name: "A", FinalScore: &goalsA},
				{TeamID: f.teams[1].ID, Name: "B", FinalScore: &goalsB},
			},
			ParticipantTeamIDs: []uuid.UUID{f.teams[0].ID, f.teams[1].ID},
			LeagueInfo:         &domain.LeagueInfo{LeagueID: f.league.ID, Round: domain.FinalRound},
		}
		_, err := f.store.CreateMatch(ctx, final)
		require.NoError(t, err)
		f.league.RequiresTiebreaker = true
		f.league.FinalMatchID = &final.ID
		require.NoError(t, f.store.SaveLeague(ctx, f.league))
		return f, final
	}

	t.Run("drawn final rejected without writes", func(t *testing.T) {
		f, final := setupFinal(t, 2, 2, domain.MatchCompleted)
		res := f.service.ResolveFinal(ctx, f.league.ID, final.ID)
		assert.False(t, res.Success)
		assert.Equal(t, "una final no puede terminar en empate", res.Message)

		lg, err := f.store.GetLeague(ctx, f.league.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LeagueInProgress, lg.Status)
		assert.Nil(t, lg.ChampionTeamID)
	})

	t.Run("unfinished final rejected", func(t *testing.T) {
		f, final := setupFinal(t, 0, 0, domain.MatchActive)
		res := f.service.ResolveFinal(ctx, f.league.ID, final.ID)
		assert.False(t, res.Success)
		assert.Equal(t, "la final aún no está completada", res.Message)
	})

	t.Run("wrong match type rejected", func(t *testing.T) {
		f := newFixture(t, "A", "B")
		casual := f.addMatch(t, 0, 1, 2, 1, domain.MatchCompleted)
		res := f.service.ResolveFinal(ctx, f.league.ID, casual.ID)
		assert.False(t, res.Success)
		assert.Equal(t, "el partido no es una final de liga", res.Message)
	})

	t.Run("higher scorer becomes champion", func(t *testing.T) {
		f, final := setupFinal(t, 1, 3, domain.MatchCompleted)
		res := f.service.ResolveFinal(ctx, f.league.ID, final.ID)
		require.True(t, res.Success, res.Message)

		lg, err := f.store.GetLeague(ctx, f.league.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.LeagueCompleted, lg.Status)
		require.NotNil(t, lg.ChampionTeamID)
		assert.Equal(t, f.teams[1].ID, *lg.ChampionTeamID)
		assert.Equal(t, "B", lg.ChampionName)
		assert.Equal(t, "A", lg.RunnerUpName)
		assert.False(t, lg.RequiresTiebreaker)
	})
}
