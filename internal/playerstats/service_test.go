package playerstats

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

func newService(store *memory.Storage) *Service {
	return New(store, store, store, logger.New())
}

func addPlayer(t *testing.T, store *memory.Storage, name string) domain.Player {
	t.Helper()
	id := uuid.New()
	p := domain.Player{ID: id, OwnerID: id, Name: name, OVR: 70}
	_, err := store.CreatePlayer(context.Background(), p)
	require.NoError(t, err)
	return p
}

func storeMatch(t *testing.T, store *memory.Storage, match domain.Match) domain.Match {
	t.Helper()
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	created, err := store.CreateMatch(context.Background(), match)
	require.NoError(t, err)
	return created
}

func TestUpdateFromMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("counters accumulate once per match", func(t *testing.T) {
		store := memory.New()
		scorer := addPlayer(t, store, "scorer")
		keeper := addPlayer(t, store, "keeper")
		rough := addPlayer(t, store, "rough")

		teamA, teamB := uuid.New(), uuid.New()
		match := storeMatch(t, store, domain.Match{
			Status: domain.MatchCompleted,
			Teams: []domain.TeamSnapshot{
				{TeamID: teamA, Players: []domain.RosterPlayer{{ID: scorer.ID}, {ID: rough.ID}}},
				{TeamID: teamB, Players: []domain.RosterPlayer{{ID: keeper.ID}}},
			},
			GoalScorers: []domain.GoalScorer{{PlayerID: scorer.ID, TeamID: teamA, Count: 2}},
			Cards: []domain.Card{
				{PlayerID: rough.ID, TeamID: teamA, Type: domain.CardYellow},
				{PlayerID: rough.ID, TeamID: teamA, Type: domain.CardRed},
			},
		})

		res := newService(store).UpdateFromMatch(ctx, match.ID)
		require.True(t, res.Success, res.Message)

		got, err := store.GetPlayer(ctx, scorer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Stats.MatchesPlayed)
		assert.Equal(t, 2, got.Stats.Goals)

		got, err = store.GetPlayer(ctx, rough.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Stats.YellowCards)
		assert.Equal(t, 1, got.Stats.RedCards)

		got, err = store.GetPlayer(ctx, keeper.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Stats.MatchesPlayed)
		assert.Equal(t, 0, got.Stats.Goals)
	})

	t.Run("missing players are skipped, not fatal", func(t *testing.T) {
		store := memory.New()
		known := addPlayer(t, store, "known")
		ghost := uuid.New()
		match := storeMatch(t, store, domain.Match{
			Status: domain.MatchCompleted,
			Teams: []domain.TeamSnapshot{
				{TeamID: uuid.New(), Players: []domain.RosterPlayer{{ID: known.ID}, {ID: ghost}}},
			},
		})
		res := newService(store).UpdateFromMatch(ctx, match.ID)
		require.True(t, res.Success, res.Message)

		got, err := store.GetPlayer(ctx, known.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Stats.MatchesPlayed)
	})

	t.Run("unfinished match rejected", func(t *testing.T) {
		store := memory.New()
		match := storeMatch(t, store, domain.Match{Status: domain.MatchActive})
		res := newService(store).UpdateFromMatch(ctx, match.ID)
		assert.False(t, res.Success)
	})

	t.Run("match not found", func(t *testing.T) {
		store := memory.New()
		res := newService(store).UpdateFromMatch(ctx, uuid.New())
		assert.False(t, res.Success)
		assert.Equal(t, "partido no encontrado", res.Message)
	})
}

func TestApplyEvaluations(t *testing.T) {
	ctx := context.Background()

	t.Run("ratings fold into average and OVR", func(t *testing.T) {
		store := memory.New()
		subject := addPlayer(t, store, "subject")
		evaluator1 := addPlayer(t, store, "evaluator1")
		evaluator2 := addPlayer(t, store, "evaluator2")

		match := storeMatch(t, store, domain.Match{
			Status: domain.MatchCompleted,
			Teams: []domain.TeamSnapshot{
				{TeamID: uuid.New(), Players: []domain.RosterPlayer{{ID: subject.ID}, {ID: evaluator1.ID}, {ID: evaluator2.ID}}},
			},
		})
		eight, ten := 8, 10
		require.NoError(t, store.CreateEvaluation(ctx, domain.Evaluation{
			ID: "e1", PlayerID: subject.ID, EvaluatorID: evaluator1.ID, MatchID: match.ID, Rating: &eight,
		}))
		require.NoError(t, store.CreateEvaluation(ctx, domain.Evaluation{
			ID: "e2", PlayerID: subject.ID, EvaluatorID: evaluator2.ID, MatchID: match.ID, Rating: &ten,
		}))

		res := newService(store).ApplyEvaluations(ctx, match.ID)
		require.True(t, res.Success, res.Message)

		got, err := store.GetPlayer(ctx, subject.ID)
		require.NoError(t, err)
		assert.InDelta(t, 9.0, got.Stats.AverageRating, 0.001)
		assert.Equal(t, 72, got.OVR) // avg 9 moves OVR by the +2 cap

		updated, err := store.GetMatch(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.MatchEvaluated, updated.Status)
	})

	t.Run("evaluated match is not closed twice", func(t *testing.T) {
		store := memory.New()
		match := storeMatch(t, store, domain.Match{Status: domain.MatchEvaluated})
		res := newService(store).ApplyEvaluations(ctx, match.ID)
		assert.False(t, res.Success)
	})
}

func TestRecalculate(t *testing.T) {
	ctx := context.Background()

	t.Run("rebuilds counters from scratch", func(t *testing.T) {
		store := memory.New()
		player := addPlayer(t, store, "player")
		// Corrupt the stored stats to simulate a double-applied match.
		corrupted := player
		corrupted.Stats.MatchesPlayed = 10
		corrupted.Stats.Goals = 40
		require.NoError(t, store.SavePlayers(ctx, []domain.Player{corrupted}))

		teamID := uuid.New()
		storeMatch(t, store, domain.Match{
			Status:      domain.MatchCompleted,
			Teams:       []domain.TeamSnapshot{{TeamID: teamID, Players: []domain.RosterPlayer{{ID: player.ID}}}},
			GoalScorers: []domain.GoalScorer{{PlayerID: player.ID, TeamID: teamID, Count: 1}},
		})
		storeMatch(t, store, domain.Match{
			Status: domain.MatchEvaluated,
			Teams:  []domain.TeamSnapshot{{TeamID: teamID, Players: []domain.RosterPlayer{{ID: player.ID}}}},
		})
		// Unfinished matches don't count.
		storeMatch(t, store, domain.Match{
			Status: domain.MatchUpcoming,
			Teams:  []domain.TeamSnapshot{{TeamID: teamID, Players: []domain.RosterPlayer{{ID: player.ID}}}},
		})

		res := newService(store).Recalculate(ctx)
		require.True(t, res.Success, res.Message)

		got, err := store.GetPlayer(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Stats.MatchesPlayed)
		assert.Equal(t, 1, got.Stats.Goals)
	})
}
