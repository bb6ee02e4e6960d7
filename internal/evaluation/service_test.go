package evaluation

import (
	"context"
	"math/rand"
	"testing"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/logger"
	"github.com/Poio-911/pateadores/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(store *memory.Storage, seed int64) *Service {
	return New(store, store, store, rand.New(rand.NewSource(seed)), logger.New())
}

// addPlayer registers a player; real controls whether the player owns itself
// or belongs to another account (a manual stand-in).
func addPlayer(t *testing.T, store *memory.Storage, name string, real bool) domain.Player {
	t.Helper()
	id := uuid.New()
	owner := id
	if !real {
		owner = uuid.New()
	}
	p := domain.Player{ID: id, OwnerID: owner, Name: name, OVR: 70}
	_, err := store.CreatePlayer(context.Background(), p)
	require.NoError(t, err)
	return p
}

func matchWithTeams(t *testing.T, store *memory.Storage, status domain.MatchStatus, rosters ...[]domain.Player) domain.Match {
	t.Helper()
	match := domain.Match{
		ID:     uuid.New(),
		Type:   domain.MatchCasual,
		Status: status,
	}
	for _, roster := range rosters {
		snapshot := domain.TeamSnapshot{TeamID: uuid.New()}
		for _, p := range roster {
			snapshot.Players = append(snapshot.Players, domain.RosterPlayer{ID: p.ID, DisplayName: p.Name, OVR: p.OVR})
		}
		match.Teams = append(match.Teams, snapshot)
		match.ParticipantTeamIDs = append(match.ParticipantTeamIDs, snapshot.TeamID)
	}
	_, err := store.CreateMatch(context.Background(), match)
	require.NoError(t, err)
	return match
}

func TestGenerateAssignments(t *testing.T) {
	ctx := context.Background()

	t.Run("match must be finished", func(t *testing.T) {
		store := memory.New()
		a := addPlayer(t, store, "a", true)
		b := addPlayer(t, store, "b", true)
		match := matchWithTeams(t, store, domain.MatchActive, []domain.Player{a, b})
		_, err := seededService(store, 1).GenerateAssignments(ctx, match.ID)
		assert.ErrorIs(t, err, ErrMatchNotFinished)
	})

	t.Run("caps at two subjects and never self-assigns", func(t *testing.T) {
		store := memory.New()
		var roster []domain.Player
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			roster = append(roster, addPlayer(t, store, name, true))
		}
		match := matchWithTeams(t, store, domain.MatchCompleted, roster)
		assignments, err := seededService(store, 42).GenerateAssignments(ctx, match.ID)
		require.NoError(t, err)

		perEvaluator := make(map[uuid.UUID]int)
		for _, a := range assignments {
			assert.NotEqual(t, a.EvaluatorID, a.SubjectID, "self-assignment")
			assert.Equal(t, domain.AssignmentPending, a.Status)
			assert.Equal(t, match.ID, a.MatchID)
			perEvaluator[a.EvaluatorID]++
		}
		require.Len(t, perEvaluator, len(roster))
		for evaluator, n := range perEvaluator {
			assert.Equalf(t, MaxSubjects, n, "evaluator %s", evaluator)
		}
	})

	t.Run("fewer teammates than cap", func(t *testing.T) {
		store := memory.New()
		a := addPlayer(t, store, "a", true)
		b := addPlayer(t, store, "b", true)
		match := matchWithTeams(t, store, domain.MatchCompleted, []domain.Player{a, b})
		assignments, err := seededService(store, 7).GenerateAssignments(ctx, match.ID)
		require.NoError(t, err)
		// Each evaluator has exactly one teammate: min(2, 1) = 1 each.
		assert.Len(t, assignments, 2)
	})

	t.Run("manual players neither evaluate nor get evaluated", func(t *testing.T) {
		store := memory.New()
		real1 := addPlayer(t, store, "real1", true)
		real2 := addPlayer(t, store, "real2", true)
		manual := addPlayer(t, store, "manual", false)
		match := matchWithTeams(t, store, domain.MatchCompleted, []domain.Player{real1, real2, manual})
		assignments, err := seededService(store, 3).GenerateAssignments(ctx, match.ID)
		require.NoError(t, err)
		for _, a := range assignments {
			assert.NotEqual(t, manual.ID, a.EvaluatorID)
			assert.NotEqual(t, manual.ID, a.SubjectID)
		}
		assert.Len(t, assignments, 2)
	})

	t.Run("evaluators only see their own team", func(t *testing.T) {
		store := memory.New()
		a1 := addPlayer(t, store, "a1", true)
		a2 := addPlayer(t, store, "a2", true)
		b1 := addPlayer(t, store, "b1", true)
		b2 := addPlayer(t, store, "b2", true)
		match := matchWithTeams(t, store, domain.MatchCompleted, []domain.Player{a1, a2}, []domain.Player{b1, b2})
		assignments, err := seededService(store, 9).GenerateAssignments(ctx, match.ID)
		require.NoError(t, err)
		teamOf := map[uuid.UUID]int{a1.ID: 0, a2.ID: 0, b1.ID: 1, b2.ID: 1}
		for _, a := range assignments {
			assert.Equal(t, teamOf[a.EvaluatorID], teamOf[a.SubjectID], "cross-team assignment")
		}
	})

	t.Run("lone real player gets no assignments", func(t *testing.T) {
		store := memory.New()
		real := addPlayer(t, store, "real", true)
		manual := addPlayer(t, store, "manual", false)
		match := matchWithTeams(t, store, domain.MatchCompleted, []domain.Player{real, manual})
		assignments, err := seededService(store, 5).GenerateAssignments(ctx, match.ID)
		require.NoError(t, err)
		assert.Empty(t, assignments)
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		store := memory.New()
		var roster []domain.Player
		for _, name := range []string{"a", "b", "c", "d"} {
			roster = append(roster, addPlayer(t, store, name, true))
		}
		match := matchWithTeams(t, store, domain.MatchCompleted, roster)

		pairs := func(seed int64) map[string]bool {
			assignments, err := seededService(store, seed).GenerateAssignments(ctx, match.ID)
			require.NoError(t, err)
			set := make(map[string]bool, len(assignments))
			for _, a := range assignments {
				set[a.EvaluatorID.String()+"->"+a.SubjectID.String()] = true
			}
			return set
		}
		assert.Equal(t, pairs(99), pairs(99))
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate submit is rejected", func(t *testing.T) {
		store := memory.New()
		evaluator := addPlayer(t, store, "evaluator", true)
		subject := addPlayer(t, store, "subject", true)
		match := matchWithTeams(t, store, domain.MatchCompleted, []domain.Player{evaluator, subject})
		service := seededService(store, 1)

		rating := 8
		eval := domain.Evaluation{
			PlayerID:    subject.ID,
			EvaluatorID: evaluator.ID,
			MatchID:     match.ID,
			Rating:      &rating,
		}
		require.NoError(t, service.Submit(ctx, eval))
		assert.ErrorIs(t, service.Submit(ctx, eval), ErrAlreadyEvaluated)

		evals, err := store.ListMatchEvaluations(ctx, match.ID)
		require.NoError(t, err)
		assert.Len(t, evals, 1)
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		store := memory.New()
		service := seededService(store, 1)
		rating := 11
		err := service.Submit(ctx, domain.Evaluation{Rating: &rating})
		assert.Error(t, err)
	})

	t.Run("submit marks the assignment done", func(t *testing.T) {
		store := memory.New()
		evaluator := addPlayer(t, store, "evaluator", true)
		subject := addPlayer(t, store, "subject", true)
		match := matchWithTeams(t, store, domain.MatchCompleted, []domain.Player{evaluator, subject})
		service := seededService(store, 1)

		_, err := service.GenerateAssignments(ctx, match.ID)
		require.NoError(t, err)

		rating := 7
		require.NoError(t, service.Submit(ctx, domain.Evaluation{
			PlayerID:    subject.ID,
			EvaluatorID: evaluator.ID,
			MatchID:     match.ID,
			Rating:      &rating,
		}))
		pending, err := service.PendingForMatch(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, pending) // the subject's own assignment stays open
	})
}
