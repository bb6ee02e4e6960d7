package storage

import (
	"context"
	"errors"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned by idempotent check-then-create writes when the
	// composite key already exists.
	ErrDuplicate = errors.New("already exists")
)

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error)
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	// SavePlayers persists rating/stat mutations for all given players in a
	// single batch.
	SavePlayers(ctx context.Context, players []domain.Player) error
}

type TeamStorage interface {
	GetTeam(ctx context.Context, id uuid.UUID) (domain.Team, error)
	ListTeams(ctx context.Context, ids []uuid.UUID) ([]domain.Team, error)
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
}

type MatchStorage interface {
	ListMatches(ctx context.Context) ([]domain.Match, error)
	ListLeagueMatches(ctx context.Context, leagueID uuid.UUID) ([]domain.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (domain.Match, error)
	CreateMatch(ctx context.Context, match domain.Match) (domain.Match, error)
	SetMatchStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) error
}

type LeagueStorage interface {
	GetLeague(ctx context.Context, id uuid.UUID) (domain.League, error)
	ListLeagues(ctx context.Context, status domain.LeagueStatus) ([]domain.League, error)
	CreateLeague(ctx context.Context, league domain.League) (domain.League, error)
	SaveLeague(ctx context.Context, league domain.League) error
}

type EvaluationStorage interface {
	// CreateEvaluation performs a check-then-create on the evaluation's
	// composite ID and returns ErrDuplicate if it was already written.
	CreateEvaluation(ctx context.Context, eval domain.Evaluation) error
	ListMatchEvaluations(ctx context.Context, matchID uuid.UUID) ([]domain.Evaluation, error)
	// CreateAssignments writes the assignments and their notifications as one
	// batch.
	CreateAssignments(ctx context.Context, assignments []domain.EvaluationAssignment, notifications []domain.Notification) error
	ListMatchAssignments(ctx context.Context, matchID uuid.UUID) ([]domain.EvaluationAssignment, error)
	ListPendingAssignments(ctx context.Context) ([]domain.EvaluationAssignment, error)
	MarkAssignmentDone(ctx context.Context, id string) error
}

type NotificationStorage interface {
	CreateNotification(ctx context.Context, n domain.Notification) error
	ListUserNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
}
