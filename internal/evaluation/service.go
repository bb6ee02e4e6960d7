package evaluation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MaxSubjects is how many teammates one evaluator is asked to review.
const MaxSubjects = 2

var (
	ErrAlreadyEvaluated = errors.New("ya evaluaste a este jugador en este partido")
	ErrMatchNotFinished = errors.New("el partido todavía no está completado")
)

type Service struct {
	matches     storage.MatchStorage
	players     storage.PlayerStorage
	evaluations storage.EvaluationStorage
	rnd         *rand.Rand
	log         *logrus.Entry
}

// New builds the service. rnd drives the assignment shuffle; pass a seeded
// source in tests.
func New(
	matches storage.MatchStorage,
	players storage.PlayerStorage,
	evaluations storage.EvaluationStorage,
	rnd *rand.Rand,
	log *logrus.Logger,
) *Service {
	return &Service{
		matches:     matches,
		players:     players,
		evaluations: evaluations,
		rnd:         rnd,
		log:         log.WithField("from", "evaluation-service"),
	}
}

// EvaluationID builds the deterministic composite key that makes evaluation
// writes idempotent per evaluator, subject and match.
func EvaluationID(evaluatorID, subjectID, matchID uuid.UUID) string {
	return evaluatorID.String() + "_" + subjectID.String() + "_" + matchID.String()
}

// AssignmentID mirrors EvaluationID for the pending assignment document.
func AssignmentID(evaluatorID, subjectID, matchID uuid.UUID) string {
	return "a_" + EvaluationID(evaluatorID, subjectID, matchID)
}

// GenerateAssignments gives every real-user player of a finished match up to
// MaxSubjects teammates to review, never themselves, picked by a uniform
// shuffle. Assignments and the evaluators' notifications land in one batch.
func (s *Service) GenerateAssignments(ctx context.Context, matchID uuid.UUID) ([]domain.EvaluationAssignment, error) {
	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	if !match.IsFinished() {
		return nil, ErrMatchNotFinished
	}

	real := make(map[uuid.UUID]bool)
	for _, snapshot := range match.Teams {
		for _, rp := range snapshot.Players {
			player, err := s.players.GetPlayer(ctx, rp.ID)
			if err != nil {
				s.log.WithError(err).WithField("player_id", rp.ID).Warn("skipping unresolvable roster player")
				continue
			}
			real[rp.ID] = player.IsRealUser()
		}
	}

	now := time.Now()
	var assignments []domain.EvaluationAssignment
	var notifications []domain.Notification
	for _, snapshot := range match.Teams {
		for _, evaluator := range snapshot.Players {
			if !real[evaluator.ID] {
				continue
			}
			teammates := make([]uuid.UUID, 0, len(snapshot.Players))
			for _, teammate := range snapshot.Players {
				if teammate.ID != evaluator.ID && real[teammate.ID] {
					teammates = append(teammates, teammate.ID)
				}
			}
			for _, subjectID := range s.pickSubjects(teammates) {
				assignments = append(assignments, domain.EvaluationAssignment{
					ID:          AssignmentID(evaluator.ID, subjectID, match.ID),
					MatchID:     match.ID,
					EvaluatorID: evaluator.ID,
					SubjectID:   subjectID,
					Status:      domain.AssignmentPending,
					CreatedAt:   now,
				})
			}
			if len(teammates) > 0 {
				notifications = append(notifications, domain.Notification{
					ID:        uuid.New(),
					UserID:    evaluator.ID,
					Kind:      "evaluation_assigned",
					Message:   "Tenés compañeros para evaluar del último partido",
					CreatedAt: now,
				})
			}
		}
	}
	if len(assignments) == 0 {
		return nil, nil
	}
	if err := s.evaluations.CreateAssignments(ctx, assignments, notifications); err != nil {
		return nil, fmt.Errorf("store assignments: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"match_id":    matchID,
		"assignments": len(assignments),
	}).Info("evaluation assignments created")
	return assignments, nil
}

// pickSubjects shuffles the candidates with Fisher-Yates and keeps the first
// MaxSubjects of them.
func (s *Service) pickSubjects(candidates []uuid.UUID) []uuid.UUID {
	shuffled := make([]uuid.UUID, len(candidates))
	copy(shuffled, candidates)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if len(shuffled) > MaxSubjects {
		shuffled = shuffled[:MaxSubjects]
	}
	return shuffled
}

// Submit stores a peer evaluation under its composite key. A repeated submit
// for the same evaluator, subject and match is rejected, not duplicated.
func (s *Service) Submit(ctx context.Context, eval domain.Evaluation) error {
	if eval.Rating != nil && (*eval.Rating < 1 || *eval.Rating > 10) {
		return errors.New("la calificación debe estar entre 1 y 10")
	}
	match, err := s.matches.GetMatch(ctx, eval.MatchID)
	if err != nil {
		return fmt.Errorf("load match: %w", err)
	}
	if !match.IsFinished() {
		return ErrMatchNotFinished
	}
	eval.ID = EvaluationID(eval.EvaluatorID, eval.PlayerID, eval.MatchID)
	eval.EvaluatedAt = time.Now()
	err = s.evaluations.CreateEvaluation(ctx, eval)
	if errors.Is(err, storage.ErrDuplicate) {
		return ErrAlreadyEvaluated
	}
	if err != nil {
		return fmt.Errorf("store evaluation: %w", err)
	}
	if err := s.evaluations.MarkAssignmentDone(ctx, AssignmentID(eval.EvaluatorID, eval.PlayerID, eval.MatchID)); err != nil {
		// The evaluation may be spontaneous rather than assigned.
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).WithField("evaluation_id", eval.ID).Warn("can't mark assignment done")
		}
	}
	return nil
}

// PendingForMatch reports how many assignments of a match are still open.
func (s *Service) PendingForMatch(ctx context.Context, matchID uuid.UUID) (int, error) {
	assignments, err := s.evaluations.ListMatchAssignments(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("load assignments: %w", err)
	}
	pending := 0
	for _, a := range assignments {
		if a.Status == domain.AssignmentPending {
			pending++
		}
	}
	return pending, nil
}
