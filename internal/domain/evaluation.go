package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is a peer review written after a match. Immutable once stored;
// its ID is the deterministic composite key built by the evaluation service.
type Evaluation struct {
	ID              string
	PlayerID        uuid.UUID
	EvaluatorID     uuid.UUID
	MatchID         uuid.UUID
	Rating          *int
	Goals           int
	PerformanceTags []string
	EvaluatedAt     time.Time
}

type AssignmentStatus string

const (
	AssignmentPending AssignmentStatus = "pending"
	AssignmentDone    AssignmentStatus = "done"
)

type EvaluationAssignment struct {
	ID          string
	MatchID     uuid.UUID
	EvaluatorID uuid.UUID
	SubjectID   uuid.UUID
	Status      AssignmentStatus
	CreatedAt   time.Time
}

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	Message   string
	Read      bool
	CreatedAt time.Time
}
