package domain

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	PlayerID    uuid.UUID
	ShirtNumber int
}

type Team struct {
	ID   uuid.UUID
	Name string
	// Jersey is a visual descriptor rendered by the frontend, opaque here.
	Jersey    string
	Members   []TeamMember
	GroupID   uuid.UUID
	CreatedBy uuid.UUID
	CreatedAt time.Time
}
