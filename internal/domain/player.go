package domain

import (
	"time"

	"github.com/google/uuid"
)

type Position string

const (
	PositionGoalkeeper Position = "POR"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MED"
	PositionForward    Position = "DEL"
)

// Attributes are the six sub-ratings behind the OVR.
type Attributes struct {
	Pac int
	Sho int
	Pas int
	Dri int
	Def int
	Phy int
}

type PlayerStats struct {
	MatchesPlayed int
	Goals         int
	Assists       int
	AverageRating float64
	YellowCards   int
	RedCards      int
}

type Player struct {
	ID         uuid.UUID
	Name       string
	Position   Position
	OVR        int
	Attributes Attributes
	Stats      PlayerStats
	// OwnerID is the account that controls this player. A manual player
	// created as a stand-in has OwnerID pointing at its creator.
	OwnerID   uuid.UUID
	Photo     string
	CreatedAt time.Time
}

// IsRealUser reports whether the player belongs to an actual account
// rather than being a stand-in created by somebody else.
func (p Player) IsRealUser() bool {
	return p.ID == p.OwnerID
}
