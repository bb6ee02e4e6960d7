package domain

import "github.com/google/uuid"

type BracketRound string

const (
	RoundOf32    BracketRound = "round_of_32"
	RoundOf16    BracketRound = "round_of_16"
	QuarterFinal BracketRound = "quarter_final"
	SemiFinal    BracketRound = "semi_final"
	Final        BracketRound = "final"
)

type BracketSlot struct {
	TeamID uuid.UUID
	Name   string
	Jersey string
}

// BracketMatch is one node of a single-elimination bracket. Future rounds are
// created with empty slots and filled in as earlier rounds resolve.
type BracketMatch struct {
	Round       BracketRound
	MatchNumber int
	Home        *BracketSlot
	Away        *BracketSlot
	WinnerID    *uuid.UUID
	MatchID     *uuid.UUID
}
