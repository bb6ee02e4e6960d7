package web

import (
	"errors"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

type createPlayer struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Pac      int    `json:"pac"`
	Sho      int    `json:"sho"`
	Pas      int    `json:"pas"`
	Dri      int    `json:"dri"`
	Def      int    `json:"def"`
	Phy      int    `json:"phy"`
	OwnerID  string `json:"ownerId"`
}

var ErrMissingName = errors.New("falta el nombre del jugador")
var ErrBadPosition = errors.New("posición inválida")
var ErrBadAttribute = errors.New("los atributos deben estar entre 1 y 99")

func (c createPlayer) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	switch domain.Position(c.Position) {
	case domain.PositionGoalkeeper, domain.PositionDefender, domain.PositionMidfielder, domain.PositionForward:
	default:
		return ErrBadPosition
	}
	for _, v := range []int{c.Pac, c.Sho, c.Pas, c.Dri, c.Def, c.Phy} {
		if v < 1 || v > 99 {
			return ErrBadAttribute
		}
	}
	return nil
}

func (c createPlayer) attributes() domain.Attributes {
	return domain.Attributes{
		Pac: c.Pac,
		Sho: c.Sho,
		Pas: c.Pas,
		Dri: c.Dri,
		Def: c.Def,
		Phy: c.Phy,
	}
}

type submitEvaluation struct {
	MatchID     uuid.UUID `json:"matchId"`
	EvaluatorID uuid.UUID `json:"evaluatorId"`
	PlayerID    uuid.UUID `json:"playerId"`
	Rating      *int      `json:"rating"`
	Goals       int       `json:"goals"`
	Tags        []string  `json:"tags"`
}

var ErrMissingEvaluationIDs = errors.New("faltan el partido, el evaluador o el jugador")
var ErrSelfEvaluation = errors.New("no podés evaluarte a vos mismo")

func (c submitEvaluation) Validate() error {
	if c.MatchID == uuid.Nil || c.EvaluatorID == uuid.Nil || c.PlayerID == uuid.Nil {
		return ErrMissingEvaluationIDs
	}
	if c.EvaluatorID == c.PlayerID {
		return ErrSelfEvaluation
	}
	return nil
}

func (c submitEvaluation) convertToDomain() domain.Evaluation {
	return domain.Evaluation{
		MatchID:         c.MatchID,
		EvaluatorID:     c.EvaluatorID,
		PlayerID:        c.PlayerID,
		Rating:          c.Rating,
		Goals:           c.Goals,
		PerformanceTags: c.Tags,
	}
}

type resolveFinal struct {
	MatchID uuid.UUID `json:"matchId"`
}

var ErrMissingFinalMatch = errors.New("falta el ID del partido de desempate")

func (c resolveFinal) Validate() error {
	if c.MatchID == uuid.Nil {
		return ErrMissingFinalMatch
	}
	return nil
}
