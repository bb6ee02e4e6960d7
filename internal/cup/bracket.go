package cup

import (
	"errors"
	"fmt"

	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrBadSize       = errors.New("la cantidad de equipos debe ser 2, 4, 8, 16 o 32")
	ErrMatchNotFound = errors.New("el cruce no existe en el cuadro")
	ErrBadWinner     = errors.New("el ganador no juega ese cruce")
)

// roundsBySize lists the rounds of a bracket from first to final.
var roundsBySize = map[int][]domain.BracketRound{
	2:  {domain.Final},
	4:  {domain.SemiFinal, domain.Final},
	8:  {domain.QuarterFinal, domain.SemiFinal, domain.Final},
	16: {domain.RoundOf16, domain.QuarterFinal, domain.SemiFinal, domain.Final},
	32: {domain.RoundOf32, domain.RoundOf16, domain.QuarterFinal, domain.SemiFinal, domain.Final},
}

// GenerateBracket builds a full single-elimination bracket. The first round
// pairs top seed against bottom seed and so on inwards; every later round is
// pre-created with empty slots that Advance fills in.
func GenerateBracket(teams []domain.Team, matches []domain.Match) ([]domain.BracketMatch, error) {
	rounds, ok := roundsBySize[len(teams)]
	if !ok {
		return nil, ErrBadSize
	}
	seeded := SeedTeams(teams, matches)

	var bracket []domain.BracketMatch
	n := len(seeded) / 2
	for i := 0; i < n; i++ {
		top, bottom := seeded[i], seeded[len(seeded)-1-i]
		bracket = append(bracket, domain.BracketMatch{
			Round:       rounds[0],
			MatchNumber: i + 1,
			Home:        slotFor(top),
			Away:        slotFor(bottom),
		})
	}
	for r := 1; r < len(rounds); r++ {
		n /= 2
		for i := 0; i < n; i++ {
			bracket = append(bracket, domain.BracketMatch{
				Round:       rounds[r],
				MatchNumber: i + 1,
			})
		}
	}
	return bracket, nil
}

func slotFor(team domain.Team) *domain.BracketSlot {
	return &domain.BracketSlot{
		TeamID: team.ID,
		Name:   team.Name,
		Jersey: team.Jersey,
	}
}

// Advance records the winner of one bracket match and slots them into the
// next round. Odd match numbers feed the home slot, even the away slot.
func Advance(bracket []domain.BracketMatch, round domain.BracketRound, matchNumber int, winnerID uuid.UUID) error {
	idx := indexOf(bracket, round, matchNumber)
	if idx < 0 {
		return ErrMatchNotFound
	}
	match := &bracket[idx]
	winner := slotWithID(match, winnerID)
	if winner == nil {
		return ErrBadWinner
	}
	match.WinnerID = &winner.TeamID

	next := nextRound(round)
	if next == "" {
		return nil
	}
	nextIdx := indexOf(bracket, next, (matchNumber+1)/2)
	if nextIdx < 0 {
		return fmt.Errorf("%w: %s %d", ErrMatchNotFound, next, (matchNumber+1)/2)
	}
	slot := *winner
	if matchNumber%2 == 1 {
		bracket[nextIdx].Home = &slot
	} else {
		bracket[nextIdx].Away = &slot
	}
	return nil
}

func indexOf(bracket []domain.BracketMatch, round domain.BracketRound, matchNumber int) int {
	for i := range bracket {
		if bracket[i].Round == round && bracket[i].MatchNumber == matchNumber {
			return i
		}
	}
	return -1
}

func slotWithID(match *domain.BracketMatch, teamID uuid.UUID) *domain.BracketSlot {
	if match.Home != nil && match.Home.TeamID == teamID {
		return match.Home
	}
	if match.Away != nil && match.Away.TeamID == teamID {
		return match.Away
	}
	return nil
}

func nextRound(round domain.BracketRound) domain.BracketRound {
	switch round {
	case domain.RoundOf32:
		return domain.RoundOf16
	case domain.RoundOf16:
		return domain.QuarterFinal
	case domain.QuarterFinal:
		return domain.SemiFinal
	case domain.SemiFinal:
		return domain.Final
	default:
		return ""
	}
}
