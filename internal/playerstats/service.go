package playerstats

import (
	"context"
	"fmt"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/ovr"
	"github.com/Poio-911/pateadores/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Result struct {
	Success bool
	Message string
}

type Service struct {
	matches     storage.MatchStorage
	players     storage.PlayerStorage
	evaluations storage.EvaluationStorage
	log         *logrus.Entry
}

func New(
	matches storage.MatchStorage,
	players storage.PlayerStorage,
	evaluations storage.EvaluationStorage,
	log *logrus.Logger,
) *Service {
	return &Service{
		matches:     matches,
		players:     players,
		evaluations: evaluations,
		log:         log.WithField("from", "playerstats-service"),
	}
}

// UpdateFromMatch folds one completed match into the cumulative stats of every
// player it involves. Purely additive; the caller must not run it twice for
// the same match.
func (s *Service) UpdateFromMatch(ctx context.Context, matchID uuid.UUID) Result {
	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		s.log.WithError(err).WithField("match_id", matchID).Error("can't load match")
		return Result{Message: "partido no encontrado"}
	}
	if !match.IsFinished() {
		return Result{Message: "el partido todavía no está completado"}
	}

	updated, skipped := s.applyMatch(ctx, match, nil)
	if len(updated) > 0 {
		if err := s.players.SavePlayers(ctx, updated); err != nil {
			s.log.WithError(err).WithField("match_id", matchID).Error("can't save player stats")
			return Result{Message: "no se pudieron guardar las estadísticas"}
		}
	}
	s.log.WithFields(logrus.Fields{
		"match_id": matchID,
		"players":  len(updated),
		"skipped":  skipped,
	}).Info("player stats updated")
	return Result{Success: true, Message: fmt.Sprintf("estadísticas actualizadas para %d jugadores", len(updated))}
}

// applyMatch loads every player referenced by the match, applies the match's
// counters and returns the mutated players. Players that fail to resolve are
// skipped with a warning. When cache is non-nil it is used instead of the
// store, so Recalculate can fold many matches into one working set.
func (s *Service) applyMatch(ctx context.Context, match domain.Match, cache map[uuid.UUID]*domain.Player) ([]domain.Player, int) {
	ids := mapset.NewSet[uuid.UUID]()
	for _, snapshot := range match.Teams {
		for _, rp := range snapshot.Players {
			ids.Add(rp.ID)
		}
	}
	for _, scorer := range match.GoalScorers {
		ids.Add(scorer.PlayerID)
	}
	for _, card := range match.Cards {
		ids.Add(card.PlayerID)
	}

	goals := make(map[uuid.UUID]int)
	for _, scorer := range match.GoalScorers {
		goals[scorer.PlayerID] += scorer.Count
	}
	yellows := make(map[uuid.UUID]int)
	reds := make(map[uuid.UUID]int)
	for _, card := range match.Cards {
		switch card.Type {
		case domain.CardYellow:
			yellows[card.PlayerID]++
		case domain.CardRed:
			reds[card.PlayerID]++
		}
	}

	var updated []domain.Player
	skipped := 0
	for _, id := range ids.ToSlice() {
		var player *domain.Player
		if cache != nil {
			player = cache[id]
		} else {
			loaded, err := s.players.GetPlayer(ctx, id)
			if err != nil {
				s.log.WithError(err).WithField("player_id", id).Warn("skipping unresolvable player")
				skipped++
				continue
			}
			player = &loaded
		}
		if player == nil {
			skipped++
			continue
		}
		player.Stats.MatchesPlayed++
		player.Stats.Goals += goals[id]
		player.Stats.YellowCards += yellows[id]
		player.Stats.RedCards += reds[id]
		if cache == nil {
			updated = append(updated, *player)
		}
	}
	return updated, skipped
}

// ApplyEvaluations aggregates the submitted evaluations of a match into each
// subject's running average rating and OVR, then marks the match evaluated.
// Meant to run once all of the match's assignments are done.
func (s *Service) ApplyEvaluations(ctx context.Context, matchID uuid.UUID) Result {
	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		s.log.WithError(err).WithField("match_id", matchID).Error("can't load match")
		return Result{Message: "partido no encontrado"}
	}
	if match.Status != domain.MatchCompleted {
		return Result{Message: "el partido no está listo para cerrar evaluaciones"}
	}
	evals, err := s.evaluations.ListMatchEvaluations(ctx, matchID)
	if err != nil {
		s.log.WithError(err).WithField("match_id", matchID).Error("can't load evaluations")
		return Result{Message: "no se pudieron cargar las evaluaciones"}
	}

	sums := make(map[uuid.UUID]float64)
	counts := make(map[uuid.UUID]int)
	for _, eval := range evals {
		if eval.Rating == nil {
			continue
		}
		sums[eval.PlayerID] += float64(*eval.Rating)
		counts[eval.PlayerID]++
	}

	var updated []domain.Player
	for subjectID, count := range counts {
		player, err := s.players.GetPlayer(ctx, subjectID)
		if err != nil {
			s.log.WithError(err).WithField("player_id", subjectID).Warn("skipping unresolvable evaluated player")
			continue
		}
		matchAvg := sums[subjectID] / float64(count)
		ratedBefore := ratedMatches(player.Stats)
		player.Stats.AverageRating = ovr.FoldAverage(player.Stats.AverageRating, ratedBefore, matchAvg)
		player.OVR = ovr.Adjust(player.OVR, matchAvg)
		updated = append(updated, player)
	}
	if len(updated) > 0 {
		if err := s.players.SavePlayers(ctx, updated); err != nil {
			s.log.WithError(err).WithField("match_id", matchID).Error("can't save evaluated players")
			return Result{Message: "no se pudieron guardar las calificaciones"}
		}
	}
	if err := s.matches.SetMatchStatus(ctx, matchID, domain.MatchEvaluated); err != nil {
		s.log.WithError(err).WithField("match_id", matchID).Error("can't mark match evaluated")
		return Result{Message: "no se pudo cerrar el partido"}
	}
	return Result{Success: true, Message: fmt.Sprintf("evaluaciones aplicadas a %d jugadores", len(updated))}
}

// ratedMatches approximates how many matches already fed the career average.
// A player with an average of 0 has never been rated.
func ratedMatches(stats domain.PlayerStats) int {
	if stats.AverageRating == 0 {
		return 0
	}
	if stats.MatchesPlayed > 0 {
		return stats.MatchesPlayed - 1
	}
	return 0
}

// Recalculate rebuilds every player's counters from scratch over all finished
// matches. It's the repair tool for when an updater ran twice or a write was
// lost; average ratings and OVR are left untouched.
func (s *Service) Recalculate(ctx context.Context) Result {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		s.log.WithError(err).Error("can't list players")
		return Result{Message: "no se pudieron cargar los jugadores"}
	}
	matches, err := s.matches.ListMatches(ctx)
	if err != nil {
		s.log.WithError(err).Error("can't list matches")
		return Result{Message: "no se pudieron cargar los partidos"}
	}

	working := make(map[uuid.UUID]*domain.Player, len(players))
	for i := range players {
		players[i].Stats.MatchesPlayed = 0
		players[i].Stats.Goals = 0
		players[i].Stats.YellowCards = 0
		players[i].Stats.RedCards = 0
		working[players[i].ID] = &players[i]
	}
	for _, match := range matches {
		if !match.IsFinished() {
			continue
		}
		s.applyMatch(ctx, match, working)
	}

	rebuilt := make([]domain.Player, 0, len(players))
	for i := range players {
		rebuilt = append(rebuilt, players[i])
	}
	if err := s.players.SavePlayers(ctx, rebuilt); err != nil {
		s.log.WithError(err).Error("can't save recalculated stats")
		return Result{Message: "no se pudieron guardar las estadísticas"}
	}
	return Result{Success: true, Message: fmt.Sprintf("estadísticas recalculadas para %d jugadores", len(rebuilt))}
}
