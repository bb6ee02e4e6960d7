package league

import (
	"context"
	"fmt"
	"time"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/standings"
	"github.com/Poio-911/pateadores/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Result is what the orchestration entry points hand back to the UI. Message
// is in the product's language and safe to show directly.
type Result struct {
	Success            bool
	Message            string
	RequiresTiebreaker bool
	FinalMatchID       *uuid.UUID
}

func failure(msg string) Result {
	return Result{Message: msg}
}

const finalLeadTime = 72 * time.Hour

type Service struct {
	leagues storage.LeagueStorage
	matches storage.MatchStorage
	teams   storage.TeamStorage
	players storage.PlayerStorage
	log     *logrus.Entry
}

func New(
	leagues storage.LeagueStorage,
	matches storage.MatchStorage,
	teams storage.TeamStorage,
	players storage.PlayerStorage,
	log *logrus.Logger,
) *Service {
	return &Service{
		leagues: leagues,
		matches: matches,
		teams:   teams,
		players: players,
		log:     log.WithField("from", "league-service"),
	}
}

// CheckAndComplete re-reads the league and all of its matches and, if every
// match is finished, resolves the champion. A full tie between the top two
// creates the decisive match instead of completing the league. Nothing is
// written until all preconditions hold.
func (s *Service) CheckAndComplete(ctx context.Context, leagueID uuid.UUID) Result {
	lg, err := s.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		s.log.WithError(err).WithField("league_id", leagueID).Error("can't load league")
		return failure("liga no encontrada")
	}
	if lg.Status == domain.LeagueCompleted {
		return failure("la liga ya está completada")
	}
	if lg.RequiresTiebreaker && lg.FinalMatchID != nil {
		return Result{
			Message:            "la liga espera el resultado del partido de desempate",
			RequiresTiebreaker: true,
			FinalMatchID:       lg.FinalMatchID,
		}
	}

	matches, err := s.matches.ListLeagueMatches(ctx, leagueID)
	if err != nil {
		s.log.WithError(err).WithField("league_id", leagueID).Error("can't load league matches")
		return failure("no se pudieron cargar los partidos de la liga")
	}
	if len(matches) == 0 {
		return failure("la liga aún no tiene partidos")
	}
	for _, m := range matches {
		if !m.IsFinished() {
			return failure("la liga aún tiene partidos pendientes")
		}
	}

	teams, err := s.teams.ListTeams(ctx, lg.TeamIDs)
	if err != nil {
		s.log.WithError(err).WithField("league_id", leagueID).Error("can't load league teams")
		return failure("no se pudieron cargar los equipos de la liga")
	}
	table := standings.Calculate(matches, teams)
	champion := standings.DetermineChampion(table, matches)
	if champion == nil {
		return failure("la liga no tiene suficientes equipos para definir un campeón")
	}

	if champion.RequiresTiebreaker {
		final, err := s.createFinalMatch(ctx, lg, champion.ChampionID, champion.RunnerUpID)
		if err != nil {
			s.log.WithError(err).WithField("league_id", leagueID).Error("can't create tiebreaker match")
			return failure("no se pudo crear el partido de desempate")
		}
		lg.RequiresTiebreaker = true
		lg.FinalMatchID = &final.ID
		if err := s.leagues.SaveLeague(ctx, lg); err != nil {
			s.log.WithError(err).WithField("league_id", leagueID).Error("can't save league")
			return failure("no se pudo actualizar la liga")
		}
		return Result{
			Success:            true,
			Message:            fmt.Sprintf("empate total entre %s y %s: se creó un partido de desempate", champion.ChampionName, champion.RunnerUpName),
			RequiresTiebreaker: true,
			FinalMatchID:       &final.ID,
		}
	}

	lg.Status = domain.LeagueCompleted
	lg.ChampionTeamID = &champion.ChampionID
	lg.ChampionName = champion.ChampionName
	lg.RunnerUpTeamID = &champion.RunnerUpID
	lg.RunnerUpName = champion.RunnerUpName
	lg.RequiresTiebreaker = false
	if err := s.leagues.SaveLeague(ctx, lg); err != nil {
		s.log.WithError(err).WithField("league_id", leagueID).Error("can't save league")
		return failure("no se pudo actualizar la liga")
	}
	s.log.WithFields(logrus.Fields{
		"league_id": leagueID,
		"champion":  champion.ChampionName,
	}).Info("league completed")
	return Result{
		Success: true,
		Message: fmt.Sprintf("liga completada: campeón %s", champion.ChampionName),
	}
}

// ResolveFinal closes a league off the result of its tiebreaker final. The
// champion comes from the final's score alone, never from the standings. A
// drawn final is rejected without touching the league.
func (s *Service) ResolveFinal(ctx context.Context, leagueID, matchID uuid.UUID) Result {
	lg, err := s.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		s.log.WithError(err).WithField("league_id", leagueID).Error("can't load league")
		return failure("liga no encontrada")
	}
	if lg.Status == domain.LeagueCompleted {
		return failure("la liga ya está completada")
	}
	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		s.log.WithError(err).WithField("match_id", matchID).Error("can't load final match")
		return failure("partido no encontrado")
	}
	if match.Type != domain.MatchLeagueFinal {
		return failure("el partido no es una final de liga")
	}
	if !match.IsFinished() {
		return failure("la final aún no está completada")
	}
	if len(match.Teams) != 2 {
		return failure("la final no tiene dos equipos")
	}
	homeGoals, awayGoals := match.Score(0), match.Score(1)
	if homeGoals == awayGoals {
		return failure("una final no puede terminar en empate")
	}

	winner, loser := match.Teams[0], match.Teams[1]
	if awayGoals > homeGoals {
		winner, loser = loser, winner
	}
	lg.Status = domain.LeagueCompleted
	lg.ChampionTeamID = &winner.TeamID
	lg.ChampionName = winner.Name
	lg.RunnerUpTeamID = &loser.TeamID
	lg.RunnerUpName = loser.Name
	lg.RequiresTiebreaker = false
	if err := s.leagues.SaveLeague(ctx, lg); err != nil {
		s.log.WithError(err).WithField("league_id", leagueID).Error("can't save league")
		return failure("no se pudo actualizar la liga")
	}
	s.log.WithFields(logrus.Fields{
		"league_id": leagueID,
		"champion":  winner.Name,
	}).Info("league final resolved")
	return Result{
		Success: true,
		Message: fmt.Sprintf("final resuelta: campeón %s", winner.Name),
	}
}

// Standings recomputes the current table from the league's matches.
func (s *Service) Standings(ctx context.Context, leagueID uuid.UUID) ([]domain.Standing, error) {
	lg, err := s.leagues.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league: %w", err)
	}
	matches, err := s.matches.ListLeagueMatches(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league matches: %w", err)
	}
	teams, err := s.teams.ListTeams(ctx, lg.TeamIDs)
	if err != nil {
		return nil, fmt.Errorf("load league teams: %w", err)
	}
	return standings.Calculate(matches, teams), nil
}

const unknownPlayerName = "Jugador desconocido"

// createFinalMatch synthesizes the decisive match between two tied teams.
// Unresolvable roster members become placeholders instead of failing the
// whole creation.
func (s *Service) createFinalMatch(ctx context.Context, lg domain.League, teamA, teamB uuid.UUID) (domain.Match, error) {
	snapshots := make([]domain.TeamSnapshot, 0, 2)
	matchSize := 0
	for _, teamID := range []uuid.UUID{teamA, teamB} {
		team, err := s.teams.GetTeam(ctx, teamID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("load team %s: %w", teamID, err)
		}
		roster := make([]domain.RosterPlayer, 0, len(team.Members))
		totalOVR := 0
		for _, member := range team.Members {
			player, err := s.players.GetPlayer(ctx, member.PlayerID)
			if err != nil {
				s.log.WithError(err).WithField("player_id", member.PlayerID).Warn("roster player not found, using placeholder")
				roster = append(roster, domain.RosterPlayer{
					ID:          member.PlayerID,
					DisplayName: unknownPlayerName,
				})
				continue
			}
			roster = append(roster, domain.RosterPlayer{
				ID:          player.ID,
				DisplayName: player.Name,
				OVR:         player.OVR,
				Position:    player.Position,
				Photo:       player.Photo,
			})
			totalOVR += player.OVR
		}
		teamOVR := 0
		if len(roster) > 0 {
			teamOVR = totalOVR / len(roster)
		}
		matchSize += len(roster)
		snapshots = append(snapshots, domain.TeamSnapshot{
			TeamID:  team.ID,
			Name:    team.Name,
			Jersey:  team.Jersey,
			Players: roster,
			TeamOVR: teamOVR,
		})
	}

	match := domain.Match{
		ID:                 uuid.New(),
		Date:               time.Now().Add(finalLeadTime),
		Type:               domain.MatchLeagueFinal,
		Status:             domain.MatchUpcoming,
		Teams:              snapshots,
		ParticipantTeamIDs: []uuid.UUID{teamA, teamB},
		LeagueInfo: &domain.LeagueInfo{
			LeagueID: lg.ID,
			Round:    domain.FinalRound,
		},
		MatchSize: matchSize,
		CreatedAt: time.Now(),
	}
	return s.matches.CreateMatch(ctx, match)
}
