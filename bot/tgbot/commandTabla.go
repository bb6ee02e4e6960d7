package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/league"
	"github.com/Poio-911/pateadores/internal/normalize"
	"github.com/Poio-911/pateadores/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
)

type TablaCommand struct {
	leagueService *league.Service
	leagues       storage.LeagueStorage
}

func (c *TablaCommand) Run(ctx context.Context, _ model.User, args string) (string, error) {
	lg, err := c.findLeague(ctx, args)
	if err != nil {
		return "", err
	}
	table, err := c.leagueService.Standings(ctx, lg.ID)
	if err != nil {
		return "", errors.New("no se pudo calcular la tabla")
	}
	var b strings.Builder
	b.WriteString(lg.Name)
	b.WriteString("\n")
	for _, row := range table {
		fmt.Fprintf(&b, "%d. %s %d pts (PJ %d, DG %+d)\n",
			row.Position, row.TeamName, row.Points, row.MatchesPlayed, row.GoalDifference)
	}
	if lg.Status == domain.LeagueCompleted && lg.ChampionName != "" {
		fmt.Fprintf(&b, "Campeón: %s 🏆\n", lg.ChampionName)
	}
	return b.String(), nil
}

func (c *TablaCommand) findLeague(ctx context.Context, args string) (domain.League, error) {
	leagues, err := c.leagues.ListLeagues(ctx, "")
	if err != nil {
		return domain.League{}, errors.New("no se pudieron cargar las ligas")
	}
	if len(leagues) == 0 {
		return domain.League{}, errors.New("no hay ligas registradas")
	}
	if args == "" {
		// No name given, prefer the league currently in play.
		for _, lg := range leagues {
			if lg.Status == domain.LeagueInProgress {
				return lg, nil
			}
		}
		return leagues[len(leagues)-1], nil
	}
	key := normalize.Name(args)
	for _, lg := range leagues {
		if strings.Contains(normalize.Name(lg.Name), key) {
			return lg, nil
		}
	}
	return domain.League{}, errors.New("no encontré esa liga")
}

func (c *TablaCommand) Help() string {
	return `Tabla de posiciones. Uso: /tabla o /tabla y el nombre de la liga`
}

func (c *TablaCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *TablaCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
