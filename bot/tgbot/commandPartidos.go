package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
)

const recentMatchLimit = 5

type PartidosCommand struct {
	matches storage.MatchStorage
}

func (c *PartidosCommand) Run(ctx context.Context, _ model.User, _ string) (string, error) {
	matches, err := c.matches.ListMatches(ctx)
	if err != nil {
		return "", errors.New("no se pudieron cargar los partidos")
	}
	var b strings.Builder
	b.WriteString("Últimos resultados:\n")
	shown := 0
	for i := len(matches) - 1; i >= 0 && shown < recentMatchLimit; i-- {
		m := matches[i]
		if !m.IsFinished() || len(m.Teams) != 2 {
			continue
		}
		fmt.Fprintf(&b, "%s %d - %d %s (%s)\n",
			m.Teams[0].Name, m.Score(0), m.Score(1), m.Teams[1].Name,
			m.Date.Format("02/01"))
		shown++
	}
	if shown == 0 {
		return "todavía no hay partidos jugados", nil
	}
	return b.String(), nil
}

func (c *PartidosCommand) Help() string {
	return `Los últimos partidos jugados`
}

func (c *PartidosCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *PartidosCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
