package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/player"

	mapset "github.com/deckarep/golang-set/v2"
)

type GoleadoresCommand struct {
	playerService *player.Service
}

func (c *GoleadoresCommand) Run(ctx context.Context, _ model.User, _ string) (string, error) {
	scorers, err := c.playerService.TopScorers(ctx, 10)
	if err != nil {
		return "", errors.New("no se pudo armar la tabla de goleadores")
	}
	var b strings.Builder
	b.WriteString("Goleadores:\n")
	for i, p := range scorers {
		if p.Stats.Goals == 0 {
			break
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(p.Name)
		b.WriteString(" - ")
		b.WriteString(strconv.Itoa(p.Stats.Goals))
		if p.Stats.Goals == 1 {
			b.WriteString(" gol\n")
		} else {
			b.WriteString(" goles\n")
		}
	}
	return b.String(), nil
}

func (c *GoleadoresCommand) Help() string {
	return `Tabla de goleadores`
}

func (c *GoleadoresCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *GoleadoresCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
