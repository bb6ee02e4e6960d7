package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/player"

	mapset "github.com/deckarep/golang-set/v2"
)

type JugadorCommand struct {
	playerService *player.Service
}

func (c *JugadorCommand) Run(ctx context.Context, _ model.User, args string) (string, error) {
	if strings.TrimSpace(args) == "" {
		return "", errors.New(`hay que indicar el nombre en el mismo mensaje. Por ejemplo "/jugador lucho"`)
	}
	p, err := c.playerService.FindByName(ctx, args)
	if err != nil {
		return "", errors.New("no encontré a ese jugador")
	}
	return printPlayer(p), nil
}

func printPlayer(p domain.Player) string {
	var buf strings.Builder
	buf.WriteString(p.Name)
	buf.WriteString(" (")
	buf.WriteString(string(p.Position))
	buf.WriteString(")\n")
	buf.WriteString("OVR: ")
	buf.WriteString(strconv.Itoa(p.OVR))
	buf.WriteString("\n")
	buf.WriteString("Partidos: ")
	buf.WriteString(strconv.Itoa(p.Stats.MatchesPlayed))
	buf.WriteString("\n")
	buf.WriteString("Goles: ")
	buf.WriteString(strconv.Itoa(p.Stats.Goals))
	buf.WriteString("\n")
	buf.WriteString("Promedio: ")
	buf.WriteString(strconv.FormatFloat(p.Stats.AverageRating, 'f', 1, 64))
	buf.WriteString("\n")
	buf.WriteString("Amarillas: ")
	buf.WriteString(strconv.Itoa(p.Stats.YellowCards))
	buf.WriteString(" / Rojas: ")
	buf.WriteString(strconv.Itoa(p.Stats.RedCards))
	return buf.String()
}

func (c *JugadorCommand) Help() string {
	return `Ficha de un jugador. Uso: /jugador y el nombre`
}

func (c *JugadorCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *JugadorCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
