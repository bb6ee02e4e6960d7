package tgbot

import (
	"context"

	"github.com/Poio-911/pateadores/bot/botstorage"
	"github.com/Poio-911/pateadores/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(event model.EventType, id int)
}

func (c *SubCommand) Run(_ context.Context, user model.User, args string) (string, error) {
	event := parseEvent(args)
	err := c.botStorage.Subscribe(user, event)
	if err != nil {
		return "", err
	}
	c.sub(event, user.ID)
	return "Suscripción activada, para darte de baja: /unsub", nil
}

// parseEvent defaults to match results, "ligas" narrows it to league
// completions.
func parseEvent(args string) model.EventType {
	if args == "ligas" {
		return model.LeagueCompleted
	}
	return model.MatchCompleted
}

func (c *SubCommand) Help() string {
	return `Recibir avisos de resultados. Uso: /sub o /sub ligas`
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
