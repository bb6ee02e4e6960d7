package tgbot

import (
	"context"

	"github.com/Poio-911/pateadores/bot/botstorage"
	"github.com/Poio-911/pateadores/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(event model.EventType, id int)
}

func (c *UnsubCommand) Run(_ context.Context, user model.User, args string) (string, error) {
	event := parseEvent(args)
	err := c.botStorage.Unsubscribe(user, event)
	if err != nil {
		return "", err
	}
	c.unsub(event, user.ID)
	return "Listo, no vas a recibir más avisos", nil
}

func (c *UnsubCommand) Help() string {
	return `Dejar de recibir avisos. Uso: /unsub o /unsub ligas`
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
