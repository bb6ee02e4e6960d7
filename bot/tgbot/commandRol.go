package tgbot

import (
	"context"
	"errors"
	"strings"

	"github.com/Poio-911/pateadores/bot/botstorage"
	"github.com/Poio-911/pateadores/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type RolCommand struct {
	adminPassword string
	botStorage    botstorage.BotStorage
}

func (c *RolCommand) Run(_ context.Context, user model.User, args string) (string, error) {
	a := strings.SplitN(args, " ", 2)
	switch a[0] {
	case "admin":
		if user.Role == model.RoleAdmin {
			return "", errors.New("ese rol ya está asignado")
		}
		if len(a) != 2 {
			return "", ErrBadRequest
		}
		if a[1] != c.adminPassword { // wrong admin password
			return "", ErrBadRequest
		}
		user.Role = model.RoleAdmin
	case "user":
		if user.Role == model.RoleUser {
			return "", errors.New("ese rol ya está asignado")
		}
		user.Role = model.RoleUser
	default:
		return "", ErrBadRequest
	}
	err := c.botStorage.UpdateUserRole(user)
	if err != nil {
		return "", err
	}
	return "rol actualizado", nil
}

func (c *RolCommand) Help() string {
	return `Cambio de rol. Uso: /rol user o /rol admin <pass>`
}

func (c *RolCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *RolCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}
