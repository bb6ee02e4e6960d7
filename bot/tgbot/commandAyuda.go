package tgbot

import (
	"context"
	"strings"

	"github.com/Poio-911/pateadores/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type AyudaCommand struct {
	commands map[string]Command
}

func (c *AyudaCommand) Run(_ context.Context, user model.User, args string) (string, error) {
	for s, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		if args == s {
			return command.Help(), nil
		}
	}
	var b strings.Builder
	b.WriteString("Comandos disponibles:\n")
	for commandName, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("Para más detalle: /ayuda y el nombre del comando")
	return b.String(), nil
}

func (c *AyudaCommand) Help() string {
	return "Muestra la lista de comandos disponibles"
}

func (c *AyudaCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *AyudaCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
