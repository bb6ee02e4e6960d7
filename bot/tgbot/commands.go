package tgbot

import (
	"context"

	"github.com/Poio-911/pateadores/bot/botstorage"
	"github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/league"
	"github.com/Poio-911/pateadores/internal/player"
	"github.com/Poio-911/pateadores/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
)

type Command interface {
	Run(ctx context.Context, user model.User, args string) (string, error)
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	ps *player.Service,
	ls *league.Service,
	leagues storage.LeagueStorage,
	matches storage.MatchStorage,
	bs botstorage.BotStorage,
	adminPass string,
	subFn func(event model.EventType, id int),
	unsubFn func(event model.EventType, id int),
) *Commands {
	ac := &AyudaCommand{}
	uc := Commands{
		list: map[string]Command{
			"ayuda": ac,
			"start": ac,
			"tabla": &TablaCommand{
				leagueService: ls,
				leagues:       leagues,
			},
			"partidos": &PartidosCommand{
				matches: matches,
			},
			"goleadores": &GoleadoresCommand{
				playerService: ps,
			},
			"jugador": &JugadorCommand{
				playerService: ps,
			},
			"rol": &RolCommand{
				adminPassword: adminPass,
				botStorage:    bs,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	ac.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, user model.User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(ctx, user, args)
			}
		}
	}
	return "", ErrBadRequest
}
