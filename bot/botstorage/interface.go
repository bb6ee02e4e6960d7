package botstorage

import "github.com/Poio-911/pateadores/bot/model"

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUserRole(user model.User) error
	Subscribe(user model.User, event model.EventType) error
	Unsubscribe(user model.User, event model.EventType) error
	Log(user model.User, msg string) error
}
