package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Poio-911/pateadores/bot/botstorage"
	botmodel "github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/config"
	"github.com/Poio-911/pateadores/internal/league"
	"github.com/Poio-911/pateadores/internal/player"
	"github.com/Poio-911/pateadores/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands
}

var ErrBadRequest = errors.New("comando desconocido, probá /ayuda")

func New(
	ps *player.Service,
	ls *league.Service,
	leagues storage.LeagueStorage,
	matches storage.MatchStorage,
	bs botstorage.BotStorage,
	cfg config.Config,
	log *logrus.Logger,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	subs := newSubs()
	users, err := bs.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		for _, subType := range users[i].Subscriptions {
			subs.Add(subType, users[i].ID)
		}
	}

	b := Bot{
		bot:        bot,
		botStorage: bs,
		log:        log.WithField("from", "tg-bot"),
		subs:       subs,
	}

	b.commands = NewCommands(
		ps,
		ls,
		leagues,
		matches,
		bs,
		cfg.TgBot.AdminPass,
		func(event botmodel.EventType, id int) {
			b.subs.Add(event, id)
		},
		func(event botmodel.EventType, id int) {
			b.subs.Remove(event, id)
		},
	)

	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.GetUser(int(tgUser.ID))
	if err != nil {
		user, err = b.botStorage.NewUser(botmodel.User{
			ID:        int(tgUser.ID),
			FirstName: tgUser.FirstName,
			Username:  tgUser.UserName,
			Role:      botmodel.RoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to get user from db")
			return
		}
	}

	err = b.botStorage.Log(user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	cmd, args := splitCommand(update.Message.Text)
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	text, err := b.commands.RunCommand(ctx, user, cmd, args)
	if err != nil {
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
		return
	}
}

// splitCommand turns "/tabla@somebot apertura 2026" into ("tabla",
// "apertura 2026").
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "/")
	cmd, args, _ := strings.Cut(text, " ")
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	return cmd, strings.TrimSpace(args)
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

// Notify pushes text to every user subscribed to the event.
func (b *Bot) Notify(event botmodel.EventType, text string) {
	for _, userID := range b.subs.GetUserIDs(event) {
		msg := tgbotapi.NewMessage(int64(userID), text)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).WithField("user_id", userID).Error("notify error")
			return
		}
	}
}
