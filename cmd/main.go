package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	botsqlite "github.com/Poio-911/pateadores/bot/botstorage/sqlite"
	botmodel "github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/bot/tgbot"
	"github.com/Poio-911/pateadores/internal/config"
	"github.com/Poio-911/pateadores/internal/evaluation"
	"github.com/Poio-911/pateadores/internal/league"
	"github.com/Poio-911/pateadores/internal/logger"
	"github.com/Poio-911/pateadores/internal/player"
	"github.com/Poio-911/pateadores/internal/playerstats"
	"github.com/Poio-911/pateadores/internal/scheduler"
	"github.com/Poio-911/pateadores/internal/storage/sqlite"
	"github.com/Poio-911/pateadores/internal/web"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New()

	store, err := sqlite.New(log, cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	playerService := player.New(store, log)
	leagueService := league.New(store, store, store, store, log)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	evaluationService := evaluation.New(store, store, store, rnd, log)
	statsService := playerstats.New(store, store, store, log)

	var notify func(msg string)
	var bot *tgbot.Bot
	if cfg.TgBot.Enabled {
		botStore, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err = tgbot.New(playerService, leagueService, store, store, botStore, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
		notify = func(msg string) {
			bot.Notify(botmodel.MatchCompleted, msg)
		}
	}

	sched, err := scheduler.New(store, leagueService, store, notify, cfg.Scheduler, log)
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		_ = sched.Stop()
	}()

	server := web.New(
		playerService,
		leagueService,
		evaluationService,
		statsService,
		store,
		store,
		cfg.Server,
		log,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		return server.Shutdown()
	}
}
