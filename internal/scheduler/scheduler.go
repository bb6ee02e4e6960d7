package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Poio-911/pateadores/internal/config"
	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/league"
	"github.com/Poio-911/pateadores/internal/storage"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the background housekeeping: the periodic league completion
// sweep and the daily reminder for pending evaluations. notify may be nil
// when no push channel is configured.
type Scheduler struct {
	s             gocron.Scheduler
	leagues       storage.LeagueStorage
	leagueService *league.Service
	evaluations   storage.EvaluationStorage
	notify        func(msg string)
	cfg           config.Scheduler
	log           *logrus.Entry
}

func New(
	leagues storage.LeagueStorage,
	ls *league.Service,
	evaluations storage.EvaluationStorage,
	notify func(msg string),
	cfg config.Scheduler,
	log *logrus.Logger,
) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{
		s:             s,
		leagues:       leagues,
		leagueService: ls,
		evaluations:   evaluations,
		notify:        notify,
		cfg:           cfg,
		log:           log.WithField("from", "scheduler"),
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(time.Duration(s.cfg.SweepMinutes)*time.Minute),
		gocron.NewTask(s.sweepLeagues),
	)
	if err != nil {
		return fmt.Errorf("create league sweep job: %w", err)
	}

	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.cfg.ReminderHour), 0, 0))),
		gocron.NewTask(s.remindPendingEvaluations),
	)
	if err != nil {
		return fmt.Errorf("create evaluation reminder job: %w", err)
	}

	s.s.Start()
	s.log.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// sweepLeagues retries completion on every league still in play. Leagues
// whose matches are unfinished simply report a pending message and stay as
// they are.
func (s *Scheduler) sweepLeagues() {
	ctx := context.Background()
	leagues, err := s.leagues.ListLeagues(ctx, domain.LeagueInProgress)
	if err != nil {
		s.log.WithError(err).Error("can't list leagues in progress")
		return
	}
	for _, lg := range leagues {
		result := s.leagueService.CheckAndComplete(ctx, lg.ID)
		if !result.Success {
			continue
		}
		s.log.WithFields(logrus.Fields{
			"league_id": lg.ID,
			"message":   result.Message,
		}).Info("league sweep progressed")
		if s.notify != nil {
			s.notify(result.Message)
		}
	}
}

func (s *Scheduler) remindPendingEvaluations() {
	ctx := context.Background()
	pending, err := s.evaluations.ListPendingAssignments(ctx)
	if err != nil {
		s.log.WithError(err).Error("can't list pending assignments")
		return
	}
	if len(pending) == 0 {
		return
	}
	s.log.WithField("pending", len(pending)).Info("evaluation reminder")
	if s.notify != nil {
		s.notify(fmt.Sprintf("Hay %d evaluaciones pendientes, no te olvides de calificar a tus compañeros", len(pending)))
	}
}
