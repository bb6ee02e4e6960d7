package web

import (
	"errors"
	"strconv"

	"github.com/Poio-911/pateadores/internal/config"
	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/evaluation"
	"github.com/Poio-911/pateadores/internal/league"
	"github.com/Poio-911/pateadores/internal/player"
	"github.com/Poio-911/pateadores/internal/playerstats"
	"github.com/Poio-911/pateadores/internal/storage"
	"github.com/Poio-911/pateadores/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	playerService     *player.Service
	leagueService     *league.Service
	evaluationService *evaluation.Service
	statsService      *playerstats.Service
	matches           storage.MatchStorage
	notifications     storage.NotificationStorage
	app               *fiber.App
	cfg               config.Server
	log               *logrus.Entry
}

func New(
	ps *player.Service,
	ls *league.Service,
	es *evaluation.Service,
	ss *playerstats.Service,
	matches storage.MatchStorage,
	notifications storage.NotificationStorage,
	cfg config.Server,
	log *logrus.Logger,
) *Server {
	server := Server{
		playerService:     ps,
		leagueService:     ls,
		evaluationService: es,
		statsService:      ss,
		matches:           matches,
		notifications:     notifications,
		cfg:               cfg,
		log:               log.WithField("from", "web"),
	}

	app := fiber.New()
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})
	app.Get(webpath.Api, server.handleStatus)
	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiSearchPlayers, server.handleSearchPlayers)
	app.Get(webpath.ApiTopScorers, server.handleTopScorers)
	app.Post(webpath.ApiRecalculate, server.handleRecalculate)
	app.Get(webpath.ApiGetPlayer, server.handleGetPlayer)
	app.Get(webpath.ApiMatches, server.handleListMatches)
	app.Post(webpath.ApiMatchStats, server.handleMatchStats)
	app.Get(webpath.ApiMatchAssignments, server.handleListAssignments)
	app.Post(webpath.ApiMatchAssignments, server.handleGenerateAssignments)
	app.Post(webpath.ApiMatchClose, server.handleCloseMatch)
	app.Post(webpath.ApiEvaluations, server.handleSubmitEvaluation)
	app.Get(webpath.ApiLeagueStandings, server.handleStandings)
	app.Post(webpath.ApiLeagueComplete, server.handleCompleteLeague)
	app.Post(webpath.ApiLeagueFinal, server.handleResolveFinal)
	app.Get(webpath.ApiNotifications, server.handleListNotifications)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func pathID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return id, nil
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.playerService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(players)
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	p, err := s.playerService.Get(ctx.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "jugador no encontrado")
	}
	if err != nil {
		return err
	}
	return ctx.JSON(p)
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	ownerID := uuid.Nil
	if req.OwnerID != "" {
		parsed, err := uuid.Parse(req.OwnerID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID de dueño inválido")
		}
		ownerID = parsed
	}
	p, err := s.playerService.Create(ctx.Context(), req.Name, domain.Position(req.Position), req.attributes(), ownerID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) handleSearchPlayers(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "falta el parámetro q")
	}
	p, err := s.playerService.FindByName(ctx.Context(), query)
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "jugador no encontrado")
	}
	if err != nil {
		return err
	}
	return ctx.JSON(p)
}

func (s *Server) handleTopScorers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)
	players, err := s.playerService.TopScorers(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(players)
}

func (s *Server) handleRecalculate(ctx *fiber.Ctx) error {
	result := s.statsService.Recalculate(ctx.Context())
	if !result.Success {
		return fiber.NewError(fiber.StatusConflict, result.Message)
	}
	return ctx.JSON(result)
}

func (s *Server) handleListMatches(ctx *fiber.Ctx) error {
	matches, err := s.matches.ListMatches(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(matches)
}

func (s *Server) handleMatchStats(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	result := s.statsService.UpdateFromMatch(ctx.Context(), id)
	if !result.Success {
		return fiber.NewError(fiber.StatusConflict, result.Message)
	}
	return ctx.JSON(result)
}

func (s *Server) handleGenerateAssignments(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	assignments, err := s.evaluationService.GenerateAssignments(ctx.Context(), id)
	if errors.Is(err, evaluation.ErrMatchNotFinished) {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "partido no encontrado")
	}
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(assignments)
}

func (s *Server) handleListAssignments(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	pending, err := s.evaluationService.PendingForMatch(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"pending": pending})
}

func (s *Server) handleCloseMatch(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	result := s.statsService.ApplyEvaluations(ctx.Context(), id)
	if !result.Success {
		return fiber.NewError(fiber.StatusConflict, result.Message)
	}
	return ctx.JSON(result)
}

func (s *Server) handleSubmitEvaluation(ctx *fiber.Ctx) error {
	var req submitEvaluation
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	err := s.evaluationService.Submit(ctx.Context(), req.convertToDomain())
	switch {
	case errors.Is(err, evaluation.ErrAlreadyEvaluated):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, evaluation.ErrMatchNotFinished):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "partido no encontrado")
	case err != nil:
		return err
	}
	return ctx.SendStatus(fiber.StatusCreated)
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	table, err := s.leagueService.Standings(ctx.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "liga no encontrada")
	}
	if err != nil {
		return err
	}
	return ctx.JSON(table)
}

func (s *Server) handleCompleteLeague(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	result := s.leagueService.CheckAndComplete(ctx.Context(), id)
	if !result.Success && !result.RequiresTiebreaker {
		return fiber.NewError(fiber.StatusConflict, result.Message)
	}
	return ctx.JSON(result)
}

func (s *Server) handleResolveFinal(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var req resolveFinal
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	result := s.leagueService.ResolveFinal(ctx.Context(), id, req.MatchID)
	if !result.Success {
		return fiber.NewError(fiber.StatusConflict, result.Message)
	}
	return ctx.JSON(result)
}

func (s *Server) handleListNotifications(ctx *fiber.Ctx) error {
	id, err := pathID(ctx, "userId")
	if err != nil {
		return err
	}
	list, err := s.notifications.ListUserNotifications(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(list)
}
