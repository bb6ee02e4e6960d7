package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Poio-911/pateadores/gen/model"
	"github.com/Poio-911/pateadores/gen/table"
	"github.com/Poio-911/pateadores/internal/config"
	"github.com/Poio-911/pateadores/internal/domain"
	sqlite3 "github.com/Poio-911/pateadores/internal/migrate"
	"github.com/Poio-911/pateadores/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.TeamStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.LeagueStorage = (*Storage)(nil)
var _ storage.EvaluationStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.DB) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "sqlite-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.Name.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) GetPlayer(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, player := range players {
		dbPlayer := convertPlayerFromDomain(player)
		_, err := table.Players.
			UPDATE(table.Players.MutableColumns).
			MODEL(dbPlayer).
			WHERE(table.Players.ID.EQ(sqlite.String(dbPlayer.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("save player %s: %w", dbPlayer.ID, err)
		}
	}
	return tx.Commit()
}

func (s *Storage) GetTeam(ctx context.Context, id uuid.UUID) (domain.Team, error) {
	var team model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(table.Teams.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &team)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Team{}, storage.ErrNotFound
		}
		return domain.Team{}, err
	}
	return convertTeamToDomain(team)
}

func (s *Storage) ListTeams(ctx context.Context, ids []uuid.UUID) ([]domain.Team, error) {
	stmt := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams)
	if len(ids) > 0 {
		exprs := make([]sqlite.Expression, 0, len(ids))
		for _, id := range ids {
			exprs = append(exprs, sqlite.String(id.String()))
		}
		stmt = stmt.WHERE(table.Teams.ID.IN(exprs...))
	}
	var teams []model.Teams
	err := stmt.QueryContext(ctx, s.db, &teams)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		t, err := convertTeamToDomain(team)
		if err != nil {
			return nil, err
		}
		converted = append(converted, t)
	}
	return converted, nil
}

func (s *Storage) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	dbTeam, err := convertTeamFromDomain(team)
	if err != nil {
		return domain.Team{}, err
	}
	_, err = table.Teams.
		INSERT(table.Teams.AllColumns).
		MODEL(dbTeam).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.Date.ASC()).
		QueryContext(ctx, s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) ListLeagueMatches(ctx context.Context, leagueID uuid.UUID) ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.LeagueID.EQ(sqlite.String(leagueID.String()))).
		ORDER_BY(table.Matches.Round.ASC(), table.Matches.Date.ASC()).
		QueryContext(ctx, s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) GetMatch(ctx context.Context, id uuid.UUID) (domain.Match, error) {
	var match model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &match)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Match{}, storage.ErrNotFound
		}
		return domain.Match{}, err
	}
	return convertMatchToDomain(match)
}

func (s *Storage) CreateMatch(ctx context.Context, match domain.Match) (domain.Match, error) {
	dbMatch, err := convertMatchFromDomain(match)
	if err != nil {
		return domain.Match{}, err
	}
	_, err = table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(dbMatch).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

func (s *Storage) SetMatchStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) error {
	res, err := table.Matches.
		UPDATE(table.Matches.Status).
		SET(sqlite.String(string(status))).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) GetLeague(ctx context.Context, id uuid.UUID) (domain.League, error) {
	var league model.Leagues
	err := table.Leagues.
		SELECT(table.Leagues.AllColumns).
		FROM(table.Leagues).
		WHERE(table.Leagues.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &league)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.League{}, storage.ErrNotFound
		}
		return domain.League{}, err
	}
	return convertLeagueToDomain(league)
}

func (s *Storage) ListLeagues(ctx context.Context, status domain.LeagueStatus) ([]domain.League, error) {
	stmt := table.Leagues.
		SELECT(table.Leagues.AllColumns).
		FROM(table.Leagues)
	if status != "" {
		stmt = stmt.WHERE(table.Leagues.Status.EQ(sqlite.String(string(status))))
	}
	var leagues []model.Leagues
	err := stmt.QueryContext(ctx, s.db, &leagues)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.League, 0, len(leagues))
	for _, league := range leagues {
		l, err := convertLeagueToDomain(league)
		if err != nil {
			return nil, err
		}
		converted = append(converted, l)
	}
	return converted, nil
}

func (s *Storage) CreateLeague(ctx context.Context, league domain.League) (domain.League, error) {
	dbLeague, err := convertLeagueFromDomain(league)
	if err != nil {
		return domain.League{}, err
	}
	_, err = table.Leagues.
		INSERT(table.Leagues.AllColumns).
		MODEL(dbLeague).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.League{}, err
	}
	return league, nil
}

func (s *Storage) SaveLeague(ctx context.Context, league domain.League) error {
	dbLeague, err := convertLeagueFromDomain(league)
	if err != nil {
		return err
	}
	res, err := table.Leagues.
		UPDATE(table.Leagues.MutableColumns).
		MODEL(dbLeague).
		WHERE(table.Leagues.ID.EQ(sqlite.String(dbLeague.ID))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) CreateEvaluation(ctx context.Context, eval domain.Evaluation) error {
	dbEval, err := convertEvaluationFromDomain(eval)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	var existing model.Evaluations
	err = table.Evaluations.
		SELECT(table.Evaluations.ID).
		FROM(table.Evaluations).
		WHERE(table.Evaluations.ID.EQ(sqlite.String(dbEval.ID))).
		QueryContext(ctx, tx, &existing)
	if err == nil {
		return storage.ErrDuplicate
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return err
	}
	_, err = table.Evaluations.
		INSERT(table.Evaluations.AllColumns).
		MODEL(dbEval).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Storage) ListMatchEvaluations(ctx context.Context, matchID uuid.UUID) ([]domain.Evaluation, error) {
	var evals []model.Evaluations
	err := table.Evaluations.
		SELECT(table.Evaluations.AllColumns).
		FROM(table.Evaluations).
		WHERE(table.Evaluations.MatchID.EQ(sqlite.String(matchID.String()))).
		QueryContext(ctx, s.db, &evals)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Evaluation, 0, len(evals))
	for _, eval := range evals {
		e, err := convertEvaluationToDomain(eval)
		if err != nil {
			return nil, err
		}
		converted = append(converted, e)
	}
	return converted, nil
}

func (s *Storage) CreateAssignments(ctx context.Context, assignments []domain.EvaluationAssignment, notifications []domain.Notification) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	for _, a := range assignments {
		_, err := table.EvaluationAssignments.
			INSERT(table.EvaluationAssignments.AllColumns).
			MODEL(convertAssignmentFromDomain(a)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("insert assignment %s: %w", a.ID, err)
		}
	}
	for _, n := range notifications {
		_, err := table.Notifications.
			INSERT(table.Notifications.AllColumns).
			MODEL(convertNotificationFromDomain(n)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("insert notification %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}

func (s *Storage) ListMatchAssignments(ctx context.Context, matchID uuid.UUID) ([]domain.EvaluationAssignment, error) {
	var assignments []model.EvaluationAssignments
	err := table.EvaluationAssignments.
		SELECT(table.EvaluationAssignments.AllColumns).
		FROM(table.EvaluationAssignments).
		WHERE(table.EvaluationAssignments.MatchID.EQ(sqlite.String(matchID.String()))).
		QueryContext(ctx, s.db, &assignments)
	if err != nil {
		return nil, err
	}
	return convertAssignmentsToDomain(assignments)
}

func (s *Storage) ListPendingAssignments(ctx context.Context) ([]domain.EvaluationAssignment, error) {
	var assignments []model.EvaluationAssignments
	err := table.EvaluationAssignments.
		SELECT(table.EvaluationAssignments.AllColumns).
		FROM(table.EvaluationAssignments).
		WHERE(table.EvaluationAssignments.Status.EQ(sqlite.String(string(domain.AssignmentPending)))).
		QueryContext(ctx, s.db, &assignments)
	if err != nil {
		return nil, err
	}
	return convertAssignmentsToDomain(assignments)
}

func (s *Storage) MarkAssignmentDone(ctx context.Context, id string) error {
	res, err := table.EvaluationAssignments.
		UPDATE(table.EvaluationAssignments.Status).
		SET(sqlite.String(string(domain.AssignmentDone))).
		WHERE(table.EvaluationAssignments.ID.EQ(sqlite.String(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := table.Notifications.
		INSERT(table.Notifications.AllColumns).
		MODEL(convertNotificationFromDomain(n)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) ListUserNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	var notifications []model.Notifications
	err := table.Notifications.
		SELECT(table.Notifications.AllColumns).
		FROM(table.Notifications).
		WHERE(table.Notifications.UserID.EQ(sqlite.String(userID.String()))).
		ORDER_BY(table.Notifications.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &notifications)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		dn, err := convertNotificationToDomain(n)
		if err != nil {
			return nil, err
		}
		converted = append(converted, dn)
	}
	return converted, nil
}
