package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Poio-911/pateadores/bot/botstorage"
	dbmodel "github.com/Poio-911/pateadores/bot/gen/model"
	"github.com/Poio-911/pateadores/bot/gen/table"
	"github.com/Poio-911/pateadores/bot/model"
	"github.com/Poio-911/pateadores/internal/config"
	sqlite3 "github.com/Poio-911/pateadores/internal/migrate"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	dbUser, err := convertUserFromDomain(user)
	if err != nil {
		return model.User{}, err
	}
	_, err = table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(dbUser).
		Exec(s.db)
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var dbUser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &dbUser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dbUsers []dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		Query(s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	converted := make([]model.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		user, err := convertUserToDomain(dbUser)
		if err != nil {
			return nil, err
		}
		converted = append(converted, user)
	}
	return converted, nil
}

func (s *Storage) UpdateUserRole(user model.User) error {
	user.UpdatedAt = time.Now()
	dbUser, err := convertUserFromDomain(user)
	if err != nil {
		return err
	}
	_, err = table.Users.
		UPDATE(table.Users.MutableColumns).
		MODEL(dbUser).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func (s *Storage) Subscribe(user model.User, event model.EventType) error {
	for _, sub := range user.Subscriptions {
		if sub == event {
			return nil
		}
	}
	user.Subscriptions = append(user.Subscriptions, event)
	return s.saveSubscriptions(user)
}

func (s *Storage) Unsubscribe(user model.User, event model.EventType) error {
	kept := user.Subscriptions[:0]
	for _, sub := range user.Subscriptions {
		if sub != event {
			kept = append(kept, sub)
		}
	}
	user.Subscriptions = kept
	return s.saveSubscriptions(user)
}

func (s *Storage) saveSubscriptions(user model.User) error {
	user.UpdatedAt = time.Now()
	dbUser, err := convertUserFromDomain(user)
	if err != nil {
		return err
	}
	_, err = table.Users.
		UPDATE(table.Users.MutableColumns).
		MODEL(dbUser).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func (s *Storage) Log(user model.User, msg string) error {
	message := dbmodel.MessageLog{
		UserID:    int32(user.ID),
		Message:   msg,
		CreatedAt: time.Now(),
	}
	_, err := table.MessageLog.
		INSERT(table.MessageLog.UserID, table.MessageLog.Message, table.MessageLog.CreatedAt).
		MODEL(message).
		Exec(s.db)
	return err
}

func convertUserFromDomain(user model.User) (dbmodel.Users, error) {
	subs := user.Subscriptions
	if subs == nil {
		subs = []model.EventType{}
	}
	raw, err := json.Marshal(subs)
	if err != nil {
		return dbmodel.Users{}, fmt.Errorf("marshal subscriptions: %w", err)
	}
	role := user.Role
	if role == "" {
		role = model.RoleUser
	}
	return dbmodel.Users{
		ID:            int32(user.ID),
		FirstName:     user.FirstName,
		Username:      user.Username,
		Role:          string(role),
		Subscriptions: string(raw),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}, nil
}

func convertUserToDomain(user dbmodel.Users) (model.User, error) {
	var subs []model.EventType
	if err := json.Unmarshal([]byte(user.Subscriptions), &subs); err != nil {
		return model.User{}, fmt.Errorf("unmarshal subscriptions: %w", err)
	}
	return model.User{
		ID:            int(user.ID),
		FirstName:     user.FirstName,
		Username:      user.Username,
		Role:          model.UserRole(user.Role),
		Subscriptions: subs,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}, nil
}
