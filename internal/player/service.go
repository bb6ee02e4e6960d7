package player

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/normalize"
	"github.com/Poio-911/pateadores/internal/storage"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"
)

// maxNameDistance is the loosest Levenshtein distance FindByName accepts
// before giving up on a fuzzy hit.
const maxNameDistance = 3

type Service struct {
	players storage.PlayerStorage
	log     *logrus.Entry
}

func New(players storage.PlayerStorage, log *logrus.Logger) *Service {
	return &Service{
		players: players,
		log:     log.WithField("from", "player-service"),
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Player, error) {
	return s.players.ListPlayers(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Player, error) {
	return s.players.GetPlayer(ctx, id)
}

// Create registers a player. A player created on behalf of somebody else
// (manual player) carries the creator as owner.
func (s *Service) Create(ctx context.Context, name string, position domain.Position, attrs domain.Attributes, ownerID uuid.UUID) (domain.Player, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Player{}, fmt.Errorf("el nombre del jugador no puede estar vacío")
	}
	p := domain.Player{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(name),
		Position:   position,
		Attributes: attrs,
		OVR:        overall(attrs),
		OwnerID:    ownerID,
		CreatedAt:  time.Now(),
	}
	if p.OwnerID == uuid.Nil {
		p.OwnerID = p.ID
	}
	return s.players.CreatePlayer(ctx, p)
}

// FindByName resolves a player by normalized name, falling back to the
// closest fuzzy hit when no exact key matches.
func (s *Service) FindByName(ctx context.Context, name string) (domain.Player, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return domain.Player{}, fmt.Errorf("list players: %w", err)
	}
	key := normalize.Name(name)
	for _, p := range players {
		if normalize.Name(p.Name) == key {
			return p, nil
		}
	}
	best := -1
	bestDistance := maxNameDistance + 1
	for i, p := range players {
		distance := fuzzy.LevenshteinDistance(key, normalize.Name(p.Name))
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	if best < 0 {
		return domain.Player{}, storage.ErrNotFound
	}
	return players[best], nil
}

// TopScorers returns up to limit players ordered by career goals.
func (s *Service) TopScorers(ctx context.Context, limit int) ([]domain.Player, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Stats.Goals != players[j].Stats.Goals {
			return players[i].Stats.Goals > players[j].Stats.Goals
		}
		return players[i].Name < players[j].Name
	})
	if limit > 0 && len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

// overall collapses the six sub-attributes into the single OVR scalar.
func overall(a domain.Attributes) int {
	return (a.Pac + a.Sho + a.Pas + a.Dri + a.Def + a.Phy) / 6
}
