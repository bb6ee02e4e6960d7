package memory

import (
	"context"
	"sync"

	"github.com/Poio-911/pateadores/internal/domain"
	"github.com/Poio-911/pateadores/internal/storage"

	"github.com/google/uuid"
)

// Storage keeps every collection in guarded maps. It backs the service tests
// and small deployments that don't need sqlite.
type Storage struct {
	mu            sync.RWMutex
	players       map[uuid.UUID]domain.Player
	teams         map[uuid.UUID]domain.Team
	matches       map[uuid.UUID]domain.Match
	matchOrder    []uuid.UUID
	leagues       map[uuid.UUID]domain.League
	evaluations   map[string]domain.Evaluation
	assignments   map[string]domain.EvaluationAssignment
	notifications []domain.Notification
}

var (
	_ storage.PlayerStorage       = (*Storage)(nil)
	_ storage.TeamStorage         = (*Storage)(nil)
	_ storage.MatchStorage        = (*Storage)(nil)
	_ storage.LeagueStorage       = (*Storage)(nil)
	_ storage.EvaluationStorage   = (*Storage)(nil)
	_ storage.NotificationStorage = (*Storage)(nil)
)

func New() *Storage {
	return &Storage{
		players:     make(map[uuid.UUID]domain.Player),
		teams:       make(map[uuid.UUID]domain.Team),
		matches:     make(map[uuid.UUID]domain.Match),
		leagues:     make(map[uuid.UUID]domain.League),
		evaluations: make(map[string]domain.Evaluation),
		assignments: make(map[string]domain.EvaluationAssignment),
	}
}

func (s *Storage) ListPlayers(_ context.Context) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	return players, nil
}

func (s *Storage) GetPlayer(_ context.Context, id uuid.UUID) (domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Storage) CreatePlayer(_ context.Context, player domain.Player) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return player, nil
}

func (s *Storage) SavePlayers(_ context.Context, players []domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range players {
		if _, ok := s.players[p.ID]; !ok {
			return storage.ErrNotFound
		}
		s.players[p.ID] = p
	}
	return nil
}

func (s *Storage) GetTeam(_ context.Context, id uuid.UUID) (domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return domain.Team{}, storage.ErrNotFound
	}
	return t, nil
}

func (s *Storage) ListTeams(_ context.Context, ids []uuid.UUID) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]domain.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.teams[id]; ok {
			teams = append(teams, t)
		}
	}
	return teams, nil
}

func (s *Storage) CreateTeam(_ context.Context, team domain.Team) (domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
	return team, nil
}

func (s *Storage) ListMatches(_ context.Context) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]domain.Match, 0, len(s.matchOrder))
	for _, id := range s.matchOrder {
		matches = append(matches, s.matches[id])
	}
	return matches, nil
}

func (s *Storage) ListLeagueMatches(_ context.Context, leagueID uuid.UUID) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []domain.Match
	for _, id := range s.matchOrder {
		m := s.matches[id]
		if m.LeagueInfo != nil && m.LeagueInfo.LeagueID == leagueID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (s *Storage) GetMatch(_ context.Context, id uuid.UUID) (domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return domain.Match{}, storage.ErrNotFound
	}
	return m, nil
}

func (s *Storage) CreateMatch(_ context.Context, match domain.Match) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; !ok {
		s.matchOrder = append(s.matchOrder, match.ID)
	}
	s.matches[match.ID] = match
	return match, nil
}

func (s *Storage) SetMatchStatus(_ context.Context, id uuid.UUID, status domain.MatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return storage.ErrNotFound
	}
	m.Status = status
	s.matches[id] = m
	return nil
}

func (s *Storage) GetLeague(_ context.Context, id uuid.UUID) (domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leagues[id]
	if !ok {
		return domain.League{}, storage.ErrNotFound
	}
	return l, nil
}

func (s *Storage) ListLeagues(_ context.Context, status domain.LeagueStatus) ([]domain.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var leagues []domain.League
	for _, l := range s.leagues {
		if status == "" || l.Status == status {
			leagues = append(leagues, l)
		}
	}
	return leagues, nil
}

func (s *Storage) CreateLeague(_ context.Context, league domain.League) (domain.League, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leagues[league.ID] = league
	return league, nil
}

func (s *Storage) SaveLeague(_ context.Context, league domain.League) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leagues[league.ID]; !ok {
		return storage.ErrNotFound
	}
	s.leagues[league.ID] = league
	return nil
}

func (s *Storage) CreateEvaluation(_ context.Context, eval domain.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.evaluations[eval.ID]; ok {
		return storage.ErrDuplicate
	}
	s.evaluations[eval.ID] = eval
	return nil
}

func (s *Storage) ListMatchEvaluations(_ context.Context, matchID uuid.UUID) ([]domain.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var evals []domain.Evaluation
	for _, e := range s.evaluations {
		if e.MatchID == matchID {
			evals = append(evals, e)
		}
	}
	return evals, nil
}

func (s *Storage) CreateAssignments(_ context.Context, assignments []domain.EvaluationAssignment, notifications []domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range assignments {
		s.assignments[a.ID] = a
	}
	s.notifications = append(s.notifications, notifications...)
	return nil
}

func (s *Storage) ListMatchAssignments(_ context.Context, matchID uuid.UUID) ([]domain.EvaluationAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var assignments []domain.EvaluationAssignment
	for _, a := range s.assignments {
		if a.MatchID == matchID {
			assignments = append(assignments, a)
		}
	}
	return assignments, nil
}

func (s *Storage) ListPendingAssignments(_ context.Context) ([]domain.EvaluationAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var assignments []domain.EvaluationAssignment
	for _, a := range s.assignments {
		if a.Status == domain.AssignmentPending {
			assignments = append(assignments, a)
		}
	}
	return assignments, nil
}

func (s *Storage) MarkAssignmentDone(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments[id]
	if !ok {
		return storage.ErrNotFound
	}
	a.Status = domain.AssignmentDone
	s.assignments[id] = a
	return nil
}

func (s *Storage) CreateNotification(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *Storage) ListUserNotifications(_ context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}
