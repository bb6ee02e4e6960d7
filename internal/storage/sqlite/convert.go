package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/Poio-911/pateadores/gen/model"
	"github.com/Poio-911/pateadores/internal/domain"

	"github.com/google/uuid"
)

// JSON shapes for the nested document columns. The rest of the code never
// sees these, only the domain types.

type memberJSON struct {
	PlayerID    string `json:"player_id"`
	ShirtNumber int    `json:"shirt_number"`
}

type rosterPlayerJSON struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	OVR         int    `json:"ovr"`
	Position    string `json:"position"`
	Photo       string `json:"photo,omitempty"`
}

type snapshotJSON struct {
	TeamID     string             `json:"team_id"`
	Name       string             `json:"name"`
	Jersey     string             `json:"jersey"`
	Players    []rosterPlayerJSON `json:"players"`
	TeamOVR    int                `json:"team_ovr"`
	FinalScore *int               `json:"final_score,omitempty"`
}

type goalScorerJSON struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Count    int    `json:"count"`
}

type cardJSON struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Type     string `json:"type"`
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:            player.ID.String(),
		Name:          player.Name,
		Position:      string(player.Position),
		Ovr:           int32(player.OVR),
		Pac:           int32(player.Attributes.Pac),
		Sho:           int32(player.Attributes.Sho),
		Pas:           int32(player.Attributes.Pas),
		Dri:           int32(player.Attributes.Dri),
		Def:           int32(player.Attributes.Def),
		Phy:           int32(player.Attributes.Phy),
		MatchesPlayed: int32(player.Stats.MatchesPlayed),
		Goals:         int32(player.Stats.Goals),
		Assists:       int32(player.Stats.Assists),
		AverageRating: player.Stats.AverageRating,
		YellowCards:   int32(player.Stats.YellowCards),
		RedCards:      int32(player.Stats.RedCards),
		OwnerID:       player.OwnerID.String(),
		Photo:         player.Photo,
		CreatedAt:     player.CreatedAt,
	}
}

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("parse player id: %w", err)
	}
	ownerID, err := uuid.Parse(player.OwnerID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("parse player owner id: %w", err)
	}
	return domain.Player{
		ID:       id,
		Name:     player.Name,
		Position: domain.Position(player.Position),
		OVR:      int(player.Ovr),
		Attributes: domain.Attributes{
			Pac: int(player.Pac),
			Sho: int(player.Sho),
			Pas: int(player.Pas),
			Dri: int(player.Dri),
			Def: int(player.Def),
			Phy: int(player.Phy),
		},
		Stats: domain.PlayerStats{
			MatchesPlayed: int(player.MatchesPlayed),
			Goals:         int(player.Goals),
			Assists:       int(player.Assists),
			AverageRating: player.AverageRating,
			YellowCards:   int(player.YellowCards),
			RedCards:      int(player.RedCards),
		},
		OwnerID:   ownerID,
		Photo:     player.Photo,
		CreatedAt: player.CreatedAt,
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertTeamFromDomain(team domain.Team) (model.Teams, error) {
	members := make([]memberJSON, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, memberJSON{
			PlayerID:    m.PlayerID.String(),
			ShirtNumber: m.ShirtNumber,
		})
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return model.Teams{}, fmt.Errorf("marshal team members: %w", err)
	}
	return model.Teams{
		ID:        team.ID.String(),
		Name:      team.Name,
		Jersey:    team.Jersey,
		Members:   string(raw),
		GroupID:   team.GroupID.String(),
		CreatedBy: team.CreatedBy.String(),
		CreatedAt: team.CreatedAt,
	}, nil
}

func convertTeamToDomain(team model.Teams) (domain.Team, error) {
	id, err := uuid.Parse(team.ID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("parse team id: %w", err)
	}
	groupID, err := uuid.Parse(team.GroupID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("parse team group id: %w", err)
	}
	createdBy, err := uuid.Parse(team.CreatedBy)
	if err != nil {
		return domain.Team{}, fmt.Errorf("parse team creator id: %w", err)
	}
	var rawMembers []memberJSON
	if err := json.Unmarshal([]byte(team.Members), &rawMembers); err != nil {
		return domain.Team{}, fmt.Errorf("unmarshal team members: %w", err)
	}
	members := make([]domain.TeamMember, 0, len(rawMembers))
	for _, m := range rawMembers {
		playerID, err := uuid.Parse(m.PlayerID)
		if err != nil {
			return domain.Team{}, fmt.Errorf("parse team member id: %w", err)
		}
		members = append(members, domain.TeamMember{
			PlayerID:    playerID,
			ShirtNumber: m.ShirtNumber,
		})
	}
	return domain.Team{
		ID:        id,
		Name:      team.Name,
		Jersey:    team.Jersey,
		Members:   members,
		GroupID:   groupID,
		CreatedBy: createdBy,
		CreatedAt: team.CreatedAt,
	}, nil
}

func convertMatchFromDomain(match domain.Match) (model.Matches, error) {
	snapshots := make([]snapshotJSON, 0, len(match.Teams))
	for _, t := range match.Teams {
		players := make([]rosterPlayerJSON, 0, len(t.Players))
		for _, p := range t.Players {
			players = append(players, rosterPlayerJSON{
				ID:          p.ID.String(),
				DisplayName: p.DisplayName,
				OVR:         p.OVR,
				Position:    string(p.Position),
				Photo:       p.Photo,
			})
		}
		snapshots = append(snapshots, snapshotJSON{
			TeamID:     t.TeamID.String(),
			Name:       t.Name,
			Jersey:     t.Jersey,
			Players:    players,
			TeamOVR:    t.TeamOVR,
			FinalScore: t.FinalScore,
		})
	}
	rawTeams, err := json.Marshal(snapshots)
	if err != nil {
		return model.Matches{}, fmt.Errorf("marshal match teams: %w", err)
	}
	participants := make([]string, 0, len(match.ParticipantTeamIDs))
	for _, id := range match.ParticipantTeamIDs {
		participants = append(participants, id.String())
	}
	rawParticipants, err := json.Marshal(participants)
	if err != nil {
		return model.Matches{}, fmt.Errorf("marshal participant ids: %w", err)
	}
	scorers := make([]goalScorerJSON, 0, len(match.GoalScorers))
	for _, g := range match.GoalScorers {
		scorers = append(scorers, goalScorerJSON{
			PlayerID: g.PlayerID.String(),
			TeamID:   g.TeamID.String(),
			Count:    g.Count,
		})
	}
	rawScorers, err := json.Marshal(scorers)
	if err != nil {
		return model.Matches{}, fmt.Errorf("marshal goal scorers: %w", err)
	}
	cards := make([]cardJSON, 0, len(match.Cards))
	for _, c := range match.Cards {
		cards = append(cards, cardJSON{
			PlayerID: c.PlayerID.String(),
			TeamID:   c.TeamID.String(),
			Type:     string(c.Type),
		})
	}
	rawCards, err := json.Marshal(cards)
	if err != nil {
		return model.Matches{}, fmt.Errorf("marshal cards: %w", err)
	}
	converted := model.Matches{
		ID:                 match.ID.String(),
		Date:               match.Date,
		Location:           match.Location,
		Type:               string(match.Type),
		Status:             string(match.Status),
		Teams:              string(rawTeams),
		ParticipantTeamIds: string(rawParticipants),
		GoalScorers:        string(rawScorers),
		Cards:              string(rawCards),
		MatchSize:          int32(match.MatchSize),
		CreatedBy:          match.CreatedBy.String(),
		CreatedAt:          match.CreatedAt,
	}
	if match.LeagueInfo != nil {
		leagueID := match.LeagueInfo.LeagueID.String()
		round := int32(match.LeagueInfo.Round)
		converted.LeagueID = &leagueID
		converted.Round = &round
	}
	return converted, nil
}

func convertMatchToDomain(match model.Matches) (domain.Match, error) {
	id, err := uuid.Parse(match.ID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parse match id: %w", err)
	}
	createdBy, err := uuid.Parse(match.CreatedBy)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parse match creator id: %w", err)
	}
	var rawTeams []snapshotJSON
	if err := json.Unmarshal([]byte(match.Teams), &rawTeams); err != nil {
		return domain.Match{}, fmt.Errorf("unmarshal match teams: %w", err)
	}
	teams := make([]domain.TeamSnapshot, 0, len(rawTeams))
	for _, t := range rawTeams {
		teamID, err := uuid.Parse(t.TeamID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse snapshot team id: %w", err)
		}
		players := make([]domain.RosterPlayer, 0, len(t.Players))
		for _, p := range t.Players {
			playerID, err := uuid.Parse(p.ID)
			if err != nil {
				return domain.Match{}, fmt.Errorf("parse roster player id: %w", err)
			}
			players = append(players, domain.RosterPlayer{
				ID:          playerID,
				DisplayName: p.DisplayName,
				OVR:         p.OVR,
				Position:    domain.Position(p.Position),
				Photo:       p.Photo,
			})
		}
		teams = append(teams, domain.TeamSnapshot{
			TeamID:     teamID,
			Name:       t.Name,
			Jersey:     t.Jersey,
			Players:    players,
			TeamOVR:    t.TeamOVR,
			FinalScore: t.FinalScore,
		})
	}
	var rawParticipants []string
	if err := json.Unmarshal([]byte(match.ParticipantTeamIds), &rawParticipants); err != nil {
		return domain.Match{}, fmt.Errorf("unmarshal participant ids: %w", err)
	}
	participants := make([]uuid.UUID, 0, len(rawParticipants))
	for _, raw := range rawParticipants {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse participant id: %w", err)
		}
		participants = append(participants, teamID)
	}
	var rawScorers []goalScorerJSON
	if err := json.Unmarshal([]byte(match.GoalScorers), &rawScorers); err != nil {
		return domain.Match{}, fmt.Errorf("unmarshal goal scorers: %w", err)
	}
	scorers := make([]domain.GoalScorer, 0, len(rawScorers))
	for _, g := range rawScorers {
		playerID, err := uuid.Parse(g.PlayerID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse scorer player id: %w", err)
		}
		teamID, err := uuid.Parse(g.TeamID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse scorer team id: %w", err)
		}
		scorers = append(scorers, domain.GoalScorer{
			PlayerID: playerID,
			TeamID:   teamID,
			Count:    g.Count,
		})
	}
	var rawCards []cardJSON
	if err := json.Unmarshal([]byte(match.Cards), &rawCards); err != nil {
		return domain.Match{}, fmt.Errorf("unmarshal cards: %w", err)
	}
	cards := make([]domain.Card, 0, len(rawCards))
	for _, c := range rawCards {
		playerID, err := uuid.Parse(c.PlayerID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse card player id: %w", err)
		}
		teamID, err := uuid.Parse(c.TeamID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse card team id: %w", err)
		}
		cards = append(cards, domain.Card{
			PlayerID: playerID,
			TeamID:   teamID,
			Type:     domain.CardType(c.Type),
		})
	}
	converted := domain.Match{
		ID:                 id,
		Date:               match.Date,
		Location:           match.Location,
		Type:               domain.MatchType(match.Type),
		Status:             domain.MatchStatus(match.Status),
		Teams:              teams,
		ParticipantTeamIDs: participants,
		GoalScorers:        scorers,
		Cards:              cards,
		MatchSize:          int(match.MatchSize),
		CreatedBy:          createdBy,
		CreatedAt:          match.CreatedAt,
	}
	if match.LeagueID != nil {
		leagueID, err := uuid.Parse(*match.LeagueID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse match league id: %w", err)
		}
		info := domain.LeagueInfo{LeagueID: leagueID}
		if match.Round != nil {
			info.Round = int(*match.Round)
		}
		converted.LeagueInfo = &info
	}
	return converted, nil
}

func convertMatchesToDomain(matches []model.Matches) ([]domain.Match, error) {
	converted := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertLeagueFromDomain(league domain.League) (model.Leagues, error) {
	teamIDs := make([]string, 0, len(league.TeamIDs))
	for _, id := range league.TeamIDs {
		teamIDs = append(teamIDs, id.String())
	}
	raw, err := json.Marshal(teamIDs)
	if err != nil {
		return model.Leagues{}, fmt.Errorf("marshal league team ids: %w", err)
	}
	converted := model.Leagues{
		ID:           league.ID.String(),
		Name:         league.Name,
		Format:       string(league.Format),
		TeamIds:      string(raw),
		Status:       string(league.Status),
		GroupID:      league.GroupID.String(),
		ChampionName: league.ChampionName,
		RunnerUpName: league.RunnerUpName,
		CreatedAt:    league.CreatedAt,
	}
	if league.RequiresTiebreaker {
		converted.RequiresTiebreaker = 1
	}
	if league.ChampionTeamID != nil {
		s := league.ChampionTeamID.String()
		converted.ChampionTeamID = &s
	}
	if league.RunnerUpTeamID != nil {
		s := league.RunnerUpTeamID.String()
		converted.RunnerUpTeamID = &s
	}
	if league.FinalMatchID != nil {
		s := league.FinalMatchID.String()
		converted.FinalMatchID = &s
	}
	return converted, nil
}

func convertLeagueToDomain(league model.Leagues) (domain.League, error) {
	id, err := uuid.Parse(league.ID)
	if err != nil {
		return domain.League{}, fmt.Errorf("parse league id: %w", err)
	}
	groupID, err := uuid.Parse(league.GroupID)
	if err != nil {
		return domain.League{}, fmt.Errorf("parse league group id: %w", err)
	}
	var rawIDs []string
	if err := json.Unmarshal([]byte(league.TeamIds), &rawIDs); err != nil {
		return domain.League{}, fmt.Errorf("unmarshal league team ids: %w", err)
	}
	teamIDs := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			return domain.League{}, fmt.Errorf("parse league team id: %w", err)
		}
		teamIDs = append(teamIDs, teamID)
	}
	converted := domain.League{
		ID:                 id,
		Name:               league.Name,
		Format:             domain.LeagueFormat(league.Format),
		TeamIDs:            teamIDs,
		Status:             domain.LeagueStatus(league.Status),
		GroupID:            groupID,
		ChampionName:       league.ChampionName,
		RunnerUpName:       league.RunnerUpName,
		RequiresTiebreaker: league.RequiresTiebreaker != 0,
		CreatedAt:          league.CreatedAt,
	}
	if league.ChampionTeamID != nil {
		championID, err := uuid.Parse(*league.ChampionTeamID)
		if err != nil {
			return domain.League{}, fmt.Errorf("parse champion team id: %w", err)
		}
		converted.ChampionTeamID = &championID
	}
	if league.RunnerUpTeamID != nil {
		runnerUpID, err := uuid.Parse(*league.RunnerUpTeamID)
		if err != nil {
			return domain.League{}, fmt.Errorf("parse runner-up team id: %w", err)
		}
		converted.RunnerUpTeamID = &runnerUpID
	}
	if league.FinalMatchID != nil {
		finalID, err := uuid.Parse(*league.FinalMatchID)
		if err != nil {
			return domain.League{}, fmt.Errorf("parse final match id: %w", err)
		}
		converted.FinalMatchID = &finalID
	}
	return converted, nil
}

func convertEvaluationFromDomain(eval domain.Evaluation) (model.Evaluations, error) {
	tags := eval.PerformanceTags
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return model.Evaluations{}, fmt.Errorf("marshal performance tags: %w", err)
	}
	converted := model.Evaluations{
		ID:              eval.ID,
		PlayerID:        eval.PlayerID.String(),
		EvaluatorID:     eval.EvaluatorID.String(),
		MatchID:         eval.MatchID.String(),
		Goals:           int32(eval.Goals),
		PerformanceTags: string(raw),
		EvaluatedAt:     eval.EvaluatedAt,
	}
	if eval.Rating != nil {
		rating := int32(*eval.Rating)
		converted.Rating = &rating
	}
	return converted, nil
}

func convertEvaluationToDomain(eval model.Evaluations) (domain.Evaluation, error) {
	playerID, err := uuid.Parse(eval.PlayerID)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("parse evaluation player id: %w", err)
	}
	evaluatorID, err := uuid.Parse(eval.EvaluatorID)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("parse evaluator id: %w", err)
	}
	matchID, err := uuid.Parse(eval.MatchID)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("parse evaluation match id: %w", err)
	}
	var tags []string
	if err := json.Unmarshal([]byte(eval.PerformanceTags), &tags); err != nil {
		return domain.Evaluation{}, fmt.Errorf("unmarshal performance tags: %w", err)
	}
	converted := domain.Evaluation{
		ID:              eval.ID,
		PlayerID:        playerID,
		EvaluatorID:     evaluatorID,
		MatchID:         matchID,
		Goals:           int(eval.Goals),
		PerformanceTags: tags,
		EvaluatedAt:     eval.EvaluatedAt,
	}
	if eval.Rating != nil {
		rating := int(*eval.Rating)
		converted.Rating = &rating
	}
	return converted, nil
}

func convertAssignmentFromDomain(a domain.EvaluationAssignment) model.EvaluationAssignments {
	return model.EvaluationAssignments{
		ID:          a.ID,
		MatchID:     a.MatchID.String(),
		EvaluatorID: a.EvaluatorID.String(),
		SubjectID:   a.SubjectID.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

func convertAssignmentToDomain(a model.EvaluationAssignments) (domain.EvaluationAssignment, error) {
	matchID, err := uuid.Parse(a.MatchID)
	if err != nil {
		return domain.EvaluationAssignment{}, fmt.Errorf("parse assignment match id: %w", err)
	}
	evaluatorID, err := uuid.Parse(a.EvaluatorID)
	if err != nil {
		return domain.EvaluationAssignment{}, fmt.Errorf("parse assignment evaluator id: %w", err)
	}
	subjectID, err := uuid.Parse(a.SubjectID)
	if err != nil {
		return domain.EvaluationAssignment{}, fmt.Errorf("parse assignment subject id: %w", err)
	}
	return domain.EvaluationAssignment{
		ID:          a.ID,
		MatchID:     matchID,
		EvaluatorID: evaluatorID,
		SubjectID:   subjectID,
		Status:      domain.AssignmentStatus(a.Status),
		CreatedAt:   a.CreatedAt,
	}, nil
}

func convertAssignmentsToDomain(assignments []model.EvaluationAssignments) ([]domain.EvaluationAssignment, error) {
	converted := make([]domain.EvaluationAssignment, 0, len(assignments))
	for _, a := range assignments {
		da, err := convertAssignmentToDomain(a)
		if err != nil {
			return nil, err
		}
		converted = append(converted, da)
	}
	return converted, nil
}

func convertNotificationFromDomain(n domain.Notification) model.Notifications {
	converted := model.Notifications{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Kind:      n.Kind,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
	if n.Read {
		converted.Read = 1
	}
	return converted
}

func convertNotificationToDomain(n model.Notifications) (domain.Notification, error) {
	id, err := uuid.Parse(n.ID)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("parse notification id: %w", err)
	}
	userID, err := uuid.Parse(n.UserID)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("parse notification user id: %w", err)
	}
	return domain.Notification{
		ID:        id,
		UserID:    userID,
		Kind:      n.Kind,
		Message:   n.Message,
		Read:      n.Read != 0,
		CreatedAt: n.CreatedAt,
	}, nil
}
