package webpath

const (
	Home = "/"

	Api                 = "/api"
	ApiPlayers          = Api + "/players"
	ApiGetPlayer        = Api + "/players/:id"
	ApiSearchPlayers    = Api + "/players/search"
	ApiTopScorers       = Api + "/players/top-scorers"
	ApiRecalculate      = Api + "/players/recalculate"
	ApiMatches          = Api + "/matches"
	ApiMatchStats       = Api + "/matches/:id/stats"
	ApiMatchAssignments = Api + "/matches/:id/assignments"
	ApiMatchClose       = Api + "/matches/:id/close"
	ApiEvaluations      = Api + "/evaluations"
	ApiLeagueStandings  = Api + "/leagues/:id/standings"
	ApiLeagueComplete   = Api + "/leagues/:id/complete"
	ApiLeagueFinal      = Api + "/leagues/:id/final"
	ApiNotifications    = Api + "/notifications/:userId"
)
