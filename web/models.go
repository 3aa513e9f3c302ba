package web

import (
	"nba-scorigami/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that serves the read API and accepts guesses
type Server struct {
	api *api.API
}

// NewServer creates a Server around an API facade
func NewServer(apiPtr *api.API) *Server {
	return &Server{api: apiPtr}
}

// ScoreEntry is one occurred score pair in a scores response
type ScoreEntry struct {
	WinningScore int         `json:"winning_score"`
	LosingScore  int         `json:"losing_score"`
	Occurrences  int         `json:"occurrences"`
	Games        []GameEntry `json:"games"`
}

// GameEntry is one historical game in a scores response
type GameEntry struct {
	Date        string `json:"date"`
	WinningTeam string `json:"winning_team"`
	LosingTeam  string `json:"losing_team"`
}

// ScoresResponse is the payload for GET /api/scores
type ScoresResponse struct {
	MaxScore     int          `json:"max_score"`
	UniqueScores int          `json:"unique_scores"`
	TotalGames   int          `json:"total_games"`
	Scores       []ScoreEntry `json:"scores"`
}

// StatsResponse is the payload for GET /api/stats
type StatsResponse struct {
	UniqueScores int    `json:"unique_scores"`
	TotalGames   int    `json:"total_games"`
	MaxScore     int    `json:"max_score"`
	LastUpdated  string `json:"last_updated,omitempty"`
}

// NoveltyResponse is the payload for GET /api/novelty
type NoveltyResponse struct {
	WinningScore int  `json:"winning_score"`
	LosingScore  int  `json:"losing_score"`
	Novelty      bool `json:"novelty"`
}

// UpcomingGameResponse is one game in the GET /api/upcoming payload
type UpcomingGameResponse struct {
	Id      string `json:"id"`
	Date    string `json:"date"`
	Visitor string `json:"visitor"`
	Home    string `json:"home"`
	Arena   string `json:"arena,omitempty"`
}

// StandingResponse is one row in the GET /api/leaderboard payload
type StandingResponse struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Correct  int    `json:"correct"`
}

// GradedGuessResponse is one row in the GET /api/guesses payload
type GradedGuessResponse struct {
	GameId       string `json:"game_id"`
	Visitor      string `json:"visitor"`
	Home         string `json:"home"`
	VisitorScore int    `json:"visitor_score"`
	HomeScore    int    `json:"home_score"`
	Verdict      string `json:"verdict"`
	Actual       string `json:"actual,omitempty"`
}

// SubmitGuessRequest is the body for POST /api/guesses
type SubmitGuessRequest struct {
	Username     string `json:"username"`
	GameId       string `json:"game_id"`
	VisitorScore int    `json:"visitor_score"`
	HomeScore    int    `json:"home_score"`
}

// SubmitGuessResponse is the payload returned for an accepted guess
type SubmitGuessResponse struct {
	Username     string `json:"username"`
	GameId       string `json:"game_id"`
	Visitor      string `json:"visitor"`
	Home         string `json:"home"`
	VisitorScore int    `json:"visitor_score"`
	HomeScore    int    `json:"home_score"`
	Novelty      bool   `json:"novelty"`
}

// ErrorResponse is the payload for any non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}
