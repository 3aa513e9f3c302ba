/* handlers.go
 * Contains the HTTP handlers for the read API and guess submission endpoints
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"nba-scorigami/api/api"
	"nba-scorigami/api/logic"
	"nba-scorigami/api/shared"
	"nba-scorigami/api/store"
)

// ScoresHandler serves GET /api/scores. Accepts optional minYear, maxYear and team
// query parameters; team goes through the same fuzzy resolution as the bot commands
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes the filtered score list as JSON, or an error status
func (s *Server) ScoresHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	minYear, maxYear, team, err := filterParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.api.FilterScores(minYear, maxYear, team)
	if err != nil {
		writeApiError(w, err)
		return
	}

	resp := ScoresResponse{
		MaxScore:     view.MaxScore,
		UniqueScores: view.UniqueScoreCount(),
		TotalGames:   view.TotalGameCount(),
		Scores:       make([]ScoreEntry, 0),
	}
	for _, key := range view.OccurredKeys() {
		record := view.Lookup(key.WinningScore, key.LosingScore)
		entry := ScoreEntry{
			WinningScore: key.WinningScore,
			LosingScore:  key.LosingScore,
			Occurrences:  len(record.Games),
			Games:        make([]GameEntry, 0, len(record.Games)),
		}
		for _, game := range record.Games {
			entry.Games = append(entry.Games, GameEntry{
				Date:        game.Date.Format("2006-01-02"),
				WinningTeam: game.WinningTeam,
				LosingTeam:  game.LosingTeam,
			})
		}
		resp.Scores = append(resp.Scores, entry)
	}
	writeJSON(w, http.StatusOK, resp)
}

// StatsHandler serves GET /api/stats with the same filter parameters as /api/scores
func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	minYear, maxYear, team, err := filterParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.api.FilterScores(minYear, maxYear, team)
	if err != nil {
		writeApiError(w, err)
		return
	}

	stats := api.ArchiveStats(view)
	writeJSON(w, http.StatusOK, StatsResponse{
		UniqueScores: stats.UniqueScores,
		TotalGames:   stats.TotalGames,
		MaxScore:     stats.MaxScore,
		LastUpdated:  stats.LastUpdated,
	})
}

// NoveltyHandler serves GET /api/novelty?winner=W&loser=L
func (s *Server) NoveltyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	winner, err1 := strconv.Atoi(r.URL.Query().Get("winner"))
	loser, err2 := strconv.Atoi(r.URL.Query().Get("loser"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, errors.New("winner and loser must be integer query parameters"))
		return
	}

	novelty, err := s.api.IsPotentialNovelty(winner, loser)
	if err != nil {
		writeApiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoveltyResponse{WinningScore: winner, LosingScore: loser, Novelty: novelty})
}

// UpcomingHandler serves GET /api/upcoming with the next guessable slate
func (s *Server) UpcomingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	games, err := s.api.UpcomingGames(time.Now())
	if err != nil {
		writeApiError(w, err)
		return
	}

	resp := make([]UpcomingGameResponse, 0, len(games))
	for _, game := range games {
		resp = append(resp, UpcomingGameResponse{
			Id:      game.Id,
			Date:    game.Date.Format(time.RFC3339),
			Visitor: game.Visitor,
			Home:    game.Home,
			Arena:   game.Arena,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// LeaderboardHandler serves GET /api/leaderboard
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	standings, err := s.api.Leaderboard()
	if err != nil {
		writeApiError(w, err)
		return
	}

	resp := make([]StandingResponse, 0, len(standings))
	for i, standing := range standings {
		resp = append(resp, StandingResponse{
			Rank:     i + 1,
			Username: standing.Username,
			Correct:  len(standing.Correct),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// GuessesHandler serves /api/guesses. GET returns a user's graded guesses, POST
// submits a new guess for a scheduled game
func (s *Server) GuessesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getGuesses(w, r)
	case http.MethodPost:
		s.postGuess(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) getGuesses(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, errors.New("username query parameter is required"))
		return
	}

	graded, err := s.api.CheckGuesses(shared.User{Username: username})
	if err != nil {
		writeApiError(w, err)
		return
	}

	resp := make([]GradedGuessResponse, 0, len(graded))
	for _, g := range graded {
		resp = append(resp, toGradedResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) postGuess(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req SubmitGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("failed to decode guess request:", err)
		writeError(w, http.StatusBadRequest, errors.New("request body must be valid JSON"))
		return
	}
	if req.Username == "" || req.GameId == "" {
		writeError(w, http.StatusBadRequest, errors.New("username and game_id are required"))
		return
	}

	user := shared.User{Username: req.Username}
	guess, novelty, err := s.api.SubmitGuess(user, req.GameId, req.VisitorScore, req.HomeScore)
	if err != nil {
		writeApiError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SubmitGuessResponse{
		Username:     guess.Username,
		GameId:       guess.GameId,
		Visitor:      guess.Team1,
		Home:         guess.Team2,
		VisitorScore: guess.Guess[0],
		HomeScore:    guess.Guess[1],
		Novelty:      novelty,
	})
}

// filterParams reads the minYear, maxYear and team query parameters, defaulting to
// the whole history of the league
func filterParams(r *http.Request) (int, int, string, error) {
	minYear, maxYear := 1946, time.Now().Year()
	q := r.URL.Query()

	var err error
	if raw := q.Get("minYear"); raw != "" {
		if minYear, err = strconv.Atoi(raw); err != nil {
			return 0, 0, "", errors.New("minYear must be an integer")
		}
	}
	if raw := q.Get("maxYear"); raw != "" {
		if maxYear, err = strconv.Atoi(raw); err != nil {
			return 0, 0, "", errors.New("maxYear must be an integer")
		}
	}
	return minYear, maxYear, q.Get("team"), nil
}

func toGradedResponse(g logic.GradedGuess) GradedGuessResponse {
	resp := GradedGuessResponse{
		GameId:  g.Guess.GameId,
		Visitor: g.Guess.Team1,
		Home:    g.Guess.Team2,
		Verdict: string(g.Verdict),
		Actual:  g.Actual,
	}
	// Documents written by other clients may carry a short or absent guess array
	if len(g.Guess.Guess) == 2 {
		resp.VisitorScore = g.Guess.Guess[0]
		resp.HomeScore = g.Guess.Guess[1]
	}
	return resp
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("failed to encode response:", err)
	}
}

// writeError writes an ErrorResponse with the given status code
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// writeApiError maps API errors onto HTTP status codes
func writeApiError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, api.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, api.ErrNoSuchGame):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, api.ErrUnknownFranchise):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, store.ErrDuplicateGuess):
		writeError(w, http.StatusConflict, err)
	default:
		log.Println(err)
		writeError(w, http.StatusInternalServerError, err)
	}
}
