/* api.go
 * This file contains the public methods for interacting with this package. For
 * consistent results, functions should only be called from this file, not the sub
 * packages for archive, logic and store
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"nba-scorigami/api/archive"
	"nba-scorigami/api/external"
	"nba-scorigami/api/logic"
	"nba-scorigami/api/shared"
	"nba-scorigami/api/store"
)

// ErrNotReady is returned when a query arrives before the dataset it depends on has
// finished loading
var ErrNotReady = errors.New("dataset not loaded yet")

// ErrNoSuchGame is returned when a guess references a game that is not on the schedule
var ErrNoSuchGame = errors.New("no scheduled game matches")

// ErrUnknownFranchise is returned when a team selector matches no franchise name
var ErrUnknownFranchise = errors.New("unknown franchise")

// Sources says where each dataset comes from. For each dataset a URL takes precedence
// over a file path; at least one of the two must be set
type Sources struct {
	ArchivePath string
	ArchiveURL  string

	SchedulePath string
	ScheduleURL  string

	ResultsPath string
	ResultsURL  string
}

// API provides methods for interacting with the scorigami data layer
type API struct {
	Store   store.Interface
	Sources Sources

	// Loaded datasets, guarded by mu. Nil until Load completes for the source;
	// queries that need an unloaded source return ErrNotReady. Load may run in the
	// background while the bot and web surfaces are already serving, so every read
	// goes through datasets()
	mu       sync.RWMutex
	Archive  *archive.Archive
	Schedule []external.ScheduledGame
	Results  []external.PlayedGame

	fetcher *external.Fetcher
}

// datasets returns a consistent snapshot of the loaded datasets
func (a *API) datasets() (*archive.Archive, []external.ScheduledGame, []external.PlayedGame) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Archive, a.Schedule, a.Results
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, sources Sources) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	if err := s.EnsureIndexes(); err != nil {
		return nil, err
	}

	return &API{
		Store:   s,
		Sources: sources,
		fetcher: external.NewFetcher(nil),
	}, nil
}

// Load fetches and parses the three source datasets. The loads run concurrently and
// Load returns once all three have finished; a failure in any source is terminal for
// that source and is reported in the combined error. Query methods stay unavailable
// for sources that failed
func (a *API) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	var archiveErr, scheduleErr, resultsErr error

	var loadedArchive *archive.Archive
	var loadedSchedule []external.ScheduledGame
	var loadedResults []external.PlayedGame

	wg.Add(3)
	go func() {
		defer wg.Done()
		loadedArchive, archiveErr = a.loadArchive(ctx)
	}()
	go func() {
		defer wg.Done()
		loadedSchedule, scheduleErr = a.loadSchedule(ctx)
	}()
	go func() {
		defer wg.Done()
		loadedResults, resultsErr = a.loadResults(ctx)
	}()
	wg.Wait()

	// Publish under the lock so concurrent queries see either nothing or a fully
	// loaded dataset, never a partial write
	a.mu.Lock()
	if archiveErr == nil {
		a.Archive = loadedArchive
	}
	if scheduleErr == nil {
		a.Schedule = loadedSchedule
	}
	if resultsErr == nil {
		a.Results = loadedResults
	}
	a.mu.Unlock()

	var failures []string
	for _, e := range []error{archiveErr, scheduleErr, resultsErr} {
		if e != nil {
			failures = append(failures, e.Error())
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("dataset load failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

func (a *API) loadArchive(ctx context.Context) (*archive.Archive, error) {
	switch {
	case a.Sources.ArchiveURL != "":
		return a.fetcher.FetchArchive(ctx, a.Sources.ArchiveURL)
	case a.Sources.ArchivePath != "":
		return external.LoadArchiveFile(a.Sources.ArchivePath)
	default:
		return nil, fmt.Errorf("no archive source configured")
	}
}

func (a *API) loadSchedule(ctx context.Context) ([]external.ScheduledGame, error) {
	switch {
	case a.Sources.ScheduleURL != "":
		return a.fetcher.FetchSchedule(ctx, a.Sources.ScheduleURL)
	case a.Sources.SchedulePath != "":
		return external.LoadScheduleFile(a.Sources.SchedulePath)
	default:
		return nil, fmt.Errorf("no schedule source configured")
	}
}

func (a *API) loadResults(ctx context.Context) ([]external.PlayedGame, error) {
	switch {
	case a.Sources.ResultsURL != "":
		return a.fetcher.FetchResults(ctx, a.Sources.ResultsURL)
	case a.Sources.ResultsPath != "":
		return external.LoadResultsFile(a.Sources.ResultsPath)
	default:
		return nil, fmt.Errorf("no results source configured")
	}
}

// LookupScore returns the record for a score pair from the full archive, or nil when
// the pair has never occurred
func (a *API) LookupScore(winningScore int, losingScore int) (*archive.ScoreRecord, error) {
	scores, _, _ := a.datasets()
	if scores == nil {
		return nil, fmt.Errorf("score archive: %w", ErrNotReady)
	}
	return scores.Lookup(winningScore, losingScore), nil
}

// FilterScores derives a filtered archive view. The team selector is resolved against
// the franchise list with fuzzy matching, so "celtics" selects "Boston Celtics"; an
// empty selector or the AllFranchises sentinel applies no team filter
func (a *API) FilterScores(minYear int, maxYear int, team string) (*archive.Archive, error) {
	scores, _, _ := a.datasets()
	if scores == nil {
		return nil, fmt.Errorf("score archive: %w", ErrNotReady)
	}

	selector := archive.AllFranchises
	if team != "" && team != archive.AllFranchises {
		resolved, ok := logic.ResolveTeamName(team, scores.Franchises()[1:])
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownFranchise, team)
		}
		selector = resolved
	}

	return scores.Filter(archive.YearRange{Min: minYear, Max: maxYear}, selector), nil
}

// IsPotentialNovelty reports whether a final score of (winningScore, losingScore)
// would be a scorigami. The check always runs against the full archive, never a
// filtered view: whether a score has happened is a historical fact independent of the
// caller's current filters
func (a *API) IsPotentialNovelty(winningScore int, losingScore int) (bool, error) {
	scores, _, _ := a.datasets()
	if scores == nil {
		return false, fmt.Errorf("score archive: %w", ErrNotReady)
	}
	return scores.IsPotentialNovelty(winningScore, losingScore), nil
}

// Franchises returns the team selector list: the AllFranchises sentinel followed by
// every franchise in the archive, sorted
func (a *API) Franchises() ([]string, error) {
	scores, _, _ := a.datasets()
	if scores == nil {
		return nil, fmt.Errorf("score archive: %w", ErrNotReady)
	}
	return scores.Franchises(), nil
}

// UpcomingGames returns the guessable slate: every scheduled game on the next calendar
// day that still has a game starting after now
func (a *API) UpcomingGames(now time.Time) ([]external.ScheduledGame, error) {
	_, schedule, _ := a.datasets()
	if schedule == nil {
		return nil, fmt.Errorf("schedule: %w", ErrNotReady)
	}

	var nextDay time.Time
	found := false
	for _, game := range schedule {
		if !game.Date.After(now) {
			continue
		}
		if !found || game.Date.Before(nextDay) {
			nextDay = game.Date
			found = true
		}
	}
	if !found {
		return nil, nil
	}

	year, month, day := nextDay.Date()
	var slate []external.ScheduledGame
	for _, game := range schedule {
		gy, gm, gd := game.Date.Date()
		if gy == year && gm == month && gd == day {
			slate = append(slate, game)
		}
	}
	return slate, nil
}

// SubmitGuess records a score prediction for a scheduled game.
// Preconditions: Receives the submitting user, the scheduled game id, and the
// predicted visitor and home scores
// Postconditions: Persists the guess and returns it together with whether the
// predicted score would be a scorigami. Fails with store.ErrDuplicateGuess if the user
// already guessed this game, or ErrNoSuchGame for an unknown game id
func (a *API) SubmitGuess(user shared.User, gameId string, visitorScore int, homeScore int) (store.Guess, bool, error) {
	scores, schedule, _ := a.datasets()
	if scores == nil || schedule == nil {
		return store.Guess{}, false, ErrNotReady
	}

	var game *external.ScheduledGame
	for i := range schedule {
		if schedule[i].Id == gameId {
			game = &schedule[i]
			break
		}
	}
	if game == nil {
		return store.Guess{}, false, fmt.Errorf("%w id %q", ErrNoSuchGame, gameId)
	}

	guess := store.Guess{
		Username:    user.Username,
		GameId:      game.Id,
		Guess:       []int{visitorScore, homeScore},
		Team1:       game.Visitor,
		Team2:       game.Home,
		GuessDate:   game.Date,
		SubmittedAt: time.Now(),
	}

	if err := a.Store.StoreGuess(guess); err != nil {
		return store.Guess{}, false, err
	}

	novelty := false
	if visitorScore != homeScore {
		ws, ls := visitorScore, homeScore
		if ls > ws {
			ws, ls = ls, ws
		}
		novelty = scores.IsPotentialNovelty(ws, ls)
	}

	return guess, novelty, nil
}

// SubmitGuessForMatchup resolves a visitor/home team pair to a game on the upcoming
// slate and submits the guess for it. Team names are matched case-insensitively as
// substrings, so "lakers" finds the Los Angeles Lakers game
func (a *API) SubmitGuessForMatchup(user shared.User, visitor string, home string, visitorScore int, homeScore int, now time.Time) (store.Guess, bool, error) {
	slate, err := a.UpcomingGames(now)
	if err != nil {
		return store.Guess{}, false, err
	}

	for _, game := range slate {
		if containsFold(game.Visitor, visitor) && containsFold(game.Home, home) {
			return a.SubmitGuess(user, game.Id, visitorScore, homeScore)
		}
	}
	return store.Guess{}, false, fmt.Errorf("%w for %s at %s on the upcoming slate", ErrNoSuchGame, visitor, home)
}

// CheckGuesses reconciles every guess the user has stored against the played games
func (a *API) CheckGuesses(user shared.User) ([]logic.GradedGuess, error) {
	_, _, results := a.datasets()
	if results == nil {
		return nil, fmt.Errorf("played results: %w", ErrNotReady)
	}

	guesses, err := a.Store.GetUserGuesses(user.Username)
	if err != nil {
		return nil, err
	}

	graded := make([]logic.GradedGuess, 0, len(guesses))
	for _, guess := range guesses {
		graded = append(graded, logic.Reconcile(guess, results))
	}
	return graded, nil
}

// Leaderboard aggregates every stored guess into ranked standings
func (a *API) Leaderboard() ([]logic.Standing, error) {
	_, _, results := a.datasets()
	if results == nil {
		return nil, fmt.Errorf("played results: %w", ErrNotReady)
	}

	guesses, err := a.Store.GetAllGuesses()
	if err != nil {
		return nil, err
	}
	return logic.Aggregate(guesses, results), nil
}

// Stats summarises the archive, optionally under a filter view
type Stats struct {
	UniqueScores int
	TotalGames   int
	MaxScore     int
	LastUpdated  string
}

// ArchiveStats computes the summary counters for a view. The counters are recomputed
// from the view on every call, so filtered views never report stale totals
func ArchiveStats(view *archive.Archive) Stats {
	return Stats{
		UniqueScores: view.UniqueScoreCount(),
		TotalGames:   view.TotalGameCount(),
		MaxScore:     view.MaxScore,
		LastUpdated:  view.LastUpdated,
	}
}

// containsFold is a case-insensitive substring check used for matchup resolution
func containsFold(haystack string, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
