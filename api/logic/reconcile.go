/* reconcile.go
 * Contains the logic for reconciling a stored guess against the played-game records.
 * Guesses carry free-text team names and a scheduled date; played games carry city and
 * name columns and an exact timestamp. Matching is therefore fuzzy: normalized
 * substring containment on both team sides plus a bounded date-proximity window
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"strings"
	"time"

	"nba-scorigami/api/external"
	"nba-scorigami/api/store"
)

// Verdict is the reconciliation outcome for one guess
type Verdict string

const (
	// Awaiting means no played game matched the guess yet
	Awaiting Verdict = "awaiting"
	// Correct means a played game matched and both predicted scores were exact
	Correct Verdict = "correct"
	// Wrong means a played game matched but at least one predicted score missed
	Wrong Verdict = "wrong"
)

// MatchWindow is how far apart a guess's game date and a played game's timestamp may be
// while still referring to the same game. Tip-off listings and result timestamps drift
// by minutes to hours, never by half a day
const MatchWindow = 12 * time.Hour

// GradedGuess is a guess together with its verdict and, once matched, the actual score
type GradedGuess struct {
	Guess   store.Guess
	Verdict Verdict
	Actual  string
}

// teamMatches is the normalized identity predicate: it reports whether a played game's
// "City Name" display string contains the guessed free-text team name, ignoring case.
// Kept as its own function so the matching rule can be swapped for a canonical team-id
// mapping without touching reconciliation control flow
func teamMatches(displayName string, guessed string) bool {
	guessed = strings.TrimSpace(guessed)
	if guessed == "" {
		return false
	}
	return strings.Contains(strings.ToLower(displayName), strings.ToLower(guessed))
}

// MatchGuess finds the played game the guess refers to.
// Preconditions: Receives a guess (Team1 is the visitor, Team2 the home side) and the
// played-game records
// Postconditions: Returns the matching game and true, or the zero value and false when
// no game matches. A game matches when both team names match their side and the game
// date is within MatchWindow of the guess date. Should same-day rematches ever produce
// several candidates, the one nearest the guess date in time wins, so the choice is
// deterministic
func MatchGuess(guess store.Guess, playedGames []external.PlayedGame) (external.PlayedGame, bool) {
	var best external.PlayedGame
	var bestDelta time.Duration
	found := false

	for _, game := range playedGames {
		if !teamMatches(game.HomeDisplayName(), guess.Team2) {
			continue
		}
		if !teamMatches(game.AwayDisplayName(), guess.Team1) {
			continue
		}

		delta := guess.GuessDate.Sub(game.GameDate)
		if delta < 0 {
			delta = -delta
		}
		if delta >= MatchWindow {
			continue
		}

		if !found || delta < bestDelta {
			best = game
			bestDelta = delta
			found = true
		}
	}

	return best, found
}

// Reconcile grades one guess against the played-game records.
// Postconditions: Returns a GradedGuess with verdict Awaiting when no game matches,
// Correct when the matched game's home and away scores equal the guessed pair, and
// Wrong otherwise. Guesses are stored visitor-first, so Guess[0] is compared against
// the away score and Guess[1] against the home score
func Reconcile(guess store.Guess, playedGames []external.PlayedGame) GradedGuess {
	game, ok := MatchGuess(guess, playedGames)
	if !ok {
		return GradedGuess{Guess: guess, Verdict: Awaiting}
	}

	graded := GradedGuess{
		Guess:  guess,
		Actual: fmt.Sprintf("%d-%d", game.HomeScore, game.AwayScore),
	}
	if len(guess.Guess) == 2 && game.AwayScore == guess.Guess[0] && game.HomeScore == guess.Guess[1] {
		graded.Verdict = Correct
	} else {
		graded.Verdict = Wrong
	}
	return graded
}
